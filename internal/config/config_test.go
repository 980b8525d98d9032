package config

import (
	"errors"
	"fmt"
	"testing"
)

var requiredVars = map[string]string{
	"LATITUDE":  "40.0",
	"LONGITUDE": "-75.0",
	"WEBHOOKS":  "https://discord.com/api/webhooks/1/abc",
}

func setValidEnv(t *testing.T) {
	t.Helper()
	for name, value := range requiredVars {
		t.Setenv(name, value)
	}
	t.Setenv("TIMEZONE", "")
	for _, name := range []string{"ARCHIVE_ENDPOINT", "ARCHIVE_ACCESS_KEY", "ARCHIVE_SECRET_KEY", "ARCHIVE_BUCKET", "ARCHIVE_USE_SSL"} {
		t.Setenv(name, "")
	}
}

func TestLoad_RequiredVarsMissing(t *testing.T) {
	for name := range requiredVars {
		t.Run(name, func(t *testing.T) {
			setValidEnv(t)
			t.Setenv(name, "")
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			var missing *ErrMissingRequiredEnvVar
			if !errors.As(err, &missing) {
				t.Fatalf("expected ErrMissingRequiredEnvVar, got %s", err)
			}
			var varName string
			c, _ := fmt.Sscanf(
				err.Error(),
				"required environment variable %q is not set",
				&varName,
			)
			if c != 1 || varName != name {
				t.Fatalf("expected ErrMissingRequiredEnvVar to be set to %q, got %q", name, varName)
			}
		})
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	setValidEnv(t)

	config, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if config.Latitude != 40.0 {
		t.Fatalf("Latitude = %v, want 40.0", config.Latitude)
	}
	if config.Longitude != -75.0 {
		t.Fatalf("Longitude = %v, want -75.0", config.Longitude)
	}
	if len(config.Webhooks) != 1 || config.Webhooks[0] != "https://discord.com/api/webhooks/1/abc" {
		t.Fatalf("unexpected webhooks: %v", config.Webhooks)
	}
	if config.Timezone.String() != DefaultTimezone {
		t.Fatalf("Timezone = %s, want %s", config.Timezone, DefaultTimezone)
	}
	if config.Archive != nil {
		t.Fatal("expected Archive to be nil when unconfigured")
	}
}

func TestLoad_MultipleWebhooks(t *testing.T) {
	setValidEnv(t)
	t.Setenv("WEBHOOKS", "https://discord.com/api/webhooks/1/a, https://discord.com/api/webhooks/2/b")

	config, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(config.Webhooks) != 2 {
		t.Fatalf("expected 2 webhooks, got %d", len(config.Webhooks))
	}
	if config.Webhooks[1] != "https://discord.com/api/webhooks/2/b" {
		t.Fatalf("whitespace not trimmed: %q", config.Webhooks[1])
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		envar string
		value string
	}{
		{"latitude not a number", "LATITUDE", "north"},
		{"latitude out of range", "LATITUDE", "91.5"},
		{"longitude out of range", "LONGITUDE", "-180.1"},
		{"webhook not a URL", "WEBHOOKS", "discord.com/api/webhooks/1/abc"},
		{"webhook empty entry", "WEBHOOKS", "https://discord.com/api/webhooks/1/a,,https://discord.com/api/webhooks/2/b"},
		{"webhook bad scheme", "WEBHOOKS", "ftp://example.com/hook"},
		{"unknown timezone", "TIMEZONE", "Mars/Olympus_Mons"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setValidEnv(t)
			t.Setenv(tt.envar, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			var invalid *ErrInvalidEnvVar
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidEnvVar, got %s", err)
			}
			if invalid.Name != tt.envar {
				t.Fatalf("expected error for %q, got %q", tt.envar, invalid.Name)
			}
		})
	}
}

func TestLoad_Timezone(t *testing.T) {
	setValidEnv(t)
	t.Setenv("TIMEZONE", "Europe/Warsaw")

	config, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if config.Timezone.String() != "Europe/Warsaw" {
		t.Fatalf("Timezone = %s, want Europe/Warsaw", config.Timezone)
	}
}

func TestLoad_Archive(t *testing.T) {
	setValidEnv(t)
	t.Setenv("ARCHIVE_ENDPOINT", "localhost:9000")
	t.Setenv("ARCHIVE_ACCESS_KEY", "minio")
	t.Setenv("ARCHIVE_SECRET_KEY", "minio123")
	t.Setenv("ARCHIVE_BUCKET", "solar")
	t.Setenv("ARCHIVE_USE_SSL", "true")

	config, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if config.Archive == nil {
		t.Fatal("expected Archive config")
	}
	if config.Archive.Endpoint != "localhost:9000" || config.Archive.Bucket != "solar" {
		t.Fatalf("unexpected archive config: %+v", config.Archive)
	}
	if !config.Archive.UseSSL {
		t.Fatal("expected UseSSL to be true")
	}
}

func TestLoad_ArchivePartial(t *testing.T) {
	setValidEnv(t)
	t.Setenv("ARCHIVE_ENDPOINT", "localhost:9000")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for partially configured archive")
	}
	var missing *ErrMissingRequiredEnvVar
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingRequiredEnvVar, got %s", err)
	}
}
