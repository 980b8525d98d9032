package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultTimezone is used when TIMEZONE is unset. The report was built for
// a US East Coast audience, so that is the historical default.
const DefaultTimezone = "America/New_York"

// Config holds application configuration.
type Config struct {
	Latitude  float64
	Longitude float64
	Webhooks  []string
	Timezone  *time.Location

	// Archive is nil when the optional artifact archive is not configured.
	Archive *ArchiveConfig
}

// ArchiveConfig holds object storage settings for the run artifact archive.
type ArchiveConfig struct {
	Endpoint  string // e.g., "localhost:9000"
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type ErrMissingRequiredEnvVar struct {
	Name string
}

func (e *ErrMissingRequiredEnvVar) Error() string {
	return fmt.Sprintf("required environment variable %q is not set", e.Name)
}

type ErrInvalidEnvVar struct {
	Name   string
	Reason string
}

func (e *ErrInvalidEnvVar) Error() string {
	return fmt.Sprintf("environment variable %q is invalid: %s", e.Name, e.Reason)
}

// Load reads configuration from environment variables.
// Returns an error if required variables are missing or malformed.
func Load() (*Config, error) {
	config := Config{}

	lat, err := coordinate("LATITUDE", 90)
	if err != nil {
		return nil, err
	}
	config.Latitude = lat

	lon, err := coordinate("LONGITUDE", 180)
	if err != nil {
		return nil, err
	}
	config.Longitude = lon

	webhooks, err := webhookList()
	if err != nil {
		return nil, err
	}
	config.Webhooks = webhooks

	tzName := os.Getenv("TIMEZONE")
	if tzName == "" {
		tzName = DefaultTimezone
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, &ErrInvalidEnvVar{Name: "TIMEZONE", Reason: fmt.Sprintf("unknown timezone %q", tzName)}
	}
	config.Timezone = loc

	archive, err := archiveConfig()
	if err != nil {
		return nil, err
	}
	config.Archive = archive

	return &config, nil
}

func coordinate(name string, bound float64) (float64, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, &ErrMissingRequiredEnvVar{Name: name}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ErrInvalidEnvVar{Name: name, Reason: fmt.Sprintf("%q is not a decimal degree value", raw)}
	}
	if v < -bound || v > bound {
		return 0, &ErrInvalidEnvVar{Name: name, Reason: fmt.Sprintf("%v is outside [-%v, %v]", v, bound, bound)}
	}
	return v, nil
}

func webhookList() ([]string, error) {
	raw := os.Getenv("WEBHOOKS")
	if raw == "" {
		return nil, &ErrMissingRequiredEnvVar{Name: "WEBHOOKS"}
	}
	var webhooks []string
	for _, part := range strings.Split(raw, ",") {
		hook := strings.TrimSpace(part)
		if hook == "" {
			return nil, &ErrInvalidEnvVar{Name: "WEBHOOKS", Reason: "contains an empty entry"}
		}
		u, err := url.Parse(hook)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, &ErrInvalidEnvVar{Name: "WEBHOOKS", Reason: fmt.Sprintf("%q is not an absolute http(s) URL", hook)}
		}
		webhooks = append(webhooks, hook)
	}
	return webhooks, nil
}

// archiveConfig reads the optional ARCHIVE_* block. Setting any of the
// variables makes the whole block required.
func archiveConfig() (*ArchiveConfig, error) {
	vars := []string{"ARCHIVE_ENDPOINT", "ARCHIVE_ACCESS_KEY", "ARCHIVE_SECRET_KEY", "ARCHIVE_BUCKET"}
	anySet := false
	for _, name := range vars {
		if os.Getenv(name) != "" {
			anySet = true
			break
		}
	}
	if !anySet {
		return nil, nil
	}
	for _, name := range vars {
		if os.Getenv(name) == "" {
			return nil, &ErrMissingRequiredEnvVar{Name: name}
		}
	}
	return &ArchiveConfig{
		Endpoint:  os.Getenv("ARCHIVE_ENDPOINT"),
		AccessKey: os.Getenv("ARCHIVE_ACCESS_KEY"),
		SecretKey: os.Getenv("ARCHIVE_SECRET_KEY"),
		Bucket:    os.Getenv("ARCHIVE_BUCKET"),
		UseSSL:    os.Getenv("ARCHIVE_USE_SSL") == "true",
	}, nil
}
