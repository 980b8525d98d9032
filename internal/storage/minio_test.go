package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"

	"github.com/ibrahimmudassar/SolarCalculate/internal/config"
)

func TestNewMinIOClient_InvalidEndpoint(t *testing.T) {
	cfg := config.ArchiveConfig{
		Endpoint:  "invalid-endpoint:port:scheme", // Invalid format
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "test-bucket",
		UseSSL:    false,
	}

	_, err := NewMinIOClient(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error with invalid endpoint, got nil")
	}
}

func TestNewMinIOClient_ConnectionRefused(t *testing.T) {
	cfg := config.ArchiveConfig{
		Endpoint:  "localhost:12345",
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "test-bucket",
		UseSSL:    false,
	}

	// minio.New() doesn't connect immediately, but BucketExists does.
	_, err := NewMinIOClient(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error connecting to non-existent minio, got nil")
	}
}

func loadArchiveConfigFromEnv(t *testing.T) config.ArchiveConfig {
	t.Helper()
	godotenv.Load("../../.env.test")

	endpoint := os.Getenv("ARCHIVE_ENDPOINT")
	accessKey := os.Getenv("ARCHIVE_ACCESS_KEY")
	secretKey := os.Getenv("ARCHIVE_SECRET_KEY")
	useSSL := os.Getenv("ARCHIVE_USE_SSL") == "true"

	if endpoint == "" || accessKey == "" || secretKey == "" {
		t.Skip("ARCHIVE_ENDPOINT, ARCHIVE_ACCESS_KEY, and ARCHIVE_SECRET_KEY must be set for integration tests")
	}

	return config.ArchiveConfig{
		Endpoint:  endpoint,
		AccessKey: accessKey,
		SecretKey: secretKey,
		UseSSL:    useSSL,
	}
}

func TestMinIOClient_Put_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	cfg := loadArchiveConfigFromEnv(t)
	cfg.Bucket = "test-bucket-" + time.Now().Format("20060102-150405")

	ctx := context.Background()
	client, err := NewMinIOClient(ctx, cfg)
	if err != nil {
		t.Fatalf("failed to initialize minio client: %v", err)
	}

	key := "sunrise-sunset/2025-03-12/integration.png"
	content := []byte("fake png bytes")

	if err := client.Put(ctx, key, bytes.NewReader(content)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	obj, err := client.client.GetObject(ctx, cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		t.Fatalf("GetObject() error = %v", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		t.Fatalf("io.ReadAll() error = %v", err)
	}

	if !bytes.Equal(data, content) {
		t.Fatalf("unexpected content: got %q, want %q", data, content)
	}
}
