package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/ibrahimmudassar/SolarCalculate/internal/report"
)

// WebhookError represents a webhook delivery that Discord rejected.
type WebhookError struct {
	StatusCode int
	Message    string
}

func (e *WebhookError) Error() string {
	return fmt.Sprintf("discord: %s (status %d)", e.Message, e.StatusCode)
}

// Client executes Discord webhooks. It implements the report service's
// Notifier interface.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Notify posts the report embed to one webhook URL. When the report carries
// a chart it is attached as a file and referenced from the embed image.
func (c *Client) Notify(ctx context.Context, webhookURL string, rep report.Report) error {
	payload, err := json.Marshal(webhookPayload{Embeds: []Embed{BuildEmbed(rep)}})
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}

	var req *http.Request
	if rep.Chart == nil {
		req, err = http.NewRequestWithContext(ctx, "POST", webhookURL, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("discord: build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
	} else {
		body, contentType, err := multipartBody(payload, rep.Chart)
		if err != nil {
			return fmt.Errorf("discord: build multipart body: %w", err)
		}
		req, err = http.NewRequestWithContext(ctx, "POST", webhookURL, body)
		if err != nil {
			return fmt.Errorf("discord: build request: %w", err)
		}
		req.Header.Set("Content-Type", contentType)
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("discord: execute webhook: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(response.Body, 256))
		return &WebhookError{StatusCode: response.StatusCode, Message: string(snippet)}
	}

	slog.InfoContext(ctx, "webhook executed", "status", response.StatusCode)
	return nil
}

// multipartBody packs the webhook payload and the chart attachment the way
// the Discord API expects: a payload_json field plus a files[n] part.
func multipartBody(payload, chart []byte) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("payload_json", string(payload)); err != nil {
		return nil, "", err
	}
	part, err := w.CreateFormFile("files[0]", attachmentName)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(chart); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}
