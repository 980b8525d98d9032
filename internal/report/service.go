package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ibrahimmudassar/SolarCalculate/internal/model"
	"github.com/ibrahimmudassar/SolarCalculate/internal/solar"
	"github.com/ibrahimmudassar/SolarCalculate/internal/storage"
)

// Request contains input parameters for one report run.
type Request struct {
	Latitude  float64
	Longitude float64
	Date      time.Time
	Webhooks  []string
}

// Report is everything the notifier needs to build the outgoing message.
type Report struct {
	Day         model.SolarDay
	Next        solar.CrossQuarter
	GeneratedAt time.Time
	Timezone    *time.Location
	Chart       []byte // PNG, may be nil when rendering is disabled
}

// Provider retrieves the solar day data for a location and date.
type Provider interface {
	SolarDay(ctx context.Context, lat, lon float64, date time.Time) (model.SolarDay, error)
}

// Renderer draws the elevation curve chart.
type Renderer interface {
	Render(day model.SolarDay, curve solar.Curve, loc *time.Location) ([]byte, error)
}

// Notifier delivers a report to a single webhook.
type Notifier interface {
	Notify(ctx context.Context, webhookURL string, rep Report) error
}

// ObjectStorage writes run artifacts to object storage.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data io.Reader) error
}

// Stages of the pipeline, used to classify failures for exit codes.
const (
	StageConfig  = "config"
	StageFetch   = "fetch"
	StageDerive  = "derive"
	StageRender  = "render"
	StageNotify  = "notify"
	StageArchive = "archive"
)

// StageError wraps a pipeline failure with the stage it happened in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Service orchestrates the report steps: fetch, derive, render, notify,
// archive. Each step is fatal on error; a provider failure means no webhook
// is ever called.
type Service struct {
	provider Provider
	renderer Renderer
	notifier Notifier
	archive  ObjectStorage // nil disables archiving
	timezone *time.Location
	now      func() time.Time
}

func NewService(provider Provider, renderer Renderer, notifier Notifier, archive ObjectStorage, timezone *time.Location) *Service {
	return &Service{
		provider: provider,
		renderer: renderer,
		notifier: notifier,
		archive:  archive,
		timezone: timezone,
		now:      time.Now,
	}
}

func (s *Service) Run(ctx context.Context, req Request, runID model.RunID) error {
	if err := runID.Validate(); err != nil {
		return &StageError{Stage: StageConfig, Err: err}
	}

	slog.DebugContext(ctx, "report started",
		"lat", req.Latitude, "lon", req.Longitude,
		"date", req.Date.Format("2006-01-02"), "run_id", runID)

	day, err := s.provider.SolarDay(ctx, req.Latitude, req.Longitude, req.Date)
	if err != nil {
		return &StageError{Stage: StageFetch, Err: err}
	}
	if err := day.Validate(); err != nil {
		return &StageError{Stage: StageDerive, Err: err}
	}

	curve := solar.ElevationCurve(req.Latitude, req.Longitude, req.Date, s.timezone)
	next := solar.NextCrossQuarter(s.now())

	png, err := s.renderer.Render(day, curve, s.timezone)
	if err != nil {
		return &StageError{Stage: StageRender, Err: err}
	}

	rep := Report{
		Day:         day,
		Next:        next,
		GeneratedAt: s.now(),
		Timezone:    s.timezone,
		Chart:       png,
	}

	for _, hook := range req.Webhooks {
		if err := s.notifier.Notify(ctx, hook, rep); err != nil {
			return &StageError{Stage: StageNotify, Err: err}
		}
		slog.InfoContext(ctx, "webhook notified", "run_id", runID)
	}

	if s.archive != nil {
		key := storage.ObjectKey{
			Source:    "sunrise-sunset",
			Date:      req.Date.Format("2006-01-02"),
			RunID:     runID.String(),
			Extension: "png",
		}
		if err := s.archive.Put(ctx, key.Key(), bytes.NewReader(png)); err != nil {
			return &StageError{Stage: StageArchive, Err: err}
		}
		slog.InfoContext(ctx, "artifact archived", "key", key.Key(), "run_id", runID)
	}

	slog.InfoContext(ctx, "report complete", "run_id", runID, "webhooks", len(req.Webhooks))
	return nil
}
