package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunID identifies a single scheduled run. The scheduler may pass one in;
// otherwise main generates one so the archived artifact has a stable name.
type RunID string

// Validate checks that the RunID is a valid UUID.
func (r RunID) Validate() error {
	if r == "" {
		return fmt.Errorf("run-id cannot be empty")
	}
	if _, err := uuid.Parse(string(r)); err != nil {
		return fmt.Errorf("run-id must be a valid UUID: %w", err)
	}
	return nil
}

// String returns the run ID as a string.
func (r RunID) String() string {
	return string(r)
}

// NewRunID generates a fresh run identifier.
func NewRunID() RunID {
	return RunID(uuid.NewString())
}

// SolarDay holds the provider's solar timestamps for one date and location.
// All timestamps are UTC instants; presentation converts to the report
// timezone.
type SolarDay struct {
	Latitude  float64
	Longitude float64
	Date      time.Time

	AstronomicalTwilightBegin time.Time
	Sunrise                   time.Time
	SolarNoon                 time.Time
	Sunset                    time.Time
	AstronomicalTwilightEnd   time.Time
}

// Validate checks that every timestamp required for formatting is present.
func (d SolarDay) Validate() error {
	fields := []struct {
		name string
		t    time.Time
	}{
		{"astronomical_twilight_begin", d.AstronomicalTwilightBegin},
		{"sunrise", d.Sunrise},
		{"solar_noon", d.SolarNoon},
		{"sunset", d.Sunset},
		{"astronomical_twilight_end", d.AstronomicalTwilightEnd},
	}
	for _, f := range fields {
		if f.t.IsZero() {
			return fmt.Errorf("solar day is missing %s", f.name)
		}
	}
	if !d.Sunset.After(d.Sunrise) {
		return fmt.Errorf("sunset %s is not after sunrise %s", d.Sunset, d.Sunrise)
	}
	return nil
}

// DayLength returns the daylight duration.
func (d SolarDay) DayLength() time.Duration {
	return d.Sunset.Sub(d.Sunrise)
}
