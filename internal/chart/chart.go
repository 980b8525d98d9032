// Package chart renders the daily solar elevation curve as a PNG, with the
// key times annotated and the daylight span filled.
package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ibrahimmudassar/SolarCalculate/internal/model"
	"github.com/ibrahimmudassar/SolarCalculate/internal/solar"
)

// Renderer draws elevation charts. It implements the report service's
// Renderer interface.
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer() Renderer {
	return Renderer{Width: 1280, Height: 720}
}

// Render draws the curve with annotations at twilight begin/end, sunrise,
// solar noon, and sunset.
func (r Renderer) Render(day model.SolarDay, curve solar.Curve, loc *time.Location) ([]byte, error) {
	if len(curve.Times) == 0 || len(curve.Times) != len(curve.Angles) {
		return nil, fmt.Errorf("chart: malformed curve with %d times and %d angles", len(curve.Times), len(curve.Angles))
	}

	lineColor := drawing.Color{R: 0, G: 116, B: 217, A: 255}
	daylightFill := drawing.Color{R: 255, G: 255, B: 51, A: 26}

	series := []chart.Series{
		chart.TimeSeries{
			Name:    "elevation",
			XValues: curve.Times,
			YValues: curve.Angles,
			Style:   chart.Style{StrokeColor: lineColor},
		},
	}

	// Fill the daylight portion of the curve down to the axis.
	if sunrise, sunset, ok := r.daylightSpan(day, curve); ok {
		series = append(series, chart.TimeSeries{
			Name:    "daylight",
			XValues: curve.Times[sunrise : sunset+1],
			YValues: curve.Angles[sunrise : sunset+1],
			Style: chart.Style{
				StrokeColor: lineColor,
				FillColor:   daylightFill,
			},
		})
	}

	var annotations []chart.Value2
	keyTimes := []time.Time{
		day.AstronomicalTwilightBegin,
		day.Sunrise,
		day.SolarNoon,
		day.Sunset,
		day.AstronomicalTwilightEnd,
	}
	for _, t := range keyTimes {
		idx, ok := sampleIndex(curve, t)
		if !ok {
			continue // twilight can spill into the next local day
		}
		annotations = append(annotations, chart.Value2{
			XValue: chart.TimeToFloat64(curve.Times[idx]),
			// lift the label so it does not sit on the line
			YValue: curve.Angles[idx] + 4,
			Label:  t.In(loc).Format("15:04"),
		})
	}
	if len(annotations) > 0 {
		series = append(series, chart.AnnotationSeries{Annotations: annotations})
	}

	graph := chart.Chart{
		Title:  "Sun Elevation Angle With Astronomical Twilight & Solar Noon",
		Width:  r.Width,
		Height: r.Height,
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
		},
		Canvas: chart.Style{
			FillColor: drawing.ColorWhite,
		},
		XAxis: chart.XAxis{
			Name:           "Time",
			ValueFormatter: chart.TimeValueFormatterWithFormat("15:04"),
		},
		YAxis: chart.YAxis{
			Name: "Angle (in Degrees)",
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart: render: %w", err)
	}
	return buf.Bytes(), nil
}

// daylightSpan returns the curve indices covering sunrise to sunset.
func (r Renderer) daylightSpan(day model.SolarDay, curve solar.Curve) (int, int, bool) {
	sunrise, okRise := sampleIndex(curve, day.Sunrise)
	sunset, okSet := sampleIndex(curve, day.Sunset)
	if !okRise || !okSet || sunset <= sunrise {
		return 0, 0, false
	}
	return sunrise, sunset, true
}

// sampleIndex maps an instant to the nearest per-minute sample of the curve.
func sampleIndex(curve solar.Curve, t time.Time) (int, bool) {
	idx := int(t.Sub(curve.Times[0]).Round(time.Minute) / time.Minute)
	if idx < 0 || idx >= len(curve.Times) {
		return 0, false
	}
	return idx, true
}
