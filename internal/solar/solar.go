// Package solar derives the sun geometry the report presents: the per-minute
// elevation curve for a day and the next equinox or solstice.
package solar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solstice"
)

// Curve is the solar elevation angle sampled once per minute of a local day.
type Curve struct {
	Times  []time.Time
	Angles []float64 // degrees above the horizon, negative below
}

// ElevationCurve samples the sun's elevation for every minute of the given
// date in the given timezone.
func ElevationCurve(lat, lon float64, date time.Time, loc *time.Location) Curve {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	_, offsetSec := midnight.Zone()
	utcOffset := float64(offsetSec) / 3600
	dayOfYear := midnight.YearDay()

	c := Curve{
		Times:  make([]time.Time, 0, 24*60),
		Angles: make([]float64, 0, 24*60),
	}
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			c.Times = append(c.Times, midnight.Add(time.Duration(h)*time.Hour+time.Duration(m)*time.Minute))
			c.Angles = append(c.Angles, Elevation(lat, lon, utcOffset, h, m, dayOfYear))
		}
	}
	return c
}

// Elevation returns the solar elevation angle in degrees for a local clock
// time. It uses the declination / hour-angle approximation: local solar time
// is the clock time corrected by the equation of time and the longitude
// offset from the timezone meridian.
func Elevation(lat, lon, utcOffset float64, hour, minute, dayOfYear int) float64 {
	meridian := 15 * utcOffset
	b := radians(360.0 / 365.0 * float64(dayOfYear-81))

	// Equation of time and time correction, both in minutes.
	eot := 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
	correction := 4*(lon-meridian) + eot

	localSolarTime := float64(hour) + float64(minute)/60 + correction/60
	hourAngle := radians(15 * (localSolarTime - 12))
	declination := radians(23.45 * math.Sin(b))
	latitude := radians(lat)

	sinElevation := math.Sin(declination)*math.Sin(latitude) +
		math.Cos(declination)*math.Cos(latitude)*math.Cos(hourAngle)
	return degrees(math.Asin(sinElevation))
}

// EventKind distinguishes the two cross-quarter events the report announces.
type EventKind string

const (
	KindEquinox  EventKind = "Equinox"
	KindSolstice EventKind = "Solstice"
)

// CrossQuarter is an equinox or solstice instant.
type CrossQuarter struct {
	Kind EventKind
	At   time.Time
}

// NextCrossQuarter returns the first equinox or solstice after the given
// instant, computed with the Meeus algorithms.
func NextCrossQuarter(after time.Time) CrossQuarter {
	for year := after.Year(); ; year++ {
		events := []CrossQuarter{
			{Kind: KindEquinox, At: julian.JDToTime(solstice.March(year))},
			{Kind: KindSolstice, At: julian.JDToTime(solstice.June(year))},
			{Kind: KindEquinox, At: julian.JDToTime(solstice.September(year))},
			{Kind: KindSolstice, At: julian.JDToTime(solstice.December(year))},
		}
		for _, e := range events {
			if e.At.After(after) {
				return e
			}
		}
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
