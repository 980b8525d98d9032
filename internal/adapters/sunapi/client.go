package sunapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ibrahimmudassar/SolarCalculate/internal/model"
)

// DefaultBaseURL is the public sunrise-sunset.org endpoint.
const DefaultBaseURL = "https://api.sunrise-sunset.org"

// Client fetches solar day data from the sunrise-sunset.org API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client. An empty baseURL selects the public
// endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SolarDay requests the solar timestamps for the coordinates and date. It
// implements the report service's Provider interface.
func (c *Client) SolarDay(ctx context.Context, lat, lon float64, date time.Time) (model.SolarDay, error) {
	slog.InfoContext(ctx, "fetching solar day", "lat", lat, "lon", lon, "date", date.Format("2006-01-02"))

	resp, err := c.apiGetDay(ctx, lat, lon, date)
	if err != nil {
		return model.SolarDay{}, err
	}

	day := model.SolarDay{
		Latitude:  lat,
		Longitude: lon,
		Date:      date,
	}
	fields := []struct {
		name  string
		value string
		dst   *time.Time
	}{
		{"astronomical_twilight_begin", resp.Results.AstronomicalTwilightBegin, &day.AstronomicalTwilightBegin},
		{"sunrise", resp.Results.Sunrise, &day.Sunrise},
		{"solar_noon", resp.Results.SolarNoon, &day.SolarNoon},
		{"sunset", resp.Results.Sunset, &day.Sunset},
		{"astronomical_twilight_end", resp.Results.AstronomicalTwilightEnd, &day.AstronomicalTwilightEnd},
	}
	for _, f := range fields {
		t, err := time.Parse(time.RFC3339, f.value)
		if err != nil {
			return model.SolarDay{}, &DataError{Field: f.name, Err: err}
		}
		*f.dst = t
	}

	slog.InfoContext(ctx, "solar day fetched",
		"sunrise", day.Sunrise, "sunset", day.Sunset, "day_length_s", resp.Results.DayLength)
	return day, nil
}

func (c *Client) apiGetDay(ctx context.Context, lat, lon float64, date time.Time) (*dayResponse, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("date", date.Format("2006-01-02"))
	// formatted=0 switches the API to ISO 8601 timestamps
	query.Set("formatted", "0")

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/json?"+query.Encode(), nil)
	if err != nil {
		return nil, &ClientError{Message: "failed to build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ClientError{Message: "request failed", Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode != 200 {
		return nil, &APIError{StatusCode: response.StatusCode, Message: "day request failed"}
	}

	var day dayResponse
	if err := json.NewDecoder(response.Body).Decode(&day); err != nil {
		return nil, &DataError{Field: "response body", Err: err}
	}

	if day.Status != statusOK {
		return nil, &APIError{StatusCode: response.StatusCode, Status: day.Status, Message: "provider rejected request"}
	}

	return &day, nil
}
