package sunapi

// dayResponse is the raw https://api.sunrise-sunset.org/json response.
// With formatted=0 all timestamps are ISO 8601 and day_length is seconds.
type dayResponse struct {
	Results dayResults `json:"results"`
	Status  string     `json:"status"`
}

type dayResults struct {
	Sunrise                   string `json:"sunrise"`
	Sunset                    string `json:"sunset"`
	SolarNoon                 string `json:"solar_noon"`
	DayLength                 int64  `json:"day_length"`
	CivilTwilightBegin        string `json:"civil_twilight_begin"`
	CivilTwilightEnd          string `json:"civil_twilight_end"`
	NauticalTwilightBegin     string `json:"nautical_twilight_begin"`
	NauticalTwilightEnd       string `json:"nautical_twilight_end"`
	AstronomicalTwilightBegin string `json:"astronomical_twilight_begin"`
	AstronomicalTwilightEnd   string `json:"astronomical_twilight_end"`
}

// statusOK is the only success value of the API "status" field. Everything
// else ("INVALID_REQUEST", "INVALID_DATE", "UNKNOWN_ERROR") is a failure.
const statusOK = "OK"
