package types

import (
	"time"

	"route-weather-api/internal/providers/amap"
)

// WeatherSource identifies which data source backs a waypoint's weather.
type WeatherSource string

const (
	SourceLive     WeatherSource = "live"
	SourceForecast WeatherSource = "forecast"
	SourceNone     WeatherSource = "none"
)

// RouteRequest is the body of POST /api/route.
type RouteRequest struct {
	Origin      string `json:"origin" binding:"required" example:"北京"`        // Origin city or address
	Destination string `json:"destination" binding:"required" example:"上海"`   // Destination city or address
	Strategy    string `json:"strategy" example:"fastest"`                    // fastest, avoid_highway, avoid_tolls or avoid_congestion
	DepartAt    string `json:"depart_at" example:"2026-03-01T08:00:00+08:00"` // Optional ISO-8601 departure time, defaults to now
}

// GeocodeResult is a resolved endpoint of the trip.
type GeocodeResult struct {
	Formatted string `json:"formatted"` // Provider-formatted display name
	Location  string `json:"location"`  // "lon,lat"
}

// WeatherReport is the normalized per-waypoint weather record. Live readings
// fill the current-conditions fields; forecast selections fill the day/night
// fields and nest the full cast.
type WeatherReport struct {
	Condition     string             `json:"condition"`
	Temperature   string             `json:"temperature"`
	City          string             `json:"city,omitempty"`
	ReportTime    string             `json:"report_time,omitempty"`
	Humidity      string             `json:"humidity,omitempty"`
	WindDirection string             `json:"wind_direction,omitempty"`
	WindPower     string             `json:"wind_power,omitempty"`
	Daytime       *bool              `json:"daytime,omitempty"`
	CastDate      string             `json:"cast_date,omitempty"`
	Cast          *amap.ForecastCast `json:"cast,omitempty"`
}

// Waypoint is one representative point along the route with its estimated
// arrival time and best-effort weather. WeatherSource is "none" exactly when
// Weather is absent.
type Waypoint struct {
	Name          string         `json:"name"`
	Location      string         `json:"location"`
	ETAMinutes    int            `json:"eta_minutes"`
	ETATime       time.Time      `json:"eta_time"`
	Adcode        string         `json:"adcode,omitempty"`
	Weather       *WeatherReport `json:"weather,omitempty"`
	WeatherSource WeatherSource  `json:"weather_source"`
	WeatherError  string         `json:"weather_error,omitempty"`
}

// RouteResponse is the body of a successful POST /api/route. Waypoints are
// ordered by non-decreasing ETAMinutes.
type RouteResponse struct {
	Origin      GeocodeResult  `json:"origin"`
	Destination GeocodeResult  `json:"destination"`
	DistanceM   int            `json:"distance_m"`
	DurationS   int            `json:"duration_s"`
	Polyline    string         `json:"polyline"`
	Waypoints   []Waypoint     `json:"waypoints"`
	Debug       map[string]any `json:"debug,omitempty"`
}
