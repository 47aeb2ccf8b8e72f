package amap

import (
	"encoding/json"
	"strconv"
	"strings"
)

// flexString decodes Amap fields that arrive either as a JSON string or as
// an empty array. Municipality responses encode addressComponent.city as []
// instead of "".
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	// arrays and null collapse to the empty string
	*f = ""
	return nil
}

func (f flexString) String() string {
	return string(f)
}

// atoiLenient converts Amap's stringly-typed numeric fields. Bad or absent
// values become 0 so that downstream ETA math degrades instead of failing.
func atoiLenient(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if fv, err := strconv.ParseFloat(s, 64); err == nil {
		return int(fv)
	}
	return 0
}

// geocodeResponse is the v3 /geocode/geo payload.
type geocodeResponse struct {
	Status   string         `json:"status"`
	Info     string         `json:"info"`
	Geocodes []geocodeEntry `json:"geocodes"`
}

type geocodeEntry struct {
	FormattedAddress flexString `json:"formatted_address"`
	Location         string     `json:"location"`
	Adcode           flexString `json:"adcode"`
	City             flexString `json:"city"`
	Province         flexString `json:"province"`
}

// Geocode is the normalized result of a forward geocode: a display name and
// a "lon,lat" location string.
type Geocode struct {
	Formatted string `json:"formatted"`
	Location  string `json:"location"`
	Adcode    string `json:"adcode,omitempty"`
}

// regeoResponse is the v3 /geocode/regeo payload.
type regeoResponse struct {
	Status    string `json:"status"`
	Info      string `json:"info"`
	Regeocode struct {
		AddressComponent struct {
			Adcode   flexString `json:"adcode"`
			City     flexString `json:"city"`
			Province flexString `json:"province"`
			District flexString `json:"district"`
		} `json:"addressComponent"`
	} `json:"regeocode"`
}

// RegeoResult identifies the administrative area containing a point. City
// falls back to the province name for municipalities.
type RegeoResult struct {
	Adcode string `json:"adcode"`
	City   string `json:"city"`
}

// routeResponse is the v5 /direction/driving payload.
type routeResponse struct {
	Status string `json:"status"`
	Info   string `json:"info"`
	Route  struct {
		Origin      string      `json:"origin"`
		Destination string      `json:"destination"`
		TaxiCost    string      `json:"taxi_cost"`
		Paths       []RoutePath `json:"paths"`
	} `json:"route"`
}

// RoutePath is one driving path returned by the v5 direction API. Numeric
// fields keep Amap's wire encoding (strings); use the accessor methods for
// resolved values.
type RoutePath struct {
	Distance string      `json:"distance"`
	Duration string      `json:"duration"`
	Cost     RouteCost   `json:"cost"`
	Steps    []RouteStep `json:"steps"`
}

// RouteCost is the cost breakdown requested via show_fields=cost.
type RouteCost struct {
	Duration     string `json:"duration"`
	Tolls        string `json:"tolls"`
	TollDistance string `json:"toll_distance"`
	TrafficLight string `json:"traffic_lights"`
}

// RouteStep is one instruction segment of a path, with its sub-polyline and
// the cities it crosses (show_fields=cities,polyline).
type RouteStep struct {
	Instruction  string     `json:"instruction"`
	RoadName     flexString `json:"road_name"`
	StepDistance string     `json:"step_distance"`
	Duration     string     `json:"duration"`
	Polyline     string     `json:"polyline"`
	Cost         RouteCost  `json:"cost"`
	Cities       []StepCity `json:"cities"`
}

// StepCity is a city crossed by a step.
type StepCity struct {
	Adcode string     `json:"adcode"`
	City   flexString `json:"city"`
}

// DistanceMeters resolves the path distance in meters.
func (p *RoutePath) DistanceMeters() int {
	return atoiLenient(p.Distance)
}

// DurationSeconds resolves the path duration, preferring the direct duration
// field and falling back to the cost breakdown. Both absent means 0 and all
// proportional ETA math degrades to 0 with it.
func (p *RoutePath) DurationSeconds() int {
	if d := atoiLenient(p.Duration); d > 0 {
		return d
	}
	return atoiLenient(p.Cost.Duration)
}

// Polyline joins the step sub-polylines into the full route geometry.
func (p *RoutePath) Polyline() string {
	parts := make([]string, 0, len(p.Steps))
	for _, st := range p.Steps {
		if st.Polyline != "" {
			parts = append(parts, st.Polyline)
		}
	}
	return strings.Join(parts, ";")
}

// DurationSeconds resolves the step duration with the same direct-then-cost
// fallback as the path.
func (s *RouteStep) DurationSeconds() int {
	if d := atoiLenient(s.Duration); d > 0 {
		return d
	}
	return atoiLenient(s.Cost.Duration)
}

// Points splits the step polyline into its "lon,lat" points.
func (s *RouteStep) Points() []string {
	if s.Polyline == "" {
		return nil
	}
	return strings.Split(s.Polyline, ";")
}

// weatherResponse is the v3 /weather/weatherInfo payload; lives is populated
// with extensions=base, forecasts with extensions=all.
type weatherResponse struct {
	Status    string            `json:"status"`
	Info      string            `json:"info"`
	Lives     []LiveWeather     `json:"lives"`
	Forecasts []ForecastWeather `json:"forecasts"`
}

// LiveWeather is an instantaneous reading for a city.
type LiveWeather struct {
	Province      string `json:"province"`
	City          string `json:"city"`
	Adcode        string `json:"adcode"`
	Weather       string `json:"weather"`
	Temperature   string `json:"temperature"`
	WindDirection string `json:"winddirection"`
	WindPower     string `json:"windpower"`
	Humidity      string `json:"humidity"`
	ReportTime    string `json:"reporttime"`
}

// ForecastWeather is a multi-day forecast for a city.
type ForecastWeather struct {
	City       string         `json:"city"`
	Adcode     string         `json:"adcode"`
	Province   string         `json:"province"`
	ReportTime string         `json:"reporttime"`
	Casts      []ForecastCast `json:"casts"`
}

// ForecastCast is one day's forecast entry with separate day and night
// conditions.
type ForecastCast struct {
	Date         string `json:"date"`
	Week         string `json:"week"`
	DayWeather   string `json:"dayweather"`
	NightWeather string `json:"nightweather"`
	DayTemp      string `json:"daytemp"`
	NightTemp    string `json:"nighttemp"`
	DayWind      string `json:"daywind"`
	NightWind    string `json:"nightwind"`
	DayPower     string `json:"daypower"`
	NightPower   string `json:"nightpower"`
}
