package amap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://lbs.amap.com/api/webservice/summary
// Geocoding, reverse geocoding and weather live on the v3 family; driving
// directions on the v5 family.
const (
	DefaultBaseV3 = "https://restapi.amap.com/v3"
	DefaultBaseV5 = "https://restapi.amap.com/v5"

	defaultTimeout = 20 * time.Second
)

// Strategy selects the driving route preference.
type Strategy string

const (
	StrategyFastest         Strategy = "fastest"
	StrategyAvoidHighway    Strategy = "avoid_highway"
	StrategyAvoidTolls      Strategy = "avoid_tolls"
	StrategyAvoidCongestion Strategy = "avoid_congestion"
)

// ErrInvalidStrategy reports a strategy value outside the supported enum. It
// is returned before any network call is made.
var ErrInvalidStrategy = errors.New("unsupported driving strategy")

// ParseStrategy validates a request strategy value. The empty string selects
// the default, fastest.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "":
		return StrategyFastest, nil
	case StrategyFastest, StrategyAvoidHighway, StrategyAvoidTolls, StrategyAvoidCongestion:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
}

// code maps the strategy to Amap's numeric driving strategy parameter:
// 0 fastest, 1 avoid highways, 2 avoid tolls, 3 avoid congestion.
func (s Strategy) code() (string, error) {
	switch s {
	case StrategyFastest:
		return "0", nil
	case StrategyAvoidHighway:
		return "1", nil
	case StrategyAvoidTolls:
		return "2", nil
	case StrategyAvoidCongestion:
		return "3", nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, string(s))
}

// ProviderError reports a failed Amap call: a transport error, a non-success
// provider status, or a missing payload. Raw keeps the upstream body for
// diagnosability.
type ProviderError struct {
	Op     string
	Status string
	Info   string
	Raw    string
}

func (e *ProviderError) Error() string {
	if e.Info != "" {
		return fmt.Sprintf("amap %s failed: status=%s info=%s", e.Op, e.Status, e.Info)
	}
	return fmt.Sprintf("amap %s failed: %s", e.Op, e.Raw)
}

// Config holds the client settings. Key is required; everything else
// defaults to the public Amap endpoints and a 20s timeout.
type Config struct {
	Key     string
	BaseV3  string
	BaseV5  string
	Timeout time.Duration
}

// Client calls the Amap v3/v5 REST APIs.
type Client struct {
	httpClient *http.Client
	baseV3     string
	baseV5     string
	key        string
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseV3 == "" {
		cfg.BaseV3 = DefaultBaseV3
	}
	if cfg.BaseV5 == "" {
		cfg.BaseV5 = DefaultBaseV5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseV3:     cfg.BaseV3,
		baseV5:     cfg.BaseV5,
		key:        cfg.Key,
		logger:     logger.With("component", "amap-client"),
	}
}

// get issues one API call and decodes the body into out, returning the raw
// body for error reporting.
func (c *Client) get(ctx context.Context, base, path string, params url.Values, out any) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path += path
	params.Set("key", c.key)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("amap API returned error",
			"path", path,
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return string(body), fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return string(body), fmt.Errorf("failed to decode response: %w", err)
	}
	return string(body), nil
}

// Geocode resolves an address to a formatted name and "lon,lat" location.
func (c *Client) Geocode(ctx context.Context, address string) (*Geocode, error) {
	params := url.Values{}
	params.Set("address", address)

	var decoded geocodeResponse
	raw, err := c.get(ctx, c.baseV3, "/geocode/geo", params, &decoded)
	if err != nil {
		return nil, err
	}
	if decoded.Status != "1" || len(decoded.Geocodes) == 0 {
		return nil, &ProviderError{Op: "geocode", Status: decoded.Status, Info: decoded.Info, Raw: raw}
	}

	g := decoded.Geocodes[0]
	formatted := g.FormattedAddress.String()
	if formatted == "" {
		formatted = address
	}
	return &Geocode{
		Formatted: formatted,
		Location:  g.Location,
		Adcode:    g.Adcode.String(),
	}, nil
}

// ReverseGeocode resolves a "lon,lat" point to its administrative city and
// adcode. The city name falls back to the province for municipalities.
func (c *Client) ReverseGeocode(ctx context.Context, location string) (*RegeoResult, error) {
	params := url.Values{}
	params.Set("location", location)
	params.Set("radius", "1000")
	params.Set("extensions", "base")

	var decoded regeoResponse
	raw, err := c.get(ctx, c.baseV3, "/geocode/regeo", params, &decoded)
	if err != nil {
		return nil, err
	}
	if decoded.Status != "1" {
		return nil, &ProviderError{Op: "regeo", Status: decoded.Status, Info: decoded.Info, Raw: raw}
	}

	comp := decoded.Regeocode.AddressComponent
	city := comp.City.String()
	if city == "" {
		city = comp.Province.String()
	}
	return &RegeoResult{
		Adcode: comp.Adcode.String(),
		City:   city,
	}, nil
}

// DriveRoute fetches a driving route between two "lon,lat" locations and
// returns its first path. show_fields keeps the response small while still
// carrying the cost breakdown, crossed cities and step polylines.
func (c *Client) DriveRoute(ctx context.Context, originLoc, destLoc string, strategy Strategy) (*RoutePath, error) {
	code, err := strategy.code()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("origin", originLoc)
	params.Set("destination", destLoc)
	params.Set("strategy", code)
	params.Set("show_fields", "cost,cities,polyline")

	var decoded routeResponse
	raw, err := c.get(ctx, c.baseV5, "/direction/driving", params, &decoded)
	if err != nil {
		return nil, err
	}
	if decoded.Status != "1" || len(decoded.Route.Paths) == 0 {
		return nil, &ProviderError{Op: "route", Status: decoded.Status, Info: decoded.Info, Raw: raw}
	}

	path := decoded.Route.Paths[0]
	c.logger.Debug("fetched driving route",
		"distance_m", path.DistanceMeters(),
		"duration_s", path.DurationSeconds(),
		"steps", len(path.Steps),
	)
	return &path, nil
}

// WeatherLive fetches the current conditions for a city or adcode.
func (c *Client) WeatherLive(ctx context.Context, cityKey string) (*LiveWeather, error) {
	params := url.Values{}
	params.Set("city", cityKey)
	params.Set("extensions", "base")

	var decoded weatherResponse
	raw, err := c.get(ctx, c.baseV3, "/weather/weatherInfo", params, &decoded)
	if err != nil {
		return nil, err
	}
	if decoded.Status != "1" || len(decoded.Lives) == 0 {
		return nil, &ProviderError{Op: "weather_live", Status: decoded.Status, Info: decoded.Info, Raw: raw}
	}
	return &decoded.Lives[0], nil
}

// WeatherForecast fetches the multi-day forecast for a city or adcode.
func (c *Client) WeatherForecast(ctx context.Context, cityKey string) (*ForecastWeather, error) {
	params := url.Values{}
	params.Set("city", cityKey)
	params.Set("extensions", "all")

	var decoded weatherResponse
	raw, err := c.get(ctx, c.baseV3, "/weather/weatherInfo", params, &decoded)
	if err != nil {
		return nil, err
	}
	if decoded.Status != "1" || len(decoded.Forecasts) == 0 {
		return nil, &ProviderError{Op: "weather_forecast", Status: decoded.Status, Info: decoded.Info, Raw: raw}
	}
	return &decoded.Forecasts[0], nil
}
