// Package trip plans a driving route and enriches its waypoints with
// weather chosen by estimated arrival time.
package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"route-weather-api/internal/providers/amap"
	"route-weather-api/internal/types"
	"route-weather-api/internal/weather"
)

// ErrInvalidDepartAt reports a depart_at value that is not an ISO-8601
// timestamp.
var ErrInvalidDepartAt = errors.New("invalid depart_at timestamp")

// cstZone is applied to timezone-naive depart_at values. The upstream
// provider operates in this zone; kept fixed on purpose.
var cstZone = time.FixedZone("UTC+8", 8*3600)

// MapProvider is the slice of the Amap client the planner needs.
type MapProvider interface {
	Geocode(ctx context.Context, address string) (*amap.Geocode, error)
	ReverseGeocode(ctx context.Context, location string) (*amap.RegeoResult, error)
	DriveRoute(ctx context.Context, originLoc, destLoc string, strategy amap.Strategy) (*amap.RoutePath, error)
	WeatherLive(ctx context.Context, cityKey string) (*amap.LiveWeather, error)
	WeatherForecast(ctx context.Context, cityKey string) (*amap.ForecastWeather, error)
}

// Service plans routes with per-waypoint weather.
type Service interface {
	PlanRoute(ctx context.Context, req types.RouteRequest) (*types.RouteResponse, error)
}

type tripService struct {
	provider     MapProvider
	maxWaypoints int
	now          func() time.Time
	logger       *slog.Logger
}

// NewService creates a route planner backed by the given provider.
func NewService(provider MapProvider, maxWaypoints int, logger *slog.Logger) Service {
	return NewServiceWithClock(provider, maxWaypoints, time.Now, logger)
}

// NewServiceWithClock additionally injects the clock, for tests.
func NewServiceWithClock(provider MapProvider, maxWaypoints int, now func() time.Time, logger *slog.Logger) Service {
	if maxWaypoints <= 0 {
		maxWaypoints = DefaultMaxWaypoints
	}
	return &tripService{
		provider:     provider,
		maxWaypoints: maxWaypoints,
		now:          now,
		logger:       logger.With("component", "trip-service"),
	}
}

// PlanRoute runs the end-to-end sequence: geocode both endpoints, fetch the
// route, segment it, resolve and weather-enrich each waypoint, and assemble
// the response. Geocode and route failures abort the request; weather
// failures degrade the single waypoint they belong to.
func (s *tripService) PlanRoute(ctx context.Context, req types.RouteRequest) (*types.RouteResponse, error) {
	strategy, err := amap.ParseStrategy(req.Strategy)
	if err != nil {
		return nil, err
	}
	departAt, err := s.resolveDepartAt(req.DepartAt)
	if err != nil {
		return nil, err
	}

	origin, err := s.provider.Geocode(ctx, req.Origin)
	if err != nil {
		return nil, fmt.Errorf("geocode origin %q: %w", req.Origin, err)
	}
	dest, err := s.provider.Geocode(ctx, req.Destination)
	if err != nil {
		return nil, fmt.Errorf("geocode destination %q: %w", req.Destination, err)
	}

	path, err := s.provider.DriveRoute(ctx, origin.Location, dest.Location, strategy)
	if err != nil {
		return nil, fmt.Errorf("route %s -> %s: %w", origin.Location, dest.Location, err)
	}

	durationS := path.DurationSeconds()
	polyline := path.Polyline()

	var waypoints []types.Waypoint
	segmentation := "sampled_points"
	if cities := ExtractCrossCities(path.Steps); len(cities) > 0 {
		segmentation = "cross_cities"
		waypoints = s.crossCityWaypoints(ctx, cities, durationS, departAt)
	} else {
		points := SamplePoints(path.Steps, s.maxWaypoints)
		waypoints = s.sampledWaypoints(ctx, points, departAt)
	}

	sort.SliceStable(waypoints, func(i, j int) bool {
		return waypoints[i].ETAMinutes < waypoints[j].ETAMinutes
	})

	s.logger.Info("planned route",
		"origin", origin.Formatted,
		"destination", dest.Formatted,
		"distance_m", path.DistanceMeters(),
		"duration_s", durationS,
		"segmentation", segmentation,
		"waypoints", len(waypoints),
	)

	return &types.RouteResponse{
		Origin:      types.GeocodeResult{Formatted: origin.Formatted, Location: origin.Location},
		Destination: types.GeocodeResult{Formatted: dest.Formatted, Location: dest.Location},
		DistanceM:   path.DistanceMeters(),
		DurationS:   durationS,
		Polyline:    polyline,
		Waypoints:   waypoints,
		Debug: map[string]any{
			"provider_distance":      path.Distance,
			"provider_duration":      path.Duration,
			"provider_cost_duration": path.Cost.Duration,
			"steps":                  len(path.Steps),
			"polyline_points":        countPoints(polyline),
			"segmentation":           segmentation,
		},
	}, nil
}

// resolveDepartAt defaults to now and interprets a timezone-naive timestamp
// as UTC+8.
func (s *tripService) resolveDepartAt(raw string) (time.Time, error) {
	if raw == "" {
		return s.now(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, cstZone); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDepartAt, raw)
}

// crossCityWaypoints builds one waypoint per crossed city, spreading the ETA
// evenly across the trip. Cities whose name cannot be geocoded to a location
// are dropped.
func (s *tripService) crossCityWaypoints(ctx context.Context, cities []CrossCity, durationS int, departAt time.Time) []types.Waypoint {
	waypoints := make([]types.Waypoint, 0, len(cities))
	n := len(cities)
	for i, city := range cities {
		etaMin := SpreadETA(i, n, durationS)
		etaTime := departAt.Add(time.Duration(etaMin) * time.Minute)

		g, err := s.provider.Geocode(ctx, city.Name)
		if err != nil || g.Location == "" {
			s.logger.Warn("dropping cross city without resolvable location",
				"city", city.Name,
				"adcode", city.Adcode,
				"error", err,
			)
			continue
		}

		report, source, note := s.waypointWeather(ctx, city.Adcode, etaTime)
		waypoints = append(waypoints, types.Waypoint{
			Name:          g.Formatted,
			Location:      g.Location,
			ETAMinutes:    etaMin,
			ETATime:       etaTime,
			Adcode:        city.Adcode,
			Weather:       report,
			WeatherSource: source,
			WeatherError:  note,
		})
	}
	return waypoints
}

// sampledWaypoints builds waypoints from proportionally sampled route points,
// reverse-geocoding each to a city. Unlike the cross-city path, a waypoint
// survives a failed reverse geocode with a placeholder name.
func (s *tripService) sampledWaypoints(ctx context.Context, points []SampledPoint, departAt time.Time) []types.Waypoint {
	waypoints := make([]types.Waypoint, 0, len(points))
	for idx, p := range points {
		etaTime := departAt.Add(time.Duration(p.ETAMinutes) * time.Minute)

		name := fmt.Sprintf("Waypoint %d", idx+1)
		adcode := ""
		cityKey := ""
		regeo, regeoErr := s.provider.ReverseGeocode(ctx, p.Location)
		if regeoErr != nil {
			s.logger.Debug("reverse geocode failed for sampled point",
				"location", p.Location,
				"error", regeoErr,
			)
		} else {
			if regeo.City != "" {
				name = regeo.City
			}
			adcode = regeo.Adcode
			cityKey = regeo.Adcode
			if cityKey == "" {
				cityKey = regeo.City
			}
		}

		var (
			report *types.WeatherReport
			source = types.SourceNone
			note   string
		)
		switch {
		case cityKey != "":
			report, source, note = s.waypointWeather(ctx, cityKey, etaTime)
		case regeoErr != nil:
			note = fmt.Sprintf("regeo_error:%T", regeoErr)
		default:
			note = "city_unresolved"
		}

		waypoints = append(waypoints, types.Waypoint{
			Name:          name,
			Location:      p.Location,
			ETAMinutes:    p.ETAMinutes,
			ETATime:       etaTime,
			Adcode:        adcode,
			Weather:       report,
			WeatherSource: source,
			WeatherError:  note,
		})
	}
	return waypoints
}

// waypointWeather fetches the live reading and forecast for a city in
// parallel and arbitrates between them. Fetch failures surface only through
// the selection note; they never abort the request.
func (s *tripService) waypointWeather(ctx context.Context, cityKey string, etaTime time.Time) (*types.WeatherReport, types.WeatherSource, string) {
	var (
		wg       sync.WaitGroup
		live     *amap.LiveWeather
		forecast *amap.ForecastWeather
		liveErr  error
		fcErr    error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		live, liveErr = s.provider.WeatherLive(ctx, cityKey)
	}()
	go func() {
		defer wg.Done()
		forecast, fcErr = s.provider.WeatherForecast(ctx, cityKey)
	}()
	wg.Wait()

	if liveErr != nil {
		live = nil
		s.logger.Debug("live weather unavailable", "city", cityKey, "error", liveErr)
	}
	if fcErr != nil {
		forecast = nil
		s.logger.Debug("forecast weather unavailable", "city", cityKey, "error", fcErr)
	}

	sel := weather.Select(live, forecast, etaTime, s.now())
	note := sel.Note
	if sel.Source == types.SourceNone {
		switch {
		case liveErr != nil && fcErr != nil:
			note = fmt.Sprintf("weather_fetch_error:%T", fcErr)
		case fcErr != nil:
			note = fmt.Sprintf("forecast_fetch_error:%T", fcErr)
		case liveErr != nil && note == "":
			note = fmt.Sprintf("live_fetch_error:%T", liveErr)
		}
	}
	return sel.Report, sel.Source, note
}

func countPoints(polyline string) int {
	if polyline == "" {
		return 0
	}
	return strings.Count(polyline, ";") + 1
}
