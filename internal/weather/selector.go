// Package weather arbitrates between a live reading and a multi-day
// forecast for a waypoint's estimated arrival time.
package weather

import (
	"time"

	"route-weather-api/internal/providers/amap"
	"route-weather-api/internal/types"
)

// liveWindow is how far ahead a live reading is still considered
// representative of arrival conditions.
const liveWindow = 2 * time.Hour

const (
	NoteForecastUnavailable = "forecast_unavailable"
	NoteForecastEmpty       = "forecast_empty"
	noteSelectErrorPrefix   = "forecast_select_error:"
)

// Selection is the outcome of weather arbitration. Source is SourceNone
// exactly when Report is nil; Note carries a diagnostic for degraded
// outcomes.
type Selection struct {
	Report *types.WeatherReport
	Source types.WeatherSource
	Note   string
}

// Select decides which weather source best represents conditions at etaTime.
// It never fails: every absence or malformed-data combination degrades to a
// well-formed Selection.
//
// Live wins when arrival is within the live window. Otherwise the forecast
// cast matching the arrival date (UTC) is shaped into a day/night display
// record, falling back to live and finally to a SourceNone result.
func Select(live *amap.LiveWeather, forecast *amap.ForecastWeather, etaTime, now time.Time) Selection {
	if etaTime.Sub(now) <= liveWindow && live != nil {
		return Selection{Report: liveReport(live), Source: types.SourceLive}
	}

	if forecast == nil {
		return degraded(live, NoteForecastUnavailable)
	}
	if len(forecast.Casts) == 0 {
		return degraded(live, NoteForecastEmpty)
	}

	eta := etaTime.UTC()
	cast := forecast.Casts[0]
	for _, c := range forecast.Casts {
		if c.Date == eta.Format("2006-01-02") {
			cast = c
			break
		}
	}

	daytime := eta.Hour() >= 6 && eta.Hour() < 18
	condition, temperature := cast.DayWeather, cast.DayTemp
	if !daytime {
		condition, temperature = cast.NightWeather, cast.NightTemp
	}
	if condition == "" && temperature == "" {
		// the provider handed back a cast with no usable reading; unlike
		// plain absence this stays annotated even when live fills in
		note := noteSelectErrorPrefix + "empty_cast"
		if live != nil {
			return Selection{Report: liveReport(live), Source: types.SourceLive, Note: note}
		}
		return Selection{Source: types.SourceNone, Note: note}
	}

	castCopy := cast
	return Selection{
		Report: &types.WeatherReport{
			Condition:   condition,
			Temperature: temperature,
			City:        forecast.City,
			ReportTime:  forecast.ReportTime,
			Daytime:     &daytime,
			CastDate:    cast.Date,
			Cast:        &castCopy,
		},
		Source: types.SourceForecast,
	}
}

// degraded prefers the live reading when one exists; the note is kept only
// when nothing can be surfaced.
func degraded(live *amap.LiveWeather, note string) Selection {
	if live != nil {
		return Selection{Report: liveReport(live), Source: types.SourceLive}
	}
	return Selection{Source: types.SourceNone, Note: note}
}

func liveReport(live *amap.LiveWeather) *types.WeatherReport {
	return &types.WeatherReport{
		Condition:     live.Weather,
		Temperature:   live.Temperature,
		City:          live.City,
		ReportTime:    live.ReportTime,
		Humidity:      live.Humidity,
		WindDirection: live.WindDirection,
		WindPower:     live.WindPower,
	}
}
