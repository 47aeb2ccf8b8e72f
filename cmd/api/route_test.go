package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"route-weather-api/internal/providers/amap"
	"route-weather-api/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTripService is a mock implementation of the trip.Service interface
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) PlanRoute(ctx context.Context, req types.RouteRequest) (*types.RouteResponse, error) {
	args := m.Called(ctx, req)
	if r, ok := args.Get(0).(*types.RouteResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestApp(svc *MockTripService) *App {
	return &App{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		tripService: svc,
	}
}

func doPlanRoute(app *App, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/route", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	app.handlePlanRoute(c)
	return w
}

func TestHandlePlanRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		app := newTestApp(new(MockTripService))

		w := doPlanRoute(app, `{"origin": "Beijing"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid strategy", func(t *testing.T) {
		mockSvc := new(MockTripService)
		mockSvc.On("PlanRoute", mock.Anything, mock.Anything).Return(nil, amap.ErrInvalidStrategy)
		app := newTestApp(mockSvc)

		w := doPlanRoute(app, `{"origin": "Beijing", "destination": "Shanghai", "strategy": "teleport"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("provider failure carries upstream payload", func(t *testing.T) {
		mockSvc := new(MockTripService)
		mockSvc.On("PlanRoute", mock.Anything, mock.Anything).Return(nil, &amap.ProviderError{
			Op: "geocode", Status: "0", Info: "INVALID_ADDRESS", Raw: `{"status":"0"}`,
		})
		app := newTestApp(mockSvc)

		w := doPlanRoute(app, `{"origin": "nowhere", "destination": "Shanghai"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, `{"status":"0"}`, body["upstream"])
	})

	t.Run("unexpected failure is a server error", func(t *testing.T) {
		mockSvc := new(MockTripService)
		mockSvc.On("PlanRoute", mock.Anything, mock.Anything).Return(nil, assert.AnError)
		app := newTestApp(mockSvc)

		w := doPlanRoute(app, `{"origin": "Beijing", "destination": "Shanghai"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("successful plan", func(t *testing.T) {
		resp := &types.RouteResponse{
			Origin:      types.GeocodeResult{Formatted: "北京市", Location: "116.40,39.90"},
			Destination: types.GeocodeResult{Formatted: "上海市", Location: "121.47,31.23"},
			DistanceM:   1213000,
			DurationS:   43200,
			Waypoints: []types.Waypoint{
				{Name: "天津市", Location: "117.20,39.08", ETAMinutes: 180, WeatherSource: types.SourceForecast},
			},
		}
		mockSvc := new(MockTripService)
		mockSvc.On("PlanRoute", mock.Anything, types.RouteRequest{
			Origin: "Beijing", Destination: "Shanghai",
		}).Return(resp, nil)
		app := newTestApp(mockSvc)

		w := doPlanRoute(app, `{"origin": "Beijing", "destination": "Shanghai"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var body types.RouteResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 1213000, body.DistanceM)
		if assert.Len(t, body.Waypoints, 1) {
			assert.Equal(t, types.SourceForecast, body.Waypoints[0].WeatherSource)
		}
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app := newTestApp(new(MockTripService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
	app.handleHealth(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
