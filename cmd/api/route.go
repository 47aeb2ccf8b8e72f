package main

import (
	"errors"
	"net/http"

	"route-weather-api/internal/providers/amap"
	"route-weather-api/internal/trip"
	"route-weather-api/internal/types"

	"github.com/gin-gonic/gin"
)

// handlePlanRoute godoc
// @Summary Plan a driving route with waypoint weather
// @Description Geocodes the origin and destination, computes a driving route, and attaches live or forecast weather (chosen by estimated arrival time) to representative waypoints along it
// @Tags route
// @Accept json
// @Produce json
// @Param request body types.RouteRequest true "Route request"
// @Success 200 {object} types.RouteResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/route [post]
func (app *App) handlePlanRoute(c *gin.Context) {
	var req types.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := app.tripService.PlanRoute(c.Request.Context(), req)
	if err != nil {
		// Unsupported strategy and malformed depart_at are client errors
		if errors.Is(err, amap.ErrInvalidStrategy) || errors.Is(err, trip.ErrInvalidDepartAt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Failed geocode/route calls carry the upstream payload for
		// diagnosability and map to a client error like the provider's own
		var provErr *amap.ProviderError
		if errors.As(err, &provErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "upstream": provErr.Raw})
			return
		}

		app.logger.Error("failed to plan route",
			"origin", req.Origin,
			"destination", req.Destination,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to plan route"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
