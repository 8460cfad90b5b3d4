package handler

import (
	"context"
	"errors"
	"net/http"

	"bus-searcher-api/internal/models"
	"bus-searcher-api/internal/service"

	"github.com/gin-gonic/gin"
)

// StopsHandler serves persisted stop listings and stop details.
type StopsHandler struct {
	service StopService
}

// Service interface for dependency injection
type StopService interface {
	ListSavedStops(ctx context.Context) ([]models.StopInfo, error)
	GetStopDetail(ctx context.Context, stationID string) (*models.StopDetail, error)
}

// NewStopsHandler creates a new stops handler.
func NewStopsHandler(svc StopService) *StopsHandler {
	return &StopsHandler{service: svc}
}

// ListSavedStops handles GET /api/real/stops requests.
//
//	@Summary	List stops saved by previous ingestion runs
//	@Tags		real-statistics
//	@Produce	json
//	@Success	200	{array}		models.StopInfo
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/api/real/stops [get]
func (h *StopsHandler) ListSavedStops(c *gin.Context) {
	stops, err := h.service.ListSavedStops(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoSavedStops) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no saved stops; call /api/real/fetch-stops first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, stops)
}

// GetStopInfo handles GET /api/real/stops/:stop_id/info requests.
//
//	@Summary	Fetch stop detail from the provider
//	@Tags		real-statistics
//	@Produce	json
//	@Param		stop_id	path		string	true	"station ID"
//	@Success	200		{object}	models.StopDetail
//	@Failure	404		{object}	map[string]string
//	@Router		/api/real/stops/{stop_id}/info [get]
func (h *StopsHandler) GetStopInfo(c *gin.Context) {
	stopID := c.Param("stop_id")

	detail, err := h.service.GetStopDetail(c.Request.Context(), stopID)
	if err != nil {
		if errors.Is(err, service.ErrStopNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stop not found: " + stopID})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, detail)
}
