package handler

import (
	"context"
	"errors"
	"net/http"

	"bus-searcher-api/internal/models"
	"bus-searcher-api/internal/service"

	"github.com/gin-gonic/gin"
)

// IngestHandler triggers ingestion runs over the Pangyo bounding box.
type IngestHandler struct {
	service IngestService
}

// Service interface for dependency injection
type IngestService interface {
	IngestArea(ctx context.Context, bounds service.Bounds) (*service.IngestResult, error)
}

// NewIngestHandler creates a new ingest handler.
func NewIngestHandler(svc IngestService) *IngestHandler {
	return &IngestHandler{service: svc}
}

// FetchStops handles GET /api/real/fetch-stops requests.
//
//	@Summary	Collect Pangyo stop data from the provider
//	@Tags		real-statistics
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/api/real/fetch-stops [get]
func (h *IngestHandler) FetchStops(c *gin.Context) {
	result, err := h.service.IngestArea(c.Request.Context(), service.PangyoBounds)
	if err != nil {
		if errors.Is(err, service.ErrNoStopsFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no stops found; check the API key and the configured area"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	stops := make([]models.StopInfo, 0, len(result.Stops))
	for _, stop := range result.Stops {
		stops = append(stops, models.StopInfoFromBusStop(stop))
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "stop data collection complete",
		"total_stops": result.TotalFound,
		"saved_stops": result.Saved,
		"stops":       stops,
	})
}
