package handler

import (
	"net/http"
	"strconv"

	"bus-searcher-api/internal/models"

	"github.com/gin-gonic/gin"
)

// StatisticsHandler serves the mock ridership statistics endpoints.
type StatisticsHandler struct {
	service RidershipService
}

// Service interface for dependency injection
type RidershipService interface {
	AreaStops() []models.StopInfo
	Weekly(stopID, stopName string) models.WeeklyRidership
	TopStops(limit int) []models.WeeklyRidership
	Summary() models.StatisticsSummary
}

// NewStatisticsHandler creates a new statistics handler.
func NewStatisticsHandler(svc RidershipService) *StatisticsHandler {
	return &StatisticsHandler{service: svc}
}

// ListAreaStops handles GET /api/statistics/stops requests.
//
//	@Summary	List the Pangyo area stops
//	@Tags		statistics
//	@Produce	json
//	@Success	200	{array}		models.StopInfo
//	@Failure	404	{object}	map[string]string
//	@Router		/api/statistics/stops [get]
func (h *StatisticsHandler) ListAreaStops(c *gin.Context) {
	stops := h.service.AreaStops()
	if len(stops) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no stops found"})
		return
	}

	c.JSON(http.StatusOK, stops)
}

// GetWeeklyRidership handles GET /api/statistics/weekly/:stop_id requests.
//
//	@Summary	Weekly ridership for a stop
//	@Tags		statistics
//	@Produce	json
//	@Param		stop_id	path		string	true	"stop ID"
//	@Success	200		{object}	models.WeeklyRidership
//	@Router		/api/statistics/weekly/{stop_id} [get]
func (h *StatisticsHandler) GetWeeklyRidership(c *gin.Context) {
	stopID := c.Param("stop_id")

	c.JSON(http.StatusOK, h.service.Weekly(stopID, ""))
}

// GetTopStops handles GET /api/statistics/top-stops requests.
//
//	@Summary	Stops ranked by weekly ridership
//	@Tags		statistics
//	@Produce	json
//	@Param		limit	query		int	false	"number of stops to return"	default(5)
//	@Success	200		{array}		models.WeeklyRidership
//	@Failure	400		{object}	map[string]string
//	@Router		/api/statistics/top-stops [get]
func (h *StatisticsHandler) GetTopStops(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	c.JSON(http.StatusOK, h.service.TopStops(limit))
}

// GetSummary handles GET /api/statistics/summary requests.
//
//	@Summary	Area-wide ridership summary
//	@Tags		statistics
//	@Produce	json
//	@Success	200	{object}	models.StatisticsSummary
//	@Router		/api/statistics/summary [get]
func (h *StatisticsHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Summary())
}
