package handler

import (
	"context"
	"errors"
	"net/http"

	"bus-searcher-api/internal/models"
	"bus-searcher-api/internal/service"

	"github.com/gin-gonic/gin"
)

// RoutesHandler serves on-demand route details.
type RoutesHandler struct {
	service RouteService
}

// Service interface for dependency injection
type RouteService interface {
	GetRouteDetail(ctx context.Context, routeID string) (*models.RouteDetail, error)
}

// NewRoutesHandler creates a new routes handler.
func NewRoutesHandler(svc RouteService) *RoutesHandler {
	return &RoutesHandler{service: svc}
}

// GetRouteInfo handles GET /api/real/routes/:route_id/info requests.
//
//	@Summary	Fetch route detail from the provider
//	@Tags		real-statistics
//	@Produce	json
//	@Param		route_id	path		string	true	"route ID"
//	@Success	200			{object}	models.RouteDetail
//	@Failure	404			{object}	map[string]string
//	@Router		/api/real/routes/{route_id}/info [get]
func (h *RoutesHandler) GetRouteInfo(c *gin.Context) {
	routeID := c.Param("route_id")

	detail, err := h.service.GetRouteDetail(c.Request.Context(), routeID)
	if err != nil {
		if errors.Is(err, service.ErrRouteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "route not found: " + routeID})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, detail)
}
