package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bus-searcher-api/internal/models"
	"bus-searcher-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the fixed demonstration routes and stops.
type CatalogHandler struct {
	service CatalogService
}

// Service interface for dependency injection
type CatalogService interface {
	Routes(origin, destination string) []models.CatalogRoute
	RouteByID(id int) (*models.CatalogRoute, error)
	Stops(name string) []models.CatalogStop
	StopByID(id int) (*models.CatalogStop, error)
	SearchRoutes(query string) []models.CatalogRoute
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// ListRoutes handles GET /routes requests.
//
//	@Summary	List sample routes
//	@Tags		catalog
//	@Produce	json
//	@Param		origin		query	string	false	"filter by origin"
//	@Param		destination	query	string	false	"filter by destination"
//	@Success	200	{array}	models.CatalogRoute
//	@Router		/routes [get]
func (h *CatalogHandler) ListRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Routes(c.Query("origin"), c.Query("destination")))
}

// GetRoute handles GET /routes/:route_id requests.
//
//	@Summary	Get a sample route
//	@Tags		catalog
//	@Produce	json
//	@Param		route_id	path		int	true	"route ID"
//	@Success	200			{object}	models.CatalogRoute
//	@Failure	404			{object}	map[string]string
//	@Router		/routes/{route_id} [get]
func (h *CatalogHandler) GetRoute(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("route_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
		return
	}

	route, err := h.service.RouteByID(id)
	if err != nil {
		if errors.Is(err, service.ErrCatalogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, route)
}

// ListStops handles GET /stops requests.
//
//	@Summary	List sample stops
//	@Tags		catalog
//	@Produce	json
//	@Param		name	query	string	false	"filter by name substring"
//	@Success	200	{array}	models.CatalogStop
//	@Router		/stops [get]
func (h *CatalogHandler) ListStops(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stops(c.Query("name")))
}

// GetStop handles GET /stops/:stop_id requests.
//
//	@Summary	Get a sample stop
//	@Tags		catalog
//	@Produce	json
//	@Param		stop_id	path		int	true	"stop ID"
//	@Success	200		{object}	models.CatalogStop
//	@Failure	404		{object}	map[string]string
//	@Router		/stops/{stop_id} [get]
func (h *CatalogHandler) GetStop(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("stop_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "stop not found"})
		return
	}

	stop, err := h.service.StopByID(id)
	if err != nil {
		if errors.Is(err, service.ErrCatalogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stop not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, stop)
}

// SearchRoutes handles GET /search requests.
//
//	@Summary	Search sample routes by any field
//	@Tags		catalog
//	@Produce	json
//	@Param		query	query		string	true	"search term"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	map[string]string
//	@Router		/search [get]
func (h *CatalogHandler) SearchRoutes(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'query'"})
		return
	}

	results := h.service.SearchRoutes(query)
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"results": results,
		"count":   len(results),
	})
}
