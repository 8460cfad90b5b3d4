package service

import (
	"errors"
	"strings"

	"bus-searcher-api/internal/models"
)

// ErrCatalogNotFound is returned when a sample catalog lookup misses.
var ErrCatalogNotFound = errors.New("service: catalog entry not found")

// CatalogService serves the fixed demonstration routes and stops.
type CatalogService struct {
	routes []models.CatalogRoute
	stops  []models.CatalogStop
}

// NewCatalogService creates a catalog service backed by the sample fixtures.
func NewCatalogService() *CatalogService {
	return &CatalogService{
		routes: []models.CatalogRoute{
			{
				ID:          1,
				RouteNumber: "101",
				Origin:      "Downtown",
				Destination: "Airport",
				Stops:       []string{"Downtown", "Main Street", "Park Avenue", "Airport"},
			},
			{
				ID:          2,
				RouteNumber: "202",
				Origin:      "University",
				Destination: "Mall",
				Stops:       []string{"University", "Library", "Shopping District", "Mall"},
			},
		},
		stops: []models.CatalogStop{
			{ID: 1, Name: "Downtown", Location: "City Center"},
			{ID: 2, Name: "Main Street", Location: "Business District"},
			{ID: 3, Name: "Park Avenue", Location: "Residential Area"},
			{ID: 4, Name: "Airport", Location: "International Airport"},
		},
	}
}

// Routes returns the sample routes, optionally filtered by origin and
// destination (case-insensitive exact match).
func (s *CatalogService) Routes(origin, destination string) []models.CatalogRoute {
	filtered := make([]models.CatalogRoute, 0, len(s.routes))
	for _, route := range s.routes {
		if origin != "" && !strings.EqualFold(route.Origin, origin) {
			continue
		}
		if destination != "" && !strings.EqualFold(route.Destination, destination) {
			continue
		}
		filtered = append(filtered, route)
	}
	return filtered
}

// RouteByID returns the sample route with the given ID, or ErrCatalogNotFound.
func (s *CatalogService) RouteByID(id int) (*models.CatalogRoute, error) {
	for _, route := range s.routes {
		if route.ID == id {
			return &route, nil
		}
	}
	return nil, ErrCatalogNotFound
}

// Stops returns the sample stops, optionally filtered by a case-insensitive
// name substring.
func (s *CatalogService) Stops(name string) []models.CatalogStop {
	filtered := make([]models.CatalogStop, 0, len(s.stops))
	for _, stop := range s.stops {
		if name != "" && !strings.Contains(strings.ToLower(stop.Name), strings.ToLower(name)) {
			continue
		}
		filtered = append(filtered, stop)
	}
	return filtered
}

// StopByID returns the sample stop with the given ID, or ErrCatalogNotFound.
func (s *CatalogService) StopByID(id int) (*models.CatalogStop, error) {
	for _, stop := range s.stops {
		if stop.ID == id {
			return &stop, nil
		}
	}
	return nil, ErrCatalogNotFound
}

// SearchRoutes matches the query against route numbers, endpoints and stop
// names, case-insensitively.
func (s *CatalogService) SearchRoutes(query string) []models.CatalogRoute {
	q := strings.ToLower(query)

	results := make([]models.CatalogRoute, 0, len(s.routes))
	for _, route := range s.routes {
		if routeMatches(route, q) {
			results = append(results, route)
		}
	}
	return results
}

func routeMatches(route models.CatalogRoute, q string) bool {
	if strings.Contains(strings.ToLower(route.RouteNumber), q) ||
		strings.Contains(strings.ToLower(route.Origin), q) ||
		strings.Contains(strings.ToLower(route.Destination), q) {
		return true
	}
	for _, stop := range route.Stops {
		if strings.Contains(strings.ToLower(stop), q) {
			return true
		}
	}
	return false
}
