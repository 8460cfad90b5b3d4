package service

import (
	"context"
	"errors"

	"bus-searcher-api/internal/gbis"
	"bus-searcher-api/internal/models"

	"github.com/rs/zerolog/log"
)

// ErrRouteNotFound is returned when the provider has no data for a route.
var ErrRouteNotFound = errors.New("service: route not found")

// RouteDetailFetcher fetches the raw provider detail response for a route.
type RouteDetailFetcher interface {
	FetchRouteDetail(ctx context.Context, routeID string) ([]byte, error)
}

// RouteWriter persists route records with upsert-by-route-ID semantics.
type RouteWriter interface {
	UpsertRoute(ctx context.Context, route models.BusRoute) (bool, error)
}

// RouteService serves on-demand route details and persists each route it sees.
type RouteService struct {
	client RouteDetailFetcher
	store  RouteWriter
}

// NewRouteService creates a new route service.
func NewRouteService(client RouteDetailFetcher, store RouteWriter) *RouteService {
	return &RouteService{client: client, store: store}
}

// GetRouteDetail fetches and parses the provider detail for a route. On
// success the route record is upserted; a failed upsert is logged but does not
// fail the request, since the caller already holds the detail. Provider
// failures are reported as ErrRouteNotFound.
func (s *RouteService) GetRouteDetail(ctx context.Context, routeID string) (*models.RouteDetail, error) {
	body, err := s.client.FetchRouteDetail(ctx, routeID)
	if err != nil {
		log.Warn().Err(err).Str("route_id", routeID).Msg("route detail fetch failed")
		return nil, ErrRouteNotFound
	}

	detail, err := gbis.ParseRouteDetail(body)
	if err != nil {
		log.Warn().Err(err).Str("route_id", routeID).Msg("route detail response unreadable")
		return nil, ErrRouteNotFound
	}

	if detail.RouteID == "" {
		return nil, ErrRouteNotFound
	}

	route := models.BusRoute{
		RouteID:          detail.RouteID,
		RouteName:        detail.RouteName,
		RouteType:        detail.RouteType,
		StartStationName: detail.StartStationName,
		EndStationName:   detail.EndStationName,
	}
	if _, err := s.store.UpsertRoute(ctx, route); err != nil {
		log.Error().Err(err).Str("route_id", detail.RouteID).Msg("failed to save route")
	}

	return detail, nil
}
