package service

import (
	"context"
	"errors"
	"fmt"

	"bus-searcher-api/internal/gbis"
	"bus-searcher-api/internal/models"

	"github.com/rs/zerolog/log"
)

// ErrStopNotFound is returned when the provider has no data for a stop.
var ErrStopNotFound = errors.New("service: stop not found")

// ErrNoSavedStops is returned when the repository holds no stops yet.
var ErrNoSavedStops = errors.New("service: no saved stops")

// StopDetailFetcher fetches the raw provider detail response for a station.
type StopDetailFetcher interface {
	FetchStationDetail(ctx context.Context, stationID string) ([]byte, error)
}

// StopReader reads persisted stops back.
type StopReader interface {
	ListStops(ctx context.Context) ([]models.BusStop, error)
}

// StopService serves persisted stop listings and on-demand stop details.
type StopService struct {
	client StopDetailFetcher
	repo   StopReader
}

// NewStopService creates a new stop service.
func NewStopService(client StopDetailFetcher, repo StopReader) *StopService {
	return &StopService{client: client, repo: repo}
}

// ListSavedStops returns every persisted stop in wire shape, or
// ErrNoSavedStops when nothing has been ingested yet.
func (s *StopService) ListSavedStops(ctx context.Context) ([]models.StopInfo, error) {
	stops, err := s.repo.ListStops(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list stops: %w", err)
	}

	if len(stops) == 0 {
		return nil, ErrNoSavedStops
	}

	infos := make([]models.StopInfo, 0, len(stops))
	for _, stop := range stops {
		infos = append(infos, models.StopInfoFromBusStop(stop))
	}
	return infos, nil
}

// GetStopDetail fetches and parses the provider detail for a station. A
// provider failure or an empty response is reported as ErrStopNotFound; the
// underlying cause is logged here.
func (s *StopService) GetStopDetail(ctx context.Context, stationID string) (*models.StopDetail, error) {
	body, err := s.client.FetchStationDetail(ctx, stationID)
	if err != nil {
		log.Warn().Err(err).Str("station_id", stationID).Msg("station detail fetch failed")
		return nil, ErrStopNotFound
	}

	detail, err := gbis.ParseStationDetail(body)
	if err != nil {
		log.Warn().Err(err).Str("station_id", stationID).Msg("station detail response unreadable")
		return nil, ErrStopNotFound
	}

	if detail.StationID == "" {
		return nil, ErrStopNotFound
	}

	return detail, nil
}
