package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"bus-searcher-api/internal/gbis"
	"bus-searcher-api/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrNoStopsFound is returned when an ingestion run yields no stops, either
// because the area is empty or because every provider query failed. Callers
// surface it as a not-found condition, not a server fault.
var ErrNoStopsFound = errors.New("service: no stops found in area")

// Bounds is a latitude/longitude bounding box.
type Bounds struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
}

// PangyoBounds covers the Pangyo-dong area of Seongnam, the area the service
// was built around.
var PangyoBounds = Bounds{
	LatMin: 37.3940,
	LatMax: 37.4050,
	LonMin: 127.1050,
	LonMax: 127.1200,
}

// StationSearcher issues a single point-radius station search.
type StationSearcher interface {
	SearchStationsByCoordinate(ctx context.Context, lat, lon float64) ([]byte, error)
}

// StopWriter persists stop records with upsert-by-station-ID semantics.
type StopWriter interface {
	UpsertStop(ctx context.Context, stop models.BusStop) (bool, error)
}

// IngestResult reports one ingestion run. Stops holds the deduplicated
// in-memory scan results regardless of how many were persisted.
type IngestResult struct {
	RunID      string
	TotalFound int
	Saved      int
	Stops      []models.BusStop
}

// IngestService scans a bounding box against the provider and persists the
// stops it finds.
type IngestService struct {
	client StationSearcher
	store  StopWriter
	rows   int
	cols   int
}

// NewIngestService creates an ingest service tiling bounding boxes into a
// rows x cols grid of point queries. Resolutions below 1 are clamped.
func NewIngestService(client StationSearcher, store StopWriter, rows, cols int) *IngestService {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return &IngestService{client: client, store: store, rows: rows, cols: cols}
}

// IngestArea scans the bounding box and upserts every stop found. A stop that
// fails to persist is logged and skipped; it still appears in Stops but not in
// the Saved count.
func (s *IngestService) IngestArea(ctx context.Context, bounds Bounds) (*IngestResult, error) {
	stops := s.scanArea(ctx, bounds)
	if len(stops) == 0 {
		return nil, ErrNoStopsFound
	}

	runID := uuid.New().String()

	saved := 0
	for _, stop := range stops {
		if _, err := s.store.UpsertStop(ctx, stop); err != nil {
			log.Error().Err(err).Str("run_id", runID).Str("station_id", stop.StationID).
				Msg("failed to save stop")
			continue
		}
		saved++
	}

	log.Info().Str("run_id", runID).Int("total_found", len(stops)).Int("saved", saved).
		Msg("area ingestion finished")

	return &IngestResult{
		RunID:      runID,
		TotalFound: len(stops),
		Saved:      saved,
		Stops:      stops,
	}, nil
}

// scanArea queries every grid cell concurrently and merges the results,
// deduplicating by station ID. A failed cell contributes zero stops; the scan
// never fails as a whole.
func (s *IngestService) scanArea(ctx context.Context, bounds Bounds) []models.BusStop {
	latStep := (bounds.LatMax - bounds.LatMin) / float64(s.rows)
	lonStep := (bounds.LonMax - bounds.LonMin) / float64(s.cols)

	var wg sync.WaitGroup
	var mu sync.Mutex
	byStationID := make(map[string]models.BusStop)

	for i := 0; i < s.rows; i++ {
		for j := 0; j < s.cols; j++ {
			lat := bounds.LatMin + float64(i)*latStep
			lon := bounds.LonMin + float64(j)*lonStep

			wg.Add(1)
			go func(lat, lon float64) {
				defer wg.Done()

				stops, err := s.scanCell(ctx, lat, lon)
				if err != nil {
					log.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).
						Msg("grid cell query failed")
					return
				}

				mu.Lock()
				for _, stop := range stops {
					byStationID[stop.StationID] = stop
				}
				mu.Unlock()
			}(lat, lon)
		}
	}

	wg.Wait()

	stops := make([]models.BusStop, 0, len(byStationID))
	for _, stop := range byStationID {
		stops = append(stops, stop)
	}
	return stops
}

func (s *IngestService) scanCell(ctx context.Context, lat, lon float64) ([]models.BusStop, error) {
	body, err := s.client.SearchStationsByCoordinate(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("service: station search failed: %w", err)
	}

	stops, err := gbis.ParseStationList(body)
	if err != nil {
		return nil, fmt.Errorf("service: station search response unreadable: %w", err)
	}

	return stops, nil
}
