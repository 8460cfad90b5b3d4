package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"bus-searcher-api/internal/models"
	"bus-searcher-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSearcher answers each grid-cell query with a caller-provided function
// and records the queried coordinates.
type stubSearcher struct {
	mu      sync.Mutex
	calls   [][2]float64
	respond func(lat, lon float64) ([]byte, error)
}

func (s *stubSearcher) SearchStationsByCoordinate(_ context.Context, lat, lon float64) ([]byte, error) {
	s.mu.Lock()
	s.calls = append(s.calls, [2]float64{lat, lon})
	s.mu.Unlock()
	return s.respond(lat, lon)
}

func (s *stubSearcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// stationListXML renders a provider station-search response for the given
// stops.
func stationListXML(stops ...models.BusStop) []byte {
	var b strings.Builder
	b.WriteString(`<response><msgBody>`)
	for _, stop := range stops {
		fmt.Fprintf(&b,
			`<busStationList><stationId>%s</stationId><stationName>%s</stationName><latitude>%f</latitude><longitude>%f</longitude><busRouteCount>%d</busRouteCount></busStationList>`,
			stop.StationID, stop.StationName, stop.Latitude, stop.Longitude, stop.BusRouteCount)
	}
	b.WriteString(`</msgBody></response>`)
	return []byte(b.String())
}

var fixtureStops = []models.BusStop{
	{StationID: "22000001", StationName: "판교역 1번출구", Latitude: 37.3950, Longitude: 127.1100, BusRouteCount: 12},
	{StationID: "22000002", StationName: "판교역 2번출구", Latitude: 37.3951, Longitude: 127.1101, BusRouteCount: 8},
	{StationID: "22000003", StationName: "삼성전자 남문", Latitude: 37.3975, Longitude: 127.1125, BusRouteCount: 4},
	{StationID: "22000004", StationName: "판교 테크원", Latitude: 37.4000, Longitude: 127.1150, BusRouteCount: 6},
}

func newTestStore(t *testing.T) *repository.SQLite {
	t.Helper()

	store, err := repository.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.InitSchema(context.Background()))
	return store
}

func TestIngestService_IngestArea(t *testing.T) {
	store := newTestStore(t)
	client := &stubSearcher{respond: func(lat, lon float64) ([]byte, error) {
		return stationListXML(fixtureStops...), nil
	}}

	svc := NewIngestService(client, store, 2, 2)

	result, err := svc.IngestArea(context.Background(), PangyoBounds)
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalFound)
	assert.Equal(t, 4, result.Saved)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 4, client.callCount())

	stored, err := store.ListStops(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 4)

	ids := make([]string, 0, len(stored))
	for _, stop := range stored {
		ids = append(ids, stop.StationID)
	}
	assert.Equal(t, []string{"22000001", "22000002", "22000003", "22000004"}, ids)
}

func TestIngestService_DeduplicatesAcrossCells(t *testing.T) {
	store := newTestStore(t)
	// Every cell reports the full stop set, as overlapping radius queries do.
	client := &stubSearcher{respond: func(lat, lon float64) ([]byte, error) {
		return stationListXML(fixtureStops...), nil
	}}

	svc := NewIngestService(client, store, 2, 2)

	result, err := svc.IngestArea(context.Background(), PangyoBounds)
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalFound)

	seen := make(map[string]bool)
	for _, stop := range result.Stops {
		assert.False(t, seen[stop.StationID], "duplicate station %s", stop.StationID)
		seen[stop.StationID] = true
	}
}

func TestIngestService_ToleratesFailingCells(t *testing.T) {
	store := newTestStore(t)
	// The two northern cells fail; the southern cells each return one stop.
	client := &stubSearcher{respond: func(lat, lon float64) ([]byte, error) {
		if lat > 37.3990 {
			return nil, errors.New("connection refused")
		}
		if lon < 127.1100 {
			return stationListXML(fixtureStops[0]), nil
		}
		return stationListXML(fixtureStops[2]), nil
	}}

	svc := NewIngestService(client, store, 2, 2)

	result, err := svc.IngestArea(context.Background(), PangyoBounds)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalFound)
	assert.Equal(t, 2, result.Saved)
	assert.Equal(t, 4, client.callCount())
}

func TestIngestService_ToleratesUnreadableCellResponse(t *testing.T) {
	store := newTestStore(t)
	client := &stubSearcher{respond: func(lat, lon float64) ([]byte, error) {
		if lat > 37.3990 {
			return []byte(`<html>gateway error</html>`), nil
		}
		return stationListXML(fixtureStops[0]), nil
	}}

	svc := NewIngestService(client, store, 2, 2)

	result, err := svc.IngestArea(context.Background(), PangyoBounds)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalFound)
}

func TestIngestService_AllCellsFail(t *testing.T) {
	store := newTestStore(t)
	client := &stubSearcher{respond: func(lat, lon float64) ([]byte, error) {
		return nil, errors.New("timeout")
	}}

	svc := NewIngestService(client, store, 2, 2)

	result, err := svc.IngestArea(context.Background(), PangyoBounds)
	assert.ErrorIs(t, err, ErrNoStopsFound)
	assert.Nil(t, result)
}

func TestIngestService_EmptyArea(t *testing.T) {
	store := newTestStore(t)
	client := &stubSearcher{respond: func(lat, lon float64) ([]byte, error) {
		return stationListXML(), nil
	}}

	svc := NewIngestService(client, store, 2, 2)

	_, err := svc.IngestArea(context.Background(), PangyoBounds)
	assert.ErrorIs(t, err, ErrNoStopsFound)
}

func TestIngestService_ReingestUpdatesWithoutDuplicating(t *testing.T) {
	store := newTestStore(t)

	client := &stubSearcher{respond: func(lat, lon float64) ([]byte, error) {
		return stationListXML(fixtureStops...), nil
	}}
	svc := NewIngestService(client, store, 2, 2)

	_, err := svc.IngestArea(context.Background(), PangyoBounds)
	require.NoError(t, err)

	// Second run with one stop renamed.
	renamed := make([]models.BusStop, len(fixtureStops))
	copy(renamed, fixtureStops)
	renamed[0].StationName = "판교역 1번출구 (이설)"
	client.respond = func(lat, lon float64) ([]byte, error) {
		return stationListXML(renamed...), nil
	}

	result, err := svc.IngestArea(context.Background(), PangyoBounds)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Saved)

	stored, err := store.ListStops(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 4)
	assert.Equal(t, "판교역 1번출구 (이설)", stored[0].StationName)
}

// failingStore rejects one station ID and accepts the rest.
type failingStore struct {
	rejectID string
	saved    int
}

func (s *failingStore) UpsertStop(_ context.Context, stop models.BusStop) (bool, error) {
	if stop.StationID == s.rejectID {
		return false, errors.New("disk full")
	}
	s.saved++
	return true, nil
}

func TestIngestService_CountsOnlySuccessfulSaves(t *testing.T) {
	store := &failingStore{rejectID: "22000002"}
	client := &stubSearcher{respond: func(lat, lon float64) ([]byte, error) {
		return stationListXML(fixtureStops...), nil
	}}

	svc := NewIngestService(client, store, 2, 2)

	result, err := svc.IngestArea(context.Background(), PangyoBounds)
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalFound)
	assert.Equal(t, 3, result.Saved)
	assert.Len(t, result.Stops, 4)
}

func TestIngestService_GridResolutionIsConfigurable(t *testing.T) {
	store := newTestStore(t)
	client := &stubSearcher{respond: func(lat, lon float64) ([]byte, error) {
		return stationListXML(fixtureStops[0]), nil
	}}

	svc := NewIngestService(client, store, 3, 4)

	_, err := svc.IngestArea(context.Background(), PangyoBounds)
	require.NoError(t, err)
	assert.Equal(t, 12, client.callCount())
}

func TestIngestService_ClampsGridResolution(t *testing.T) {
	store := newTestStore(t)
	client := &stubSearcher{respond: func(lat, lon float64) ([]byte, error) {
		return stationListXML(fixtureStops[0]), nil
	}}

	svc := NewIngestService(client, store, 0, -1)

	_, err := svc.IngestArea(context.Background(), PangyoBounds)
	require.NoError(t, err)
	assert.Equal(t, 1, client.callCount())
}
