package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRidershipService_Weekly(t *testing.T) {
	svc := NewRidershipService()

	weekly := svc.Weekly("22000001", "판교역 1번출구")

	assert.Equal(t, "22000001", weekly.StopID)
	assert.Equal(t, "판교역 1번출구", weekly.StopName)
	require.Len(t, weekly.WeekData, 7)

	total := 0
	for _, day := range weekly.WeekData {
		assert.Equal(t, "22000001", day.StopID)
		assert.GreaterOrEqual(t, day.PassengerCount, 100)
		assert.LessOrEqual(t, day.PassengerCount, 500)
		assert.GreaterOrEqual(t, day.PeakHour, 7)
		assert.LessOrEqual(t, day.PeakHour, 9)
		assert.NotEmpty(t, day.Date)
		total += day.PassengerCount
	}

	assert.Equal(t, total, weekly.TotalCount)
	assert.Equal(t, total/7, weekly.AverageDaily)
}

func TestRidershipService_AreaStops(t *testing.T) {
	svc := NewRidershipService()

	stops := svc.AreaStops()
	require.Len(t, stops, 4)
	assert.Equal(t, "22000001", stops[0].StopID)

	// Returned slice is a copy; mutating it must not affect the service.
	stops[0].StopID = "mutated"
	assert.Equal(t, "22000001", svc.AreaStops()[0].StopID)
}

func TestRidershipService_TopStops(t *testing.T) {
	svc := NewRidershipService()

	ranked := svc.TopStops(3)
	require.Len(t, ranked, 3)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].TotalCount, ranked[i].TotalCount)
	}

	assert.Len(t, svc.TopStops(100), 4)
	assert.Len(t, svc.TopStops(0), 1)
}

func TestRidershipService_Summary(t *testing.T) {
	svc := NewRidershipService()

	summary := svc.Summary()

	assert.Equal(t, 4, summary.TotalStops)
	assert.Equal(t, "Last 7 days", summary.Period)
	assert.NotEmpty(t, summary.TopStop.Name)
	assert.Positive(t, summary.TotalWeeklyRidership)
	assert.Equal(t, summary.TotalWeeklyRidership/4, summary.AveragePerStop)
	assert.LessOrEqual(t, summary.AveragePerStop, summary.TopStop.WeeklyCount)
}
