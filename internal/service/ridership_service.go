package service

import (
	"math/rand/v2"
	"sort"
	"time"

	"bus-searcher-api/internal/models"
)

// RidershipService generates mock ridership statistics for the Pangyo area.
// Counts are randomized per call; nothing is persisted. It stands in for a
// ridership data source that was never wired to real data.
type RidershipService struct {
	stops []models.StopInfo
}

// pangyoStops is the fixture stop set the mock data source reports for the
// Pangyo bounding box.
var pangyoStops = []models.StopInfo{
	{StopID: "22000001", StopName: "판교역 1번출구", Latitude: 37.3950, Longitude: 127.1100},
	{StopID: "22000002", StopName: "판교역 2번출구", Latitude: 37.3951, Longitude: 127.1101},
	{StopID: "22000003", StopName: "삼성전자 남문", Latitude: 37.3975, Longitude: 127.1125},
	{StopID: "22000004", StopName: "판교 테크원", Latitude: 37.4000, Longitude: 127.1150},
}

// NewRidershipService creates a new mock ridership service.
func NewRidershipService() *RidershipService {
	return &RidershipService{stops: pangyoStops}
}

// AreaStops returns the fixture stop set for the Pangyo area.
func (s *RidershipService) AreaStops() []models.StopInfo {
	stops := make([]models.StopInfo, len(s.stops))
	copy(stops, s.stops)
	return stops
}

// Weekly generates the last seven days of ridership for a stop. Daily counts
// fall in [100, 500] with a morning peak hour in [7, 9].
func (s *RidershipService) Weekly(stopID, stopName string) models.WeeklyRidership {
	week := make([]models.DailyRidership, 0, 7)
	total := 0

	for i := 0; i < 7; i++ {
		count := 100 + rand.IntN(401)
		total += count
		week = append(week, models.DailyRidership{
			Date:           time.Now().AddDate(0, 0, -i).Format("2006-01-02"),
			StopID:         stopID,
			PassengerCount: count,
			PeakHour:       7 + rand.IntN(3),
		})
	}

	return models.WeeklyRidership{
		StopID:       stopID,
		StopName:     stopName,
		WeekData:     week,
		TotalCount:   total,
		AverageDaily: total / 7,
	}
}

// TopStops ranks the area stops by weekly total, descending, returning at
// most limit entries.
func (s *RidershipService) TopStops(limit int) []models.WeeklyRidership {
	if limit < 1 {
		limit = 1
	}

	ranked := make([]models.WeeklyRidership, 0, len(s.stops))
	for _, stop := range s.stops {
		ranked = append(ranked, s.Weekly(stop.StopID, stop.StopName))
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].TotalCount > ranked[j].TotalCount
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Summary aggregates weekly ridership over every area stop.
func (s *RidershipService) Summary() models.StatisticsSummary {
	total := 0
	top := models.TopStop{}

	for _, stop := range s.stops {
		weekly := s.Weekly(stop.StopID, stop.StopName)
		total += weekly.TotalCount
		if weekly.TotalCount > top.WeeklyCount {
			top = models.TopStop{Name: stop.StopName, WeeklyCount: weekly.TotalCount}
		}
	}

	average := 0
	if len(s.stops) > 0 {
		average = total / len(s.stops)
	}

	return models.StatisticsSummary{
		TotalStops:           len(s.stops),
		TotalWeeklyRidership: total,
		TopStop:              top,
		AveragePerStop:       average,
		Period:               "Last 7 days",
	}
}
