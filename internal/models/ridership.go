package models

// DailyRidership is one day of passenger counts for a stop.
type DailyRidership struct {
	Date           string `json:"date"`
	StopID         string `json:"stop_id"`
	PassengerCount int    `json:"passenger_count"`
	PeakHour       int    `json:"peak_hour"`
}

// WeeklyRidership aggregates the last seven days of ridership for a stop.
type WeeklyRidership struct {
	StopID       string           `json:"stop_id"`
	StopName     string           `json:"stop_name,omitempty"`
	WeekData     []DailyRidership `json:"week_data"`
	TotalCount   int              `json:"total_count"`
	AverageDaily int              `json:"average_daily"`
}

// TopStop names the busiest stop in a summary.
type TopStop struct {
	Name        string `json:"name"`
	WeeklyCount int    `json:"weekly_count"`
}

// StatisticsSummary aggregates ridership over every stop in the area.
type StatisticsSummary struct {
	TotalStops           int     `json:"total_stops"`
	TotalWeeklyRidership int     `json:"total_weekly_ridership"`
	TopStop              TopStop `json:"top_stop"`
	AveragePerStop       int     `json:"average_per_stop"`
	Period               string  `json:"period"`
}
