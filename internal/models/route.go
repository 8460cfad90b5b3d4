package models

import "time"

// BusRoute represents a persisted bus route, keyed by its provider-assigned
// route ID.
type BusRoute struct {
	ID               int64     `json:"id"`
	RouteID          string    `json:"route_id"`
	RouteName        string    `json:"route_name"`
	RouteType        string    `json:"route_type"`
	StartStationName string    `json:"start_station_name"`
	EndStationName   string    `json:"end_station_name"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RouteStation is one entry in a route's ordered stop sequence.
type RouteStation struct {
	StationID   string `json:"station_id"`
	StationName string `json:"station_name"`
	Sequence    int    `json:"sequence"`
}

// RouteDetail is the provider's view of a single route, including its ordered
// stop sequence. The sequence is returned on the wire but not persisted.
type RouteDetail struct {
	RouteID          string         `json:"route_id"`
	RouteName        string         `json:"route_name"`
	RouteType        string         `json:"route_type"`
	StartStationName string         `json:"start_station_name"`
	EndStationName   string         `json:"end_station_name"`
	Stations         []RouteStation `json:"stations"`
}
