package models

import "time"

// BusStop represents a persisted bus stop, keyed by its provider-assigned
// station ID.
type BusStop struct {
	ID            int64     `json:"id"`
	StationID     string    `json:"station_id"`
	StationName   string    `json:"station_name"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	BusRouteCount int       `json:"bus_route_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StopInfo is the wire shape used when listing stops.
type StopInfo struct {
	StopID    string  `json:"stop_id"`
	StopName  string  `json:"stop_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// StopInfoFromBusStop converts a persisted stop to its wire shape.
func StopInfoFromBusStop(stop BusStop) StopInfo {
	return StopInfo{
		StopID:    stop.StationID,
		StopName:  stop.StationName,
		Latitude:  stop.Latitude,
		Longitude: stop.Longitude,
	}
}

// ServedRoute is one route serving a stop, as reported by the provider.
type ServedRoute struct {
	RouteID   string `json:"route_id"`
	RouteName string `json:"route_name"`
	RouteType string `json:"route_type"`
}

// StopDetail is the provider's view of a single stop, including the routes
// that serve it. It is fetched on demand and never persisted.
type StopDetail struct {
	StationID   string        `json:"station_id"`
	StationName string        `json:"station_name"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	Routes      []ServedRoute `json:"routes"`
}
