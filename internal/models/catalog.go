package models

// CatalogRoute is a sample bus route served from in-memory fixture data.
type CatalogRoute struct {
	ID          int      `json:"id"`
	RouteNumber string   `json:"route_number"`
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Stops       []string `json:"stops"`
}

// CatalogStop is a sample bus stop served from in-memory fixture data.
type CatalogStop struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
