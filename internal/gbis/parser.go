package gbis

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"bus-searcher-api/internal/models"

	"github.com/rs/zerolog/log"
)

// Numeric fields arrive as character data, so they are decoded as strings and
// converted separately. A record missing its station ID is dropped silently; a
// record with an unparsable number is logged and dropped without aborting the
// rest of the document.

type stationListResponse struct {
	XMLName  xml.Name       `xml:"response"`
	Stations []stationEntry `xml:"msgBody>busStationList"`
}

type stationEntry struct {
	StationID     string `xml:"stationId"`
	StationName   string `xml:"stationName"`
	Latitude      string `xml:"latitude"`
	Longitude     string `xml:"longitude"`
	BusRouteCount string `xml:"busRouteCount"`
}

type stationDetailResponse struct {
	XMLName xml.Name           `xml:"response"`
	Station stationEntry       `xml:"msgBody>busStationInfo"`
	Routes  []servedRouteEntry `xml:"msgBody>busRouteList"`
}

type servedRouteEntry struct {
	RouteID   string `xml:"routeId"`
	RouteName string `xml:"routeName"`
	RouteType string `xml:"routeTypeCd"`
}

type routeDetailResponse struct {
	XMLName  xml.Name            `xml:"response"`
	Route    routeInfoEntry      `xml:"msgBody>busRouteInfo"`
	Stations []routeStationEntry `xml:"msgBody>stationList"`
}

type routeInfoEntry struct {
	RouteID          string `xml:"routeId"`
	RouteName        string `xml:"routeName"`
	RouteType        string `xml:"routeTypeCd"`
	StartStationName string `xml:"startStationName"`
	EndStationName   string `xml:"endStationName"`
}

type routeStationEntry struct {
	StationID   string `xml:"stationId"`
	StationName string `xml:"stationName"`
	Sequence    string `xml:"sequence"`
}

// ParseStationList decodes a station-search response into stop records. A
// document that is not valid XML at all yields an error; individual bad
// records are tolerated.
func ParseStationList(body []byte) ([]models.BusStop, error) {
	var resp stationListResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("gbis: failed to decode station list: %w", err)
	}

	stops := make([]models.BusStop, 0, len(resp.Stations))
	for _, entry := range resp.Stations {
		if entry.StationID == "" {
			continue
		}

		lat, err := strconv.ParseFloat(orZero(entry.Latitude), 64)
		if err != nil {
			log.Warn().Str("station_id", entry.StationID).Str("latitude", entry.Latitude).
				Msg("dropping station with unparsable latitude")
			continue
		}
		lon, err := strconv.ParseFloat(orZero(entry.Longitude), 64)
		if err != nil {
			log.Warn().Str("station_id", entry.StationID).Str("longitude", entry.Longitude).
				Msg("dropping station with unparsable longitude")
			continue
		}
		routeCount, err := strconv.Atoi(orZero(entry.BusRouteCount))
		if err != nil {
			log.Warn().Str("station_id", entry.StationID).Str("bus_route_count", entry.BusRouteCount).
				Msg("dropping station with unparsable route count")
			continue
		}

		stops = append(stops, models.BusStop{
			StationID:     entry.StationID,
			StationName:   entry.StationName,
			Latitude:      lat,
			Longitude:     lon,
			BusRouteCount: routeCount,
		})
	}

	return stops, nil
}

// ParseStationDetail decodes a station-detail response. Missing fields default
// to empty strings and zeroes; only an undecodable document is an error. The
// returned detail may carry an empty station ID when the provider reported
// nothing, which callers treat as not found.
func ParseStationDetail(body []byte) (*models.StopDetail, error) {
	var resp stationDetailResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("gbis: failed to decode station detail: %w", err)
	}

	detail := &models.StopDetail{
		StationID:   resp.Station.StationID,
		StationName: resp.Station.StationName,
		Latitude:    floatOrZero(resp.Station.Latitude),
		Longitude:   floatOrZero(resp.Station.Longitude),
		Routes:      make([]models.ServedRoute, 0, len(resp.Routes)),
	}

	for _, route := range resp.Routes {
		detail.Routes = append(detail.Routes, models.ServedRoute{
			RouteID:   route.RouteID,
			RouteName: route.RouteName,
			RouteType: route.RouteType,
		})
	}

	return detail, nil
}

// ParseRouteDetail decodes a route-detail response with the same tolerant
// field handling as ParseStationDetail.
func ParseRouteDetail(body []byte) (*models.RouteDetail, error) {
	var resp routeDetailResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("gbis: failed to decode route detail: %w", err)
	}

	detail := &models.RouteDetail{
		RouteID:          resp.Route.RouteID,
		RouteName:        resp.Route.RouteName,
		RouteType:        resp.Route.RouteType,
		StartStationName: resp.Route.StartStationName,
		EndStationName:   resp.Route.EndStationName,
		Stations:         make([]models.RouteStation, 0, len(resp.Stations)),
	}

	for _, station := range resp.Stations {
		detail.Stations = append(detail.Stations, models.RouteStation{
			StationID:   station.StationID,
			StationName: station.StationName,
			Sequence:    intOrZero(station.Sequence),
		})
	}

	return detail, nil
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func floatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(orZero(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func intOrZero(s string) int {
	n, err := strconv.Atoi(orZero(s))
	if err != nil {
		return 0
	}
	return n
}
