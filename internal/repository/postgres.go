package repository

import (
	"context"
	"errors"
	"fmt"

	"bus-searcher-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres implements the stop and route stores over a pgx connection pool.
type Postgres struct {
	db *pgxpool.Pool
}

// NewPostgres creates a new PostgreSQL repository.
func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

// InitSchema creates the tables if they do not exist yet.
func (r *Postgres) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS bus_stops (
		id BIGSERIAL PRIMARY KEY,
		station_id VARCHAR(64) UNIQUE NOT NULL,
		station_name VARCHAR(255) NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		bus_route_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE TABLE IF NOT EXISTS bus_routes (
		id BIGSERIAL PRIMARY KEY,
		route_id VARCHAR(64) UNIQUE NOT NULL,
		route_name VARCHAR(255) NOT NULL,
		route_type VARCHAR(32) NOT NULL,
		start_station_name VARCHAR(255) NOT NULL,
		end_station_name VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// UpsertStop inserts a stop or, when the station ID already exists, overwrites
// its mutable fields and refreshes updated_at. It reports whether a new row
// was created.
func (r *Postgres) UpsertStop(ctx context.Context, stop models.BusStop) (bool, error) {
	sql := `
		INSERT INTO bus_stops (station_id, station_name, latitude, longitude, bus_route_count)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (station_id) DO UPDATE SET
			station_name = EXCLUDED.station_name,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			bus_route_count = EXCLUDED.bus_route_count,
			updated_at = now()
		RETURNING (xmax = 0)
	`

	var created bool
	err := r.db.QueryRow(ctx, sql,
		stop.StationID, stop.StationName, stop.Latitude, stop.Longitude, stop.BusRouteCount,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("repository: failed to upsert stop %s: %w", stop.StationID, err)
	}

	return created, nil
}

// GetStopByStationID returns the stop with the given station ID, or
// ErrNotFound.
func (r *Postgres) GetStopByStationID(ctx context.Context, stationID string) (*models.BusStop, error) {
	sql := `
		SELECT id, station_id, station_name, latitude, longitude, bus_route_count, created_at, updated_at
		FROM bus_stops
		WHERE station_id = $1
	`

	var stop models.BusStop
	err := r.db.QueryRow(ctx, sql, stationID).Scan(
		&stop.ID,
		&stop.StationID,
		&stop.StationName,
		&stop.Latitude,
		&stop.Longitude,
		&stop.BusRouteCount,
		&stop.CreatedAt,
		&stop.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to query stop %s: %w", stationID, err)
	}

	return &stop, nil
}

// ListStops returns every persisted stop ordered by station ID.
func (r *Postgres) ListStops(ctx context.Context) ([]models.BusStop, error) {
	sql := `
		SELECT id, station_id, station_name, latitude, longitude, bus_route_count, created_at, updated_at
		FROM bus_stops
		ORDER BY station_id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list stops: %w", err)
	}
	defer rows.Close()

	var stops []models.BusStop
	for rows.Next() {
		var stop models.BusStop
		err := rows.Scan(
			&stop.ID,
			&stop.StationID,
			&stop.StationName,
			&stop.Latitude,
			&stop.Longitude,
			&stop.BusRouteCount,
			&stop.CreatedAt,
			&stop.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan stop: %w", err)
		}
		stops = append(stops, stop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating stops: %w", err)
	}

	return stops, nil
}

// UpsertRoute inserts or updates a route by its route ID, reporting whether a
// new row was created.
func (r *Postgres) UpsertRoute(ctx context.Context, route models.BusRoute) (bool, error) {
	sql := `
		INSERT INTO bus_routes (route_id, route_name, route_type, start_station_name, end_station_name)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (route_id) DO UPDATE SET
			route_name = EXCLUDED.route_name,
			route_type = EXCLUDED.route_type,
			start_station_name = EXCLUDED.start_station_name,
			end_station_name = EXCLUDED.end_station_name,
			updated_at = now()
		RETURNING (xmax = 0)
	`

	var created bool
	err := r.db.QueryRow(ctx, sql,
		route.RouteID, route.RouteName, route.RouteType, route.StartStationName, route.EndStationName,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("repository: failed to upsert route %s: %w", route.RouteID, err)
	}

	return created, nil
}

// GetRouteByRouteID returns the route with the given route ID, or ErrNotFound.
func (r *Postgres) GetRouteByRouteID(ctx context.Context, routeID string) (*models.BusRoute, error) {
	sql := `
		SELECT id, route_id, route_name, route_type, start_station_name, end_station_name, created_at, updated_at
		FROM bus_routes
		WHERE route_id = $1
	`

	var route models.BusRoute
	err := r.db.QueryRow(ctx, sql, routeID).Scan(
		&route.ID,
		&route.RouteID,
		&route.RouteName,
		&route.RouteType,
		&route.StartStationName,
		&route.EndStationName,
		&route.CreatedAt,
		&route.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to query route %s: %w", routeID, err)
	}

	return &route, nil
}
