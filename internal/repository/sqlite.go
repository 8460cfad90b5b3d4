package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bus-searcher-api/internal/models"

	_ "modernc.org/sqlite"
)

// SQLite implements the stop and route stores over an embedded SQLite file.
// It is the default backend when no postgres:// source is configured.
// Timestamps are stored as RFC 3339 text.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) the SQLite database at the given
// path and verifies the connection.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path+"?_journal=WAL&_fk=1")
	if err != nil {
		return nil, fmt.Errorf("repository: failed to open sqlite database: %w", err)
	}

	// SQLite serializes writers; a single connection avoids lock contention.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("repository: failed to ping sqlite database: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database handle.
func (r *SQLite) Close() error {
	return r.db.Close()
}

// InitSchema creates the tables if they do not exist yet.
func (r *SQLite) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS bus_stops (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		station_id TEXT UNIQUE NOT NULL,
		station_name TEXT NOT NULL,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		bus_route_count INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS bus_routes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		route_id TEXT UNIQUE NOT NULL,
		route_name TEXT NOT NULL,
		route_type TEXT NOT NULL,
		start_station_name TEXT NOT NULL,
		end_station_name TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// UpsertStop inserts a stop or, when the station ID already exists, overwrites
// its mutable fields and refreshes updated_at. It reports whether a new row
// was created.
func (r *SQLite) UpsertStop(ctx context.Context, stop models.BusStop) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := r.db.ExecContext(ctx, `
		UPDATE bus_stops
		SET station_name = ?, latitude = ?, longitude = ?, bus_route_count = ?, updated_at = ?
		WHERE station_id = ?`,
		stop.StationName, stop.Latitude, stop.Longitude, stop.BusRouteCount, now, stop.StationID,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to update stop %s: %w", stop.StationID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("repository: failed to read affected rows: %w", err)
	}
	if affected > 0 {
		return false, nil
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO bus_stops (station_id, station_name, latitude, longitude, bus_route_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		stop.StationID, stop.StationName, stop.Latitude, stop.Longitude, stop.BusRouteCount, now, now,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to insert stop %s: %w", stop.StationID, err)
	}

	return true, nil
}

// GetStopByStationID returns the stop with the given station ID, or
// ErrNotFound.
func (r *SQLite) GetStopByStationID(ctx context.Context, stationID string) (*models.BusStop, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, station_id, station_name, latitude, longitude, bus_route_count, created_at, updated_at
		FROM bus_stops
		WHERE station_id = ?`,
		stationID,
	)

	stop, err := scanStop(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to query stop %s: %w", stationID, err)
	}

	return stop, nil
}

// ListStops returns every persisted stop ordered by station ID.
func (r *SQLite) ListStops(ctx context.Context) ([]models.BusStop, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, station_id, station_name, latitude, longitude, bus_route_count, created_at, updated_at
		FROM bus_stops
		ORDER BY station_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list stops: %w", err)
	}
	defer rows.Close()

	var stops []models.BusStop
	for rows.Next() {
		stop, err := scanStop(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan stop: %w", err)
		}
		stops = append(stops, *stop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating stops: %w", err)
	}

	return stops, nil
}

// UpsertRoute inserts or updates a route by its route ID, reporting whether a
// new row was created.
func (r *SQLite) UpsertRoute(ctx context.Context, route models.BusRoute) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := r.db.ExecContext(ctx, `
		UPDATE bus_routes
		SET route_name = ?, route_type = ?, start_station_name = ?, end_station_name = ?, updated_at = ?
		WHERE route_id = ?`,
		route.RouteName, route.RouteType, route.StartStationName, route.EndStationName, now, route.RouteID,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to update route %s: %w", route.RouteID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("repository: failed to read affected rows: %w", err)
	}
	if affected > 0 {
		return false, nil
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO bus_routes (route_id, route_name, route_type, start_station_name, end_station_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		route.RouteID, route.RouteName, route.RouteType, route.StartStationName, route.EndStationName, now, now,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to insert route %s: %w", route.RouteID, err)
	}

	return true, nil
}

// GetRouteByRouteID returns the route with the given route ID, or ErrNotFound.
func (r *SQLite) GetRouteByRouteID(ctx context.Context, routeID string) (*models.BusRoute, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, route_id, route_name, route_type, start_station_name, end_station_name, created_at, updated_at
		FROM bus_routes
		WHERE route_id = ?`,
		routeID,
	)

	var route models.BusRoute
	var createdAt, updatedAt string
	err := row.Scan(
		&route.ID,
		&route.RouteID,
		&route.RouteName,
		&route.RouteType,
		&route.StartStationName,
		&route.EndStationName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to query route %s: %w", routeID, err)
	}

	route.CreatedAt = parseStoredTime(createdAt)
	route.UpdatedAt = parseStoredTime(updatedAt)
	return &route, nil
}

func scanStop(scan func(dest ...any) error) (*models.BusStop, error) {
	var stop models.BusStop
	var createdAt, updatedAt string
	err := scan(
		&stop.ID,
		&stop.StationID,
		&stop.StationName,
		&stop.Latitude,
		&stop.Longitude,
		&stop.BusRouteCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	stop.CreatedAt = parseStoredTime(createdAt)
	stop.UpdatedAt = parseStoredTime(updatedAt)
	return &stop, nil
}

func parseStoredTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
