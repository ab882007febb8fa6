package nominatim

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/openplaces/placeindex/expand"
)

const placesQuery = `
	SELECT place_id, osm_type, osm_id, class, type, name, housenumber,
	       postcode, address, country_code, rank_search, importance, centroid
	FROM placex
	WHERE linked_place_id IS NULL
	ORDER BY place_id`

const interpolationsQuery = `
	SELECT place_id, osm_id, startnumber, endnumber, interpolationtype,
	       address, postcode, country_code, linegeo
	FROM location_property_osmline
	WHERE startnumber IS NOT NULL
	ORDER BY place_id`

// Options configures a Connector.
type Options struct {
	// DSN is the lib/pq connection string for the Nominatim database.
	DSN string

	// Logger receives skipped-row warnings. Nil means slog.Default().
	Logger *slog.Logger
}

// Connector streams address records out of a Nominatim database.
type Connector struct {
	db  *sql.DB
	log *slog.Logger
}

// Connect opens the database and verifies the connection.
func Connect(ctx context.Context, opts Options) (*Connector, error) {
	db, err := sql.Open("postgres", opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("open nominatim database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping nominatim database: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Connector{db: db, log: log}, nil
}

// Close releases the database connection.
func (c *Connector) Close() error {
	return c.db.Close()
}

// Places streams one expandable result per placex row, with the row's
// explicit house numbers already collected. fn errors abort the stream.
func (c *Connector) Places(ctx context.Context, fn func(*expand.Result) error) error {
	rows, err := c.db.QueryContext(ctx, placesQuery)
	if err != nil {
		return fmt.Errorf("query placex: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		res, err := scanPlace(rows)
		if err != nil {
			c.log.Warn("skipping unreadable placex row", "error", err)
			continue
		}
		if err := fn(res); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate placex: %w", err)
	}
	return nil
}

// Interpolations streams one expandable result per interpolation way, with
// the range already expanded into house numbers along the way's geometry.
// fn errors abort the stream.
func (c *Connector) Interpolations(ctx context.Context, fn func(*expand.Result) error) error {
	rows, err := c.db.QueryContext(ctx, interpolationsQuery)
	if err != nil {
		return fmt.Errorf("query location_property_osmline: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		res, err := scanInterpolation(rows)
		if err != nil {
			c.log.Warn("skipping unreadable interpolation row", "error", err)
			continue
		}
		if err := fn(res); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate location_property_osmline: %w", err)
	}
	return nil
}
