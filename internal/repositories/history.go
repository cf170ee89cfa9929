package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"weather-dashboard/internal/models"
)

const geolocationRowID = 1

// SQLHistoryRepository stores history in sqlite3 or PostgreSQL. Queries are written
// with '?' placeholders and rebound for the connected driver.
type SQLHistoryRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewSQLHistoryRepository(db *sqlx.DB) *SQLHistoryRepository {
	return &SQLHistoryRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// SaveSearch always inserts a new entry; equal names are not merged. The entry and
// the geolocation are written in one transaction.
func (r *SQLHistoryRepository) SaveSearch(ctx context.Context, name string, coords models.Coordinates) (models.Location, error) {
	loc := models.Location{
		ID:        uuid.NewString(),
		Name:      name,
		Lat:       coords.Lat,
		Lon:       coords.Lon,
		CreatedAt: r.now(),
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := tx.Rebind(`INSERT INTO locations (id, name, lat, lon, created_at) VALUES (?, ?, ?, ?, ?)`)
	if _, err := tx.ExecContext(ctx, q, loc.ID, loc.Name, loc.Lat, loc.Lon, loc.CreatedAt); err != nil {
		return models.Location{}, fmt.Errorf("failed to append location: %w", err)
	}

	if err := r.saveGeolocation(ctx, tx, coords); err != nil {
		return models.Location{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Location{}, fmt.Errorf("failed to commit search: %w", err)
	}

	return loc, nil
}

// ListLocations returns history in insertion order.
func (r *SQLHistoryRepository) ListLocations(ctx context.Context) ([]models.Location, error) {
	locations := []models.Location{}

	q := `SELECT id, name, lat, lon, created_at FROM locations ORDER BY position`
	if err := r.db.SelectContext(ctx, &locations, q); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	return locations, nil
}

func (r *SQLHistoryRepository) ClearLocations(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM locations`); err != nil {
		return fmt.Errorf("failed to clear locations: %w", err)
	}

	return nil
}

func (r *SQLHistoryRepository) SaveGeolocation(ctx context.Context, coords models.Coordinates) error {
	return r.saveGeolocation(ctx, r.db, coords)
}

func (r *SQLHistoryRepository) saveGeolocation(ctx context.Context, ext sqlx.ExtContext, coords models.Coordinates) error {
	q := ext.Rebind(`
		INSERT INTO geolocation (id, lat, lon, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET lat = excluded.lat, lon = excluded.lon, updated_at = excluded.updated_at
	`)
	if _, err := ext.ExecContext(ctx, q, geolocationRowID, coords.Lat, coords.Lon, r.now()); err != nil {
		return fmt.Errorf("failed to save geolocation: %w", err)
	}

	return nil
}

func (r *SQLHistoryRepository) Geolocation(ctx context.Context) (models.Coordinates, error) {
	var coords models.Coordinates

	q := r.db.Rebind(`SELECT lat, lon FROM geolocation WHERE id = ?`)
	if err := r.db.GetContext(ctx, &coords, q, geolocationRowID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return coords, ErrNoGeolocation
		}
		return coords, fmt.Errorf("failed to read geolocation: %w", err)
	}

	return coords, nil
}

func (r *SQLHistoryRepository) ClearGeolocation(ctx context.Context) error {
	q := r.db.Rebind(`DELETE FROM geolocation WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, q, geolocationRowID); err != nil {
		return fmt.Errorf("failed to clear geolocation: %w", err)
	}

	return nil
}
