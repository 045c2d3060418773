package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/emon51/property-scraper/models"
)

type PostgresWriter struct {
	db *sql.DB
}

func NewPostgresWriter(host string, port int, user, password, dbname, sslmode string) (*PostgresWriter, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresWriter{db: db}, nil
}

func (w *PostgresWriter) Close() error {
	return w.db.Close()
}

func (w *PostgresWriter) CreateTable(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS property_details (
		id SERIAL PRIMARY KEY,
		url TEXT UNIQUE NOT NULL,
		run_id UUID NOT NULL,
		name TEXT NOT NULL,
		property_type TEXT NOT NULL,
		bedrooms INTEGER,
		bathrooms INTEGER,
		available_amenities TEXT[],
		unavailable_amenities TEXT[],
		scraped_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_property_details_run ON property_details(run_id);
	`

	if _, err := w.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	return nil
}

// InsertResults upserts every result that produced a record and returns the
// number of rows written.
func (w *PostgresWriter) InsertResults(ctx context.Context, runID string, results []models.ScrapeResult) (int, error) {
	rows := make([]models.ScrapeResult, 0, len(results))
	for _, r := range results {
		if r.Record != nil {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO property_details
			(url, run_id, name, property_type, bedrooms, bathrooms, available_amenities, unavailable_amenities)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (url) DO UPDATE SET
			run_id = EXCLUDED.run_id,
			name = EXCLUDED.name,
			property_type = EXCLUDED.property_type,
			bedrooms = EXCLUDED.bedrooms,
			bathrooms = EXCLUDED.bathrooms,
			available_amenities = EXCLUDED.available_amenities,
			unavailable_amenities = EXCLUDED.unavailable_amenities,
			scraped_at = NOW()
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		available, unavailable := amenityColumns(r.Record)

		_, err := stmt.ExecContext(ctx,
			r.URL,
			runID,
			r.Record.Name,
			r.Record.Category,
			nullableCount(r.Record.Bedrooms),
			nullableCount(r.Record.Bathrooms),
			pq.Array(available),
			pq.Array(unavailable),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert %s: %w", r.URL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return len(rows), nil
}

// nullableCount stores sentinel counts as NULL.
func nullableCount(c models.Count) sql.NullInt64 {
	n, ok := c.Int()
	return sql.NullInt64{Int64: int64(n), Valid: ok}
}

// amenityColumns returns nil slices (stored as NULL) when amenities were not
// scraped.
func amenityColumns(record *models.PropertyRecord) ([]string, []string) {
	if record.Amenities == nil {
		return nil, nil
	}
	return record.Amenities.Available, record.Amenities.Unavailable
}
