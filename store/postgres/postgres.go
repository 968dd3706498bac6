// SPDX-License-Identifier: MIT

// Package postgres stores stations and lines in PostgreSQL through a pgx
// connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/katalvlaran/metropath/subway"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS stations (
    id   BIGINT PRIMARY KEY,
    name TEXT   NOT NULL
);
CREATE TABLE IF NOT EXISTS lines (
    id        BIGSERIAL PRIMARY KEY,
    name      TEXT    NOT NULL,
    surcharge INTEGER NOT NULL DEFAULT 0 CHECK (surcharge >= 0)
);
CREATE TABLE IF NOT EXISTS sections (
    id              BIGSERIAL PRIMARY KEY,
    line_id         BIGINT  NOT NULL REFERENCES lines (id) ON DELETE CASCADE,
    up_station_id   BIGINT  NOT NULL REFERENCES stations (id),
    down_station_id BIGINT  NOT NULL REFERENCES stations (id),
    distance        INTEGER NOT NULL CHECK (distance > 0),
    CHECK (up_station_id <> down_station_id)
);
CREATE INDEX IF NOT EXISTS idx_sections_line ON sections (line_id);
`

// DB wraps a pgx pool.
type DB struct {
	pool *pgxpool.Pool
}

// Open connects to databaseURL, pings it and applies the schema.
func Open(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	db := &DB{pool: pool}
	if err := db.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates missing tables and indexes. It is idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("postgres: migrate: %w", err)
	}

	return nil
}

// Close releases the pool.
func (db *DB) Close() { db.pool.Close() }

// Ping checks the connection.
func (db *DB) Ping(ctx context.Context) error { return db.pool.Ping(ctx) }

// Stations returns the station repository.
func (db *DB) Stations() *StationRepository { return &StationRepository{pool: db.pool} }

// Lines returns the line repository.
func (db *DB) Lines() *LineRepository { return &LineRepository{pool: db.pool} }

// ImportCatalog upserts stations and inserts lines with their sections in one transaction.
func (db *DB) ImportCatalog(ctx context.Context, stations []*subway.Station, lines []*subway.Line) error {
	return pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
		for _, st := range stations {
			_, err := tx.Exec(ctx,
				`INSERT INTO stations (id, name) VALUES ($1, $2)
				 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
				st.ID(), st.Name())
			if err != nil {
				return fmt.Errorf("postgres: save station %d: %w", st.ID(), err)
			}
		}

		for _, l := range lines {
			var lineID int64
			err := tx.QueryRow(ctx,
				`INSERT INTO lines (name, surcharge) VALUES ($1, $2) RETURNING id`,
				l.Name(), l.Surcharge().Amount()).Scan(&lineID)
			if err != nil {
				return fmt.Errorf("postgres: save line %q: %w", l.Name(), err)
			}

			batch := &pgx.Batch{}
			for s := range l.Sections() {
				batch.Queue(
					`INSERT INTO sections (line_id, up_station_id, down_station_id, distance) VALUES ($1, $2, $3, $4)`,
					lineID, s.Up().ID(), s.Down().ID(), s.Distance().Value())
			}
			if err := tx.SendBatch(ctx, batch).Close(); err != nil {
				return fmt.Errorf("postgres: save sections of %q: %w", l.Name(), err)
			}
		}

		return nil
	})
}

// StationRepository reads stations.
type StationRepository struct {
	pool *pgxpool.Pool
}

// FindByID returns the station or an error wrapping subway.ErrStationNotFound.
func (r *StationRepository) FindByID(ctx context.Context, id int64) (*subway.Station, error) {
	var name string
	err := r.pool.QueryRow(ctx, `SELECT name FROM stations WHERE id = $1`, id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("postgres: station %d: %w", id, subway.ErrStationNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: find station %d: %w", id, err)
	}

	return subway.NewStation(id, name), nil
}

// FindAll returns every station ordered by ID.
func (r *StationRepository) FindAll(ctx context.Context) ([]*subway.Station, error) {
	return r.query(ctx, `SELECT id, name FROM stations ORDER BY id`)
}

// FindAllByIDIn returns the existing stations among ids, ordered by ID.
func (r *StationRepository) FindAllByIDIn(ctx context.Context, ids []int64) ([]*subway.Station, error) {
	if len(ids) == 0 {
		return []*subway.Station{}, nil
	}

	return r.query(ctx, `SELECT id, name FROM stations WHERE id = ANY($1) ORDER BY id`, ids)
}

func (r *StationRepository) query(ctx context.Context, q string, args ...any) ([]*subway.Station, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: query stations: %w", err)
	}
	defer rows.Close()

	out := []*subway.Station{}
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("postgres: scan station: %w", err)
		}
		out = append(out, subway.NewStation(id, name))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate stations: %w", err)
	}

	return out, nil
}

// LineRepository reads lines with their sections.
type LineRepository struct {
	pool *pgxpool.Pool
}

type lineRow struct {
	ID        int64
	Name      string
	Surcharge int
}

type sectionRow struct {
	LineID   int64
	UpID     int64
	UpName   string
	DownID   int64
	DownName string
	Distance int
}

// FindAll returns every line ordered by ID with sections in insertion order.
func (r *LineRepository) FindAll(ctx context.Context) ([]*subway.Line, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, surcharge FROM lines ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("postgres: query lines: %w", err)
	}
	lineRows, err := pgx.CollectRows(rows, pgx.RowToStructByPos[lineRow])
	if err != nil {
		return nil, fmt.Errorf("postgres: scan lines: %w", err)
	}

	rows, err = r.pool.Query(ctx, `
		SELECT s.line_id, u.id, u.name, d.id, d.name, s.distance
		FROM sections s
		JOIN stations u ON u.id = s.up_station_id
		JOIN stations d ON d.id = s.down_station_id
		ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("postgres: query sections: %w", err)
	}
	sectionRows, err := pgx.CollectRows(rows, pgx.RowToStructByPos[sectionRow])
	if err != nil {
		return nil, fmt.Errorf("postgres: scan sections: %w", err)
	}

	return assemble(lineRows, sectionRows)
}

func assemble(lineRows []lineRow, sectionRows []sectionRow) ([]*subway.Line, error) {
	lines := make([]*subway.Line, 0, len(lineRows))
	byID := make(map[int64]*subway.Line, len(lineRows))
	for _, lr := range lineRows {
		surcharge, err := subway.NewFare(lr.Surcharge)
		if err != nil {
			return nil, fmt.Errorf("postgres: line %d: %w", lr.ID, err)
		}
		l := subway.NewLine(lr.Name, surcharge)
		byID[lr.ID] = l
		lines = append(lines, l)
	}

	stations := make(map[int64]*subway.Station)
	station := func(id int64, name string) *subway.Station {
		if st, ok := stations[id]; ok {
			return st
		}
		st := subway.NewStation(id, name)
		stations[id] = st
		return st
	}

	for _, sr := range sectionRows {
		l, ok := byID[sr.LineID]
		if !ok {
			continue
		}
		d, err := subway.NewDistance(sr.Distance)
		if err != nil {
			return nil, fmt.Errorf("postgres: section of line %d: %w", sr.LineID, err)
		}
		if _, err := l.AddSection(station(sr.UpID, sr.UpName), station(sr.DownID, sr.DownName), d); err != nil {
			return nil, fmt.Errorf("postgres: section of line %d: %w", sr.LineID, err)
		}
	}

	return lines, nil
}
