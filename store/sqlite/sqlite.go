// SPDX-License-Identifier: MIT

// Package sqlite stores stations and lines in a SQLite file using the pure-Go
// modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/metropath/subway"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps a SQLite connection pool.
type DB struct {
	conn *sql.DB
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}

	// SQLite has a single writer.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: ping %s: %w", path, err)
	}

	db := &DB{conn: conn}
	if err := db.Migrate(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates missing tables and indexes. It is idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (db *DB) Close() error { return db.conn.Close() }

// Ping checks the connection.
func (db *DB) Ping(ctx context.Context) error { return db.conn.PingContext(ctx) }

// Stations returns the station repository.
func (db *DB) Stations() *StationRepository { return &StationRepository{db: db.conn} }

// Lines returns the line repository.
func (db *DB) Lines() *LineRepository { return &LineRepository{db: db.conn} }

// SaveStation inserts a station or renames an existing one.
func (db *DB) SaveStation(ctx context.Context, st *subway.Station) error {
	return saveStation(ctx, db.conn, st)
}

// SaveLine inserts a line and its sections in one transaction and returns the
// new line ID. Section endpoints must already be saved.
func (db *DB) SaveLine(ctx context.Context, l *subway.Line) (int64, error) {
	var id int64
	err := db.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = saveLine(ctx, tx, l)
		return err
	})

	return id, err
}

// ImportCatalog saves stations and then lines in one transaction.
func (db *DB) ImportCatalog(ctx context.Context, stations []*subway.Station, lines []*subway.Line) error {
	return db.inTx(ctx, func(tx *sql.Tx) error {
		for _, st := range stations {
			if err := saveStation(ctx, tx, st); err != nil {
				return err
			}
		}
		for _, l := range lines {
			if _, err := saveLine(ctx, tx, l); err != nil {
				return err
			}
		}

		return nil
	})
}

func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}

	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func saveStation(ctx context.Context, ex execer, st *subway.Station) error {
	_, err := ex.ExecContext(ctx,
		`INSERT INTO stations (id, name) VALUES (?, ?)
		 ON CONFLICT (id) DO UPDATE SET name = excluded.name`,
		st.ID(), st.Name())
	if err != nil {
		return fmt.Errorf("sqlite: save station %d: %w", st.ID(), err)
	}

	return nil
}

func saveLine(ctx context.Context, tx *sql.Tx, l *subway.Line) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO lines (name, surcharge) VALUES (?, ?)`, l.Name(), l.Surcharge().Amount())
	if err != nil {
		return 0, fmt.Errorf("sqlite: save line %q: %w", l.Name(), err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite: save line %q: %w", l.Name(), err)
	}

	for s := range l.Sections() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sections (line_id, up_station_id, down_station_id, distance) VALUES (?, ?, ?, ?)`,
			id, s.Up().ID(), s.Down().ID(), s.Distance().Value())
		if err != nil {
			return 0, fmt.Errorf("sqlite: save section %s-%s of %q: %w", s.Up(), s.Down(), l.Name(), err)
		}
	}

	return id, nil
}

// StationRepository reads stations.
type StationRepository struct {
	db *sql.DB
}

// FindByID returns the station or an error wrapping subway.ErrStationNotFound.
func (r *StationRepository) FindByID(ctx context.Context, id int64) (*subway.Station, error) {
	var name string
	err := r.db.QueryRowContext(ctx, `SELECT name FROM stations WHERE id = ?`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sqlite: station %d: %w", id, subway.ErrStationNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: find station %d: %w", id, err)
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

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")

	return r.query(ctx, `SELECT id, name FROM stations WHERE id IN (`+placeholders+`) ORDER BY id`, args...)
}

func (r *StationRepository) query(ctx context.Context, q string, args ...any) ([]*subway.Station, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query stations: %w", err)
	}
	defer rows.Close()

	out := []*subway.Station{}
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("sqlite: scan station: %w", err)
		}
		out = append(out, subway.NewStation(id, name))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate stations: %w", err)
	}

	return out, nil
}

// LineRepository reads lines with their sections.
type LineRepository struct {
	db *sql.DB
}

// FindAll returns every line ordered by ID, sections attached in insertion
// order. Stations are shared between lines of one call.
func (r *LineRepository) FindAll(ctx context.Context) ([]*subway.Line, error) {
	lines := []*subway.Line{}
	byID := make(map[int64]*subway.Line)

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, surcharge FROM lines ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query lines: %w", err)
	}
	for rows.Next() {
		var (
			id        int64
			name      string
			surcharge int
		)
		if err := rows.Scan(&id, &name, &surcharge); err != nil {
			rows.Close()
			return nil, fmt.Errorf("sqlite: scan line: %w", err)
		}
		fare, err := subway.NewFare(surcharge)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("sqlite: line %d: %w", id, err)
		}
		l := subway.NewLine(name, fare)
		byID[id] = l
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("sqlite: iterate lines: %w", err)
	}
	rows.Close()

	if err := r.attachSections(ctx, byID); err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *LineRepository) attachSections(ctx context.Context, byID map[int64]*subway.Line) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.line_id, u.id, u.name, d.id, d.name, s.distance
		FROM sections s
		JOIN stations u ON u.id = s.up_station_id
		JOIN stations d ON d.id = s.down_station_id
		ORDER BY s.id`)
	if err != nil {
		return fmt.Errorf("sqlite: query sections: %w", err)
	}
	defer rows.Close()

	stations := make(map[int64]*subway.Station)
	station := func(id int64, name string) *subway.Station {
		if st, ok := stations[id]; ok {
			return st
		}
		st := subway.NewStation(id, name)
		stations[id] = st
		return st
	}

	for rows.Next() {
		var (
			lineID, upID, downID int64
			upName, downName     string
			distance             int
		)
		if err := rows.Scan(&lineID, &upID, &upName, &downID, &downName, &distance); err != nil {
			return fmt.Errorf("sqlite: scan section: %w", err)
		}
		l, ok := byID[lineID]
		if !ok {
			continue
		}
		d, err := subway.NewDistance(distance)
		if err != nil {
			return fmt.Errorf("sqlite: section of line %d: %w", lineID, err)
		}
		if _, err := l.AddSection(station(upID, upName), station(downID, downName), d); err != nil {
			return fmt.Errorf("sqlite: section of line %d: %w", lineID, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("sqlite: iterate sections: %w", err)
	}

	return nil
}
