// Package store persists the application state in a local SQLite
// database. The state is read once at startup and fully overwritten
// after every mutation; a single in-process owner holds write access
// for the process lifetime.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ratecard/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store provides SQLite-backed state persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the state database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the state database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the saved state. The second return value is false when
// nothing has been saved yet; the caller should fall back to
// model.DefaultState.
func (s *Store) Load() (model.State, bool, error) {
	var st model.State

	err := s.db.QueryRow(`SELECT currency, income, expenses, tax_rate,
		hours_per_day, days_per_week, hourly_rate
		FROM settings WHERE id = 1`).Scan(
		&st.Inputs.Currency, &st.Inputs.Income, &st.Inputs.Expenses,
		&st.Inputs.TaxRatePercent, &st.Inputs.HoursPerDay,
		&st.Inputs.DaysPerWeek, &st.HourlyRate,
	)
	if err == sql.ErrNoRows {
		return model.State{}, false, nil
	}
	if err != nil {
		return model.State{}, false, fmt.Errorf("reading settings: %w", err)
	}

	rows, err := s.db.Query(`SELECT id, name, hours, price, status
		FROM projects ORDER BY position`)
	if err != nil {
		return model.State{}, false, fmt.Errorf("reading projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var p model.Project
		var status string
		if err := rows.Scan(&p.ID, &p.Name, &p.Hours, &p.Price, &status); err != nil {
			return model.State{}, false, fmt.Errorf("scanning project: %w", err)
		}
		p.Status = model.ParseStatus(status)
		st.Ledger.Projects = append(st.Ledger.Projects, p)
	}
	if err := rows.Err(); err != nil {
		return model.State{}, false, err
	}

	return st, true, nil
}

// Save overwrites the full persisted state in one transaction.
func (s *Store) Save(st model.State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)

	_, err = tx.Exec(`INSERT OR REPLACE INTO settings
		(id, currency, income, expenses, tax_rate, hours_per_day, days_per_week, hourly_rate, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)`,
		st.Inputs.Currency, st.Inputs.Income, st.Inputs.Expenses,
		st.Inputs.TaxRatePercent, st.Inputs.HoursPerDay,
		st.Inputs.DaysPerWeek, st.HourlyRate, now,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM projects"); err != nil {
		return err
	}

	for pos, p := range st.Ledger.Projects {
		_, err = tx.Exec(`INSERT INTO projects (id, name, hours, price, status, position)
			VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Hours, p.Price, p.Status.String(), pos,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ProjectCount returns the number of persisted projects.
func (s *Store) ProjectCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM projects").Scan(&count)
	return count, err
}
