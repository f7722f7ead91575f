package main

import (
	"database/sql"
	"fmt"
	"time"
)

const runLogSchema = `
CREATE TABLE IF NOT EXISTS babble_runs (
    run_id INTEGER PRIMARY KEY,
    ran_at TEXT NOT NULL,
    source TEXT NOT NULL,
    table_size INTEGER NOT NULL,
    model_order INTEGER NOT NULL,
    words_requested INTEGER NOT NULL,
    words_emitted INTEGER NOT NULL
);
`

// RunRecord is one row of the run log: the parameters and outcome of a
// single generation run. The model itself is never stored.
type RunRecord struct {
	RanAt          time.Time
	Source         string
	TableSize      int
	Order          int
	WordsRequested int
	WordsEmitted   int
}

func setupRunLogSchema(db *sql.DB) error {
	_, err := db.Exec(runLogSchema)
	return err
}

func recordRun(db *sql.DB, rec RunRecord) error {
	_, err := db.Exec(
		`INSERT INTO babble_runs (ran_at, source, table_size, model_order, words_requested, words_emitted) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.RanAt.UTC().Format(time.RFC3339),
		rec.Source,
		rec.TableSize,
		rec.Order,
		rec.WordsRequested,
		rec.WordsEmitted,
	)
	return err
}

// logRun opens the run-log database, ensures the schema exists, and appends
// one record.
func logRun(path string, rec RunRecord) error {
	db, err := initDB(path)
	if err != nil {
		return fmt.Errorf("failed to open run log database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := setupRunLogSchema(db); err != nil {
		return fmt.Errorf("failed to set up run log schema: %w", err)
	}
	if err := recordRun(db, rec); err != nil {
		return fmt.Errorf("failed to insert run record: %w", err)
	}
	return nil
}
