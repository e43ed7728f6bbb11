package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN opens a private in-memory database that disappears when the
// journal is closed.
const MemoryDSN = ":memory:"

type SQLite struct {
	db *sql.DB
}

func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// Every connection to :memory: gets its own database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, trade_date, pair, direction, result, notes, created)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Day(), t.Pair, string(t.Direction), t.Result, t.Notes, t.Created,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
