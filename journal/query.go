package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const selectTrades = `
	SELECT trade_id, trade_date, pair, direction, result, notes, created
	FROM trades`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (TradeRecord, error) {
	var (
		rec       TradeRecord
		day       string
		direction string
	)
	err := row.Scan(
		&rec.ID,
		&day,
		&rec.Pair,
		&direction,
		&rec.Result,
		&rec.Notes,
		&rec.Created,
	)
	if err != nil {
		return TradeRecord{}, err
	}

	rec.Date, err = time.ParseInLocation(DateLayout, day, time.UTC)
	if err != nil {
		return TradeRecord{}, fmt.Errorf("trade %s: %w", rec.ID, err)
	}
	rec.Direction = Direction(direction)
	return rec, nil
}

// Trades returns every trade in the order it was recorded.
func (j *SQLite) Trades() ([]TradeRecord, error) {
	rows, err := j.db.Query(selectTrades + ` ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// GetTrade returns a single trade record by ID.
func (j *SQLite) GetTrade(tradeID string) (TradeRecord, error) {
	row := j.db.QueryRow(selectTrades+` WHERE trade_id = ?`, tradeID)

	rec, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TradeRecord{}, fmt.Errorf("%w: %q", ErrTradeNotFound, tradeID)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTradesBetween returns trades whose date is within [start, end),
// in the order they were recorded.
func (j *SQLite) ListTradesBetween(start, end time.Time) ([]TradeRecord, error) {
	rows, err := j.db.Query(selectTrades+`
		WHERE trade_date >= ? AND trade_date < ?
		ORDER BY seq ASC`,
		start.Format(DateLayout), end.Format(DateLayout))
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func collect(rows *sql.Rows) ([]TradeRecord, error) {
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
