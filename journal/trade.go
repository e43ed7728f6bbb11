package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for trade dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidResult    = errors.New("result must be a finite number")
	ErrInvalidDirection = errors.New("direction must be long or short")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
	ErrTradeNotFound    = errors.New("trade not found")
	ErrAmbiguousTradeID = errors.New("trade id matches more than one trade")
)

// Direction records which side of the market a trade was on. It is kept
// for the journal only and does not affect any statistic.
type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

// ParseDirection accepts "long" or "short" in any case. An empty string
// means Long, the form default.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "long":
		return Long, nil
	case "short":
		return Short, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func (d Direction) String() string {
	return string(d)
}

// TradeRecord is one logged trade outcome. Records are immutable once
// they have been written to a Journal.
type TradeRecord struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Pair      string    `json:"pair"`
	Direction Direction `json:"direction"`
	Result    float64   `json:"result"`
	Notes     string    `json:"notes"`
	Created   time.Time `json:"created"`
}

// Day returns the trade date formatted as YYYY-MM-DD.
func (t TradeRecord) Day() string {
	return t.Date.Format(DateLayout)
}

// IsWin reports whether the trade closed with a strictly positive result.
func (t TradeRecord) IsWin() bool {
	return t.Result > 0
}

// IsLoss reports whether the trade closed with a strictly negative result.
func (t TradeRecord) IsLoss() bool {
	return t.Result < 0
}
