package journal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/tradejournal/pkg/id"
)

// Draft holds raw entry form input. Every field is a string, exactly as
// typed, until Trade converts it into a TradeRecord.
type Draft struct {
	Date      string `json:"date" yaml:"date"`
	Pair      string `json:"pair" yaml:"pair"`
	Direction string `json:"direction" yaml:"direction"`
	Result    string `json:"result" yaml:"result"`
	Notes     string `json:"notes" yaml:"notes"`
}

// Draft field names accepted by Set.
const (
	FieldDate      = "date"
	FieldPair      = "pair"
	FieldDirection = "direction"
	FieldResult    = "result"
	FieldNotes     = "notes"
)

// NewDraft returns the form defaults: today's date, direction long and
// everything else empty.
func NewDraft(now time.Time) Draft {
	return Draft{
		Date:      now.Format(DateLayout),
		Direction: string(Long),
	}
}

// Set assigns a single field by name.
func (d *Draft) Set(field, value string) error {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case FieldDate:
		d.Date = value
	case FieldPair:
		d.Pair = value
	case FieldDirection, "dir", "type":
		d.Direction = value
	case FieldResult:
		d.Result = value
	case FieldNotes:
		d.Notes = value
	default:
		return fmt.Errorf("unknown draft field %q", field)
	}
	return nil
}

// ParseResult converts raw result input into a finite float. Empty or
// non-numeric input, NaN and infinities are all rejected.
func ParseResult(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidResult)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidResult, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidResult, s)
	}
	return v, nil
}

// ParseDate parses a YYYY-MM-DD trade date. An empty string yields the
// calendar date of now.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = now.Format(DateLayout)
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Trade validates the draft and returns a new TradeRecord with a fresh ID.
// now supplies the default date and the Created timestamp.
func (d Draft) Trade(now time.Time) (TradeRecord, error) {
	result, err := ParseResult(d.Result)
	if err != nil {
		return TradeRecord{}, err
	}
	dir, err := ParseDirection(d.Direction)
	if err != nil {
		return TradeRecord{}, err
	}
	date, err := ParseDate(d.Date, now)
	if err != nil {
		return TradeRecord{}, err
	}

	return TradeRecord{
		ID:        id.At(now),
		Date:      date,
		Pair:      strings.TrimSpace(d.Pair),
		Direction: dir,
		Result:    result,
		Notes:     strings.TrimSpace(d.Notes),
		Created:   now.UTC(),
	}, nil
}
