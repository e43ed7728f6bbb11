package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 14, 15, 4, 5, 0, time.UTC)

func TestNewDraftDefaults(t *testing.T) {
	t.Parallel()

	d := NewDraft(testNow)
	assert.Equal(t, Draft{Date: "2024-06-14", Direction: "long"}, d)
}

func TestDraftSet(t *testing.T) {
	t.Parallel()

	d := NewDraft(testNow)
	require.NoError(t, d.Set("pair", "GBP_USD"))
	require.NoError(t, d.Set("Direction", "short"))
	require.NoError(t, d.Set("result", "-12.5"))
	require.NoError(t, d.Set("notes", "faded the breakout"))
	require.NoError(t, d.Set("date", "2024-06-01"))

	assert.Equal(t, Draft{
		Date:      "2024-06-01",
		Pair:      "GBP_USD",
		Direction: "short",
		Result:    "-12.5",
		Notes:     "faded the breakout",
	}, d)

	err := d.Set("size", "1000")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown draft field")
}

func TestDraftTrade(t *testing.T) {
	t.Parallel()

	d := Draft{
		Date:      "2024-05-02",
		Pair:      " EUR_USD ",
		Direction: "SHORT",
		Result:    "150.25",
		Notes:     " clean setup ",
	}

	rec, err := d.Trade(testNow)
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), rec.Date)
	assert.Equal(t, "EUR_USD", rec.Pair)
	assert.Equal(t, Short, rec.Direction)
	assert.Equal(t, 150.25, rec.Result)
	assert.Equal(t, "clean setup", rec.Notes)
	assert.True(t, rec.Created.Equal(testNow))
}

func TestDraftTradeDefaultsDate(t *testing.T) {
	t.Parallel()

	rec, err := Draft{Result: "1"}.Trade(testNow)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-14", rec.Day())
	assert.Equal(t, Long, rec.Direction)
}

func TestDraftTradeRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		draft Draft
		want  error
	}{
		{name: "empty_result", draft: Draft{Result: ""}, want: ErrInvalidResult},
		{name: "blank_result", draft: Draft{Result: "   "}, want: ErrInvalidResult},
		{name: "text_result", draft: Draft{Result: "ten"}, want: ErrInvalidResult},
		{name: "nan_result", draft: Draft{Result: "NaN"}, want: ErrInvalidResult},
		{name: "inf_result", draft: Draft{Result: "+Inf"}, want: ErrInvalidResult},
		{name: "bad_direction", draft: Draft{Result: "5", Direction: "sideways"}, want: ErrInvalidDirection},
		{name: "bad_date", draft: Draft{Result: "5", Date: "14/06/2024"}, want: ErrInvalidDate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.draft.Trade(testNow)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParseResult(t *testing.T) {
	t.Parallel()

	v, err := ParseResult("-0.5")
	require.NoError(t, err)
	assert.Equal(t, -0.5, v)

	v, err = ParseResult(" 1e3 ")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, v)
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Direction{"": Long, "long": Long, " Long ": Long, "short": Short} {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestDraftTradeUniqueIDs(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		rec, err := Draft{Result: "1"}.Trade(testNow)
		require.NoError(t, err)
		assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
	}
}
