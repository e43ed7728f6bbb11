package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtIsSortable(t *testing.T) {
	t.Parallel()

	now := time.Now()
	prev := At(now)
	for i := 0; i < 100; i++ {
		next := At(now)
		assert.Len(t, next, 26)
		assert.Less(t, prev, next)
		prev = next
	}
}

func TestAtRoundTripsTime(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)
	got, err := Time(At(ts))
	require.NoError(t, err)
	assert.True(t, got.Equal(ts), "got %s", got)
}

func TestTimeRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Time("not-a-ulid")
	assert.Error(t, err)
}

func TestShort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", Short("abc"))
	assert.Equal(t, "9Y0Z1A2B", Short("01HV2Q3R4S5T6V7W8X9Y0Z1A2B"))
}

func TestShortDistinguishesSameSecond(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s := Short(At(now))
		assert.Len(t, s, ShortLen)
		assert.False(t, seen[s], "duplicate short id %s", s)
		seen[s] = true
	}
}
