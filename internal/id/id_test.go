package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsSortable(t *testing.T) {
	prev := New()
	for i := 0; i < 100; i++ {
		next := New()
		assert.Len(t, next, 26)
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestTimeRoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 4, 5, 6, 7, 8_000_000, time.UTC)
	runID := NewAt(at)

	got, err := Time(runID)
	require.NoError(t, err)
	assert.True(t, got.Equal(at.Truncate(time.Millisecond)), "got %s", got)
}

func TestTimeInvalid(t *testing.T) {
	_, err := Time("not-a-ulid")
	assert.Error(t, err)
}
