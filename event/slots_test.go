package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlotsAlignedRange(t *testing.T) {
	start := time.Date(2026, time.June, 5, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 5, 12, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(start, end, 4)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"}, slots.Labels())
	for _, label := range slots.Labels() {
		seats, ok := slots.Seats(label)
		require.True(t, ok)
		assert.Equal(t, 4, seats)
	}
}

func TestGenerateSlotsUnalignedStart(t *testing.T) {
	start := time.Date(2026, time.June, 5, 9, 30, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 5, 12, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(start, end, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:30-10:00", "10:00-11:00", "11:00-12:00"}, slots.Labels())
}

func TestGenerateSlotsUnalignedEnd(t *testing.T) {
	start := time.Date(2026, time.June, 5, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 5, 11, 45, 0, 0, time.UTC)

	slots, err := GenerateSlots(start, end, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00", "11:00-11:45"}, slots.Labels())
}

func TestGenerateSlotsSubHourRange(t *testing.T) {
	start := time.Date(2026, time.June, 5, 9, 15, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 5, 9, 45, 0, 0, time.UTC)

	slots, err := GenerateSlots(start, end, 6)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:15-09:45"}, slots.Labels())
	seats, ok := slots.Seats("09:15-09:45")
	require.True(t, ok)
	assert.Equal(t, 6, seats)
}

func TestGenerateSlotsEndNotAfterStart(t *testing.T) {
	at := time.Date(2026, time.June, 5, 9, 0, 0, 0, time.UTC)

	_, err := GenerateSlots(at, at, 4)
	assert.Equal(t, ErrInvalidRange, err)

	_, err = GenerateSlots(at, at.Add(-time.Hour), 4)
	assert.Equal(t, ErrInvalidRange, err)
}

func TestGenerateSlotsRejectsNonPositiveSeats(t *testing.T) {
	start := time.Date(2026, time.June, 5, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	_, err := GenerateSlots(start, end, 0)
	assert.Equal(t, ErrInvalidSeats, err)

	_, err = GenerateSlots(start, end, -3)
	assert.Equal(t, ErrInvalidSeats, err)
}

func TestGenerateSlotsIsDeterministic(t *testing.T) {
	start := time.Date(2026, time.June, 5, 18, 20, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 5, 23, 0, 0, 0, time.UTC)

	first, err := GenerateSlots(start, end, 8)
	require.NoError(t, err)
	second, err := GenerateSlots(start, end, 8)
	require.NoError(t, err)

	assert.Equal(t, first.Labels(), second.Labels())
	assert.Equal(t, first.Map(), second.Map())
}
