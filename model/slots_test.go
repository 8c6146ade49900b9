package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsMarshalKeepsInsertionOrder(t *testing.T) {
	slots := NewSlots()
	slots.Add("09:30-10:00", 4)
	slots.Add("10:00-11:00", 4)
	slots.Add("11:00-12:00", 4)

	data, err := json.Marshal(slots)
	require.NoError(t, err)

	assert.Equal(t, `{"09:30-10:00":4,"10:00-11:00":4,"11:00-12:00":4}`, string(data))
}

func TestSlotsUnmarshalKeepsDocumentOrder(t *testing.T) {
	var slots Slots
	err := json.Unmarshal([]byte(`{"18:20-19:00":2,"19:00-20:00":2,"20:00-20:30":2}`), &slots)
	require.NoError(t, err)

	assert.Equal(t, []string{"18:20-19:00", "19:00-20:00", "20:00-20:30"}, slots.Labels())

	seats, ok := slots.Seats("20:00-20:30")
	require.True(t, ok)
	assert.Equal(t, 2, seats)
}

func TestSlotsUnmarshalRejectsNonObject(t *testing.T) {
	var slots Slots
	err := json.Unmarshal([]byte(`["09:00-10:00"]`), &slots)
	assert.Error(t, err)
}

func TestSlotsAddOverwritesWithoutDuplicatingLabel(t *testing.T) {
	slots := NewSlots()
	slots.Add("09:00-10:00", 4)
	slots.Add("09:00-10:00", 2)

	assert.Equal(t, 1, slots.Len())
	seats, _ := slots.Seats("09:00-10:00")
	assert.Equal(t, 2, seats)
}

func TestSlotsMap(t *testing.T) {
	slots := NewSlots()
	slots.Add("09:00-10:00", 4)
	slots.Add("10:00-11:00", 4)

	assert.Equal(t, map[string]int{"09:00-10:00": 4, "10:00-11:00": 4}, slots.Map())
}
