package event

import (
	"errors"
	"fmt"
	"time"

	"niteout-backend/model"
)

var (
	ErrInvalidRange = errors.New("end time must be after start time")
	ErrInvalidSeats = errors.New("seats per slot must be at least one")
)

const slotLabelFormat = "15:04"

// GenerateSlots cuts the window [start, end) into bookable slots aligned to
// the top of the hour and gives every slot the full seat capacity. The first
// and last slots may be shorter than an hour: the first ends at the next hour
// boundary after an intra-hour start, and the last is clamped to end. Output
// order is chronological, and the result depends on nothing but the inputs.
func GenerateSlots(start, end time.Time, seats int) (*model.Slots, error) {
	if !end.After(start) {
		return nil, ErrInvalidRange
	}
	if seats < 1 {
		return nil, ErrInvalidSeats
	}

	slots := model.NewSlots()
	for cursor := start; cursor.Before(end); {
		boundary := nextHourBoundary(cursor)
		if boundary.After(end) {
			boundary = end
		}

		label := fmt.Sprintf("%s-%s", cursor.Format(slotLabelFormat), boundary.Format(slotLabelFormat))
		slots.Add(label, seats)

		cursor = boundary
	}

	return slots, nil
}

// nextHourBoundary returns the first top-of-hour strictly after t.
func nextHourBoundary(t time.Time) time.Time {
	top := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	return top.Add(time.Hour)
}
