package model

import (
	"time"
)

const GameTypeSeatBased = "Seat Based"

type Event struct {
	EventID string `json:"event_id,omitempty"`

	GameType  string    `json:"game_type,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Expires   time.Time `json:"expires"`
	NumSeats  int       `json:"num_seats"`

	PubID      string      `json:"pub_id,omitempty"`
	PubDetails *PubDetails `json:"pub_details,omitempty"`

	AvailableSlots *Slots `json:"available_slots,omitempty"`

	CreatedAt *time.Time `json:"created_date,omitempty"`
}

// PubDetails is the venue snapshot denormalized into every event at
// creation time. It is a copy, not a live reference.
type PubDetails struct {
	PubID      string  `json:"pub_id"`
	PubName    string  `json:"pub_name"`
	PubAddress string  `json:"pub_address"`
	Xcoord     float64 `json:"xcoord"`
	Ycoord     float64 `json:"ycoord"`
}
