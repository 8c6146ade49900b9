package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Slots is the ordered mapping of slot label ("HH:MM-HH:MM") to remaining
// seat capacity. Insertion order is chronological and survives JSON
// round-trips.
type Slots struct {
	labels []string
	seats  map[string]int
}

func NewSlots() *Slots {
	return &Slots{seats: map[string]int{}}
}

func (s *Slots) Add(label string, seats int) {
	if s.seats == nil {
		s.seats = map[string]int{}
	}
	if _, ok := s.seats[label]; !ok {
		s.labels = append(s.labels, label)
	}
	s.seats[label] = seats
}

func (s *Slots) Seats(label string) (int, bool) {
	n, ok := s.seats[label]
	return n, ok
}

func (s *Slots) Labels() []string {
	labels := make([]string, len(s.labels))
	copy(labels, s.labels)
	return labels
}

func (s *Slots) Len() int {
	return len(s.labels)
}

// Map returns a plain label->seats map for document persistence. The 24-hour
// labels sort chronologically, so a key-ordered store keeps the grid readable.
func (s *Slots) Map() map[string]int {
	m := make(map[string]int, len(s.labels))
	for label, seats := range s.seats {
		m[label] = seats
	}
	return m
}

func (s *Slots) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range s.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", s.seats[label])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *Slots) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("slots: error reading opening token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("slots: expected object, got %v", tok)
	}

	s.labels = nil
	s.seats = map[string]int{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("slots: error reading key: %w", err)
		}
		label, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("slots: expected string key, got %v", keyTok)
		}

		var seats int
		if err := dec.Decode(&seats); err != nil {
			return fmt.Errorf("slots: error reading seats for %q: %w", label, err)
		}

		s.Add(label, seats)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("slots: error reading closing token: %w", err)
	}

	return nil
}
