package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"niteout-backend/logger"
	"niteout-backend/model"
	"niteout-backend/response"
	"niteout-backend/session"
	"niteout-backend/store"
)

// Service creates seating events for a publican's venue.
type Service struct {
	store    store.Store
	sessions session.Store
}

func NewService(st store.Store, sess session.Store) *Service {
	return &Service{store: st, sessions: sess}
}

// Create validates the requested window, loads the owning venue, builds the
// availability-slot grid and commits the event document together with the
// venue's event-list append in one atomic batch. callerID is the
// authenticated account id; the session store maps it to the publican id.
func (s *Service) Create(ctx context.Context, callerID string, e *model.Event) (*model.Event, error) {
	if e == nil || e.StartTime.IsZero() || e.EndTime.IsZero() || e.Expires.IsZero() {
		return nil, response.MissingFields()
	}

	if e.NumSeats < 1 {
		return nil, response.InvalidSeats()
	}

	if !sameDay(e.StartTime, e.EndTime) {
		return nil, response.CrossDayRange()
	}

	if !e.Expires.After(e.StartTime) {
		return nil, response.ExpiryBeforeStart()
	}

	pubID := s.resolvePublican(callerID)

	var pub model.Publican
	err := s.store.Read(ctx, store.CollectionPublicans, pubID, &pub)
	if errors.Is(err, store.ErrNotFound) {
		return nil, response.PubNotFound()
	}
	if err != nil {
		return nil, fmt.Errorf("create: error loading publican %s: %w", pubID, err)
	}

	slots, err := GenerateSlots(e.StartTime, e.EndTime, e.NumSeats)
	if errors.Is(err, ErrInvalidRange) {
		return nil, response.InvalidTimeRange()
	}
	if err != nil {
		return nil, response.InvalidData(fmt.Sprintf("create: %v", err))
	}

	details := &model.PubDetails{
		PubID:      pubID,
		PubName:    pub.PubName,
		PubAddress: pub.Address,
		Xcoord:     pub.Xcoord,
		Ycoord:     pub.Ycoord,
	}

	now := time.Now().UTC()
	doc := map[string]interface{}{
		"game_type":  model.GameTypeSeatBased,
		"start_time": e.StartTime.Format(time.RFC3339),
		"end_time":   e.EndTime.Format(time.RFC3339),
		"expires":    e.Expires.Format(time.RFC3339),
		"pub_id":     pubID,
		"pub_details": map[string]interface{}{
			"pub_id":      details.PubID,
			"pub_name":    details.PubName,
			"pub_address": details.PubAddress,
			"xcoord":      details.Xcoord,
			"ycoord":      details.Ycoord,
		},
		"available_slots": slots.Map(),
		"num_seats":       e.NumSeats,
		"created_date":    now,
	}

	eventID, err := s.store.CreateAndAppend(ctx, store.CollectionEvents, doc, store.CollectionPublicans, pubID, "events")
	if err != nil {
		logger.Errorf(ctx, "create: error persisting event for %s: %+v", pubID, err)
		return nil, response.PersistenceFailed()
	}

	e.EventID = eventID
	e.GameType = model.GameTypeSeatBased
	e.PubID = pubID
	e.PubDetails = details
	e.AvailableSlots = slots
	e.CreatedAt = &now

	return e, nil
}

// resolvePublican looks the caller up in the session store. A fresh device
// has no session; the profile document shares the account id as its key, so
// the caller id is used directly.
func (s *Service) resolvePublican(callerID string) string {
	pubID, err := s.sessions.Get(callerID)
	if err != nil {
		return callerID
	}
	return pubID
}

// sameDay reports whether a and b share a calendar day in a's zone.
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
