package domain

import "time"

// BookingStatus is the persisted lifecycle state of a booking.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	// StatusCanceled is a reserved status value: no operation in this service
	// sets it, but it is part of the wire contract.
	StatusCanceled BookingStatus = "CANCELED"
)

// Booking is the core aggregate: a time-bounded request by a booker to
// borrow an item. Status starts at WAITING and transitions exactly once to
// APPROVED or REJECTED through the confirm operation.
type Booking struct {
	ID       string        `json:"id" bson:"_id,omitempty"`
	Start    time.Time     `json:"start" bson:"start"`
	End      time.Time     `json:"end" bson:"end"`
	ItemID   string        `json:"item_id" bson:"item_id"`
	BookerID string        `json:"booker_id" bson:"booker_id"`
	Status   BookingStatus `json:"status" bson:"status"`
	// ItemOwnerID is denormalized from the item at creation time so that
	// owner-side listings do not need a join.
	ItemOwnerID string `json:"-" bson:"item_owner_id"`
}

// BookingState is a query-time filter over bookings, distinct from the
// persisted status: CURRENT/PAST/FUTURE are derived from start/end against a
// caller-supplied instant, WAITING/REJECTED match the status field.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState maps a raw state string to a BookingState.
func ParseBookingState(s string) (BookingState, bool) {
	switch BookingState(s) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return BookingState(s), true
	}
	return "", false
}

// TemporalFilter selects the time-window predicate a segment applies,
// evaluated against a single "now" instant captured once per request.
type TemporalFilter int

const (
	TemporalNone    TemporalFilter = iota
	TemporalCurrent                // start < now AND end > now
	TemporalPast                   // end < now
	TemporalFuture                 // start > now
)

// Segment is the store-query predicate a state filter selects. At most one
// of Status/Temporal is set; both zero means "no filter" (ALL). Ordering is
// uniform across all segments: start descending.
type Segment struct {
	Status   BookingStatus
	Temporal TemporalFilter
}

var stateSegments = map[BookingState]Segment{
	StateAll:      {},
	StateCurrent:  {Temporal: TemporalCurrent},
	StatePast:     {Temporal: TemporalPast},
	StateFuture:   {Temporal: TemporalFuture},
	StateWaiting:  {Status: StatusWaiting},
	StateRejected: {Status: StatusRejected},
}

// SegmentFor resolves a state filter to its query segment. Handlers validate
// the state string before it reaches the engine; this guard exists for
// callers that bypass the transport layer.
func SegmentFor(state BookingState) (Segment, error) {
	seg, ok := stateSegments[state]
	if !ok {
		return Segment{}, BadRequestf("Unknown state: %s", state)
	}
	return seg, nil
}

// Matches reports whether a booking falls inside the segment at the given
// instant. The store implementations translate segments into native queries;
// this is the reference predicate they must agree with.
func (s Segment) Matches(b *Booking, now time.Time) bool {
	if s.Status != "" && b.Status != s.Status {
		return false
	}
	switch s.Temporal {
	case TemporalCurrent:
		return b.Start.Before(now) && b.End.After(now)
	case TemporalPast:
		return b.End.Before(now)
	case TemporalFuture:
		return b.Start.After(now)
	}
	return true
}
