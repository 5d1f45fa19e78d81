package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createBookingRequest struct {
	Start  time.Time `json:"start"   validate:"required"`
	End    time.Time `json:"end"     validate:"required"`
	ItemID string    `json:"item_id" validate:"required"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type bookerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type bookedItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     string `json:"owner_id"`
	RequestID   string `json:"request_id,omitempty"`
}

type bookingResponse struct {
	ID     string             `json:"id"`
	Start  time.Time          `json:"start"`
	End    time.Time          `json:"end"`
	Status string             `json:"status"`
	Booker bookerResponse     `json:"booker"`
	Item   bookedItemResponse `json:"item"`
}
