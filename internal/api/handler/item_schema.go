package handler

import "time"

// --- Request / Response types ---

type createItemRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	// Available is a pointer so an absent field fails validation instead of
	// silently defaulting to false.
	Available *bool  `json:"available" validate:"required"`
	RequestID string `json:"request_id"`
}

// updateItemRequest is a partial update: absent fields stay untouched.
type updateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type createCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type itemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     string `json:"owner_id"`
	RequestID   string `json:"request_id,omitempty"`
}

type commentResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

// bookingSlotResponse is the compact booking view embedded in owner-facing
// item responses.
type bookingSlotResponse struct {
	ID       string    `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	BookerID string    `json:"booker_id"`
	Status   string    `json:"status"`
}

type itemDetailResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Available   bool                 `json:"available"`
	OwnerID     string               `json:"owner_id"`
	RequestID   string               `json:"request_id,omitempty"`
	Comments    []commentResponse    `json:"comments"`
	LastBooking *bookingSlotResponse `json:"last_booking,omitempty"`
	NextBooking *bookingSlotResponse `json:"next_booking,omitempty"`
}
