package handler

import "time"

// --- Request / Response types ---

type createRequestRequest struct {
	Description string `json:"description" validate:"required"`
}

type requestResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

// requestDetailResponse adds the items listed in answer to the request.
type requestDetailResponse struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Created     time.Time      `json:"created"`
	Items       []itemResponse `json:"items"`
}
