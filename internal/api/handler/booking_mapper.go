package handler

import (
	"github.com/lendly/sharing-system/internal/core/ports"
)

// --- Service result → HTTP response ---

func toBookingResponse(d *ports.BookingDetail) bookingResponse {
	return bookingResponse{
		ID:     d.ID,
		Start:  d.Start.UTC(),
		End:    d.End.UTC(),
		Status: d.Status,
		Booker: bookerResponse{
			ID:    d.Booker.ID,
			Name:  d.Booker.Name,
			Email: d.Booker.Email,
		},
		Item: bookedItemResponse{
			ID:          d.Item.ID,
			Name:        d.Item.Name,
			Description: d.Item.Description,
			Available:   d.Item.Available,
			OwnerID:     d.Item.OwnerID,
			RequestID:   d.Item.RequestID,
		},
	}
}

func toBookingListResponse(list []*ports.BookingDetail) []bookingResponse {
	out := make([]bookingResponse, len(list))
	for i, d := range list {
		out[i] = toBookingResponse(d)
	}
	return out
}
