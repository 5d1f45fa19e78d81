package handler

import (
	"github.com/lendly/sharing-system/internal/core/domain"
	"github.com/lendly/sharing-system/internal/core/ports"
)

// --- Service result → HTTP response ---

func toItemResponse(i *domain.Item) itemResponse {
	return itemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		RequestID:   i.RequestID,
	}
}

func toItemDetailResponse(d *ports.ItemDetail) itemDetailResponse {
	return itemDetailResponse{
		ID:          d.Item.ID,
		Name:        d.Item.Name,
		Description: d.Item.Description,
		Available:   d.Item.Available,
		OwnerID:     d.Item.OwnerID,
		RequestID:   d.Item.RequestID,
		Comments:    toCommentListResponse(d.Comments),
		LastBooking: toSlotResponse(d.LastBooking),
		NextBooking: toSlotResponse(d.NextBooking),
	}
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.Created.UTC(),
	}
}

func toCommentListResponse(comments []*domain.Comment) []commentResponse {
	out := make([]commentResponse, len(comments))
	for i, c := range comments {
		out[i] = toCommentResponse(c)
	}
	return out
}

func toSlotResponse(s *ports.BookingSlot) *bookingSlotResponse {
	if s == nil {
		return nil
	}
	return &bookingSlotResponse{
		ID:       s.ID,
		Start:    s.Start.UTC(),
		End:      s.End.UTC(),
		BookerID: s.BookerID,
		Status:   s.Status,
	}
}
