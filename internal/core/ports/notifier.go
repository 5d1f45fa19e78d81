package ports

import "context"

// NoticeKind identifies the booking lifecycle event a notice reports.
type NoticeKind string

const (
	NoticeBookingCreated  NoticeKind = "booking_created"
	NoticeBookingApproved NoticeKind = "booking_approved"
	NoticeBookingRejected NoticeKind = "booking_rejected"
)

// BookingNotice is the payload delivered to participants when a booking
// changes state. RecipientID is the owner for created notices and the booker
// for decisions.
type BookingNotice struct {
	Kind        NoticeKind
	BookingID   string
	ItemID      string
	RecipientID string
}

// Notifier enqueues a notice for asynchronous delivery. Implementations must
// not block the caller beyond transient buffering.
type Notifier interface {
	Notify(notice BookingNotice)
}

// NoticeSink delivers a single notice. The queue dispatcher fans notices out
// to a sink on its worker goroutines.
type NoticeSink interface {
	Deliver(ctx context.Context, notice BookingNotice) error
}
