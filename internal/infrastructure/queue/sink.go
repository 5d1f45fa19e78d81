package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lendly/sharing-system/internal/core/ports"
)

// LogSink delivers notices to the structured log. It stands in for a real
// delivery channel (mail, push) while keeping the dispatcher contract honest.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

// Deliver satisfies ports.NoticeSink.
func (s *LogSink) Deliver(_ context.Context, notice ports.BookingNotice) error {
	s.log.Info().
		Str("kind", string(notice.Kind)).
		Str("booking_id", notice.BookingID).
		Str("item_id", notice.ItemID).
		Str("recipient_id", notice.RecipientID).
		Msg("booking notice")
	return nil
}
