package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lendly/sharing-system/internal/core/ports"
)

type collectSink struct {
	mu      sync.Mutex
	notices []ports.BookingNotice
	done    chan struct{}
	want    int
}

func newCollectSink(want int) *collectSink {
	return &collectSink{done: make(chan struct{}), want: want}
}

func (s *collectSink) Deliver(_ context.Context, notice ports.BookingNotice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, notice)
	if len(s.notices) == s.want {
		close(s.done)
	}
	return nil
}

func (s *collectSink) wait(t *testing.T) []ports.BookingNotice {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for deliveries")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.BookingNotice(nil), s.notices...)
}

func TestDispatcher_DeliversAllNotices(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newCollectSink(3)
	d := NewDispatcher(2, sink, zerolog.Nop())
	d.Start(ctx)

	d.Notify(ports.BookingNotice{Kind: ports.NoticeBookingCreated, BookingID: "bk-1", RecipientID: "owner-1"})
	d.Notify(ports.BookingNotice{Kind: ports.NoticeBookingApproved, BookingID: "bk-1", RecipientID: "booker-1"})
	d.Notify(ports.BookingNotice{Kind: ports.NoticeBookingCreated, BookingID: "bk-2", RecipientID: "owner-1"})

	got := sink.wait(t)
	if len(got) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(got))
	}
}

// Notices for one booking must reach the sink in submission order: the
// created notice is never overtaken by the decision.
func TestDispatcher_PerBookingOrdering(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const n = 50
	sink := newCollectSink(n)
	d := NewDispatcher(4, sink, zerolog.Nop())
	d.Start(ctx)

	kinds := []ports.NoticeKind{ports.NoticeBookingCreated, ports.NoticeBookingApproved}
	for i := 0; i < n; i++ {
		d.Notify(ports.BookingNotice{Kind: kinds[i%2], BookingID: "bk-hot"})
	}

	got := sink.wait(t)
	for i, notice := range got {
		if notice.Kind != kinds[i%2] {
			t.Fatalf("ordering violated at %d: got %s", i, notice.Kind)
		}
	}
}

// Notify must return even when the responsible worker channel is full; the
// overflowing notice is dropped instead of stalling the request path. Workers
// are never started here so the channel fills and stays full.
func TestDispatcher_NotifyDoesNotBlockOnFullChannel(t *testing.T) {
	d := NewDispatcher(1, newCollectSink(0), zerolog.Nop())

	returned := make(chan struct{})
	go func() {
		for i := 0; i <= channelBuffer; i++ {
			d.Notify(ports.BookingNotice{Kind: ports.NoticeBookingCreated, BookingID: "bk-1"})
		}
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("Notify blocked on a full worker channel")
	}
	if got := len(d.workers[0]); got != channelBuffer {
		t.Errorf("expected a full channel of %d notices, got %d", channelBuffer, got)
	}
}
