package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/lendly/sharing-system/internal/api/metrics"
	"github.com/lendly/sharing-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes booking notices to a fixed set of workers using consistent
// hashing on the booking id, guaranteeing per-booking delivery ordering: a
// created notice is never overtaken by the decision that follows it.
type Dispatcher struct {
	workers []chan ports.BookingNotice
	sink    ports.NoticeSink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.NoticeSink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.BookingNotice, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.BookingNotice, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify hands a notice to the worker responsible for its booking id,
// satisfying ports.Notifier. It never blocks the caller: when the worker's
// channel is full the notice is dropped, logged and counted.
func (d *Dispatcher) Notify(notice ports.BookingNotice) {
	idx := d.shardIndex(notice.BookingID)
	select {
	case d.workers[idx] <- notice:
		metrics.NoticesQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.NoticesDroppedTotal.Inc()
		d.log.Warn().
			Str("booking_id", notice.BookingID).
			Str("kind", string(notice.Kind)).
			Int("worker_id", idx).
			Msg("notice dropped, worker channel full")
	}
}

// shardIndex maps a booking id deterministically to a worker index.
func (d *Dispatcher) shardIndex(bookingID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(bookingID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.BookingNotice) {
	for {
		select {
		case <-ctx.Done():
			return
		case notice, ok := <-ch:
			if !ok {
				return
			}
			metrics.NoticesQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.sink.Deliver(ctx, notice); err != nil {
				metrics.NoticesErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("booking_id", notice.BookingID).
					Str("kind", string(notice.Kind)).
					Int("worker_id", id).
					Msg("notice delivery failed")
				continue
			}
			metrics.NoticesDeliveredTotal.WithLabelValues(string(notice.Kind)).Inc()
		}
	}
}
