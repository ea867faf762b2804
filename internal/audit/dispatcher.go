package audit

import (
	"sync"

	"go.uber.org/zap"
)

const (
	ActionBookingCreated     = "booking_created"
	ActionBookingConflict    = "booking_conflict"
	ActionBookingRelayFailed = "booking_relay_failed"
)

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher writes events on a background worker so requests never wait on audit storage.
type Dispatcher struct {
	sink  Sink
	log   *zap.Logger
	queue chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}

	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

// Dispatch drops the event when the queue is full.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close drains queued events. Dispatch must not be called afterwards.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
