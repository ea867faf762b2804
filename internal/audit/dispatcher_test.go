package audit

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *memorySink) Log(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, nil)

	d.Dispatch(Event{Action: ActionBookingCreated, Entity: "booking", EntityID: "a"})
	d.Dispatch(Event{Action: ActionBookingConflict, Entity: "booking", EntityID: "b"})
	d.Close()

	assert.Len(t, sink.events, 2)
	assert.Equal(t, ActionBookingCreated, sink.events[0].Action)
	assert.Equal(t, "b", sink.events[1].EntityID)
}

func TestDispatcher_LogsSinkFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sink := &memorySink{err: errors.New("db down")}

	d := NewDispatcher(sink, zap.New(core))
	d.Dispatch(Event{Action: ActionBookingRelayFailed})
	d.Close()

	assert.Equal(t, 1, logs.FilterMessage("audit write failed").Len())
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Action: ActionBookingCreated}) })
}
