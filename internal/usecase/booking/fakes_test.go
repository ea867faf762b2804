package booking

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/gamers-hub/internal/domain/booking"
	"github.com/BruksfildServices01/gamers-hub/internal/httperr"
	"github.com/BruksfildServices01/gamers-hub/internal/models"
)

type fakeRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
	listErr  error
	// takeOnCreate simulates another writer landing first.
	takeOnCreate bool
}

// cancellableRepo fails like a database driver once ctx is done.
type cancellableRepo struct {
	*fakeRepo
}

func (r cancellableRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.fakeRepo.CreateBooking(ctx, b)
}

func (r *fakeRepo) ListBookedSlots(_ context.Context, date domain.Date) (*domain.BookedSlotSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}
	set := domain.NewBookedSlotSet()
	for _, b := range r.bookings {
		if b.Date == date.String() {
			set.Add(domain.Record{Date: date, Slot: b.Slot})
		}
	}
	return set, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.takeOnCreate {
		return httperr.ErrBusiness("slot_taken")
	}
	for _, existing := range r.bookings {
		if existing.Date == b.Date && existing.Slot == b.Slot {
			return httperr.ErrBusiness("slot_taken")
		}
	}
	b.ID = uint(len(r.bookings) + 1)
	r.bookings = append(r.bookings, *b)
	return nil
}

type fakeSubmitter struct {
	mu    sync.Mutex
	calls []domain.Submission
	err   error
	// block, when set, holds Submit until it is closed.
	block   chan struct{}
	entered chan struct{}
	// afterSubmit runs once the relay has accepted the call.
	afterSubmit func()
}

func (s *fakeSubmitter) Submit(ctx context.Context, sub domain.Submission) error {
	s.mu.Lock()
	s.calls = append(s.calls, sub)
	s.mu.Unlock()

	if s.entered != nil {
		s.entered <- struct{}{}
	}
	if s.block != nil {
		<-s.block
	}
	if s.err == nil && s.afterSubmit != nil {
		s.afterSubmit()
	}
	return s.err
}

func (s *fakeSubmitter) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type recordingArchive struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (a *recordingArchive) Enqueue(b models.Booking) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bookings = append(a.bookings, b)
}

type failingGuard struct{ err error }

func (g failingGuard) Acquire(context.Context, string) (func(), bool, error) {
	return nil, false, g.err
}
