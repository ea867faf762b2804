package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/gamers-hub/internal/models"
)

// ErrSubmission marks a relay failure. It is safe for the customer to retry.
var ErrSubmission = errors.New("booking submission failed")

type Repository interface {
	// ListBookedSlots returns every committed reservation on date.
	ListBookedSlots(
		ctx context.Context,
		date Date,
	) (*BookedSlotSet, error)

	// CreateBooking fails with the "slot_taken" business error when the
	// (date, slot) pair is already stored.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}

// Submission is the payload handed to the external form relay.
type Submission struct {
	Reference        string
	Name             string
	Phone            string
	Date             string
	Slot             string
	UTR              string
	PaymentConfirmed bool
}

// Submitter forwards a booking to the relay. Failures wrap ErrSubmission.
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// Guard allows one in-flight submission per key.
type Guard interface {
	// Acquire reports ok=false when another submission holds key.
	Acquire(ctx context.Context, key string) (release func(), ok bool, err error)
}

// GuardKey identifies the slot a submission is racing for.
func GuardKey(r Record) string {
	return r.Date.String() + "|" + r.Slot
}
