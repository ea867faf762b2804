package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gamers-hub/internal/audit"
	domain "github.com/BruksfildServices01/gamers-hub/internal/domain/booking"
	"github.com/BruksfildServices01/gamers-hub/internal/httperr"
	"github.com/BruksfildServices01/gamers-hub/internal/metrics"
	"github.com/BruksfildServices01/gamers-hub/internal/models"
	"github.com/BruksfildServices01/gamers-hub/internal/receipt"
	"github.com/BruksfildServices01/gamers-hub/internal/timezone"
)

// ======================================================
// OUTPUT
// ======================================================

type SubmitBookingResult struct {
	Booking *models.Booking
	Receipt string
	Message string
}

// persistTimeout bounds the insert that follows an accepted relay call. The
// insert no longer follows the request's cancellation: the relay already holds
// the booking, so the slot must be recorded even if the customer goes away.
const persistTimeout = 10 * time.Second

// ArchiveQueue receives confirmed bookings for offline copies.
type ArchiveQueue interface {
	Enqueue(b models.Booking)
}

// ======================================================
// USE CASE
// ======================================================

type SubmitBooking struct {
	repo      domain.Repository
	catalog   *domain.Catalog
	clock     timezone.Clock
	submitter domain.Submitter
	guard     domain.Guard
	receipts  *receipt.Signer
	audit     *audit.Dispatcher
	archive   ArchiveQueue
	metrics   *metrics.BookingMetrics
	log       *zap.Logger

	newReference func() string
}

type SubmitBookingDeps struct {
	Repo      domain.Repository
	Catalog   *domain.Catalog
	Clock     timezone.Clock
	Submitter domain.Submitter
	Guard     domain.Guard
	Receipts  *receipt.Signer
	Audit     *audit.Dispatcher
	Archive   ArchiveQueue
	Metrics   *metrics.BookingMetrics
	Log       *zap.Logger
}

func NewSubmitBooking(d SubmitBookingDeps) *SubmitBooking {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	return &SubmitBooking{
		repo:         d.Repo,
		catalog:      d.Catalog,
		clock:        d.Clock,
		submitter:    d.Submitter,
		guard:        d.Guard,
		receipts:     d.Receipts,
		audit:        d.Audit,
		archive:      d.Archive,
		metrics:      d.Metrics,
		log:          log,
		newReference: uuid.NewString,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitBooking) Execute(
	ctx context.Context,
	in domain.Request,
) (*SubmitBookingResult, error) {

	// --------------------------------------------------
	// 1️⃣ Campos do formulário
	// --------------------------------------------------
	v, err := in.Validate(uc.catalog)
	if err != nil {
		uc.metrics.ObserveBooking(metrics.OutcomeRejected)
		return nil, err
	}

	now := uc.clock.Now()
	if v.Date.Before(domain.DateOf(now)) {
		uc.metrics.ObserveBooking(metrics.OutcomeRejected)
		return nil, httperr.ErrBusiness("date_in_past")
	}

	record := v.Record()

	// --------------------------------------------------
	// 2️⃣ Uma submissão por horário em andamento
	// --------------------------------------------------
	release, err := uc.acquire(ctx, record)
	if err != nil {
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// 3️⃣ Revalida disponibilidade antes de enviar
	// --------------------------------------------------
	booked, err := uc.repo.ListBookedSlots(ctx, v.Date)
	if err != nil {
		uc.metrics.ObserveBooking(metrics.OutcomeError)
		return nil, err
	}

	slot, _ := domain.Evaluate(uc.catalog, v.Date, booked, now).Lookup(record.Slot)
	if !slot.Available {
		uc.metrics.ObserveBooking(metrics.OutcomeConflict)
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionBookingConflict,
			Entity:   "booking",
			Metadata: map[string]any{"date": record.Date.String(), "slot": record.Slot, "reason": slot.Reason},
		})
		return nil, httperr.ErrBusinessDetail("slot_unavailable", string(slot.Reason))
	}

	// --------------------------------------------------
	// 4️⃣ Relay externo
	// --------------------------------------------------
	ref := uc.newReference()

	sub := domain.Submission{
		Reference:        ref,
		Name:             v.Name,
		Phone:            v.Phone,
		Date:             record.Date.String(),
		Slot:             record.Slot,
		UTR:              v.UTR,
		PaymentConfirmed: v.PaymentConfirmed,
	}

	started := time.Now()
	err = uc.submitter.Submit(ctx, sub)
	uc.metrics.ObserveRelay(err == nil, time.Since(started).Seconds())

	if err != nil {
		uc.metrics.ObserveBooking(metrics.OutcomeRelayError)
		uc.log.Warn("booking relay failed",
			zap.String("reference", ref),
			zap.String("date", sub.Date),
			zap.String("slot", sub.Slot),
			zap.Error(err),
		)
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionBookingRelayFailed,
			Entity:   "booking",
			EntityID: ref,
		})

		if errors.Is(err, domain.ErrSubmission) {
			return nil, httperr.ErrBusiness("relay_failed")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Registro (único por data + horário)
	// --------------------------------------------------
	b := &models.Booking{
		Reference:        ref,
		Date:             sub.Date,
		Slot:             sub.Slot,
		Name:             sub.Name,
		Phone:            sub.Phone,
		UTR:              sub.UTR,
		PaymentConfirmed: sub.PaymentConfirmed,
	}

	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	if err := uc.repo.CreateBooking(storeCtx, b); err != nil {
		// the relay already has this booking; staff must reconcile it by reference
		uc.log.Error("booking relayed but not stored",
			zap.String("reference", ref),
			zap.Error(err),
		)
		if httperr.IsBusiness(err, "slot_taken") {
			uc.metrics.ObserveBooking(metrics.OutcomeConflict)
			uc.audit.Dispatch(audit.Event{
				Action:   audit.ActionBookingConflict,
				Entity:   "booking",
				EntityID: ref,
			})
			return nil, err
		}
		uc.metrics.ObserveBooking(metrics.OutcomeError)
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Recibo, auditoria, arquivo
	// --------------------------------------------------
	token, err := uc.receipts.Sign(b)
	if err != nil {
		uc.log.Warn("receipt signing failed", zap.String("reference", ref), zap.Error(err))
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: ref,
		Metadata: map[string]any{"date": b.Date, "slot": b.Slot},
	})
	if uc.archive != nil {
		uc.archive.Enqueue(*b)
	}
	uc.metrics.ObserveBooking(metrics.OutcomeCreated)

	return &SubmitBookingResult{
		Booking: b,
		Receipt: token,
		Message: ConfirmationMessage(b),
	}, nil
}

func (uc *SubmitBooking) acquire(ctx context.Context, r domain.Record) (func(), error) {
	release, ok, err := uc.guard.Acquire(ctx, domain.GuardKey(r))
	if err != nil {
		// the unique index still rejects a second booking of the slot
		uc.log.Warn("submission guard unavailable, continuing without it", zap.Error(err))
		return func() {}, nil
	}
	if !ok {
		uc.metrics.ObserveBooking(metrics.OutcomeInFlight)
		return nil, httperr.ErrBusiness("submission_in_progress")
	}
	return release, nil
}

func ConfirmationMessage(b *models.Booking) string {
	return fmt.Sprintf("Your booking for %s on %s is received.", b.Slot, b.Date)
}
