package booking

import (
	"context"

	domain "github.com/BruksfildServices01/gamers-hub/internal/domain/booking"
	"github.com/BruksfildServices01/gamers-hub/internal/httperr"
	"github.com/BruksfildServices01/gamers-hub/internal/metrics"
	"github.com/BruksfildServices01/gamers-hub/internal/timezone"
)

type GetAvailability struct {
	repo    domain.Repository
	catalog *domain.Catalog
	clock   timezone.Clock
	metrics *metrics.BookingMetrics
}

func NewGetAvailability(
	repo domain.Repository,
	catalog *domain.Catalog,
	clock timezone.Clock,
	m *metrics.BookingMetrics,
) *GetAvailability {
	return &GetAvailability{
		repo:    repo,
		catalog: catalog,
		clock:   clock,
		metrics: m,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date domain.Date,
) (domain.Availability, error) {

	now := uc.clock.Now()
	if date.Before(domain.DateOf(now)) {
		return domain.Availability{}, httperr.ErrBusiness("date_in_past")
	}

	booked, err := uc.repo.ListBookedSlots(ctx, date)
	if err != nil {
		return domain.Availability{}, err
	}

	uc.metrics.ObserveAvailability()

	return domain.Evaluate(uc.catalog, date, booked, now), nil
}

// Catalog exposes the slot list in display order.
func (uc *GetAvailability) Catalog() *domain.Catalog {
	return uc.catalog
}
