package repository

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/gamers-hub/internal/domain/booking"
	"github.com/BruksfildServices01/gamers-hub/internal/httperr"
	"github.com/BruksfildServices01/gamers-hub/internal/models"
)

const uniqueViolation = "23505"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Booked slots
// --------------------------------------------------

func (r *BookingGormRepository) ListBookedSlots(
	ctx context.Context,
	date domain.Date,
) (*domain.BookedSlotSet, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Select("booking_date", "slot_label").
		Where("booking_date = ?", date.String()).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "list bookings for %s", date)
	}

	set := domain.NewBookedSlotSet()
	for _, row := range rows {
		set.Add(domain.Record{Date: date, Slot: row.Slot})
	}
	return set, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Create(b).Error
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}
	return errors.Wrap(err, "create booking")
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
