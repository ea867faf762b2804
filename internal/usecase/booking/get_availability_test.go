package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/gamers-hub/internal/domain/booking"
	"github.com/BruksfildServices01/gamers-hub/internal/httperr"
	"github.com/BruksfildServices01/gamers-hub/internal/models"
	"github.com/BruksfildServices01/gamers-hub/internal/timezone"
)

func TestGetAvailability(t *testing.T) {
	repo := &fakeRepo{bookings: []models.Booking{
		{Date: "2025-06-01", Slot: "6:00 PM - 7:00 PM"},
		{Date: "2025-06-02", Slot: "10:00 AM - 11:00 AM"},
	}}
	uc := NewGetAvailability(repo, domain.DefaultCatalog(), timezone.FixedClock{T: halfPastTwo}, nil)

	t.Run("today", func(t *testing.T) {
		date, _ := domain.ParseDate("2025-06-01")
		got, err := uc.Execute(context.Background(), date)
		require.NoError(t, err)

		require.Len(t, got.Slots(), 11)
		s, _ := got.Lookup("1:00 PM - 2:00 PM")
		assert.Equal(t, domain.ReasonPast, s.Reason)
		s, _ = got.Lookup("6:00 PM - 7:00 PM")
		assert.Equal(t, domain.ReasonBooked, s.Reason)
		s, _ = got.Lookup("7:00 PM - 8:00 PM")
		assert.True(t, s.Available)
	})

	t.Run("tomorrow", func(t *testing.T) {
		date, _ := domain.ParseDate("2025-06-02")
		got, err := uc.Execute(context.Background(), date)
		require.NoError(t, err)

		s, _ := got.Lookup("10:00 AM - 11:00 AM")
		assert.Equal(t, domain.ReasonBooked, s.Reason)
		s, _ = got.Lookup("1:00 PM - 2:00 PM")
		assert.True(t, s.Available)
	})

	t.Run("yesterday", func(t *testing.T) {
		date, _ := domain.ParseDate("2025-05-31")
		_, err := uc.Execute(context.Background(), date)
		assert.True(t, httperr.IsBusiness(err, "date_in_past"))
	})

	t.Run("repository error", func(t *testing.T) {
		failing := NewGetAvailability(&fakeRepo{listErr: errors.New("boom")}, domain.DefaultCatalog(), timezone.FixedClock{T: halfPastTwo}, nil)
		date, _ := domain.ParseDate("2025-06-02")
		_, err := failing.Execute(context.Background(), date)
		assert.Error(t, err)
	})
}

func TestVerifyReceipt(t *testing.T) {
	f := newSubmitFixture(t, nil)
	res, err := f.uc.Execute(context.Background(), request("2025-06-02", "3:00 PM - 4:00 PM"))
	require.NoError(t, err)

	uc := NewVerifyReceipt(f.signer)

	claims, err := uc.Execute(res.Receipt)
	require.NoError(t, err)
	assert.Equal(t, "3:00 PM - 4:00 PM", claims.Slot)

	_, err = uc.Execute("  ")
	assert.True(t, httperr.IsBusiness(err, "invalid_receipt"))

	_, err = uc.Execute(res.Receipt + "x")
	assert.True(t, httperr.IsBusiness(err, "invalid_receipt"))
}
