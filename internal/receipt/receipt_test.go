package receipt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gamers-hub/internal/models"
	"github.com/BruksfildServices01/gamers-hub/internal/timezone"
)

var issuedAt = time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

func booking() *models.Booking {
	return &models.Booking{
		Reference: "5b0c4f5e-7a43-4d0e-9e3e-0f6d0e1a2b3c",
		Date:      "2025-06-01",
		Slot:      "6:00 PM - 7:00 PM",
		Name:      "Arjun",
	}
}

func TestSignAndVerify(t *testing.T) {
	s := NewSigner("secret", time.Hour, timezone.FixedClock{T: issuedAt})

	token, err := s.Sign(booking())
	require.NoError(t, err)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", claims.Date)
	assert.Equal(t, "6:00 PM - 7:00 PM", claims.Slot)
	assert.Equal(t, booking().Reference, claims.Subject)
}

func TestVerify_Rejects(t *testing.T) {
	s := NewSigner("secret", time.Hour, timezone.FixedClock{T: issuedAt})

	t.Run("expired", func(t *testing.T) {
		old := NewSigner("secret", time.Hour, timezone.FixedClock{T: issuedAt.Add(-2 * time.Hour)})
		token, err := old.Sign(booking())
		require.NoError(t, err)

		_, err = s.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidReceipt)
	})

	t.Run("other secret", func(t *testing.T) {
		token, err := NewSigner("another", time.Hour, timezone.FixedClock{T: issuedAt}).Sign(booking())
		require.NoError(t, err)

		_, err = s.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidReceipt)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidReceipt)
	})
}
