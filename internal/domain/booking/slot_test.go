package booking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		label      string
		wantHour   int
		wantMinute int
	}{
		{"10:00 AM - 11:00 AM", 10, 0},
		{"12:00 PM - 1:00 PM", 12, 0},
		{"1:00 PM - 2:00 PM", 13, 0},
		{"8:00 PM - 9:00 PM", 20, 0},
		{"12:00 AM - 1:00 AM", 0, 0},
		{"9:30 AM - 10:30 AM", 9, 30},
		// "PM" anywhere in the label flips the start to the afternoon.
		{"11:00 AM - 12:00 PM", 23, 0},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			slot, err := ParseSlot(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.label, slot.Label)
			assert.Equal(t, tt.wantHour, slot.StartHour)
			assert.Equal(t, tt.wantMinute, slot.StartMinute)
		})
	}
}

func TestParseSlot_Invalid(t *testing.T) {
	labels := []string{
		"",
		"noon",
		"AM:00 - 11:00",
		"13:00 PM - 2:00 PM",
		"0:00 AM - 1:00 AM",
		"10: AM - 11:00 AM",
		"10:75 AM - 11:00 AM",
	}

	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			_, err := ParseSlot(label)
			assert.True(t, errors.Is(err, ErrInvalidSlotFormat), "got %v", err)
		})
	}
}

func TestNewCatalog(t *testing.T) {
	t.Run("default catalog keeps order", func(t *testing.T) {
		c := DefaultCatalog()
		assert.Equal(t, 11, c.Len())
		assert.Equal(t, DefaultLabels, c.Labels())

		slot, ok := c.Lookup("3:00 PM - 4:00 PM")
		require.True(t, ok)
		assert.Equal(t, 15, slot.StartHour)

		_, ok = c.Lookup("9:00 PM - 10:00 PM")
		assert.False(t, ok)
	})

	t.Run("malformed label", func(t *testing.T) {
		_, err := NewCatalog([]string{"10:00 AM - 11:00 AM", "later"})
		assert.ErrorIs(t, err, ErrInvalidSlotFormat)
	})

	t.Run("duplicate label", func(t *testing.T) {
		_, err := NewCatalog([]string{"10:00 AM - 11:00 AM", "10:00 AM - 11:00 AM"})
		assert.ErrorIs(t, err, ErrInvalidSlotFormat)
	})

	t.Run("label wider than the column", func(t *testing.T) {
		_, err := NewCatalog([]string{"6:00 PM - 7:00 PM (weekend tournament)"})
		assert.ErrorIs(t, err, ErrInvalidSlotFormat)

		_, err = NewCatalog([]string{"10:00 AM - 11:00 AM (VR)"})
		assert.NoError(t, err)
	})

	t.Run("must catalog panics", func(t *testing.T) {
		assert.Panics(t, func() { MustCatalog([]string{"bogus"}) })
	})

	t.Run("slots returns a copy", func(t *testing.T) {
		c := DefaultCatalog()
		s := c.Slots()
		s[0].Label = "changed"
		assert.Equal(t, "10:00 AM - 11:00 AM", c.Slots()[0].Label)
	})
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", d.String())

	next, err := ParseDate("2025-06-02")
	require.NoError(t, err)
	assert.True(t, d.Before(next))
	assert.False(t, next.Before(d))
	assert.False(t, d.Before(d))

	_, err = ParseDate("01/06/2025")
	assert.Error(t, err)
}
