package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxLabelLen matches the width of the bookings.slot_label column.
const MaxLabelLen = 32

// ErrInvalidSlotFormat marks a catalog label whose start time cannot be read.
var ErrInvalidSlotFormat = errors.New("invalid slot format")

// DefaultLabels is the lounge's daily slot catalog, in display order.
var DefaultLabels = []string{
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 1:00 PM",
	"1:00 PM - 2:00 PM",
	"2:00 PM - 3:00 PM",
	"3:00 PM - 4:00 PM",
	"4:00 PM - 5:00 PM",
	"5:00 PM - 6:00 PM",
	"6:00 PM - 7:00 PM",
	"7:00 PM - 8:00 PM",
	"8:00 PM - 9:00 PM",
}

// ===============================
// TimeSlot
// ===============================

type TimeSlot struct {
	Label       string `json:"slot"`
	StartHour   int    `json:"start_hour"`
	StartMinute int    `json:"start_minute"`
}

// ParseSlot reads the 24-hour start of a slot label.
//
// The hour is everything before the first colon and the minute is the run of
// digits right after it. The label counts as PM when "PM" appears anywhere in
// it, so "11:00 AM - 12:00 PM" starts at 23:00.
func ParseSlot(label string) (TimeSlot, error) {
	hourPart, rest, ok := strings.Cut(label, ":")
	if !ok {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidSlotFormat, label)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil || hour < 1 || hour > 12 {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidSlotFormat, label)
	}

	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidSlotFormat, label)
	}
	minute, err := strconv.Atoi(rest[:digits])
	if err != nil || minute > 59 {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidSlotFormat, label)
	}

	pm := strings.Contains(label, "PM")
	switch {
	case pm && hour != 12:
		hour += 12
	case !pm && hour == 12:
		hour = 0
	}

	return TimeSlot{Label: label, StartHour: hour, StartMinute: minute}, nil
}

// ===============================
// Catalog
// ===============================

// Catalog is an immutable ordered list of slots. Build it once at startup.
type Catalog struct {
	slots []TimeSlot
	index map[string]int
}

func NewCatalog(labels []string) (*Catalog, error) {
	c := &Catalog{
		slots: make([]TimeSlot, 0, len(labels)),
		index: make(map[string]int, len(labels)),
	}

	for _, label := range labels {
		if utf8.RuneCountInString(label) > MaxLabelLen {
			return nil, fmt.Errorf("%w: label %q is longer than %d characters", ErrInvalidSlotFormat, label, MaxLabelLen)
		}
		if _, dup := c.index[label]; dup {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrInvalidSlotFormat, label)
		}

		slot, err := ParseSlot(label)
		if err != nil {
			return nil, err
		}

		c.index[label] = len(c.slots)
		c.slots = append(c.slots, slot)
	}

	return c, nil
}

// MustCatalog panics on a malformed label; a bad catalog is a programming error.
func MustCatalog(labels []string) *Catalog {
	c, err := NewCatalog(labels)
	if err != nil {
		panic(err)
	}
	return c
}

func DefaultCatalog() *Catalog {
	return MustCatalog(DefaultLabels)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.slots)
}

func (c *Catalog) Slots() []TimeSlot {
	if c == nil {
		return nil
	}
	out := make([]TimeSlot, len(c.slots))
	copy(out, c.slots)
	return out
}

func (c *Catalog) Labels() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.slots))
	for i, s := range c.slots {
		out[i] = s.Label
	}
	return out
}

func (c *Catalog) Lookup(label string) (TimeSlot, bool) {
	if c == nil {
		return TimeSlot{}, false
	}
	i, ok := c.index[label]
	if !ok {
		return TimeSlot{}, false
	}
	return c.slots[i], true
}
