package booking

import "time"

// ===============================
// Booked slots
// ===============================

// Record is a committed reservation of one slot on one day.
type Record struct {
	Date Date
	Slot string
}

// BookedSlotSet holds the reservations known at evaluation time.
type BookedSlotSet struct {
	records map[Record]struct{}
}

func NewBookedSlotSet(records ...Record) *BookedSlotSet {
	s := &BookedSlotSet{records: make(map[Record]struct{}, len(records))}
	for _, r := range records {
		s.records[r] = struct{}{}
	}
	return s
}

// Add reports false when the pair is already present.
func (s *BookedSlotSet) Add(r Record) bool {
	if s.records == nil {
		s.records = make(map[Record]struct{})
	}
	if _, ok := s.records[r]; ok {
		return false
	}
	s.records[r] = struct{}{}
	return true
}

func (s *BookedSlotSet) Contains(date Date, slot string) bool {
	if s == nil {
		return false
	}
	_, ok := s.records[Record{Date: date, Slot: slot}]
	return ok
}

func (s *BookedSlotSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// ===============================
// Evaluation
// ===============================

type Reason string

const (
	ReasonNone   Reason = "NONE"
	ReasonPast   Reason = "PAST"
	ReasonBooked Reason = "BOOKED"
)

type SlotAvailability struct {
	Slot      TimeSlot
	Available bool
	Reason    Reason
}

// Availability is the per-slot result for one day, in catalog order.
type Availability struct {
	Date    Date
	entries []SlotAvailability
	index   map[string]int
}

func (a Availability) Slots() []SlotAvailability {
	out := make([]SlotAvailability, len(a.entries))
	copy(out, a.entries)
	return out
}

func (a Availability) Lookup(label string) (SlotAvailability, bool) {
	i, ok := a.index[label]
	if !ok {
		return SlotAvailability{}, false
	}
	return a.entries[i], true
}

// Evaluate marks every catalog slot on target as available, past or booked.
//
// now must already be expressed in the lounge's location: its calendar day is
// "today" and its hour and minute are compared with each slot start. A slot
// that has started is past even when it is also booked.
func Evaluate(catalog *Catalog, target Date, booked *BookedSlotSet, now time.Time) Availability {
	slots := catalog.Slots()

	out := Availability{
		Date:    target,
		entries: make([]SlotAvailability, 0, len(slots)),
		index:   make(map[string]int, len(slots)),
	}

	today := target == DateOf(now)
	h, m := now.Hour(), now.Minute()

	for _, slot := range slots {
		reason := ReasonNone

		switch {
		case today && (h > slot.StartHour || (h == slot.StartHour && m >= slot.StartMinute)):
			reason = ReasonPast
		case booked.Contains(target, slot.Label):
			reason = ReasonBooked
		}

		out.index[slot.Label] = len(out.entries)
		out.entries = append(out.entries, SlotAvailability{
			Slot:      slot,
			Available: reason == ReasonNone,
			Reason:    reason,
		})
	}

	return out
}
