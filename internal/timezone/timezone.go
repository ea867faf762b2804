package timezone

import "time"

const DefaultTimezone = "Asia/Kolkata"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		// no tzdata on the host
		return time.FixedZone("IST", 5*60*60+30*60)
	}
	return loc
}

// ===============================
// Clock
// ===============================

type Clock interface {
	Now() time.Time
}

// LoungeClock reads wall time in the lounge's location.
type LoungeClock struct {
	loc *time.Location
}

func NewLoungeClock(tz string) LoungeClock {
	return LoungeClock{loc: Location(tz)}
}

func (c LoungeClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}
