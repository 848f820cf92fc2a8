package reservation

import (
	"errors"
	"time"

	"parkspace/internal/domain/space"
)

var ErrNotWithinAvailability = errors.New("reservation time is not within space availability")

// AvailabilityMatcher decides whether a slot is fully covered by one of a
// space's published rules. Weekday and wall-clock bounds are derived from the
// local start instant only; spans past the following local midnight fail
// closed rather than being evaluated against multiple weekdays.
type AvailabilityMatcher struct {
	loc *time.Location
}

func NewAvailabilityMatcher(loc *time.Location) *AvailabilityMatcher {
	return &AvailabilityMatcher{loc: loc}
}

// Weekday returns the Monday-based weekday the slot's rules are looked up
// under, in the matcher's calendar zone.
func (m *AvailabilityMatcher) Weekday(slot TimeSlot) space.Weekday {
	return space.WeekdayOf(slot.Start().In(m.loc))
}

// Covers succeeds iff some rule satisfies
// rule.start <= localStart AND rule.end >= localEnd.
// An end falling exactly on the next local midnight compares as 00:00, so a
// day pass only matches rules starting at 00:00; no rule can express 24:00,
// which keeps 23:59:59 the closest approximation of all-day coverage.
func (m *AvailabilityMatcher) Covers(rules []space.AvailabilityRule, slot TimeSlot) error {
	startLocal := slot.Start().In(m.loc)
	endLocal := slot.End().In(m.loc)

	nextMidnight := time.Date(startLocal.Year(), startLocal.Month(), startLocal.Day(), 0, 0, 0, 0, m.loc).AddDate(0, 0, 1)
	if endLocal.After(nextMidnight) {
		return ErrNotWithinAvailability
	}

	weekday := space.WeekdayOf(startLocal)
	reqStart := space.TimeOfDayFrom(startLocal)
	reqEnd := space.TimeOfDayFrom(endLocal)

	for _, rule := range rules {
		if rule.DayOfWeek != weekday {
			continue
		}
		if !rule.StartTime.After(reqStart) && !rule.EndTime.Before(reqEnd) {
			return nil
		}
	}
	return ErrNotWithinAvailability
}
