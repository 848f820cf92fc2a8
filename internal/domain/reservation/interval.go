package reservation

import (
	"errors"
	"time"

	"parkspace/internal/domain/space"
	"parkspace/internal/pkg/clock"
)

var (
	ErrMissingDate      = errors.New("day pass requires a date")
	ErrPastDate         = errors.New("cannot reserve a past date")
	ErrMissingBounds    = errors.New("hourly reservation requires start and end times")
	ErrOrderingViolation = errors.New("end time must be after start time")
	ErrPastTime         = errors.New("cannot reserve a past time")
	ErrGridMisalignment = errors.New("reservations must align to 30-minute boundaries")
)

// GridMinutes is the booking grid: hourly endpoints must land on a multiple
// of this many minutes with no smaller components.
const GridMinutes = 30

// IntervalRequest is the raw candidate interval as supplied by the caller.
// Hourly requests carry StartAt/EndAt; day passes carry Date (any instant on
// the requested calendar day in the validator's zone).
type IntervalRequest struct {
	StartAt *time.Time
	EndAt   *time.Time
	Date    *time.Time
}

// IntervalValidator normalizes a candidate interval into a TimeSlot or
// rejects it. All comparisons are on absolute instants; loc is only used to
// derive calendar days for day passes.
type IntervalValidator struct {
	clock clock.Clock
	loc   *time.Location
}

func NewIntervalValidator(clk clock.Clock, loc *time.Location) *IntervalValidator {
	return &IntervalValidator{clock: clk, loc: loc}
}

func (v *IntervalValidator) Normalize(productType space.ProductType, req IntervalRequest) (TimeSlot, error) {
	switch productType {
	case space.ProductDayPass:
		return v.normalizeDayPass(req)
	case space.ProductHourly:
		return v.normalizeHourly(req)
	default:
		return TimeSlot{}, space.ErrInvalidProduct
	}
}

func (v *IntervalValidator) normalizeDayPass(req IntervalRequest) (TimeSlot, error) {
	if req.Date == nil {
		return TimeSlot{}, ErrMissingDate
	}

	now := v.clock.Now().In(v.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, v.loc)

	d := req.Date.In(v.loc)
	dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, v.loc)
	if dayStart.Before(today) {
		return TimeSlot{}, ErrPastDate
	}

	// AddDate rather than Add(24h) so DST transition days stay full days.
	return NewTimeSlot(dayStart, dayStart.AddDate(0, 0, 1))
}

func (v *IntervalValidator) normalizeHourly(req IntervalRequest) (TimeSlot, error) {
	if req.StartAt == nil || req.EndAt == nil {
		return TimeSlot{}, ErrMissingBounds
	}
	start, end := *req.StartAt, *req.EndAt

	if !start.Before(end) {
		return TimeSlot{}, ErrOrderingViolation
	}
	if start.Before(v.clock.Now()) {
		return TimeSlot{}, ErrPastTime
	}
	for _, t := range []time.Time{start, end} {
		if t.Minute()%GridMinutes != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
			return TimeSlot{}, ErrGridMisalignment
		}
	}

	return NewTimeSlot(start, end)
}
