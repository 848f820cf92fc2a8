package reservation

import (
	"errors"
	"fmt"
	"time"
)

var ErrSlotOrdering = errors.New("slot start must be before its end")

// TimeSlot is a half-open interval [start, end). The exclusive end makes
// adjacent slots non-overlapping: [10,12) and [12,14) can coexist.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrSlotOrdering
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps applies the half-open overlap test used by both the advisory
// creation-time query and the storage exclusion constraint:
// a.start < b.end AND a.end > b.start.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

// ToTstzrange renders the slot as the Postgres range literal used for the
// period column.
func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339Nano), ts.end.Format(time.RFC3339Nano))
}
