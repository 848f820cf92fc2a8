package space

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrLatitudeOutOfRange  = errors.New("latitude must be between -90 and 90")
	ErrLongitudeOutOfRange = errors.New("longitude must be between -180 and 180")
	ErrInvalidTimeOfDay    = errors.New("invalid time of day")
	ErrInvalidWeekday      = errors.New("weekday must be between 0 (Monday) and 6 (Sunday)")
)

type Coordinates struct {
	lat float64
	lng float64
}

func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if lat < -90 || lat > 90 {
		return Coordinates{}, ErrLatitudeOutOfRange
	}
	if lng < -180 || lng > 180 {
		return Coordinates{}, ErrLongitudeOutOfRange
	}
	return Coordinates{lat: lat, lng: lng}, nil
}

func (c Coordinates) Lat() float64 { return c.lat }
func (c Coordinates) Lng() float64 { return c.lng }

// Weekday follows the rule convention: 0 = Monday .. 6 = Sunday.
type Weekday int

func NewWeekday(d int) (Weekday, error) {
	if d < 0 || d > 6 {
		return 0, ErrInvalidWeekday
	}
	return Weekday(d), nil
}

// WeekdayOf converts a wall-clock instant to the Monday-based weekday.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

func (w Weekday) Int() int { return int(w) }

// TimeOfDay is a naive wall-clock time within a day, stored as seconds since
// midnight. Rules cannot express 24:00, so 23:59:59 is the latest possible
// end and the only approximation of all-day coverage.
type TimeOfDay struct {
	seconds int
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{seconds: hour*3600 + minute*60 + second}, nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
		}
	}
	return TimeOfDay{}, ErrInvalidTimeOfDay
}

// TimeOfDayFrom extracts the wall-clock time of an instant in its location.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{seconds: t.Hour()*3600 + t.Minute()*60 + t.Second()}
}

func (t TimeOfDay) Seconds() int { return t.seconds }

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.seconds < other.seconds }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t.seconds > other.seconds }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.seconds/3600, (t.seconds/60)%60, t.seconds%60)
}
