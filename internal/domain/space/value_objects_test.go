//go:build unit

package space_test

import (
	"testing"
	"time"

	"parkspace/internal/domain/space"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	cases := []struct {
		name  string
		lat   float64
		lng   float64
		errIs error
	}{
		{name: "valid", lat: 37.5665, lng: 126.978},
		{name: "extremes", lat: -90, lng: 180},
		{name: "latitude too high", lat: 90.1, lng: 0, errIs: space.ErrLatitudeOutOfRange},
		{name: "latitude too low", lat: -90.1, lng: 0, errIs: space.ErrLatitudeOutOfRange},
		{name: "longitude too high", lat: 0, lng: 180.1, errIs: space.ErrLongitudeOutOfRange},
		{name: "longitude too low", lat: 0, lng: -180.1, errIs: space.ErrLongitudeOutOfRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			coords, err := space.NewCoordinates(c.lat, c.lng)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.lat, coords.Lat())
			assert.Equal(t, c.lng, coords.Lng())
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2026-06-01 is a Monday; the convention is 0 = Monday .. 6 = Sunday.
	for i := 0; i < 7; i++ {
		d := time.Date(2026, 6, 1+i, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, space.Weekday(i), space.WeekdayOf(d))
	}
}

func TestNewWeekday(t *testing.T) {
	for d := 0; d <= 6; d++ {
		_, err := space.NewWeekday(d)
		require.NoError(t, err)
	}
	_, err := space.NewWeekday(7)
	require.ErrorIs(t, err, space.ErrInvalidWeekday)
	_, err = space.NewWeekday(-1)
	require.ErrorIs(t, err, space.ErrInvalidWeekday)
}

func TestTimeOfDay(t *testing.T) {
	t.Run("parse full layout", func(t *testing.T) {
		tod, err := space.ParseTimeOfDay("09:30:15")
		require.NoError(t, err)
		assert.Equal(t, 9*3600+30*60+15, tod.Seconds())
		assert.Equal(t, "09:30:15", tod.String())
	})

	t.Run("parse short layout", func(t *testing.T) {
		tod, err := space.ParseTimeOfDay("18:00")
		require.NoError(t, err)
		assert.Equal(t, 18*3600, tod.Seconds())
	})

	t.Run("reject garbage", func(t *testing.T) {
		for _, s := range []string{"", "24:00", "9am", "25:61:00"} {
			_, err := space.ParseTimeOfDay(s)
			require.ErrorIs(t, err, space.ErrInvalidTimeOfDay, "input %q", s)
		}
	})

	t.Run("ordering", func(t *testing.T) {
		early, err := space.NewTimeOfDay(9, 0, 0)
		require.NoError(t, err)
		late, err := space.NewTimeOfDay(23, 59, 59)
		require.NoError(t, err)

		assert.True(t, early.Before(late))
		assert.True(t, late.After(early))
		assert.False(t, early.Before(early))
	})

	t.Run("midnight extraction", func(t *testing.T) {
		midnight := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, space.TimeOfDayFrom(midnight).Seconds())
	})
}
