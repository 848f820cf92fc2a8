//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"parkspace/internal/domain/reservation"
	"parkspace/internal/domain/space"
	"parkspace/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is a Monday, 08:00 UTC.
var now = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

func newValidator() *reservation.IntervalValidator {
	return reservation.NewIntervalValidator(clock.NewMockClock(now), time.UTC)
}

func hourlyReq(start, end time.Time) reservation.IntervalRequest {
	return reservation.IntervalRequest{StartAt: &start, EndAt: &end}
}

func TestNormalizeHourly(t *testing.T) {
	v := newValidator()

	t.Run("valid on-grid interval", func(t *testing.T) {
		start := now.Add(2 * time.Hour)
		end := now.Add(4 * time.Hour)

		slot, err := v.Normalize(space.ProductHourly, hourlyReq(start, end))
		require.NoError(t, err)
		assert.True(t, slot.Start().Equal(start))
		assert.True(t, slot.End().Equal(end))
		assert.Equal(t, 2*time.Hour, slot.Duration())
	})

	t.Run("half-hour boundaries are on grid", func(t *testing.T) {
		start := now.Add(2*time.Hour + 30*time.Minute)
		end := now.Add(4 * time.Hour)

		slot, err := v.Normalize(space.ProductHourly, hourlyReq(start, end))
		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, slot.Duration())
	})

	cases := []struct {
		name  string
		req   reservation.IntervalRequest
		errIs error
	}{
		{
			name:  "missing both bounds",
			req:   reservation.IntervalRequest{},
			errIs: reservation.ErrMissingBounds,
		},
		{
			name:  "missing end",
			req:   reservation.IntervalRequest{StartAt: ptr(now.Add(2 * time.Hour))},
			errIs: reservation.ErrMissingBounds,
		},
		{
			name:  "start equals end",
			req:   hourlyReq(now.Add(2*time.Hour), now.Add(2*time.Hour)),
			errIs: reservation.ErrOrderingViolation,
		},
		{
			name:  "start after end",
			req:   hourlyReq(now.Add(4*time.Hour), now.Add(2*time.Hour)),
			errIs: reservation.ErrOrderingViolation,
		},
		{
			name:  "start in the past",
			req:   hourlyReq(now.Add(-time.Hour), now.Add(time.Hour)),
			errIs: reservation.ErrPastTime,
		},
		{
			name:  "start off grid by ten minutes",
			req:   hourlyReq(now.Add(2*time.Hour+10*time.Minute), now.Add(4*time.Hour)),
			errIs: reservation.ErrGridMisalignment,
		},
		{
			name:  "end off grid by ten minutes",
			req:   hourlyReq(now.Add(2*time.Hour), now.Add(4*time.Hour+10*time.Minute)),
			errIs: reservation.ErrGridMisalignment,
		},
		{
			name:  "nonzero seconds",
			req:   hourlyReq(now.Add(2*time.Hour+time.Second), now.Add(4*time.Hour)),
			errIs: reservation.ErrGridMisalignment,
		},
		{
			name:  "nonzero nanoseconds",
			req:   hourlyReq(now.Add(2*time.Hour), now.Add(4*time.Hour).Add(time.Nanosecond)),
			errIs: reservation.ErrGridMisalignment,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := v.Normalize(space.ProductHourly, c.req)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestNormalizeDayPass(t *testing.T) {
	v := newValidator()

	t.Run("today expands to a full local day", func(t *testing.T) {
		date := now
		slot, err := v.Normalize(space.ProductDayPass, reservation.IntervalRequest{Date: &date})
		require.NoError(t, err)

		wantStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		assert.True(t, slot.Start().Equal(wantStart))
		assert.True(t, slot.End().Equal(wantStart.AddDate(0, 0, 1)))
	})

	t.Run("future date allowed", func(t *testing.T) {
		date := now.AddDate(0, 0, 3)
		_, err := v.Normalize(space.ProductDayPass, reservation.IntervalRequest{Date: &date})
		require.NoError(t, err)
	})

	t.Run("missing date", func(t *testing.T) {
		_, err := v.Normalize(space.ProductDayPass, reservation.IntervalRequest{})
		require.ErrorIs(t, err, reservation.ErrMissingDate)
	})

	t.Run("yesterday rejected", func(t *testing.T) {
		date := now.AddDate(0, 0, -1)
		_, err := v.Normalize(space.ProductDayPass, reservation.IntervalRequest{Date: &date})
		require.ErrorIs(t, err, reservation.ErrPastDate)
	})

	t.Run("any instant on the requested day works", func(t *testing.T) {
		// 23:30 on a future day still resolves to that day's midnight.
		date := time.Date(2026, 6, 5, 23, 30, 0, 0, time.UTC)
		slot, err := v.Normalize(space.ProductDayPass, reservation.IntervalRequest{Date: &date})
		require.NoError(t, err)
		assert.True(t, slot.Start().Equal(time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)))
	})
}

func TestNormalizeUnknownProduct(t *testing.T) {
	v := newValidator()
	_, err := v.Normalize(space.ProductType("WEEKLY"), reservation.IntervalRequest{})
	require.ErrorIs(t, err, space.ErrInvalidProduct)
}

func ptr(t time.Time) *time.Time { return &t }
