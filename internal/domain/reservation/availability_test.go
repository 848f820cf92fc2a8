//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"parkspace/internal/domain/reservation"
	"parkspace/internal/domain/space"
	"parkspace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityMatcherCovers(t *testing.T) {
	m := reservation.NewAvailabilityMatcher(time.UTC)
	spaceID := uuid.New()

	// Monday 09:00-18:00.
	businessHours := []space.AvailabilityRule{
		builder.MustRule(spaceID, 0, "09:00:00", "18:00:00"),
	}

	monday := func(h, min int) time.Time {
		return time.Date(2026, 6, 1, h, min, 0, 0, time.UTC)
	}
	slot := func(t *testing.T, start, end time.Time) reservation.TimeSlot {
		t.Helper()
		s, err := reservation.NewTimeSlot(start, end)
		require.NoError(t, err)
		return s
	}

	t.Run("fully inside rule", func(t *testing.T) {
		require.NoError(t, m.Covers(businessHours, slot(t, monday(10, 0), monday(12, 0))))
	})

	t.Run("exact rule bounds", func(t *testing.T) {
		require.NoError(t, m.Covers(businessHours, slot(t, monday(9, 0), monday(18, 0))))
	})

	t.Run("starts before rule opens", func(t *testing.T) {
		err := m.Covers(businessHours, slot(t, monday(8, 30), monday(12, 0)))
		require.ErrorIs(t, err, reservation.ErrNotWithinAvailability)
	})

	t.Run("ends after rule closes", func(t *testing.T) {
		err := m.Covers(businessHours, slot(t, monday(17, 0), monday(19, 0)))
		require.ErrorIs(t, err, reservation.ErrNotWithinAvailability)
	})

	t.Run("wrong weekday", func(t *testing.T) {
		tuesday := monday(10, 0).AddDate(0, 0, 1)
		err := m.Covers(businessHours, slot(t, tuesday, tuesday.Add(2*time.Hour)))
		require.ErrorIs(t, err, reservation.ErrNotWithinAvailability)
	})

	t.Run("any one rule may cover the slot", func(t *testing.T) {
		rules := []space.AvailabilityRule{
			builder.MustRule(spaceID, 0, "06:00:00", "08:00:00"),
			builder.MustRule(spaceID, 0, "09:00:00", "18:00:00"),
		}
		require.NoError(t, m.Covers(rules, slot(t, monday(10, 0), monday(12, 0))))
	})

	t.Run("span past next midnight fails closed", func(t *testing.T) {
		allWeek := []space.AvailabilityRule{
			builder.MustRule(spaceID, 0, "00:00:00", "23:59:59"),
			builder.MustRule(spaceID, 1, "00:00:00", "23:59:59"),
		}
		err := m.Covers(allWeek, slot(t, monday(22, 0), monday(22, 0).Add(4*time.Hour)))
		require.ErrorIs(t, err, reservation.ErrNotWithinAvailability)
	})

	t.Run("day pass needs a rule starting at midnight", func(t *testing.T) {
		dayStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		daySlot := slot(t, dayStart, dayStart.AddDate(0, 0, 1))

		err := m.Covers(businessHours, daySlot)
		require.ErrorIs(t, err, reservation.ErrNotWithinAvailability)

		nearAllDay := []space.AvailabilityRule{
			builder.MustRule(spaceID, 0, "00:00:00", "23:59:59"),
		}
		require.NoError(t, m.Covers(nearAllDay, daySlot))
	})
}

func TestAvailabilityMatcherWeekday(t *testing.T) {
	m := reservation.NewAvailabilityMatcher(time.UTC)

	// 2026-06-01 is a Monday.
	for i := 0; i < 7; i++ {
		start := time.Date(2026, 6, 1+i, 10, 0, 0, 0, time.UTC)
		s, err := reservation.NewTimeSlot(start, start.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, space.Weekday(i), m.Weekday(s))
	}
}

func TestAvailabilityMatcherLocalZone(t *testing.T) {
	seoul := time.FixedZone("KST", 9*3600)
	m := reservation.NewAvailabilityMatcher(seoul)
	spaceID := uuid.New()

	// 01:00 UTC Monday is 10:00 Monday in KST.
	start := time.Date(2026, 6, 1, 1, 0, 0, 0, time.UTC)
	s, err := reservation.NewTimeSlot(start, start.Add(2*time.Hour))
	require.NoError(t, err)

	rules := []space.AvailabilityRule{
		builder.MustRule(spaceID, 0, "09:00:00", "18:00:00"),
	}
	require.NoError(t, m.Covers(rules, s))
}
