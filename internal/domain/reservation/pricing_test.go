//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"parkspace/internal/domain/reservation"
	"parkspace/internal/domain/space"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start time.Time, d time.Duration) reservation.TimeSlot {
	t.Helper()
	slot, err := reservation.NewTimeSlot(start, start.Add(d))
	require.NoError(t, err)
	return slot
}

func TestLinearPriceCalculator(t *testing.T) {
	calc := reservation.NewLinearPriceCalculator()
	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	hourly := func(price int64) space.Product {
		return space.Product{Type: space.ProductHourly, Price: price, IsActive: true}
	}

	t.Run("whole hours", func(t *testing.T) {
		assert.Equal(t, int64(2000), calc.Calculate(hourly(1000), mustSlot(t, base, 2*time.Hour)))
	})

	t.Run("fractional hours", func(t *testing.T) {
		assert.Equal(t, int64(1500), calc.Calculate(hourly(1000), mustSlot(t, base, 90*time.Minute)))
	})

	t.Run("truncates toward zero", func(t *testing.T) {
		// 0.5h * 1001 = 500.5, truncated not rounded.
		assert.Equal(t, int64(500), calc.Calculate(hourly(1001), mustSlot(t, base, 30*time.Minute)))
	})

	t.Run("day pass is flat regardless of slot length", func(t *testing.T) {
		dayPass := space.Product{Type: space.ProductDayPass, Price: 8000, IsActive: true}
		assert.Equal(t, int64(8000), calc.Calculate(dayPass, mustSlot(t, base, 24*time.Hour)))
		assert.Equal(t, int64(8000), calc.Calculate(dayPass, mustSlot(t, base, time.Hour)))
	})

	t.Run("zero price", func(t *testing.T) {
		assert.Equal(t, int64(0), calc.Calculate(hourly(0), mustSlot(t, base, 3*time.Hour)))
	})
}
