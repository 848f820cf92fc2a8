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

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, res)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, b.Space.ID(), res.SpaceID())
		assert.Equal(t, b.DriverID, res.DriverID())
		assert.Equal(t, b.Product.ID, res.ProductID())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, int64(2000), res.PriceTotal())
		assert.Equal(t, "12GA3456", res.Vehicle().CarNumber)
	})

	t.Run("auto approval space confirms immediately", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		sp, err := builder.NewSpaceBuilder().With(func(s *builder.SpaceBuilder) {
			s.AutoApproval = true
		}).BuildDomain()
		require.NoError(t, err)
		b.Space = sp

		res, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("inactive space rejected", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.Space.Deactivate()

		_, err := b.BuildDomain()
		require.ErrorIs(t, err, space.ErrSpaceNotActive)
	})

	t.Run("inactive product rejected", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.Product.IsActive = false

		_, err := b.BuildDomain()
		require.ErrorIs(t, err, space.ErrProductNotForSale)
	})

	t.Run("slot outside availability rejected", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.WithHourly(builder.BookingBase.Add(11*time.Hour), builder.BookingBase.Add(13*time.Hour)) // 19:00-21:00

		_, err := b.BuildDomain()
		require.ErrorIs(t, err, reservation.ErrNotWithinAvailability)
	})

	t.Run("factory trusts the normalized slot it is given", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		start := builder.BookingBase.Add(2*time.Hour + 15*time.Minute)
		slot, err := reservation.NewTimeSlot(start, start.Add(time.Hour))
		require.NoError(t, err)

		// Normalization happens once, at the caller. The factory carries the
		// slot through verbatim, off-grid endpoints included.
		res, err := reservation.NewReservation(b.Services(), b.Space, b.Rules, b.DriverID, b.Product, slot, b.Vehicle)
		require.NoError(t, err)
		assert.Equal(t, slot, res.Slot())
		assert.Equal(t, int64(1000), res.PriceTotal())
	})

	t.Run("day pass priced flat", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.WithDayPass(builder.BookingBase.AddDate(0, 0, 7)) // next Monday
		b.Rules = []space.AvailabilityRule{
			builder.MustRule(b.Space.ID(), 0, "00:00:00", "23:59:59"),
		}

		res, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(8000), res.PriceTotal())
		assert.Equal(t, 24*time.Hour, res.Slot().Duration())
	})
}

func TestReservationTransitions(t *testing.T) {
	build := func(t *testing.T) *reservation.Reservation {
		t.Helper()
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		return res
	}

	t.Run("confirm pending", func(t *testing.T) {
		res := build(t)
		require.NoError(t, res.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("confirm is not idempotent", func(t *testing.T) {
		res := build(t)
		require.NoError(t, res.Confirm())
		require.ErrorIs(t, res.Confirm(), reservation.ErrInvalidStateTransition)
	})

	t.Run("cancel pending", func(t *testing.T) {
		res := build(t)
		require.NoError(t, res.Cancel())
		assert.Equal(t, reservation.StatusCanceled, res.Status())
	})

	t.Run("cancel confirmed", func(t *testing.T) {
		res := build(t)
		require.NoError(t, res.Confirm())
		require.NoError(t, res.Cancel())
		assert.Equal(t, reservation.StatusCanceled, res.Status())
	})

	t.Run("canceled is terminal", func(t *testing.T) {
		res := build(t)
		require.NoError(t, res.Cancel())
		require.ErrorIs(t, res.Cancel(), reservation.ErrInvalidStateTransition)
		require.ErrorIs(t, res.Confirm(), reservation.ErrInvalidStateTransition)
		require.ErrorIs(t, res.Reject(), reservation.ErrInvalidStateTransition)
	})

	t.Run("reject only from pending", func(t *testing.T) {
		res := build(t)
		require.NoError(t, res.Reject())
		assert.Equal(t, reservation.StatusCanceled, res.Status())

		confirmed := build(t)
		require.NoError(t, confirmed.Confirm())
		require.ErrorIs(t, confirmed.Reject(), reservation.ErrInvalidStateTransition)
	})
}

func TestCancelableByDriverAt(t *testing.T) {
	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)

	window := 2 * time.Hour
	start := res.Slot().Start()

	t.Run("well before the window", func(t *testing.T) {
		require.NoError(t, res.CancelableByDriverAt(start.Add(-(2*time.Hour + time.Minute)), window))
	})

	t.Run("exactly at the window boundary", func(t *testing.T) {
		require.NoError(t, res.CancelableByDriverAt(start.Add(-2*time.Hour), window))
	})

	t.Run("inside the window", func(t *testing.T) {
		err := res.CancelableByDriverAt(start.Add(-(time.Hour + 59*time.Minute)), window)
		require.ErrorIs(t, err, reservation.ErrCancellationWindowClosed)
	})

	t.Run("after the slot started", func(t *testing.T) {
		err := res.CancelableByDriverAt(start.Add(time.Minute), window)
		require.ErrorIs(t, err, reservation.ErrCancellationWindowClosed)
	})
}
