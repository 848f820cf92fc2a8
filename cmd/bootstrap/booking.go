package bootstrap

import (
	"time"

	"parkspace/internal/domain/reservation"
	"parkspace/internal/pkg/clock"
	"parkspace/internal/pkg/config"

	"go.uber.org/fx"
)

var BookingModule = fx.Module("booking",
	fx.Provide(
		NewBookingLocation,
		NewReservationServices,
	),
)

// NewBookingLocation resolves the calendar zone availability rules and day
// passes are interpreted in.
func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Booking.TimeZone)
}

func NewReservationServices(clk clock.Clock, loc *time.Location) *reservation.Services {
	return &reservation.Services{
		Validator:  reservation.NewIntervalValidator(clk, loc),
		Calculator: reservation.NewLinearPriceCalculator(),
		Matcher:    reservation.NewAvailabilityMatcher(loc),
	}
}
