//go:build unit || e2e

package builder

import (
	"time"

	"parkspace/internal/domain/reservation"
	"parkspace/internal/domain/space"
	"parkspace/internal/pkg/clock"

	"github.com/google/uuid"
)

// BookingBase is the instant builders treat as "now": a Monday morning, so
// the default weekday-0 rule applies to same-day requests.
var BookingBase = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	Now      time.Time
	Loc      *time.Location
	Space    *space.Space
	Rules    []space.AvailabilityRule
	Product  space.Product
	DriverID uuid.UUID
	Request  reservation.IntervalRequest
	Vehicle  reservation.VehicleSnapshot
}

func NewReservationBuilder() *ReservationBuilder {
	sp, err := NewSpaceBuilder().BuildDomain()
	if err != nil {
		panic(err)
	}
	product, err := space.NewProduct(sp.ID(), space.ProductHourly, "Hourly", 1000)
	if err != nil {
		panic(err)
	}

	start := BookingBase.Add(2 * time.Hour) // 10:00
	end := BookingBase.Add(4 * time.Hour)   // 12:00

	return &ReservationBuilder{
		Now:      BookingBase,
		Loc:      time.UTC,
		Space:    sp,
		Rules:    []space.AvailabilityRule{MustRule(sp.ID(), 0, "09:00:00", "18:00:00")},
		Product:  product,
		DriverID: uuid.New(),
		Request:  reservation.IntervalRequest{StartAt: &start, EndAt: &end},
		Vehicle:  reservation.VehicleSnapshot{CarNumber: "12GA3456"},
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithHourly(start, end time.Time) *ReservationBuilder {
	b.Request = reservation.IntervalRequest{StartAt: &start, EndAt: &end}
	return b
}

func (b *ReservationBuilder) WithDayPass(date time.Time) *ReservationBuilder {
	product, err := space.NewProduct(b.Space.ID(), space.ProductDayPass, "Day pass", 8000)
	if err != nil {
		panic(err)
	}
	b.Product = product
	b.Request = reservation.IntervalRequest{Date: &date}
	return b
}

func (b *ReservationBuilder) Services() *reservation.Services {
	return &reservation.Services{
		Validator:  reservation.NewIntervalValidator(clock.NewMockClock(b.Now), b.Loc),
		Calculator: reservation.NewLinearPriceCalculator(),
		Matcher:    reservation.NewAvailabilityMatcher(b.Loc),
	}
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	svc := b.Services()
	slot, err := svc.Validator.Normalize(b.Product.Type, b.Request)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(svc, b.Space, b.Rules, b.DriverID, b.Product, slot, b.Vehicle)
}
