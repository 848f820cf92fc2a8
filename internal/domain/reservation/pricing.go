package reservation

import (
	"parkspace/internal/domain/space"
)

// PriceCalculator derives the total price for a normalized slot.
type PriceCalculator interface {
	Calculate(product space.Product, slot TimeSlot) int64
}

// LinearPriceCalculator prices day passes flat and hourly reservations
// linearly. The hourly total truncates toward zero after the fractional-hour
// multiplication; callers relying on rounding would over-charge half-open
// 30-minute slots.
type LinearPriceCalculator struct{}

func NewLinearPriceCalculator() *LinearPriceCalculator {
	return &LinearPriceCalculator{}
}

func (c *LinearPriceCalculator) Calculate(product space.Product, slot TimeSlot) int64 {
	switch product.Type {
	case space.ProductDayPass:
		return product.Price
	default:
		hours := slot.Duration().Hours()
		return int64(hours * float64(product.Price))
	}
}
