package request

import (
	"time"

	"parkspace/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	SpaceID   uuid.UUID  `json:"space_id" binding:"required"`
	ProductID uuid.UUID  `json:"product_id" binding:"required"`
	VehicleID *uuid.UUID `json:"vehicle_id,omitempty"`
	CarNumber *string    `json:"car_number,omitempty" binding:"omitempty,max=20"`
	StartAt   *time.Time `json:"start_at,omitempty"`
	EndAt     *time.Time `json:"end_at,omitempty"`
	Date      *string    `json:"date,omitempty"`
}

// ToInterval carries the raw bounds through untouched; validation happens in
// the domain normalizer. Only the day-pass date needs parsing here, anchored
// to the booking calendar zone.
func (r CreateReservationRequest) ToInterval(loc *time.Location) (reservation.IntervalRequest, error) {
	req := reservation.IntervalRequest{
		StartAt: r.StartAt,
		EndAt:   r.EndAt,
	}
	if r.Date != nil {
		d, err := time.ParseInLocation("2006-01-02", *r.Date, loc)
		if err != nil {
			return reservation.IntervalRequest{}, reservation.ErrMissingDate
		}
		req.Date = &d
	}
	return req, nil
}

type ApprovePaymentRequest struct {
	TID     string `json:"tid" binding:"required"`
	OrderID string `json:"order_id" binding:"required"`
	Amount  int64  `json:"amount" binding:"gte=0"`
}
