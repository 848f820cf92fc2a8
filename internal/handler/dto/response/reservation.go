package response

import (
	"time"

	"parkspace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID          uuid.UUID  `json:"id"`
	SpaceID     uuid.UUID  `json:"spaceId"`
	SpaceTitle  string     `json:"spaceTitle"`
	DriverID    uuid.UUID  `json:"driverId"`
	DriverName  string     `json:"driverName"`
	ProductID   uuid.UUID  `json:"productId"`
	ProductType string     `json:"productType"`
	VehicleID   *uuid.UUID `json:"vehicleId,omitempty"`
	CarNumber   string     `json:"carNumber"`
	StartAt     time.Time  `json:"startAt"`
	EndAt       time.Time  `json:"endAt"`
	Status      string     `json:"status"`
	PriceTotal  int64      `json:"priceTotal"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID         uuid.UUID `json:"id"`
	SpaceID    uuid.UUID `json:"spaceId"`
	SpaceTitle string    `json:"spaceTitle"`
	CarNumber  string    `json:"carNumber"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	Status     string    `json:"status"`
	PriceTotal int64     `json:"priceTotal"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromReservationListItem(v *queries.ReservationListItem) *ReservationListResponse {
	var resp ReservationListResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
