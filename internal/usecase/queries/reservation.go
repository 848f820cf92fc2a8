package queries

import (
	"context"
	"time"

	"parkspace/internal/domain/user"
	"parkspace/internal/infra"
	"parkspace/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID          uuid.UUID  `json:"id"`
	SpaceID     uuid.UUID  `json:"space_id"`
	SpaceTitle  string     `json:"space_title"`
	HostID      uuid.UUID  `json:"-"`
	DriverID    uuid.UUID  `json:"driver_id"`
	DriverName  string     `json:"driver_name"`
	ProductID   uuid.UUID  `json:"product_id"`
	ProductType string     `json:"product_type"`
	VehicleID   *uuid.UUID `json:"vehicle_id,omitempty"`
	CarNumber   string     `json:"car_number"`
	StartAt     time.Time  `json:"start_at"`
	EndAt       time.Time  `json:"end_at"`
	Status      string     `json:"status"`
	PriceTotal  int64      `json:"price_total"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID         uuid.UUID `json:"id"`
	SpaceID    uuid.UUID `json:"space_id"`
	SpaceTitle string    `json:"space_title"`
	CarNumber  string    `json:"car_number"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	Status     string    `json:"status"`
	PriceTotal int64     `json:"price_total"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error)
	ListForActor(ctx context.Context, actor user.Actor, limit int) ([]*ReservationListItem, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByDriverID(ctx context.Context, driverID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByHostID(ctx context.Context, hostID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

// GetByID is visible to the booking driver and the host of the booked space.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if view.DriverID != actor.ID && view.HostID != actor.ID {
		return nil, shared.ErrPermissionDenied
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListForActor(ctx context.Context, actor user.Actor, limit int) ([]*ReservationListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if actor.IsHost() {
		return q.repo.FindByHostID(ctx, actor.ID, int32(limit))
	}
	return q.repo.FindByDriverID(ctx, actor.ID, int32(limit))
}
