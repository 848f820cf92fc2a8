package queries

import (
	"context"
	"time"

	"parkspace/internal/infra"
	"parkspace/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type VehicleView struct {
	ID        uuid.UUID `json:"id"`
	CarNumber string    `json:"car_number"`
	CarModel  string    `json:"car_model"`
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	ListVehicles(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindVehiclesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) ListVehicles(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error) {
	return q.readStore.FindVehiclesByOwner(ctx, ownerID)
}
