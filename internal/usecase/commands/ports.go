package commands

import (
	"context"

	"parkspace/internal/domain/payment"
	"parkspace/internal/domain/reservation"
	"parkspace/internal/domain/space"
	"parkspace/internal/domain/user"
	"parkspace/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in infra/repository; tests swap in
// fakes.

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	FindOverlapping(ctx context.Context, dbtx db.DBTX, spaceID uuid.UUID, slot reservation.TimeSlot, excludeID uuid.UUID) ([]reservation.ActiveSlot, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	CancelActiveBySpace(ctx context.Context, tx db.DBTX, spaceID uuid.UUID) (int64, error)
}

type SpaceRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*space.Space, error)
	FindByIDForShare(ctx context.Context, tx db.DBTX, id uuid.UUID) (*space.Space, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*space.Space, error)
	Create(ctx context.Context, tx db.DBTX, sp *space.Space, rules []space.AvailabilityRule, products []space.Product) error
	Update(ctx context.Context, tx db.DBTX, sp *space.Space) error
	SetInactive(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	ReplaceRules(ctx context.Context, tx db.DBTX, spaceID uuid.UUID, rules []space.AvailabilityRule) error
	RulesForWeekday(ctx context.Context, dbtx db.DBTX, spaceID uuid.UUID, day space.Weekday) ([]space.AvailabilityRule, error)
	ActiveProductByID(ctx context.Context, dbtx db.DBTX, spaceID, productID uuid.UUID) (space.Product, error)
	ProductsBySpace(ctx context.Context, dbtx db.DBTX, spaceID uuid.UUID) ([]space.Product, error)
	ApplyProductPlan(ctx context.Context, tx db.DBTX, plan space.ProductPlan) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	FindByEmail(ctx context.Context, dbtx db.DBTX, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*user.User, error)
	CreateVehicle(ctx context.Context, tx db.DBTX, v user.Vehicle) error
	FindVehicle(ctx context.Context, dbtx db.DBTX, id, ownerID uuid.UUID) (user.Vehicle, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *payment.Payment) error
}
