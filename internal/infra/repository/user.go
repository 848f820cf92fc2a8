package repository

import (
	"context"
	"time"

	"parkspace/internal/domain/user"
	"parkspace/internal/infra"
	"parkspace/internal/infra/db"
	"parkspace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, name, role)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, u.ID(), u.Email().String(), u.PasswordHash(), u.Name(), u.Role().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err, kindOf(err))
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, dbtx db.DBTX, email user.Email) (*user.User, error) {
	const query = `
		SELECT id, email, password_hash, name, role, created_at, updated_at
		FROM users
		WHERE email = $1`
	return r.scanOne(ctx, dbtx, query, email.String())
}

func (r *UserRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*user.User, error) {
	const query = `
		SELECT id, email, password_hash, name, role, created_at, updated_at
		FROM users
		WHERE id = $1`
	return r.scanOne(ctx, dbtx, query, id)
}

func (r *UserRepository) scanOne(ctx context.Context, dbtx db.DBTX, query string, arg any) (*user.User, error) {
	var (
		id                       uuid.UUID
		emailStr, hash, name, rl string
		createdAt, updatedAt     time.Time
	)
	err := dbtx.QueryRow(ctx, query, arg).Scan(&id, &emailStr, &hash, &name, &rl, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	email, err := user.NewEmail(emailStr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has invalid email", err)
	}
	role, err := user.NewRole(rl)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has invalid role", err)
	}
	return user.ReconstructUser(id, email, hash, name, role, createdAt, updatedAt), nil
}

// CreateVehicle registers a car for its owner.
func (r *UserRepository) CreateVehicle(ctx context.Context, tx db.DBTX, v user.Vehicle) error {
	const query = `
		INSERT INTO vehicles (id, owner_id, car_number, car_model)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, v.ID, v.OwnerID, v.CarNumber, v.CarModel)
	if err != nil {
		return infra.WrapRepoErr("failed to create vehicle", err, kindOf(err))
	}
	return nil
}

// FindVehicle resolves a vehicle scoped to its owner, so a booking cannot
// snapshot someone else's car.
func (r *UserRepository) FindVehicle(ctx context.Context, dbtx db.DBTX, id, ownerID uuid.UUID) (user.Vehicle, error) {
	const query = `
		SELECT id, owner_id, car_number, car_model
		FROM vehicles
		WHERE id = $1 AND owner_id = $2`

	var v user.Vehicle
	err := dbtx.QueryRow(ctx, query, id, ownerID).Scan(&v.ID, &v.OwnerID, &v.CarNumber, &v.CarModel)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return user.Vehicle{}, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return user.Vehicle{}, infra.WrapRepoErr("failed to find vehicle", err)
	}
	return v, nil
}
