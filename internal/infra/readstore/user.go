package readstore

import (
	"context"

	"parkspace/internal/infra"
	"parkspace/internal/infra/db"
	"parkspace/internal/pkg/pgconv"
	"parkspace/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, name, role, created_at
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Email, &view.Name, &view.Role, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

func (r *UserReadStore) FindVehiclesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.VehicleView, error) {
	const query = `
		SELECT id, car_number, car_model
		FROM vehicles
		WHERE owner_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query vehicles", err)
	}
	defer rows.Close()

	var result []*queries.VehicleView
	for rows.Next() {
		var v queries.VehicleView
		if err := rows.Scan(&v.ID, &v.CarNumber, &v.CarModel); err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicles", err)
	}
	return result, nil
}
