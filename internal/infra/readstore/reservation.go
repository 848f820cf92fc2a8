package readstore

import (
	"context"

	"parkspace/internal/infra"
	"parkspace/internal/infra/db"
	"parkspace/internal/pkg/pgconv"
	"parkspace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewColumns = `
	r.id, r.space_id, s.title, s.host_id, r.driver_id, u.name,
	r.product_id, p.type, r.vehicle_id, r.car_number,
	r.start_at, r.end_at, r.status, r.price_total, r.created_at, r.updated_at`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := `
		SELECT ` + reservationViewColumns + `
		FROM reservations r
		JOIN spaces s ON s.id = r.space_id
		JOIN users u ON u.id = r.driver_id
		JOIN products p ON p.id = r.product_id
		WHERE r.id = $1`

	var (
		view      queries.ReservationView
		vehicleID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.SpaceID, &view.SpaceTitle, &view.HostID, &view.DriverID, &view.DriverName,
		&view.ProductID, &view.ProductType, &vehicleID, &view.CarNumber,
		&view.StartAt, &view.EndAt, &view.Status, &view.PriceTotal, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	view.VehicleID = pgconv.UUIDPtrFromPgtype(vehicleID)
	return &view, nil
}

func (r *ReservationReadStore) FindByDriverID(ctx context.Context, driverID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	const query = `
		SELECT r.id, r.space_id, s.title, r.car_number,
		       r.start_at, r.end_at, r.status, r.price_total, r.created_at
		FROM reservations r
		JOIN spaces s ON s.id = r.space_id
		WHERE r.driver_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`
	return r.listItems(ctx, query, driverID, limit)
}

func (r *ReservationReadStore) FindByHostID(ctx context.Context, hostID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	const query = `
		SELECT r.id, r.space_id, s.title, r.car_number,
		       r.start_at, r.end_at, r.status, r.price_total, r.created_at
		FROM reservations r
		JOIN spaces s ON s.id = r.space_id
		WHERE s.host_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`
	return r.listItems(ctx, query, hostID, limit)
}

func (r *ReservationReadStore) listItems(ctx context.Context, query string, id uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, query, id, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		if err := rows.Scan(
			&item.ID, &item.SpaceID, &item.SpaceTitle, &item.CarNumber,
			&item.StartAt, &item.EndAt, &item.Status, &item.PriceTotal, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list item", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}
