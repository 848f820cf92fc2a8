package repository

import (
	"context"
	"time"

	"parkspace/internal/domain/reservation"
	"parkspace/internal/infra"
	"parkspace/internal/infra/db"
	"parkspace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

// Create inserts a new reservation. The period column is populated from the
// slot as a half-open tstzrange in the same statement, so an auto-approved
// (initially CONFIRMED) insert is arbitrated by the exclusion constraint and
// surfaces KindConflict when it loses.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	const query = `
		INSERT INTO reservations
			(id, space_id, driver_id, product_id, vehicle_id, car_number,
			 start_at, end_at, status, price_total, period)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, tstzrange($7, $8, '[)'))`

	_, err := tx.Exec(ctx, query,
		res.ID(), res.SpaceID(), res.DriverID(), res.ProductID(),
		pgconv.UUIDPtrToPgtype(res.Vehicle().VehicleID), res.Vehicle().CarNumber,
		res.Slot().Start(), res.Slot().End(), res.Status().String(), res.PriceTotal(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err, kindOf(err))
	}
	return nil
}

// FindByIDForUpdate loads a reservation row-locked for a status transition.
func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	const query = `
		SELECT id, space_id, driver_id, product_id, vehicle_id, car_number,
		       start_at, end_at, status, price_total, created_at, updated_at
		FROM reservations
		WHERE id = $1
		FOR UPDATE`
	return r.scanOne(ctx, tx, query, id)
}

func (r *ReservationRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	const query = `
		SELECT id, space_id, driver_id, product_id, vehicle_id, car_number,
		       start_at, end_at, status, price_total, created_at, updated_at
		FROM reservations
		WHERE id = $1`
	return r.scanOne(ctx, dbtx, query, id)
}

func (r *ReservationRepository) scanOne(ctx context.Context, dbtx db.DBTX, query string, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		resID, spaceID, driverID, productID uuid.UUID
		vehicleID                           pgtype.UUID
		carNumber, status                   string
		startAt, endAt                      time.Time
		priceTotal                          int64
		createdAt, updatedAt                time.Time
	)

	err := dbtx.QueryRow(ctx, query, id).Scan(
		&resID, &spaceID, &driverID, &productID, &vehicleID, &carNumber,
		&startAt, &endAt, &status, &priceTotal, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	slot, err := reservation.NewTimeSlot(startAt, endAt)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid slot", err)
	}

	return reservation.ReconstructReservation(
		resID, spaceID, driverID, productID,
		reservation.VehicleSnapshot{VehicleID: pgconv.UUIDPtrFromPgtype(vehicleID), CarNumber: carNumber},
		slot,
		reservation.Status(status),
		priceTotal,
		createdAt, updatedAt,
	), nil
}

// FindOverlapping is the creation-time advisory check: active reservations on
// the space whose half-open interval intersects the candidate. It may race
// with concurrent writers; the exclusion constraint remains the binding
// guarantee.
func (r *ReservationRepository) FindOverlapping(ctx context.Context, dbtx db.DBTX, spaceID uuid.UUID, slot reservation.TimeSlot, excludeID uuid.UUID) ([]reservation.ActiveSlot, error) {
	const query = `
		SELECT id, start_at, end_at, status
		FROM reservations
		WHERE space_id = $1
		  AND status IN ('PENDING', 'CONFIRMED')
		  AND start_at < $2
		  AND end_at > $3
		  AND id <> $4`

	rows, err := dbtx.Query(ctx, query, spaceID, slot.End(), slot.Start(), excludeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping reservations", err)
	}
	defer rows.Close()

	var result []reservation.ActiveSlot
	for rows.Next() {
		var (
			id             uuid.UUID
			startAt, endAt time.Time
			status         string
		)
		if err := rows.Scan(&id, &startAt, &endAt, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan overlapping reservation", err)
		}
		existing, err := reservation.NewTimeSlot(startAt, endAt)
		if err != nil {
			return nil, infra.WrapRepoErr("stored reservation has invalid slot", err)
		}
		result = append(result, reservation.ActiveSlot{
			ReservationID: id,
			Slot:          existing,
			Status:        reservation.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate overlapping reservations", err)
	}
	return result, nil
}

// UpdateStatus writes the current status of the entity back. A transition to
// CONFIRMED re-enters the exclusion constraint's scope: when a concurrent
// confirmation already claimed an overlapping period this fails with
// KindConflict and the row is untouched.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	const query = `
		UPDATE reservations
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, res.ID(), res.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err, kindOf(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// CancelActiveBySpace is the deactivation sweep: every PENDING or CONFIRMED
// reservation on the space becomes CANCELED in one statement.
func (r *ReservationRepository) CancelActiveBySpace(ctx context.Context, tx db.DBTX, spaceID uuid.UUID) (int64, error) {
	const query = `
		UPDATE reservations
		SET status = 'CANCELED', updated_at = now()
		WHERE space_id = $1
		  AND status IN ('PENDING', 'CONFIRMED')`

	tag, err := tx.Exec(ctx, query, spaceID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel reservations for space", err)
	}
	return tag.RowsAffected(), nil
}
