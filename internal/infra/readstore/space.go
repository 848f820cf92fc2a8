package readstore

import (
	"context"
	"fmt"

	"parkspace/internal/infra"
	"parkspace/internal/infra/db"
	"parkspace/internal/pkg/pgconv"
	"parkspace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SpaceReadStore struct {
	db db.DBTX
}

func NewSpaceReadStore(dbtx db.DBTX) *SpaceReadStore {
	return &SpaceReadStore{db: dbtx}
}

func (r *SpaceReadStore) FindActive(ctx context.Context, limit int32) ([]*queries.SpaceListItem, error) {
	const query = `
		SELECT s.id, s.title, s.address, s.lat, s.lng, s.is_auto_approval,
		       (SELECT MIN(p.price) FROM products p WHERE p.space_id = s.id AND p.is_active)
		FROM spaces s
		WHERE s.is_active
		ORDER BY s.created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active spaces", err)
	}
	defer rows.Close()
	return scanSpaceList(rows)
}

func (r *SpaceReadStore) FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*queries.SpaceListItem, error) {
	const query = `
		SELECT s.id, s.title, s.address, s.lat, s.lng, s.is_auto_approval,
		       (SELECT MIN(p.price) FROM products p WHERE p.space_id = s.id AND p.is_active)
		FROM spaces s
		WHERE s.host_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.db.Query(ctx, query, hostID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query host spaces", err)
	}
	defer rows.Close()
	return scanSpaceList(rows)
}

func (r *SpaceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpaceDetailView, error) {
	const query = `
		SELECT id, host_id, title, description, address, lat, lng,
		       is_active, is_auto_approval, created_at, updated_at
		FROM spaces
		WHERE id = $1`

	var view queries.SpaceDetailView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.HostID, &view.Title, &view.Description, &view.Address,
		&view.Lat, &view.Lng, &view.IsActive, &view.IsAutoApproval,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("space not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find space by ID", err)
	}

	if view.Rules, err = r.rules(ctx, id); err != nil {
		return nil, err
	}
	if view.Products, err = r.products(ctx, id); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *SpaceReadStore) rules(ctx context.Context, spaceID uuid.UUID) ([]queries.AvailabilityRuleView, error) {
	const query = `
		SELECT id, day_of_week, start_time, end_time
		FROM availability_rules
		WHERE space_id = $1
		ORDER BY day_of_week, start_time`

	rows, err := r.db.Query(ctx, query, spaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query availability rules", err)
	}
	defer rows.Close()

	var result []queries.AvailabilityRuleView
	for rows.Next() {
		var (
			rv         queries.AvailabilityRuleView
			start, end pgtype.Time
		)
		if err := rows.Scan(&rv.ID, &rv.DayOfWeek, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability rule", err)
		}
		rv.StartTime = formatPgTime(start)
		rv.EndTime = formatPgTime(end)
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability rules", err)
	}
	return result, nil
}

func (r *SpaceReadStore) products(ctx context.Context, spaceID uuid.UUID) ([]queries.ProductView, error) {
	const query = `
		SELECT id, type, name, price, is_active
		FROM products
		WHERE space_id = $1
		ORDER BY type`

	rows, err := r.db.Query(ctx, query, spaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query products", err)
	}
	defer rows.Close()

	var result []queries.ProductView
	for rows.Next() {
		var pv queries.ProductView
		if err := rows.Scan(&pv.ID, &pv.Type, &pv.Name, &pv.Price, &pv.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		result = append(result, pv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate products", err)
	}
	return result, nil
}

type spaceRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanSpaceList(rows spaceRows) ([]*queries.SpaceListItem, error) {
	var result []*queries.SpaceListItem
	for rows.Next() {
		var (
			item     queries.SpaceListItem
			minPrice pgtype.Int8
		)
		if err := rows.Scan(&item.ID, &item.Title, &item.Address, &item.Lat, &item.Lng, &item.IsAutoApproval, &minPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan space list item", err)
		}
		if minPrice.Valid {
			item.MinPrice = &minPrice.Int64
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate spaces", err)
	}
	return result, nil
}

func formatPgTime(t pgtype.Time) string {
	sec := int(t.Microseconds / 1_000_000)
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, (sec/60)%60, sec%60)
}
