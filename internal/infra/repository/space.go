package repository

import (
	"context"
	"time"

	"parkspace/internal/domain/space"
	"parkspace/internal/infra"
	"parkspace/internal/infra/db"
	"parkspace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SpaceRepository struct{}

func NewSpaceRepository() *SpaceRepository {
	return &SpaceRepository{}
}

const spaceColumns = `id, host_id, title, description, address, lat, lng,
	is_active, is_auto_approval, created_at, updated_at`

func (r *SpaceRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*space.Space, error) {
	return r.findByID(ctx, dbtx, id, "")
}

// FindByIDForShare blocks concurrent deactivation for the duration of a
// booking transaction without serializing bookings against each other.
func (r *SpaceRepository) FindByIDForShare(ctx context.Context, tx db.DBTX, id uuid.UUID) (*space.Space, error) {
	return r.findByID(ctx, tx, id, " FOR SHARE")
}

// FindByIDForUpdate is taken by deactivation so no booking can slip in
// between the flag flip and the reservation cancel sweep.
func (r *SpaceRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*space.Space, error) {
	return r.findByID(ctx, tx, id, " FOR UPDATE")
}

func (r *SpaceRepository) findByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID, lockClause string) (*space.Space, error) {
	query := `SELECT ` + spaceColumns + ` FROM spaces WHERE id = $1` + lockClause

	var (
		spaceID, hostID          uuid.UUID
		title, description, addr string
		lat, lng                 float64
		isActive, isAutoApproval bool
		createdAt, updatedAt     time.Time
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&spaceID, &hostID, &title, &description, &addr, &lat, &lng,
		&isActive, &isAutoApproval, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("space not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find space", err)
	}

	coords, err := space.NewCoordinates(lat, lng)
	if err != nil {
		return nil, infra.WrapRepoErr("stored space has invalid coordinates", err)
	}
	return space.ReconstructSpace(spaceID, hostID, title, description, addr, coords,
		isActive, isAutoApproval, createdAt, updatedAt), nil
}

func (r *SpaceRepository) Create(ctx context.Context, tx db.DBTX, sp *space.Space, rules []space.AvailabilityRule, products []space.Product) error {
	const query = `
		INSERT INTO spaces (id, host_id, title, description, address, lat, lng, is_active, is_auto_approval)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		sp.ID(), sp.HostID(), sp.Title(), sp.Description(), sp.Address(),
		sp.Coords().Lat(), sp.Coords().Lng(), sp.IsActive(), sp.IsAutoApproval(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create space", err, kindOf(err))
	}

	if err := r.insertRules(ctx, tx, rules); err != nil {
		return err
	}
	for _, p := range products {
		if err := r.insertProduct(ctx, tx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *SpaceRepository) Update(ctx context.Context, tx db.DBTX, sp *space.Space) error {
	const query = `
		UPDATE spaces
		SET title = $2, description = $3, address = $4, lat = $5, lng = $6,
		    is_auto_approval = $7, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		sp.ID(), sp.Title(), sp.Description(), sp.Address(),
		sp.Coords().Lat(), sp.Coords().Lng(), sp.IsAutoApproval(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update space", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("space not found", nil, infra.KindNotFound)
	}
	return nil
}

// SetInactive flips the active flag. The caller holds the row FOR UPDATE and
// runs the reservation cancel sweep in the same transaction.
func (r *SpaceRepository) SetInactive(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `UPDATE spaces SET is_active = false, updated_at = now() WHERE id = $1`
	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate space", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("space not found", nil, infra.KindNotFound)
	}
	return nil
}

// ReplaceRules swaps the full availability rule set in one shot. Rules are
// few per space, so delete-and-reinsert beats diffing.
func (r *SpaceRepository) ReplaceRules(ctx context.Context, tx db.DBTX, spaceID uuid.UUID, rules []space.AvailabilityRule) error {
	if _, err := tx.Exec(ctx, `DELETE FROM availability_rules WHERE space_id = $1`, spaceID); err != nil {
		return infra.WrapRepoErr("failed to clear availability rules", err)
	}
	return r.insertRules(ctx, tx, rules)
}

func (r *SpaceRepository) insertRules(ctx context.Context, tx db.DBTX, rules []space.AvailabilityRule) error {
	const query = `
		INSERT INTO availability_rules (id, space_id, day_of_week, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)`
	for _, rule := range rules {
		_, err := tx.Exec(ctx, query,
			rule.ID, rule.SpaceID, rule.DayOfWeek.Int(),
			timeOfDayToPg(rule.StartTime), timeOfDayToPg(rule.EndTime),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert availability rule", err, kindOf(err))
		}
	}
	return nil
}

// RulesForWeekday loads the availability windows consulted during admission.
func (r *SpaceRepository) RulesForWeekday(ctx context.Context, dbtx db.DBTX, spaceID uuid.UUID, day space.Weekday) ([]space.AvailabilityRule, error) {
	const query = `
		SELECT id, space_id, day_of_week, start_time, end_time
		FROM availability_rules
		WHERE space_id = $1 AND day_of_week = $2
		ORDER BY start_time`

	rows, err := dbtx.Query(ctx, query, spaceID, day.Int())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query availability rules", err)
	}
	defer rows.Close()

	var rules []space.AvailabilityRule
	for rows.Next() {
		var (
			id, sid    uuid.UUID
			dow        int
			start, end pgtype.Time
		)
		if err := rows.Scan(&id, &sid, &dow, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability rule", err)
		}
		rule, err := ruleFromRow(id, sid, dow, start, end)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability rules", err)
	}
	return rules, nil
}

// ActiveProductByID resolves the product a booking names, scoped to the space
// so a product of another space cannot be referenced.
func (r *SpaceRepository) ActiveProductByID(ctx context.Context, dbtx db.DBTX, spaceID, productID uuid.UUID) (space.Product, error) {
	const query = `
		SELECT id, space_id, type, name, price, is_active
		FROM products
		WHERE id = $1 AND space_id = $2`

	p, err := scanProduct(dbtx.QueryRow(ctx, query, productID, spaceID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return space.Product{}, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return space.Product{}, infra.WrapRepoErr("failed to find product", err)
	}
	return p, nil
}

func (r *SpaceRepository) ProductsBySpace(ctx context.Context, dbtx db.DBTX, spaceID uuid.UUID) ([]space.Product, error) {
	const query = `
		SELECT id, space_id, type, name, price, is_active
		FROM products
		WHERE space_id = $1
		ORDER BY type`

	rows, err := dbtx.Query(ctx, query, spaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query products", err)
	}
	defer rows.Close()

	var products []space.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate products", err)
	}
	return products, nil
}

// ApplyProductPlan executes a reconciliation plan transactionally.
func (r *SpaceRepository) ApplyProductPlan(ctx context.Context, tx db.DBTX, plan space.ProductPlan) error {
	for _, p := range plan.Create {
		if err := r.insertProduct(ctx, tx, p); err != nil {
			return err
		}
	}
	const updateQuery = `
		UPDATE products SET type = $2, name = $3, price = $4, is_active = $5
		WHERE id = $1`
	for _, p := range plan.Update {
		if _, err := tx.Exec(ctx, updateQuery, p.ID, string(p.Type), p.Name, p.Price, p.IsActive); err != nil {
			return infra.WrapRepoErr("failed to update product", err, kindOf(err))
		}
	}
	for _, p := range plan.Deactivate {
		if _, err := tx.Exec(ctx, `UPDATE products SET is_active = false WHERE id = $1`, p.ID); err != nil {
			return infra.WrapRepoErr("failed to deactivate product", err)
		}
	}
	return nil
}

func (r *SpaceRepository) insertProduct(ctx context.Context, tx db.DBTX, p space.Product) error {
	const query = `
		INSERT INTO products (id, space_id, type, name, price, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, query, p.ID, p.SpaceID, string(p.Type), p.Name, p.Price, p.IsActive); err != nil {
		return infra.WrapRepoErr("failed to insert product", err, kindOf(err))
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (space.Product, error) {
	var (
		id, spaceID uuid.UUID
		typ, name   string
		price       int64
		isActive    bool
	)
	if err := row.Scan(&id, &spaceID, &typ, &name, &price, &isActive); err != nil {
		return space.Product{}, err
	}
	return space.Product{
		ID:       id,
		SpaceID:  spaceID,
		Type:     space.ProductType(typ),
		Name:     name,
		Price:    price,
		IsActive: isActive,
	}, nil
}

func timeOfDayToPg(t space.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t.Seconds()) * 1_000_000, Valid: true}
}

func timeOfDayFromPg(t pgtype.Time) (space.TimeOfDay, error) {
	sec := int(t.Microseconds / 1_000_000)
	return space.NewTimeOfDay(sec/3600, (sec/60)%60, sec%60)
}

func ruleFromRow(id, spaceID uuid.UUID, dow int, start, end pgtype.Time) (space.AvailabilityRule, error) {
	day, err := space.NewWeekday(dow)
	if err != nil {
		return space.AvailabilityRule{}, infra.WrapRepoErr("stored rule has invalid weekday", err)
	}
	st, err := timeOfDayFromPg(start)
	if err != nil {
		return space.AvailabilityRule{}, infra.WrapRepoErr("stored rule has invalid start time", err)
	}
	et, err := timeOfDayFromPg(end)
	if err != nil {
		return space.AvailabilityRule{}, infra.WrapRepoErr("stored rule has invalid end time", err)
	}
	return space.AvailabilityRule{ID: id, SpaceID: spaceID, DayOfWeek: day, StartTime: st, EndTime: et}, nil
}
