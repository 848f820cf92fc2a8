package queries

import (
	"context"
	"time"

	"parkspace/internal/domain/user"
	"parkspace/internal/infra"
	"parkspace/internal/usecase/shared"

	"github.com/google/uuid"
)

type SpaceListItem struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Address        string    `json:"address"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	IsAutoApproval bool      `json:"is_auto_approval"`
	MinPrice       *int64    `json:"min_price,omitempty"`
}

type AvailabilityRuleView struct {
	ID        uuid.UUID `json:"id"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type ProductView struct {
	ID       uuid.UUID `json:"id"`
	Type     string    `json:"type"`
	Name     string    `json:"name"`
	Price    int64     `json:"price"`
	IsActive bool      `json:"is_active"`
}

type SpaceDetailView struct {
	ID             uuid.UUID              `json:"id"`
	HostID         uuid.UUID              `json:"host_id"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Address        string                 `json:"address"`
	Lat            float64                `json:"lat"`
	Lng            float64                `json:"lng"`
	IsActive       bool                   `json:"is_active"`
	IsAutoApproval bool                   `json:"is_auto_approval"`
	Rules          []AvailabilityRuleView `json:"availability_rules"`
	Products       []ProductView          `json:"products"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

type SpaceQueries interface {
	ListActive(ctx context.Context, limit int) ([]*SpaceListItem, error)
	ListByHost(ctx context.Context, actor user.Actor) ([]*SpaceListItem, error)
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*SpaceDetailView, error)
}

type SpaceViewRepo interface {
	FindActive(ctx context.Context, limit int32) ([]*SpaceListItem, error)
	FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*SpaceListItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SpaceDetailView, error)
}

type spaceQueriesImpl struct {
	repo SpaceViewRepo
}

func NewSpaceQueries(repo SpaceViewRepo) SpaceQueries {
	return &spaceQueriesImpl{repo: repo}
}

func (q *spaceQueriesImpl) ListActive(ctx context.Context, limit int) ([]*SpaceListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.repo.FindActive(ctx, int32(limit))
}

func (q *spaceQueriesImpl) ListByHost(ctx context.Context, actor user.Actor) ([]*SpaceListItem, error) {
	if !actor.IsHost() {
		return nil, shared.ErrPermissionDenied
	}
	return q.repo.FindByHostID(ctx, actor.ID)
}

// GetByID exposes inactive spaces and inactive products only to their host.
func (q *spaceQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*SpaceDetailView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if view.HostID == actor.ID {
		return view, nil
	}
	if !view.IsActive {
		return nil, shared.ErrNotFound
	}
	active := view.Products[:0]
	for _, p := range view.Products {
		if p.IsActive {
			active = append(active, p)
		}
	}
	view.Products = active
	return view, nil
}
