package commands

import (
	"context"
	"log/slog"

	"parkspace/internal/domain/space"
	"parkspace/internal/domain/user"
	reqdto "parkspace/internal/handler/dto/request"
	"parkspace/internal/infra"
	"parkspace/internal/infra/db"
	"parkspace/internal/pkg/errs"
	"parkspace/internal/usecase/queries"
	"parkspace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DeactivateSpaceResult struct {
	CanceledReservations int64 `json:"canceled_reservations"`
}

type SpaceCommands interface {
	CreateSpace(ctx context.Context, req reqdto.CreateSpaceRequest, actor user.Actor) (*queries.SpaceDetailView, error)
	UpdateSpace(ctx context.Context, id uuid.UUID, req reqdto.UpdateSpaceRequest, actor user.Actor) (*queries.SpaceDetailView, error)
	DeactivateSpace(ctx context.Context, id uuid.UUID, actor user.Actor) (*DeactivateSpaceResult, error)
}

type spaceUseCaseImpl struct {
	spaceRepo       SpaceRepository
	reservationRepo ReservationRepository
	spaceViews      queries.SpaceViewRepo
	pool            *pgxpool.Pool
}

func NewSpaceUseCase(
	spaceRepo SpaceRepository,
	reservationRepo ReservationRepository,
	spaceViews queries.SpaceViewRepo,
	pool *pgxpool.Pool,
) SpaceCommands {
	return &spaceUseCaseImpl{
		spaceRepo:       spaceRepo,
		reservationRepo: reservationRepo,
		spaceViews:      spaceViews,
		pool:            pool,
	}
}

func (s *spaceUseCaseImpl) CreateSpace(ctx context.Context, req reqdto.CreateSpaceRequest, actor user.Actor) (*queries.SpaceDetailView, error) {
	if !actor.IsHost() {
		return nil, shared.ErrPermissionDenied
	}

	coords, err := space.NewCoordinates(req.Lat, req.Lng)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	sp, err := space.NewSpace(actor.ID, req.Title, req.Description, req.Address, coords, req.IsAutoApproval)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	rules, err := rulesFromRequest(sp.ID(), req.Rules)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	products := make([]space.Product, 0, len(req.Products))
	for _, pr := range req.Products {
		product, err := space.NewProduct(sp.ID(), space.ProductType(pr.Type), pr.Name, pr.Price)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		products = append(products, product)
	}

	_, err = shared.RunInTx(ctx, s.pool, func(tx db.DBTX) (struct{}, error) {
		if err := s.spaceRepo.Create(ctx, tx, sp, rules, products); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	return s.view(ctx, sp.ID())
}

// UpdateSpace replaces the rule set wholesale and reconciles products against
// the desired list: existing rows are matched by ID then by type, leftovers
// are soft-deactivated so historical reservations keep their product row.
func (s *spaceUseCaseImpl) UpdateSpace(ctx context.Context, id uuid.UUID, req reqdto.UpdateSpaceRequest, actor user.Actor) (*queries.SpaceDetailView, error) {
	_, err := shared.RunInTx(ctx, s.pool, func(tx db.DBTX) (struct{}, error) {
		sp, err := s.spaceRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrSpaceNotFound
			}
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if sp.HostID() != actor.ID {
			return struct{}{}, shared.ErrPermissionDenied
		}

		coords, err := space.NewCoordinates(req.Lat, req.Lng)
		if err != nil {
			return struct{}{}, errs.Mark(err, ErrDomainValidation)
		}
		updated := space.ReconstructSpace(sp.ID(), sp.HostID(), req.Title, req.Description, req.Address,
			coords, sp.IsActive(), req.IsAutoApproval, sp.CreatedAt(), sp.UpdatedAt())
		if err := s.spaceRepo.Update(ctx, tx, updated); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		rules, err := rulesFromRequest(id, req.Rules)
		if err != nil {
			return struct{}{}, errs.Mark(err, ErrDomainValidation)
		}
		if err := s.spaceRepo.ReplaceRules(ctx, tx, id, rules); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		current, err := s.spaceRepo.ProductsBySpace(ctx, tx, id)
		if err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		desired := make([]space.ProductPatch, 0, len(req.Products))
		for _, pr := range req.Products {
			desired = append(desired, pr.ToPatch())
		}
		plan, err := space.ReconcileProducts(id, current, desired)
		if err != nil {
			return struct{}{}, errs.Mark(err, ErrDomainValidation)
		}
		if err := s.spaceRepo.ApplyProductPlan(ctx, tx, plan); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	return s.view(ctx, id)
}

// DeactivateSpace takes the space row FOR UPDATE before the sweep, so a
// concurrent booking either completes first (and gets swept) or blocks on the
// shared lock and then sees the inactive flag.
func (s *spaceUseCaseImpl) DeactivateSpace(ctx context.Context, id uuid.UUID, actor user.Actor) (*DeactivateSpaceResult, error) {
	canceled, err := shared.RunInTx(ctx, s.pool, func(tx db.DBTX) (int64, error) {
		sp, err := s.spaceRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return 0, ErrSpaceNotFound
			}
			return 0, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if sp.HostID() != actor.ID {
			return 0, shared.ErrPermissionDenied
		}

		sp.Deactivate()
		if err := s.spaceRepo.SetInactive(ctx, tx, id); err != nil {
			return 0, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		n, err := s.reservationRepo.CancelActiveBySpace(ctx, tx, id)
		if err != nil {
			return 0, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return n, nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("space deactivated", "space_id", id, "canceled_reservations", canceled)
	return &DeactivateSpaceResult{CanceledReservations: canceled}, nil
}

func (s *spaceUseCaseImpl) view(ctx context.Context, id uuid.UUID) (*queries.SpaceDetailView, error) {
	view, err := s.spaceViews.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func rulesFromRequest(spaceID uuid.UUID, reqs []reqdto.AvailabilityRuleRequest) ([]space.AvailabilityRule, error) {
	rules := make([]space.AvailabilityRule, 0, len(reqs))
	for _, rr := range reqs {
		rule, err := rr.ToDomain(spaceID)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
