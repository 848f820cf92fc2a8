package commands

import (
	"context"
	"time"

	"parkspace/internal/domain/reservation"
	"parkspace/internal/domain/user"
	reqdto "parkspace/internal/handler/dto/request"
	"parkspace/internal/infra"
	"parkspace/internal/infra/db"
	"parkspace/internal/pkg/clock"
	"parkspace/internal/pkg/errs"
	"parkspace/internal/usecase/queries"
	"parkspace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSpaceNotFound           = errs.New("space not found")
	ErrProductNotFound         = errs.New("product not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrSlotTaken               = errs.New("slot already taken")
	ErrSlotConflict            = errs.New("slot confirmed by concurrent reservation")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest, actor user.Actor) (*queries.ReservationView, error)
	ConfirmReservation(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.ReservationView, error)
	RejectReservation(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.ReservationView, error)
}

type reservationUseCaseImpl struct {
	reservationRepo    ReservationRepository
	spaceRepo          SpaceRepository
	userRepo           UserRepository
	services           *reservation.Services
	reservationViews   queries.ReservationViewRepo
	pool               *pgxpool.Pool
	clock              clock.Clock
	loc                *time.Location
	cancellationWindow time.Duration
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	spaceRepo SpaceRepository,
	userRepo UserRepository,
	services *reservation.Services,
	reservationViews queries.ReservationViewRepo,
	pool *pgxpool.Pool,
	clk clock.Clock,
	loc *time.Location,
	cancellationWindow time.Duration,
) ReservationCommands {
	return &reservationUseCaseImpl{
		reservationRepo:    reservationRepo,
		spaceRepo:          spaceRepo,
		userRepo:           userRepo,
		services:           services,
		reservationViews:   reservationViews,
		pool:               pool,
		clock:              clk,
		loc:                loc,
		cancellationWindow: cancellationWindow,
	}
}

// CreateReservation admits a booking inside one transaction. The space row is
// locked FOR SHARE so deactivation cannot interleave; the overlap query is
// advisory and the insert itself is arbitrated by the exclusion constraint
// when the space auto-approves.
func (r *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	actor user.Actor,
) (*queries.ReservationView, error) {
	if !actor.IsDriver() {
		return nil, shared.ErrPermissionDenied
	}

	interval, err := req.ToInterval(r.loc)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	created, err := shared.WithDefaultRetry(ctx, r.pool, func(tx db.DBTX) (*reservation.Reservation, error) {
		sp, err := r.spaceRepo.FindByIDForShare(ctx, tx, req.SpaceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrSpaceNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		product, err := r.spaceRepo.ActiveProductByID(ctx, tx, req.SpaceID, req.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		vehicle, err := r.resolveVehicle(ctx, tx, req, actor.ID)
		if err != nil {
			return nil, err
		}

		slot, err := r.services.Validator.Normalize(product.Type, interval)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		rules, err := r.spaceRepo.RulesForWeekday(ctx, tx, sp.ID(), r.services.Matcher.Weekday(slot))
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		res, err := reservation.NewReservation(r.services, sp, rules, actor.ID, product, slot, vehicle)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		existing, err := r.reservationRepo.FindOverlapping(ctx, tx, sp.ID(), res.Slot(), uuid.Nil)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if len(reservation.FindConflicts(existing, res.Slot(), uuid.Nil)) > 0 {
			return nil, ErrSlotTaken
		}

		if err := r.reservationRepo.Create(ctx, tx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return nil, ErrSlotConflict
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}

	return r.view(ctx, created.ID())
}

// ConfirmReservation is the host approving a PENDING request. The UPDATE to
// CONFIRMED re-enters the exclusion constraint; on conflict the transaction
// rolls back and the reservation stays PENDING.
func (r *reservationUseCaseImpl) ConfirmReservation(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.ReservationView, error) {
	return r.transition(ctx, id, func(res *reservation.Reservation, hostID uuid.UUID) error {
		if actor.ID != hostID {
			return shared.ErrPermissionDenied
		}
		return res.Confirm()
	})
}

// CancelReservation serves both sides: the booking driver (subject to the
// cancellation cutoff) and the host of the space.
func (r *reservationUseCaseImpl) CancelReservation(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.ReservationView, error) {
	return r.transition(ctx, id, func(res *reservation.Reservation, hostID uuid.UUID) error {
		switch actor.ID {
		case res.DriverID():
			if err := res.CancelableByDriverAt(r.clock.Now(), r.cancellationWindow); err != nil {
				return err
			}
		case hostID:
		default:
			return shared.ErrPermissionDenied
		}
		return res.Cancel()
	})
}

func (r *reservationUseCaseImpl) RejectReservation(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.ReservationView, error) {
	return r.transition(ctx, id, func(res *reservation.Reservation, hostID uuid.UUID) error {
		if actor.ID != hostID {
			return shared.ErrPermissionDenied
		}
		return res.Reject()
	})
}

func (r *reservationUseCaseImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	apply func(res *reservation.Reservation, hostID uuid.UUID) error,
) (*queries.ReservationView, error) {
	updated, err := shared.RunInTx(ctx, r.pool, func(tx db.DBTX) (*reservation.Reservation, error) {
		res, err := r.reservationRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrReservationNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		sp, err := r.spaceRepo.FindByID(ctx, tx, res.SpaceID())
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := apply(res, sp.HostID()); err != nil {
			return nil, err
		}

		if err := r.reservationRepo.UpdateStatus(ctx, tx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return nil, ErrSlotConflict
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}

	return r.view(ctx, updated.ID())
}

func (r *reservationUseCaseImpl) resolveVehicle(
	ctx context.Context,
	tx db.DBTX,
	req reqdto.CreateReservationRequest,
	driverID uuid.UUID,
) (reservation.VehicleSnapshot, error) {
	var carNumber string
	if req.CarNumber != nil {
		carNumber = *req.CarNumber
	}

	if req.VehicleID != nil {
		v, err := r.userRepo.FindVehicle(ctx, tx, *req.VehicleID, driverID)
		if err != nil {
			// A stale or foreign vehicle reference is not fatal: the booking
			// proceeds on the caller-supplied plate string.
			if infra.IsKind(err, infra.KindNotFound) {
				return reservation.VehicleSnapshot{CarNumber: carNumber}, nil
			}
			return reservation.VehicleSnapshot{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return reservation.VehicleSnapshot{VehicleID: &v.ID, CarNumber: v.CarNumber, CarModel: v.CarModel}, nil
	}

	return reservation.VehicleSnapshot{CarNumber: carNumber}, nil
}

// Read-after-write: serve the response from the read side so every surface
// returns the same shape.
func (r *reservationUseCaseImpl) view(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := r.reservationViews.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
