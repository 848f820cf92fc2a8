package commands

import (
	"context"
	"log/slog"

	"parkspace/internal/domain/payment"
	"parkspace/internal/domain/reservation"
	"parkspace/internal/domain/user"
	reqdto "parkspace/internal/handler/dto/request"
	"parkspace/internal/infra"
	"parkspace/internal/infra/db"
	"parkspace/internal/infra/nicepay"
	"parkspace/internal/pkg/errs"
	"parkspace/internal/usecase/queries"
	"parkspace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAmountMismatch = errs.New("payment amount does not match reservation total")
	ErrGatewayFailure = errs.New("payment gateway rejected the transaction")
)

type PaymentCommands interface {
	ApprovePayment(ctx context.Context, actor user.Actor, reservationID uuid.UUID, req reqdto.ApprovePaymentRequest) (*queries.ReservationView, error)
}

type paymentUseCaseImpl struct {
	reservationRepo  ReservationRepository
	paymentRepo      PaymentRepository
	gateway          nicepay.Gateway
	reservationViews queries.ReservationViewRepo
	pool             *pgxpool.Pool
}

func NewPaymentUseCase(
	reservationRepo ReservationRepository,
	paymentRepo PaymentRepository,
	gateway nicepay.Gateway,
	reservationViews queries.ReservationViewRepo,
	pool *pgxpool.Pool,
) PaymentCommands {
	return &paymentUseCaseImpl{
		reservationRepo:  reservationRepo,
		paymentRepo:      paymentRepo,
		gateway:          gateway,
		reservationViews: reservationViews,
		pool:             pool,
	}
}

// ApprovePayment settles a pending reservation. The gateway call happens
// outside any database transaction so a slow gateway never holds row locks.
// The follow-up settle transaction re-checks the reservation under FOR UPDATE
// because its state may have moved while the gateway was working.
func (p *paymentUseCaseImpl) ApprovePayment(
	ctx context.Context,
	actor user.Actor,
	reservationID uuid.UUID,
	req reqdto.ApprovePaymentRequest,
) (*queries.ReservationView, error) {
	res, err := p.reservationRepo.FindByID(ctx, p.pool, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if res.DriverID() != actor.ID {
		return nil, shared.ErrPermissionDenied
	}
	if res.Status() != reservation.StatusPending {
		return nil, errs.Mark(reservation.ErrInvalidStateTransition, ErrDomainValidation)
	}
	if req.Amount != res.PriceTotal() {
		return nil, ErrAmountMismatch
	}

	// A zero-total reservation has nothing to settle: it confirms without a
	// gateway call and without a payment row.
	if res.PriceTotal() == 0 {
		_, err = shared.RunInTx(ctx, p.pool, func(tx db.DBTX) (struct{}, error) {
			return struct{}{}, p.confirmLocked(ctx, tx, reservationID)
		})
		if err != nil {
			return nil, err
		}
		return p.view(ctx, reservationID)
	}

	result, err := p.gateway.Approve(ctx, req.TID, req.OrderID, req.Amount)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayFailure)
	}
	if !result.Success() {
		return nil, errs.Mark(errs.Newf("gateway result %s: %s", result.ResultCode, result.ResultMsg), ErrGatewayFailure)
	}

	_, err = shared.RunInTx(ctx, p.pool, func(tx db.DBTX) (struct{}, error) {
		if err := p.confirmLocked(ctx, tx, reservationID); err != nil {
			return struct{}{}, err
		}

		pay, err := payment.NewPayment(reservationID, req.TID, req.OrderID, req.Amount, result.AuthDate)
		if err != nil {
			return struct{}{}, errs.Mark(err, ErrDomainValidation)
		}
		if err := p.paymentRepo.Create(ctx, tx, pay); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		p.compensate(ctx, req.TID)
		return nil, err
	}

	return p.view(ctx, reservationID)
}

// confirmLocked re-reads the reservation under FOR UPDATE and moves it to
// CONFIRMED through the storage exclusion guard.
func (p *paymentUseCaseImpl) confirmLocked(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) error {
	current, err := p.reservationRepo.FindByIDForUpdate(ctx, tx, reservationID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := current.Confirm(); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if err := p.reservationRepo.UpdateStatus(ctx, tx, current); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return ErrSlotConflict
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (p *paymentUseCaseImpl) view(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := p.reservationViews.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// compensate reverses an approved gateway transaction after the local settle
// failed. Best effort; a failed reversal is logged for manual follow-up.
func (p *paymentUseCaseImpl) compensate(ctx context.Context, tid string) {
	result, err := p.gateway.Cancel(ctx, tid, "settlement failed")
	if err != nil || !result.Success() {
		slog.Error("failed to reverse gateway payment", "tid", tid, "error", err)
	}
}
