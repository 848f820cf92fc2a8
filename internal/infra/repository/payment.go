package repository

import (
	"context"

	"parkspace/internal/domain/payment"
	"parkspace/internal/infra"
	"parkspace/internal/infra/db"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, tx db.DBTX, p *payment.Payment) error {
	const query = `
		INSERT INTO payments (id, reservation_id, tid, order_id, amount, status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		p.ID(), p.ReservationID(), p.TID(), p.OrderID(), p.Amount(), string(p.Status()), p.PaidAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err, kindOf(err))
	}
	return nil
}
