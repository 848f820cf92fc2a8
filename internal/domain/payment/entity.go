package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidAmount = errors.New("payment amount must be positive")

type Status string

const (
	StatusPaid     Status = "PAID"
	StatusCanceled Status = "CANCELED"
)

// Payment records a settled gateway approval. Rows are only written after
// the gateway reports success, in the same transaction as the reservation's
// CONFIRMED transition.
type Payment struct {
	id            uuid.UUID
	reservationID uuid.UUID
	tid           string
	orderID       string
	amount        int64
	status        Status
	paidAt        *time.Time
	createdAt     time.Time
}

func NewPayment(reservationID uuid.UUID, tid, orderID string, amount int64, paidAt *time.Time) (*Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		id:            uuid.New(),
		reservationID: reservationID,
		tid:           tid,
		orderID:       orderID,
		amount:        amount,
		status:        StatusPaid,
		paidAt:        paidAt,
	}, nil
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) ReservationID() uuid.UUID { return p.reservationID }
func (p *Payment) TID() string              { return p.tid }
func (p *Payment) OrderID() string          { return p.orderID }
func (p *Payment) Amount() int64            { return p.amount }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) PaidAt() *time.Time       { return p.paidAt }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
