package reservation

import (
	"errors"
	"time"

	"parkspace/internal/domain/space"

	"github.com/google/uuid"
)

var (
	ErrInvalidStateTransition   = errors.New("invalid reservation state transition")
	ErrCancellationWindowClosed = errors.New("cancellation window has closed")
)

// VehicleSnapshot is the plate (and model, when known) frozen at booking
// time. The reservation keeps it even if the vehicle row later changes.
type VehicleSnapshot struct {
	VehicleID *uuid.UUID
	CarNumber string
	CarModel  string
}

type Reservation struct {
	id         uuid.UUID
	spaceID    uuid.UUID
	driverID   uuid.UUID
	productID  uuid.UUID
	vehicle    VehicleSnapshot
	slot       TimeSlot
	status     Status
	priceTotal int64
	createdAt  time.Time
	updatedAt  time.Time
}

// Services bundles what the factory needs to admit a new reservation.
type Services struct {
	Validator  *IntervalValidator
	Calculator PriceCalculator
	Matcher    *AvailabilityMatcher
}

// NewReservation admits a candidate booking: pricing, then availability
// matching. The slot must already be normalized by the IntervalValidator;
// the conflict check against sibling reservations happens outside, where
// storage is visible.
func NewReservation(
	svc *Services,
	sp *space.Space,
	rules []space.AvailabilityRule,
	driverID uuid.UUID,
	product space.Product,
	slot TimeSlot,
	vehicle VehicleSnapshot,
) (*Reservation, error) {
	if !sp.IsActive() {
		return nil, space.ErrSpaceNotActive
	}
	if !product.IsActive {
		return nil, space.ErrProductNotForSale
	}

	price := svc.Calculator.Calculate(product, slot)

	if err := svc.Matcher.Covers(rules, slot); err != nil {
		return nil, err
	}

	status := StatusPending
	if sp.IsAutoApproval() {
		status = StatusConfirmed
	}

	return &Reservation{
		id:         uuid.New(),
		spaceID:    sp.ID(),
		driverID:   driverID,
		productID:  product.ID,
		vehicle:    vehicle,
		slot:       slot,
		status:     status,
		priceTotal: price,
	}, nil
}

func ReconstructReservation(
	id, spaceID, driverID, productID uuid.UUID,
	vehicle VehicleSnapshot,
	slot TimeSlot,
	status Status,
	priceTotal int64,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		spaceID:    spaceID,
		driverID:   driverID,
		productID:  productID,
		vehicle:    vehicle,
		slot:       slot,
		status:     status,
		priceTotal: priceTotal,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) SpaceID() uuid.UUID       { return r.spaceID }
func (r *Reservation) DriverID() uuid.UUID      { return r.driverID }
func (r *Reservation) ProductID() uuid.UUID     { return r.productID }
func (r *Reservation) Vehicle() VehicleSnapshot { return r.vehicle }
func (r *Reservation) Slot() TimeSlot           { return r.slot }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) PriceTotal() int64        { return r.priceTotal }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }

func (r *Reservation) IsActive() bool { return r.status.IsActive() }

// Confirm moves PENDING to CONFIRMED. The caller must additionally run the
// transition through the storage exclusion guard; this method only enforces
// the state machine.
func (r *Reservation) Confirm() error {
	if r.status != StatusPending {
		return ErrInvalidStateTransition
	}
	r.status = StatusConfirmed
	return nil
}

// Cancel moves any active reservation to CANCELED. CANCELED and COMPLETED
// are sinks.
func (r *Reservation) Cancel() error {
	if !r.status.IsActive() {
		return ErrInvalidStateTransition
	}
	r.status = StatusCanceled
	return nil
}

// Reject is the host declining a request; only PENDING can be rejected.
func (r *Reservation) Reject() error {
	if r.status != StatusPending {
		return ErrInvalidStateTransition
	}
	r.status = StatusCanceled
	return nil
}

// CancelableByDriverAt enforces the driver-side cutoff: cancellation must
// happen at least `window` before the slot starts.
func (r *Reservation) CancelableByDriverAt(now time.Time, window time.Duration) error {
	if r.slot.Start().Sub(now) < window {
		return ErrCancellationWindowClosed
	}
	return nil
}
