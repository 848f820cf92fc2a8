package space

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle        = errors.New("space title cannot be empty")
	ErrTitleTooLong      = errors.New("space title is too long (max 100 characters)")
	ErrRuleOrdering      = errors.New("rule end time must be after start time")
	ErrNegativePrice     = errors.New("product price cannot be negative")
	ErrInvalidProduct    = errors.New("invalid product type")
	ErrSpaceNotActive    = errors.New("space is not active")
	ErrProductNotForSale = errors.New("product is not active")
)

const MaxTitleLength = 100

type ProductType string

const (
	ProductHourly  ProductType = "HOURLY"
	ProductDayPass ProductType = "DAY_PASS"
)

func (t ProductType) IsValid() bool {
	switch t {
	case ProductHourly, ProductDayPass:
		return true
	default:
		return false
	}
}

func NewProductType(s string) (ProductType, error) {
	t := ProductType(s)
	if !t.IsValid() {
		return "", ErrInvalidProduct
	}
	return t, nil
}

type Space struct {
	id             uuid.UUID
	hostID         uuid.UUID
	title          string
	description    string
	address        string
	coords         Coordinates
	isActive       bool
	isAutoApproval bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewSpace(hostID uuid.UUID, title, description, address string, coords Coordinates, isAutoApproval bool) (*Space, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	return &Space{
		id:             uuid.New(),
		hostID:         hostID,
		title:          title,
		description:    description,
		address:        address,
		coords:         coords,
		isActive:       true,
		isAutoApproval: isAutoApproval,
	}, nil
}

func ReconstructSpace(id, hostID uuid.UUID, title, description, address string, coords Coordinates, isActive, isAutoApproval bool, createdAt, updatedAt time.Time) *Space {
	return &Space{
		id:             id,
		hostID:         hostID,
		title:          title,
		description:    description,
		address:        address,
		coords:         coords,
		isActive:       isActive,
		isAutoApproval: isAutoApproval,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (s *Space) ID() uuid.UUID        { return s.id }
func (s *Space) HostID() uuid.UUID    { return s.hostID }
func (s *Space) Title() string        { return s.title }
func (s *Space) Description() string  { return s.description }
func (s *Space) Address() string      { return s.address }
func (s *Space) Coords() Coordinates  { return s.coords }
func (s *Space) IsActive() bool       { return s.isActive }
func (s *Space) IsAutoApproval() bool { return s.isAutoApproval }
func (s *Space) CreatedAt() time.Time { return s.createdAt }
func (s *Space) UpdatedAt() time.Time { return s.updatedAt }

func (s *Space) Deactivate() { s.isActive = false }

// AvailabilityRule is one open window for a weekday. Multiple rules on the
// same weekday are alternatives: a request matches if any single rule fully
// contains it.
type AvailabilityRule struct {
	ID        uuid.UUID
	SpaceID   uuid.UUID
	DayOfWeek Weekday
	StartTime TimeOfDay
	EndTime   TimeOfDay
}

func NewAvailabilityRule(spaceID uuid.UUID, day Weekday, start, end TimeOfDay) (AvailabilityRule, error) {
	if !start.Before(end) {
		return AvailabilityRule{}, ErrRuleOrdering
	}
	return AvailabilityRule{
		ID:        uuid.New(),
		SpaceID:   spaceID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}, nil
}

type Product struct {
	ID       uuid.UUID
	SpaceID  uuid.UUID
	Type     ProductType
	Name     string
	Price    int64
	IsActive bool
}

func NewProduct(spaceID uuid.UUID, productType ProductType, name string, price int64) (Product, error) {
	if !productType.IsValid() {
		return Product{}, ErrInvalidProduct
	}
	if price < 0 {
		return Product{}, ErrNegativePrice
	}
	return Product{
		ID:       uuid.New(),
		SpaceID:  spaceID,
		Type:     productType,
		Name:     name,
		Price:    price,
		IsActive: true,
	}, nil
}
