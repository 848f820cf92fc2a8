package request

import (
	"parkspace/internal/domain/space"

	"github.com/google/uuid"
)

type AvailabilityRuleRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type ProductRequest struct {
	ID    *uuid.UUID `json:"id,omitempty"`
	Type  string     `json:"type" binding:"required,oneof=HOURLY DAY_PASS"`
	Name  string     `json:"name" binding:"omitempty,max=100"`
	Price int64      `json:"price" binding:"min=0"`
}

type CreateSpaceRequest struct {
	Title          string                    `json:"title" binding:"required,max=100"`
	Description    string                    `json:"description" binding:"omitempty,max=1000"`
	Address        string                    `json:"address" binding:"omitempty,max=255"`
	Lat            float64                   `json:"lat" binding:"min=-90,max=90"`
	Lng            float64                   `json:"lng" binding:"min=-180,max=180"`
	IsAutoApproval bool                      `json:"is_auto_approval"`
	Rules          []AvailabilityRuleRequest `json:"availability_rules" binding:"dive"`
	Products       []ProductRequest          `json:"products" binding:"dive"`
}

type UpdateSpaceRequest struct {
	Title          string                    `json:"title" binding:"required,max=100"`
	Description    string                    `json:"description" binding:"omitempty,max=1000"`
	Address        string                    `json:"address" binding:"omitempty,max=255"`
	Lat            float64                   `json:"lat" binding:"min=-90,max=90"`
	Lng            float64                   `json:"lng" binding:"min=-180,max=180"`
	IsAutoApproval bool                      `json:"is_auto_approval"`
	Rules          []AvailabilityRuleRequest `json:"availability_rules" binding:"dive"`
	Products       []ProductRequest          `json:"products" binding:"dive"`
}

func (r AvailabilityRuleRequest) ToDomain(spaceID uuid.UUID) (space.AvailabilityRule, error) {
	day, err := space.NewWeekday(r.DayOfWeek)
	if err != nil {
		return space.AvailabilityRule{}, err
	}
	start, err := space.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return space.AvailabilityRule{}, err
	}
	end, err := space.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return space.AvailabilityRule{}, err
	}
	return space.NewAvailabilityRule(spaceID, day, start, end)
}

func (r ProductRequest) ToPatch() space.ProductPatch {
	return space.ProductPatch{
		ID:    r.ID,
		Type:  space.ProductType(r.Type),
		Name:  r.Name,
		Price: r.Price,
	}
}
