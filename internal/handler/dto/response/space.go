package response

import (
	"time"

	"parkspace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SpaceListResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Address        string    `json:"address"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	IsAutoApproval bool      `json:"isAutoApproval"`
	MinPrice       *int64    `json:"minPrice,omitempty"`
}

type AvailabilityRuleResponse struct {
	ID        uuid.UUID `json:"id"`
	DayOfWeek int       `json:"dayOfWeek"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
}

type ProductResponse struct {
	ID       uuid.UUID `json:"id"`
	Type     string    `json:"type"`
	Name     string    `json:"name"`
	Price    int64     `json:"price"`
	IsActive bool      `json:"isActive"`
}

type SpaceDetailResponse struct {
	ID             uuid.UUID                  `json:"id"`
	HostID         uuid.UUID                  `json:"hostId"`
	Title          string                     `json:"title"`
	Description    string                     `json:"description"`
	Address        string                     `json:"address"`
	Lat            float64                    `json:"lat"`
	Lng            float64                    `json:"lng"`
	IsActive       bool                       `json:"isActive"`
	IsAutoApproval bool                       `json:"isAutoApproval"`
	Rules          []AvailabilityRuleResponse `json:"availabilityRules"`
	Products       []ProductResponse          `json:"products"`
	CreatedAt      time.Time                  `json:"createdAt"`
	UpdatedAt      time.Time                  `json:"updatedAt"`
}

type DeactivateSpaceResponse struct {
	CanceledReservations int64 `json:"canceledReservations"`
}

func FromSpaceListItem(v *queries.SpaceListItem) *SpaceListResponse {
	var resp SpaceListResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromSpaceDetailView(v *queries.SpaceDetailView) *SpaceDetailResponse {
	var resp SpaceDetailResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
