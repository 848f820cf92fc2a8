package response

import (
	"time"

	"parkspace/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type VehicleResponse struct {
	ID        uuid.UUID `json:"id"`
	CarNumber string    `json:"carNumber"`
	CarModel  string    `json:"carModel"`
}

func FromUserView(v *queries.AuthorizedUserView) UserResponse {
	return UserResponse{
		ID:        v.ID,
		Email:     v.Email,
		Name:      v.Name,
		Role:      v.Role,
		CreatedAt: v.CreatedAt,
	}
}

func FromVehicleView(v *queries.VehicleView) VehicleResponse {
	return VehicleResponse{
		ID:        v.ID,
		CarNumber: v.CarNumber,
		CarModel:  v.CarModel,
	}
}
