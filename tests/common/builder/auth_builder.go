//go:build unit || e2e

package builder

import (
	reqdto "parkspace/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	Name     string
	Role     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "driver@example.com",
		Password: "password123",
		Name:     "Test Driver",
		Role:     "DRIVER",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		Name:     a.Name,
		Role:     a.Role,
	}
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func NewVehicleRequest() reqdto.CreateVehicleRequest {
	return reqdto.CreateVehicleRequest{
		CarNumber: "12GA3456",
		CarModel:  "Ioniq 5",
	}
}
