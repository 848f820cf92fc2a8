package request

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,max=100"`
	Role     string `json:"role" binding:"required,oneof=HOST DRIVER"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type CreateVehicleRequest struct {
	CarNumber string `json:"car_number" binding:"required,max=20"`
	CarModel  string `json:"car_model" binding:"omitempty,max=100"`
}
