package request

import "tour-booking-api/internal/usecase"

type CreateUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password" binding:"required,min=8"`
	Role     string  `json:"role" binding:"required,oneof=customer admin"`
}

func (r CreateUserRequest) ToInput() usecase.AdminUserInput {
	return usecase.AdminUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
		Role:     r.Role,
	}
}

type UpdateUserRequest struct {
	Name   string  `json:"name" binding:"required"`
	Email  string  `json:"email" binding:"required,email"`
	Phone  *string `json:"phone"`
	Role   string  `json:"role" binding:"required,oneof=customer admin"`
	Status string  `json:"status" binding:"required,oneof=active blocked"`
}

func (r UpdateUserRequest) ToInput() usecase.AdminUserInput {
	return usecase.AdminUserInput{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Role:   r.Role,
		Status: r.Status,
	}
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
