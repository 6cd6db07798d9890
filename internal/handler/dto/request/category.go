package request

import "tour-booking-api/internal/usecase"

type CategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

func (r CategoryRequest) ToInput() usecase.CategoryInput {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return usecase.CategoryInput{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		IsActive:    isActive,
	}
}
