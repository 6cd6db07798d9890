package response

import (
	"time"

	"tour-booking-api/internal/domain/category"

	"github.com/google/uuid"
)

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromCategory(c category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromCategories(cs []category.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCategory(c))
	}
	return out
}
