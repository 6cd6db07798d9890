package response

import (
	"time"

	"tour-booking-api/internal/domain/tour"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TourResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName *string         `json:"category_name,omitempty"`
	StartDate    *time.Time      `json:"start_date,omitempty"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
	DurationDays int32           `json:"duration_days"`
	MaxTravelers int32           `json:"max_travelers"`
	ImageURL     string          `json:"image_url"`
	Included     []string        `json:"included"`
	NotIncluded  []string        `json:"not_included"`
	IsPopular    bool            `json:"is_popular"`
	IsDiscounted bool            `json:"is_discounted"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func FromTour(t tour.Tour) TourResponse {
	return TourResponse{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		Price:        t.Price,
		CategoryID:   t.CategoryID,
		CategoryName: t.CategoryName,
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		DurationDays: t.DurationDays,
		MaxTravelers: t.MaxTravelers,
		ImageURL:     t.ImageURL,
		Included:     t.Included,
		NotIncluded:  t.NotIncluded,
		IsPopular:    t.IsPopular,
		IsDiscounted: t.IsDiscounted,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func FromTours(ts []tour.Tour) []TourResponse {
	out := make([]TourResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTour(t))
	}
	return out
}
