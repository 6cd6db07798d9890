package request

import (
	"time"

	"tour-booking-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TourRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  *string         `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   *uuid.UUID      `json:"category_id"`
	StartDate    *time.Time      `json:"start_date"`
	EndDate      *time.Time      `json:"end_date"`
	DurationDays int32           `json:"duration_days"`
	MaxTravelers int32           `json:"max_travelers"`
	ImageURL     string          `json:"image_url"`
	Included     []string        `json:"included"`
	NotIncluded  []string        `json:"not_included"`
	IsPopular    bool            `json:"is_popular"`
	IsDiscounted bool            `json:"is_discounted"`
	IsActive     *bool           `json:"is_active"`
}

func (r TourRequest) ToInput() usecase.TourInput {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return usecase.TourInput{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		CategoryID:   r.CategoryID,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		DurationDays: r.DurationDays,
		MaxTravelers: r.MaxTravelers,
		ImageURL:     r.ImageURL,
		Included:     r.Included,
		NotIncluded:  r.NotIncluded,
		IsPopular:    r.IsPopular,
		IsDiscounted: r.IsDiscounted,
		IsActive:     isActive,
	}
}
