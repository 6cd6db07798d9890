package request

import (
	"time"

	"tour-booking-api/internal/usecase"

	"github.com/google/uuid"
)

type BookingRequest struct {
	UserID         uuid.UUID  `json:"user_id" binding:"required"`
	TourID         uuid.UUID  `json:"tour_id" binding:"required"`
	CouponCode     *string    `json:"coupon_code"`
	TravelersCount int32      `json:"travelers_count" binding:"required,min=1"`
	Status         string     `json:"status"`
	BookingDate    *time.Time `json:"booking_date"`
	Notes          *string    `json:"notes"`
}

func (r BookingRequest) ToInput() usecase.BookingInput {
	return usecase.BookingInput{
		UserID:         r.UserID,
		TourID:         r.TourID,
		CouponCode:     r.CouponCode,
		TravelersCount: r.TravelersCount,
		Status:         r.Status,
		BookingDate:    r.BookingDate,
		Notes:          r.Notes,
	}
}

type BookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}
