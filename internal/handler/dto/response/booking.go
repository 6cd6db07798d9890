package response

import (
	"time"

	"tour-booking-api/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	UserName       *string         `json:"user_name,omitempty"`
	UserEmail      *string         `json:"user_email,omitempty"`
	TourID         uuid.UUID       `json:"tour_id"`
	TourName       *string         `json:"tour_name,omitempty"`
	CouponID       *uuid.UUID      `json:"coupon_id,omitempty"`
	TravelersCount int32           `json:"travelers_count"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Status         string          `json:"status"`
	BookingDate    time.Time       `json:"booking_date"`
	Notes          *string         `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func FromBooking(b booking.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		UserID:         b.UserID,
		UserName:       b.UserName,
		UserEmail:      b.UserEmail,
		TourID:         b.TourID,
		TourName:       b.TourName,
		CouponID:       b.CouponID,
		TravelersCount: b.TravelersCount,
		Subtotal:       b.Subtotal,
		DiscountAmount: b.DiscountAmount,
		TotalPrice:     b.TotalPrice,
		Status:         string(b.Status),
		BookingDate:    b.BookingDate,
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
