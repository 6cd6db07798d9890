package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status enumerates the booking lifecycle states.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Booking is a snapshot of a booking row as read from storage. The joined
// user/tour display fields are populated by list queries only.
type Booking struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	TourID         uuid.UUID
	CouponID       *uuid.UUID
	TravelersCount int32
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalPrice     decimal.Decimal
	Status         Status
	BookingDate    time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	UserName  *string
	UserEmail *string
	TourName  *string
}
