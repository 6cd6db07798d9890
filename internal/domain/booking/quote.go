package booking

import (
	"errors"
	"time"

	"tour-booking-api/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrInvalidTravelers = errors.New("travelers count must be positive")
)

// Quote is the priced outcome of a booking request. Every path that prices a
// booking (admin create, admin update, public coupon validation) goes through
// NewQuote so the arithmetic can never diverge.
type Quote struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalPrice     decimal.Decimal
}

// NewQuote prices a booking: tour price times traveler count, minus the coupon
// discount when a coupon is supplied and accepted. A rejected coupon returns
// the rejection untouched so callers can map it to their own surface.
func NewQuote(tourPrice decimal.Decimal, travelers int32, c *coupon.Coupon, now time.Time, userID *uuid.UUID) (Quote, *coupon.Rejection, error) {
	if travelers <= 0 {
		return Quote{}, nil, ErrInvalidTravelers
	}

	subtotal := tourPrice.Mul(decimal.NewFromInt32(travelers))
	if c == nil {
		return Quote{
			Subtotal:       subtotal,
			DiscountAmount: decimal.Zero,
			TotalPrice:     subtotal,
		}, nil, nil
	}

	result := coupon.Evaluate(*c, now, subtotal, userID)
	if !result.Accepted() {
		return Quote{}, result.Rejection, nil
	}

	return Quote{
		Subtotal:       subtotal,
		DiscountAmount: result.DiscountAmount,
		TotalPrice:     result.FinalAmount,
	}, nil, nil
}
