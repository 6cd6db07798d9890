//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quoteNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewQuote(t *testing.T) {
	t.Run("no coupon charges the plain subtotal", func(t *testing.T) {
		q, rej, err := booking.NewQuote(dec("1500"), 3, nil, quoteNow, nil)
		require.NoError(t, err)
		require.Nil(t, rej)
		assert.True(t, q.Subtotal.Equal(dec("4500")))
		assert.True(t, q.DiscountAmount.IsZero())
		assert.True(t, q.TotalPrice.Equal(dec("4500")))
	})

	t.Run("accepted percentage coupon discounts the subtotal", func(t *testing.T) {
		c := &coupon.Coupon{
			ID:            uuid.New(),
			Code:          "SPRING20",
			DiscountType:  coupon.DiscountPercentage,
			DiscountValue: dec("20"),
			IsActive:      true,
		}
		q, rej, err := booking.NewQuote(dec("1000"), 2, c, quoteNow, nil)
		require.NoError(t, err)
		require.Nil(t, rej)
		assert.True(t, q.Subtotal.Equal(dec("2000")))
		assert.True(t, q.DiscountAmount.Equal(dec("400")))
		assert.True(t, q.TotalPrice.Equal(dec("1600")))
	})

	t.Run("minimum order is checked against the subtotal, not the unit price", func(t *testing.T) {
		c := &coupon.Coupon{
			ID:             uuid.New(),
			Code:           "BIGGROUP",
			DiscountType:   coupon.DiscountFixed,
			DiscountValue:  dec("500"),
			MinOrderAmount: dec("3000"),
			IsActive:       true,
		}
		// 1000 * 4 = 4000 clears the 3000 floor even though the unit price does not
		q, rej, err := booking.NewQuote(dec("1000"), 4, c, quoteNow, nil)
		require.NoError(t, err)
		require.Nil(t, rej)
		assert.True(t, q.TotalPrice.Equal(dec("3500")))
	})

	t.Run("rejected coupon surfaces the rejection", func(t *testing.T) {
		until := quoteNow.Add(-time.Hour)
		c := &coupon.Coupon{
			ID:            uuid.New(),
			Code:          "OLDCODE",
			DiscountType:  coupon.DiscountPercentage,
			DiscountValue: dec("10"),
			ValidUntil:    &until,
			IsActive:      true,
		}
		_, rej, err := booking.NewQuote(dec("1000"), 2, c, quoteNow, nil)
		require.NoError(t, err)
		require.NotNil(t, rej)
		assert.Equal(t, coupon.ReasonExpired, rej.Reason)
	})

	t.Run("non-positive travelers is an error", func(t *testing.T) {
		_, _, err := booking.NewQuote(dec("1000"), 0, nil, quoteNow, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidTravelers)

		_, _, err = booking.NewQuote(dec("1000"), -2, nil, quoteNow, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidTravelers)
	})
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "cancelled", "completed"} {
		st, err := booking.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, booking.Status(valid), st)
	}

	_, err := booking.NewStatus("archived")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}
