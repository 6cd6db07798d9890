//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"tour-booking-api/internal/domain/coupon"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evalNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// validCoupon returns a coupon that passes every check at evalNow.
func validCoupon(mutate func(*coupon.Coupon)) coupon.Coupon {
	c := coupon.Coupon{
		ID:            uuid.New(),
		Code:          "SUMMER2026",
		DiscountType:  coupon.DiscountPercentage,
		DiscountValue: dec("10"),
		IsActive:      true,
	}
	if mutate != nil {
		mutate(&c)
	}
	return c
}

func TestEvaluate_RejectionOrder(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name       string
		mutate     func(*coupon.Coupon)
		order      decimal.Decimal
		userID     *uuid.UUID
		wantReason coupon.Reason
	}{
		{
			name: "valid_from in the future",
			mutate: func(c *coupon.Coupon) {
				c.ValidFrom = timePtr(evalNow.Add(time.Hour))
			},
			order:      dec("1000"),
			wantReason: coupon.ReasonNotYetActive,
		},
		{
			name: "valid_until in the past",
			mutate: func(c *coupon.Coupon) {
				c.ValidUntil = timePtr(evalNow.Add(-time.Hour))
			},
			order:      dec("1000"),
			wantReason: coupon.ReasonExpired,
		},
		{
			name: "usage limit exhausted",
			mutate: func(c *coupon.Coupon) {
				c.UsageLimit = 5
				c.UsedCount = 5
			},
			order:      dec("1000"),
			wantReason: coupon.ReasonUsageLimitReached,
		},
		{
			name: "used count past the limit",
			mutate: func(c *coupon.Coupon) {
				c.UsageLimit = 5
				c.UsedCount = 7
			},
			order:      dec("1000"),
			wantReason: coupon.ReasonUsageLimitReached,
		},
		{
			name: "order below minimum",
			mutate: func(c *coupon.Coupon) {
				c.MinOrderAmount = dec("500")
			},
			order:      dec("499.99"),
			wantReason: coupon.ReasonBelowMinimumOrder,
		},
		{
			name: "personal coupon for another user",
			mutate: func(c *coupon.Coupon) {
				c.ForSpecificUser = true
				c.UserID = &otherID
			},
			order:      dec("1000"),
			userID:     &userID,
			wantReason: coupon.ReasonWrongUser,
		},
		{
			name: "personal coupon with anonymous requester",
			mutate: func(c *coupon.Coupon) {
				c.ForSpecificUser = true
				c.UserID = &otherID
			},
			order:      dec("1000"),
			wantReason: coupon.ReasonWrongUser,
		},
		{
			name: "not-yet-active wins over exhausted usage limit",
			mutate: func(c *coupon.Coupon) {
				c.ValidFrom = timePtr(evalNow.Add(time.Hour))
				c.UsageLimit = 1
				c.UsedCount = 1
			},
			order:      dec("1000"),
			wantReason: coupon.ReasonNotYetActive,
		},
		{
			name: "expired wins over minimum order",
			mutate: func(c *coupon.Coupon) {
				c.ValidUntil = timePtr(evalNow.Add(-time.Hour))
				c.MinOrderAmount = dec("5000")
			},
			order:      dec("100"),
			wantReason: coupon.ReasonExpired,
		},
		{
			name: "usage limit wins over wrong user",
			mutate: func(c *coupon.Coupon) {
				c.UsageLimit = 2
				c.UsedCount = 2
				c.ForSpecificUser = true
				c.UserID = &otherID
			},
			order:      dec("1000"),
			userID:     &userID,
			wantReason: coupon.ReasonUsageLimitReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := coupon.Evaluate(validCoupon(tt.mutate), evalNow, tt.order, tt.userID)
			require.False(t, res.Accepted())
			assert.Equal(t, tt.wantReason, res.Rejection.Reason)
		})
	}
}

func TestEvaluate_Boundaries(t *testing.T) {
	t.Run("evaluation exactly at valid_from accepts", func(t *testing.T) {
		c := validCoupon(func(c *coupon.Coupon) {
			c.ValidFrom = timePtr(evalNow)
		})
		res := coupon.Evaluate(c, evalNow, dec("100"), nil)
		assert.True(t, res.Accepted())
	})

	t.Run("evaluation exactly at valid_until accepts", func(t *testing.T) {
		c := validCoupon(func(c *coupon.Coupon) {
			c.ValidUntil = timePtr(evalNow)
		})
		res := coupon.Evaluate(c, evalNow, dec("100"), nil)
		assert.True(t, res.Accepted())
	})

	t.Run("one nanosecond past valid_until expires", func(t *testing.T) {
		c := validCoupon(func(c *coupon.Coupon) {
			c.ValidUntil = timePtr(evalNow)
		})
		res := coupon.Evaluate(c, evalNow.Add(time.Nanosecond), dec("100"), nil)
		require.False(t, res.Accepted())
		assert.Equal(t, coupon.ReasonExpired, res.Rejection.Reason)
	})

	t.Run("order exactly at minimum accepts", func(t *testing.T) {
		c := validCoupon(func(c *coupon.Coupon) {
			c.MinOrderAmount = dec("500")
		})
		res := coupon.Evaluate(c, evalNow, dec("500"), nil)
		assert.True(t, res.Accepted())
	})

	t.Run("rejection carries the required minimum", func(t *testing.T) {
		c := validCoupon(func(c *coupon.Coupon) {
			c.MinOrderAmount = dec("500")
		})
		res := coupon.Evaluate(c, evalNow, dec("499"), nil)
		require.False(t, res.Accepted())
		assert.Equal(t, coupon.ReasonBelowMinimumOrder, res.Rejection.Reason)
		assert.True(t, res.Rejection.MinOrderAmount.Equal(dec("500")))
	})

	t.Run("personal coupon accepts its own user", func(t *testing.T) {
		userID := uuid.New()
		c := validCoupon(func(c *coupon.Coupon) {
			c.ForSpecificUser = true
			c.UserID = &userID
		})
		res := coupon.Evaluate(c, evalNow, dec("100"), &userID)
		assert.True(t, res.Accepted())
	})
}

func TestEvaluate_UnlimitedUsage(t *testing.T) {
	// usage_limit = 0 means unlimited regardless of used_count
	for _, used := range []int32{0, 1, 1000, 1 << 30} {
		c := validCoupon(func(c *coupon.Coupon) {
			c.UsageLimit = 0
			c.UsedCount = used
		})
		res := coupon.Evaluate(c, evalNow, dec("100"), nil)
		assert.True(t, res.Accepted(), "used_count=%d", used)
	}
}

func TestEvaluate_Discounts(t *testing.T) {
	t.Run("percentage without cap", func(t *testing.T) {
		c := validCoupon(func(c *coupon.Coupon) {
			c.DiscountType = coupon.DiscountPercentage
			c.DiscountValue = dec("15")
		})
		res := coupon.Evaluate(c, evalNow, dec("200"), nil)
		require.True(t, res.Accepted())
		assert.True(t, res.DiscountAmount.Equal(dec("30")))
		assert.True(t, res.FinalAmount.Equal(dec("170")))
	})

	t.Run("percentage clamped to cap", func(t *testing.T) {
		// Scenario: 10% of 10000 = 1000, clamped to 500
		c := validCoupon(func(c *coupon.Coupon) {
			c.DiscountType = coupon.DiscountPercentage
			c.DiscountValue = dec("10")
			c.MinOrderAmount = dec("1000")
			c.MaxDiscountAmount = decPtr("500")
		})
		res := coupon.Evaluate(c, evalNow, dec("10000"), nil)
		require.True(t, res.Accepted())
		assert.True(t, res.DiscountAmount.Equal(dec("500")))
		assert.True(t, res.FinalAmount.Equal(dec("9500")))
	})

	t.Run("percentage below cap is not clamped", func(t *testing.T) {
		c := validCoupon(func(c *coupon.Coupon) {
			c.DiscountType = coupon.DiscountPercentage
			c.DiscountValue = dec("10")
			c.MaxDiscountAmount = decPtr("500")
		})
		res := coupon.Evaluate(c, evalNow, dec("3000"), nil)
		require.True(t, res.Accepted())
		assert.True(t, res.DiscountAmount.Equal(dec("300")))
	})

	t.Run("capped discount never exceeds the cap", func(t *testing.T) {
		cap := dec("250")
		c := validCoupon(func(c *coupon.Coupon) {
			c.DiscountType = coupon.DiscountPercentage
			c.DiscountValue = dec("25")
			c.MaxDiscountAmount = &cap
		})
		for _, order := range []string{"0", "100", "999.99", "1000", "1000.01", "50000"} {
			res := coupon.Evaluate(c, evalNow, dec(order), nil)
			require.True(t, res.Accepted())
			assert.True(t, res.DiscountAmount.LessThanOrEqual(cap), "order=%s", order)
		}
	})

	t.Run("fixed discount is independent of the order amount", func(t *testing.T) {
		c := validCoupon(func(c *coupon.Coupon) {
			c.DiscountType = coupon.DiscountFixed
			c.DiscountValue = dec("300")
		})
		for _, order := range []string{"100", "300", "10000"} {
			res := coupon.Evaluate(c, evalNow, dec(order), nil)
			require.True(t, res.Accepted())
			assert.True(t, res.DiscountAmount.Equal(dec("300")), "order=%s", order)
		}
	})

	t.Run("fixed discount is not clamped to the order total", func(t *testing.T) {
		// A 300 fixed discount on a 100 order yields a -200 final amount;
		// whether that is permitted is the caller's policy.
		c := validCoupon(func(c *coupon.Coupon) {
			c.DiscountType = coupon.DiscountFixed
			c.DiscountValue = dec("300")
		})
		res := coupon.Evaluate(c, evalNow, dec("100"), nil)
		require.True(t, res.Accepted())
		assert.True(t, res.DiscountAmount.Equal(dec("300")))
		assert.True(t, res.FinalAmount.Equal(dec("-200")))
	})

	t.Run("percentage math stays exact on awkward amounts", func(t *testing.T) {
		c := validCoupon(func(c *coupon.Coupon) {
			c.DiscountType = coupon.DiscountPercentage
			c.DiscountValue = dec("7.5")
		})
		res := coupon.Evaluate(c, evalNow, dec("1234.56"), nil)
		require.True(t, res.Accepted())
		assert.True(t, res.DiscountAmount.Equal(dec("92.592")))
		assert.True(t, res.FinalAmount.Equal(dec("1141.968")))
	})
}

func TestEvaluate_Idempotent(t *testing.T) {
	userID := uuid.New()
	c := validCoupon(func(c *coupon.Coupon) {
		c.DiscountType = coupon.DiscountPercentage
		c.DiscountValue = dec("12.5")
		c.MinOrderAmount = dec("50")
		c.MaxDiscountAmount = decPtr("400")
		c.ValidFrom = timePtr(evalNow.Add(-time.Hour))
		c.ValidUntil = timePtr(evalNow.Add(time.Hour))
		c.UsageLimit = 10
		c.UsedCount = 3
	})

	first := coupon.Evaluate(c, evalNow, dec("800"), &userID)
	second := coupon.Evaluate(c, evalNow, dec("800"), &userID)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Evaluate is not deterministic (-first +second):\n%s", diff)
	}
	require.True(t, first.Accepted())
	assert.True(t, first.DiscountAmount.Equal(dec("100")))
	assert.True(t, first.FinalAmount.Equal(dec("700")))
}
