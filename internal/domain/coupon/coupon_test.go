//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"tour-booking-api/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsUsableBy(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name   string
		mutate func(*coupon.Coupon)
		want   bool
		// Evaluate assumes the lookup already filtered on is_active, so the
		// inactive case has no Evaluate counterpart.
		skipEvaluate bool
	}{
		{
			name: "active public coupon",
			want: true,
		},
		{
			name:         "inactive",
			mutate:       func(c *coupon.Coupon) { c.IsActive = false },
			want:         false,
			skipEvaluate: true,
		},
		{
			name:   "not yet active",
			mutate: func(c *coupon.Coupon) { c.ValidFrom = timePtr(evalNow.Add(time.Hour)) },
			want:   false,
		},
		{
			name:   "expired",
			mutate: func(c *coupon.Coupon) { c.ValidUntil = timePtr(evalNow.Add(-time.Hour)) },
			want:   false,
		},
		{
			name:   "window boundary is inclusive",
			mutate: func(c *coupon.Coupon) { c.ValidUntil = timePtr(evalNow) },
			want:   true,
		},
		{
			name: "usage limit exhausted",
			mutate: func(c *coupon.Coupon) {
				c.UsageLimit = 5
				c.UsedCount = 5
			},
			want: false,
		},
		{
			name: "zero limit is unlimited",
			mutate: func(c *coupon.Coupon) {
				c.UsageLimit = 0
				c.UsedCount = 1000
			},
			want: true,
		},
		{
			name: "personal coupon for this user",
			mutate: func(c *coupon.Coupon) {
				c.ForSpecificUser = true
				c.UserID = &userID
			},
			want: true,
		},
		{
			name: "personal coupon for another user",
			mutate: func(c *coupon.Coupon) {
				c.ForSpecificUser = true
				c.UserID = &otherID
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCoupon(tt.mutate)
			assert.Equal(t, tt.want, c.IsUsableBy(userID, evalNow))
		})
	}

	// IsUsableBy and Evaluate share the usability rules; an unbounded order
	// amount takes the minimum-order check out of play so the two must agree.
	t.Run("agrees with Evaluate for every case", func(t *testing.T) {
		for _, tt := range tests {
			if tt.skipEvaluate {
				continue
			}
			c := validCoupon(tt.mutate)
			result := coupon.Evaluate(c, evalNow, dec("1000000"), &userID)
			assert.Equal(t, tt.want, result.Accepted(), tt.name)
		}
	})
}
