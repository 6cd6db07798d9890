package coupon

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType enumerates the supported coupon discount strategies.
type DiscountType string

const (
	// DiscountPercentage applies a percentage of the order subtotal,
	// optionally clamped to MaxDiscountAmount.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed applies a flat currency amount.
	DiscountFixed DiscountType = "fixed"
)

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountFixed:
		return true
	default:
		return false
	}
}

// Coupon is a snapshot of a coupon row as read from storage. Evaluate never
// mutates it; UsedCount is incremented by the storage layer on redemption.
type Coupon struct {
	ID                uuid.UUID
	Code              string
	Description       *string
	DiscountType      DiscountType
	DiscountValue     decimal.Decimal
	MinOrderAmount    decimal.Decimal
	MaxDiscountAmount *decimal.Decimal
	ValidFrom         *time.Time
	ValidUntil        *time.Time
	UsageLimit        int32
	UsedCount         int32
	IsActive          bool
	ForSpecificUser   bool
	UserID            *uuid.UUID
	CreatedBy         *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsUsableBy reports whether the coupon is currently redeemable by the given
// user, ignoring any order amount. Used for the "my coupons" listings.
func (c *Coupon) IsUsableBy(userID uuid.UUID, now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return false
	}
	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return false
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return false
	}
	if c.ForSpecificUser {
		return c.UserID != nil && *c.UserID == userID
	}
	return true
}
