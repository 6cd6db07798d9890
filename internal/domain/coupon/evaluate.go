package coupon

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reason identifies why a coupon was rejected during evaluation.
type Reason string

const (
	ReasonNotYetActive      Reason = "not_yet_active"
	ReasonExpired           Reason = "expired"
	ReasonUsageLimitReached Reason = "usage_limit_reached"
	ReasonBelowMinimumOrder Reason = "below_minimum_order"
	ReasonWrongUser         Reason = "wrong_user"
)

// Rejection is an expected, user-facing outcome, not an error. MinOrderAmount
// carries the required floor when Reason is ReasonBelowMinimumOrder.
type Rejection struct {
	Reason         Reason
	MinOrderAmount decimal.Decimal
}

// Result is the tagged outcome of Evaluate. A nil Rejection means the coupon
// was accepted and the discount fields are populated.
type Result struct {
	Rejection      *Rejection
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
}

func (r Result) Accepted() bool {
	return r.Rejection == nil
}

func rejected(reason Reason) Result {
	return Result{Rejection: &Rejection{Reason: reason}}
}

var oneHundred = decimal.NewFromInt(100)

// Evaluate checks a coupon against the evaluation time, its usage state, the
// order subtotal and the requesting user, and computes the resulting discount.
//
// The coupon is assumed to have been looked up by canonical code with
// is_active = true; a missing or inactive coupon is the caller's NotFound.
//
// Checks run in a fixed order so that the first failing rule determines the
// reported reason when several fail at once:
//
//  1. valid_from in the future      -> NotYetActive
//  2. valid_until in the past       -> Expired
//  3. usage limit exhausted         -> UsageLimitReached (0 = unlimited)
//  4. subtotal below minimum order  -> BelowMinimumOrder (inclusive floor)
//  5. bound to a different user     -> WrongUser
//
// Both window bounds are inclusive: evaluation exactly at valid_from or
// valid_until accepts. A fixed discount is not clamped to the order subtotal,
// so the final amount can go negative; whether to permit that is the caller's
// policy.
//
// Evaluate is pure: no clock, no I/O, no mutation. The used_count increment
// on redemption is a separate write owned by the storage layer.
func Evaluate(c Coupon, now time.Time, orderAmount decimal.Decimal, requestingUserID *uuid.UUID) Result {
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return rejected(ReasonNotYetActive)
	}
	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return rejected(ReasonExpired)
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return rejected(ReasonUsageLimitReached)
	}
	if c.MinOrderAmount.IsPositive() && orderAmount.LessThan(c.MinOrderAmount) {
		return Result{Rejection: &Rejection{
			Reason:         ReasonBelowMinimumOrder,
			MinOrderAmount: c.MinOrderAmount,
		}}
	}
	if c.ForSpecificUser {
		if c.UserID == nil || requestingUserID == nil || *c.UserID != *requestingUserID {
			return rejected(ReasonWrongUser)
		}
	}

	discount := c.DiscountValue
	if c.DiscountType == DiscountPercentage {
		discount = orderAmount.Mul(c.DiscountValue).Div(oneHundred)
		if c.MaxDiscountAmount != nil && discount.GreaterThan(*c.MaxDiscountAmount) {
			discount = *c.MaxDiscountAmount
		}
	}

	return Result{
		DiscountAmount: discount,
		FinalAmount:    orderAmount.Sub(discount),
	}
}
