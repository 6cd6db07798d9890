package response

import (
	"time"

	"tour-booking-api/internal/domain/coupon"
	"tour-booking-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponResponse struct {
	ID                uuid.UUID        `json:"id"`
	Code              string           `json:"code"`
	Description       *string          `json:"description,omitempty"`
	DiscountType      string           `json:"discount_type"`
	DiscountValue     decimal.Decimal  `json:"discount_value"`
	MinOrderAmount    decimal.Decimal  `json:"min_order_amount"`
	MaxDiscountAmount *decimal.Decimal `json:"max_discount_amount,omitempty"`
	ValidFrom         *time.Time       `json:"valid_from,omitempty"`
	ValidUntil        *time.Time       `json:"valid_until,omitempty"`
	UsageLimit        int32            `json:"usage_limit"`
	UsedCount         int32            `json:"used_count"`
	IsActive          bool             `json:"is_active"`
	ForSpecificUser   bool             `json:"for_specific_user"`
	UserID            *uuid.UUID       `json:"user_id,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func FromCoupon(c coupon.Coupon) CouponResponse {
	return CouponResponse{
		ID:                c.ID,
		Code:              c.Code,
		Description:       c.Description,
		DiscountType:      string(c.DiscountType),
		DiscountValue:     c.DiscountValue,
		MinOrderAmount:    c.MinOrderAmount,
		MaxDiscountAmount: c.MaxDiscountAmount,
		ValidFrom:         c.ValidFrom,
		ValidUntil:        c.ValidUntil,
		UsageLimit:        c.UsageLimit,
		UsedCount:         c.UsedCount,
		IsActive:          c.IsActive,
		ForSpecificUser:   c.ForSpecificUser,
		UserID:            c.UserID,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func FromCoupons(cs []coupon.Coupon) []CouponResponse {
	out := make([]CouponResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCoupon(c))
	}
	return out
}

// ValidatedCoupon is the coupon projection inside a successful validation.
type ValidatedCoupon struct {
	ID             uuid.UUID       `json:"id"`
	Code           string          `json:"code"`
	Description    *string         `json:"description,omitempty"`
	DiscountType   string          `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

type CouponValidationResponse struct {
	Coupon         ValidatedCoupon `json:"coupon"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
}

func FromCouponValidation(rm *usecase.CouponValidationRM) CouponValidationResponse {
	return CouponValidationResponse{
		Coupon: ValidatedCoupon{
			ID:             rm.Coupon.ID,
			Code:           rm.Coupon.Code,
			Description:    rm.Coupon.Description,
			DiscountType:   string(rm.Coupon.DiscountType),
			DiscountValue:  rm.Coupon.DiscountValue,
			DiscountAmount: rm.DiscountAmount,
		},
		DiscountAmount: rm.DiscountAmount,
		FinalAmount:    rm.FinalAmount,
	}
}
