package request

import (
	"time"

	"tour-booking-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ValidateCouponRequest struct {
	Code        string          `json:"code" binding:"required"`
	OrderAmount decimal.Decimal `json:"order_amount" binding:"required"`
	// Admins may validate on behalf of another user.
	UserID *uuid.UUID `json:"user_id"`
}

type CouponRequest struct {
	Code              string           `json:"code" binding:"required"`
	Description       *string          `json:"description"`
	DiscountType      string           `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue     decimal.Decimal  `json:"discount_value"`
	MinOrderAmount    decimal.Decimal  `json:"min_order_amount"`
	MaxDiscountAmount *decimal.Decimal `json:"max_discount_amount"`
	ValidFrom         *time.Time       `json:"valid_from"`
	ValidUntil        *time.Time       `json:"valid_until"`
	UsageLimit        int32            `json:"usage_limit"`
	IsActive          *bool            `json:"is_active"`
	ForSpecificUser   bool             `json:"for_specific_user"`
	UserID            *uuid.UUID       `json:"user_id"`
}

func (r CouponRequest) ToInput() usecase.CouponInput {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return usecase.CouponInput{
		Code:              r.Code,
		Description:       r.Description,
		DiscountType:      r.DiscountType,
		DiscountValue:     r.DiscountValue,
		MinOrderAmount:    r.MinOrderAmount,
		MaxDiscountAmount: r.MaxDiscountAmount,
		ValidFrom:         r.ValidFrom,
		ValidUntil:        r.ValidUntil,
		UsageLimit:        r.UsageLimit,
		IsActive:          isActive,
		ForSpecificUser:   r.ForSpecificUser,
		UserID:            r.UserID,
	}
}
