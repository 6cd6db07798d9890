package usecase

import (
	"context"
	"errors"
	"time"

	"tour-booking-api/internal/domain/adminlog"
	"tour-booking-api/internal/domain/coupon"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/clock"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponNotFound     = errors.New("coupon not found")
	ErrCouponCodeTaken    = errors.New("coupon code already exists")
	ErrCouponInUse        = errors.New("coupon has already been used and cannot be deleted")
	ErrCouponTargetUser   = errors.New("target user for personal coupon not found")
	ErrInvalidCouponInput = errors.New("invalid coupon data")
)

// CouponStatusFilter narrows admin coupon listings.
type CouponStatusFilter string

const (
	CouponStatusAll      CouponStatusFilter = "all"
	CouponStatusActive   CouponStatusFilter = "active"
	CouponStatusExpired  CouponStatusFilter = "expired"
	CouponStatusInactive CouponStatusFilter = "inactive"
)

type CouponListFilters struct {
	shared.PageParams
	Search string
	Status CouponStatusFilter
}

type CouponRepository interface {
	FindActiveByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	List(ctx context.Context, filters CouponListFilters, now time.Time) (shared.Page[coupon.Coupon], error)
	AvailableForUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]coupon.Coupon, error)
	PersonalForUser(ctx context.Context, userID uuid.UUID) ([]coupon.Coupon, error)
	CodeExists(ctx context.Context, code coupon.Code, excludeID *uuid.UUID) (bool, error)
	Create(ctx context.Context, c *coupon.Coupon) (*coupon.Coupon, error)
	Update(ctx context.Context, c *coupon.Coupon) (*coupon.Coupon, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CouponValidationRM is the accepted outcome of a validation request.
type CouponValidationRM struct {
	Coupon         coupon.Coupon
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
}

// CouponInput carries admin create/update fields after boundary validation.
type CouponInput struct {
	Code              string
	Description       *string
	DiscountType      string
	DiscountValue     decimal.Decimal
	MinOrderAmount    decimal.Decimal
	MaxDiscountAmount *decimal.Decimal
	ValidFrom         *time.Time
	ValidUntil        *time.Time
	UsageLimit        int32
	IsActive          bool
	ForSpecificUser   bool
	UserID            *uuid.UUID
}

type CouponUseCase interface {
	Validate(ctx context.Context, rawCode string, orderAmount decimal.Decimal, userID uuid.UUID) (*CouponValidationRM, *coupon.Rejection, error)
	AvailableForUser(ctx context.Context, userID uuid.UUID) ([]coupon.Coupon, error)
	PersonalForUser(ctx context.Context, userID uuid.UUID) ([]coupon.Coupon, error)
	List(ctx context.Context, filters CouponListFilters) (shared.Page[coupon.Coupon], error)
	Get(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	Create(ctx context.Context, input CouponInput, actorID uuid.UUID) (*coupon.Coupon, error)
	Update(ctx context.Context, id uuid.UUID, input CouponInput, actorID uuid.UUID) (*coupon.Coupon, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
}

type couponUseCaseImpl struct {
	couponRepo   CouponRepository
	userRepo     AuthUserRepository
	adminLogRepo AdminLogRepository
	clock        clock.Clock
}

func NewCouponUseCase(couponRepo CouponRepository, userRepo AuthUserRepository, adminLogRepo AdminLogRepository, clk clock.Clock) CouponUseCase {
	return &couponUseCaseImpl{
		couponRepo:   couponRepo,
		userRepo:     userRepo,
		adminLogRepo: adminLogRepo,
		clock:        clk,
	}
}

func (u *couponUseCaseImpl) Validate(ctx context.Context, rawCode string, orderAmount decimal.Decimal, userID uuid.UUID) (*CouponValidationRM, *coupon.Rejection, error) {
	code, err := coupon.NewCode(rawCode)
	if err != nil {
		return nil, nil, ErrCouponNotFound
	}

	c, err := u.couponRepo.FindActiveByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrCouponNotFound
		}
		return nil, nil, err
	}

	result := coupon.Evaluate(*c, u.clock.Now(), orderAmount, &userID)
	if !result.Accepted() {
		return nil, result.Rejection, nil
	}

	return &CouponValidationRM{
		Coupon:         *c,
		DiscountAmount: result.DiscountAmount,
		FinalAmount:    result.FinalAmount,
	}, nil, nil
}

func (u *couponUseCaseImpl) AvailableForUser(ctx context.Context, userID uuid.UUID) ([]coupon.Coupon, error) {
	now := u.clock.Now()
	coupons, err := u.couponRepo.AvailableForUser(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	// The query prefilters; the domain rule decides.
	usable := make([]coupon.Coupon, 0, len(coupons))
	for _, c := range coupons {
		if c.IsUsableBy(userID, now) {
			usable = append(usable, c)
		}
	}
	return usable, nil
}

func (u *couponUseCaseImpl) PersonalForUser(ctx context.Context, userID uuid.UUID) ([]coupon.Coupon, error) {
	return u.couponRepo.PersonalForUser(ctx, userID)
}

func (u *couponUseCaseImpl) List(ctx context.Context, filters CouponListFilters) (shared.Page[coupon.Coupon], error) {
	filters.PageParams = filters.Normalize()
	if filters.Status == "" {
		filters.Status = CouponStatusAll
	}
	return u.couponRepo.List(ctx, filters, u.clock.Now())
}

func (u *couponUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	c, err := u.couponRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return c, nil
}

func (u *couponUseCaseImpl) Create(ctx context.Context, input CouponInput, actorID uuid.UUID) (*coupon.Coupon, error) {
	c, err := u.buildCoupon(ctx, input, nil)
	if err != nil {
		return nil, err
	}
	c.CreatedBy = &actorID

	created, err := u.couponRepo.Create(ctx, c)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrCouponCodeTaken
		}
		return nil, err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionCreate, "coupon", &created.ID, nil, created)
	return created, nil
}

func (u *couponUseCaseImpl) Update(ctx context.Context, id uuid.UUID, input CouponInput, actorID uuid.UUID) (*coupon.Coupon, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c, err := u.buildCoupon(ctx, input, &id)
	if err != nil {
		return nil, err
	}
	c.ID = id
	c.UsedCount = existing.UsedCount
	c.CreatedBy = existing.CreatedBy

	updated, err := u.couponRepo.Update(ctx, c)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrCouponCodeTaken
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionUpdate, "coupon", &id, existing, updated)
	return updated, nil
}

func (u *couponUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return err
	}

	// A redeemed coupon stays on record for booking history.
	if existing.UsedCount > 0 {
		return ErrCouponInUse
	}

	if err := u.couponRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionDelete, "coupon", &id, existing, nil)
	return nil
}

func (u *couponUseCaseImpl) buildCoupon(ctx context.Context, input CouponInput, excludeID *uuid.UUID) (*coupon.Coupon, error) {
	code, err := coupon.NewCode(input.Code)
	if err != nil {
		return nil, ErrInvalidCouponInput
	}

	discountType := coupon.DiscountType(input.DiscountType)
	if !discountType.IsValid() {
		return nil, ErrInvalidCouponInput
	}
	if !input.DiscountValue.IsPositive() {
		return nil, ErrInvalidCouponInput
	}
	if discountType == coupon.DiscountPercentage && input.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidCouponInput
	}
	if input.MinOrderAmount.IsNegative() || input.UsageLimit < 0 {
		return nil, ErrInvalidCouponInput
	}
	if input.ValidFrom != nil && input.ValidUntil != nil && input.ValidUntil.Before(*input.ValidFrom) {
		return nil, ErrInvalidCouponInput
	}

	taken, err := u.couponRepo.CodeExists(ctx, code, excludeID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCouponCodeTaken
	}

	if input.ForSpecificUser {
		if input.UserID == nil {
			return nil, ErrInvalidCouponInput
		}
		if _, err := u.userRepo.FindByID(ctx, *input.UserID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrCouponTargetUser
			}
			return nil, err
		}
	} else {
		input.UserID = nil
	}

	return &coupon.Coupon{
		Code:              code.String(),
		Description:       input.Description,
		DiscountType:      discountType,
		DiscountValue:     input.DiscountValue,
		MinOrderAmount:    input.MinOrderAmount,
		MaxDiscountAmount: input.MaxDiscountAmount,
		ValidFrom:         input.ValidFrom,
		ValidUntil:        input.ValidUntil,
		UsageLimit:        input.UsageLimit,
		IsActive:          input.IsActive,
		ForSpecificUser:   input.ForSpecificUser,
		UserID:            input.UserID,
	}, nil
}
