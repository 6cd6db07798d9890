package usecase

import (
	"context"
	"errors"
	"time"

	"tour-booking-api/internal/domain/adminlog"
	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/domain/coupon"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/clock"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingInput  = errors.New("invalid booking data")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
)

type BookingListFilters struct {
	shared.PageParams
	Status string
	Search string
}

type BookingRepository interface {
	List(ctx context.Context, filters BookingListFilters) (shared.Page[booking.Booking], error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// Create inserts the booking and, when a coupon is attached, increments
	// its used_count in the same transaction. The increment re-checks the
	// usage limit; a KindConflict error means the coupon was exhausted and
	// nothing was written.
	Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingInput struct {
	UserID         uuid.UUID
	TourID         uuid.UUID
	CouponCode     *string
	TravelersCount int32
	Status         string
	BookingDate    *time.Time
	Notes          *string
}

type BookingUseCase interface {
	List(ctx context.Context, filters BookingListFilters) (shared.Page[booking.Booking], error)
	Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Create(ctx context.Context, input BookingInput, actorID uuid.UUID) (*booking.Booking, *coupon.Rejection, error)
	Update(ctx context.Context, id uuid.UUID, input BookingInput, actorID uuid.UUID) (*booking.Booking, *coupon.Rejection, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, actorID uuid.UUID) (*booking.Booking, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	bookingRepo  BookingRepository
	tourRepo     TourRepository
	couponRepo   CouponRepository
	userRepo     AuthUserRepository
	adminLogRepo AdminLogRepository
	clock        clock.Clock
}

func NewBookingUseCase(bookingRepo BookingRepository, tourRepo TourRepository, couponRepo CouponRepository, userRepo AuthUserRepository, adminLogRepo AdminLogRepository, clk clock.Clock) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo:  bookingRepo,
		tourRepo:     tourRepo,
		couponRepo:   couponRepo,
		userRepo:     userRepo,
		adminLogRepo: adminLogRepo,
		clock:        clk,
	}
}

func (u *bookingUseCaseImpl) List(ctx context.Context, filters BookingListFilters) (shared.Page[booking.Booking], error) {
	filters.PageParams = filters.Normalize()
	if filters.Status != "" && !booking.Status(filters.Status).IsValid() {
		return shared.Page[booking.Booking]{}, ErrInvalidBookingStatus
	}
	return u.bookingRepo.List(ctx, filters)
}

func (u *bookingUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (u *bookingUseCaseImpl) Create(ctx context.Context, input BookingInput, actorID uuid.UUID) (*booking.Booking, *coupon.Rejection, error) {
	b, rejection, err := u.priceBooking(ctx, input)
	if err != nil || rejection != nil {
		return nil, rejection, err
	}

	created, err := u.bookingRepo.Create(ctx, b)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, nil, ErrInvalidBookingInput
		}
		// The coupon passed evaluation on a snapshot but was exhausted by the
		// time the transaction committed.
		if infra.IsKind(err, infra.KindConflict) {
			return nil, &coupon.Rejection{Reason: coupon.ReasonUsageLimitReached}, nil
		}
		return nil, nil, err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionCreate, "booking", &created.ID, nil, created)
	return created, nil, nil
}

func (u *bookingUseCaseImpl) Update(ctx context.Context, id uuid.UUID, input BookingInput, actorID uuid.UUID) (*booking.Booking, *coupon.Rejection, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	b, rejection, err := u.priceBooking(ctx, input)
	if err != nil || rejection != nil {
		return nil, rejection, err
	}
	b.ID = id

	updated, err := u.bookingRepo.Update(ctx, b)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrBookingNotFound
		}
		return nil, nil, err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionUpdate, "booking", &id, existing, updated)
	return updated, nil, nil
}

func (u *bookingUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string, actorID uuid.UUID) (*booking.Booking, error) {
	st, err := booking.NewStatus(status)
	if err != nil {
		return nil, ErrInvalidBookingStatus
	}

	existing, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := u.bookingRepo.UpdateStatus(ctx, id, st)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionStatusChange, "booking", &id,
		map[string]string{"status": string(existing.Status)},
		map[string]string{"status": string(updated.Status)},
	)
	return updated, nil
}

func (u *bookingUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := u.bookingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionDelete, "booking", &id, existing, nil)
	return nil
}

// priceBooking resolves the tour and optional coupon and runs the single
// pricing path. Every booking total in the system comes from here.
func (u *bookingUseCaseImpl) priceBooking(ctx context.Context, input BookingInput) (*booking.Booking, *coupon.Rejection, error) {
	if _, err := u.userRepo.FindByID(ctx, input.UserID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	t, err := u.tourRepo.FindByID(ctx, input.TourID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrTourNotFound
		}
		return nil, nil, err
	}

	var c *coupon.Coupon
	if input.CouponCode != nil && *input.CouponCode != "" {
		code, codeErr := coupon.NewCode(*input.CouponCode)
		if codeErr != nil {
			return nil, nil, ErrCouponNotFound
		}
		c, err = u.couponRepo.FindActiveByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, nil, ErrCouponNotFound
			}
			return nil, nil, err
		}
	}

	now := u.clock.Now()
	quote, rejection, err := booking.NewQuote(t.Price, input.TravelersCount, c, now, &input.UserID)
	if err != nil {
		return nil, nil, ErrInvalidBookingInput
	}
	if rejection != nil {
		return nil, rejection, nil
	}

	status := booking.StatusPending
	if input.Status != "" {
		status, err = booking.NewStatus(input.Status)
		if err != nil {
			return nil, nil, ErrInvalidBookingStatus
		}
	}

	bookingDate := now
	if input.BookingDate != nil {
		bookingDate = *input.BookingDate
	}

	b := &booking.Booking{
		UserID:         input.UserID,
		TourID:         input.TourID,
		TravelersCount: input.TravelersCount,
		Subtotal:       quote.Subtotal,
		DiscountAmount: quote.DiscountAmount,
		TotalPrice:     quote.TotalPrice,
		Status:         status,
		BookingDate:    bookingDate,
		Notes:          input.Notes,
	}
	if c != nil {
		b.CouponID = &c.ID
	}
	return b, nil, nil
}
