//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/domain/coupon"
	"tour-booking-api/internal/domain/tour"
	"tour-booking-api/internal/pkg/clock"
	"tour-booking-api/internal/usecase"
	"tour-booking-api/internal/usecase/readmodel"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	userID uuid.UUID
	tourID uuid.UUID

	bookingRepo *stubBookingRepo
	tourRepo    *stubTourRepo
	couponRepo  *stubCouponRepo
	userRepo    *stubAuthUserRepo
	logRepo     *stubAdminLogRepo

	uc usecase.BookingUseCase
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		userID:      uuid.New(),
		tourID:      uuid.New(),
		bookingRepo: &stubBookingRepo{},
		tourRepo:    &stubTourRepo{},
		couponRepo:  &stubCouponRepo{},
		userRepo:    &stubAuthUserRepo{},
		logRepo:     &stubAdminLogRepo{},
	}

	f.userRepo.findByID = func(_ context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
		if id != f.userID {
			return nil, notFound()
		}
		return &readmodel.AuthorizedUserRM{ID: id, IsActive: true}, nil
	}
	f.tourRepo.findByID = func(_ context.Context, id uuid.UUID) (*tour.Tour, error) {
		if id != f.tourID {
			return nil, notFound()
		}
		return &tour.Tour{ID: id, Name: "Alps Trek", Price: decimal.NewFromInt(250), IsActive: true}, nil
	}
	f.bookingRepo.create = func(_ context.Context, b *booking.Booking) (*booking.Booking, error) {
		created := *b
		created.ID = uuid.New()
		return &created, nil
	}

	f.uc = usecase.NewBookingUseCase(f.bookingRepo, f.tourRepo, f.couponRepo, f.userRepo, f.logRepo, clock.NewMockClock(fixedNow))
	return f
}

func (f *bookingFixture) input() usecase.BookingInput {
	return usecase.BookingInput{
		UserID:         f.userID,
		TourID:         f.tourID,
		TravelersCount: 2,
	}
}

func TestBookingCreate(t *testing.T) {
	actorID := uuid.New()

	t.Run("prices booking without coupon", func(t *testing.T) {
		f := newBookingFixture()

		created, rejection, err := f.uc.Create(context.Background(), f.input(), actorID)
		require.NoError(t, err)
		require.Nil(t, rejection)
		require.NotNil(t, created)

		assert.True(t, decimal.NewFromInt(500).Equal(created.Subtotal))
		assert.True(t, created.DiscountAmount.IsZero())
		assert.True(t, decimal.NewFromInt(500).Equal(created.TotalPrice))
		assert.Equal(t, booking.StatusPending, created.Status)
		assert.Nil(t, created.CouponID)
		assert.Len(t, f.logRepo.entries, 1)
	})

	t.Run("applies accepted coupon to the subtotal", func(t *testing.T) {
		f := newBookingFixture()
		c := activeCoupon(nil)
		f.couponRepo.findActiveByCode = func(_ context.Context, code coupon.Code) (*coupon.Coupon, error) {
			assert.Equal(t, c.Code, code.String())
			return c, nil
		}

		input := f.input()
		code := "summer20"
		input.CouponCode = &code

		created, rejection, err := f.uc.Create(context.Background(), input, actorID)
		require.NoError(t, err)
		require.Nil(t, rejection)

		assert.True(t, decimal.NewFromInt(500).Equal(created.Subtotal))
		assert.True(t, decimal.NewFromInt(100).Equal(created.DiscountAmount))
		assert.True(t, decimal.NewFromInt(400).Equal(created.TotalPrice))
		require.NotNil(t, created.CouponID)
		assert.Equal(t, c.ID, *created.CouponID)
	})

	t.Run("passes through coupon rejection without persisting", func(t *testing.T) {
		f := newBookingFixture()
		f.couponRepo.findActiveByCode = func(_ context.Context, _ coupon.Code) (*coupon.Coupon, error) {
			return activeCoupon(func(c *coupon.Coupon) {
				c.UsedCount = c.UsageLimit
			}), nil
		}
		f.bookingRepo.create = func(_ context.Context, _ *booking.Booking) (*booking.Booking, error) {
			t.Fatal("create must not be called for a rejected coupon")
			return nil, nil
		}

		input := f.input()
		code := "SUMMER20"
		input.CouponCode = &code

		created, rejection, err := f.uc.Create(context.Background(), input, actorID)
		require.NoError(t, err)
		assert.Nil(t, created)
		require.NotNil(t, rejection)
		assert.Equal(t, coupon.ReasonUsageLimitReached, rejection.Reason)
		assert.Empty(t, f.logRepo.entries)
	})

	t.Run("surfaces usage-limit rejection when redemption loses the race", func(t *testing.T) {
		f := newBookingFixture()
		c := activeCoupon(func(c *coupon.Coupon) {
			c.UsedCount = c.UsageLimit - 1
		})
		f.couponRepo.findActiveByCode = func(_ context.Context, _ coupon.Code) (*coupon.Coupon, error) {
			return c, nil
		}
		// Evaluation passed on the snapshot, but a concurrent booking took the
		// last redemption before this transaction committed.
		f.bookingRepo.create = func(_ context.Context, _ *booking.Booking) (*booking.Booking, error) {
			return nil, conflict()
		}

		input := f.input()
		code := "SUMMER20"
		input.CouponCode = &code

		created, rejection, err := f.uc.Create(context.Background(), input, actorID)
		require.NoError(t, err)
		assert.Nil(t, created)
		require.NotNil(t, rejection)
		assert.Equal(t, coupon.ReasonUsageLimitReached, rejection.Reason)
		assert.Empty(t, f.logRepo.entries)
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newBookingFixture()
		input := f.input()
		input.UserID = uuid.New()

		_, _, err := f.uc.Create(context.Background(), input, actorID)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("unknown tour", func(t *testing.T) {
		f := newBookingFixture()
		input := f.input()
		input.TourID = uuid.New()

		_, _, err := f.uc.Create(context.Background(), input, actorID)
		assert.ErrorIs(t, err, usecase.ErrTourNotFound)
	})

	t.Run("unknown coupon code", func(t *testing.T) {
		f := newBookingFixture()
		f.couponRepo.findActiveByCode = func(_ context.Context, _ coupon.Code) (*coupon.Coupon, error) {
			return nil, notFound()
		}

		input := f.input()
		code := "MISSING1"
		input.CouponCode = &code

		_, _, err := f.uc.Create(context.Background(), input, actorID)
		assert.ErrorIs(t, err, usecase.ErrCouponNotFound)
	})

	t.Run("non-positive travelers", func(t *testing.T) {
		f := newBookingFixture()
		input := f.input()
		input.TravelersCount = 0

		_, _, err := f.uc.Create(context.Background(), input, actorID)
		assert.ErrorIs(t, err, usecase.ErrInvalidBookingInput)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newBookingFixture()
		input := f.input()
		input.Status = "paused"

		_, _, err := f.uc.Create(context.Background(), input, actorID)
		assert.ErrorIs(t, err, usecase.ErrInvalidBookingStatus)
	})
}

func TestBookingUpdateStatus(t *testing.T) {
	actorID := uuid.New()
	bookingID := uuid.New()

	t.Run("updates status and audits the transition", func(t *testing.T) {
		f := newBookingFixture()
		f.bookingRepo.findByID = func(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
			return &booking.Booking{ID: id, Status: booking.StatusPending}, nil
		}
		f.bookingRepo.updateStatus = func(_ context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error) {
			assert.Equal(t, booking.StatusConfirmed, status)
			return &booking.Booking{ID: id, Status: status}, nil
		}

		updated, err := f.uc.UpdateStatus(context.Background(), bookingID, "confirmed", actorID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, updated.Status)

		require.Len(t, f.logRepo.entries, 1)
		entry := f.logRepo.entries[0]
		assert.Equal(t, "booking", entry.EntityType)
		assert.JSONEq(t, `{"status":"pending"}`, string(entry.OldValues))
		assert.JSONEq(t, `{"status":"confirmed"}`, string(entry.NewValues))
	})

	t.Run("rejects unknown status before touching storage", func(t *testing.T) {
		f := newBookingFixture()

		_, err := f.uc.UpdateStatus(context.Background(), bookingID, "archived", actorID)
		assert.ErrorIs(t, err, usecase.ErrInvalidBookingStatus)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newBookingFixture()
		f.bookingRepo.findByID = func(_ context.Context, _ uuid.UUID) (*booking.Booking, error) {
			return nil, notFound()
		}

		_, err := f.uc.UpdateStatus(context.Background(), bookingID, "confirmed", actorID)
		assert.ErrorIs(t, err, usecase.ErrBookingNotFound)
	})
}

func TestBookingList(t *testing.T) {
	t.Run("rejects unknown status filter", func(t *testing.T) {
		f := newBookingFixture()

		_, err := f.uc.List(context.Background(), usecase.BookingListFilters{Status: "paused"})
		assert.ErrorIs(t, err, usecase.ErrInvalidBookingStatus)
	})

	t.Run("normalizes page params", func(t *testing.T) {
		f := newBookingFixture()
		f.bookingRepo.list = func(_ context.Context, filters usecase.BookingListFilters) (shared.Page[booking.Booking], error) {
			assert.Equal(t, 1, filters.Page)
			assert.Equal(t, 10, filters.Limit)
			return shared.Page[booking.Booking]{Page: filters.Page, Limit: filters.Limit}, nil
		}

		_, err := f.uc.List(context.Background(), usecase.BookingListFilters{})
		require.NoError(t, err)
	})
}

func TestBookingUpdate(t *testing.T) {
	actorID := uuid.New()
	bookingID := uuid.New()

	t.Run("reprices on update", func(t *testing.T) {
		f := newBookingFixture()
		f.bookingRepo.findByID = func(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
			return &booking.Booking{ID: id, Status: booking.StatusPending, TravelersCount: 2}, nil
		}
		f.bookingRepo.update = func(_ context.Context, b *booking.Booking) (*booking.Booking, error) {
			updated := *b
			return &updated, nil
		}

		input := f.input()
		input.TravelersCount = 4
		date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		input.BookingDate = &date

		updated, rejection, err := f.uc.Update(context.Background(), bookingID, input, actorID)
		require.NoError(t, err)
		require.Nil(t, rejection)

		assert.Equal(t, bookingID, updated.ID)
		assert.True(t, decimal.NewFromInt(1000).Equal(updated.Subtotal))
		assert.Equal(t, date, updated.BookingDate)
		assert.Len(t, f.logRepo.entries, 1)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newBookingFixture()
		f.bookingRepo.findByID = func(_ context.Context, _ uuid.UUID) (*booking.Booking, error) {
			return nil, notFound()
		}

		_, _, err := f.uc.Update(context.Background(), bookingID, f.input(), actorID)
		assert.ErrorIs(t, err, usecase.ErrBookingNotFound)
	})
}
