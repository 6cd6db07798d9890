//go:build unit

package usecase_test

import (
	"context"
	"time"

	"tour-booking-api/internal/domain/adminlog"
	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/domain/coupon"
	"tour-booking-api/internal/domain/tour"
	"tour-booking-api/internal/domain/user"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/usecase"
	"tour-booking-api/internal/usecase/readmodel"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

func notFound() error {
	return infra.WrapRepoErr(infra.KindNotFound, "row not found", nil)
}

func duplicateKey() error {
	return infra.WrapRepoErr(infra.KindDuplicateKey, "duplicate key", nil)
}

func conflict() error {
	return infra.WrapRepoErr(infra.KindConflict, "coupon usage limit reached", nil)
}

type stubCouponRepo struct {
	findActiveByCode func(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	findByID         func(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	list             func(ctx context.Context, filters usecase.CouponListFilters, now time.Time) (shared.Page[coupon.Coupon], error)
	availableForUser func(ctx context.Context, userID uuid.UUID, now time.Time) ([]coupon.Coupon, error)
	personalForUser  func(ctx context.Context, userID uuid.UUID) ([]coupon.Coupon, error)
	codeExists       func(ctx context.Context, code coupon.Code, excludeID *uuid.UUID) (bool, error)
	create           func(ctx context.Context, c *coupon.Coupon) (*coupon.Coupon, error)
	update           func(ctx context.Context, c *coupon.Coupon) (*coupon.Coupon, error)
	delete           func(ctx context.Context, id uuid.UUID) error
}

func (s *stubCouponRepo) FindActiveByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	return s.findActiveByCode(ctx, code)
}

func (s *stubCouponRepo) FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	return s.findByID(ctx, id)
}

func (s *stubCouponRepo) List(ctx context.Context, filters usecase.CouponListFilters, now time.Time) (shared.Page[coupon.Coupon], error) {
	return s.list(ctx, filters, now)
}

func (s *stubCouponRepo) AvailableForUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]coupon.Coupon, error) {
	return s.availableForUser(ctx, userID, now)
}

func (s *stubCouponRepo) PersonalForUser(ctx context.Context, userID uuid.UUID) ([]coupon.Coupon, error) {
	return s.personalForUser(ctx, userID)
}

func (s *stubCouponRepo) CodeExists(ctx context.Context, code coupon.Code, excludeID *uuid.UUID) (bool, error) {
	return s.codeExists(ctx, code, excludeID)
}

func (s *stubCouponRepo) Create(ctx context.Context, c *coupon.Coupon) (*coupon.Coupon, error) {
	return s.create(ctx, c)
}

func (s *stubCouponRepo) Update(ctx context.Context, c *coupon.Coupon) (*coupon.Coupon, error) {
	return s.update(ctx, c)
}

func (s *stubCouponRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

type stubAuthUserRepo struct {
	create          func(ctx context.Context, u *user.User) (*readmodel.AuthorizedUserRM, error)
	findByEmail     func(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error)
	findByID        func(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	updateLastLogin func(ctx context.Context, userID uuid.UUID) error
}

func (s *stubAuthUserRepo) Create(ctx context.Context, u *user.User) (*readmodel.AuthorizedUserRM, error) {
	return s.create(ctx, u)
}

func (s *stubAuthUserRepo) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	return s.findByEmail(ctx, email)
}

func (s *stubAuthUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	return s.findByID(ctx, id)
}

func (s *stubAuthUserRepo) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	return s.updateLastLogin(ctx, userID)
}

type stubTourRepo struct {
	listActive func(ctx context.Context) ([]tour.Tour, error)
	findByID   func(ctx context.Context, id uuid.UUID) (*tour.Tour, error)
	create     func(ctx context.Context, t *tour.Tour) (*tour.Tour, error)
	update     func(ctx context.Context, t *tour.Tour) (*tour.Tour, error)
	delete     func(ctx context.Context, id uuid.UUID) error
}

func (s *stubTourRepo) ListActive(ctx context.Context) ([]tour.Tour, error) {
	return s.listActive(ctx)
}

func (s *stubTourRepo) FindByID(ctx context.Context, id uuid.UUID) (*tour.Tour, error) {
	return s.findByID(ctx, id)
}

func (s *stubTourRepo) Create(ctx context.Context, t *tour.Tour) (*tour.Tour, error) {
	return s.create(ctx, t)
}

func (s *stubTourRepo) Update(ctx context.Context, t *tour.Tour) (*tour.Tour, error) {
	return s.update(ctx, t)
}

func (s *stubTourRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

type stubBookingRepo struct {
	list         func(ctx context.Context, filters usecase.BookingListFilters) (shared.Page[booking.Booking], error)
	findByID     func(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	create       func(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	update       func(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	updateStatus func(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (s *stubBookingRepo) List(ctx context.Context, filters usecase.BookingListFilters) (shared.Page[booking.Booking], error) {
	return s.list(ctx, filters)
}

func (s *stubBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return s.findByID(ctx, id)
}

func (s *stubBookingRepo) Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	return s.create(ctx, b)
}

func (s *stubBookingRepo) Update(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	return s.update(ctx, b)
}

func (s *stubBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error) {
	return s.updateStatus(ctx, id, status)
}

func (s *stubBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

// stubAdminLogRepo records appended entries so tests can assert on the audit
// trail without a database.
type stubAdminLogRepo struct {
	entries []adminlog.Entry
	err     error
}

func (s *stubAdminLogRepo) Append(_ context.Context, entry adminlog.Entry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubAdminLogRepo) List(_ context.Context, _ *uuid.UUID, _, _ int) ([]adminlog.Entry, int64, error) {
	return s.entries, int64(len(s.entries)), s.err
}
