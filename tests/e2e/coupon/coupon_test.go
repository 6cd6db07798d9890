//go:build e2e

package coupon_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"tour-booking-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type couponSuite struct {
	e2e.SharedSuite
	adminToken    string
	customerToken string
	customerID    uuid.UUID
}

func TestCouponSuite(t *testing.T) {
	suite.Run(t, new(couponSuite))
}

func (s *couponSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	s.CreateUser("admin@example.com", "admin")
	s.customerID = s.CreateUser("customer@example.com", "customer")

	s.adminToken = s.Login("admin@example.com")
	s.customerToken = s.Login("customer@example.com")
}

type couponData struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	UsedCount int32     `json:"used_count"`
}

func (s *couponSuite) createCoupon(body map[string]any) couponData {
	t := s.T()
	t.Helper()

	rec := s.PerformRequest(http.MethodPost, "/api/admin/coupons", body, s.adminToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Data couponData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data
}

func (s *couponSuite) createTour(price string) uuid.UUID {
	t := s.T()
	t.Helper()

	rec := s.PerformRequest(http.MethodPost, "/api/tours", map[string]any{
		"name":  "Coastal Hike " + uuid.NewString()[:8],
		"price": price,
	}, s.adminToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data.ID
}

func (s *couponSuite) TestValidationAndRedemption() {
	t := s.T()

	created := s.createCoupon(map[string]any{
		"code":                "SPRING15",
		"discount_type":       "percentage",
		"discount_value":      "15",
		"min_order_amount":    "200",
		"max_discount_amount": "50",
		"usage_limit":         1,
	})

	s.Run("validation applies the percentage with the cap", func() {
		rec := s.PerformRequest(http.MethodPost, "/api/coupons/validate", map[string]any{
			"code":         "spring15",
			"order_amount": "400",
		}, s.customerToken)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				DiscountAmount decimal.Decimal `json:"discount_amount"`
				FinalAmount    decimal.Decimal `json:"final_amount"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.True(t, resp.Success)
		require.True(t, decimal.NewFromInt(50).Equal(resp.Data.DiscountAmount), "15%% of 400 must clamp to the 50 cap, got %s", resp.Data.DiscountAmount)
		require.True(t, decimal.NewFromInt(350).Equal(resp.Data.FinalAmount))
	})

	s.Run("validation rejects orders below the minimum", func() {
		rec := s.PerformRequest(http.MethodPost, "/api/coupons/validate", map[string]any{
			"code":         "SPRING15",
			"order_amount": "100",
		}, s.customerToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Minimum order amount")
	})

	s.Run("unknown code returns 404", func() {
		rec := s.PerformRequest(http.MethodPost, "/api/coupons/validate", map[string]any{
			"code":         "GHOST99",
			"order_amount": "400",
		}, s.customerToken)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	s.Run("validation requires authentication", func() {
		rec := s.PerformRequest(http.MethodPost, "/api/coupons/validate", map[string]any{
			"code":         "SPRING15",
			"order_amount": "400",
		}, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	tourID := s.createTour("150")

	s.Run("booking with the coupon redeems it atomically", func() {
		rec := s.PerformRequest(http.MethodPost, "/api/admin/bookings", map[string]any{
			"user_id":         s.customerID,
			"tour_id":         tourID,
			"coupon_code":     "SPRING15",
			"travelers_count": 2,
		}, s.adminToken)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp struct {
			Data struct {
				Subtotal       decimal.Decimal `json:"subtotal"`
				DiscountAmount decimal.Decimal `json:"discount_amount"`
				TotalPrice     decimal.Decimal `json:"total_price"`
				CouponID       *uuid.UUID      `json:"coupon_id"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.True(t, decimal.NewFromInt(300).Equal(resp.Data.Subtotal))
		require.True(t, decimal.NewFromInt(45).Equal(resp.Data.DiscountAmount), "15%% of 300 is under the cap")
		require.True(t, decimal.NewFromInt(255).Equal(resp.Data.TotalPrice))
		require.NotNil(t, resp.Data.CouponID)
		require.Equal(t, created.ID, *resp.Data.CouponID)

		get := s.PerformRequest(http.MethodGet, "/api/admin/coupons/"+created.ID.String(), nil, s.adminToken)
		require.Equal(t, http.StatusOK, get.Code)

		var getResp struct {
			Data couponData `json:"data"`
		}
		require.NoError(t, json.Unmarshal(get.Body.Bytes(), &getResp))
		require.EqualValues(t, 1, getResp.Data.UsedCount)
	})

	s.Run("exhausted coupon is rejected on the next validation", func() {
		rec := s.PerformRequest(http.MethodPost, "/api/coupons/validate", map[string]any{
			"code":         "SPRING15",
			"order_amount": "400",
		}, s.customerToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "usage limit")
	})

	s.Run("redeemed coupon cannot be deleted", func() {
		rec := s.PerformRequest(http.MethodDelete, "/api/admin/coupons/"+created.ID.String(), nil, s.adminToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func (s *couponSuite) TestPersonalCoupon() {
	t := s.T()

	s.CreateUser("other@example.com", "customer")
	otherToken := s.Login("other@example.com")

	s.createCoupon(map[string]any{
		"code":              "VIPONLY",
		"discount_type":     "fixed",
		"discount_value":    "30",
		"for_specific_user": true,
		"user_id":           s.customerID,
	})

	s.Run("target user gets the discount", func() {
		rec := s.PerformRequest(http.MethodPost, "/api/coupons/validate", map[string]any{
			"code":         "VIPONLY",
			"order_amount": "100",
		}, s.customerToken)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("other users get 403", func() {
		rec := s.PerformRequest(http.MethodPost, "/api/coupons/validate", map[string]any{
			"code":         "VIPONLY",
			"order_amount": "100",
		}, otherToken)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	s.Run("appears in the target user's personal list", func() {
		rec := s.PerformRequest(http.MethodGet, "/api/user/personal-coupons", nil, s.customerToken)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "VIPONLY")
	})
}

func (s *couponSuite) TestAdminAccessControl() {
	t := s.T()

	s.Run("customers cannot reach admin coupon routes", func() {
		rec := s.PerformRequest(http.MethodGet, "/api/admin/coupons", nil, s.customerToken)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	s.Run("missing token is 401", func() {
		rec := s.PerformRequest(http.MethodGet, "/api/admin/coupons", nil, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
