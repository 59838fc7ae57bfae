package service

import (
	"errors"
	"testing"

	"github.com/wellkart/wellkart/internal/constants"
	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/repository"
)

func setupCouponAdminServiceTest(t *testing.T) *CouponAdminService {
	t.Helper()
	db := openTestDB(t, &models.Coupon{})
	return NewCouponAdminService(repository.NewCouponRepository(db))
}

func TestCouponAdminCreateRejectsInvalidInput(t *testing.T) {
	svc := setupCouponAdminServiceTest(t)

	cases := []struct {
		name    string
		input   CouponInput
		wantErr error
	}{
		{
			name:    "empty code",
			input:   CouponInput{Code: "  ", DiscountType: constants.CouponTypeFixed, DiscountValue: money(50)},
			wantErr: ErrCouponCodeRequired,
		},
		{
			name:    "unknown discount type",
			input:   CouponInput{Code: "X", DiscountType: "bogo", DiscountValue: money(50)},
			wantErr: ErrCouponTypeInvalid,
		},
		{
			name:    "unknown status",
			input:   CouponInput{Code: "X", DiscountType: constants.CouponTypeFixed, DiscountValue: money(50), Status: "Paused"},
			wantErr: ErrCouponStatusInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCouponAdminCreateDefaultsStatusActive(t *testing.T) {
	svc := setupCouponAdminServiceTest(t)

	coupon, err := svc.Create(CouponInput{
		Code:          "WELCOME",
		DiscountType:  constants.CouponTypeFixed,
		DiscountValue: money(50),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if coupon.Status != constants.CouponStatusActive {
		t.Fatalf("status want %q, got %q", constants.CouponStatusActive, coupon.Status)
	}
}
