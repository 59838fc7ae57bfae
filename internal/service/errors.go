package service

import (
	"errors"
	"fmt"

	"github.com/wellkart/wellkart/internal/models"
)

// 业务错误定义（handler 层通过 errors.Is/As 映射为接口响应）
var (
	// 优惠券
	ErrCouponCodeRequired  = errors.New("coupon code required")
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponNotActive     = errors.New("coupon not active")
	ErrCouponOutOfWindow   = errors.New("coupon out of validity window")
	ErrCouponUsageLimit    = errors.New("coupon usage limit reached")
	ErrCouponMinAmount     = errors.New("coupon minimum purchase amount not met")
	ErrCouponProductScope  = errors.New("coupon not applicable to products")
	ErrCouponCategoryScope = errors.New("coupon not applicable to categories")
	ErrCouponCodeExists    = errors.New("coupon code exists")
	ErrCouponTypeInvalid   = errors.New("coupon discount type invalid")
	ErrCouponStatusInvalid = errors.New("coupon status invalid")
	ErrCouponValueInvalid  = errors.New("coupon discount value invalid")
	ErrCouponWindowInvalid = errors.New("coupon validity window invalid")

	// 结账
	ErrCheckoutFieldMissing  = errors.New("checkout required field missing")
	ErrCheckoutCartEmpty     = errors.New("checkout cart empty")
	ErrCheckoutTokenInvalid  = errors.New("checkout token invalid")
	ErrCheckoutTokenExpired  = errors.New("checkout token expired")
	ErrAccountExists         = errors.New("account already exists")

	// 订单
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderStatusInvalid = errors.New("order status invalid")

	// 目录与内容
	ErrProductNotFound    = errors.New("product not found")
	ErrProductSlugExists  = errors.New("product slug exists")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategorySlugExists = errors.New("category slug exists")
	ErrCategoryInUse      = errors.New("category still has products")
	ErrPostNotFound       = errors.New("post not found")
	ErrPostSlugExists     = errors.New("post slug exists")
	ErrReviewNotFound     = errors.New("review not found")
	ErrReviewRatingInvalid = errors.New("review rating invalid")

	// 通用
	ErrParamsInvalid = errors.New("params invalid")

	// 邮件
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")

	// 用户与认证
	ErrUserNotFound    = errors.New("user not found")
	ErrLoginInvalid    = errors.New("invalid credentials")
	ErrAccountDisabled = errors.New("account disabled")
	ErrWeakPassword    = errors.New("weak password")
)

// CouponMinAmountError 未达使用门槛错误，携带门槛金额供文案插值。
type CouponMinAmountError struct {
	MinAmount models.Money
}

func (e *CouponMinAmountError) Error() string {
	return fmt.Sprintf("coupon requires minimum purchase amount %s", e.MinAmount.String())
}

// Unwrap 支持 errors.Is(err, ErrCouponMinAmount)
func (e *CouponMinAmountError) Unwrap() error {
	return ErrCouponMinAmount
}

// CheckoutFieldError 结账必填字段缺失错误，携带步骤名与字段名。
type CheckoutFieldError struct {
	Step  string
	Field string
}

func (e *CheckoutFieldError) Error() string {
	return fmt.Sprintf("missing required field %q in %s step", e.Field, e.Step)
}

// Unwrap 支持 errors.Is(err, ErrCheckoutFieldMissing)
func (e *CheckoutFieldError) Unwrap() error {
	return ErrCheckoutFieldMissing
}
