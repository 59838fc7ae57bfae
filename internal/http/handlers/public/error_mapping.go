package public

import (
	"errors"

	"github.com/wellkart/wellkart/internal/http/response"
	"github.com/wellkart/wellkart/internal/i18n"
	"github.com/wellkart/wellkart/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var couponCheckErrorRules = []mappedHandlerError{
	{target: service.ErrCouponCodeRequired, code: response.CodeBadRequest, key: "error.coupon_code_required"},
	{target: service.ErrCouponNotFound, code: response.CodeNotFound, key: "error.coupon_not_found"},
	{target: service.ErrCouponNotActive, code: response.CodeBadRequest, key: "error.coupon_not_active"},
	{target: service.ErrCouponOutOfWindow, code: response.CodeBadRequest, key: "error.coupon_out_of_window"},
	{target: service.ErrCouponUsageLimit, code: response.CodeBadRequest, key: "error.coupon_usage_limit"},
	{target: service.ErrCouponProductScope, code: response.CodeBadRequest, key: "error.coupon_product_scope"},
	{target: service.ErrCouponCategoryScope, code: response.CodeBadRequest, key: "error.coupon_category_scope"},
}

var checkoutBeginErrorRules = []mappedHandlerError{
	{target: service.ErrCheckoutCartEmpty, code: response.CodeBadRequest, key: "error.checkout_cart_empty"},
	{target: service.ErrAccountExists, code: response.CodeBadRequest, key: "error.account_exists"},
	{target: service.ErrProductNotFound, code: response.CodeBadRequest, key: "error.product_not_found"},
}

var checkoutPlaceErrorRules = concatMappedHandlerErrors(
	[]mappedHandlerError{
		{target: service.ErrCheckoutTokenExpired, code: response.CodeBadRequest, key: "error.checkout_token_expired"},
		{target: service.ErrCheckoutTokenInvalid, code: response.CodeBadRequest, key: "error.checkout_token_invalid"},
	},
	checkoutBeginErrorRules,
	couponCheckErrorRules,
)

var userLoginErrorRules = []mappedHandlerError{
	{target: service.ErrLoginInvalid, code: response.CodeBadRequest, key: "error.login_invalid"},
	{target: service.ErrAccountDisabled, code: response.CodeForbidden, key: "error.account_disabled"},
}

var reviewSubmitErrorRules = []mappedHandlerError{
	{target: service.ErrReviewRatingInvalid, code: response.CodeBadRequest, key: "error.review_rating_invalid"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrParamsInvalid, code: response.CodeBadRequest, key: "error.params_invalid"},
}

// respondCouponError 优先处理携带插值参数的门槛错误，再走映射表。
func respondCouponError(c *gin.Context, err error) {
	var minErr *service.CouponMinAmountError
	if errors.As(err, &minErr) {
		locale := i18n.ResolveLocale(c)
		msg := i18n.Sprintf(locale, "error.coupon_min_amount", minErr.MinAmount.String())
		respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	respondWithMappedError(c, err, couponCheckErrorRules, response.CodeInternal, "error.internal")
}

// respondCheckoutError 优先处理携带步骤名的必填字段错误，再走映射表。
func respondCheckoutError(c *gin.Context, err error, rules []mappedHandlerError) {
	var fieldErr *service.CheckoutFieldError
	if errors.As(err, &fieldErr) {
		locale := i18n.ResolveLocale(c)
		msg := i18n.Sprintf(locale, "error.checkout_field_missing", fieldErr.Step)
		respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	var minErr *service.CouponMinAmountError
	if errors.As(err, &minErr) {
		locale := i18n.ResolveLocale(c)
		msg := i18n.Sprintf(locale, "error.coupon_min_amount", minErr.MinAmount.String())
		respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	respondWithMappedError(c, err, rules, response.CodeInternal, "error.internal")
}
