package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/wellkart/wellkart/internal/http/response"
	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/repository"
	"github.com/wellkart/wellkart/internal/service"

	"github.com/gin-gonic/gin"
)

// CouponRequest 创建/更新优惠券请求
type CouponRequest struct {
	Code                 string       `json:"code" binding:"required"`
	DiscountType         string       `json:"discount_type" binding:"required"`
	DiscountValue        models.Money `json:"discount_value"`
	MinPurchaseAmount    models.Money `json:"min_purchase_amount"`
	MaxDiscountAmount    models.Money `json:"max_discount_amount"`
	UsageLimit           int          `json:"usage_limit"`
	ValidFrom            string       `json:"valid_from"`
	ValidUntil           string       `json:"valid_until"`
	Status               string       `json:"status"`
	ApplicableProducts   []uint       `json:"applicable_products"`
	ApplicableCategories []uint       `json:"applicable_categories"`
}

func (r CouponRequest) toServiceInput() (service.CouponInput, error) {
	validFrom, err := parseTimeNullable(r.ValidFrom)
	if err != nil {
		return service.CouponInput{}, err
	}
	validUntil, err := parseTimeNullable(r.ValidUntil)
	if err != nil {
		return service.CouponInput{}, err
	}
	return service.CouponInput{
		Code:                 r.Code,
		DiscountType:         r.DiscountType,
		DiscountValue:        r.DiscountValue,
		MinPurchaseAmount:    r.MinPurchaseAmount,
		MaxDiscountAmount:    r.MaxDiscountAmount,
		UsageLimit:           r.UsageLimit,
		ValidFrom:            validFrom,
		ValidUntil:           validUntil,
		Status:               r.Status,
		ApplicableProducts:   r.ApplicableProducts,
		ApplicableCategories: r.ApplicableCategories,
	}, nil
}

var couponAdminErrorRules = []struct {
	target error
	code   int
	key    string
}{
	{target: service.ErrCouponNotFound, code: response.CodeNotFound, key: "error.coupon_not_found"},
	{target: service.ErrCouponCodeExists, code: response.CodeBadRequest, key: "error.coupon_code_exists"},
	{target: service.ErrCouponCodeRequired, code: response.CodeBadRequest, key: "error.coupon_code_required"},
	{target: service.ErrCouponTypeInvalid, code: response.CodeBadRequest, key: "error.coupon_type_invalid"},
	{target: service.ErrCouponStatusInvalid, code: response.CodeBadRequest, key: "error.coupon_status_invalid"},
	{target: service.ErrCouponValueInvalid, code: response.CodeBadRequest, key: "error.coupon_value_invalid"},
	{target: service.ErrCouponWindowInvalid, code: response.CodeBadRequest, key: "error.coupon_window_invalid"},
}

func respondCouponAdminError(c *gin.Context, err error, fallbackKey string) {
	for _, rule := range couponAdminErrorRules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, response.CodeInternal, fallbackKey, err)
}

// CreateCoupon 创建优惠券
func (h *Handler) CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	input, err := req.toServiceInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	coupon, err := h.CouponAdminService.Create(input)
	if err != nil {
		respondCouponAdminError(c, err, "error.internal")
		return
	}

	response.Success(c, coupon)
}

// UpdateCoupon 更新优惠券
func (h *Handler) UpdateCoupon(c *gin.Context) {
	couponID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || couponID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	input, err := req.toServiceInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	coupon, err := h.CouponAdminService.Update(uint(couponID), input)
	if err != nil {
		respondCouponAdminError(c, err, "error.internal")
		return
	}

	response.Success(c, coupon)
}

// DeleteCoupon 删除优惠券
func (h *Handler) DeleteCoupon(c *gin.Context) {
	couponID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || couponID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	if err := h.CouponAdminService.Delete(uint(couponID)); err != nil {
		respondCouponAdminError(c, err, "error.internal")
		return
	}
	response.Success(c, gin.H{
		"deleted": true,
	})
}

// GetAdminCoupon 获取优惠券详情
func (h *Handler) GetAdminCoupon(c *gin.Context) {
	couponID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || couponID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	coupon, err := h.CouponAdminService.Get(uint(couponID))
	if err != nil {
		respondCouponAdminError(c, err, "error.internal")
		return
	}
	response.Success(c, coupon)
}

// GetAdminCoupons 获取优惠券列表
func (h *Handler) GetAdminCoupons(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	productID, _ := strconv.ParseUint(c.Query("product_id"), 10, 64)

	coupons, total, err := h.CouponAdminService.List(repository.CouponListFilter{
		Page:      page,
		PageSize:  pageSize,
		Code:      c.Query("code"),
		Status:    c.Query("status"),
		ProductID: uint(productID),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, coupons, pagination)
}

func parseTimeNullable(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
