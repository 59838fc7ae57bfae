package public

import (
	"github.com/wellkart/wellkart/internal/http/response"
	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/service"

	"github.com/gin-gonic/gin"
)

// CouponCheckRequest 优惠券校验/核销请求
type CouponCheckRequest struct {
	Code        string       `json:"code"`
	CartTotal   models.Money `json:"cart_total"`
	ProductIDs  []uint       `json:"product_ids"`
	CategoryIDs []uint       `json:"category_ids"`
}

func (r CouponCheckRequest) toServiceInput() service.CouponCheckInput {
	return service.CouponCheckInput{
		Code:        r.Code,
		CartTotal:   r.CartTotal,
		ProductIDs:  r.ProductIDs,
		CategoryIDs: r.CategoryIDs,
	}
}

// ValidateCoupon 校验优惠码并返回折扣报价，不产生写入
func (h *Handler) ValidateCoupon(c *gin.Context) {
	var req CouponCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	quote, err := h.CouponService.Validate(req.toServiceInput())
	if err != nil {
		respondCouponError(c, err)
		return
	}

	response.Success(c, quote)
}

// RedeemCoupon 核销优惠码，占用一次使用额度
func (h *Handler) RedeemCoupon(c *gin.Context) {
	var req CouponCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	quote, err := h.CouponService.Redeem(req.toServiceInput(), optionalUserID(c), 0)
	if err != nil {
		respondCouponError(c, err)
		return
	}

	response.Success(c, quote)
}
