package public

import (
	"time"

	"github.com/wellkart/wellkart/internal/http/response"
	"github.com/wellkart/wellkart/internal/service"

	"github.com/gin-gonic/gin"
)

const authCookieName = "auth_token"

// BeginCheckoutRequest 开始结账请求
type BeginCheckoutRequest struct {
	Contact service.ContactInput        `json:"contact"`
	Items   []service.CheckoutItemInput `json:"items"`
}

// PlaceOrderRequest 提交订单请求
type PlaceOrderRequest struct {
	Token      string                      `json:"checkout_token"`
	Contact    service.ContactInput        `json:"contact"`
	Items      []service.CheckoutItemInput `json:"items"`
	CouponCode string                      `json:"coupon_code"`
	RememberMe bool                        `json:"remember_me"`
}

// BeginCheckout 开始结账：落库购物车与地址，签发续接令牌并写入 HTTP-only Cookie
func (h *Handler) BeginCheckout(c *gin.Context) {
	var req BeginCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	result, err := h.CheckoutService.BeginCheckout(service.BeginCheckoutInput{
		Contact: req.Contact,
		Items:   req.Items,
	})
	if err != nil {
		respondCheckoutError(c, err, checkoutBeginErrorRules)
		return
	}

	h.setCheckoutCookie(c, result.Token, result.TokenExpiresAt)
	response.Success(c, result)
}

// PlaceOrder 提交订单：校验续接令牌，创建游客账号与订单，写入登录态 Cookie
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	token := req.Token
	if token == "" {
		if cookie, err := c.Cookie(h.Config.Checkout.CookieName); err == nil {
			token = cookie
		}
	}
	if token == "" {
		respondError(c, response.CodeBadRequest, "error.checkout_token_invalid", nil)
		return
	}

	result, err := h.CheckoutService.PlaceOrder(service.PlaceOrderInput{
		Token:      token,
		Contact:    req.Contact,
		Items:      req.Items,
		CouponCode: req.CouponCode,
		RememberMe: req.RememberMe,
		ClientIP:   c.ClientIP(),
	})
	if err != nil {
		respondCheckoutError(c, err, checkoutPlaceErrorRules)
		return
	}

	// 结账完成后续接令牌作废，同时写入会话令牌
	h.clearCheckoutCookie(c)
	h.setAuthCookie(c, result.SessionToken, result.SessionExpiresAt)
	response.Success(c, result)
}

func (h *Handler) setCheckoutCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetCookie(h.Config.Checkout.CookieName, token, maxAge, "/", "", h.Config.Checkout.CookieSecure, true)
}

func (h *Handler) clearCheckoutCookie(c *gin.Context) {
	c.SetCookie(h.Config.Checkout.CookieName, "", -1, "/", "", h.Config.Checkout.CookieSecure, true)
}

func (h *Handler) setAuthCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetCookie(authCookieName, token, maxAge, "/", "", h.Config.Checkout.CookieSecure, true)
}
