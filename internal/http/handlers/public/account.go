package public

import (
	"errors"
	"strconv"

	handlershared "github.com/wellkart/wellkart/internal/http/handlers/shared"
	"github.com/wellkart/wellkart/internal/http/response"
	"github.com/wellkart/wellkart/internal/repository"
	"github.com/wellkart/wellkart/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser 获取当前登录用户资料
func (h *Handler) GetCurrentUser(c *gin.Context) {
	user, err := h.UserAuthService.Profile(optionalUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, response.CodeUnauthorized, "error.token_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"user": user})
}

// GetMyOrders 获取当前用户的订单列表
func (h *Handler) GetMyOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.List(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   optionalUserID(c),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetMyOrder 根据发票编号获取当前用户的订单详情
func (h *Handler) GetMyOrder(c *gin.Context) {
	order, err := h.OrderService.GetByInvoiceNo(c.Param("invoice_no"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	// 不暴露他人订单
	if order.UserID != optionalUserID(c) {
		respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		return
	}
	response.Success(c, order)
}
