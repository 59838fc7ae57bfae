package admin

import (
	"errors"
	"strconv"

	"github.com/wellkart/wellkart/internal/http/response"
	"github.com/wellkart/wellkart/internal/repository"
	"github.com/wellkart/wellkart/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminReviews 获取评价列表 (Admin)
func (h *Handler) GetAdminReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	productID, _ := strconv.ParseUint(c.Query("product_id"), 10, 64)

	var isApproved *bool
	if raw := c.Query("is_approved"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.invalid_request", err)
			return
		}
		isApproved = &parsed
	}

	reviews, total, err := h.ReviewService.List(repository.ReviewListFilter{
		Page:       page,
		PageSize:   pageSize,
		ProductID:  uint(productID),
		IsApproved: isApproved,
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
	response.SuccessWithPage(c, reviews, pagination)
}

// ApproveReviewRequest 审核评价请求
type ApproveReviewRequest struct {
	IsApproved bool `json:"is_approved"`
}

// ApproveReview 审核评价
func (h *Handler) ApproveReview(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || reviewID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	var req ApproveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	review, err := h.ReviewService.SetApproved(uint(reviewID), req.IsApproved)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			respondError(c, response.CodeNotFound, "error.review_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, review)
}

// DeleteReview 删除评价
func (h *Handler) DeleteReview(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || reviewID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	if err := h.ReviewService.Delete(uint(reviewID)); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			respondError(c, response.CodeNotFound, "error.review_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{
		"deleted": true,
	})
}
