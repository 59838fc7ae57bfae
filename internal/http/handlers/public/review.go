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

// SubmitReviewRequest 提交评价请求
type SubmitReviewRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Rating  int    `json:"rating" binding:"required"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// GetProductReviews 获取商品的已审核评价列表
func (h *Handler) GetProductReviews(c *gin.Context) {
	product, err := h.ProductService.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	reviews, total, err := h.ReviewService.List(repository.ReviewListFilter{
		Page:         page,
		PageSize:     pageSize,
		ProductID:    product.ID,
		OnlyApproved: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, reviews, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// SubmitProductReview 提交商品评价，进入待审核队列
func (h *Handler) SubmitProductReview(c *gin.Context) {
	product, err := h.ProductService.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	review, err := h.ReviewService.Submit(service.ReviewInput{
		ProductID: product.ID,
		UserID:    optionalUserID(c),
		Name:      req.Name,
		Email:     req.Email,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
	})
	if err != nil {
		respondWithMappedError(c, err, reviewSubmitErrorRules, response.CodeInternal, "error.internal")
		return
	}

	response.Success(c, review)
}
