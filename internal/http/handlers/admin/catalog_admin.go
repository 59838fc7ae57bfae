package admin

import (
	"errors"
	"strconv"

	"github.com/wellkart/wellkart/internal/http/response"
	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/repository"
	"github.com/wellkart/wellkart/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest 创建/更新商品请求
type ProductRequest struct {
	CategoryID   uint         `json:"category_id" binding:"required"`
	Slug         string       `json:"slug" binding:"required"`
	Name         string       `json:"name" binding:"required"`
	SubTitle     string       `json:"sub_title"`
	Description  string       `json:"description"`
	Price        models.Money `json:"price"`
	ComparePrice models.Money `json:"compare_price"`
	Images       []string     `json:"images"`
	Tags         []string     `json:"tags"`
	Benefits     []string     `json:"benefits"`
	Ingredients  []string     `json:"ingredients"`
	Stock        int          `json:"stock"`
	IsActive     *bool        `json:"is_active"`
	SortOrder    int          `json:"sort_order"`
}

func (r ProductRequest) toServiceInput() service.ProductInput {
	return service.ProductInput{
		CategoryID:   r.CategoryID,
		Slug:         r.Slug,
		Name:         r.Name,
		SubTitle:     r.SubTitle,
		Description:  r.Description,
		Price:        r.Price,
		ComparePrice: r.ComparePrice,
		Images:       r.Images,
		Tags:         r.Tags,
		Benefits:     r.Benefits,
		Ingredients:  r.Ingredients,
		Stock:        r.Stock,
		IsActive:     r.IsActive,
		SortOrder:    r.SortOrder,
	}
}

func respondCatalogAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
	case errors.Is(err, service.ErrProductSlugExists):
		respondError(c, response.CodeBadRequest, "error.product_slug_exists", nil)
	case errors.Is(err, service.ErrCategoryNotFound):
		respondError(c, response.CodeNotFound, "error.category_not_found", nil)
	case errors.Is(err, service.ErrCategorySlugExists):
		respondError(c, response.CodeBadRequest, "error.category_slug_exists", nil)
	case errors.Is(err, service.ErrCategoryInUse):
		respondError(c, response.CodeBadRequest, "error.category_in_use", nil)
	case errors.Is(err, service.ErrParamsInvalid):
		respondError(c, response.CodeBadRequest, "error.params_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.internal", err)
	}
}

// GetAdminProducts 获取商品列表 (Admin)
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   uint(categoryID),
		Search:       c.Query("search"),
		WithCategory: true,
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
	response.SuccessWithPage(c, products, pagination)
}

// GetAdminProduct 获取商品详情 (Admin)
func (h *Handler) GetAdminProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	product, err := h.ProductService.Get(uint(productID))
	if err != nil {
		respondCatalogAdminError(c, err)
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	product, err := h.ProductService.Create(req.toServiceInput())
	if err != nil {
		respondCatalogAdminError(c, err)
		return
	}
	response.Success(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	product, err := h.ProductService.Update(uint(productID), req.toServiceInput())
	if err != nil {
		respondCatalogAdminError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	if err := h.ProductService.Delete(uint(productID)); err != nil {
		respondCatalogAdminError(c, err)
		return
	}
	response.Success(c, gin.H{
		"deleted": true,
	})
}

// CategoryRequest 创建/更新分类请求
type CategoryRequest struct {
	Slug        string `json:"slug" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	SortOrder   int    `json:"sort_order"`
}

func (r CategoryRequest) toServiceInput() service.CategoryInput {
	return service.CategoryInput{
		Slug:        r.Slug,
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
		SortOrder:   r.SortOrder,
	}
}

// GetAdminCategories 获取分类列表 (Admin)
func (h *Handler) GetAdminCategories(c *gin.Context) {
	categories, err := h.CategoryService.ListAll()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, categories)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	category, err := h.CategoryService.Create(req.toServiceInput())
	if err != nil {
		respondCatalogAdminError(c, err)
		return
	}
	response.Success(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || categoryID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	category, err := h.CategoryService.Update(uint(categoryID), req.toServiceInput())
	if err != nil {
		respondCatalogAdminError(c, err)
		return
	}
	response.Success(c, category)
}

// DeleteCategory 删除分类
func (h *Handler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || categoryID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	if err := h.CategoryService.Delete(uint(categoryID)); err != nil {
		respondCatalogAdminError(c, err)
		return
	}
	response.Success(c, gin.H{
		"deleted": true,
	})
}
