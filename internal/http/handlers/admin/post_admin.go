package admin

import (
	"errors"
	"strconv"

	"github.com/wellkart/wellkart/internal/http/response"
	"github.com/wellkart/wellkart/internal/repository"
	"github.com/wellkart/wellkart/internal/service"

	"github.com/gin-gonic/gin"
)

// PostRequest 创建/更新文章请求
type PostRequest struct {
	Slug        string   `json:"slug" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Summary     string   `json:"summary"`
	Content     string   `json:"content"`
	Thumbnail   string   `json:"thumbnail"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"is_published"`
}

func (r PostRequest) toServiceInput() service.PostInput {
	return service.PostInput{
		Slug:        r.Slug,
		Title:       r.Title,
		Summary:     r.Summary,
		Content:     r.Content,
		Thumbnail:   r.Thumbnail,
		Author:      r.Author,
		Tags:        r.Tags,
		IsPublished: r.IsPublished,
	}
}

func respondPostAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		respondError(c, response.CodeNotFound, "error.post_not_found", nil)
	case errors.Is(err, service.ErrPostSlugExists):
		respondError(c, response.CodeBadRequest, "error.post_slug_exists", nil)
	case errors.Is(err, service.ErrParamsInvalid):
		respondError(c, response.CodeBadRequest, "error.params_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.internal", err)
	}
}

// GetAdminPosts 获取文章列表 (Admin)
func (h *Handler) GetAdminPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	posts, total, err := h.PostService.List(repository.PostListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		Tag:      c.Query("tag"),
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
	response.SuccessWithPage(c, posts, pagination)
}

// GetAdminPost 获取文章详情 (Admin)
func (h *Handler) GetAdminPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	post, err := h.PostService.Get(uint(postID))
	if err != nil {
		respondPostAdminError(c, err)
		return
	}
	response.Success(c, post)
}

// CreatePost 创建文章
func (h *Handler) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	post, err := h.PostService.Create(req.toServiceInput())
	if err != nil {
		respondPostAdminError(c, err)
		return
	}
	response.Success(c, post)
}

// UpdatePost 更新文章
func (h *Handler) UpdatePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	post, err := h.PostService.Update(uint(postID), req.toServiceInput())
	if err != nil {
		respondPostAdminError(c, err)
		return
	}
	response.Success(c, post)
}

// DeletePost 删除文章
func (h *Handler) DeletePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	if err := h.PostService.Delete(uint(postID)); err != nil {
		respondPostAdminError(c, err)
		return
	}
	response.Success(c, gin.H{
		"deleted": true,
	})
}
