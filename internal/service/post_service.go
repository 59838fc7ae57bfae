package service

import (
	"strings"
	"time"

	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/repository"
)

// PostService 博客文章服务
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService 创建博客文章服务
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// PostInput 创建/更新文章输入
type PostInput struct {
	Slug        string
	Title       string
	Summary     string
	Content     string
	Thumbnail   string
	Author      string
	Tags        []string
	IsPublished bool
}

// Get 根据 ID 获取文章
func (s *PostService) Get(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// GetBySlug 获取文章详情
func (s *PostService) GetBySlug(slug string) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// GetPublishedBySlug 获取已发布的文章详情
func (s *PostService) GetPublishedBySlug(slug string) (*models.Post, error) {
	post, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// List 获取文章列表
func (s *PostService) List(filter repository.PostListFilter) ([]models.Post, int64, error) {
	return s.postRepo.List(filter)
}

// Create 创建文章
func (s *PostService) Create(input PostInput) (*models.Post, error) {
	slug := strings.TrimSpace(input.Slug)
	title := strings.TrimSpace(input.Title)
	if slug == "" || title == "" {
		return nil, ErrParamsInvalid
	}

	exist, err := s.postRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrPostSlugExists
	}

	post := &models.Post{
		Slug:        slug,
		Title:       title,
		Summary:     input.Summary,
		Content:     input.Content,
		Thumbnail:   input.Thumbnail,
		Author:      input.Author,
		Tags:        models.StringArray(input.Tags),
		IsPublished: input.IsPublished,
	}
	if post.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update 更新文章
func (s *PostService) Update(id uint, input PostInput) (*models.Post, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	title := strings.TrimSpace(input.Title)
	if slug == "" || title == "" {
		return nil, ErrParamsInvalid
	}

	if slug != existing.Slug {
		dup, err := s.postRepo.GetBySlug(slug)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, ErrPostSlugExists
		}
	}

	// 首次发布时记录发布时间
	if input.IsPublished && !existing.IsPublished && existing.PublishedAt == nil {
		now := time.Now()
		existing.PublishedAt = &now
	}

	existing.Slug = slug
	existing.Title = title
	existing.Summary = input.Summary
	existing.Content = input.Content
	existing.Thumbnail = input.Thumbnail
	existing.Author = input.Author
	existing.Tags = models.StringArray(input.Tags)
	existing.IsPublished = input.IsPublished

	if err := s.postRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete 删除文章
func (s *PostService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.postRepo.Delete(id)
}
