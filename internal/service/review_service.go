package service

import (
	"strings"

	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/repository"
)

// ReviewService 商品评价服务
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService 创建商品评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// ReviewInput 提交评价输入
type ReviewInput struct {
	ProductID uint
	UserID    uint
	Name      string
	Email     string
	Rating    int
	Title     string
	Comment   string
}

// ReviewSummary 商品评分汇总
type ReviewSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalCount    int64   `json:"total_count"`
}

// Submit 提交评价（默认待审核）
func (s *ReviewService) Submit(input ReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrReviewRatingInvalid
	}
	name := strings.TrimSpace(input.Name)
	if name == "" || input.ProductID == 0 {
		return nil, ErrParamsInvalid
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	review := &models.Review{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Name:      name,
		Email:     strings.TrimSpace(input.Email),
		Rating:    input.Rating,
		Title:     strings.TrimSpace(input.Title),
		Comment:   input.Comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Get 根据 ID 获取评价
func (s *ReviewService) Get(id uint) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// List 获取评价列表
func (s *ReviewService) List(filter repository.ReviewListFilter) ([]models.Review, int64, error) {
	return s.reviewRepo.List(filter)
}

// Summary 获取商品的已审核评价汇总
func (s *ReviewService) Summary(productID uint) (*ReviewSummary, error) {
	avg, count, err := s.reviewRepo.AverageRating(productID)
	if err != nil {
		return nil, err
	}
	return &ReviewSummary{AverageRating: avg, TotalCount: count}, nil
}

// SetApproved 审核评价
func (s *ReviewService) SetApproved(id uint, approved bool) (*models.Review, error) {
	review, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	review.IsApproved = approved
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete 删除评价
func (s *ReviewService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.reviewRepo.Delete(id)
}
