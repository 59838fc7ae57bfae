package service

import (
	"strings"

	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/repository"
)

// ProductService 商品服务
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ProductInput 创建/更新商品输入
type ProductInput struct {
	CategoryID   uint
	Slug         string
	Name         string
	SubTitle     string
	Description  string
	Price        models.Money
	ComparePrice models.Money
	Images       []string
	Tags         []string
	Benefits     []string
	Ingredients  []string
	Stock        int
	IsActive     *bool
	SortOrder    int
}

// GetBySlug 获取商品详情
func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Get 根据 ID 获取商品
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// List 获取商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" || input.CategoryID == 0 {
		return nil, ErrParamsInvalid
	}

	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	exist, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrProductSlugExists
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	product := &models.Product{
		CategoryID:   input.CategoryID,
		Slug:         slug,
		Name:         name,
		SubTitle:     strings.TrimSpace(input.SubTitle),
		Description:  input.Description,
		Price:        input.Price,
		ComparePrice: input.ComparePrice,
		Images:       models.StringArray(input.Images),
		Tags:         models.StringArray(input.Tags),
		Benefits:     models.StringArray(input.Benefits),
		Ingredients:  models.StringArray(input.Ingredients),
		Stock:        input.Stock,
		IsActive:     isActive,
		SortOrder:    input.SortOrder,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 更新商品
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" || input.CategoryID == 0 {
		return nil, ErrParamsInvalid
	}

	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if slug != existing.Slug {
		dup, err := s.productRepo.GetBySlug(slug)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, ErrProductSlugExists
		}
	}

	if input.IsActive != nil {
		existing.IsActive = *input.IsActive
	}
	existing.CategoryID = input.CategoryID
	existing.Slug = slug
	existing.Name = name
	existing.SubTitle = strings.TrimSpace(input.SubTitle)
	existing.Description = input.Description
	existing.Price = input.Price
	existing.ComparePrice = input.ComparePrice
	existing.Images = models.StringArray(input.Images)
	existing.Tags = models.StringArray(input.Tags)
	existing.Benefits = models.StringArray(input.Benefits)
	existing.Ingredients = models.StringArray(input.Ingredients)
	existing.Stock = input.Stock
	existing.SortOrder = input.SortOrder

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}
