package service

import (
	"strings"
	"time"

	"github.com/wellkart/wellkart/internal/constants"
	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/repository"

	"github.com/shopspring/decimal"
)

// CouponAdminService 优惠券管理服务
type CouponAdminService struct {
	repo repository.CouponRepository
}

// NewCouponAdminService 创建优惠券管理服务
func NewCouponAdminService(repo repository.CouponRepository) *CouponAdminService {
	return &CouponAdminService{repo: repo}
}

// CouponInput 创建/更新优惠券输入
type CouponInput struct {
	Code                 string
	DiscountType         string
	DiscountValue        models.Money
	MinPurchaseAmount    models.Money
	MaxDiscountAmount    models.Money
	UsageLimit           int
	ValidFrom            *time.Time
	ValidUntil           *time.Time
	Status               string
	ApplicableProducts   []uint
	ApplicableCategories []uint
}

// Create 创建优惠券
func (s *CouponAdminService) Create(input CouponInput) (*models.Coupon, error) {
	code, discountType, status, err := s.normalize(input)
	if err != nil {
		return nil, err
	}

	exist, err := s.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrCouponCodeExists
	}

	coupon := &models.Coupon{
		Code:                 code,
		DiscountType:         discountType,
		DiscountValue:        input.DiscountValue,
		MinPurchaseAmount:    input.MinPurchaseAmount,
		MaxDiscountAmount:    input.MaxDiscountAmount,
		UsageLimit:           input.UsageLimit,
		UsedCount:            0,
		ValidFrom:            input.ValidFrom,
		ValidUntil:           input.ValidUntil,
		Status:               status,
		ApplicableProducts:   models.UintArray(input.ApplicableProducts),
		ApplicableCategories: models.UintArray(input.ApplicableCategories),
	}

	if err := s.repo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update 更新优惠券（已使用次数不可改写）
func (s *CouponAdminService) Update(id uint, input CouponInput) (*models.Coupon, error) {
	if id == 0 {
		return nil, ErrCouponNotFound
	}
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCouponNotFound
	}

	code, discountType, status, err := s.normalize(input)
	if err != nil {
		return nil, err
	}

	if code != existing.Code {
		dup, err := s.repo.GetByCode(code)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, ErrCouponCodeExists
		}
	}

	existing.Code = code
	existing.DiscountType = discountType
	existing.DiscountValue = input.DiscountValue
	existing.MinPurchaseAmount = input.MinPurchaseAmount
	existing.MaxDiscountAmount = input.MaxDiscountAmount
	existing.UsageLimit = input.UsageLimit
	existing.ValidFrom = input.ValidFrom
	existing.ValidUntil = input.ValidUntil
	existing.Status = status
	existing.ApplicableProducts = models.UintArray(input.ApplicableProducts)
	existing.ApplicableCategories = models.UintArray(input.ApplicableCategories)

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete 删除优惠券
func (s *CouponAdminService) Delete(id uint) error {
	if id == 0 {
		return ErrCouponNotFound
	}
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCouponNotFound
	}
	return s.repo.Delete(id)
}

// Get 获取优惠券详情
func (s *CouponAdminService) Get(id uint) (*models.Coupon, error) {
	coupon, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

// List 获取优惠券列表
func (s *CouponAdminService) List(filter repository.CouponListFilter) ([]models.Coupon, int64, error) {
	return s.repo.List(filter)
}

func (s *CouponAdminService) normalize(input CouponInput) (code, discountType, status string, err error) {
	code = strings.TrimSpace(input.Code)
	if code == "" {
		return "", "", "", ErrCouponCodeRequired
	}
	discountType = strings.ToLower(strings.TrimSpace(input.DiscountType))
	if discountType != constants.CouponTypePercentage && discountType != constants.CouponTypeFixed {
		return "", "", "", ErrCouponTypeInvalid
	}
	if input.DiscountValue.Decimal.LessThanOrEqual(decimal.Zero) {
		return "", "", "", ErrCouponValueInvalid
	}
	if discountType == constants.CouponTypePercentage && input.DiscountValue.Decimal.GreaterThan(decimal.NewFromInt(100)) {
		return "", "", "", ErrCouponValueInvalid
	}
	if input.ValidFrom != nil && input.ValidUntil != nil && input.ValidUntil.Before(*input.ValidFrom) {
		return "", "", "", ErrCouponWindowInvalid
	}
	status = strings.TrimSpace(input.Status)
	if status == "" {
		status = constants.CouponStatusActive
	}
	if status != constants.CouponStatusActive && status != constants.CouponStatusUnActive {
		return "", "", "", ErrCouponStatusInvalid
	}
	return code, discountType, status, nil
}
