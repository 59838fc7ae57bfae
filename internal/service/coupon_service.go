package service

import (
	"strings"
	"time"

	"github.com/wellkart/wellkart/internal/constants"
	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CouponService 优惠券服务
type CouponService struct {
	couponRepo repository.CouponRepository
	usageRepo  repository.CouponUsageRepository
}

// NewCouponService 创建优惠券服务
func NewCouponService(couponRepo repository.CouponRepository, usageRepo repository.CouponUsageRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		usageRepo:  usageRepo,
	}
}

// CouponQuote 优惠券校验结果
type CouponQuote struct {
	Coupon         *models.Coupon `json:"coupon"`
	CartTotal      models.Money   `json:"cart_total"`
	DiscountAmount models.Money   `json:"discount_amount"`
	PayableAmount  models.Money   `json:"payable_amount"`
}

// CouponCheckInput 优惠券校验输入
type CouponCheckInput struct {
	Code        string
	CartTotal   models.Money
	ProductIDs  []uint
	CategoryIDs []uint
}

// Validate 校验优惠码并计算折扣，不产生任何写入。
// 校验按固定顺序进行，命中第一条未通过的规则即返回对应错误。
func (s *CouponService) Validate(input CouponCheckInput) (*CouponQuote, error) {
	trimmed := strings.TrimSpace(input.Code)
	if trimmed == "" {
		return nil, ErrCouponCodeRequired
	}

	coupon, err := s.couponRepo.GetByCode(trimmed)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	if err := s.checkRedeemable(coupon, input, time.Now()); err != nil {
		return nil, err
	}

	discount := s.calculateDiscount(coupon, input.CartTotal)
	return s.buildQuote(coupon, input.CartTotal, discount), nil
}

// Redeem 核销优惠码：重新完整校验后原子递增使用次数并落使用记录。
// 递增与使用记录同一事务提交，使用上限通过带条件的 UPDATE 保证，
// 并发核销不会超出上限。
func (s *CouponService) Redeem(input CouponCheckInput, userID, orderID uint) (*CouponQuote, error) {
	var quote *CouponQuote
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		q, err := s.redeemTx(tx, input, userID, orderID)
		if err != nil {
			return err
		}
		quote = q
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 返回递增后的状态
	updated, err := s.couponRepo.GetByID(quote.Coupon.ID)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		quote.Coupon = updated
	}
	return quote, nil
}

// redeemTx 在既有事务内核销，供下单流程复用
func (s *CouponService) redeemTx(tx *gorm.DB, input CouponCheckInput, userID, orderID uint) (*CouponQuote, error) {
	quote, err := s.Validate(input)
	if err != nil {
		return nil, err
	}

	couponRepo := s.couponRepo.WithTx(tx)
	ok, err := couponRepo.IncrementUsedCountGuarded(quote.Coupon.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCouponUsageLimit
	}

	usage := &models.CouponUsage{
		CouponID:       quote.Coupon.ID,
		UserID:         userID,
		OrderID:        orderID,
		CartTotal:      quote.CartTotal,
		DiscountAmount: quote.DiscountAmount,
	}
	if err := s.usageRepo.WithTx(tx).Create(usage); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *CouponService) checkRedeemable(coupon *models.Coupon, input CouponCheckInput, now time.Time) error {
	if coupon.Status != constants.CouponStatusActive {
		return ErrCouponNotActive
	}
	if coupon.ValidFrom != nil && now.Before(*coupon.ValidFrom) {
		return ErrCouponOutOfWindow
	}
	if coupon.ValidUntil != nil && now.After(*coupon.ValidUntil) {
		return ErrCouponOutOfWindow
	}
	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return ErrCouponUsageLimit
	}
	if input.CartTotal.Decimal.Cmp(coupon.MinPurchaseAmount.Decimal) < 0 {
		return &CouponMinAmountError{MinAmount: coupon.MinPurchaseAmount}
	}
	if len(coupon.ApplicableProducts) > 0 && !coupon.ApplicableProducts.IntersectsAny(input.ProductIDs) {
		return ErrCouponProductScope
	}
	// 分类限制仅在调用方提供了分类上下文时生效
	if len(coupon.ApplicableCategories) > 0 && len(input.CategoryIDs) > 0 &&
		!coupon.ApplicableCategories.IntersectsAny(input.CategoryIDs) {
		return ErrCouponCategoryScope
	}
	return nil
}

func (s *CouponService) calculateDiscount(coupon *models.Coupon, cartTotal models.Money) models.Money {
	var discount decimal.Decimal
	switch coupon.DiscountType {
	case constants.CouponTypePercentage:
		percent := coupon.DiscountValue.Decimal.Div(decimal.NewFromInt(100))
		discount = cartTotal.Decimal.Mul(percent)
		if coupon.MaxDiscountAmount.Decimal.GreaterThan(decimal.Zero) &&
			discount.GreaterThan(coupon.MaxDiscountAmount.Decimal) {
			discount = coupon.MaxDiscountAmount.Decimal
		}
	case constants.CouponTypeFixed:
		discount = coupon.DiscountValue.Decimal
	default:
		discount = decimal.Zero
	}
	// 固定金额大于购物车总额时按总额抵扣，折扣不为负
	if discount.GreaterThan(cartTotal.Decimal) {
		discount = cartTotal.Decimal
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	return models.NewMoneyFromDecimal(discount)
}

func (s *CouponService) buildQuote(coupon *models.Coupon, cartTotal, discount models.Money) *CouponQuote {
	payable := cartTotal.Decimal.Sub(discount.Decimal)
	if payable.IsNegative() {
		payable = decimal.Zero
	}
	return &CouponQuote{
		Coupon:         coupon,
		CartTotal:      cartTotal,
		DiscountAmount: discount,
		PayableAmount:  models.NewMoneyFromDecimal(payable),
	}
}
