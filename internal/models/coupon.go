package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon 优惠券
type Coupon struct {
	ID                   uint           `gorm:"primarykey" json:"id"`                                              // 主键
	Code                 string         `gorm:"uniqueIndex;not null" json:"code"`                                  // 优惠码
	DiscountType         string         `gorm:"not null" json:"discount_type"`                                     // 折扣类型（percentage/fixed）
	DiscountValue        Money          `gorm:"type:decimal(20,2);not null" json:"discount_value"`                 // 折扣数值（百分比或固定金额）
	MinPurchaseAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"min_purchase_amount"`  // 使用门槛
	MaxDiscountAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"max_discount_amount"`  // 最大优惠金额（0 表示不封顶）
	UsageLimit           int            `gorm:"not null;default:0" json:"usage_limit"`                             // 总使用上限（0 表示不限制）
	UsedCount            int            `gorm:"not null;default:0" json:"used_count"`                              // 已使用次数
	ValidFrom            *time.Time     `gorm:"index" json:"valid_from"`                                           // 生效时间
	ValidUntil           *time.Time     `gorm:"index" json:"valid_until"`                                          // 失效时间
	Status               string         `gorm:"not null;default:'Active';index" json:"status"`                     // 状态（Active/UnActive）
	ApplicableProducts   UintArray      `gorm:"type:text" json:"applicable_products"`                              // 适用商品ID集合（空表示不限）
	ApplicableCategories UintArray      `gorm:"type:text" json:"applicable_categories"`                            // 适用分类ID集合（空表示不限）
	CreatedAt            time.Time      `gorm:"index" json:"created_at"`                                           // 创建时间
	UpdatedAt            time.Time      `gorm:"index" json:"updated_at"`                                           // 更新时间
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`                                                    // 软删除时间
}

// TableName 指定表名
func (Coupon) TableName() string {
	return "coupons"
}
