package models

import (
	"time"

	"gorm.io/gorm"
)

// CouponUsage 优惠券核销记录，留存核销时点的金额快照。
type CouponUsage struct {
	ID       uint `gorm:"primarykey" json:"id"`
	CouponID uint `gorm:"index;not null" json:"coupon_id"`
	UserID   uint `gorm:"index" json:"user_id"`  // 核销时可为 0
	OrderID  uint `gorm:"index" json:"order_id"` // 预检（不落单）时为 0

	CartTotal      Money `gorm:"type:decimal(20,2);not null;default:0" json:"cart_total"`
	DiscountAmount Money `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"`

	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名
func (CouponUsage) TableName() string {
	return "coupon_usages"
}
