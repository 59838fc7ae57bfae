package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                      // 主键
	InvoiceNo      string         `gorm:"uniqueIndex;not null" json:"invoice_no"`                    // 发票编号（WK:<序号>）
	UserID         uint           `gorm:"index;not null" json:"user_id"`                             // 用户ID
	Email          string         `gorm:"index;not null" json:"email"`                               // 下单邮箱快照
	FullName       string         `gorm:"not null" json:"full_name"`                                 // 收件人姓名快照
	MobileNumber   string         `gorm:"not null" json:"mobile_number"`                             // 手机号快照
	CartID         uint           `gorm:"index;not null" json:"cart_id"`                             // 购物车ID
	AddressID      uint           `gorm:"index;not null" json:"address_id"`                          // 地址ID
	SubtotalAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal_amount"` // 商品小计
	DiscountAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"` // 优惠金额
	TotalAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 应付金额
	CouponID       *uint          `gorm:"index" json:"coupon_id,omitempty"`                          // 优惠券ID
	OrderStatus    string         `gorm:"index;not null" json:"order_status"`                        // 订单状态
	PaymentMethod  string         `gorm:"not null" json:"payment_method"`                            // 支付方式（COD）
	PaymentStatus  string         `gorm:"index;not null" json:"payment_status"`                      // 支付状态
	ClientIP       string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`               // 下单客户端IP
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`                                   // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	// 关联
	Cart    *Cart    `gorm:"foreignKey:CartID" json:"cart,omitempty"`       // 购物车快照
	Address *Address `gorm:"foreignKey:AddressID" json:"address,omitempty"` // 收货地址
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
