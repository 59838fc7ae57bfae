package models

import (
	"time"

	"gorm.io/gorm"
)

// Cart 购物车（结账开始时落库，下单后归属到用户）
type Cart struct {
	ID        uint           `gorm:"primarykey" json:"id"`    // 主键
	UserID    uint           `gorm:"index" json:"user_id"`    // 用户ID（未认领时为 0）
	CreatedAt time.Time      `gorm:"index" json:"created_at"` // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"` // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`          // 软删除时间

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"` // 购物车项
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}

// CartItem 购物车项
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                   // 主键
	CartID    uint           `gorm:"not null;index" json:"cart_id"`                          // 购物车ID
	ProductID uint           `gorm:"not null;index" json:"product_id"`                       // 商品ID
	Quantity  int            `gorm:"not null" json:"quantity"`                               // 数量
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`     // 加入时单价快照
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                                // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                         // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
