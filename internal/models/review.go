package models

import (
	"time"

	"gorm.io/gorm"
)

// Review 商品评价表
type Review struct {
	ID         uint           `gorm:"primarykey" json:"id"`                     // 主键
	ProductID  uint           `gorm:"not null;index" json:"product_id"`         // 商品ID
	UserID     uint           `gorm:"index" json:"user_id"`                     // 用户ID（匿名评价为 0）
	Name       string         `gorm:"not null" json:"name"`                     // 评价人姓名
	Email      string         `gorm:"index" json:"email"`                       // 评价人邮箱
	Rating     int            `gorm:"not null" json:"rating"`                   // 评分（1-5）
	Title      string         `json:"title"`                                    // 评价标题
	Comment    string         `gorm:"type:text" json:"comment"`                 // 评价内容
	IsApproved bool           `gorm:"default:false;index" json:"is_approved"`   // 是否审核通过
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                  // 创建时间
	UpdatedAt  time.Time      `json:"updated_at"`                               // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                           // 软删除时间

	// 关联
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
