package models

import (
	"time"

	"gorm.io/gorm"
)

// Address 收货地址（结账开始时落库，下单后归属到用户）
type Address struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                        // 主键
	UserID        uint           `gorm:"index" json:"user_id"`                                        // 用户ID（未认领时为 0）
	FirstName     string         `gorm:"not null" json:"first_name"`                                  // 名
	LastName      string         `gorm:"not null" json:"last_name"`                                   // 姓
	Address       string         `gorm:"not null" json:"address"`                                     // 街道地址
	Apartment     string         `json:"apartment"`                                                   // 门牌/公寓（可选）
	Landmark      string         `json:"landmark"`                                                    // 地标（可选）
	City          string         `gorm:"not null" json:"city"`                                        // 城市
	State         string         `gorm:"not null" json:"state"`                                       // 省/邦
	PinCode       string         `gorm:"not null" json:"pin_code"`                                    // 邮编
	Email         string         `gorm:"index;not null" json:"email"`                                 // 联系邮箱
	MobileNumber  string         `gorm:"not null" json:"mobile_number"`                               // 手机号
	TypeOfAddress string         `gorm:"type:varchar(20);not null;default:'Home'" json:"type_of_address"` // 地址类型（Home/Work）
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`                                     // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间
}

// TableName 指定表名
func (Address) TableName() string {
	return "addresses"
}
