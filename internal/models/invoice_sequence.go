package models

import "time"

// InvoiceSequence 发票序号计数器（单行，通过条件更新串行分配）
type InvoiceSequence struct {
	ID        uint      `gorm:"primarykey" json:"id"`               // 主键
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`   // 计数器名称
	Value     int64     `gorm:"not null" json:"value"`              // 当前已分配的最大序号
	UpdatedAt time.Time `json:"updated_at"`                         // 更新时间
}

// TableName 指定表名
func (InvoiceSequence) TableName() string {
	return "invoice_sequences"
}
