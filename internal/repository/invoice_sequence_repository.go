package repository

import (
	"errors"

	"github.com/wellkart/wellkart/internal/models"

	"gorm.io/gorm"
)

// ErrInvoiceSequenceConflict 计数器并发冲突（需重试）
var ErrInvoiceSequenceConflict = errors.New("invoice sequence conflict")

// invoiceSequenceMaxRetries 乐观锁重试上限
const invoiceSequenceMaxRetries = 10

// InvoiceSequenceRepository 发票序号计数器数据访问接口
type InvoiceSequenceRepository interface {
	Next(name string) (int64, error)
	Current(name string) (int64, error)
	WithTx(tx *gorm.DB) *GormInvoiceSequenceRepository
}

// GormInvoiceSequenceRepository GORM 实现
type GormInvoiceSequenceRepository struct {
	db *gorm.DB
}

// NewInvoiceSequenceRepository 创建发票序号仓库
func NewInvoiceSequenceRepository(db *gorm.DB) *GormInvoiceSequenceRepository {
	return &GormInvoiceSequenceRepository{db: db}
}

// WithTx 绑定事务
func (r *GormInvoiceSequenceRepository) WithTx(tx *gorm.DB) *GormInvoiceSequenceRepository {
	if tx == nil {
		return r
	}
	return &GormInvoiceSequenceRepository{db: tx}
}

// Current 获取当前已分配的最大序号
func (r *GormInvoiceSequenceRepository) Current(name string) (int64, error) {
	var seq models.InvoiceSequence
	if err := r.db.Where("name = ?", name).First(&seq).Error; err != nil {
		return 0, err
	}
	return seq.Value, nil
}

// Next 分配下一个序号。
// 递增通过带当前值条件的 UPDATE 完成（乐观锁），同一序号不会被分配两次；
// 冲突时重读重试，超过上限返回 ErrInvoiceSequenceConflict。
func (r *GormInvoiceSequenceRepository) Next(name string) (int64, error) {
	for i := 0; i < invoiceSequenceMaxRetries; i++ {
		var seq models.InvoiceSequence
		if err := r.db.Where("name = ?", name).First(&seq).Error; err != nil {
			return 0, err
		}
		next := seq.Value + 1
		result := r.db.Model(&models.InvoiceSequence{}).
			Where("name = ? AND value = ?", name, seq.Value).
			Update("value", next)
		if result.Error != nil {
			return 0, result.Error
		}
		if result.RowsAffected > 0 {
			return next, nil
		}
	}
	return 0, ErrInvoiceSequenceConflict
}
