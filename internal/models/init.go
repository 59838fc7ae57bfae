package models

import (
	"strconv"
	"strings"

	"github.com/wellkart/wellkart/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitDefaultAdmin 初始化默认管理员账号
func InitDefaultAdmin(username, password string) error {
	var count int64
	DB.Model(&Admin{}).Count(&count)

	// 如果已有管理员，确保默认 admin 拥有超级管理员权限
	if count > 0 {
		if err := DB.Model(&Admin{}).Where("username = ?", "admin").Update("is_super", true).Error; err != nil {
			logger.Warnw("ensure_default_admin_super_failed", "error", err)
		}
		return nil
	}

	// 创建默认管理员
	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := Admin{
		Username:     username,
		PasswordHash: string(hash),
		IsSuper:      strings.EqualFold(strings.TrimSpace(username), "admin"),
	}

	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == "admin123" {
		logger.Warnw("default_admin_created_with_default_password", "username", username, "password", password)
		logger.Warnw("default_admin_password_change_required", "username", username)
	} else {
		logger.Warnw("default_admin_created", "username", username, "password_hidden", true)
	}

	return nil
}

// InitInvoiceSequence 初始化发票序号计数器（起始值 1000，首张发票为 1001）
// 若历史订单中已有更大的序号，以其为准，避免重复分配。
func InitInvoiceSequence(name string, seed int64, prefix string) error {
	var seq InvoiceSequence
	err := DB.Where("name = ?", name).First(&seq).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	start := seed
	var invoiceNos []string
	if err := DB.Model(&Order{}).Pluck("invoice_no", &invoiceNos).Error; err == nil {
		for _, no := range invoiceNos {
			rest, ok := strings.CutPrefix(no, prefix+":")
			if !ok {
				continue
			}
			if n, perr := strconv.ParseInt(rest, 10, 64); perr == nil && n > start {
				start = n
			}
		}
	}

	seq = InvoiceSequence{Name: name, Value: start}
	if err := DB.Create(&seq).Error; err != nil {
		return err
	}
	logger.Infow("invoice_sequence_initialized", "name", name, "value", start)
	return nil
}
