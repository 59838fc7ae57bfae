package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wellkart/wellkart/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// openTestDB 打开测试用内存数据库并迁移给定模型
func openTestDB(t *testing.T, entities ...interface{}) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(entities...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

// bindGlobalDB 将全局数据库指向测试库，供依赖事务入口的服务使用
func bindGlobalDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	prev := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = prev })
}

func money(amount int64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromInt(amount))
}
