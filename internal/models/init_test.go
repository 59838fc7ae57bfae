package models

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// openInitTestDB 打开内存数据库并绑定到全局 DB，测试结束后恢复
func openInitTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&InvoiceSequence{}, &Order{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	prev := DB
	DB = db
	t.Cleanup(func() { DB = prev })
	return db
}

func currentSequenceValue(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	var seq InvoiceSequence
	if err := db.Where("name = ?", name).First(&seq).Error; err != nil {
		t.Fatalf("load sequence %q failed: %v", name, err)
	}
	return seq.Value
}

func TestInitInvoiceSequenceSeedsFreshDatabase(t *testing.T) {
	db := openInitTestDB(t)

	if err := InitInvoiceSequence("invoice_no", 1000, "WK"); err != nil {
		t.Fatalf("InitInvoiceSequence failed: %v", err)
	}
	if got := currentSequenceValue(t, db, "invoice_no"); got != 1000 {
		t.Fatalf("sequence value = %d, want 1000", got)
	}
}

func TestInitInvoiceSequenceIsIdempotent(t *testing.T) {
	db := openInitTestDB(t)

	if err := InitInvoiceSequence("invoice_no", 1000, "WK"); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := db.Model(&InvoiceSequence{}).Where("name = ?", "invoice_no").Update("value", 1042).Error; err != nil {
		t.Fatalf("bump sequence failed: %v", err)
	}

	if err := InitInvoiceSequence("invoice_no", 1000, "WK"); err != nil {
		t.Fatalf("second init failed: %v", err)
	}
	if got := currentSequenceValue(t, db, "invoice_no"); got != 1042 {
		t.Fatalf("sequence value = %d, want 1042 after repeated init", got)
	}

	var count int64
	if err := db.Model(&InvoiceSequence{}).Where("name = ?", "invoice_no").Count(&count).Error; err != nil {
		t.Fatalf("count sequences failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("sequence rows = %d, want 1", count)
	}
}

func TestInitInvoiceSequenceAdoptsExistingOrders(t *testing.T) {
	db := openInitTestDB(t)

	orders := []Order{
		{InvoiceNo: "WK:2041", UserID: 1, Email: "a@example.com", FullName: "A", MobileNumber: "1", CartID: 1, AddressID: 1, OrderStatus: "OrderPlaced", PaymentMethod: "COD", PaymentStatus: "UnPaid"},
		{InvoiceNo: "WK:1003", UserID: 1, Email: "b@example.com", FullName: "B", MobileNumber: "1", CartID: 2, AddressID: 2, OrderStatus: "OrderPlaced", PaymentMethod: "COD", PaymentStatus: "UnPaid"},
		{InvoiceNo: "LEGACY-77", UserID: 1, Email: "c@example.com", FullName: "C", MobileNumber: "1", CartID: 3, AddressID: 3, OrderStatus: "OrderPlaced", PaymentMethod: "COD", PaymentStatus: "UnPaid"},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			t.Fatalf("create order %d failed: %v", i, err)
		}
	}

	if err := InitInvoiceSequence("invoice_no", 1000, "WK"); err != nil {
		t.Fatalf("InitInvoiceSequence failed: %v", err)
	}
	if got := currentSequenceValue(t, db, "invoice_no"); got != 2041 {
		t.Fatalf("sequence value = %d, want 2041 from existing orders", got)
	}
}
