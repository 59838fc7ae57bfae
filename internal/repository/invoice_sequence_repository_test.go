package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wellkart/wellkart/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupInvoiceSequenceTest(t *testing.T) *GormInvoiceSequenceRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.InvoiceSequence{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	if err := db.Create(&models.InvoiceSequence{Name: "invoice_no", Value: 1000}).Error; err != nil {
		t.Fatalf("seed sequence failed: %v", err)
	}
	return NewInvoiceSequenceRepository(db)
}

func TestInvoiceSequenceNextIsMonotonic(t *testing.T) {
	repo := setupInvoiceSequenceTest(t)

	for want := int64(1001); want <= 1005; want++ {
		got, err := repo.Next("invoice_no")
		if err != nil {
			t.Fatalf("next failed: %v", err)
		}
		if got != want {
			t.Fatalf("sequence want %d, got %d", want, got)
		}
	}

	current, err := repo.Current("invoice_no")
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if current != 1005 {
		t.Fatalf("current want 1005, got %d", current)
	}
}

func TestInvoiceSequenceUnknownName(t *testing.T) {
	repo := setupInvoiceSequenceTest(t)

	if _, err := repo.Next("no_such_counter"); err == nil {
		t.Fatalf("unknown counter should fail")
	}
	if _, err := repo.Current("no_such_counter"); err == nil {
		t.Fatalf("unknown counter should fail")
	}
}
