package service

import (
	"errors"
	"testing"

	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/repository"

	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (*ProductService, *models.Category, *gorm.DB) {
	t.Helper()
	db := openTestDB(t, &models.Category{}, &models.Product{})
	category := &models.Category{Slug: "skincare", Name: "Skincare"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seed category failed: %v", err)
	}
	svc := NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db))
	return svc, category, db
}

func TestProductCreateValidation(t *testing.T) {
	svc, category, _ := setupProductServiceTest(t)

	_, err := svc.Create(ProductInput{Slug: "serum", Name: "Serum"})
	if !errors.Is(err, ErrParamsInvalid) {
		t.Fatalf("missing category want ErrParamsInvalid, got %v", err)
	}
	_, err = svc.Create(ProductInput{CategoryID: category.ID, Slug: "  ", Name: "Serum"})
	if !errors.Is(err, ErrParamsInvalid) {
		t.Fatalf("blank slug want ErrParamsInvalid, got %v", err)
	}
	_, err = svc.Create(ProductInput{CategoryID: 999, Slug: "serum", Name: "Serum"})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("unknown category want ErrCategoryNotFound, got %v", err)
	}
}

func TestProductSlugConflict(t *testing.T) {
	svc, category, _ := setupProductServiceTest(t)

	if _, err := svc.Create(ProductInput{CategoryID: category.ID, Slug: "serum", Name: "Serum", Price: money(899)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	_, err := svc.Create(ProductInput{CategoryID: category.ID, Slug: "serum", Name: "Another Serum"})
	if !errors.Is(err, ErrProductSlugExists) {
		t.Fatalf("want ErrProductSlugExists, got %v", err)
	}

	other, err := svc.Create(ProductInput{CategoryID: category.ID, Slug: "toner", Name: "Toner"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	// 改名到已占用的 slug 也应拒绝
	_, err = svc.Update(other.ID, ProductInput{CategoryID: category.ID, Slug: "serum", Name: "Toner"})
	if !errors.Is(err, ErrProductSlugExists) {
		t.Fatalf("update to taken slug want ErrProductSlugExists, got %v", err)
	}
}

func TestProductUpdateAndGetBySlug(t *testing.T) {
	svc, category, _ := setupProductServiceTest(t)

	created, err := svc.Create(ProductInput{
		CategoryID: category.ID,
		Slug:       "bhringraj-hair-oil",
		Name:       "Bhringraj Hair Oil",
		Price:      money(499),
		Stock:      25,
		Benefits:   []string{"Reduces hairfall"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !created.IsActive {
		t.Fatalf("product should be active by default")
	}

	inactive := false
	updated, err := svc.Update(created.ID, ProductInput{
		CategoryID: category.ID,
		Slug:       "bhringraj-hair-oil",
		Name:       "Bhringraj Hair Oil 200ml",
		Price:      money(549),
		Stock:      10,
		IsActive:   &inactive,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Bhringraj Hair Oil 200ml" || updated.Price.String() != "549.00" {
		t.Fatalf("update not applied: name=%s price=%s", updated.Name, updated.Price.String())
	}
	if updated.IsActive {
		t.Fatalf("product should be deactivated")
	}

	fetched, err := svc.GetBySlug(" bhringraj-hair-oil ")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if fetched.ID != created.ID {
		t.Fatalf("fetched wrong product: want %d, got %d", created.ID, fetched.ID)
	}

	if _, err := svc.GetBySlug("no-such-product"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound, got %v", err)
	}
}

func TestProductDelete(t *testing.T) {
	svc, category, _ := setupProductServiceTest(t)
	created, err := svc.Create(ProductInput{CategoryID: category.ID, Slug: "rose-water-toner", Name: "Rose Water Toner"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound after delete, got %v", err)
	}
	if err := svc.Delete(created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("double delete want ErrProductNotFound, got %v", err)
	}
}

func TestProductListFilters(t *testing.T) {
	svc, category, db := setupProductServiceTest(t)
	other := &models.Category{Slug: "haircare", Name: "Haircare"}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("seed category failed: %v", err)
	}

	if _, err := svc.Create(ProductInput{CategoryID: category.ID, Slug: "serum", Name: "Saffron Serum"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	inactive := false
	if _, err := svc.Create(ProductInput{CategoryID: other.ID, Slug: "oil", Name: "Hair Oil", IsActive: &inactive}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	products, total, err := svc.List(repository.ProductListFilter{CategoryID: category.ID})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || products[0].Slug != "serum" {
		t.Fatalf("category filter want serum only, got total=%d", total)
	}

	_, total, err = svc.List(repository.ProductListFilter{OnlyActive: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("active filter want 1 product, got %d", total)
	}
}
