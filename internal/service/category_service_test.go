package service

import (
	"errors"
	"testing"

	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/repository"

	"gorm.io/gorm"
)

func setupCategoryServiceTest(t *testing.T) (*CategoryService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t, &models.Category{}, &models.Product{})
	svc := NewCategoryService(repository.NewCategoryRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func TestCategoryCreateAndSlugConflict(t *testing.T) {
	svc, _ := setupCategoryServiceTest(t)

	if _, err := svc.Create(CategoryInput{Slug: " ", Name: "Skincare"}); !errors.Is(err, ErrParamsInvalid) {
		t.Fatalf("blank slug want ErrParamsInvalid, got %v", err)
	}

	created, err := svc.Create(CategoryInput{Slug: "skincare", Name: "Skincare", SortOrder: 2})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(CategoryInput{Slug: "skincare", Name: "Another"}); !errors.Is(err, ErrCategorySlugExists) {
		t.Fatalf("want ErrCategorySlugExists, got %v", err)
	}

	fetched, err := svc.GetBySlug("skincare")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if fetched.ID != created.ID || fetched.SortOrder != 2 {
		t.Fatalf("fetched wrong category: id=%d sort=%d", fetched.ID, fetched.SortOrder)
	}
}

func TestCategoryUpdateSlugConflict(t *testing.T) {
	svc, _ := setupCategoryServiceTest(t)

	if _, err := svc.Create(CategoryInput{Slug: "skincare", Name: "Skincare"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	haircare, err := svc.Create(CategoryInput{Slug: "haircare", Name: "Haircare"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(haircare.ID, CategoryInput{Slug: "skincare", Name: "Haircare"}); !errors.Is(err, ErrCategorySlugExists) {
		t.Fatalf("update to taken slug want ErrCategorySlugExists, got %v", err)
	}

	updated, err := svc.Update(haircare.ID, CategoryInput{Slug: "hair-care", Name: "Hair Care"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Slug != "hair-care" || updated.Name != "Hair Care" {
		t.Fatalf("update not applied: slug=%s name=%s", updated.Slug, updated.Name)
	}
}

func TestCategoryDeleteRefusedWhileInUse(t *testing.T) {
	svc, db := setupCategoryServiceTest(t)

	category, err := svc.Create(CategoryInput{Slug: "wellness", Name: "Wellness"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	product := &models.Product{CategoryID: category.ID, Slug: "ashwagandha", Name: "Ashwagandha", Price: money(599)}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}

	if err := svc.Delete(category.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("want ErrCategoryInUse, got %v", err)
	}

	if err := db.Delete(&models.Product{}, product.ID).Error; err != nil {
		t.Fatalf("delete product failed: %v", err)
	}
	if err := svc.Delete(category.ID); err != nil {
		t.Fatalf("delete after emptying failed: %v", err)
	}
	if _, err := svc.Get(category.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("want ErrCategoryNotFound after delete, got %v", err)
	}
}
