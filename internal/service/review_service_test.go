package service

import (
	"errors"
	"testing"

	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/repository"

	"gorm.io/gorm"
)

func setupReviewServiceTest(t *testing.T) (*ReviewService, *models.Product, *gorm.DB) {
	t.Helper()
	db := openTestDB(t, &models.Category{}, &models.Product{}, &models.Review{})
	category := &models.Category{Slug: "skincare", Name: "Skincare"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seed category failed: %v", err)
	}
	product := &models.Product{CategoryID: category.ID, Slug: "saffron-face-serum", Name: "Saffron Face Serum", Price: money(899)}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	svc := NewReviewService(repository.NewReviewRepository(db), repository.NewProductRepository(db))
	return svc, product, db
}

func TestReviewSubmitRatingBounds(t *testing.T) {
	svc, product, _ := setupReviewServiceTest(t)
	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Submit(ReviewInput{ProductID: product.ID, Name: "Asha", Rating: rating})
		if !errors.Is(err, ErrReviewRatingInvalid) {
			t.Fatalf("rating %d: want ErrReviewRatingInvalid, got %v", rating, err)
		}
	}
}

func TestReviewSubmitUnknownProduct(t *testing.T) {
	svc, _, _ := setupReviewServiceTest(t)
	_, err := svc.Submit(ReviewInput{ProductID: 999, Name: "Asha", Rating: 5})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound, got %v", err)
	}
}

func TestReviewSubmitPendingByDefault(t *testing.T) {
	svc, product, _ := setupReviewServiceTest(t)
	review, err := svc.Submit(ReviewInput{
		ProductID: product.ID,
		Name:      "  Asha  ",
		Email:     "asha@example.com",
		Rating:    5,
		Title:     "Lovely glow",
		Comment:   "Visible difference in two weeks.",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if review.IsApproved {
		t.Fatalf("new review should be pending approval")
	}
	if review.Name != "Asha" {
		t.Fatalf("name want trimmed Asha, got %q", review.Name)
	}
}

func TestReviewSummaryCountsOnlyApproved(t *testing.T) {
	svc, product, _ := setupReviewServiceTest(t)

	first, err := svc.Submit(ReviewInput{ProductID: product.ID, Name: "Asha", Rating: 4})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	second, err := svc.Submit(ReviewInput{ProductID: product.ID, Name: "Ravi", Rating: 5})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	summary, err := svc.Summary(product.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalCount != 0 {
		t.Fatalf("pending reviews should not count, got %d", summary.TotalCount)
	}

	if _, err := svc.SetApproved(first.ID, true); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	summary, err = svc.Summary(product.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalCount != 1 || summary.AverageRating != 4 {
		t.Fatalf("summary want count=1 avg=4, got count=%d avg=%v", summary.TotalCount, summary.AverageRating)
	}

	if _, err := svc.SetApproved(second.ID, true); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	summary, err = svc.Summary(product.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalCount != 2 || summary.AverageRating != 4.5 {
		t.Fatalf("summary want count=2 avg=4.5, got count=%d avg=%v", summary.TotalCount, summary.AverageRating)
	}
}

func TestReviewApproveToggleAndDelete(t *testing.T) {
	svc, product, _ := setupReviewServiceTest(t)
	review, err := svc.Submit(ReviewInput{ProductID: product.ID, Name: "Asha", Rating: 3})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	approved, err := svc.SetApproved(review.ID, true)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if !approved.IsApproved {
		t.Fatalf("review should be approved")
	}

	rejected, err := svc.SetApproved(review.ID, false)
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.IsApproved {
		t.Fatalf("review should be back to pending")
	}

	if err := svc.Delete(review.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(review.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("want ErrReviewNotFound after delete, got %v", err)
	}
}
