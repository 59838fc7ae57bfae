package service

import (
	"errors"
	"testing"

	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/repository"
)

func setupPostServiceTest(t *testing.T) *PostService {
	t.Helper()
	db := openTestDB(t, &models.Post{})
	return NewPostService(repository.NewPostRepository(db))
}

func TestPostPublishSetsPublishedAt(t *testing.T) {
	svc := setupPostServiceTest(t)

	draft, err := svc.Create(PostInput{Slug: "saffron-benefits", Title: "Benefits of Saffron"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if draft.IsPublished || draft.PublishedAt != nil {
		t.Fatalf("draft should have no publish time")
	}

	published, err := svc.Update(draft.ID, PostInput{
		Slug:        "saffron-benefits",
		Title:       "Benefits of Saffron",
		IsPublished: true,
	})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if !published.IsPublished || published.PublishedAt == nil {
		t.Fatalf("publishing should record the publish time")
	}
	firstPublishedAt := *published.PublishedAt

	// 重新发布不改写首次发布时间
	unpublished, err := svc.Update(draft.ID, PostInput{Slug: "saffron-benefits", Title: "Benefits of Saffron"})
	if err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}
	if unpublished.IsPublished {
		t.Fatalf("post should be back to draft")
	}
	republished, err := svc.Update(draft.ID, PostInput{
		Slug:        "saffron-benefits",
		Title:       "Benefits of Saffron",
		IsPublished: true,
	})
	if err != nil {
		t.Fatalf("republish failed: %v", err)
	}
	if republished.PublishedAt == nil || !republished.PublishedAt.Equal(firstPublishedAt) {
		t.Fatalf("republish should keep original publish time")
	}
}

func TestPostPublishedLookupHidesDrafts(t *testing.T) {
	svc := setupPostServiceTest(t)

	if _, err := svc.Create(PostInput{Slug: "drafted", Title: "Drafted"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(PostInput{Slug: "herbal-haircare", Title: "Herbal Haircare", IsPublished: true}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.GetPublishedBySlug("drafted"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("draft lookup want ErrPostNotFound, got %v", err)
	}
	post, err := svc.GetPublishedBySlug("herbal-haircare")
	if err != nil {
		t.Fatalf("published lookup failed: %v", err)
	}
	if post.Slug != "herbal-haircare" {
		t.Fatalf("fetched wrong post: %s", post.Slug)
	}

	posts, total, err := svc.List(repository.PostListFilter{OnlyPublished: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(posts) != 1 {
		t.Fatalf("published list want 1 post, got total=%d len=%d", total, len(posts))
	}
}

func TestPostSlugConflict(t *testing.T) {
	svc := setupPostServiceTest(t)

	if _, err := svc.Create(PostInput{Slug: "saffron-benefits", Title: "Benefits of Saffron"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(PostInput{Slug: "saffron-benefits", Title: "Another"}); !errors.Is(err, ErrPostSlugExists) {
		t.Fatalf("want ErrPostSlugExists, got %v", err)
	}
}

func TestPostDelete(t *testing.T) {
	svc := setupPostServiceTest(t)

	post, err := svc.Create(PostInput{Slug: "to-remove", Title: "To Remove"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(post.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(post.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("want ErrPostNotFound after delete, got %v", err)
	}
}
