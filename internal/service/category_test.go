package service

import (
	"context"
	"errors"
	"testing"

	"github.com/BloggingApp/blog-api/internal/repository/redisrepo"
)

func TestCategoryOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.seedUser(t)
	stranger := env.seedUser(t)

	category, err := env.services.Category.Create(ctx, owner.ID, "news")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	if _, err := env.services.Category.Update(ctx, stranger.ID, category.ID, "hijacked"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner on foreign update, got %v", err)
	}
	if _, err := env.services.Category.Delete(ctx, stranger.ID, category.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner on foreign delete, got %v", err)
	}

	updated, err := env.services.Category.Update(ctx, owner.ID, category.ID, "world news")
	if err != nil {
		t.Fatalf("update category: %v", err)
	}
	if updated.Title != "world news" {
		t.Fatalf("expected title updated, got %q", updated.Title)
	}

	if _, err := env.services.Category.Delete(ctx, owner.ID, category.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	if _, err := env.services.Category.FindByID(ctx, category.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound after delete, got %v", err)
	}
}

func TestCategoryListCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.seedUser(t)
	if _, err := env.services.Category.Create(ctx, owner.ID, "news"); err != nil {
		t.Fatalf("create category: %v", err)
	}

	categories, err := env.services.Category.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(categories))
	}
	if _, ok := env.cache.data[redisrepo.CategoriesKey()]; !ok {
		t.Fatal("expected the category list cached after a read")
	}

	// Writes invalidate the list so the next read sees the new entry.
	if _, err := env.services.Category.Create(ctx, owner.ID, "sports"); err != nil {
		t.Fatalf("create second category: %v", err)
	}
	if _, ok := env.cache.data[redisrepo.CategoriesKey()]; ok {
		t.Fatal("expected the cached list invalidated after a create")
	}

	categories, err = env.services.Category.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all after create: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
}
