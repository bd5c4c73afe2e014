package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pixelmart-dev/go-backend/internal/domain"
	"github.com/pixelmart-dev/go-backend/internal/usecase"
	"github.com/pixelmart-dev/go-backend/pkg/e"
)

func blogFixture() (*fakePostRepo, *fakeCategoryRepo) {
	categoryRepo := &fakeCategoryRepo{categories: []domain.Category{
		{StoreID: "bc1", ID: 10, Name: "News", Slug: "news"},
		{StoreID: "bc2", ID: 11, Name: "Reviews", Slug: "reviews"},
	}}

	postRepo := &fakePostRepo{posts: []domain.Post{
		{
			StoreID: "b1", ID: 1, Title: "Old news", Slug: "old-news", Date: "2026-01-10",
			Categories: []domain.CategoryRef{{ID: 10, Slug: "news"}},
		},
		{
			StoreID: "b2", ID: 2, Title: "Fresh review", Slug: "fresh-review", Date: "2026-03-05",
			Categories: []domain.CategoryRef{{ID: 11, Slug: "reviews"}},
		},
		{
			StoreID: "b3", ID: 3, Title: "Breaking news", Slug: "breaking-news", Date: "2026-02-20",
			Categories: []domain.CategoryRef{{ID: 10, Slug: "news"}},
		},
	}}

	return postRepo, categoryRepo
}

func TestPosts_CategoryFilterAndPagination(t *testing.T) {
	postRepo, categoryRepo := blogFixture()
	uc := usecase.NewBlogUC(postRepo, categoryRepo, nopLogger{})

	res, err := uc.Posts(context.Background(), &usecase.PostsReq{Category: "news"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 2 {
		t.Fatalf("want 2 news posts, got %d", res.Total)
	}

	to := 1
	res, err = uc.Posts(context.Background(), &usecase.PostsReq{Category: "news", To: &to})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 2 || len(res.Data) != 1 || res.Data[0].Slug != "old-news" {
		t.Fatalf("want first news post with total 2, got %v total %d", res.Data, res.Total)
	}
}

func TestPost_Related(t *testing.T) {
	postRepo, categoryRepo := blogFixture()
	uc := usecase.NewBlogUC(postRepo, categoryRepo, nopLogger{})

	res, err := uc.Post(context.Background(), &usecase.PostReq{Slug: "old-news"})
	if err != nil {
		t.Fatal(err)
	}

	if res.Data.Slug != "old-news" {
		t.Fatalf("want old-news, got %v", res.Data.Slug)
	}
	if len(res.Related) != 1 || res.Related[0].Slug != "breaking-news" {
		t.Fatalf("want related [breaking-news], got %v", res.Related)
	}
}

func TestPost_RelatedCappedAtFour(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{}
	postRepo := &fakePostRepo{}
	for i := 1; i <= 7; i++ {
		postRepo.posts = append(postRepo.posts, domain.Post{
			ID: int64(i), Slug: fmt.Sprintf("post-%d", i),
			Categories: []domain.CategoryRef{{ID: 10, Slug: "news"}},
		})
	}
	uc := usecase.NewBlogUC(postRepo, categoryRepo, nopLogger{})

	res, err := uc.Post(context.Background(), &usecase.PostReq{Slug: "post-1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Related) != 4 {
		t.Fatalf("related capped at 4, got %d", len(res.Related))
	}
}

func TestPost_NotFound(t *testing.T) {
	postRepo, categoryRepo := blogFixture()
	uc := usecase.NewBlogUC(postRepo, categoryRepo, nopLogger{})

	_, err := uc.Post(context.Background(), &usecase.PostReq{Slug: "nope"})
	if !errors.Is(err, e.ErrPostNotFound) {
		t.Fatalf("want ErrPostNotFound, got %v", err)
	}
}

func TestPostSidebarData(t *testing.T) {
	postRepo, categoryRepo := blogFixture()
	uc := usecase.NewBlogUC(postRepo, categoryRepo, nopLogger{})

	res, err := uc.PostSidebarData(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Categories) != 2 {
		t.Fatalf("want all categories, got %d", len(res.Categories))
	}
	if len(res.Recent) != 2 || res.Recent[0].Slug != "fresh-review" || res.Recent[1].Slug != "breaking-news" {
		t.Fatalf("want two newest posts, got %v", res.Recent)
	}
}
