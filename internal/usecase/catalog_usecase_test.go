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

func catalogFixture() (*fakeProductRepo, *fakeCategoryRepo) {
	categories := []domain.Category{
		{StoreID: "c1", ID: 1, Name: "Games", Slug: "games"},
		{StoreID: "c2", ID: 2, Name: "RPG", Slug: "rpg", Parent: "games"},
		{StoreID: "c3", ID: 3, Name: "Consoles", Slug: "consoles"},
	}

	products := []domain.Product{
		{
			StoreID: "p1", ID: 1, Name: "Chrono Quest", Slug: "chrono-quest",
			Price: 30, Ratings: 5, SaleCount: 10, IsHot: true,
			Categories: []domain.CategoryRef{{ID: 2, Slug: "rpg"}},
			Tags:       []domain.Tag{{ID: 1, Slug: "classic"}},
		},
		{
			StoreID: "p2", ID: 2, Name: "Star Racer", Slug: "star-racer",
			Price: 50, Ratings: 3, SaleCount: 40, IsNew: true,
			Categories: []domain.CategoryRef{{ID: 1, Slug: "games"}},
			Brands:     []domain.Brand{{ID: 1, Slug: "nitro"}},
		},
		{
			StoreID: "p3", ID: 3, Name: "Retro Box", Slug: "retro-box",
			Price: 100, Ratings: 4, SaleCount: 25,
			IsSale: true, Until: "2999-01-01",
			Categories: []domain.CategoryRef{{ID: 3, Slug: "consoles"}},
			Variants: []domain.Variant{
				{Price: 90, Color: &domain.VariantColor{Name: "Black"}},
				{Price: 110, Size: &domain.VariantSize{Size: "XL"}},
			},
		},
	}

	return &fakeProductRepo{products: products}, &fakeCategoryRepo{categories: categories}
}

func TestProducts_Pagination(t *testing.T) {
	productRepo := &fakeProductRepo{}
	for i := 1; i <= 10; i++ {
		productRepo.products = append(productRepo.products, domain.Product{
			ID: int64(i), Slug: fmt.Sprintf("game-%d", i), Name: fmt.Sprintf("Game %d", i),
		})
	}
	uc := usecase.NewCatalogUC(productRepo, &fakeCategoryRepo{}, nopLogger{})

	to := 4
	res, err := uc.Products(context.Background(), &usecase.ProductsReq{From: 2, To: &to})
	if err != nil {
		t.Fatal(err)
	}

	if res.Total != 10 {
		t.Fatalf("want total 10, got %d", res.Total)
	}
	if len(res.Data) != 2 || res.Data[0].Slug != "game-3" || res.Data[1].Slug != "game-4" {
		t.Fatalf("want [game-3 game-4], got %v", res.Data)
	}
}

func TestProducts_PaginationClamps(t *testing.T) {
	productRepo := &fakeProductRepo{products: []domain.Product{{ID: 1, Slug: "only"}}}
	uc := usecase.NewCatalogUC(productRepo, &fakeCategoryRepo{}, nopLogger{})

	to := 100
	res, err := uc.Products(context.Background(), &usecase.ProductsReq{From: 50, To: &to})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Data) != 0 || res.Total != 1 {
		t.Fatalf("out-of-range page must be empty, got %v total %d", res.Data, res.Total)
	}
}

func TestProducts_FiltersAreConjunctive(t *testing.T) {
	productRepo, categoryRepo := catalogFixture()
	uc := usecase.NewCatalogUC(productRepo, categoryRepo, nopLogger{})

	res, err := uc.Products(context.Background(), &usecase.ProductsReq{
		Search: "chrono",
		Tag:    "classic",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Data) != 1 || res.Data[0].Slug != "chrono-quest" {
		t.Fatalf("want chrono-quest, got %v", res.Data)
	}

	// тот же поиск с чужим тегом не находит ничего
	res, err = uc.Products(context.Background(), &usecase.ProductsReq{
		Search: "chrono",
		Tag:    "arcade",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Data) != 0 {
		t.Fatalf("want empty, got %v", res.Data)
	}
}

func TestProducts_CategorySubtreeAndFamily(t *testing.T) {
	productRepo, categoryRepo := catalogFixture()
	uc := usecase.NewCatalogUC(productRepo, categoryRepo, nopLogger{})

	res, err := uc.Products(context.Background(), &usecase.ProductsReq{Category: "games"})
	if err != nil {
		t.Fatal(err)
	}

	// games и его потомок rpg
	if res.Total != 2 {
		t.Fatalf("want 2 products in subtree, got %d", res.Total)
	}
	if len(res.CategoryFamily) != 1 || res.CategoryFamily[0].Slug != "games" {
		t.Fatalf("want family [games], got %v", res.CategoryFamily)
	}

	res, err = uc.Products(context.Background(), &usecase.ProductsReq{Category: "rpg"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || res.Data[0].Slug != "chrono-quest" {
		t.Fatalf("want chrono-quest only, got %v", res.Data)
	}
	family := res.CategoryFamily
	if len(family) != 2 || family[0].Slug != "games" || family[1].Slug != "rpg" {
		t.Fatalf("want family [games rpg], got %v", family)
	}
}

func TestProducts_UnknownCategoryMatchesNothing(t *testing.T) {
	productRepo, categoryRepo := catalogFixture()
	uc := usecase.NewCatalogUC(productRepo, categoryRepo, nopLogger{})

	res, err := uc.Products(context.Background(), &usecase.ProductsReq{Category: "ghost"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 0 || len(res.CategoryFamily) != 0 {
		t.Fatalf("unknown category must exclude everything, got total %d", res.Total)
	}
}

func TestProducts_PriceFilterNeedsBothBounds(t *testing.T) {
	productRepo, categoryRepo := catalogFixture()
	uc := usecase.NewCatalogUC(productRepo, categoryRepo, nopLogger{})

	min := 40.0
	res, err := uc.Products(context.Background(), &usecase.ProductsReq{MinPrice: &min})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 3 {
		t.Fatalf("single bound must not filter, got total %d", res.Total)
	}

	max := 60.0
	res, err = uc.Products(context.Background(), &usecase.ProductsReq{MinPrice: &min, MaxPrice: &max})
	if err != nil {
		t.Fatal(err)
	}
	// фильтр по разрешённому минимуму: 30, 50, 90 → остаётся 50
	if res.Total != 1 || res.Data[0].Slug != "star-racer" {
		t.Fatalf("want star-racer, got %v", res.Data)
	}
}

func TestProducts_VariantFilters(t *testing.T) {
	productRepo, categoryRepo := catalogFixture()
	uc := usecase.NewCatalogUC(productRepo, categoryRepo, nopLogger{})

	res, err := uc.Products(context.Background(), &usecase.ProductsReq{Colors: []string{"Black"}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || res.Data[0].Slug != "retro-box" {
		t.Fatalf("want retro-box, got %v", res.Data)
	}

	// цвет и размер должны сойтись на одном варианте
	res, err = uc.Products(context.Background(), &usecase.ProductsReq{
		Colors: []string{"Black"},
		Sizes:  []string{"XL"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 0 {
		t.Fatalf("no single variant has both attributes, got %v", res.Data)
	}
}

func TestProducts_SortByPrice(t *testing.T) {
	productRepo, categoryRepo := catalogFixture()
	uc := usecase.NewCatalogUC(productRepo, categoryRepo, nopLogger{})

	res, err := uc.Products(context.Background(), &usecase.ProductsReq{SortBy: usecase.SortPrice})
	if err != nil {
		t.Fatal(err)
	}

	// минимумы диапазонов: 30, 50, 90
	want := []string{"chrono-quest", "star-racer", "retro-box"}
	for i, slug := range want {
		if res.Data[i].Slug != slug {
			t.Fatalf("want order %v, got %v at %d", want, res.Data[i].Slug, i)
		}
	}

	res, err = uc.Products(context.Background(), &usecase.ProductsReq{SortBy: usecase.SortPriceDesc})
	if err != nil {
		t.Fatal(err)
	}
	if res.Data[0].Slug != "retro-box" {
		t.Fatalf("want retro-box first on price-desc, got %v", res.Data[0].Slug)
	}
}

func TestProduct_PrevNextRelated(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{categories: []domain.Category{
		{StoreID: "c1", ID: 1, Name: "Games", Slug: "games"},
	}}
	productRepo := &fakeProductRepo{}
	for i := 1; i <= 6; i++ {
		productRepo.products = append(productRepo.products, domain.Product{
			ID: int64(i), Slug: fmt.Sprintf("game-%d", i),
			Categories: []domain.CategoryRef{{ID: 1, Slug: "games"}},
		})
	}
	uc := usecase.NewCatalogUC(productRepo, categoryRepo, nopLogger{})

	res, err := uc.Product(context.Background(), &usecase.ProductReq{Slug: "game-3"})
	if err != nil {
		t.Fatal(err)
	}

	if res.Data.Slug != "game-3" {
		t.Fatalf("want game-3, got %v", res.Data.Slug)
	}
	if res.Prev == nil || res.Prev.Slug != "game-2" {
		t.Fatalf("want prev game-2, got %v", res.Prev)
	}
	if res.Next == nil || res.Next.Slug != "game-4" {
		t.Fatalf("want next game-4, got %v", res.Next)
	}
	if len(res.Related) != 3 {
		t.Fatalf("related capped at 3, got %d", len(res.Related))
	}
	for _, rel := range res.Related {
		if rel.Slug == "game-3" {
			t.Fatal("related must not contain the product itself")
		}
	}
}

func TestProduct_Boundaries(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{categories: []domain.Category{
		{StoreID: "c1", ID: 1, Name: "Games", Slug: "games"},
	}}
	productRepo := &fakeProductRepo{products: []domain.Product{
		{ID: 1, Slug: "first", Categories: []domain.CategoryRef{{ID: 1, Slug: "games"}}},
		{ID: 2, Slug: "last", Categories: []domain.CategoryRef{{ID: 1, Slug: "games"}}},
	}}
	uc := usecase.NewCatalogUC(productRepo, categoryRepo, nopLogger{})

	res, err := uc.Product(context.Background(), &usecase.ProductReq{Slug: "first"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Prev != nil {
		t.Fatalf("first product must have no prev, got %v", res.Prev)
	}
	if res.Next == nil || res.Next.Slug != "last" {
		t.Fatalf("want next last, got %v", res.Next)
	}
}

func TestProduct_OnlyData(t *testing.T) {
	productRepo, categoryRepo := catalogFixture()
	uc := usecase.NewCatalogUC(productRepo, categoryRepo, nopLogger{})

	res, err := uc.Product(context.Background(), &usecase.ProductReq{Slug: "chrono-quest", OnlyData: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Data == nil || res.Prev != nil || res.Next != nil || len(res.Related) != 0 {
		t.Fatalf("onlyData must skip neighbours, got %+v", res)
	}
}

func TestProduct_NotFound(t *testing.T) {
	productRepo, categoryRepo := catalogFixture()
	uc := usecase.NewCatalogUC(productRepo, categoryRepo, nopLogger{})

	_, err := uc.Product(context.Background(), &usecase.ProductReq{Slug: "nope"})
	if !errors.Is(err, e.ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound, got %v", err)
	}
}

func TestSpecialProducts(t *testing.T) {
	productRepo, categoryRepo := catalogFixture()
	uc := usecase.NewCatalogUC(productRepo, categoryRepo, nopLogger{})

	res, err := uc.SpecialProducts(context.Background(), &usecase.SpecialProductsReq{
		Featured:    true,
		BestSelling: true,
		TopRated:    true,
		Latest:      true,
		OnSale:      true,
		Count:       2,
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Featured) != 1 || res.Featured[0].Slug != "chrono-quest" {
		t.Fatalf("want featured [chrono-quest], got %v", res.Featured)
	}
	if len(res.BestSelling) != 2 || res.BestSelling[0].Slug != "star-racer" {
		t.Fatalf("want best selling star-racer first, got %v", res.BestSelling)
	}
	if len(res.TopRated) != 2 || res.TopRated[0].Slug != "chrono-quest" {
		t.Fatalf("want top rated chrono-quest first, got %v", res.TopRated)
	}
	if len(res.Latest) != 1 || res.Latest[0].Slug != "star-racer" {
		t.Fatalf("want latest [star-racer], got %v", res.Latest)
	}
	if len(res.OnSale) != 1 || res.OnSale[0].Slug != "retro-box" {
		t.Fatalf("want on sale [retro-box], got %v", res.OnSale)
	}
}

func TestSpecialProducts_UnrequestedStayEmpty(t *testing.T) {
	productRepo, categoryRepo := catalogFixture()
	uc := usecase.NewCatalogUC(productRepo, categoryRepo, nopLogger{})

	res, err := uc.SpecialProducts(context.Background(), &usecase.SpecialProductsReq{TopRated: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Featured != nil || res.BestSelling != nil || res.Latest != nil || res.OnSale != nil {
		t.Fatalf("unrequested selections must stay nil, got %+v", res)
	}
	if len(res.TopRated) != 3 {
		t.Fatalf("count 0 means no cap, got %d", len(res.TopRated))
	}
}

func TestDealProducts(t *testing.T) {
	productRepo, categoryRepo := catalogFixture()
	uc := usecase.NewCatalogUC(productRepo, categoryRepo, nopLogger{})

	res, err := uc.DealProducts(context.Background(), &usecase.DealProductsReq{Count: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Data) != 1 || res.Data[0].Slug != "retro-box" {
		t.Fatalf("want [retro-box], got %v", res.Data)
	}
}

func TestShopSidebarData(t *testing.T) {
	productRepo, categoryRepo := catalogFixture()
	uc := usecase.NewCatalogUC(productRepo, categoryRepo, nopLogger{})

	res, err := uc.ShopSidebarData(context.Background(), &usecase.ShopSidebarReq{Featured: true})
	if err != nil {
		t.Fatal(err)
	}

	// по имени: Consoles, Games, RPG
	wantOrder := []string{"consoles", "games", "rpg"}
	wantCounts := []int{1, 2, 1}
	if len(res.Categories) != 3 {
		t.Fatalf("want 3 categories, got %d", len(res.Categories))
	}
	for i := range wantOrder {
		got := res.Categories[i]
		if got.Category.Slug != wantOrder[i] || got.Count != wantCounts[i] {
			t.Fatalf("at %d want %s=%d, got %s=%d", i, wantOrder[i], wantCounts[i], got.Category.Slug, got.Count)
		}
	}

	if len(res.Featured) != 1 || res.Featured[0].Slug != "chrono-quest" {
		t.Fatalf("want featured [chrono-quest], got %v", res.Featured)
	}
}
