package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/pixelmart-dev/go-backend/internal/domain"
	"github.com/pixelmart-dev/go-backend/pkg/e"
	"github.com/pixelmart-dev/go-backend/pkg/logger"
)

// CatalogUseCase реализует запросы каталога: полный скан коллекций,
// фильтрация, сортировка и пагинация в памяти.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	logger       logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, categoryRepo CategoryRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Products возвращает страницу отфильтрованных и отсортированных товаров
// вместе с общим числом совпадений и цепочкой предков категории фильтра.
func (c *CatalogUseCase) Products(ctx context.Context, req *ProductsReq) (*ProductsRes, error) {
	const op = "CatalogUseCase.Products"

	products, categories, err := c.loadCatalog(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		treeSlugs map[string]bool
		family    []domain.Category
	)
	if req.Category != "" {
		// Несуществующий slug оставляет поддерево пустым: фильтр
		// по категории активен и отсекает всё.
		treeSlugs = map[string]bool{}
		if cat := FindCategoryBySlug(categories, req.Category); cat != nil {
			tree := CategoryTree(categories, []domain.CategoryRef{cat.Ref()})
			treeSlugs = refSlugSet(tree)
			family = FamilyTree(categories, cat)
		}
	}

	filtered := make([]domain.Product, 0, len(products))
	for i := range products {
		if c.matchProduct(&products[i], req, treeSlugs) {
			filtered = append(filtered, products[i])
		}
	}

	sortProducts(filtered, req.SortBy)

	return NewProductsRes(paginate(filtered, req.From, req.To), len(filtered), family), nil
}

// Product возвращает товар по slug вместе с соседями по связанной выборке.
// Связанные товары — все, чьи категории пересекают поддерево категорий
// самого товара; prev/next — соседи в этом порядке.
func (c *CatalogUseCase) Product(ctx context.Context, req *ProductReq) (*ProductRes, error) {
	const op = "CatalogUseCase.Product"

	products, categories, err := c.loadCatalog(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var product *domain.Product
	for i := range products {
		if products[i].Slug == req.Slug {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	if req.OnlyData {
		return &ProductRes{Data: product}, nil
	}

	tree := CategoryTree(categories, product.Categories)
	treeSlugs := refSlugSet(tree)

	related := make([]domain.Product, 0)
	for i := range products {
		if intersectsCategories(products[i].Categories, treeSlugs) {
			related = append(related, products[i])
		}
	}

	index := -1
	for i := range related {
		if related[i].Slug == product.Slug {
			index = i
			break
		}
	}

	res := &ProductRes{Data: product}
	if index > 0 {
		res.Prev = &related[index-1]
	}
	if index >= 0 && index < len(related)-1 {
		res.Next = &related[index+1]
	}

	others := make([]domain.Product, 0, len(related))
	for i := range related {
		if related[i].Slug != product.Slug {
			others = append(others, related[i])
		}
	}
	res.Related = capProducts(others, 3)

	return res, nil
}

// SpecialProducts собирает запрошенные подборки. Каждая считается на
// собственной копии выборки, сортировки друг на друга не влияют.
func (c *CatalogUseCase) SpecialProducts(ctx context.Context, req *SpecialProductsReq) (*SpecialProductsRes, error) {
	const op = "CatalogUseCase.SpecialProducts"

	products, err := c.loadProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	res := &SpecialProductsRes{}

	if req.Featured {
		res.Featured = capProducts(filterProducts(products, func(p *domain.Product) bool {
			return p.IsHot
		}), req.Count)
	}

	if req.BestSelling {
		bySales := append([]domain.Product(nil), products...)
		sort.SliceStable(bySales, func(i, j int) bool {
			return bySales[i].SaleCount > bySales[j].SaleCount
		})
		res.BestSelling = capProducts(bySales, req.Count)
	}

	if req.TopRated {
		byRating := append([]domain.Product(nil), products...)
		sort.SliceStable(byRating, func(i, j int) bool {
			return byRating[i].Ratings > byRating[j].Ratings
		})
		res.TopRated = capProducts(byRating, req.Count)
	}

	if req.Latest {
		res.Latest = capProducts(filterProducts(products, func(p *domain.Product) bool {
			return p.IsNew
		}), req.Count)
	}

	if req.OnSale {
		now := time.Now()
		res.OnSale = capProducts(filterProducts(products, func(p *domain.Product) bool {
			return IsSaleProduct(p, now)
		}), req.Count)
	}

	return res, nil
}

// DealProducts возвращает товары с дедлайном распродажи.
func (c *CatalogUseCase) DealProducts(ctx context.Context, req *DealProductsReq) (*DealProductsRes, error) {
	const op = "CatalogUseCase.DealProducts"

	products, err := c.loadProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	deals := filterProducts(products, func(p *domain.Product) bool {
		return p.Until != ""
	})

	return &DealProductsRes{Data: capProducts(deals, req.Count)}, nil
}

// ShopSidebarData возвращает категории c числом товаров их поддеревьев
// (по имени по возрастанию) и, по запросу, до трёх горячих товаров.
func (c *CatalogUseCase) ShopSidebarData(ctx context.Context, req *ShopSidebarReq) (*ShopSidebarRes, error) {
	const op = "CatalogUseCase.ShopSidebarData"

	products, categories, err := c.loadCatalog(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	sorted := append([]domain.Category(nil), categories...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	counts := make([]CategoryCount, 0, len(sorted))
	for i := range sorted {
		tree := CategoryTree(sorted, []domain.CategoryRef{sorted[i].Ref()})
		treeSlugs := refSlugSet(tree)

		count := 0
		for j := range products {
			if intersectsCategories(products[j].Categories, treeSlugs) {
				count++
			}
		}
		counts = append(counts, CategoryCount{Category: sorted[i], Count: count})
	}

	res := &ShopSidebarRes{Categories: counts}
	if req.Featured {
		res.Featured = capProducts(filterProducts(products, func(p *domain.Product) bool {
			return p.IsHot
		}), 3)
	}

	return res, nil
}

// loadProducts загружает товары и аннотирует их диапазоном цен.
func (c *CatalogUseCase) loadProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := c.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		products[i].PriceRange = MinMaxPrice(&products[i])
	}

	return products, nil
}

func (c *CatalogUseCase) loadCatalog(ctx context.Context) ([]domain.Product, []domain.Category, error) {
	products, err := c.loadProducts(ctx)
	if err != nil {
		return nil, nil, err
	}

	categories, err := c.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	return products, categories, nil
}

// matchProduct проверяет товар против всех активных фильтров запроса.
func (c *CatalogUseCase) matchProduct(p *domain.Product, req *ProductsReq, treeSlugs map[string]bool) bool {
	if req.Search != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(req.Search)) {
		return false
	}

	if req.Category != "" && !intersectsCategories(p.Categories, treeSlugs) {
		return false
	}

	if req.Tag != "" {
		found := false
		for _, tag := range p.Tags {
			if tag.Slug == req.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(req.Colors) > 0 || len(req.Sizes) > 0 {
		if !matchVariants(p.Variants, req.Colors, req.Sizes) {
			return false
		}
	}

	if len(req.Brands) > 0 {
		found := false
		for _, brand := range p.Brands {
			if containsString(req.Brands, brand.Slug) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if req.MinPrice != nil && req.MaxPrice != nil {
		min := p.PriceRange[0]
		if min < *req.MinPrice || min > *req.MaxPrice {
			return false
		}
	}

	if len(req.Ratings) > 0 {
		found := false
		for _, rating := range req.Ratings {
			if float64(rating) == p.Ratings {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// matchVariants: товар подходит, если хоть один вариант удовлетворяет
// всем непустым спискам атрибутов сразу.
func matchVariants(variants []domain.Variant, colors, sizes []string) bool {
	for i := range variants {
		v := &variants[i]

		colorOK := len(colors) == 0 ||
			(v.Color != nil && containsString(colors, v.Color.Name))
		sizeOK := len(sizes) == 0 ||
			(v.Size != nil && containsString(sizes, v.Size.Size))

		if colorOK && sizeOK {
			return true
		}
	}

	return false
}

// sortProducts сортирует на месте. Сортировка стабильная: порядок
// хранилища служит разрешением ничьих.
func sortProducts(products []domain.Product, sortBy string) {
	switch sortBy {
	case SortPopularity:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].SaleCount > products[j].SaleCount
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Ratings > products[j].Ratings
		})
	case SortPrice:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceRange[0] < products[j].PriceRange[0]
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceRange[0] > products[j].PriceRange[0]
		})
	default:
		// default/date — порядок хранилища
	}
}

// paginate вырезает полуинтервал [from, to), ограничивая границы выборкой.
func paginate[T any](items []T, from int, to *int) []T {
	n := len(items)

	f := from
	if f < 0 {
		f = 0
	}
	if f > n {
		f = n
	}

	t := n
	if to != nil {
		t = *to
		if t > n {
			t = n
		}
	}
	if t < f {
		t = f
	}

	return items[f:t]
}

func filterProducts(products []domain.Product, keep func(*domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for i := range products {
		if keep(&products[i]) {
			out = append(out, products[i])
		}
	}

	return out
}

// capProducts ограничивает длину подборки; count <= 0 — без ограничения.
func capProducts(products []domain.Product, count int) []domain.Product {
	if count <= 0 || count >= len(products) {
		return products
	}

	return products[:count]
}

func refSlugSet(refs []domain.CategoryRef) map[string]bool {
	set := make(map[string]bool, len(refs))
	for _, ref := range refs {
		set[ref.Slug] = true
	}

	return set
}

func intersectsCategories(refs []domain.CategoryRef, slugs map[string]bool) bool {
	for _, ref := range refs {
		if slugs[ref.Slug] {
			return true
		}
	}

	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}
