package graphql_test

import (
	"context"
	"testing"

	gql "github.com/graphql-go/graphql"
	"github.com/pixelmart-dev/go-backend/internal/domain"
	delivery "github.com/pixelmart-dev/go-backend/internal/delivery/v1/graphql"
	"github.com/pixelmart-dev/go-backend/internal/usecase"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

type stubCatalogUC struct {
	productsReq *usecase.ProductsReq
}

func (s *stubCatalogUC) Products(_ context.Context, req *usecase.ProductsReq) (*usecase.ProductsRes, error) {
	s.productsReq = req
	return usecase.NewProductsRes([]domain.Product{
		{StoreID: "p1", ID: 1, Name: "Chrono Quest", Slug: "chrono-quest", Price: 30},
	}, 1, []domain.Category{
		{StoreID: "c1", ID: 1, Name: "Games", Slug: "games"},
	}), nil
}

func (s *stubCatalogUC) Product(context.Context, *usecase.ProductReq) (*usecase.ProductRes, error) {
	return &usecase.ProductRes{Data: &domain.Product{StoreID: "p1", ID: 1, Slug: "chrono-quest"}}, nil
}

func (s *stubCatalogUC) SpecialProducts(_ context.Context, req *usecase.SpecialProductsReq) (*usecase.SpecialProductsRes, error) {
	res := &usecase.SpecialProductsRes{}
	if req.TopRated {
		res.TopRated = []domain.Product{{StoreID: "p1", ID: 1, Slug: "chrono-quest"}}
	}
	return res, nil
}

func (s *stubCatalogUC) DealProducts(context.Context, *usecase.DealProductsReq) (*usecase.DealProductsRes, error) {
	return &usecase.DealProductsRes{}, nil
}

func (s *stubCatalogUC) ShopSidebarData(context.Context, *usecase.ShopSidebarReq) (*usecase.ShopSidebarRes, error) {
	return &usecase.ShopSidebarRes{Categories: []usecase.CategoryCount{
		{Category: domain.Category{ID: 1, Name: "Games", Slug: "games"}, Count: 2},
	}}, nil
}

type stubBlogUC struct{}

func (stubBlogUC) Posts(context.Context, *usecase.PostsReq) (*usecase.PostsRes, error) {
	return usecase.NewPostsRes([]domain.Post{
		{ID: 1, Title: "Hello", Slug: "hello", Type: domain.PostTypeImage},
	}, 1), nil
}

func (stubBlogUC) Post(context.Context, *usecase.PostReq) (*usecase.PostRes, error) {
	return &usecase.PostRes{Data: &domain.Post{ID: 1, Slug: "hello"}}, nil
}

func (stubBlogUC) PostSidebarData(context.Context) (*usecase.PostSidebarRes, error) {
	return &usecase.PostSidebarRes{}, nil
}

type stubMutationUC struct {
	createdInput *usecase.ProductInput
}

func (s *stubMutationUC) CreateProduct(_ context.Context, input *usecase.ProductInput) (*domain.Product, error) {
	s.createdInput = input
	p := input.ToDomain()
	p.StoreID = "oid-1"
	p.ID = 1
	return p, nil
}

func (s *stubMutationUC) UpdateProduct(_ context.Context, storeID string, input *usecase.ProductInput) (*domain.Product, error) {
	p := input.ToDomain()
	p.StoreID = storeID
	p.ID = 1
	return p, nil
}

func (s *stubMutationUC) DeleteProduct(context.Context, string) (bool, error) { return true, nil }

func (s *stubMutationUC) CreateProductCategory(_ context.Context, input *usecase.CategoryInput) (*domain.Category, error) {
	c := input.ToDomain()
	c.StoreID = "cat-oid-1"
	return c, nil
}

func (s *stubMutationUC) UpdateProductCategory(_ context.Context, storeID string, input *usecase.CategoryInput) (*domain.Category, error) {
	c := input.ToDomain()
	c.StoreID = storeID
	return c, nil
}

func (s *stubMutationUC) DeleteProductCategory(context.Context, string) (bool, error) { return true, nil }

func buildSchema(t *testing.T, catalog *stubCatalogUC, mutation *stubMutationUC) gql.Schema {
	t.Helper()
	resolver := delivery.NewResolver(catalog, stubBlogUC{}, mutation, nopLogger{})
	schema, err := delivery.NewSchema(resolver)
	if err != nil {
		t.Fatal(err)
	}
	return schema
}

func TestProductsQuery(t *testing.T) {
	catalog := &stubCatalogUC{}
	schema := buildSchema(t, catalog, &stubMutationUC{})

	result := gql.Do(gql.Params{
		Schema: schema,
		RequestString: `{
			products(search: "chrono", min_price: 10, max_price: 60, from: 0, to: 5) {
				data { _id id name slug price }
				total
				categoryFamily { id slug }
			}
		}`,
		Context: context.Background(),
	})
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	if catalog.productsReq.Search != "chrono" {
		t.Fatalf("search arg lost, got %q", catalog.productsReq.Search)
	}
	if catalog.productsReq.MinPrice == nil || *catalog.productsReq.MinPrice != 10 {
		t.Fatalf("min_price must reach the usecase, got %v", catalog.productsReq.MinPrice)
	}
	if catalog.productsReq.To == nil || *catalog.productsReq.To != 5 {
		t.Fatalf("to must reach the usecase, got %v", catalog.productsReq.To)
	}

	data := result.Data.(map[string]interface{})["products"].(map[string]interface{})
	if data["total"] != 1 {
		t.Fatalf("want total 1, got %v", data["total"])
	}
	items := data["data"].([]interface{})
	first := items[0].(map[string]interface{})
	if first["slug"] != "chrono-quest" || first["_id"] != "p1" {
		t.Fatalf("unexpected product payload %v", first)
	}
	// без вариантов диапазон схлопывается в [price, price]
	price := first["price"].([]interface{})
	if len(price) != 2 || price[0] != 30.0 || price[1] != 30.0 {
		t.Fatalf("want price [30 30], got %v", price)
	}
}

func TestSpecialProductsQueryOmitsUnrequested(t *testing.T) {
	schema := buildSchema(t, &stubCatalogUC{}, &stubMutationUC{})

	result := gql.Do(gql.Params{
		Schema: schema,
		RequestString: `{
			specialProducts(topRated: true, count: 1) {
				topRated { slug }
				featured { slug }
			}
		}`,
		Context: context.Background(),
	})
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	data := result.Data.(map[string]interface{})["specialProducts"].(map[string]interface{})
	if data["featured"] != nil {
		t.Fatalf("unrequested selection must be null, got %v", data["featured"])
	}
	topRated := data["topRated"].([]interface{})
	if len(topRated) != 1 {
		t.Fatalf("want one top rated product, got %v", topRated)
	}
}

func TestCreateProductMutation(t *testing.T) {
	mutation := &stubMutationUC{}
	schema := buildSchema(t, &stubCatalogUC{}, mutation)

	result := gql.Do(gql.Params{
		Schema: schema,
		RequestString: `mutation {
			createProduct(input: {
				name: "Pixel Blaster"
				slug: "pixel-blaster"
				price: [49.99]
				variants: [{price: 49.99, sale_price: 39.99, color: {name: "Red", color: "#f00"}}]
			}) {
				_id id name slug
			}
		}`,
		Context: context.Background(),
	})
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	if mutation.createdInput.Name != "Pixel Blaster" {
		t.Fatalf("input name lost, got %q", mutation.createdInput.Name)
	}
	variants := mutation.createdInput.Variants
	if len(variants) != 1 || variants[0].SalePrice == nil || *variants[0].SalePrice != 39.99 {
		t.Fatalf("variant sale price lost, got %+v", variants)
	}
	if variants[0].Color == nil || variants[0].Color.Name != "Red" {
		t.Fatalf("variant color lost, got %+v", variants[0].Color)
	}

	data := result.Data.(map[string]interface{})["createProduct"].(map[string]interface{})
	if data["_id"] != "oid-1" || data["slug"] != "pixel-blaster" {
		t.Fatalf("unexpected mutation payload %v", data)
	}
}

func TestDeleteProductMutation(t *testing.T) {
	schema := buildSchema(t, &stubCatalogUC{}, &stubMutationUC{})

	result := gql.Do(gql.Params{
		Schema:        schema,
		RequestString: `mutation { deleteProduct(id: "oid-1") }`,
		Context:       context.Background(),
	})
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Data.(map[string]interface{})["deleteProduct"] != true {
		t.Fatalf("want true, got %v", result.Data)
	}
}
