package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/pixelmart-dev/go-backend/internal/usecase"
	"github.com/pixelmart-dev/go-backend/pkg/e"
	"github.com/pixelmart-dev/go-backend/pkg/logger"
)

// Resolver связывает поля схемы со сценариями каталога и блога.
type Resolver struct {
	catalogUC  usecase.CatalogUC
	blogUC     usecase.BlogUC
	mutationUC usecase.CatalogMutationUC
	logger     logger.Logger
}

func NewResolver(catalogUC usecase.CatalogUC, blogUC usecase.BlogUC, mutationUC usecase.CatalogMutationUC, logger logger.Logger) *Resolver {
	return &Resolver{
		catalogUC:  catalogUC,
		blogUC:     blogUC,
		mutationUC: mutationUC,
		logger:     logger,
	}
}

// NewSchema собирает исполняемую схему поверх резолвера.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    r.queryType(),
		Mutation: r.mutationType(),
	})
	if err != nil {
		return graphql.Schema{}, e.Wrap("graphql.NewSchema", err)
	}

	return schema, nil
}

func (r *Resolver) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: shopResponseType,
				Args: graphql.FieldConfigArgument{
					"search":    &graphql.ArgumentConfig{Type: graphql.String},
					"colors":    &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
					"sizes":     &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
					"brands":    &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
					"min_price": &graphql.ArgumentConfig{Type: graphql.Int},
					"max_price": &graphql.ArgumentConfig{Type: graphql.Int},
					"category":  &graphql.ArgumentConfig{Type: graphql.String},
					"tag":       &graphql.ArgumentConfig{Type: graphql.String},
					"ratings":   &graphql.ArgumentConfig{Type: graphql.NewList(graphql.Int)},
					"sortBy":    &graphql.ArgumentConfig{Type: graphql.String},
					"from":      &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
					"to":        &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.resolveProducts,
			},
			"product": &graphql.Field{
				Type: productSingleResponseType,
				Args: graphql.FieldConfigArgument{
					"slug":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"onlyData": &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: r.resolveProduct,
			},
			"specialProducts": &graphql.Field{
				Type: specialProductsType,
				Args: graphql.FieldConfigArgument{
					"featured":    &graphql.ArgumentConfig{Type: graphql.Boolean},
					"bestSelling": &graphql.ArgumentConfig{Type: graphql.Boolean},
					"topRated":    &graphql.ArgumentConfig{Type: graphql.Boolean},
					"latest":      &graphql.ArgumentConfig{Type: graphql.Boolean},
					"onSale":      &graphql.ArgumentConfig{Type: graphql.Boolean},
					"count":       &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.resolveSpecialProducts,
			},
			"shopSidebarData": &graphql.Field{
				Type: shopSidebarResponseType,
				Args: graphql.FieldConfigArgument{
					"featured": &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: r.resolveShopSidebarData,
			},
			"dealProducts": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"count": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
				},
				Resolve: r.resolveDealProducts,
			},
			"posts": &graphql.Field{
				Type: postsResponseType,
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
					"from":     &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
					"to":       &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.resolvePosts,
			},
			"post": &graphql.Field{
				Type: postSingleResponseType,
				Args: graphql.FieldConfigArgument{
					"slug": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolvePost,
			},
			"postSidebarData": &graphql.Field{
				Type:    postSidebarResponseType,
				Resolve: r.resolvePostSidebarData,
			},
		},
	})
}

func (r *Resolver) mutationType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createProduct": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInputType)},
				},
				Resolve: r.resolveCreateProduct,
			},
			"updateProduct": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"_id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInputType)},
				},
				Resolve: r.resolveUpdateProduct,
			},
			"deleteProduct": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveDeleteProduct,
			},
			"createProductCategory": &graphql.Field{
				Type: productCategoryType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productCategoryInputType)},
				},
				Resolve: r.resolveCreateProductCategory,
			},
			"updateProductCategory": &graphql.Field{
				Type: productCategoryType,
				Args: graphql.FieldConfigArgument{
					"_id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productCategoryInputType)},
				},
				Resolve: r.resolveUpdateProductCategory,
			},
			"deleteProductCategory": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveDeleteProductCategory,
			},
		},
	})
}

func (r *Resolver) resolveProducts(p graphql.ResolveParams) (interface{}, error) {
	req := &usecase.ProductsReq{
		Search:   stringArg(p.Args, "search"),
		Category: stringArg(p.Args, "category"),
		Tag:      stringArg(p.Args, "tag"),
		Colors:   stringListArg(p.Args, "colors"),
		Sizes:    stringListArg(p.Args, "sizes"),
		Brands:   stringListArg(p.Args, "brands"),
		MinPrice: optFloat(p.Args, "min_price"),
		MaxPrice: optFloat(p.Args, "max_price"),
		Ratings:  intListArg(p.Args, "ratings"),
		SortBy:   stringArg(p.Args, "sortBy"),
		From:     intArg(p.Args, "from", 0),
		To:       optIntArg(p.Args, "to"),
	}

	res, err := r.catalogUC.Products(p.Context, req)
	if err != nil {
		r.logger.Errorf(err, "products query failed")
		return nil, err
	}

	return map[string]interface{}{
		"data":           productsToMaps(res.Data),
		"total":          res.Total,
		"categoryFamily": categoriesToMaps(res.CategoryFamily),
	}, nil
}

func (r *Resolver) resolveProduct(p graphql.ResolveParams) (interface{}, error) {
	req := &usecase.ProductReq{
		Slug:     stringArg(p.Args, "slug"),
		OnlyData: boolArg(p.Args, "onlyData"),
	}

	res, err := r.catalogUC.Product(p.Context, req)
	if err != nil {
		r.logger.Errorf(err, "product query failed, slug=%s", req.Slug)
		return nil, err
	}

	return map[string]interface{}{
		"data":    productToMap(res.Data),
		"prev":    productToMap(res.Prev),
		"next":    productToMap(res.Next),
		"related": productsToMaps(res.Related),
	}, nil
}

func (r *Resolver) resolveSpecialProducts(p graphql.ResolveParams) (interface{}, error) {
	req := &usecase.SpecialProductsReq{
		Featured:    boolArg(p.Args, "featured"),
		BestSelling: boolArg(p.Args, "bestSelling"),
		TopRated:    boolArg(p.Args, "topRated"),
		Latest:      boolArg(p.Args, "latest"),
		OnSale:      boolArg(p.Args, "onSale"),
		Count:       intArg(p.Args, "count", 0),
	}

	res, err := r.catalogUC.SpecialProducts(p.Context, req)
	if err != nil {
		r.logger.Errorf(err, "specialProducts query failed")
		return nil, err
	}

	// В ответ попадают только запрошенные подборки.
	out := map[string]interface{}{}
	if req.Featured {
		out["featured"] = productsToMaps(res.Featured)
	}
	if req.BestSelling {
		out["bestSelling"] = productsToMaps(res.BestSelling)
	}
	if req.TopRated {
		out["topRated"] = productsToMaps(res.TopRated)
	}
	if req.Latest {
		out["latest"] = productsToMaps(res.Latest)
	}
	if req.OnSale {
		out["onSale"] = productsToMaps(res.OnSale)
	}

	return out, nil
}

func (r *Resolver) resolveShopSidebarData(p graphql.ResolveParams) (interface{}, error) {
	req := &usecase.ShopSidebarReq{
		Featured: boolArg(p.Args, "featured"),
	}

	res, err := r.catalogUC.ShopSidebarData(p.Context, req)
	if err != nil {
		r.logger.Errorf(err, "shopSidebarData query failed")
		return nil, err
	}

	out := map[string]interface{}{
		"categories": categoryCountsToMaps(res.Categories),
	}
	if req.Featured {
		out["featured"] = productsToMaps(res.Featured)
	}

	return out, nil
}

func (r *Resolver) resolveDealProducts(p graphql.ResolveParams) (interface{}, error) {
	req := &usecase.DealProductsReq{
		Count: intArg(p.Args, "count", 1),
	}

	res, err := r.catalogUC.DealProducts(p.Context, req)
	if err != nil {
		r.logger.Errorf(err, "dealProducts query failed")
		return nil, err
	}

	return productsToMaps(res.Data), nil
}

func (r *Resolver) resolvePosts(p graphql.ResolveParams) (interface{}, error) {
	req := &usecase.PostsReq{
		Category: stringArg(p.Args, "category"),
		From:     intArg(p.Args, "from", 0),
		To:       optIntArg(p.Args, "to"),
	}

	res, err := r.blogUC.Posts(p.Context, req)
	if err != nil {
		r.logger.Errorf(err, "posts query failed")
		return nil, err
	}

	return map[string]interface{}{
		"data":  postsToMaps(res.Data),
		"total": res.Total,
	}, nil
}

func (r *Resolver) resolvePost(p graphql.ResolveParams) (interface{}, error) {
	req := &usecase.PostReq{
		Slug: stringArg(p.Args, "slug"),
	}

	res, err := r.blogUC.Post(p.Context, req)
	if err != nil {
		r.logger.Errorf(err, "post query failed, slug=%s", req.Slug)
		return nil, err
	}

	return map[string]interface{}{
		"data":    postToMap(res.Data),
		"related": postsToMaps(res.Related),
	}, nil
}

func (r *Resolver) resolvePostSidebarData(p graphql.ResolveParams) (interface{}, error) {
	res, err := r.blogUC.PostSidebarData(p.Context)
	if err != nil {
		r.logger.Errorf(err, "postSidebarData query failed")
		return nil, err
	}

	return map[string]interface{}{
		"categories": categoriesToMaps(res.Categories),
		"recent":     postsToMaps(res.Recent),
	}, nil
}

func (r *Resolver) resolveCreateProduct(p graphql.ResolveParams) (interface{}, error) {
	raw, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, e.ErrInvalidInput
	}

	product, err := r.mutationUC.CreateProduct(p.Context, decodeProductInput(raw))
	if err != nil {
		r.logger.Errorf(err, "createProduct mutation failed")
		return nil, err
	}

	return productToMap(product), nil
}

func (r *Resolver) resolveUpdateProduct(p graphql.ResolveParams) (interface{}, error) {
	raw, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, e.ErrInvalidInput
	}
	storeID := stringArg(p.Args, "_id")

	product, err := r.mutationUC.UpdateProduct(p.Context, storeID, decodeProductInput(raw))
	if err != nil {
		r.logger.Errorf(err, "updateProduct mutation failed, _id=%s", storeID)
		return nil, err
	}

	return productToMap(product), nil
}

func (r *Resolver) resolveDeleteProduct(p graphql.ResolveParams) (interface{}, error) {
	storeID := stringArg(p.Args, "id")

	deleted, err := r.mutationUC.DeleteProduct(p.Context, storeID)
	if err != nil {
		r.logger.Errorf(err, "deleteProduct mutation failed, id=%s", storeID)
		return nil, err
	}

	return deleted, nil
}

func (r *Resolver) resolveCreateProductCategory(p graphql.ResolveParams) (interface{}, error) {
	raw, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, e.ErrInvalidInput
	}

	category, err := r.mutationUC.CreateProductCategory(p.Context, decodeCategoryInput(raw))
	if err != nil {
		r.logger.Errorf(err, "createProductCategory mutation failed")
		return nil, err
	}

	return categoryToMap(category), nil
}

func (r *Resolver) resolveUpdateProductCategory(p graphql.ResolveParams) (interface{}, error) {
	raw, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, e.ErrInvalidInput
	}
	storeID := stringArg(p.Args, "_id")

	category, err := r.mutationUC.UpdateProductCategory(p.Context, storeID, decodeCategoryInput(raw))
	if err != nil {
		r.logger.Errorf(err, "updateProductCategory mutation failed, _id=%s", storeID)
		return nil, err
	}

	return categoryToMap(category), nil
}

func (r *Resolver) resolveDeleteProductCategory(p graphql.ResolveParams) (interface{}, error) {
	storeID := stringArg(p.Args, "id")

	deleted, err := r.mutationUC.DeleteProductCategory(p.Context, storeID)
	if err != nil {
		r.logger.Errorf(err, "deleteProductCategory mutation failed, id=%s", storeID)
		return nil, err
	}

	return deleted, nil
}
