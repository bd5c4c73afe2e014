package usecase

import (
	"context"

	"github.com/pixelmart-dev/go-backend/internal/domain"
)

type CatalogUC interface {
	Products(ctx context.Context, req *ProductsReq) (*ProductsRes, error)
	Product(ctx context.Context, req *ProductReq) (*ProductRes, error)
	SpecialProducts(ctx context.Context, req *SpecialProductsReq) (*SpecialProductsRes, error)
	DealProducts(ctx context.Context, req *DealProductsReq) (*DealProductsRes, error)
	ShopSidebarData(ctx context.Context, req *ShopSidebarReq) (*ShopSidebarRes, error)
}

type BlogUC interface {
	Posts(ctx context.Context, req *PostsReq) (*PostsRes, error)
	Post(ctx context.Context, req *PostReq) (*PostRes, error)
	PostSidebarData(ctx context.Context) (*PostSidebarRes, error)
}

type CatalogMutationUC interface {
	CreateProduct(ctx context.Context, input *ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, storeID string, input *ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, storeID string) (bool, error)
	CreateProductCategory(ctx context.Context, input *CategoryInput) (*domain.Category, error)
	UpdateProductCategory(ctx context.Context, storeID string, input *CategoryInput) (*domain.Category, error)
	DeleteProductCategory(ctx context.Context, storeID string) (bool, error)
}

type MediaUC interface {
	UploadMedia(ctx context.Context, req *UploadImagesReq) (*UploadMediaRes, error)
}
