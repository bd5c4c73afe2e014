package usecase

import (
	"time"

	"github.com/pixelmart-dev/go-backend/internal/domain"
)

// CATALOG QUERIES

// Ключи сортировки products. Неизвестное значение оставляет порядок хранилища.
const (
	SortPopularity = "popularity"
	SortRating     = "rating"
	SortPrice      = "price"
	SortPriceDesc  = "price-desc"
	SortDefault    = "default"
)

// ProductsReq — параметры списка товаров. Каждый фильтр включается
// присутствием своего аргумента; активные фильтры соединяются по И.
type ProductsReq struct {
	Search   string
	Category string
	Tag      string
	Colors   []string
	Sizes    []string
	Brands   []string
	// Ценовой фильтр активен только когда заданы обе границы.
	MinPrice *float64
	MaxPrice *float64
	Ratings  []int
	SortBy   string
	From     int
	// nil — до конца выборки.
	To *int
}

// ProductsRes — страница товаров. Total считается до пагинации.
type ProductsRes struct {
	Data           []domain.Product
	Total          int
	CategoryFamily []domain.Category
}

type ProductReq struct {
	Slug     string
	OnlyData bool
}

// ProductRes — товар с соседями по списку связанных товаров.
// Prev/Next пусты на границах, Related не содержит сам товар.
type ProductRes struct {
	Data    *domain.Product
	Prev    *domain.Product
	Next    *domain.Product
	Related []domain.Product
}

// SpecialProductsReq — набор независимых подборок; в ответе появляются
// только запрошенные. Count <= 0 — без ограничения длины.
type SpecialProductsReq struct {
	Featured    bool
	BestSelling bool
	TopRated    bool
	Latest      bool
	OnSale      bool
	Count       int
}

type SpecialProductsRes struct {
	Featured    []domain.Product
	BestSelling []domain.Product
	TopRated    []domain.Product
	Latest      []domain.Product
	OnSale      []domain.Product
}

type DealProductsReq struct {
	Count int
}

type DealProductsRes struct {
	Data []domain.Product
}

type ShopSidebarReq struct {
	Featured bool
}

// CategoryCount — категория с числом товаров её поддерева.
type CategoryCount struct {
	Category domain.Category
	Count    int
}

type ShopSidebarRes struct {
	Categories []CategoryCount
	Featured   []domain.Product
}

// BLOG QUERIES

type PostsReq struct {
	Category string
	From     int
	To       *int
}

type PostsRes struct {
	Data  []domain.Post
	Total int
}

type PostReq struct {
	Slug string
}

type PostRes struct {
	Data    *domain.Post
	Related []domain.Post
}

type PostSidebarRes struct {
	Categories []domain.Category
	Recent     []domain.Post
}

// MUTATIONS

// ProductInput — полное содержимое товара для create/update.
// Прикладной id не принимается извне: его выдаёт последовательность.
type ProductInput struct {
	Name             string `validate:"required"`
	Slug             string `validate:"required"`
	ShortDescription string
	Price            []float64
	Until            string
	SKU              string
	Stock            int     `validate:"gte=0"`
	Ratings          float64 `validate:"gte=0,lte=5"`
	Reviews          int     `validate:"gte=0"`
	SaleCount        int     `validate:"gte=0"`
	IsHot            bool
	IsNew            bool
	IsSale           bool
	IsOutOfStock     bool
	ReleaseDate      string
	Developer        string
	Publisher        string
	GameMode         string
	Rated            int
	SmallPictures    []domain.Media
	Pictures         []domain.Media
	LargePictures    []domain.Media
	Brands           []domain.Brand
	Tags             []domain.Tag
	Categories       []domain.CategoryRef
	Variants         []domain.Variant
}

// ToDomain переводит вход в доменный товар без идентификаторов.
// Базовой ценой становится первый элемент присланного диапазона.
func (in *ProductInput) ToDomain() *domain.Product {
	var base float64
	if len(in.Price) > 0 {
		base = in.Price[0]
	}

	return &domain.Product{
		Name:             in.Name,
		Slug:             in.Slug,
		ShortDescription: in.ShortDescription,
		Price:            base,
		Until:            in.Until,
		SKU:              in.SKU,
		Stock:            in.Stock,
		Ratings:          in.Ratings,
		Reviews:          in.Reviews,
		SaleCount:        in.SaleCount,
		IsHot:            in.IsHot,
		IsNew:            in.IsNew,
		IsSale:           in.IsSale,
		IsOutOfStock:     in.IsOutOfStock,
		ReleaseDate:      in.ReleaseDate,
		Developer:        in.Developer,
		Publisher:        in.Publisher,
		GameMode:         in.GameMode,
		Rated:            in.Rated,
		SmallPictures:    in.SmallPictures,
		Pictures:         in.Pictures,
		LargePictures:    in.LargePictures,
		Brands:           in.Brands,
		Tags:             in.Tags,
		Categories:       in.Categories,
		Variants:         in.Variants,
	}
}

// CategoryInput — содержимое категории товаров для create/update.
type CategoryInput struct {
	ID     int64
	Name   string `validate:"required"`
	Slug   string `validate:"required"`
	Parent string
}

func (in *CategoryInput) ToDomain() *domain.Category {
	return domain.NewCategory(in.ID, in.Name, in.Slug, in.Parent)
}

// EVENTS

const (
	EntityProduct  = "product"
	EntityCategory = "category"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Имена последовательностей прикладных идентификаторов.
const (
	SeqProducts   = "products"
	SeqCategories = "categories"
)

// CatalogEvent — событие мутации каталога для брокера.
type CatalogEvent struct {
	EventID string    `json:"event_id"`
	Entity  string    `json:"entity"`
	Action  string    `json:"action"`
	ID      int64     `json:"id"`
	StoreID string    `json:"_id"`
	At      time.Time `json:"at"`
}

// MEDIA

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// UploadImagesReq — запрос на загрузку изображений.
type UploadImagesReq struct {
	Name   string
	Images []ProductImage
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

// UploadMediaRes — загруженные изображения с публичными URL.
type UploadMediaRes struct {
	Media []domain.Media
}

// MAPPERS

func NewProductsRes(data []domain.Product, total int, family []domain.Category) *ProductsRes {
	return &ProductsRes{
		Data:           data,
		Total:          total,
		CategoryFamily: family,
	}
}

func NewPostsRes(data []domain.Post, total int) *PostsRes {
	return &PostsRes{
		Data:  data,
		Total: total,
	}
}

func NewUploadImagesReq(name string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewCatalogEvent(eventID, entity, action string, id int64, storeID string, at time.Time) *CatalogEvent {
	return &CatalogEvent{
		EventID: eventID,
		Entity:  entity,
		Action:  action,
		ID:      id,
		StoreID: storeID,
		At:      at,
	}
}
