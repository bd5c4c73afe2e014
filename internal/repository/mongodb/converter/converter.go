package converter

import (
	"github.com/pixelmart-dev/go-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductConverter interface {
	ToEntity(model *ProductModel) *domain.Product
	ToEntityList(models []ProductModel) []domain.Product
	ToModel(entity *domain.Product) *ProductModel
}

type CategoryConverter interface {
	ToEntity(model *CategoryModel) *domain.Category
	ToEntityList(models []CategoryModel) []domain.Category
	ToModel(entity *domain.Category) *CategoryModel
}

type PostConverter interface {
	ToEntity(model *PostModel) *domain.Post
	ToEntityList(models []PostModel) []domain.Post
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		StoreID:          oidToHex(model.OID),
		ID:               model.ID,
		Name:             model.Name,
		Slug:             model.Slug,
		ShortDescription: model.ShortDescription,
		Price:            model.Price,
		Until:            model.Until,
		SKU:              model.SKU,
		Stock:            model.Stock,
		Ratings:          model.Ratings,
		Reviews:          model.Reviews,
		SaleCount:        model.SaleCount,
		IsHot:            model.IsHot,
		IsNew:            model.IsNew,
		IsSale:           model.IsSale,
		IsOutOfStock:     model.IsOutOfStock,
		ReleaseDate:      model.ReleaseDate,
		Developer:        model.Developer,
		Publisher:        model.Publisher,
		GameMode:         model.GameMode,
		Rated:            model.Rated,
		SmallPictures:    mediaToEntity(model.SmallPictures),
		Pictures:         mediaToEntity(model.Pictures),
		LargePictures:    mediaToEntity(model.LargePictures),
		Brands:           brandsToEntity(model.Brands),
		Tags:             tagsToEntity(model.Tags),
		Categories:       categoryRefsToEntity(model.Categories),
		Variants:         variantsToEntity(model.Variants),
	}
}

func (c *ProductConverterImpl) ToEntityList(models []ProductModel) []domain.Product {
	entities := make([]domain.Product, 0, len(models))
	for i := range models {
		entities = append(entities, *c.ToEntity(&models[i]))
	}

	return entities
}

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		OID:              hexToOID(entity.StoreID),
		ID:               entity.ID,
		Name:             entity.Name,
		Slug:             entity.Slug,
		ShortDescription: entity.ShortDescription,
		Price:            entity.Price,
		Until:            entity.Until,
		SKU:              entity.SKU,
		Stock:            entity.Stock,
		Ratings:          entity.Ratings,
		Reviews:          entity.Reviews,
		SaleCount:        entity.SaleCount,
		IsHot:            entity.IsHot,
		IsNew:            entity.IsNew,
		IsSale:           entity.IsSale,
		IsOutOfStock:     entity.IsOutOfStock,
		ReleaseDate:      entity.ReleaseDate,
		Developer:        entity.Developer,
		Publisher:        entity.Publisher,
		GameMode:         entity.GameMode,
		Rated:            entity.Rated,
		SmallPictures:    mediaToModel(entity.SmallPictures),
		Pictures:         mediaToModel(entity.Pictures),
		LargePictures:    mediaToModel(entity.LargePictures),
		Brands:           brandsToModel(entity.Brands),
		Tags:             tagsToModel(entity.Tags),
		Categories:       categoryRefsToModel(entity.Categories),
		Variants:         variantsToModel(entity.Variants),
	}
}

type CategoryConverterImpl struct{}

func NewCategoryConverterImpl() *CategoryConverterImpl {
	return &CategoryConverterImpl{}
}

func (c *CategoryConverterImpl) ToEntity(model *CategoryModel) *domain.Category {
	return &domain.Category{
		StoreID: oidToHex(model.OID),
		ID:      model.ID,
		Name:    model.Name,
		Slug:    model.Slug,
		Parent:  model.Parent,
	}
}

func (c *CategoryConverterImpl) ToEntityList(models []CategoryModel) []domain.Category {
	entities := make([]domain.Category, 0, len(models))
	for i := range models {
		entities = append(entities, *c.ToEntity(&models[i]))
	}

	return entities
}

func (c *CategoryConverterImpl) ToModel(entity *domain.Category) *CategoryModel {
	return &CategoryModel{
		OID:    hexToOID(entity.StoreID),
		ID:     entity.ID,
		Name:   entity.Name,
		Slug:   entity.Slug,
		Parent: entity.Parent,
	}
}

type PostConverterImpl struct{}

func NewPostConverterImpl() *PostConverterImpl {
	return &PostConverterImpl{}
}

func (c *PostConverterImpl) ToEntity(model *PostModel) *domain.Post {
	return &domain.Post{
		StoreID:      oidToHex(model.OID),
		ID:           model.ID,
		Title:        model.Title,
		Slug:         model.Slug,
		Author:       model.Author,
		Date:         model.Date,
		Comments:     model.Comments,
		Content:      model.Content,
		Type:         domain.PostType(model.Type),
		Picture:      mediaToEntity(model.Picture),
		SmallPicture: mediaToEntity(model.SmallPicture),
		Video:        model.Video,
		Categories:   postCategoryRefsToEntity(model.Categories),
	}
}

func (c *PostConverterImpl) ToEntityList(models []PostModel) []domain.Post {
	entities := make([]domain.Post, 0, len(models))
	for i := range models {
		entities = append(entities, *c.ToEntity(&models[i]))
	}

	return entities
}

func oidToHex(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}

	return oid.Hex()
}

// hexToOID возвращает нулевой ObjectID для пустой или кривой строки:
// валидность первичного идентификатора проверяется на границе репозитория.
func hexToOID(hex string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID
	}

	return oid
}

func mediaToEntity(models []MediaModel) []domain.Media {
	if models == nil {
		return nil
	}
	out := make([]domain.Media, 0, len(models))
	for _, m := range models {
		out = append(out, domain.Media{Width: m.Width, Height: m.Height, URL: m.URL})
	}

	return out
}

func mediaToModel(entities []domain.Media) []MediaModel {
	if entities == nil {
		return nil
	}
	out := make([]MediaModel, 0, len(entities))
	for _, m := range entities {
		out = append(out, MediaModel{Width: m.Width, Height: m.Height, URL: m.URL})
	}

	return out
}

func brandsToEntity(models []RefModel) []domain.Brand {
	if models == nil {
		return nil
	}
	out := make([]domain.Brand, 0, len(models))
	for _, m := range models {
		out = append(out, domain.Brand{ID: m.ID, Name: m.Name, Slug: m.Slug})
	}

	return out
}

func brandsToModel(entities []domain.Brand) []RefModel {
	if entities == nil {
		return nil
	}
	out := make([]RefModel, 0, len(entities))
	for _, b := range entities {
		out = append(out, RefModel{ID: b.ID, Name: b.Name, Slug: b.Slug})
	}

	return out
}

func tagsToEntity(models []RefModel) []domain.Tag {
	if models == nil {
		return nil
	}
	out := make([]domain.Tag, 0, len(models))
	for _, m := range models {
		out = append(out, domain.Tag{ID: m.ID, Name: m.Name, Slug: m.Slug})
	}

	return out
}

func tagsToModel(entities []domain.Tag) []RefModel {
	if entities == nil {
		return nil
	}
	out := make([]RefModel, 0, len(entities))
	for _, t := range entities {
		out = append(out, RefModel{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}

	return out
}

func categoryRefsToEntity(models []CategoryRefModel) []domain.CategoryRef {
	if models == nil {
		return nil
	}
	out := make([]domain.CategoryRef, 0, len(models))
	for _, m := range models {
		out = append(out, domain.CategoryRef{ID: m.ID, Name: m.Name, Slug: m.Slug, Parent: m.Parent})
	}

	return out
}

func categoryRefsToModel(entities []domain.CategoryRef) []CategoryRefModel {
	if entities == nil {
		return nil
	}
	out := make([]CategoryRefModel, 0, len(entities))
	for _, r := range entities {
		out = append(out, CategoryRefModel{ID: r.ID, Name: r.Name, Slug: r.Slug, Parent: r.Parent})
	}

	return out
}

// категории постов хранятся без parent
func postCategoryRefsToEntity(models []RefModel) []domain.CategoryRef {
	if models == nil {
		return nil
	}
	out := make([]domain.CategoryRef, 0, len(models))
	for _, m := range models {
		out = append(out, domain.CategoryRef{ID: m.ID, Name: m.Name, Slug: m.Slug})
	}

	return out
}

func variantsToEntity(models []VariantModel) []domain.Variant {
	if models == nil {
		return nil
	}
	out := make([]domain.Variant, 0, len(models))
	for _, m := range models {
		v := domain.Variant{Price: m.Price, SalePrice: m.SalePrice}
		if m.Size != nil {
			v.Size = &domain.VariantSize{Name: m.Size.Name, Size: m.Size.Size, Thumb: thumbToEntity(m.Size.Thumb)}
		}
		if m.Color != nil {
			v.Color = &domain.VariantColor{Name: m.Color.Name, Color: m.Color.Color, Thumb: thumbToEntity(m.Color.Thumb)}
		}
		out = append(out, v)
	}

	return out
}

func variantsToModel(entities []domain.Variant) []VariantModel {
	if entities == nil {
		return nil
	}
	out := make([]VariantModel, 0, len(entities))
	for _, v := range entities {
		m := VariantModel{Price: v.Price, SalePrice: v.SalePrice}
		if v.Size != nil {
			m.Size = &SizeModel{Name: v.Size.Name, Size: v.Size.Size, Thumb: thumbToModel(v.Size.Thumb)}
		}
		if v.Color != nil {
			m.Color = &ColorModel{Name: v.Color.Name, Color: v.Color.Color, Thumb: thumbToModel(v.Color.Thumb)}
		}
		out = append(out, m)
	}

	return out
}

func thumbToEntity(m *MediaModel) *domain.Media {
	if m == nil {
		return nil
	}

	return &domain.Media{Width: m.Width, Height: m.Height, URL: m.URL}
}

func thumbToModel(m *domain.Media) *MediaModel {
	if m == nil {
		return nil
	}

	return &MediaModel{Width: m.Width, Height: m.Height, URL: m.URL}
}
