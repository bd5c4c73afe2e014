package graphql

import (
	"github.com/pixelmart-dev/go-backend/internal/domain"
	"github.com/pixelmart-dev/go-backend/internal/usecase"
)

// Хелперы извлечения аргументов. Библиотека уже привела значения к
// int/float64/string/bool, здесь только аккуратная распаковка.

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}

	return ""
}

func boolArg(args map[string]interface{}, key string) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}

	return false
}

func intArg(args map[string]interface{}, key string, defaultValue int) int {
	if v, ok := args[key].(int); ok {
		return v
	}

	return defaultValue
}

func optIntArg(args map[string]interface{}, key string) *int {
	if v, ok := args[key].(int); ok {
		return &v
	}

	return nil
}

func stringListArg(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

func intListArg(args map[string]interface{}, key string) []int {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}

	out := make([]int, 0, len(raw))
	for _, item := range raw {
		if n, ok := item.(int); ok {
			out = append(out, n)
		}
	}

	return out
}

// ДЕКОДЕРЫ ВХОДНЫХ ОБЪЕКТОВ

func decodeProductInput(m map[string]interface{}) *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:             stringArg(m, "name"),
		Slug:             stringArg(m, "slug"),
		ShortDescription: stringArg(m, "short_description"),
		Price:            floatListVal(m, "price"),
		Until:            stringArg(m, "until"),
		SKU:              stringArg(m, "sku"),
		Stock:            intArg(m, "stock", 0),
		Ratings:          floatVal(m, "ratings"),
		Reviews:          intArg(m, "reviews", 0),
		SaleCount:        intArg(m, "sale_count", 0),
		IsHot:            boolArg(m, "is_hot"),
		IsNew:            boolArg(m, "is_new"),
		IsSale:           boolArg(m, "is_sale"),
		IsOutOfStock:     boolArg(m, "is_out_of_stock"),
		ReleaseDate:      stringArg(m, "release_date"),
		Developer:        stringArg(m, "developer"),
		Publisher:        stringArg(m, "publisher"),
		GameMode:         stringArg(m, "game_mode"),
		Rated:            intArg(m, "rated", 0),
		SmallPictures:    decodeMediaList(m, "small_pictures"),
		Pictures:         decodeMediaList(m, "pictures"),
		LargePictures:    decodeMediaList(m, "large_pictures"),
		Brands:           decodeBrands(m, "brands"),
		Tags:             decodeTags(m, "tags"),
		Categories:       decodeCategoryRefs(m, "categories"),
		Variants:         decodeVariants(m, "variants"),
	}
}

func decodeCategoryInput(m map[string]interface{}) *usecase.CategoryInput {
	return &usecase.CategoryInput{
		ID:     int64(intArg(m, "id", 0)),
		Name:   stringArg(m, "name"),
		Slug:   stringArg(m, "slug"),
		Parent: stringArg(m, "parent"),
	}
}

// optFloat принимает и целые значения: границы цен объявлены Int.
func optFloat(m map[string]interface{}, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	default:
		return nil
	}
}

func floatVal(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func floatListVal(m map[string]interface{}, key string) []float64 {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}

	out := make([]float64, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case float64:
			out = append(out, v)
		case int:
			out = append(out, float64(v))
		}
	}

	return out
}

func decodeMedia(m map[string]interface{}) domain.Media {
	return domain.Media{
		Width:  intArg(m, "width", 0),
		Height: intArg(m, "height", 0),
		URL:    stringArg(m, "url"),
	}
}

func decodeMediaList(m map[string]interface{}, key string) []domain.Media {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}

	out := make([]domain.Media, 0, len(raw))
	for _, item := range raw {
		if mm, ok := item.(map[string]interface{}); ok {
			out = append(out, decodeMedia(mm))
		}
	}

	return out
}

func decodeBrands(m map[string]interface{}, key string) []domain.Brand {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}

	out := make([]domain.Brand, 0, len(raw))
	for _, item := range raw {
		if mm, ok := item.(map[string]interface{}); ok {
			out = append(out, domain.Brand{
				ID:   int64(intArg(mm, "id", 0)),
				Name: stringArg(mm, "name"),
				Slug: stringArg(mm, "slug"),
			})
		}
	}

	return out
}

func decodeTags(m map[string]interface{}, key string) []domain.Tag {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}

	out := make([]domain.Tag, 0, len(raw))
	for _, item := range raw {
		if mm, ok := item.(map[string]interface{}); ok {
			out = append(out, domain.Tag{
				ID:   int64(intArg(mm, "id", 0)),
				Name: stringArg(mm, "name"),
				Slug: stringArg(mm, "slug"),
			})
		}
	}

	return out
}

func decodeCategoryRefs(m map[string]interface{}, key string) []domain.CategoryRef {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}

	out := make([]domain.CategoryRef, 0, len(raw))
	for _, item := range raw {
		if mm, ok := item.(map[string]interface{}); ok {
			out = append(out, domain.CategoryRef{
				ID:     int64(intArg(mm, "id", 0)),
				Name:   stringArg(mm, "name"),
				Slug:   stringArg(mm, "slug"),
				Parent: stringArg(mm, "parent"),
			})
		}
	}

	return out
}

func decodeVariants(m map[string]interface{}, key string) []domain.Variant {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}

	out := make([]domain.Variant, 0, len(raw))
	for _, item := range raw {
		mm, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		variant := domain.Variant{
			Price:     floatVal(mm, "price"),
			SalePrice: optFloat(mm, "sale_price"),
		}

		if sm, ok := mm["size"].(map[string]interface{}); ok {
			size := domain.VariantSize{
				Name: stringArg(sm, "name"),
				Size: stringArg(sm, "size"),
			}
			if tm, ok := sm["thumb"].(map[string]interface{}); ok {
				thumb := decodeMedia(tm)
				size.Thumb = &thumb
			}
			variant.Size = &size
		}

		if cm, ok := mm["color"].(map[string]interface{}); ok {
			color := domain.VariantColor{
				Name:  stringArg(cm, "name"),
				Color: stringArg(cm, "color"),
			}
			if tm, ok := cm["thumb"].(map[string]interface{}); ok {
				thumb := decodeMedia(tm)
				color.Thumb = &thumb
			}
			variant.Color = &color
		}

		out = append(out, variant)
	}

	return out
}
