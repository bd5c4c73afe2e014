package graphql

import (
	"github.com/pixelmart-dev/go-backend/internal/domain"
	"github.com/pixelmart-dev/go-backend/internal/usecase"
)

// Конвертация доменных сущностей в map-представления для схемы.
// Ключи совпадают с именами полей GraphQL-типов.

func productToMap(p *domain.Product) map[string]interface{} {
	if p == nil {
		return nil
	}

	price := p.PriceRange
	if price == nil {
		price = usecase.MinMaxPrice(p)
	}

	return map[string]interface{}{
		"_id":               p.StoreID,
		"id":                p.ID,
		"name":              p.Name,
		"slug":              p.Slug,
		"short_description": p.ShortDescription,
		"price":             price,
		"until":             p.Until,
		"sku":               p.SKU,
		"stock":             p.Stock,
		"ratings":           p.Ratings,
		"reviews":           p.Reviews,
		"sale_count":        p.SaleCount,
		"is_hot":            p.IsHot,
		"is_new":            p.IsNew,
		"is_sale":           p.IsSale,
		"is_out_of_stock":   p.IsOutOfStock,
		"release_date":      p.ReleaseDate,
		"developer":         p.Developer,
		"publisher":         p.Publisher,
		"game_mode":         p.GameMode,
		"rated":             p.Rated,
		"small_pictures":    mediaListToMaps(p.SmallPictures),
		"pictures":          mediaListToMaps(p.Pictures),
		"large_pictures":    mediaListToMaps(p.LargePictures),
		"brands":            brandsToMaps(p.Brands),
		"tags":              tagsToMaps(p.Tags),
		"categories":        categoryRefsToMaps(p.Categories),
		"variants":          variantsToMaps(p.Variants),
	}
}

func productsToMaps(products []domain.Product) []interface{} {
	out := make([]interface{}, 0, len(products))
	for i := range products {
		out = append(out, productToMap(&products[i]))
	}

	return out
}

func categoryToMap(c *domain.Category) map[string]interface{} {
	if c == nil {
		return nil
	}

	return map[string]interface{}{
		"_id":    c.StoreID,
		"id":     c.ID,
		"name":   c.Name,
		"slug":   c.Slug,
		"parent": c.Parent,
	}
}

func categoriesToMaps(categories []domain.Category) []interface{} {
	out := make([]interface{}, 0, len(categories))
	for i := range categories {
		out = append(out, categoryToMap(&categories[i]))
	}

	return out
}

func categoryCountsToMaps(counts []usecase.CategoryCount) []interface{} {
	out := make([]interface{}, 0, len(counts))
	for _, cc := range counts {
		out = append(out, map[string]interface{}{
			"id":    cc.Category.ID,
			"name":  cc.Category.Name,
			"slug":  cc.Category.Slug,
			"count": cc.Count,
		})
	}

	return out
}

func postToMap(p *domain.Post) map[string]interface{} {
	if p == nil {
		return nil
	}

	return map[string]interface{}{
		"id":            p.ID,
		"title":         p.Title,
		"slug":          p.Slug,
		"author":        p.Author,
		"date":          p.Date,
		"comments":      p.Comments,
		"content":       p.Content,
		"type":          string(p.Type),
		"picture":       mediaListToMaps(p.Picture),
		"small_picture": mediaListToMaps(p.SmallPicture),
		"video":         p.Video,
		"categories":    categoryRefsToMaps(p.Categories),
	}
}

func postsToMaps(posts []domain.Post) []interface{} {
	out := make([]interface{}, 0, len(posts))
	for i := range posts {
		out = append(out, postToMap(&posts[i]))
	}

	return out
}

func mediaToMap(m *domain.Media) map[string]interface{} {
	if m == nil {
		return nil
	}

	return map[string]interface{}{
		"width":  m.Width,
		"height": m.Height,
		"url":    m.URL,
	}
}

func mediaListToMaps(media []domain.Media) []interface{} {
	if media == nil {
		return nil
	}

	out := make([]interface{}, 0, len(media))
	for i := range media {
		out = append(out, mediaToMap(&media[i]))
	}

	return out
}

func brandsToMaps(brands []domain.Brand) []interface{} {
	if brands == nil {
		return nil
	}

	out := make([]interface{}, 0, len(brands))
	for _, b := range brands {
		out = append(out, map[string]interface{}{
			"id":   b.ID,
			"name": b.Name,
			"slug": b.Slug,
		})
	}

	return out
}

func tagsToMaps(tags []domain.Tag) []interface{} {
	if tags == nil {
		return nil
	}

	out := make([]interface{}, 0, len(tags))
	for _, t := range tags {
		out = append(out, map[string]interface{}{
			"id":   t.ID,
			"name": t.Name,
			"slug": t.Slug,
		})
	}

	return out
}

func categoryRefsToMaps(refs []domain.CategoryRef) []interface{} {
	if refs == nil {
		return nil
	}

	out := make([]interface{}, 0, len(refs))
	for _, ref := range refs {
		out = append(out, map[string]interface{}{
			"id":     ref.ID,
			"name":   ref.Name,
			"slug":   ref.Slug,
			"parent": ref.Parent,
		})
	}

	return out
}

func variantsToMaps(variants []domain.Variant) []interface{} {
	if variants == nil {
		return nil
	}

	out := make([]interface{}, 0, len(variants))
	for _, v := range variants {
		m := map[string]interface{}{
			"price": v.Price,
		}
		if v.SalePrice != nil {
			m["sale_price"] = *v.SalePrice
		}
		if v.Size != nil {
			m["size"] = map[string]interface{}{
				"name":  v.Size.Name,
				"size":  v.Size.Size,
				"thumb": mediaToMap(v.Size.Thumb),
			}
		}
		if v.Color != nil {
			m["color"] = map[string]interface{}{
				"name":  v.Color.Name,
				"color": v.Color.Color,
				"thumb": mediaToMap(v.Color.Thumb),
			}
		}
		out = append(out, m)
	}

	return out
}
