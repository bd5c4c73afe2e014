package graphql

import "github.com/graphql-go/graphql"

// Выходные типы схемы. Резолверы каталога отдают map-представления
// доменных сущностей, поэтому поля обходятся штатным резолвером по ключам.

var mediaType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Media",
	Fields: graphql.Fields{
		"width":  &graphql.Field{Type: graphql.Int},
		"height": &graphql.Field{Type: graphql.Int},
		"url":    &graphql.Field{Type: graphql.String},
	},
})

var sizeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Size",
	Fields: graphql.Fields{
		"name":  &graphql.Field{Type: graphql.String},
		"size":  &graphql.Field{Type: graphql.String},
		"thumb": &graphql.Field{Type: mediaType},
	},
})

var colorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Color",
	Fields: graphql.Fields{
		"name":  &graphql.Field{Type: graphql.String},
		"color": &graphql.Field{Type: graphql.String},
		"thumb": &graphql.Field{Type: mediaType},
	},
})

var variantType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Variant",
	Fields: graphql.Fields{
		"price":      &graphql.Field{Type: graphql.Float},
		"sale_price": &graphql.Field{Type: graphql.Float},
		"size":       &graphql.Field{Type: sizeType},
		"color":      &graphql.Field{Type: colorType},
	},
})

var productTagType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProductTag",
	Fields: graphql.Fields{
		"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name": &graphql.Field{Type: graphql.String},
		"slug": &graphql.Field{Type: graphql.ID},
	},
})

var productBrandType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProductBrand",
	Fields: graphql.Fields{
		"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name": &graphql.Field{Type: graphql.String},
		"slug": &graphql.Field{Type: graphql.ID},
	},
})

// У вложенных в товар ссылок на категории нет собственного _id,
// поэтому поле объявлено необязательным.
var productCategoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProductCategory",
	Fields: graphql.Fields{
		"_id":    &graphql.Field{Type: graphql.ID},
		"id":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":   &graphql.Field{Type: graphql.String},
		"slug":   &graphql.Field{Type: graphql.ID},
		"parent": &graphql.Field{Type: graphql.String},
	},
})

var productCategoryResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProductCategoryResponse",
	Fields: graphql.Fields{
		"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":  &graphql.Field{Type: graphql.String},
		"slug":  &graphql.Field{Type: graphql.ID},
		"count": &graphql.Field{Type: graphql.Int},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"_id":               &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"id":                &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":              &graphql.Field{Type: graphql.String},
		"slug":              &graphql.Field{Type: graphql.ID},
		"short_description": &graphql.Field{Type: graphql.String},
		"price":             &graphql.Field{Type: graphql.NewList(graphql.Float)},
		"until":             &graphql.Field{Type: graphql.String},
		"sku":               &graphql.Field{Type: graphql.String},
		"stock":             &graphql.Field{Type: graphql.Int},
		"ratings":           &graphql.Field{Type: graphql.Float},
		"reviews":           &graphql.Field{Type: graphql.Int},
		"sale_count":        &graphql.Field{Type: graphql.Int},
		"is_hot":            &graphql.Field{Type: graphql.Boolean},
		"is_new":            &graphql.Field{Type: graphql.Boolean},
		"is_sale":           &graphql.Field{Type: graphql.Boolean},
		"is_out_of_stock":   &graphql.Field{Type: graphql.Boolean},
		"release_date":      &graphql.Field{Type: graphql.String},
		"developer":         &graphql.Field{Type: graphql.String},
		"publisher":         &graphql.Field{Type: graphql.String},
		"game_mode":         &graphql.Field{Type: graphql.String},
		"rated":             &graphql.Field{Type: graphql.Int},
		"small_pictures":    &graphql.Field{Type: graphql.NewList(mediaType)},
		"pictures":          &graphql.Field{Type: graphql.NewList(mediaType)},
		"large_pictures":    &graphql.Field{Type: graphql.NewList(mediaType)},
		"brands":            &graphql.Field{Type: graphql.NewList(productBrandType)},
		"tags":              &graphql.Field{Type: graphql.NewList(productTagType)},
		"categories":        &graphql.Field{Type: graphql.NewList(productCategoryType)},
		"variants":          &graphql.Field{Type: graphql.NewList(variantType)},
	},
})

var postTypeEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "PostType",
	Values: graphql.EnumValueConfigMap{
		"image":   &graphql.EnumValueConfig{Value: "image"},
		"video":   &graphql.EnumValueConfig{Value: "video"},
		"gallery": &graphql.EnumValueConfig{Value: "gallery"},
	},
})

var postCategoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PostCategory",
	Fields: graphql.Fields{
		"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name": &graphql.Field{Type: graphql.String},
		"slug": &graphql.Field{Type: graphql.ID},
	},
})

var postType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Post",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"title":         &graphql.Field{Type: graphql.String},
		"slug":          &graphql.Field{Type: graphql.ID},
		"author":        &graphql.Field{Type: graphql.String},
		"date":          &graphql.Field{Type: graphql.String},
		"comments":      &graphql.Field{Type: graphql.Int},
		"content":       &graphql.Field{Type: graphql.String},
		"type":          &graphql.Field{Type: postTypeEnum},
		"picture":       &graphql.Field{Type: graphql.NewList(mediaType)},
		"small_picture": &graphql.Field{Type: graphql.NewList(mediaType)},
		"video":         &graphql.Field{Type: graphql.Boolean},
		"categories":    &graphql.Field{Type: graphql.NewList(postCategoryType)},
	},
})

var shopResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ShopResponse",
	Fields: graphql.Fields{
		"data":           &graphql.Field{Type: graphql.NewList(productType)},
		"total":          &graphql.Field{Type: graphql.Int},
		"categoryFamily": &graphql.Field{Type: graphql.NewList(productCategoryType)},
	},
})

var productSingleResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProductSingleResponse",
	Fields: graphql.Fields{
		"data":    &graphql.Field{Type: productType},
		"prev":    &graphql.Field{Type: productType},
		"next":    &graphql.Field{Type: productType},
		"related": &graphql.Field{Type: graphql.NewList(productType)},
	},
})

var specialProductsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SpecialProducts",
	Fields: graphql.Fields{
		"featured":    &graphql.Field{Type: graphql.NewList(productType)},
		"bestSelling": &graphql.Field{Type: graphql.NewList(productType)},
		"topRated":    &graphql.Field{Type: graphql.NewList(productType)},
		"latest":      &graphql.Field{Type: graphql.NewList(productType)},
		"onSale":      &graphql.Field{Type: graphql.NewList(productType)},
	},
})

var shopSidebarResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ShopSidebarResponse",
	Fields: graphql.Fields{
		"categories": &graphql.Field{Type: graphql.NewList(productCategoryResponseType)},
		"featured":   &graphql.Field{Type: graphql.NewList(productType)},
	},
})

var postsResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PostsResponse",
	Fields: graphql.Fields{
		"data":  &graphql.Field{Type: graphql.NewList(postType)},
		"total": &graphql.Field{Type: graphql.Int},
	},
})

var postSingleResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PostSingleResponse",
	Fields: graphql.Fields{
		"data":    &graphql.Field{Type: postType},
		"related": &graphql.Field{Type: graphql.NewList(postType)},
	},
})

var postSidebarResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PostSidebarResponse",
	Fields: graphql.Fields{
		"categories": &graphql.Field{Type: graphql.NewList(postCategoryType)},
		"recent":     &graphql.Field{Type: graphql.NewList(postType)},
	},
})
