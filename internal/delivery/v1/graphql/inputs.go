package graphql

import "github.com/graphql-go/graphql"

var mediaInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "MediaInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"width":  &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"height": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"url":    &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var sizeInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SizeInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"size":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"thumb": &graphql.InputObjectFieldConfig{Type: mediaInputType},
	},
})

var colorInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ColorInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"color": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"thumb": &graphql.InputObjectFieldConfig{Type: mediaInputType},
	},
})

var variantInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "VariantInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"price":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"sale_price": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"size":       &graphql.InputObjectFieldConfig{Type: sizeInputType},
		"color":      &graphql.InputObjectFieldConfig{Type: colorInputType},
	},
})

var productTagInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductTagInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"name": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"slug": &graphql.InputObjectFieldConfig{Type: graphql.ID},
	},
})

var productBrandInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductBrandInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"name": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"slug": &graphql.InputObjectFieldConfig{Type: graphql.ID},
	},
})

var productCategoryInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductCategoryInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"name":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"slug":   &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"parent": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var productInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":              &graphql.InputObjectFieldConfig{Type: graphql.String},
		"slug":              &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"short_description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"price":             &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.Float)},
		"until":             &graphql.InputObjectFieldConfig{Type: graphql.String},
		"sku":               &graphql.InputObjectFieldConfig{Type: graphql.String},
		"stock":             &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"ratings":           &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"reviews":           &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"sale_count":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"is_hot":            &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"is_new":            &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"is_sale":           &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"is_out_of_stock":   &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"release_date":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"developer":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"publisher":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"game_mode":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"rated":             &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"small_pictures":    &graphql.InputObjectFieldConfig{Type: graphql.NewList(mediaInputType)},
		"pictures":          &graphql.InputObjectFieldConfig{Type: graphql.NewList(mediaInputType)},
		"large_pictures":    &graphql.InputObjectFieldConfig{Type: graphql.NewList(mediaInputType)},
		"brands":            &graphql.InputObjectFieldConfig{Type: graphql.NewList(productBrandInputType)},
		"tags":              &graphql.InputObjectFieldConfig{Type: graphql.NewList(productTagInputType)},
		"categories":        &graphql.InputObjectFieldConfig{Type: graphql.NewList(productCategoryInputType)},
		"variants":          &graphql.InputObjectFieldConfig{Type: graphql.NewList(variantInputType)},
	},
})
