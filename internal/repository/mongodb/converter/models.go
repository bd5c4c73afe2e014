package converter

import "go.mongodb.org/mongo-driver/bson/primitive"

// Модели повторяют форму документов в MongoDB. Производные поля
// (диапазон цен) в моделях отсутствуют и в хранилище не попадают.

type MediaModel struct {
	Width  int    `bson:"width"`
	Height int    `bson:"height"`
	URL    string `bson:"url"`
}

// RefModel — ссылка на бренд или тег внутри документа товара.
type RefModel struct {
	ID   int64  `bson:"id"`
	Name string `bson:"name"`
	Slug string `bson:"slug"`
}

type CategoryRefModel struct {
	ID     int64  `bson:"id"`
	Name   string `bson:"name"`
	Slug   string `bson:"slug"`
	Parent string `bson:"parent,omitempty"`
}

type SizeModel struct {
	Name  string      `bson:"name"`
	Size  string      `bson:"size"`
	Thumb *MediaModel `bson:"thumb,omitempty"`
}

type ColorModel struct {
	Name  string      `bson:"name"`
	Color string      `bson:"color"`
	Thumb *MediaModel `bson:"thumb,omitempty"`
}

type VariantModel struct {
	Price     float64     `bson:"price"`
	SalePrice *float64    `bson:"sale_price,omitempty"`
	Size      *SizeModel  `bson:"size,omitempty"`
	Color     *ColorModel `bson:"color,omitempty"`
}

type ProductModel struct {
	OID              primitive.ObjectID `bson:"_id,omitempty"`
	ID               int64              `bson:"id"`
	Name             string             `bson:"name"`
	Slug             string             `bson:"slug"`
	ShortDescription string             `bson:"short_description"`
	Price            float64            `bson:"price"`
	Until            string             `bson:"until,omitempty"`
	SKU              string             `bson:"sku"`
	Stock            int                `bson:"stock"`
	Ratings          float64            `bson:"ratings"`
	Reviews          int                `bson:"reviews"`
	SaleCount        int                `bson:"sale_count"`
	IsHot            bool               `bson:"is_hot"`
	IsNew            bool               `bson:"is_new"`
	IsSale           bool               `bson:"is_sale"`
	IsOutOfStock     bool               `bson:"is_out_of_stock"`
	ReleaseDate      string             `bson:"release_date"`
	Developer        string             `bson:"developer"`
	Publisher        string             `bson:"publisher"`
	GameMode         string             `bson:"game_mode"`
	Rated            int                `bson:"rated"`
	SmallPictures    []MediaModel       `bson:"small_pictures"`
	Pictures         []MediaModel       `bson:"pictures"`
	LargePictures    []MediaModel       `bson:"large_pictures"`
	Brands           []RefModel         `bson:"brands"`
	Tags             []RefModel         `bson:"tags"`
	Categories       []CategoryRefModel `bson:"categories"`
	Variants         []VariantModel     `bson:"variants"`
}

type CategoryModel struct {
	OID    primitive.ObjectID `bson:"_id,omitempty"`
	ID     int64              `bson:"id"`
	Name   string             `bson:"name"`
	Slug   string             `bson:"slug"`
	Parent string             `bson:"parent,omitempty"`
}

type PostModel struct {
	OID          primitive.ObjectID `bson:"_id,omitempty"`
	ID           int64              `bson:"id"`
	Title        string             `bson:"title"`
	Slug         string             `bson:"slug"`
	Author       string             `bson:"author"`
	Date         string             `bson:"date"`
	Comments     int                `bson:"comments"`
	Content      string             `bson:"content"`
	Type         string             `bson:"type"`
	Picture      []MediaModel       `bson:"picture"`
	SmallPicture []MediaModel       `bson:"small_picture"`
	Video        bool               `bson:"video"`
	Categories   []RefModel         `bson:"categories"`
}
