package domain

// Brand описывает ссылку на бренд внутри продукта
type Brand struct {
	ID   int64
	Name string
	Slug string
}

// Tag описывает ссылку на тег внутри продукта
type Tag struct {
	ID   int64
	Name string
	Slug string
}

// CategoryRef — ссылка на категорию внутри продукта или поста.
// Parent заполнен только у категорий товаров.
type CategoryRef struct {
	ID     int64
	Name   string
	Slug   string
	Parent string
}

// VariantSize описывает размер варианта
type VariantSize struct {
	Name  string
	Size  string
	Thumb *Media
}

// VariantColor описывает цвет варианта
type VariantColor struct {
	Name  string
	Color string
	Thumb *Media
}

// Variant — вариант товара со своей ценой.
// SalePrice задан только для вариантов со скидкой.
type Variant struct {
	Price     float64
	SalePrice *float64
	Size      *VariantSize
	Color     *VariantColor
}

// Product описывает товар каталога
type Product struct {
	StoreID          string // hex-представление _id в хранилище
	ID               int64  // прикладной последовательный идентификатор
	Name             string
	Slug             string
	ShortDescription string
	Price            float64 // базовая цена без учёта вариантов
	Until            string  // дедлайн распродажи, строка-дата
	SKU              string
	Stock            int
	Ratings          float64
	Reviews          int
	SaleCount        int
	IsHot            bool
	IsNew            bool
	IsSale           bool
	IsOutOfStock     bool
	ReleaseDate      string
	Developer        string
	Publisher        string
	GameMode         string
	Rated            int
	SmallPictures    []Media
	Pictures         []Media
	LargePictures    []Media
	Brands           []Brand
	Tags             []Tag
	Categories       []CategoryRef
	Variants         []Variant

	// PriceRange — производный диапазон [min, max] эффективных цен вариантов.
	// Заполняется сервисом запросов, в хранилище не попадает.
	PriceRange []float64
}
