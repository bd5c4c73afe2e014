package domain

// PostType — тип публикации блога
type PostType string

const (
	PostTypeImage   PostType = "image"
	PostTypeVideo   PostType = "video"
	PostTypeGallery PostType = "gallery"
)

// Post описывает публикацию блога. Посты в этом сервисе только читаются.
type Post struct {
	StoreID      string
	ID           int64
	Title        string
	Slug         string
	Author       string
	Date         string // строка-дата публикации
	Comments     int
	Content      string
	Type         PostType
	Picture      []Media
	SmallPicture []Media
	Video        bool
	Categories   []CategoryRef
}
