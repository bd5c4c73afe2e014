package domain

// Media описывает одно изображение каталога или блога
type Media struct {
	Width  int
	Height int
	URL    string
}
