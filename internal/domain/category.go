package domain

// Category описывает категорию из общей коллекции категорий.
// Категории образуют лес через slug родителя: пустой Parent — корень.
type Category struct {
	StoreID string // hex-представление _id в хранилище
	ID      int64
	Name    string
	Slug    string
	Parent  string
}

func NewCategory(id int64, name, slug, parent string) *Category {
	return &Category{
		ID:     id,
		Name:   name,
		Slug:   slug,
		Parent: parent,
	}
}

// Ref возвращает ссылочное представление категории.
func (c *Category) Ref() CategoryRef {
	return CategoryRef{
		ID:     c.ID,
		Name:   c.Name,
		Slug:   c.Slug,
		Parent: c.Parent,
	}
}
