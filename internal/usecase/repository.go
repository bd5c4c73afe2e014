package usecase

import (
	"context"

	"github.com/pixelmart-dev/go-backend/internal/domain"
)

// Репозитории описывают границу хранилища: полный скан, поиск по
// первичному идентификатору и одиночные insert/update/delete.
// Запросы не проталкиваются в хранилище — фильтрация живёт в usecase.

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByStoreID(ctx context.Context, storeID string) (*domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Update возвращает число изменённых документов.
	Update(ctx context.Context, storeID string, product *domain.Product) (int64, error)
	// Delete возвращает число удалённых документов.
	Delete(ctx context.Context, storeID string) (int64, error)
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByStoreID(ctx context.Context, storeID string) (*domain.Category, error)
	Insert(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, storeID string, category *domain.Category) (int64, error)
	Delete(ctx context.Context, storeID string) (int64, error)
}

type PostRepository interface {
	FindAll(ctx context.Context) ([]domain.Post, error)
}

// SequenceRepository выдаёт монотонные прикладные идентификаторы.
// Замена схеме "длина коллекции + 1", небезопасной при конкурентных вставках.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
	// Ensure поднимает нижнюю границу последовательности, не трогая её,
	// если текущее значение уже не меньше value.
	Ensure(ctx context.Context, name string, value int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
