package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pixelmart-dev/go-backend/internal/domain"
	"github.com/pixelmart-dev/go-backend/pkg/e"
	"github.com/pixelmart-dev/go-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// CatalogMutationUseCase реализует create/update/delete товаров и категорий.
// Прикладные id выдаёт атомарная последовательность; обновление пропускает
// запись, если вход структурно совпадает с хранимым документом.
type CatalogMutationUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	seqRepo      SequenceRepository
	producer     EventProducer
	validate     *validator.Validate
	logger       logger.Logger
}

func NewCatalogMutationUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	seqRepo SequenceRepository,
	producer EventProducer,
	logger logger.Logger,
) *CatalogMutationUseCase {
	return &CatalogMutationUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		seqRepo:      seqRepo,
		producer:     producer,
		validate:     validator.New(),
		logger:       logger,
	}
}

// CreateProduct вставляет новый товар с идентификатором из последовательности.
func (m *CatalogMutationUseCase) CreateProduct(ctx context.Context, input *ProductInput) (*domain.Product, error) {
	const op = "CatalogMutationUseCase.CreateProduct"

	if err := m.validateProduct(input); err != nil {
		return nil, e.Wrap(op, err)
	}

	id, err := m.seqRepo.Next(ctx, SeqProducts)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product := input.ToDomain()
	product.ID = id

	created, err := m.productRepo.Insert(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	m.publish(ctx, EntityProduct, ActionCreated, created.ID, created.StoreID)

	return created, nil
}

// UpdateProduct заменяет содержимое товара по первичному идентификатору.
// Структурно совпадающий вход возвращает хранимый документ без записи.
func (m *CatalogMutationUseCase) UpdateProduct(ctx context.Context, storeID string, input *ProductInput) (*domain.Product, error) {
	const op = "CatalogMutationUseCase.UpdateProduct"

	if err := m.validateProduct(input); err != nil {
		return nil, e.Wrap(op, err)
	}

	existing, err := m.productRepo.FindByStoreID(ctx, storeID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	candidate := input.ToDomain()
	if EqualDocuments(semanticProduct(existing), candidate) {
		return existing, nil
	}

	candidate.ID = existing.ID
	candidate.StoreID = existing.StoreID

	modified, err := m.productRepo.Update(ctx, storeID, candidate)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if modified == 0 {
		return nil, e.Wrap(op, e.ErrUpdateFailed)
	}

	m.publish(ctx, EntityProduct, ActionUpdated, candidate.ID, candidate.StoreID)

	return candidate, nil
}

// DeleteProduct удаляет товар; true — если удалён ровно один документ.
// Документ читается перед удалением, чтобы событие несло прикладной id.
func (m *CatalogMutationUseCase) DeleteProduct(ctx context.Context, storeID string) (bool, error) {
	const op = "CatalogMutationUseCase.DeleteProduct"

	existing, err := m.productRepo.FindByStoreID(ctx, storeID)
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			return false, nil
		}
		return false, e.Wrap(op, err)
	}

	deleted, err := m.productRepo.Delete(ctx, storeID)
	if err != nil {
		return false, e.Wrap(op, err)
	}
	if deleted != 1 {
		return false, nil
	}

	m.publish(ctx, EntityProduct, ActionDeleted, existing.ID, storeID)

	return true, nil
}

// CreateProductCategory вставляет новую категорию товаров.
// Прикладной id присваивается из последовательности независимо от входа.
func (m *CatalogMutationUseCase) CreateProductCategory(ctx context.Context, input *CategoryInput) (*domain.Category, error) {
	const op = "CatalogMutationUseCase.CreateProductCategory"

	if err := m.validate.Struct(input); err != nil {
		return nil, e.Wrap(op, e.Wrap(err.Error(), e.ErrInvalidInput))
	}

	id, err := m.seqRepo.Next(ctx, SeqCategories)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	category := input.ToDomain()
	category.ID = id

	created, err := m.categoryRepo.Insert(ctx, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	m.publish(ctx, EntityCategory, ActionCreated, created.ID, created.StoreID)

	return created, nil
}

// UpdateProductCategory — обновление категории, схема та же, что у товара.
func (m *CatalogMutationUseCase) UpdateProductCategory(ctx context.Context, storeID string, input *CategoryInput) (*domain.Category, error) {
	const op = "CatalogMutationUseCase.UpdateProductCategory"

	if err := m.validate.Struct(input); err != nil {
		return nil, e.Wrap(op, e.Wrap(err.Error(), e.ErrInvalidInput))
	}

	existing, err := m.categoryRepo.FindByStoreID(ctx, storeID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	candidate := input.ToDomain()
	if EqualDocuments(semanticCategory(existing), candidate) {
		return existing, nil
	}

	candidate.StoreID = existing.StoreID

	modified, err := m.categoryRepo.Update(ctx, storeID, candidate)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if modified == 0 {
		return nil, e.Wrap(op, e.ErrUpdateFailed)
	}

	m.publish(ctx, EntityCategory, ActionUpdated, candidate.ID, candidate.StoreID)

	return candidate, nil
}

func (m *CatalogMutationUseCase) DeleteProductCategory(ctx context.Context, storeID string) (bool, error) {
	const op = "CatalogMutationUseCase.DeleteProductCategory"

	existing, err := m.categoryRepo.FindByStoreID(ctx, storeID)
	if err != nil {
		if errors.Is(err, e.ErrCategoryNotFound) {
			return false, nil
		}
		return false, e.Wrap(op, err)
	}

	deleted, err := m.categoryRepo.Delete(ctx, storeID)
	if err != nil {
		return false, e.Wrap(op, err)
	}
	if deleted != 1 {
		return false, nil
	}

	m.publish(ctx, EntityCategory, ActionDeleted, existing.ID, storeID)

	return true, nil
}

// validateProduct проверяет вход мутации товара: теги структуры плюс
// денежные поля (неотрицательность, не более двух знаков после запятой).
func (m *CatalogMutationUseCase) validateProduct(input *ProductInput) error {
	if err := m.validate.Struct(input); err != nil {
		return e.Wrap(err.Error(), e.ErrInvalidInput)
	}

	for _, price := range input.Price {
		if err := checkPrice(price); err != nil {
			return err
		}
	}

	for i := range input.Variants {
		if err := checkPrice(input.Variants[i].Price); err != nil {
			return err
		}
		if sale := input.Variants[i].SalePrice; sale != nil {
			if err := checkPrice(*sale); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkPrice(price float64) error {
	d := decimal.NewFromFloat(price)
	if d.IsNegative() {
		return e.ErrInvalidPrice
	}
	if !d.Equal(d.Round(2)) {
		return e.ErrPricePrecision
	}

	return nil
}

// publish отправляет событие мутации. Ошибка публикации логируется и не
// повторяется: запись в хранилище уже состоялась.
func (m *CatalogMutationUseCase) publish(ctx context.Context, entity, action string, id int64, storeID string) {
	event := NewCatalogEvent(uuid.NewString(), entity, action, id, storeID, time.Now().UTC())
	if err := m.producer.Publish(ctx, event); err != nil {
		m.logger.Warnf("failed to publish %s %s event: %v", entity, action, err)
	}
}

// semanticProduct отбрасывает идентификаторы и производные поля перед
// сравнением с входом мутации.
func semanticProduct(p *domain.Product) *domain.Product {
	out := *p
	out.StoreID = ""
	out.ID = 0
	out.PriceRange = nil

	return &out
}

func semanticCategory(c *domain.Category) *domain.Category {
	out := *c
	out.StoreID = ""

	return &out
}
