package usecase_test

import (
	"context"
	"fmt"

	"github.com/pixelmart-dev/go-backend/internal/domain"
	"github.com/pixelmart-dev/go-backend/internal/usecase"
	"github.com/pixelmart-dev/go-backend/pkg/e"
)

// Фейки хранилищ для тестов сценариев: всё в памяти, без внешних сервисов.

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

type fakeProductRepo struct {
	products []domain.Product

	inserted []domain.Product
	updated  []domain.Product
	modified int64
	deleted  int64
	updates  int
	deletes  int
}

func (f *fakeProductRepo) FindAll(context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeProductRepo) FindByStoreID(_ context.Context, storeID string) (*domain.Product, error) {
	for i := range f.products {
		if f.products[i].StoreID == storeID {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, e.Wrap(storeID, e.ErrProductNotFound)
}

func (f *fakeProductRepo) Insert(_ context.Context, product *domain.Product) (*domain.Product, error) {
	created := *product
	created.StoreID = fmt.Sprintf("oid-%d", len(f.inserted)+1)
	f.inserted = append(f.inserted, created)
	f.products = append(f.products, created)
	return &created, nil
}

func (f *fakeProductRepo) Update(_ context.Context, storeID string, product *domain.Product) (int64, error) {
	f.updates++
	f.updated = append(f.updated, *product)
	return f.modified, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, storeID string) (int64, error) {
	f.deletes++
	return f.deleted, nil
}

type fakeCategoryRepo struct {
	categories []domain.Category

	inserted []domain.Category
	modified int64
	deleted  int64
	updates  int
}

func (f *fakeCategoryRepo) FindAll(context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(f.categories))
	copy(out, f.categories)
	return out, nil
}

func (f *fakeCategoryRepo) FindByStoreID(_ context.Context, storeID string) (*domain.Category, error) {
	for i := range f.categories {
		if f.categories[i].StoreID == storeID {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, e.Wrap(storeID, e.ErrCategoryNotFound)
}

func (f *fakeCategoryRepo) Insert(_ context.Context, category *domain.Category) (*domain.Category, error) {
	created := *category
	created.StoreID = fmt.Sprintf("cat-oid-%d", len(f.inserted)+1)
	f.inserted = append(f.inserted, created)
	f.categories = append(f.categories, created)
	return &created, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, storeID string, category *domain.Category) (int64, error) {
	f.updates++
	return f.modified, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, storeID string) (int64, error) {
	return f.deleted, nil
}

type fakePostRepo struct {
	posts []domain.Post
}

func (f *fakePostRepo) FindAll(context.Context) ([]domain.Post, error) {
	out := make([]domain.Post, len(f.posts))
	copy(out, f.posts)
	return out, nil
}

type fakeSequenceRepo struct {
	counters map[string]int64
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{counters: make(map[string]int64)}
}

func (f *fakeSequenceRepo) Next(_ context.Context, name string) (int64, error) {
	f.counters[name]++
	return f.counters[name], nil
}

func (f *fakeSequenceRepo) Ensure(_ context.Context, name string, value int64) error {
	if f.counters[name] < value {
		f.counters[name] = value
	}
	return nil
}

type fakeProducer struct {
	events []usecase.CatalogEvent
	err    error
}

func (f *fakeProducer) Publish(_ context.Context, event *usecase.CatalogEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, *event)
	return nil
}
