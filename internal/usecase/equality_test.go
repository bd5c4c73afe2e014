package usecase_test

import (
	"testing"

	"github.com/pixelmart-dev/go-backend/internal/domain"
	"github.com/pixelmart-dev/go-backend/internal/usecase"
)

func TestEqualDocuments_NumericTypesMatch(t *testing.T) {
	if !usecase.EqualDocuments(int64(5), 5.0) {
		t.Fatal("int64(5) and 5.0 must compare equal")
	}
	if usecase.EqualDocuments(int64(5), 5.5) {
		t.Fatal("5 and 5.5 must differ")
	}
}

func TestEqualDocuments_MapsIgnoreKeyOrder(t *testing.T) {
	a := map[string]any{"x": 1, "y": []any{"a", "b"}}
	b := map[string]any{"y": []any{"a", "b"}, "x": 1.0}

	if !usecase.EqualDocuments(a, b) {
		t.Fatal("maps with same content must compare equal")
	}

	b["y"] = []any{"b", "a"}
	if usecase.EqualDocuments(a, b) {
		t.Fatal("slices are order-sensitive")
	}
}

func TestEqualDocuments_Structs(t *testing.T) {
	sale := 9.99
	a := domain.Product{
		Name:     "game",
		Variants: []domain.Variant{{Price: 19.99, SalePrice: &sale}},
	}
	b := a
	saleCopy := 9.99
	b.Variants = []domain.Variant{{Price: 19.99, SalePrice: &saleCopy}}

	if !usecase.EqualDocuments(&a, &b) {
		t.Fatal("equal products behind distinct pointers must match")
	}

	b.Variants[0].SalePrice = nil
	if usecase.EqualDocuments(&a, &b) {
		t.Fatal("nil sale price must not match a set one")
	}
}

func TestEqualDocuments_NilHandling(t *testing.T) {
	var p *domain.Product
	if usecase.EqualDocuments(p, &domain.Product{}) {
		t.Fatal("nil pointer must not equal zero value")
	}
	if !usecase.EqualDocuments(nil, nil) {
		t.Fatal("nil must equal nil")
	}
}
