package usecase_test

import (
	"testing"
	"time"

	"github.com/pixelmart-dev/go-backend/internal/domain"
	"github.com/pixelmart-dev/go-backend/internal/usecase"
)

func fptr(v float64) *float64 { return &v }

func TestMinMaxPrice_NoVariants(t *testing.T) {
	p := &domain.Product{Price: 59.99}

	got := usecase.MinMaxPrice(p)
	if len(got) != 2 || got[0] != 59.99 || got[1] != 59.99 {
		t.Fatalf("want [59.99 59.99], got %v", got)
	}
}

func TestMinMaxPrice_NoPriceSignal(t *testing.T) {
	got := usecase.MinMaxPrice(&domain.Product{})
	if len(got) != 2 || got[0] != 0 || got[1] != 0 {
		t.Fatalf("want [0 0], got %v", got)
	}
}

func TestMinMaxPrice_VariantsWithSale(t *testing.T) {
	p := &domain.Product{
		Price: 100,
		Variants: []domain.Variant{
			{Price: 80},
			{Price: 120, SalePrice: fptr(60)},
			// sale_price выше цены игнорируется
			{Price: 90, SalePrice: fptr(150)},
		},
	}

	// Скидка опускает минимум, но максимум остаётся по обычным ценам.
	got := usecase.MinMaxPrice(p)
	if got[0] != 60 || got[1] != 120 {
		t.Fatalf("want [60 120], got %v", got)
	}
}

func TestMinMaxPrice_SaleLowersFloorNotCeiling(t *testing.T) {
	p := &domain.Product{
		Variants: []domain.Variant{
			{Price: 100, SalePrice: fptr(80)},
			{Price: 50},
		},
	}

	got := usecase.MinMaxPrice(p)
	if got[0] != 50 || got[1] != 100 {
		t.Fatalf("want [50 100], got %v", got)
	}
}

func TestIsSaleProduct(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		p    domain.Product
		want bool
	}{
		{"not on sale", domain.Product{IsSale: false, Until: "2027-01-01"}, false},
		{"no deadline", domain.Product{IsSale: true}, true},
		{"future deadline", domain.Product{IsSale: true, Until: "2026-06-01"}, true},
		{"past deadline", domain.Product{IsSale: true, Until: "2026-01-01"}, false},
		{"unparseable deadline", domain.Product{IsSale: true, Until: "soon"}, true},
		{"rfc3339 deadline", domain.Product{IsSale: true, Until: "2026-06-01T00:00:00Z"}, true},
	}

	for _, tc := range cases {
		if got := usecase.IsSaleProduct(&tc.p, now); got != tc.want {
			t.Errorf("%s: want %v, got %v", tc.name, tc.want, got)
		}
	}
}
