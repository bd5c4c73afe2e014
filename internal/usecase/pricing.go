package usecase

import (
	"time"

	"github.com/pixelmart-dev/go-backend/internal/domain"
)

// MinMaxPrice возвращает диапазон цен товара. Минимум считается по
// эффективным ценам вариантов (sale_price, если она задана и ниже price),
// максимум — по обычным price: скидка опускает нижнюю границу витрины,
// но не верхнюю. Для товара без вариантов диапазон схлопывается в
// [price, price]; при полном отсутствии ценового сигнала получается [0, 0].
// Функция никогда не ошибается: результат всегда из двух элементов,
// нулевой элемент — минимум (на это опираются сортировка и фильтр по цене).
func MinMaxPrice(p *domain.Product) []float64 {
	if len(p.Variants) == 0 {
		return []float64{p.Price, p.Price}
	}

	min, max := effectivePrice(&p.Variants[0]), p.Variants[0].Price
	for i := 1; i < len(p.Variants); i++ {
		if price := effectivePrice(&p.Variants[i]); price < min {
			min = price
		}
		if p.Variants[i].Price > max {
			max = p.Variants[i].Price
		}
	}

	return []float64{min, max}
}

func effectivePrice(v *domain.Variant) float64 {
	if v.SalePrice != nil && *v.SalePrice < v.Price {
		return *v.SalePrice
	}

	return v.Price
}

// IsSaleProduct сообщает, действует ли сейчас распродажа товара:
// выставлен флаг is_sale и дедлайн until либо пуст, либо ещё не прошёл.
// Нечитаемая строка в until трактуется как отсутствие дедлайна.
func IsSaleProduct(p *domain.Product, now time.Time) bool {
	if !p.IsSale {
		return false
	}

	if p.Until == "" {
		return true
	}

	deadline, ok := parseDate(p.Until)
	if !ok {
		return true
	}

	return deadline.After(now)
}

// parseDate разбирает строки-даты документов ("2006-01-02" или RFC3339).
func parseDate(s string) (time.Time, bool) {
	layouts := []string{"2006-01-02", time.RFC3339}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
