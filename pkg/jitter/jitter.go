// Package jitter добавляет случайность в интервалы отступления (backoff),
// чтобы повторные попытки разных горутин не выстраивались в одну волну.
package jitter

import (
	"math/rand"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%).
const DefaultJitter = 0.5

// Duration возвращает продолжительность с применённым джиттером.
// Результат находится в диапазоне [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	return d + time.Duration(rand.Float64()*jitterFactor*float64(d))
}

// ExponentialBackoff вычисляет длительность паузы перед повтором:
// base удваивается attempt раз (нумерация попыток с нуля), ограничивается
// max и затем размывается джиттером.
func ExponentialBackoff(base, max time.Duration, attempt int, jitterFactor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			backoff = max
			break
		}
	}

	return Duration(backoff, jitterFactor)
}
