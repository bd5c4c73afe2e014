package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const defaultForcedTimeout = 2 * time.Second

// Closer обеспечивает потокобезопасное закрытие ресурсов в порядке,
// обратном регистрации.
type Closer struct {
	funcs         []Func
	mu            sync.Mutex
	once          sync.Once
	forcedTimeout time.Duration
}

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

// NewCloser создает новый экземпляр Closer.
// forcedTimeout — время на принудительное закрытие ресурсов, не успевших
// закрыться до отмены контекста в Close; 0 означает значение по умолчанию.
func NewCloser(forcedTimeout time.Duration) *Closer {
	if forcedTimeout == 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{
		forcedTimeout: forcedTimeout,
	}
}

// Add добавляет функцию в список закрытия.
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
}

// Close последовательно закрывает все зарегистрированные ресурсы (LIFO).
// Если контекст отменяется до завершения, оставшиеся ресурсы закрываются
// принудительно с собственным таймаутом. Повторные вызовы — no-op.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		remaining, errs := c.gracefulClose(ctx, funcs)
		if len(remaining) > 0 {
			errs = append(errs, c.forcedClose(remaining)...)
			errs = append(errs, fmt.Errorf("shutdown interrupted, %d of %d funcs closed forcibly", len(remaining), len(funcs)))
		}

		err = errors.Join(errs...)
	})

	return err
}

// gracefulClose запускает функции закрытия в порядке LIFO, пока контекст жив.
// Возвращает функции, до которых не дошла очередь, и накопленные ошибки.
func (c *Closer) gracefulClose(ctx context.Context, funcs []Func) ([]Func, []error) {
	var errs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		done := make(chan error, 1)
		go func(f Func) {
			done <- f(ctx)
		}(funcs[i])

		select {
		case err := <-done:
			if err != nil {
				errs = append(errs, err)
			}
		case <-ctx.Done():
			return funcs[:i+1], errs
		}
	}

	return nil, errs
}

// forcedClose параллельно закрывает оставшиеся ресурсы с таймаутом forcedTimeout.
func (c *Closer) forcedClose(funcs []Func) []error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	for _, f := range funcs {
		f := f
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f(ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("forced close: %w", err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errs
}
