package redis

import (
	"context"

	"github.com/jimlawless/whereami"
	"github.com/pixelmart-dev/go-backend/pkg/clients"
	"github.com/pixelmart-dev/go-backend/pkg/e"
)

const seqPrefix = "seq:"

// SequenceRepo выдаёт монотонные числовые идентификаторы через Redis INCR.
type SequenceRepo struct {
	client *clients.RedisClient
}

func NewSequenceRepo(client *clients.RedisClient) *SequenceRepo {
	return &SequenceRepo{
		client: client,
	}
}

// Next атомарно увеличивает счётчик и возвращает новое значение.
func (s *SequenceRepo) Next(ctx context.Context, name string) (int64, error) {
	val, err := s.client.Client.Incr(ctx, seqPrefix+name).Result()
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return val, nil
}

// Ensure поднимает счётчик минимум до value. Вызывается один раз при старте,
// чтобы счётчик не отставал от уже существующих документов.
func (s *SequenceRepo) Ensure(ctx context.Context, name string, value int64) error {
	key := seqPrefix + name

	ok, err := s.client.Client.SetNX(ctx, key, value, 0).Result()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if ok {
		return nil
	}

	current, err := s.client.Client.Get(ctx, key).Int64()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	// Гонка между Get и Set возможна только при параллельном старте
	// нескольких экземпляров с одинаковым стартовым значением, итог тот же.
	if current < value {
		if err := s.client.Client.Set(ctx, key, value, 0).Err(); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}
