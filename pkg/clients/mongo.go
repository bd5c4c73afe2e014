package clients

import (
	"context"

	"github.com/jimlawless/whereami"
	config "github.com/pixelmart-dev/go-backend/internal/cfg"
	"github.com/pixelmart-dev/go-backend/pkg/e"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient инкапсулирует подключение к MongoDB и выбранную базу.
type MongoClient struct {
	Client *mongo.Client
	DB     *mongo.Database
	cfg    *config.MongoCfg
}

// NewMongoClient устанавливает соединение с MongoDB и проверяет его ping-ом.
func NewMongoClient(ctx context.Context, cfg *config.MongoCfg) (*MongoClient, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.Wrap(err.Error(), e.ErrStorageUnavailable))
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.Wrap(err.Error(), e.ErrStorageUnavailable))
	}

	return &MongoClient{
		Client: client,
		DB:     client.Database(cfg.Database),
		cfg:    cfg,
	}, nil
}

func (m *MongoClient) Ping(ctx context.Context) error {
	if err := m.Client.Ping(ctx, readpref.Primary()); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Close корректно разрывает соединение с MongoDB.
func (m *MongoClient) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
