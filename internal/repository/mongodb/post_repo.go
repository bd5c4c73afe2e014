package mongodb

import (
	"context"

	"github.com/jimlawless/whereami"
	"github.com/pixelmart-dev/go-backend/internal/domain"
	"github.com/pixelmart-dev/go-backend/internal/repository/mongodb/converter"
	"github.com/pixelmart-dev/go-backend/pkg/e"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PostRepo реализует репозиторий постов блога поверх MongoDB.
// Посты создаются вне системы, поэтому репозиторий только читает.
type PostRepo struct {
	coll *mongo.Collection
	conv converter.PostConverter
}

func NewPostRepo(db *mongo.Database, collection string, conv converter.PostConverter) *PostRepo {
	return &PostRepo{
		coll: db.Collection(collection),
		conv: conv,
	}
}

func (p *PostRepo) FindAll(ctx context.Context) ([]domain.Post, error) {
	cursor, err := p.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer cursor.Close(ctx)

	var models []converter.PostModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntityList(models), nil
}
