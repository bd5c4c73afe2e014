package mongodb

import (
	"context"
	"errors"

	"github.com/jimlawless/whereami"
	"github.com/pixelmart-dev/go-backend/internal/domain"
	"github.com/pixelmart-dev/go-backend/internal/repository/mongodb/converter"
	"github.com/pixelmart-dev/go-backend/pkg/e"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CategoryRepo реализует репозиторий общей коллекции категорий поверх MongoDB.
type CategoryRepo struct {
	coll *mongo.Collection
	conv converter.CategoryConverter
}

func NewCategoryRepo(db *mongo.Database, collection string, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{
		coll: db.Collection(collection),
		conv: conv,
	}
}

func (c *CategoryRepo) FindAll(ctx context.Context) ([]domain.Category, error) {
	cursor, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer cursor.Close(ctx)

	var models []converter.CategoryModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntityList(models), nil
}

func (c *CategoryRepo) FindByStoreID(ctx context.Context, storeID string) (*domain.Category, error) {
	oid, err := parseOID(storeID)
	if err != nil {
		return nil, err
	}

	var model converter.CategoryModel
	if err := c.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, e.Wrap(storeID, e.ErrCategoryNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) Insert(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	model := c.conv.ToModel(category)

	res, err := c.coll.InsertOne(ctx, model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	created := *category
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.StoreID = oid.Hex()
	}

	return &created, nil
}

func (c *CategoryRepo) Update(ctx context.Context, storeID string, category *domain.Category) (int64, error) {
	oid, err := parseOID(storeID)
	if err != nil {
		return 0, err
	}

	fields, err := setDocument(c.conv.ToModel(category))
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return res.ModifiedCount, nil
}

func (c *CategoryRepo) Delete(ctx context.Context, storeID string) (int64, error) {
	oid, err := parseOID(storeID)
	if err != nil {
		return 0, err
	}

	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return res.DeletedCount, nil
}
