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

// ProductRepo реализует репозиторий товаров поверх MongoDB.
type ProductRepo struct {
	coll *mongo.Collection
	conv converter.ProductConverter
}

func NewProductRepo(db *mongo.Database, collection string, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		coll: db.Collection(collection),
		conv: conv,
	}
}

// FindAll возвращает все товары в порядке хранилища.
func (p *ProductRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	cursor, err := p.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer cursor.Close(ctx)

	var models []converter.ProductModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntityList(models), nil
}

// FindByStoreID возвращает товар по первичному идентификатору хранилища.
func (p *ProductRepo) FindByStoreID(ctx context.Context, storeID string) (*domain.Product, error) {
	oid, err := parseOID(storeID)
	if err != nil {
		return nil, err
	}

	var model converter.ProductModel
	if err := p.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, e.Wrap(storeID, e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Insert вставляет товар и возвращает его с присвоенным _id.
func (p *ProductRepo) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)

	res, err := p.coll.InsertOne(ctx, model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	created := *product
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.StoreID = oid.Hex()
	}

	return &created, nil
}

// Update заменяет содержимое документа ($set всех полей, кроме _id)
// и возвращает число изменённых документов.
func (p *ProductRepo) Update(ctx context.Context, storeID string, product *domain.Product) (int64, error) {
	oid, err := parseOID(storeID)
	if err != nil {
		return 0, err
	}

	fields, err := setDocument(p.conv.ToModel(product))
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	res, err := p.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return res.ModifiedCount, nil
}

// Delete удаляет товар и возвращает число удалённых документов.
func (p *ProductRepo) Delete(ctx context.Context, storeID string) (int64, error) {
	oid, err := parseOID(storeID)
	if err != nil {
		return 0, err
	}

	res, err := p.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return res.DeletedCount, nil
}
