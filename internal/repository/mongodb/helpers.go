package mongodb

import (
	"github.com/pixelmart-dev/go-backend/pkg/e"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseOID разбирает hex-представление первичного идентификатора.
func parseOID(storeID string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return primitive.NilObjectID, e.Wrap(storeID, e.ErrInvalidID)
	}

	return oid, nil
}

// setDocument превращает модель в документ для $set без поля _id:
// первичный идентификатор неизменяем.
func setDocument(model any) (bson.M, error) {
	data, err := bson.Marshal(model)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")

	return doc, nil
}
