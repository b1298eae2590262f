// server/internal/store/products.go
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"a2z-ipm-api-server/internal/models"
)

func (s *Store) products() *mongo.Collection {
	return s.DB.Collection(models.CollProducts)
}

func (s *Store) GetProduct(ctx context.Context, key string) (*models.Product, error) {
	id, err := oid(key)
	if err != nil {
		return nil, err
	}
	var product models.Product
	err = s.products().FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) ListProducts(ctx context.Context, filter bson.M) ([]models.Product, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := s.products().Find(ctx, filter, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	now := models.NowMillis()
	product.CreatedAt = now
	product.UpdatedAt = now
	res, err := s.products().InsertOne(ctx, product)
	if err != nil {
		return err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	s.notify(models.CollProducts, "created", product.ID.Hex())
	return nil
}

// UpdateProduct applies a partial update. The opening stock is fixed at
// creation: changing it would silently rewrite the whole ledger history, so
// it is stripped from every update.
func (s *Store) UpdateProduct(ctx context.Context, key string, update bson.M) error {
	id, err := oid(key)
	if err != nil {
		return err
	}
	delete(update, "openingStock")
	update["updatedAt"] = models.NowMillis()
	res, err := s.products().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	s.notify(models.CollProducts, "updated", key)
	return nil
}

// DeleteProduct removes a product and its entire stock ledger. The log purge
// is a single batched delete, so retrying a partial failure is safe.
func (s *Store) DeleteProduct(ctx context.Context, key string) error {
	id, err := oid(key)
	if err != nil {
		return err
	}
	if _, err := s.stockLogs().DeleteMany(ctx, bson.M{"productKey": key}); err != nil {
		return err
	}
	res, err := s.products().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	s.notify(models.CollProducts, "deleted", key)
	return nil
}
