// server/internal/store/stock_logs.go
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"a2z-ipm-api-server/internal/models"
)

func (s *Store) stockLogs() *mongo.Collection {
	return s.DB.Collection(models.CollStockLogs)
}

func (s *Store) InsertStockLog(ctx context.Context, log *models.StockLog) error {
	log.CreatedAt = models.NowMillis()
	res, err := s.stockLogs().InsertOne(ctx, log)
	if err != nil {
		return err
	}
	log.ID = res.InsertedID.(primitive.ObjectID)
	s.notify(models.CollStockLogs, "created", log.ID.Hex())
	return nil
}

// ListStockLogs returns movements matching the filter in chronological
// order, which is the order the ledger fold requires.
func (s *Store) ListStockLogs(ctx context.Context, filter bson.M) ([]models.StockLog, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "createdAt", Value: 1}})
	cursor, err := s.stockLogs().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	logs := []models.StockLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// StockLogsByProduct groups every movement by product key, chronologically
// ordered within each product.
func (s *Store) StockLogsByProduct(ctx context.Context) (map[string][]models.StockLog, error) {
	logs, err := s.ListStockLogs(ctx, nil)
	if err != nil {
		return nil, err
	}
	byProduct := make(map[string][]models.StockLog)
	for _, l := range logs {
		byProduct[l.ProductKey] = append(byProduct[l.ProductKey], l)
	}
	return byProduct, nil
}

func (s *Store) DeleteStockLog(ctx context.Context, key string) error {
	id, err := oid(key)
	if err != nil {
		return err
	}
	res, err := s.stockLogs().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	s.notify(models.CollStockLogs, "deleted", key)
	return nil
}
