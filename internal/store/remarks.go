// server/internal/store/remarks.go
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"a2z-ipm-api-server/internal/models"
)

func (s *Store) remarks() *mongo.Collection {
	return s.DB.Collection(models.CollRemarks)
}

func (s *Store) InsertRemark(ctx context.Context, remark *models.Remark) error {
	remark.CreatedAt = models.NowMillis()
	res, err := s.remarks().InsertOne(ctx, remark)
	if err != nil {
		return err
	}
	remark.ID = res.InsertedID.(primitive.ObjectID)
	s.notify(models.CollRemarks, "created", remark.ID.Hex())
	return nil
}

func (s *Store) ListRemarks(ctx context.Context, filter bson.M) ([]models.Remark, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := s.remarks().Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	remarks := []models.Remark{}
	if err := cursor.All(ctx, &remarks); err != nil {
		return nil, err
	}
	return remarks, nil
}

func (s *Store) DeleteRemark(ctx context.Context, key string) error {
	id, err := oid(key)
	if err != nil {
		return err
	}
	res, err := s.remarks().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	s.notify(models.CollRemarks, "deleted", key)
	return nil
}
