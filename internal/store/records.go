// server/internal/store/records.go
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"a2z-ipm-api-server/internal/models"
)

func (s *Store) records() *mongo.Collection {
	return s.DB.Collection(models.CollRecords)
}

// InsertRecord appends a submitted record. Records are never updated, so
// there is no update counterpart.
func (s *Store) InsertRecord(ctx context.Context, rec *models.Record) error {
	rec.CreatedAt = models.NowMillis()
	res, err := s.records().InsertOne(ctx, rec)
	if err != nil {
		return err
	}
	rec.ID = res.InsertedID.(primitive.ObjectID)
	s.notify(models.CollRecords, "created", rec.ID.Hex())
	return nil
}

func (s *Store) GetRecord(ctx context.Context, key string) (*models.Record, error) {
	id, err := oid(key)
	if err != nil {
		return nil, err
	}
	var rec models.Record
	err = s.records().FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRecords returns records matching the filter, newest first.
func (s *Store) ListRecords(ctx context.Context, filter bson.M) ([]models.Record, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}})
	cursor, err := s.records().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	records := []models.Record{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) DeleteRecord(ctx context.Context, key string) error {
	id, err := oid(key)
	if err != nil {
		return err
	}
	res, err := s.records().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	s.notify(models.CollRecords, "deleted", key)
	return nil
}
