// server/internal/store/custom_forms.go
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"a2z-ipm-api-server/internal/models"
)

func (s *Store) customForms() *mongo.Collection {
	return s.DB.Collection(models.CollCustomForms)
}

func (s *Store) GetCustomForm(ctx context.Context, key string) (*models.CustomForm, error) {
	id, err := oid(key)
	if err != nil {
		return nil, err
	}
	var form models.CustomForm
	err = s.customForms().FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *Store) ListCustomForms(ctx context.Context) ([]models.CustomForm, error) {
	cursor, err := s.customForms().Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	forms := []models.CustomForm{}
	if err := cursor.All(ctx, &forms); err != nil {
		return nil, err
	}
	return forms, nil
}

func (s *Store) CreateCustomForm(ctx context.Context, form *models.CustomForm) error {
	now := models.NowMillis()
	form.CreatedAt = now
	form.UpdatedAt = now
	res, err := s.customForms().InsertOne(ctx, form)
	if err != nil {
		return err
	}
	form.ID = res.InsertedID.(primitive.ObjectID)
	s.notify(models.CollCustomForms, "created", form.ID.Hex())
	return nil
}

func (s *Store) UpdateCustomForm(ctx context.Context, key string, update bson.M) error {
	id, err := oid(key)
	if err != nil {
		return err
	}
	update["updatedAt"] = models.NowMillis()
	res, err := s.customForms().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	s.notify(models.CollCustomForms, "updated", key)
	return nil
}

func (s *Store) DeleteCustomForm(ctx context.Context, key string) error {
	id, err := oid(key)
	if err != nil {
		return err
	}
	res, err := s.customForms().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	s.notify(models.CollCustomForms, "deleted", key)
	return nil
}
