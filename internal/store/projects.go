// server/internal/store/projects.go
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"a2z-ipm-api-server/internal/models"
)

func (s *Store) projects() *mongo.Collection {
	return s.DB.Collection(models.CollProjects)
}

func (s *Store) GetProject(ctx context.Context, key string) (*models.Project, error) {
	id, err := oid(key)
	if err != nil {
		return nil, err
	}
	var project models.Project
	err = s.projects().FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Store) ListProjects(ctx context.Context, filter bson.M) ([]models.Project, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := s.projects().Find(ctx, filter, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Store) CreateProject(ctx context.Context, project *models.Project) error {
	now := models.NowMillis()
	project.CreatedAt = now
	project.UpdatedAt = now
	res, err := s.projects().InsertOne(ctx, project)
	if err != nil {
		return err
	}
	project.ID = res.InsertedID.(primitive.ObjectID)
	s.notify(models.CollProjects, "created", project.ID.Hex())
	return nil
}

func (s *Store) UpdateProject(ctx context.Context, key string, update bson.M) error {
	id, err := oid(key)
	if err != nil {
		return err
	}
	update["updatedAt"] = models.NowMillis()
	res, err := s.projects().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	s.notify(models.CollProjects, "updated", key)
	return nil
}

func (s *Store) DeleteProject(ctx context.Context, key string) error {
	id, err := oid(key)
	if err != nil {
		return err
	}
	res, err := s.projects().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	s.notify(models.CollProjects, "deleted", key)
	return nil
}
