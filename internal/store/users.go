// server/internal/store/users.go
package store

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"a2z-ipm-api-server/internal/models"
)

func (s *Store) users() *mongo.Collection {
	return s.DB.Collection(models.CollUsers)
}

// usernamePattern matches a username exactly, ignoring case. Logins and
// duplicate checks are both case-insensitive.
func usernamePattern(username string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(username) + "$", Options: "i"}
}

// FindUserByUsername looks a user up by username, ignoring case.
func (s *Store) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.users().FindOne(ctx, bson.M{"username": usernamePattern(username)}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUser(ctx context.Context, key string) (*models.User, error) {
	id, err := oid(key)
	if err != nil {
		return nil, err
	}
	var user models.User
	err = s.users().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users().Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UsernameTaken checks whether another user already holds the username.
// excludeKey skips the user being edited.
func (s *Store) UsernameTaken(ctx context.Context, username, excludeKey string) (bool, error) {
	filter := bson.M{"username": usernamePattern(username)}
	if excludeKey != "" {
		id, err := oid(excludeKey)
		if err != nil {
			return false, err
		}
		filter["_id"] = bson.M{"$ne": id}
	}
	count, err := s.users().CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	now := models.NowMillis()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Projects == nil {
		user.Projects = []string{}
	}
	res, err := s.users().InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	s.notify(models.CollUsers, "created", user.ID.Hex())
	return nil
}

// UpdateUser applies a partial update. The password field must arrive
// already hashed.
func (s *Store) UpdateUser(ctx context.Context, key string, update bson.M) error {
	id, err := oid(key)
	if err != nil {
		return err
	}
	update["updatedAt"] = models.NowMillis()
	res, err := s.users().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	s.notify(models.CollUsers, "updated", key)
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, key string) error {
	id, err := oid(key)
	if err != nil {
		return err
	}
	res, err := s.users().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	s.notify(models.CollUsers, "deleted", key)
	return nil
}
