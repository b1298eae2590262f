// server/internal/store/store.go
package store

import (
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"a2z-ipm-api-server/config"
	"a2z-ipm-api-server/internal/socket"
)

// ErrNotFound is returned when a document key does not resolve.
var ErrNotFound = errors.New("document not found")

// Store is the single data-access layer. Every mutation stamps timestamps
// and pushes a change event to connected clients through the hub.
type Store struct {
	DB  *mongo.Database
	Hub *socket.Hub
	log *logrus.Logger
}

func New(db *mongo.Database, hub *socket.Hub) *Store {
	return &Store{DB: db, Hub: hub, log: config.GetLogger()}
}

func (s *Store) notify(collection, action, key string) {
	if s.Hub == nil {
		return
	}
	s.Hub.Broadcast(socket.ChangeEvent{Collection: collection, Action: action, Key: key})
}

// oid parses a document key. Keys are ObjectID hex strings.
func oid(key string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(key)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return id, nil
}
