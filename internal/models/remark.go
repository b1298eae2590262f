// server/internal/models/remark.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Remark is a free-text observation a client or staff member leaves on a
// project, outside of any form submission.
type Remark struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectKey string             `bson:"projectKey" json:"projectKey"`
	UserKey    string             `bson:"userKey" json:"userKey"`
	Text       string             `bson:"text" json:"text"`
	Date       string             `bson:"date" json:"date"` // YYYY-MM-DD
	CreatedAt  int64              `bson:"createdAt" json:"createdAt"`
}
