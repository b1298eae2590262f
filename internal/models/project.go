// server/internal/models/project.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a client site serviced by field staff. Lat/Lng/Radius define the
// geofence used to verify attendance check-ins when GPSEnabled is set.
type Project struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code       string             `bson:"code" json:"code"` // e.g. "PRJ-014"
	Name       string             `bson:"name" json:"name"`
	Client     string             `bson:"client" json:"client"`
	Contact    string             `bson:"contact" json:"contact"`
	Address    string             `bson:"address" json:"address"`
	Lat        float64            `bson:"lat" json:"lat"`
	Lng        float64            `bson:"lng" json:"lng"`
	Radius     float64            `bson:"radius" json:"radius"` // metres, default 50
	GPSEnabled bool               `bson:"gpsEnabled" json:"gpsEnabled"`
	Active     bool               `bson:"active" json:"active"`
	CreatedAt  int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt  int64              `bson:"updatedAt" json:"updatedAt"`
}
