// server/internal/models/custom_form.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormField is one field of an admin-designed form. Options is only
// meaningful for select fields, Columns only for table fields.
type FormField struct {
	ID           string   `bson:"id" json:"id"`
	Type         string   `bson:"type" json:"type"` // text, number, textarea, select, checkbox, date, time, signature, table
	Label        string   `bson:"label" json:"label"`
	Required     bool     `bson:"required" json:"required"`
	Options      []string `bson:"options,omitempty" json:"options,omitempty"`
	TableColumns []string `bson:"tableColumns,omitempty" json:"tableColumns,omitempty"`
}

// CustomForm is an admin-designed report template rendered alongside the
// built-in form types.
type CustomForm struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Icon        string             `bson:"icon" json:"icon"`
	Description string             `bson:"description" json:"description"`
	Active      bool               `bson:"active" json:"active"`
	Fields      []FormField        `bson:"fields" json:"fields"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64              `bson:"updatedAt" json:"updatedAt"`
}
