// server/internal/models/product.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories and units offered when registering inventory items. Products
// outside these sets are rejected.
var (
	ProductCategories = []string{"Insecticide", "Rodenticide", "Bait", "Equipment", "PPE", "Other"}
	ProductUnits      = []string{"ml", "L", "g", "kg", "pcs", "box", "roll", "pair"}
)

func ValidProductCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidProductUnit(unit string) bool {
	for _, u := range ProductUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// Product is a stock item. The current stock level is never stored; it is
// derived from OpeningStock plus the product's stock log entries.
type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	SKU          string             `bson:"sku,omitempty" json:"sku,omitempty"`
	Brand        string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Category     string             `bson:"category" json:"category"`
	Unit         string             `bson:"unit" json:"unit"`
	OpeningStock float64            `bson:"openingStock" json:"openingStock"`
	MinStock     float64            `bson:"minStock" json:"minStock"`
	Supplier     string             `bson:"supplier,omitempty" json:"supplier,omitempty"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Active       bool               `bson:"active" json:"active"`
	CreatedAt    int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt    int64              `bson:"updatedAt" json:"updatedAt"`
}
