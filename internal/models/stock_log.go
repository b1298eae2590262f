// server/internal/models/stock_log.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StockTypeAdd    = "add"    // stock received, quantity is added
	StockTypeUsage  = "usage"  // stock consumed, quantity is subtracted
	StockTypeAdjust = "adjust" // physical count, quantity replaces the balance
)

const (
	EntryAdminAdjustment = "admin_adjustment"
	EntryStaffUsage      = "staff_usage"
)

// StockLog is one movement in a product's inventory ledger. Logs are
// append-only; corrections are made with a new adjust entry.
type StockLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductKey string             `bson:"productKey" json:"productKey"`
	Type       string             `bson:"type" json:"type"` // add, usage, adjust
	Qty        float64            `bson:"qty" json:"qty"`
	Date       string             `bson:"date" json:"date"` // YYYY-MM-DD
	Note       string             `bson:"note,omitempty" json:"note,omitempty"`
	EntryType  string             `bson:"entryType,omitempty" json:"entryType,omitempty"`
	UserKey    string             `bson:"userKey,omitempty" json:"userKey,omitempty"`
	ProjectKey string             `bson:"projectKey,omitempty" json:"projectKey,omitempty"` // site where staff used the stock
	BatchNo    string             `bson:"batchNo,omitempty" json:"batchNo,omitempty"`
	Supplier   string             `bson:"supplier,omitempty" json:"supplier,omitempty"`
	CreatedAt  int64              `bson:"createdAt" json:"createdAt"`
}
