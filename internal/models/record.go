// server/internal/models/record.go
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecordLocation captures the GPS verification outcome stored with an
// attendance check-in.
type RecordLocation struct {
	Lat      float64 `bson:"lat" json:"lat"`
	Lng      float64 `bson:"lng" json:"lng"`
	Distance float64 `bson:"distance" json:"distance"` // metres from the project site
	Verified bool    `bson:"verified" json:"verified"`
	Skipped  bool    `bson:"skipped" json:"skipped"`
}

// ChecklistActivity is one line of a service checklist visit.
type ChecklistActivity struct {
	Item   string `bson:"item" json:"item"`
	Status string `bson:"status" json:"status"` // done, pending, na
}

// StationEntry is one row of a per-station inspection table. Generic device
// checks fill Count/Status; bait station surveys fill the remaining fields.
type StationEntry struct {
	Sr           int    `bson:"sr" json:"sr"`
	Location     string `bson:"location" json:"location"`
	Count        int    `bson:"count,omitempty" json:"count,omitempty"`
	Status       string `bson:"status,omitempty" json:"status,omitempty"` // ok, damaged, replaced
	StationType  string `bson:"stationType,omitempty" json:"stationType,omitempty"`
	BaitConsumed string `bson:"baitConsumed,omitempty" json:"baitConsumed,omitempty"`
	BaitReplaced string `bson:"baitReplaced,omitempty" json:"baitReplaced,omitempty"`
	Condition    string `bson:"condition,omitempty" json:"condition,omitempty"`
	PestActivity string `bson:"pestActivity,omitempty" json:"pestActivity,omitempty"`
}

// Record is one submitted service report. It is a union document: the
// populated fields depend on which form type produced it. Records are
// append-only; they are never updated after submission.
type Record struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FormType        string             `bson:"formType" json:"formType"`
	ProjectKey      string             `bson:"projectKey" json:"projectKey"`
	UserKey         string             `bson:"userKey" json:"userKey"`
	Date            string             `bson:"date" json:"date"` // YYYY-MM-DD
	Time            string             `bson:"time" json:"time"` // HH:MM
	Remarks         string             `bson:"remarks,omitempty" json:"remarks,omitempty"`
	TechSignature   string             `bson:"techSignature,omitempty" json:"techSignature,omitempty"`
	ClientSignature string             `bson:"clientSignature,omitempty" json:"clientSignature,omitempty"`

	// attendance
	Location *RecordLocation `bson:"location,omitempty" json:"location,omitempty"`
	Work     string          `bson:"work,omitempty" json:"work,omitempty"`

	// insecticide spray
	Chemical     string `bson:"chemical,omitempty" json:"chemical,omitempty"`
	Qty          string `bson:"qty,omitempty" json:"qty,omitempty"`
	Water        string `bson:"water,omitempty" json:"water,omitempty"`
	BatchNumber  string `bson:"batchNumber,omitempty" json:"batchNumber,omitempty"`
	RemainingQty string `bson:"remainingQty,omitempty" json:"remainingQty,omitempty"`
	Areas        string `bson:"areas,omitempty" json:"areas,omitempty"`

	// checklist
	TimeIn     string              `bson:"timeIn,omitempty" json:"timeIn,omitempty"`
	TimeOut    string              `bson:"timeOut,omitempty" json:"timeOut,omitempty"`
	Activities []ChecklistActivity `bson:"activities,omitempty" json:"activities,omitempty"`

	// bait station survey
	BaitBrand      string `bson:"baitBrand,omitempty" json:"baitBrand,omitempty"`
	TotalStations  int    `bson:"totalStations,omitempty" json:"totalStations,omitempty"`
	ActiveStations int    `bson:"activeStations,omitempty" json:"activeStations,omitempty"`
	BaitUsed       string `bson:"baitUsed,omitempty" json:"baitUsed,omitempty"`

	// per-station rows for device checks and bait station surveys
	Entries []StationEntry `bson:"entries,omitempty" json:"entries,omitempty"`

	// custom form submissions; table field values live under "tableRows"
	CustomData bson.M `bson:"customData,omitempty" json:"customData,omitempty"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
}
