// server/internal/models/common.go
package models

import "time"

// Collection names used across the store and handlers.
const (
	CollUsers       = "users"
	CollProjects    = "projects"
	CollRecords     = "records"
	CollRemarks     = "remarks"
	CollCustomForms = "customForms"
	CollProducts    = "products"
	CollStockLogs   = "stockLogs"
)

// NowMillis returns the current time as epoch milliseconds, the timestamp
// format stored on every document.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
