package handlers

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestDateFilter(t *testing.T) {
	if got := dateFilter("2026-08", "", ""); !reflect.DeepEqual(got, bson.M{"$regex": "^2026-08"}) {
		t.Fatalf("month filter wrong: %v", got)
	}
	if got := dateFilter("", "2026-08-01", "2026-08-15"); !reflect.DeepEqual(got, bson.M{"$gte": "2026-08-01", "$lte": "2026-08-15"}) {
		t.Fatalf("range filter wrong: %v", got)
	}
	if got := dateFilter("", "2026-08-01", ""); !reflect.DeepEqual(got, bson.M{"$gte": "2026-08-01"}) {
		t.Fatalf("open-ended range wrong: %v", got)
	}
	if got := dateFilter("2026-08", "2026-01-01", "2026-01-31"); !reflect.DeepEqual(got, bson.M{"$regex": "^2026-08"}) {
		t.Fatalf("month must win over a range: %v", got)
	}
	if got := dateFilter("", "", ""); got != nil {
		t.Fatalf("no dates must yield no filter, got %v", got)
	}
}
