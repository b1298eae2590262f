package forms

import (
	"testing"

	"a2z-ipm-api-server/internal/models"
)

func namedFields(names ...string) []models.FormField {
	fields := make([]models.FormField, len(names))
	for i, n := range names {
		fields[i] = models.FormField{ID: n, Type: "text", Label: n}
	}
	return fields
}

func TestNewFieldSeeds(t *testing.T) {
	sel := NewField("select")
	if len(sel.Options) != 2 {
		t.Fatalf("select should seed 2 options, got %d", len(sel.Options))
	}
	tbl := NewField("table")
	if len(tbl.TableColumns) != 2 {
		t.Fatalf("table should seed 2 columns, got %d", len(tbl.TableColumns))
	}
	txt := NewField("text")
	if txt.Options != nil || txt.TableColumns != nil {
		t.Fatal("text field should not carry options or columns")
	}
	if txt.ID == "" || txt.ID == sel.ID {
		t.Fatal("field IDs should be generated and unique")
	}
	if txt.Label != "New text field" {
		t.Fatalf("unexpected label %q", txt.Label)
	}
}

func TestMoveFieldSwapsNeighbours(t *testing.T) {
	fields := namedFields("a", "b", "c")
	MoveField(fields, 0, +1)
	if fields[0].ID != "b" || fields[1].ID != "a" {
		t.Fatalf("expected swap, got %v %v", fields[0].ID, fields[1].ID)
	}
	MoveField(fields, 2, -1)
	if fields[1].ID != "c" || fields[2].ID != "a" {
		t.Fatalf("expected swap, got %v %v", fields[1].ID, fields[2].ID)
	}
}

func TestMoveFieldBoundaryNoOp(t *testing.T) {
	fields := namedFields("a", "b")
	MoveField(fields, 0, -1)
	MoveField(fields, 1, +1)
	MoveField(fields, 5, +1)
	if fields[0].ID != "a" || fields[1].ID != "b" {
		t.Fatal("boundary moves must leave the order unchanged")
	}
}

func TestMoveFieldIsPermutation(t *testing.T) {
	fields := namedFields("a", "b", "c", "d")
	MoveField(fields, 1, +1)
	MoveField(fields, 3, -1)
	MoveField(fields, 0, +1)
	seen := map[string]int{}
	for _, f := range fields {
		seen[f.ID]++
	}
	for _, n := range []string{"a", "b", "c", "d"} {
		if seen[n] != 1 {
			t.Fatalf("field %q appears %d times after moves", n, seen[n])
		}
	}
}

func TestRemoveField(t *testing.T) {
	fields := namedFields("a", "b", "c")
	fields = RemoveField(fields, 1)
	if len(fields) != 2 || fields[0].ID != "a" || fields[1].ID != "c" {
		t.Fatalf("unexpected fields after remove: %v", fields)
	}
	fields = RemoveField(fields, 10)
	if len(fields) != 2 {
		t.Fatal("out of range remove must be a no-op")
	}
}

func TestNormalizeRejectsEmptyName(t *testing.T) {
	form := models.CustomForm{Fields: namedFields("a")}
	if err := Normalize(&form); err == nil {
		t.Fatal("expected error for empty form name")
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	form := models.CustomForm{
		Name: "Fumigation Report",
		Fields: []models.FormField{
			{Type: "select"},
			{Type: "table", ID: "field_x", Label: "Stations"},
			{Type: "text", Label: "Area", Options: []string{"stale"}},
		},
	}
	if err := Normalize(&form); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.Icon != "file-alt" {
		t.Fatalf("expected default icon, got %q", form.Icon)
	}
	if form.Fields[0].ID == "" || len(form.Fields[0].Options) != 2 {
		t.Fatal("select field should get an ID and seeded options")
	}
	if form.Fields[0].Label != "New select field" {
		t.Fatalf("unexpected label %q", form.Fields[0].Label)
	}
	if form.Fields[1].ID != "field_x" {
		t.Fatal("existing field ID must be preserved")
	}
	if form.Fields[2].Options != nil {
		t.Fatal("options on a non-select field should be dropped")
	}
}

func TestNormalizeRegeneratesDuplicateIDs(t *testing.T) {
	form := models.CustomForm{
		Name: "Void Inspection",
		Fields: []models.FormField{
			{ID: "field_area", Type: "text", Label: "Area"},
			{ID: "field_area", Type: "number", Label: "Voids Found"},
			{ID: "field_area", Type: "text", Label: "Action"},
		},
	}
	if err := Normalize(&form); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.Fields[0].ID != "field_area" {
		t.Fatalf("first field must keep its id, got %q", form.Fields[0].ID)
	}
	seen := map[string]bool{}
	for _, f := range form.Fields {
		if seen[f.ID] {
			t.Fatalf("duplicate field id %q survived", f.ID)
		}
		seen[f.ID] = true
	}
}

func TestNormalizeRejectsUnknownType(t *testing.T) {
	form := models.CustomForm{Name: "x", Fields: []models.FormField{{Type: "richtext"}}}
	if err := Normalize(&form); err == nil {
		t.Fatal("expected error for unknown field type")
	}
}
