package forms

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"a2z-ipm-api-server/internal/models"
)

func TestSanitizeStripsForeignFields(t *testing.T) {
	rec := models.Record{
		FormType:  "insecticide",
		Chemical:  "Deltamethrin 2.5%",
		Qty:       "50",
		BaitBrand: "should go",
		Entries:   []models.StationEntry{{Location: "should go"}},
		Location:  &models.RecordLocation{Lat: 1},
		CustomData: bson.M{
			"field_1": "should go",
		},
	}
	if err := Sanitize(&rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Chemical != "Deltamethrin 2.5%" || rec.Qty != "50" {
		t.Fatal("insecticide fields must survive")
	}
	if rec.BaitBrand != "" || rec.Entries != nil || rec.Location != nil || rec.CustomData != nil {
		t.Fatal("fields of other form types must be stripped")
	}
}

func TestSanitizeKeepsAttendancePayload(t *testing.T) {
	rec := models.Record{
		FormType: "attendance",
		TimeIn:   "09:00",
		TimeOut:  "17:30",
		Work:     "Routine service visit",
		Location: &models.RecordLocation{Lat: 31.52, Lng: 74.35, Verified: true},
		Chemical: "should go",
	}
	if err := Sanitize(&rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.TimeIn != "09:00" || rec.TimeOut != "17:30" {
		t.Fatalf("check-in times must survive, got %q/%q", rec.TimeIn, rec.TimeOut)
	}
	if rec.Work != "Routine service visit" {
		t.Fatalf("work summary must survive, got %q", rec.Work)
	}
	if rec.Location == nil || !rec.Location.Verified {
		t.Fatal("verified location must survive")
	}
	if rec.Chemical != "" {
		t.Fatal("insecticide fields must be stripped from attendance")
	}
}

func TestSanitizeChecklistKeepsTimesStripsWork(t *testing.T) {
	rec := models.Record{
		FormType:   "checklist",
		TimeIn:     "08:00",
		TimeOut:    "12:00",
		Work:       "should go",
		Activities: []models.ChecklistActivity{{Item: "Documentation", Status: "done"}},
	}
	if err := Sanitize(&rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.TimeIn != "08:00" || rec.TimeOut != "12:00" {
		t.Fatal("checklist times must survive")
	}
	if rec.Work != "" {
		t.Fatal("work belongs to attendance only")
	}
	if len(rec.Activities) != 1 || rec.Activities[0].Item != "Documentation" {
		t.Fatalf("activities not preserved: %+v", rec.Activities)
	}
}

func TestSanitizeSeedsEmptyChecklist(t *testing.T) {
	rec := models.Record{FormType: "checklist"}
	if err := Sanitize(&rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.Activities) != len(ChecklistItems) {
		t.Fatalf("expected %d seeded activities, got %d", len(ChecklistItems), len(rec.Activities))
	}
	for i, a := range rec.Activities {
		if a.Item != ChecklistItems[i] || a.Status != "pending" {
			t.Fatalf("activity %d seeded wrong: %+v", i, a)
		}
	}
}

func TestSanitizeRejectsUnknownChecklistItem(t *testing.T) {
	rec := models.Record{
		FormType:   "checklist",
		Activities: []models.ChecklistActivity{{Item: "Window Cleaning", Status: "done"}},
	}
	if err := Sanitize(&rec); err == nil {
		t.Fatal("expected error for item outside the checklist")
	}
}

func TestSanitizeRenumbersEntries(t *testing.T) {
	rec := models.Record{
		FormType: "gluebox",
		Entries: []models.StationEntry{
			{Sr: 9, Location: "Kitchen", Count: 2, Status: "ok"},
			{Sr: 9, Location: "Store", Count: 0, Status: "replaced"},
		},
	}
	if err := Sanitize(&rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Entries[0].Sr != 1 || rec.Entries[1].Sr != 2 {
		t.Fatalf("entries not renumbered: %+v", rec.Entries)
	}
}

func TestSanitizeRejectsBadStatuses(t *testing.T) {
	rec := models.Record{
		FormType: "efk",
		Entries:  []models.StationEntry{{Location: "Dock", Status: "broken"}},
	}
	if err := Sanitize(&rec); err == nil {
		t.Fatal("expected error for invalid entry status")
	}
	rec = models.Record{
		FormType:   "checklist",
		Activities: []models.ChecklistActivity{{Item: "Spray Treatment", Status: "maybe"}},
	}
	if err := Sanitize(&rec); err == nil {
		t.Fatal("expected error for invalid activity status")
	}
}

func TestSanitizeKeepsCustomData(t *testing.T) {
	rec := models.Record{
		FormType:   "field_visit",
		Chemical:   "should go",
		CustomData: bson.M{"field_1": "north wing"},
	}
	if err := Sanitize(&rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.CustomData["field_1"] != "north wing" {
		t.Fatal("custom data must survive for custom form types")
	}
	if rec.Chemical != "" {
		t.Fatal("builtin fields must be stripped from custom submissions")
	}
}

func requiredForm() *models.CustomForm {
	return &models.CustomForm{
		Name: "Site Audit",
		Fields: []models.FormField{
			{ID: "field_area", Type: "text", Label: "Area", Required: true},
			{ID: "field_ok", Type: "checkbox", Label: "Approved", Required: true},
			{ID: "field_sig", Type: "signature", Label: "Supervisor", Required: true},
			{ID: "field_rows", Type: "table", Label: "Findings", Required: true,
				TableColumns: []string{"Location", "Issue"}},
		},
	}
}

func TestValidateSubmissionRequired(t *testing.T) {
	form := requiredForm()

	err := ValidateSubmission(form, map[string]any{
		"field_area": "Warehouse B",
		"tableRows": map[string]any{
			"field_rows": []any{map[string]any{"Location": "Dock", "Issue": "Gnaw marks"}},
		},
	})
	if err != nil {
		t.Fatalf("expected valid submission, got %v", err)
	}

	err = ValidateSubmission(form, map[string]any{
		"tableRows": map[string]any{
			"field_rows": []any{map[string]any{"Location": "Dock"}},
		},
	})
	if err == nil {
		t.Fatal("expected error for missing required text field")
	}

	err = ValidateSubmission(form, map[string]any{"field_area": "Warehouse B"})
	if err == nil {
		t.Fatal("expected error for required table with no rows")
	}
}

func TestValidateSubmissionSkipsOptional(t *testing.T) {
	form := &models.CustomForm{
		Name:   "Quick Note",
		Fields: []models.FormField{{ID: "field_n", Type: "textarea", Label: "Note"}},
	}
	if err := ValidateSubmission(form, map[string]any{}); err != nil {
		t.Fatalf("optional fields must not block, got %v", err)
	}
}
