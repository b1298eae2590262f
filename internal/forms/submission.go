// server/internal/forms/submission.go
package forms

import (
	"fmt"

	"a2z-ipm-api-server/internal/models"
)

var checklistStatuses = map[string]bool{"done": true, "pending": true, "na": true}
var entryStatuses = map[string]bool{"ok": true, "damaged": true, "replaced": true}

var checklistItems = func() map[string]bool {
	m := make(map[string]bool, len(ChecklistItems))
	for _, item := range ChecklistItems {
		m[item] = true
	}
	return m
}()

// Sanitize trims a submitted record down to the fields its form type owns,
// renumbers table rows and seeds an empty checklist with the standard items.
// A record declaring itself an insecticide log cannot smuggle in bait station
// data, and vice versa.
func Sanitize(rec *models.Record) error {
	keepAttendance := false
	keepInsecticide := false
	keepChecklist := false
	keepBaitStation := false
	keepEntries := false
	keepCustom := false

	switch {
	case rec.FormType == "attendance":
		keepAttendance = true
	case rec.FormType == "insecticide":
		keepInsecticide = true
	case rec.FormType == "checklist":
		keepChecklist = true
	case rec.FormType == "baitstation":
		keepBaitStation = true
		keepEntries = true
	case IsBuiltin(rec.FormType):
		keepEntries = true
	default:
		keepCustom = true
	}

	if !keepAttendance {
		rec.Location = nil
		rec.Work = ""
	}
	if !keepInsecticide {
		rec.Chemical, rec.Qty, rec.Water = "", "", ""
		rec.BatchNumber, rec.RemainingQty, rec.Areas = "", "", ""
	}
	if !keepAttendance && !keepChecklist {
		rec.TimeIn, rec.TimeOut = "", ""
	}
	if !keepChecklist {
		rec.Activities = nil
	}
	if !keepBaitStation {
		rec.BaitBrand, rec.BaitUsed = "", ""
		rec.TotalStations, rec.ActiveStations = 0, 0
	}
	if !keepEntries {
		rec.Entries = nil
	}
	if !keepCustom {
		rec.CustomData = nil
	}

	if keepChecklist {
		if len(rec.Activities) == 0 {
			rec.Activities = make([]models.ChecklistActivity, 0, len(ChecklistItems))
			for _, item := range ChecklistItems {
				rec.Activities = append(rec.Activities, models.ChecklistActivity{Item: item, Status: "pending"})
			}
		}
		for i := range rec.Activities {
			if !checklistItems[rec.Activities[i].Item] {
				return fmt.Errorf("unknown checklist item %q", rec.Activities[i].Item)
			}
			if !checklistStatuses[rec.Activities[i].Status] {
				return fmt.Errorf("invalid activity status %q", rec.Activities[i].Status)
			}
		}
	}
	for i := range rec.Entries {
		rec.Entries[i].Sr = i + 1
		if keepBaitStation {
			continue
		}
		if rec.Entries[i].Status != "" && !entryStatuses[rec.Entries[i].Status] {
			return fmt.Errorf("invalid entry status %q", rec.Entries[i].Status)
		}
	}
	return nil
}

// ValidateSubmission enforces a custom form's required fields against the
// submitted values. Checkbox and signature fields are never blocking; a
// required table needs at least one row.
func ValidateSubmission(form *models.CustomForm, data map[string]any) error {
	tableRows, _ := data["tableRows"].(map[string]any)
	for _, f := range form.Fields {
		if !f.Required || f.Type == "checkbox" || f.Type == "signature" {
			continue
		}
		if f.Type == "table" {
			rows, _ := tableRows[f.ID].([]any)
			if len(rows) == 0 {
				return fmt.Errorf("field %q requires at least one row", f.Label)
			}
			continue
		}
		val, ok := data[f.ID]
		if !ok || val == nil || val == "" {
			return fmt.Errorf("field %q is required", f.Label)
		}
	}
	return nil
}
