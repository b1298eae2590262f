// server/internal/forms/schema.go
package forms

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"a2z-ipm-api-server/internal/models"
)

// BuiltinForms maps the fixed form type keys to their display names. Any
// formType not listed here refers to an admin-designed custom form.
var BuiltinForms = map[string]string{
	"attendance":  "Attendance",
	"insecticide": "Insecticide Log",
	"gluebox":     "Glue Box",
	"efk":         "EFK Monitoring",
	"lizard":      "Lizard Trapping",
	"cat":         "Cat Trapping",
	"snake":       "Snake Box",
	"checklist":   "IPM Checklist",
	"baitstation": "Bait Station",
}

// ChecklistItems are the fixed activity lines of the IPM checklist form.
var ChecklistItems = []string{
	"Spray Treatment",
	"EFK Inspection",
	"Glue Box Check",
	"Bait Station Check",
	"Chemical Inventory",
	"Snake Box Check",
	"Documentation",
}

// FieldTypes are the field kinds a custom form may contain.
var FieldTypes = []string{
	"text", "number", "textarea", "select", "checkbox",
	"date", "time", "signature", "table",
}

func IsBuiltin(formType string) bool {
	_, ok := BuiltinForms[formType]
	return ok
}

func IsValidFieldType(t string) bool {
	for _, ft := range FieldTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// NewField returns a freshly seeded field of the given type. Select fields
// start with two options and table fields with two columns so the designer
// never renders an empty control.
func NewField(fieldType string) models.FormField {
	f := models.FormField{
		ID:       "field_" + uuid.NewString(),
		Type:     fieldType,
		Label:    fmt.Sprintf("New %s field", fieldType),
		Required: false,
	}
	switch fieldType {
	case "select":
		f.Options = []string{"Option 1", "Option 2"}
	case "table":
		f.TableColumns = []string{"Column 1", "Column 2"}
	}
	return f
}

// MoveField swaps the field at index with its neighbour in the given
// direction (-1 up, +1 down). Moves past either end are no-ops.
func MoveField(fields []models.FormField, index, direction int) {
	target := index + direction
	if index < 0 || index >= len(fields) || target < 0 || target >= len(fields) {
		return
	}
	fields[index], fields[target] = fields[target], fields[index]
}

// RemoveField deletes the field at index, preserving the order of the rest.
func RemoveField(fields []models.FormField, index int) []models.FormField {
	if index < 0 || index >= len(fields) {
		return fields
	}
	return append(fields[:index], fields[index+1:]...)
}

// Normalize validates a custom form before it is saved and fills in anything
// the designer left out: missing or duplicate field IDs get generated, select
// and table seeds are applied when empty.
func Normalize(form *models.CustomForm) error {
	if form.Name == "" {
		return errors.New("form name is required")
	}
	if form.Icon == "" {
		form.Icon = "file-alt"
	}
	if form.Fields == nil {
		form.Fields = []models.FormField{}
	}
	seen := make(map[string]bool, len(form.Fields))
	for i := range form.Fields {
		f := &form.Fields[i]
		if !IsValidFieldType(f.Type) {
			return fmt.Errorf("unknown field type %q", f.Type)
		}
		// ids key submitted values, so a repeated id gets a fresh one
		if f.ID == "" || seen[f.ID] {
			f.ID = "field_" + uuid.NewString()
		}
		seen[f.ID] = true
		if f.Label == "" {
			f.Label = fmt.Sprintf("New %s field", f.Type)
		}
		if f.Type == "select" && len(f.Options) == 0 {
			f.Options = []string{"Option 1", "Option 2"}
		}
		if f.Type == "table" && len(f.TableColumns) == 0 {
			f.TableColumns = []string{"Column 1", "Column 2"}
		}
		if f.Type != "select" {
			f.Options = nil
		}
		if f.Type != "table" {
			f.TableColumns = nil
		}
	}
	return nil
}
