package dashboard

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hopenndrive/admin/core"
)

type FormField struct {
	Key      string
	Label    string
	Required bool
	// Multiline is a display hint for long text fields.
	Multiline bool
}

type EditorMode int

const (
	ModeCreate EditorMode = iota
	ModeEdit
)

// Editor is the record editor's form state. It is closed by default and holds
// no state while closed; opening seeds a baseline, any way of leaving it
// (cancel, dismiss, successful submit) clears everything.
type Editor struct {
	open     bool
	mode     EditorMode
	recordID string
	fields   []FormField
	values   map[string]string
}

// OpenCreate opens the editor on an all-empty baseline.
func (e *Editor) OpenCreate(fields []FormField) {
	e.reset()
	e.open = true
	e.mode = ModeCreate
	e.fields = fields
	for _, f := range fields {
		e.values[f.Key] = ""
	}
}

// OpenEdit opens the editor pre-filled from the target record's values.
// Unset optional fields arrive as empty strings.
func (e *Editor) OpenEdit(fields []FormField, recordID string, values map[string]string) {
	e.OpenCreate(fields)
	e.mode = ModeEdit
	e.recordID = recordID
	for _, f := range fields {
		e.values[f.Key] = values[f.Key]
	}
}

func (e *Editor) IsOpen() bool      { return e.open }
func (e *Editor) Mode() EditorMode  { return e.mode }
func (e *Editor) RecordID() string  { return e.recordID }
func (e *Editor) Value(key string) string { return e.values[key] }

func (e *Editor) SetValue(key, value string) {
	if !e.open {
		return
	}
	if _, ok := e.values[key]; ok {
		e.values[key] = value
	}
}

// Values returns a copy of the current field values.
func (e *Editor) Values() map[string]string {
	vals := make(map[string]string, len(e.values))
	for k, v := range e.values {
		vals[k] = v
	}
	return vals
}

// Validate blocks submission while any required field is empty after trimming,
// naming every missing field.
func (e *Editor) Validate() error {
	var flds []core.FieldError
	for _, f := range e.fields {
		if f.Required && core.CleanString(e.values[f.Key]) == "" {
			flds = append(flds, core.FieldError{
				Field: f.Key,
				Error: fmt.Sprintf("%s est requis", f.Label),
			})
		}
	}
	if flds != nil {
		return core.NewValidationError(errors.New("champs requis manquants"), flds...)
	}
	return nil
}

// Cancel closes the editor and clears its transient state. Cancelling has no
// other side effects; the dismiss control and a click outside behave the same.
func (e *Editor) Cancel() {
	e.reset()
}

func (e *Editor) reset() {
	*e = Editor{values: make(map[string]string)}
}
