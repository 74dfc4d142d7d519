package domain

import (
	"fmt"
	"strings"
)

type FieldKind string

const (
	FieldKindText   FieldKind = "text"
	FieldKindNumber FieldKind = "number"
	FieldKindSelect FieldKind = "select"
)

type Field struct {
	Key      string
	Kind     FieldKind
	Options  []string
	Required bool
}

type Page struct {
	Title  string
	Fields []Field
}

type Form struct {
	Pages  []Page
	Labels map[string]string
}

// FormValues holds what is currently typed into the form, keyed by field key.
type FormValues map[string]string

// SurveyResponse is the submission body: labels to values plus the injected identity.
type SurveyResponse map[string]any

// LastPage is the highest navigable page index.
func (f Form) LastPage() int {
	return len(f.Pages) - 1
}

func (f Form) HasPage(index int) bool {
	return index >= 0 && index < len(f.Pages)
}

// Label falls back to the key when the table has no entry.
func (f Form) Label(key string) string {
	if label, ok := f.Labels[key]; ok && label != "" {
		return label
	}
	return key
}

// FieldKeys lists every field key in page order.
func (f Form) FieldKeys() []string {
	keys := make([]string, 0, len(f.Labels))
	for _, page := range f.Pages {
		for _, field := range page.Fields {
			keys = append(keys, field.Key)
		}
	}
	return keys
}

// ValidatePage returns the first required field left blank on the page.
// Select fields are checked before the other inputs.
func (f Form) ValidatePage(index int, values FormValues) error {
	if !f.HasPage(index) {
		return fmt.Errorf("page %d: %w", index, ErrNoSuchPage)
	}

	page := f.Pages[index]
	for _, pass := range []func(Field) bool{
		func(field Field) bool { return field.Kind == FieldKindSelect },
		func(field Field) bool { return field.Kind != FieldKindSelect },
	} {
		for _, field := range page.Fields {
			if !field.Required || !pass(field) {
				continue
			}
			if strings.TrimSpace(values[field.Key]) == "" {
				return &ValidationError{Key: field.Key, Label: f.Label(field.Key)}
			}
		}
	}

	return nil
}

// BuildResponse collects every field on every page, labelled, plus the identity.
func (f Form) BuildResponse(values FormValues, identity Identity) SurveyResponse {
	response := make(SurveyResponse, len(f.Labels)+2)
	for _, key := range f.FieldKeys() {
		response[f.Label(key)] = values[key]
	}
	response["id"] = int64(identity.ID)
	response["Name"] = identity.Name

	return response
}
