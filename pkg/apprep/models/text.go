// Package models defines the appraisal dataset and report grid structures.
package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
)

var textType = reflect.TypeOf(Text{})

// Text is a scalar field that may arrive as a JSON string, number, boolean or null.
// Datasets exported from database rows are not consistent about quoting, so every
// textual field of the dataset is decoded through Text.
type Text struct {
	// Value is the textual form of the scalar. Numbers keep their JSON literal form.
	Value string
	// Set reports whether the key was present with a non-null value.
	Set bool
}

// NewText returns a present Text holding s.
func NewText(s string) Text {
	return Text{Value: s, Set: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = Text{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = NewText(s)
		return nil
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*t = NewText(string(data))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: textType}
	}
	*t = NewText(n.String())
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(t.Value)), nil
}

// Or returns the value, or def when the field was absent or null.
func (t Text) Or(def string) string {
	if !t.Set {
		return def
	}
	return t.Value
}

// String returns the value, or "" when the field was absent or null.
func (t Text) String() string {
	return t.Or("")
}
