package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

var jsonNull = []byte("null")

// JSONValue holds an opaque JSON document exactly as the server sent it.
// It is used for payloads whose schema the API does not guarantee.
type JSONValue json.RawMessage

// MarshalJSON returns the raw bytes, or null when empty
func (v JSONValue) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return jsonNull, nil
	}
	return v, nil
}

// UnmarshalJSON stores a copy of data
func (v *JSONValue) UnmarshalJSON(data []byte) error {
	if v == nil {
		return errors.New("models.JSONValue: UnmarshalJSON on nil pointer")
	}
	*v = append((*v)[0:0], data...)
	return nil
}

// IsNull reports whether the value is empty or the JSON literal null
func (v JSONValue) IsNull() bool {
	trimmed := bytes.TrimSpace(v)
	return len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull)
}

// Decode unmarshals the value into out
func (v JSONValue) Decode(out any) error {
	if len(v) == 0 {
		return json.Unmarshal(jsonNull, out)
	}
	return json.Unmarshal(v, out)
}

func (v JSONValue) String() string {
	if len(v) == 0 {
		return "null"
	}
	return string(v)
}
