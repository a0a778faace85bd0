package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// HTTPValidationError is the body of a 422 response
type HTTPValidationError struct {
	Detail Optional[[]ValidationError] `json:"detail,omitzero"`
}

// Messages flattens the details into "loc: msg" lines
func (e HTTPValidationError) Messages() []string {
	details, _ := e.Detail.Get()
	messages := make([]string, 0, len(details))
	for _, d := range details {
		messages = append(messages, d.String())
	}
	return messages
}

// ValidationError describes one rejected field
type ValidationError struct {
	Loc   []LocationItem      `json:"loc"`
	Msg   string              `json:"msg"`
	Type  string              `json:"type"`
	Input Optional[JSONValue] `json:"input,omitzero"`
}

func (v ValidationError) String() string {
	parts := make([]string, 0, len(v.Loc))
	for _, l := range v.Loc {
		parts = append(parts, l.String())
	}
	if len(parts) == 0 {
		return v.Msg
	}
	return fmt.Sprintf("%s: %s", strings.Join(parts, "."), v.Msg)
}

// LocationItem is one path segment of a validation error, a field name or an index
type LocationItem struct {
	Field   string
	Index   int
	IsIndex bool
}

func (l LocationItem) String() string {
	if l.IsIndex {
		return strconv.Itoa(l.Index)
	}
	return l.Field
}

func (l LocationItem) MarshalJSON() ([]byte, error) {
	if l.IsIndex {
		return json.Marshal(l.Index)
	}
	return json.Marshal(l.Field)
}

func (l *LocationItem) UnmarshalJSON(data []byte) error {
	var field string
	if err := json.Unmarshal(data, &field); err == nil {
		*l = LocationItem{Field: field}
		return nil
	}
	var index int
	if err := json.Unmarshal(data, &index); err != nil {
		return fmt.Errorf("location item must be a string or an integer: %s", data)
	}
	*l = LocationItem{Index: index, IsIndex: true}
	return nil
}
