package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Name  Optional[string]   `json:"name,omitzero"`
	Tags  Optional[[]string] `json:"tags,omitzero"`
	Count Optional[int]      `json:"count,omitzero"`
}

func TestOptionalEncodesThreeStates(t *testing.T) {
	out, err := json.Marshal(patch{
		Name: Some("studio"),
		Tags: Null[[]string](),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"studio","tags":null}`, string(out))

	out, err = json.Marshal(patch{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))
}

func TestOptionalDecodesThreeStates(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","tags":null}`), &p))

	name, ok := p.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "a", name)

	assert.True(t, p.Tags.IsPresent())
	assert.True(t, p.Tags.IsNull())
	_, ok = p.Tags.Get()
	assert.False(t, ok)

	assert.False(t, p.Count.IsPresent())
	assert.False(t, p.Count.IsNull())
	assert.Equal(t, 7, p.Count.OrElse(7))
}

func TestOptionalRoundTrip(t *testing.T) {
	in := `{"count":0,"tags":["x"]}`

	var p patch
	require.NoError(t, json.Unmarshal([]byte(in), &p))
	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestJSONValuePreservesDocument(t *testing.T) {
	var v JSONValue
	require.NoError(t, json.Unmarshal([]byte(`{"b":1, "a":[true,null]}`), &v))
	assert.Equal(t, `{"b":1, "a":[true,null]}`, v.String())
	assert.False(t, v.IsNull())

	var decoded map[string]any
	require.NoError(t, v.Decode(&decoded))
	assert.Equal(t, map[string]any{"b": float64(1), "a": []any{true, nil}}, decoded)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":1,"a":[true,null]}`, string(out))
}

func TestJSONValueNull(t *testing.T) {
	var empty JSONValue
	assert.True(t, empty.IsNull())
	assert.Equal(t, "null", empty.String())

	out, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	var v JSONValue
	require.NoError(t, json.Unmarshal([]byte(`null`), &v))
	assert.True(t, v.IsNull())
}

func TestUpdateDefaultSharingPreferencesRequestNilGroups(t *testing.T) {
	out, err := json.Marshal(UpdateDefaultSharingPreferencesRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"default_sharing_groups":[]}`, string(out))

	out, err = json.Marshal(UpdateDefaultSharingPreferencesRequest{DefaultSharingGroups: []string{"g1"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"default_sharing_groups":["g1"]}`, string(out))
}

func TestShareOptionToleratesUnknownFields(t *testing.T) {
	var opts []ShareOption
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"n","id":"i","type":"group","avatar":"x"},{"id":"j"}]`), &opts))
	assert.Equal(t, []ShareOption{
		{Name: "n", ID: "i", Type: ShareOptionGroup},
		{ID: "j"},
	}, opts)
}

func TestHTTPValidationError(t *testing.T) {
	body := `{"detail":[
		{"loc":["body","default_sharing_groups",1],"msg":"str type expected","type":"type_error.str","input":5},
		{"loc":[],"msg":"bad request","type":"value_error"}
	]}`

	var e HTTPValidationError
	require.NoError(t, json.Unmarshal([]byte(body), &e))

	assert.Equal(t, []string{
		"body.default_sharing_groups.1: str type expected",
		"bad request",
	}, e.Messages())

	details, ok := e.Detail.Get()
	require.True(t, ok)
	input, ok := details[0].Input.Get()
	require.True(t, ok)
	assert.Equal(t, "5", input.String())
	assert.False(t, details[1].Input.IsPresent())

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(out))
}

func TestHTTPValidationErrorNullDetail(t *testing.T) {
	var e HTTPValidationError
	require.NoError(t, json.Unmarshal([]byte(`{"detail":null}`), &e))
	assert.True(t, e.Detail.IsNull())
	assert.Empty(t, e.Messages())

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"detail":null}`, string(out))
}

func TestLocationItemRejectsObjects(t *testing.T) {
	var l LocationItem
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &l))
}
