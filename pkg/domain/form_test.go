package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormData_Clone_IsDeep(t *testing.T) {
	f := FormData{"genres": []string{"Jazz"}, "name": "Ada"}
	c := f.Clone()

	c["genres"] = append(c.List("genres"), "Pop")
	c.List("genres")[0] = "Rock"
	c["name"] = "Grace"

	assert.Equal(t, []string{"Jazz"}, f.List("genres"))
	assert.Equal(t, "Ada", f.String("name"))
}

func TestFormData_UnmarshalJSON_Normalizes(t *testing.T) {
	var f FormData
	err := json.Unmarshal([]byte(`{"name":"Ada","age":42,"vegan":true,"genres":["Jazz","Pop"],"empty":[]}`), &f)
	require.NoError(t, err)

	assert.Equal(t, "Ada", f["name"])
	assert.Equal(t, float64(42), f["age"])
	assert.Equal(t, true, f["vegan"])
	assert.Equal(t, []string{"Jazz", "Pop"}, f["genres"])
	assert.Equal(t, []string{}, f["empty"])
}

func TestFormData_UnmarshalJSON_RejectsNested(t *testing.T) {
	var f FormData
	err := json.Unmarshal([]byte(`{"bad":{"x":1}}`), &f)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"bad":[1,2]}`), &f)
	assert.Error(t, err)
}

func TestFormData_IsEmpty(t *testing.T) {
	f := FormData{
		"blank":  "   ",
		"text":   "x",
		"off":    false,
		"zero":   float64(0),
		"list":   []string{},
		"filled": []string{"a"},
	}
	assert.True(t, f.IsEmpty("blank"))
	assert.False(t, f.IsEmpty("text"))
	assert.True(t, f.IsEmpty("off"))
	assert.True(t, f.IsEmpty("zero"))
	assert.True(t, f.IsEmpty("list"))
	assert.False(t, f.IsEmpty("filled"))
	assert.True(t, f.IsEmpty("missing"))
}

func TestKind_Zero(t *testing.T) {
	assert.Equal(t, "", KindString.Zero())
	assert.Equal(t, false, KindBool.Zero())
	assert.Equal(t, float64(0), KindNumber.Zero())
	assert.Equal(t, []string{}, KindList.Zero())
	assert.False(t, Kind("map").Valid())
}
