package jsonpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefit-engine/internal/model"
)

func TestProfilesUnchanged(t *testing.T) {
	p := model.NewProfile()
	ops, err := Profiles(p, p.Clone())
	require.NoError(t, err)
	assert.NotNil(t, ops)
	assert.Empty(t, ops)
}

func TestProfilesScalarReplace(t *testing.T) {
	before := model.NewProfile()
	after := before.Clone()
	after.Personal.FirstName = "Maria"

	ops, err := Profiles(before, after)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "replace", ops[0].Op)
	assert.Equal(t, "/personal/first_name", ops[0].Path)
	assert.JSONEq(t, `"Maria"`, string(ops[0].Value))
}

func TestProfilesPartnerToggle(t *testing.T) {
	before := model.NewProfile()
	after := before.Clone()
	after.SetHasPartner(true)

	ops, err := Profiles(before, after)
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, model.PatchOp{Op: "replace", Path: "/family/has_partner", Value: []byte("true")}, ops[0])
	assert.Equal(t, "add", ops[1].Op)
	assert.Equal(t, "/family/partner", ops[1].Path)
	assert.JSONEq(t, `{"first_name":"","last_name":"","birth_date":"","gender":"","nationality":"deutsch"}`, string(ops[1].Value))
	assert.Equal(t, "/housing/resident_count", ops[2].Path)

	back, err := Profiles(after, before)
	require.NoError(t, err)
	assert.Equal(t, "/family/partner", back[0].Path)
	assert.Equal(t, "remove", back[0].Op)
}

func TestProfilesChildAppended(t *testing.T) {
	before := model.NewProfile()
	after := before.Clone()
	after.AddChild(model.Child{FirstName: "Emma"})

	ops, err := Profiles(before, after)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, "add", ops[0].Op)
	assert.Equal(t, "/family/children/0", ops[0].Path)
	assert.Equal(t, "/housing/resident_count", ops[1].Path)
}

func TestDiffArraysRemoveFromTheEnd(t *testing.T) {
	a := []interface{}{"a", "b", "c"}
	b := []interface{}{"a"}

	ops := Diff(a, b, "")
	require.Len(t, ops, 2)
	assert.Equal(t, "/2", ops[0].Path)
	assert.Equal(t, "/1", ops[1].Path)
}

func TestDiffTypeChange(t *testing.T) {
	ops := Diff(map[string]interface{}{"x": 1.0}, []interface{}{1.0}, "/v")
	require.Len(t, ops, 1)
	assert.Equal(t, "replace", ops[0].Op)
	assert.Equal(t, "/v", ops[0].Path)
}

func TestEscapeKey(t *testing.T) {
	ops := Diff(map[string]interface{}{}, map[string]interface{}{"a/b~c": "x"}, "")
	require.Len(t, ops, 1)
	assert.Equal(t, "/a~1b~0c", ops[0].Path)
}
