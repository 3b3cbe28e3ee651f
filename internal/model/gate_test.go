package model_test

import (
	"testing"

	"github.com/fyerfyer/dxdiag/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGateType(t *testing.T) {
	cases := []struct {
		raw  string
		want model.GateType
		ok   bool
	}{
		{"nand2", model.Nand, true},
		{"nand3", model.Nand, true},
		{"and8", model.And, true},
		{"and9", model.And, true},
		{"or4", model.Or, true},
		{"nor5", model.Nor, true},
		{"xor2", model.Xor, true},
		{"not1", model.Not, true},
		{"inverter", model.Not, true},
		{"buf1", model.Buf, true},
		{"buffer", model.Buf, true},
		{"port", model.Unknown, false},
		{"xnor2", model.Unknown, true}, // recognized as gate-shaped, but not in the family
		{"bogus", model.Unknown, false},
	}

	for _, tc := range cases {
		got, ok := model.ParseGateType(tc.raw)
		assert.Equalf(t, tc.want, got, "type for %q", tc.raw)
		assert.Equalf(t, tc.ok, ok, "ok for %q", tc.raw)
	}
}

func TestEvaluate_ANDFamily(t *testing.T) {
	require.True(t, model.And.Evaluate([]bool{true, true, true}))
	require.False(t, model.And.Evaluate([]bool{true, false, true}))
	require.True(t, model.And.Evaluate([]bool{})) // empty conjunction is vacuously true
	require.False(t, model.Nand.Evaluate([]bool{true, true, true}))
}

func TestEvaluate_Families(t *testing.T) {
	assert.True(t, model.Or.Evaluate([]bool{false, false, true}))
	assert.False(t, model.Or.Evaluate([]bool{false, false, false}))
	assert.True(t, model.Nor.Evaluate([]bool{false, false, false}))
	assert.False(t, model.Nor.Evaluate([]bool{false, true}))
	assert.True(t, model.Nand.Evaluate([]bool{true, false}))
	assert.False(t, model.Nand.Evaluate([]bool{true, true}))
	assert.True(t, model.Xor.Evaluate([]bool{true, false}))
	assert.False(t, model.Xor.Evaluate([]bool{true, true}))
	assert.False(t, model.Xor.Evaluate([]bool{true})) // wrong arity defaults false
	assert.True(t, model.Not.Evaluate([]bool{false}))
	assert.False(t, model.Buf.Evaluate([]bool{false}))
}

func TestArity(t *testing.T) {
	g := &model.Gate{Name: "g1", Type: model.And, Inputs: []string{"a", "b", "c"}, Output: "o"}
	assert.Equal(t, 3, g.Arity())
}
