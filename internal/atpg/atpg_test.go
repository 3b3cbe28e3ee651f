package atpg_test

import (
	"testing"

	"github.com/fyerfyer/dxdiag/internal/atpg"
	"github.com/fyerfyer/dxdiag/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func and2() *model.Circuit {
	c := model.New("and2")
	c.Inputs = []string{"i1", "i2"}
	c.Outputs = []string{"o1"}
	c.Gates = []*model.Gate{
		{Name: "g1", Type: model.And, Inputs: []string{"i1", "i2"}, Output: "o1"},
	}
	return c
}

func chain() *model.Circuit {
	c := model.New("chain")
	c.Inputs = []string{"i1", "i2"}
	c.Outputs = []string{"o1"}
	c.Gates = []*model.Gate{
		{Name: "gAnd", Type: model.And, Inputs: []string{"i1", "i2"}, Output: "w"},
		{Name: "gNot", Type: model.Not, Inputs: []string{"w"}, Output: "o1"},
	}
	return c
}

func TestSynthesize_DirectOutputGate(t *testing.T) {
	c := and2()
	vector, ok := atpg.Synthesize(c, "g1", true, nil)
	require.True(t, ok)
	// stuck-at-1 on g1 only manifests when the good output is 0.
	assert.False(t, vector["i1"] && vector["i2"])
}

func TestSynthesize_PropagatesThroughDownstreamGate(t *testing.T) {
	c := chain()
	vector, ok := atpg.Synthesize(c, "gAnd", true, nil)
	require.True(t, ok)
	assert.False(t, vector["i1"] && vector["i2"])
}

func TestSynthesize_UnknownGateFails(t *testing.T) {
	c := and2()
	_, ok := atpg.Synthesize(c, "nope", true, nil)
	assert.False(t, ok)
}

func TestFromModel_PreservesTopologyAndPorts(t *testing.T) {
	m := chain()
	c := atpg.FromModel(m)
	require.Len(t, c.Inputs, 2)
	require.Len(t, c.Outputs, 1)
	require.Len(t, c.Gates, 2)
	assert.Equal(t, "gAnd", c.Gates[0].Name)
	assert.Equal(t, "gNot", c.Gates[1].Name)
}

func TestDFrontier_EmptyBeforeAnyFault(t *testing.T) {
	m := chain()
	c := atpg.FromModel(m)
	c.SetInput("i1", true)
	c.SetInput("i2", true)
	assert.Empty(t, c.DFrontier())
}
