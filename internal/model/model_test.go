package model_test

import (
	"testing"

	"github.com/fyerfyer/dxdiag/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSortPorts(t *testing.T) {
	names := []string{"i10", "i2", "i1", "i3"}
	model.SortPorts(names)
	assert.Equal(t, []string{"i1", "i2", "i3", "i10"}, names)
}

func TestCircuitLookups(t *testing.T) {
	c := model.New("demo")
	c.Inputs = []string{"i1", "i2"}
	c.Outputs = []string{"o1"}
	c.Gates = []*model.Gate{
		{Name: "g1", Type: model.And, Inputs: []string{"i1", "i2"}, Output: "o1"},
	}

	assert.True(t, c.IsInput("i1"))
	assert.False(t, c.IsInput("o1"))
	assert.True(t, c.IsOutput("o1"))
	assert.False(t, c.IsOutput("i1"))

	g := c.GateByName("g1")
	assert.NotNil(t, g)
	assert.Equal(t, "o1", g.Output)
	assert.Nil(t, c.GateByName("missing"))
}
