package simulate_test

import (
	"testing"

	"github.com/fyerfyer/dxdiag/internal/model"
	"github.com/fyerfyer/dxdiag/internal/simulate"
	"github.com/stretchr/testify/assert"
)

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

func TestRun_Nominal(t *testing.T) {
	c := chain()
	signals := simulate.Run(c, map[string]bool{"i1": true, "i2": true}, nil)
	assert.True(t, signals["w"])
	assert.False(t, signals["o1"])
}

func TestRun_ForcedFaultPropagates(t *testing.T) {
	c := chain()
	signals := simulate.Run(c, map[string]bool{"i1": true, "i2": true}, &simulate.Fault{Gate: "gAnd", Value: false})
	assert.False(t, signals["w"])
	assert.True(t, signals["o1"])
}

func TestRun_FaultOnTerminalGate(t *testing.T) {
	c := chain()
	signals := simulate.Run(c, map[string]bool{"i1": true, "i2": true}, &simulate.Fault{Gate: "gNot", Value: true})
	assert.True(t, signals["w"]) // upstream gate still evaluates normally
	assert.True(t, signals["o1"])
}

func TestRun_MissingInputDefaultsFalse(t *testing.T) {
	c := chain()
	signals := simulate.Run(c, map[string]bool{"i1": true}, nil) // i2 omitted
	assert.False(t, signals["w"])
	assert.True(t, signals["o1"])
}
