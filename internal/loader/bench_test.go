package loader_test

import (
	"strings"
	"testing"

	"github.com/fyerfyer/dxdiag/internal/loader"
	"github.com/fyerfyer/dxdiag/internal/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const xorBench = `
# simple xor2 benchmark
INPUT(a)
INPUT(b)
OUTPUT(y)
y = XOR(a, b)
`

func TestLoadBench_XOR(t *testing.T) {
	c, err := loader.LoadBench(strings.NewReader(xorBench), "xorbench")
	require.NoError(t, err)

	require.Len(t, c.Inputs, 2)
	require.Len(t, c.Outputs, 1)
	require.Len(t, c.Gates, 1)
	assert.Equal(t, "xor", c.Gates[0].Type.String())

	inputs := map[string]bool{c.Inputs[0]: true, c.Inputs[1]: false}
	signals := simulate.Run(c, inputs, nil)
	assert.True(t, signals[c.Outputs[0]])

	inputs2 := map[string]bool{c.Inputs[0]: true, c.Inputs[1]: true}
	signals2 := simulate.Run(c, inputs2, nil)
	assert.False(t, signals2[c.Outputs[0]])
}

const chainBench = `
INPUT(a)
INPUT(b)
OUTPUT(z)
w = AND(a, b)
z = NOT(w)
`

func TestLoadBench_MultiGateChain(t *testing.T) {
	c, err := loader.LoadBench(strings.NewReader(chainBench), "chainbench")
	require.NoError(t, err)
	require.Len(t, c.Gates, 2)

	// topologically, the AND gate must precede the NOT gate.
	andIdx, notIdx := -1, -1
	for i, g := range c.Gates {
		switch g.Type.String() {
		case "and":
			andIdx = i
		case "not":
			notIdx = i
		}
	}
	require.NotEqual(t, -1, andIdx)
	require.NotEqual(t, -1, notIdx)
	assert.Less(t, andIdx, notIdx)
}

const alreadyPrefixedBench = `
INPUT(i_x)
OUTPUT(o_y)
o_y = BUF(i_x)
`

func TestLoadBench_AlreadyPrefixedNamesAreNotDoublePrefixed(t *testing.T) {
	c, err := loader.LoadBench(strings.NewReader(alreadyPrefixedBench), "buf")
	require.NoError(t, err)
	assert.Equal(t, []string{"i_x"}, c.Inputs)
	assert.Equal(t, []string{"o_y"}, c.Outputs)
}
