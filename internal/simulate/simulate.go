// Package simulate evaluates a loaded model.Circuit for one input
// vector, in both nominal and single-gate-faulted modes (spec §4.D).
package simulate

import "github.com/fyerfyer/dxdiag/internal/model"

// Fault names a single gate whose output is forced to Value,
// regardless of its computed evaluation, for one Run call.
type Fault struct {
	Gate  string
	Value bool
}

// Run evaluates every gate in c's stored topological order against
// inputs, returning the full signal map (inputs plus every gate
// output). When fault is non-nil, the named gate's output is forced
// to fault.Value instead of evaluated — every other gate downstream
// still reads that forced value naturally through the signal map
// (spec §4.D guarantees: exactly one write per gate, inputs never
// overwritten, a fault propagates only through subsequent topological
// reads).
//
// A missing gate input (not yet written — only possible if topological
// order were violated) is treated as false, per spec §4.C/§7.
func Run(c *model.Circuit, inputs map[string]bool, fault *Fault) map[string]bool {
	signals := make(map[string]bool, len(inputs)+len(c.Gates))
	for name, v := range inputs {
		signals[name] = v
	}

	for _, g := range c.Gates {
		if fault != nil && g.Name == fault.Gate {
			signals[g.Output] = fault.Value
			continue
		}

		in := make([]bool, len(g.Inputs))
		for i, sig := range g.Inputs {
			in[i] = signals[sig] // zero value false if unwritten
		}
		signals[g.Output] = g.Type.Evaluate(in)
	}

	return signals
}
