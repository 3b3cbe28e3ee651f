package atpg

import "github.com/fyerfyer/dxdiag/internal/model"

// evaluate computes a gate's D-calculus output from its input values,
// adapted from the teacher's per-type evaluateAND/evaluateOR/...
// family (pkg/circuit/gate.go) but generalized to arbitrary arity the
// way model.GateType.Evaluate already is, and reusing that evaluator
// directly for each of the good/faulty components.
func evaluate(t model.GateType, inputs []Value) Value {
	if resolved, ok := shortCircuit(t, inputs); ok {
		return resolved
	}

	good := make([]bool, len(inputs))
	faulty := make([]bool, len(inputs))
	for i, v := range inputs {
		if v == X {
			return X
		}
		good[i] = v.Good()
		faulty[i] = v.Faulty()
	}
	return merge(t.Evaluate(good), t.Evaluate(faulty))
}

// shortCircuit resolves AND/NAND/OR/NOR outputs that are already
// determined by a single controlling input, even while other inputs
// are still X — mirroring the teacher's evaluateAND/evaluateOR
// short-circuit behavior so an unassigned fan-in doesn't needlessly
// block propagation through a gate whose output is already pinned.
func shortCircuit(t model.GateType, inputs []Value) (Value, bool) {
	switch t {
	case model.And, model.Nand:
		for _, v := range inputs {
			if v == Zero {
				if t == model.And {
					return Zero, true
				}
				return One, true
			}
		}
	case model.Or, model.Nor:
		for _, v := range inputs {
			if v == One {
				if t == model.Or {
					return One, true
				}
				return Zero, true
			}
		}
	}
	return X, false
}
