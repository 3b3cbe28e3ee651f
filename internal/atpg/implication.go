package atpg

// imply runs one forward pass over every gate from startIdx onward, in
// topological order, recomputing each gate's output from its current
// input values. Unlike the teacher's bidirectional Implication engine
// (pkg/algorithm/implication.go), this pass never reasons backward from
// an output toward its inputs: the decision loop in search.go fully
// assigns every primary input before the first call, so a single
// forward sweep is always enough to determine every signal.
func (c *Circuit) imply(startIdx int) {
	for _, g := range c.Gates[startIdx:] {
		in := make([]Value, len(g.Inputs))
		for i, l := range g.Inputs {
			in[i] = l.Value
		}
		g.Output.Value = evaluate(g.Type, in)
	}
}

// DFrontier returns the gates whose output is still undetermined but
// carry at least one faulty input — the set of gates through which a
// propagated D or D' has not yet been pushed forward (spec §4.K).
// Exposed for fixture diagnostics; the synthesis search itself only
// needs Detected.
func (c *Circuit) DFrontier() []*Gate {
	var front []*Gate
	for _, g := range c.Gates {
		if g.Output.Value != X {
			continue
		}
		for _, in := range g.Inputs {
			if in.Value.IsFaulty() {
				front = append(front, g)
				break
			}
		}
	}
	return front
}

// Detected reports whether the fault is currently observed at some
// primary output.
func (c *Circuit) Detected() bool {
	for _, o := range c.Outputs {
		if o.Value.IsFaulty() {
			return true
		}
	}
	return false
}
