package atpg

import (
	"github.com/fyerfyer/dxdiag/internal/logx"
	"github.com/fyerfyer/dxdiag/internal/model"
)

// maxSynthesisInputs bounds the exhaustive search, mirroring the
// teacher's iteration safety limit in fan.go ("maxIterations = 10000
// // Safety limit to prevent infinite loops"): beyond this many
// primary inputs, a full 2^n enumeration stops being worth the wait
// for a test-fixture tool, so Synthesize gives up instead of hanging.
const maxSynthesisInputs = 20

// Synthesize searches for a primary input vector that sensitizes
// gateName stuck-at-stuckAt to some primary output (spec §4.K). It is
// adapted from the teacher's decision-tree backtracking search
// (pkg/algorithm/decision.go, fan.go), restricted to primary-input
// decisions: because imply is a full forward sweep, there is nothing
// left to justify backward through reconvergent fanout the way the
// teacher's Backtrace/Sensitization machinery does, so the search
// degenerates to depth-first input-assignment backtracking.
func Synthesize(m *model.Circuit, gateName string, stuckAt bool, logger *logx.Logger) (map[string]bool, bool) {
	if logger == nil {
		logger = logx.Default
	}

	c := FromModel(m)
	target := c.GateByName(gateName)
	if target == nil {
		logger.Synth("no such gate %q", gateName)
		return nil, false
	}
	if len(c.Inputs) > maxSynthesisInputs {
		logger.Warning("synth: %d primary inputs exceeds search limit %d", len(c.Inputs), maxSynthesisInputs)
		return nil, false
	}

	logger.Synth("searching for a vector sensitizing %s stuck-at-%v", gateName, stuckAt)
	assignment := make(map[string]bool, len(c.Inputs))
	if search(c, target, stuckAt, c.Inputs, assignment, logger) {
		logger.Synth("found: %v", assignment)
		result := make(map[string]bool, len(assignment))
		for k, v := range assignment {
			result[k] = v
		}
		return result, true
	}
	logger.Synth("no vector sensitizes %s stuck-at-%v", gateName, stuckAt)
	return nil, false
}

// search assigns every remaining primary input, depth-first, and tests
// the resulting vector once all inputs are bound.
func search(c *Circuit, target *Gate, stuckAt bool, remaining []*Line, assignment map[string]bool, logger *logx.Logger) bool {
	if len(remaining) == 0 {
		return tryVector(c, target, stuckAt, assignment)
	}

	head, rest := remaining[0], remaining[1:]
	for _, v := range [...]bool{false, true} {
		assignment[head.Name] = v
		logger.Indent()
		ok := search(c, target, stuckAt, rest, assignment, logger)
		logger.Outdent()
		if ok {
			return true
		}
	}
	delete(assignment, head.Name)
	return false
}

// tryVector drives the circuit with a fully-assigned input vector,
// forces the target gate's output to the stuck-at value, propagates
// the resulting D/D' forward, and reports whether it reached a
// primary output.
func tryVector(c *Circuit, target *Gate, stuckAt bool, assignment map[string]bool) bool {
	c.Reset()
	for name, v := range assignment {
		c.SetInput(name, v)
	}
	c.imply(0)

	good := target.Output.Value == One
	faulty := stuckAt
	if good == faulty {
		return false // this vector doesn't even activate the fault
	}
	target.Output.Value = merge(good, faulty)
	c.imply(c.indexOf(target) + 1)

	return c.Detected()
}
