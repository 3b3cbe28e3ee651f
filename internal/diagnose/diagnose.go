// Package diagnose implements the single-fault diagnoser (spec §4.F):
// consistency-based isolation that enumerates each gate x
// {stuck-at-0, stuck-at-1} and retains those candidates whose forced
// simulation reproduces the observed outputs, under a wall-clock
// budget.
package diagnose

import (
	"time"

	"github.com/fyerfyer/dxdiag/internal/consistency"
	"github.com/fyerfyer/dxdiag/internal/logx"
	"github.com/fyerfyer/dxdiag/internal/model"
	"github.com/fyerfyer/dxdiag/internal/simulate"
)

// budgetCheckInterval is how often, in gates processed, the
// enumeration loop samples the wall clock against the soft deadline
// (spec §4.F step 4, §5, §8 property 5).
const budgetCheckInterval = 100

// Result is the (detected, candidates) pair spec §4.F/§6 returns from
// one process() call. Candidates is a set of singleton gate-name
// diagnoses — the outer protocol's "sets of sets" shape collapses
// every element to one gate here because this diagnoser never
// proposes multi-fault hypotheses (spec §9 open question, preserved
// as-is, not extended).
type Result struct {
	Detected   bool
	Candidates map[string]bool
}

// SingleFault is a capability satisfying the small Diagnoser contract
// from spec §9 design notes (load_model/initialize/process), backed
// by one immutable model.Circuit.
type SingleFault struct {
	circuit *model.Circuit
	logger  *logx.Logger
}

// New constructs a SingleFault diagnoser bound to c. Loading or
// replacing the model is load_model's job (spec §6); this
// constructor is that operation's Go equivalent — idempotent in the
// sense that constructing a new value never touches shared state.
func New(c *model.Circuit, logger *logx.Logger) *SingleFault {
	if logger == nil {
		logger = logx.Default
	}
	return &SingleFault{circuit: c, logger: logger}
}

// Initialize is a one-time warm-up hook; a no-op for the combinational
// core (spec §6), kept only so SingleFault satisfies the same
// capability shape as any future diagnoser plug-in.
func (d *SingleFault) Initialize() {}

// Process runs spec §4.F's algorithm for one observation: nominal
// simulation, detection, and — if detected — full enumeration of
// gate x {true, false} stuck-at hypotheses against a soft wall-clock
// budget. Sequential; see ProcessConcurrent for the optional
// parallel fan-out spec §5 permits.
func (d *SingleFault) Process(inputs, sample map[string]bool, budget time.Duration) Result {
	start := time.Now()

	nominal := simulate.Run(d.circuit, inputs, nil)
	if consistency.Check(d.circuit, nominal, sample) {
		return Result{Detected: false, Candidates: map[string]bool{}}
	}

	d.logger.Diagnose("inconsistency detected, enumerating %d gates", len(d.circuit.Gates))

	candidates := make(map[string]bool)
	for i, g := range d.circuit.Gates {
		if i > 0 && i%budgetCheckInterval == 0 && budget > 0 && time.Since(start) > budget {
			d.logger.Warning("diagnose: budget exceeded after %d/%d gates", i, len(d.circuit.Gates))
			break
		}

		if tryFault(d.circuit, g.Name, true, inputs, sample) {
			candidates[g.Name] = true
			continue // spec §4.F step 3: skip the other polarity once one matches
		}
		if tryFault(d.circuit, g.Name, false, inputs, sample) {
			candidates[g.Name] = true
		}
	}

	return Result{Detected: true, Candidates: candidates}
}

func tryFault(c *model.Circuit, gate string, value bool, inputs, sample map[string]bool) bool {
	forced := simulate.Run(c, inputs, &simulate.Fault{Gate: gate, Value: value})
	return consistency.Check(c, forced, sample)
}
