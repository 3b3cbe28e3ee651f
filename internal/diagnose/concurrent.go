package diagnose

import (
	"context"
	"sync"
	"time"

	"github.com/fyerfyer/dxdiag/internal/consistency"
	"github.com/fyerfyer/dxdiag/internal/simulate"
	"golang.org/x/sync/errgroup"
)

// ProcessConcurrent is the optional parallel fan-out spec §5 permits:
// "a compliant implementation MAY parallelize the fault-enumeration
// loop across gates because each forced simulation is independent".
// Each worker builds its own call-local signal map via simulate.Run —
// the structural model is read-only and shared, nothing else is, so
// no additional synchronization is needed beyond collecting results.
//
// The soft deadline is still honored: once it trips, in-flight workers
// finish but no further gates are dispatched, matching the sequential
// path's "abort and return partial candidates" semantics (spec §4.F
// step 4) as closely as a concurrent fan-out can.
func (d *SingleFault) ProcessConcurrent(inputs, sample map[string]bool, budget time.Duration, workers int) Result {
	start := time.Now()

	nominal := simulate.Run(d.circuit, inputs, nil)
	if consistency.Check(d.circuit, nominal, sample) {
		return Result{Detected: false, Candidates: map[string]bool{}}
	}

	if workers <= 0 {
		workers = 4
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	candidates := make(map[string]bool)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for idx, gate := range d.circuit.Gates {
		idx, gate := idx, gate
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if budget > 0 && idx > 0 && idx%budgetCheckInterval == 0 && time.Since(start) > budget {
				cancel()
				return nil
			}

			if tryFault(d.circuit, gate.Name, true, inputs, sample) {
				mu.Lock()
				candidates[gate.Name] = true
				mu.Unlock()
				return nil
			}
			if tryFault(d.circuit, gate.Name, false, inputs, sample) {
				mu.Lock()
				candidates[gate.Name] = true
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return Result{Detected: true, Candidates: candidates}
}
