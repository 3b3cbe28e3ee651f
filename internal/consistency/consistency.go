// Package consistency compares a simulated signal map against an
// observed sample (spec §4.E).
package consistency

import "github.com/fyerfyer/dxdiag/internal/model"

// Check reports whether simulated is consistent with sample: for
// every output port present in both maps, the values must match.
// Output ports absent from sample are ignored (partial observability
// is allowed); no input comparison is ever performed.
func Check(c *model.Circuit, simulated, sample map[string]bool) bool {
	for _, out := range c.Outputs {
		observed, present := sample[out]
		if !present {
			continue
		}
		if simulated[out] != observed {
			return false
		}
	}
	return true
}
