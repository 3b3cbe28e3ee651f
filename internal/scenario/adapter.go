// Package scenario decodes and encodes the line-oriented scenario
// stream format from spec §6, and implements the Scenario Input
// Adapter (spec §4.G).
package scenario

import "github.com/fyerfyer/dxdiag/internal/model"

// Observation is one decoded "sensors" record: a timestamp and a flat
// map of signal name -> boolean value, mixing input and output ports
// (and, optionally, extra sensor names the diagnoser ignores).
type Observation struct {
	Timestamp int64
	Values    map[string]bool
}

// Adapter projects an Observation down to the subset the simulator
// needs (input ports) while retaining the full map for the
// consistency checker (spec §4.G).
type Adapter struct {
	circuit *model.Circuit
}

// NewAdapter binds an Adapter to the circuit whose input ports it
// should project onto.
func NewAdapter(c *model.Circuit) *Adapter {
	return &Adapter{circuit: c}
}

// InputValues extracts the input-port subset of obs, suitable for
// driving the simulator.
func (a *Adapter) InputValues(obs Observation) map[string]bool {
	inputs := make(map[string]bool, len(a.circuit.Inputs))
	for _, name := range a.circuit.Inputs {
		if v, ok := obs.Values[name]; ok {
			inputs[name] = v
		}
	}
	return inputs
}

// Sample returns the full observed map, used by the consistency
// checker against simulated outputs.
func (a *Adapter) Sample(obs Observation) map[string]bool {
	return obs.Values
}
