// Package model holds the in-memory structural representation of a
// combinational circuit: ports, gates, and their resolved wiring
// (spec §3, §4.A), plus the gate evaluator (spec §4.C). A Circuit is
// built once by a loader (internal/loader) and is immutable afterward;
// all mutation lives on loader-local construction state.
package model

import "sort"

// Circuit is the structural model: an ordered input port list, an
// ordered output port list, and a topologically ordered gate list.
// Zero value is not usable; construct with New and populate via the
// loader package.
type Circuit struct {
	Name    string
	Inputs  []string // sorted by (len, lex), disjoint from Outputs
	Outputs []string // sorted by (len, lex), disjoint from Inputs
	Gates   []*Gate  // topologically ordered: producers before consumers

	// Dropped records componentType strings the loader could not
	// classify as a known gate family (spec §4.B, §7: "Unknown gate
	// type names are ignored ... but flagged").
	Dropped []DroppedGate
}

// DroppedGate names a component the loader recognized as gate-shaped
// (i.e. not a port, not a pin) but whose componentType did not match
// any entry in the recognized gate family.
type DroppedGate struct {
	Name    string
	RawType string
}

// New creates an empty, unpopulated Circuit. Loaders fill Inputs,
// Outputs, Gates, and Dropped directly; once returned from a loader a
// Circuit is treated as read-only by every other package.
func New(name string) *Circuit {
	return &Circuit{Name: name}
}

// SortPorts sorts a port name slice in place by (len, lex), the stable
// order spec §3 requires so benchmark rows align across runs.
func SortPorts(names []string) {
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) < len(names[j])
		}
		return names[i] < names[j]
	})
}

// GateByName returns the gate with the given name, or nil.
func (c *Circuit) GateByName(name string) *Gate {
	for _, g := range c.Gates {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// IsInput reports whether name is a primary input port.
func (c *Circuit) IsInput(name string) bool {
	for _, in := range c.Inputs {
		if in == name {
			return true
		}
	}
	return false
}

// IsOutput reports whether name is a primary output port.
func (c *Circuit) IsOutput(name string) bool {
	for _, out := range c.Outputs {
		if out == name {
			return true
		}
	}
	return false
}
