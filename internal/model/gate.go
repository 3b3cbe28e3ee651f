package model

import "strings"

// GateType is a tagged enumeration of the recognized combinational gate
// families. Arity is not part of the tag: it is implied by the number of
// resolved input pins a Gate carries, mirroring how the DX model names
// gates ("nand3", "and8", ...) without the evaluator needing to parse the
// digit out of the name.
type GateType int

const (
	// Buf passes its single input through unchanged.
	Buf GateType = iota
	// Not inverts its single input.
	Not
	// And is the conjunction of all inputs (arity >= 1).
	And
	// Nand is the negated conjunction of all inputs.
	Nand
	// Or is the disjunction of all inputs (arity >= 1).
	Or
	// Nor is the negated disjunction of all inputs.
	Nor
	// Xor is the exclusive-or of exactly two inputs.
	Xor
	// Unknown wraps a componentType the loader did not recognize. The gate
	// is still carried through so it can be reported, but it is dropped
	// before simulation (spec §4.B, §7).
	Unknown
)

// String returns the canonical family name, lowercase, arity-stripped.
func (t GateType) String() string {
	switch t {
	case Buf:
		return "buf"
	case Not:
		return "not"
	case And:
		return "and"
	case Nand:
		return "nand"
	case Or:
		return "or"
	case Nor:
		return "nor"
	case Xor:
		return "xor"
	default:
		return "unknown"
	}
}

// ParseGateType classifies a componentType string such as "nand3",
// "buffer", "inverter", or "xor2" into a GateType. The second return value
// is false when the type name is not a recognized gate family at all
// (i.e. not a gate component, such as "port").
func ParseGateType(componentType string) (GateType, bool) {
	name := strings.ToLower(strings.TrimSpace(componentType))
	switch {
	case name == "buf" || name == "buffer" || strings.HasPrefix(name, "buf"):
		return Buf, true
	case name == "not" || name == "inverter" || strings.HasPrefix(name, "not") || strings.HasPrefix(name, "inv"):
		return Not, true
	case strings.HasPrefix(name, "nand"):
		return Nand, true
	case strings.HasPrefix(name, "and"):
		return And, true
	case strings.HasPrefix(name, "nor"):
		return Nor, true
	case strings.HasPrefix(name, "or"):
		return Or, true
	case strings.HasPrefix(name, "xnor"):
		return Unknown, true // xnor is not in the recognized family (spec §3); flagged, not evaluated
	case strings.HasPrefix(name, "xor"):
		return Xor, true
	default:
		return Unknown, false
	}
}

// Evaluate computes a gate's output from its positional input values.
// Missing input values are never passed in here: the simulator is
// responsible for defaulting unwritten signals to false before calling
// Evaluate (spec §4.C, §7 "missing signal at simulate time").
func (t GateType) Evaluate(inputs []bool) bool {
	switch t {
	case Buf:
		if len(inputs) == 0 {
			return false
		}
		return inputs[0]
	case Not:
		if len(inputs) == 0 {
			return false
		}
		return !inputs[0]
	case And:
		for _, in := range inputs {
			if !in {
				return false
			}
		}
		return true
	case Nand:
		for _, in := range inputs {
			if !in {
				return true
			}
		}
		return false
	case Or:
		for _, in := range inputs {
			if in {
				return true
			}
		}
		return false
	case Nor:
		for _, in := range inputs {
			if in {
				return false
			}
		}
		return true
	case Xor:
		if len(inputs) != 2 {
			return false
		}
		return inputs[0] != inputs[1]
	default: // Unknown
		return false
	}
}

// Gate is the tuple (name, type, input signals, output signal) from
// spec §3. Inputs is a positional list of resolved signal names; Output
// names the single signal this gate drives.
type Gate struct {
	Name   string
	Type   GateType
	// RawType preserves the original componentType string (e.g. "nand3")
	// for diagnostics and for re-deriving arity when generating fixtures.
	RawType string
	Inputs  []string
	Output  string
}

// Arity returns the number of resolved input pins.
func (g *Gate) Arity() int {
	return len(g.Inputs)
}
