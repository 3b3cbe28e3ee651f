package loader

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fyerfyer/dxdiag/internal/model"
)

// component is one (name, componentType) record, kept in document
// order: spec §4.B's tie-break ("ties follow initial enumeration
// order") is only meaningful if that order survives parsing.
type component struct {
	Name string
	Type string
}

// baseName strips directory and extension, used to name a Circuit
// after the file it was loaded from.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// buildCircuit implements spec §4.B steps 1–4 against an ordered
// component list and a connection adjacency map (endpoint label ->
// ordered list of connected endpoint labels), the common core shared
// by every concrete format loader (XML, BENCH).
func buildCircuit(name string, components []component, adjacency map[string][]string) (*model.Circuit, error) {
	c := model.New(name)

	// Step 1 & 2: classify components and assign port roles. A name
	// containing "." is a gate pin (internal intermediate), never a
	// top-level component in its own right.
	for _, comp := range components {
		if strings.Contains(comp.Name, ".") {
			continue
		}
		if comp.Type == "port" {
			switch {
			case strings.HasPrefix(comp.Name, "i"):
				c.Inputs = append(c.Inputs, comp.Name)
			case strings.HasPrefix(comp.Name, "o"):
				c.Outputs = append(c.Outputs, comp.Name)
			}
		}
	}
	model.SortPorts(c.Inputs)
	model.SortPorts(c.Outputs)

	// Step 3: wire resolution, one gate at a time, in the order gates
	// were enumerated in the source file.
	driverOf := make(map[string]string) // signal -> driving gate name
	gates := make([]*model.Gate, 0, len(components))

	for _, comp := range components {
		if strings.Contains(comp.Name, ".") || comp.Type == "port" {
			continue
		}
		gname, rawType := comp.Name, comp.Type

		gtype, isGateShaped := model.ParseGateType(rawType)
		if !isGateShaped {
			// Not a recognized gate family at all and not port-typed:
			// neither a gate nor a port. Treat as a stray component and
			// skip silently — it carries no wiring obligations.
			continue
		}

		inputs, output, err := resolvePins(gname, adjacency)
		if err != nil {
			return nil, err
		}

		if gtype == model.Unknown {
			c.Dropped = append(c.Dropped, model.DroppedGate{Name: gname, RawType: rawType})
			continue
		}

		if prev, exists := driverOf[output]; exists {
			return nil, fmt.Errorf("%w: signal %q driven by both %q and %q", ErrMultiplyDriven, output, prev, gname)
		}
		driverOf[output] = gname

		gates = append(gates, &model.Gate{
			Name:    gname,
			Type:    gtype,
			RawType: rawType,
			Inputs:  inputs,
			Output:  output,
		})
	}

	ordered, err := topoSort(gates, driverOf)
	if err != nil {
		return nil, err
	}
	c.Gates = ordered

	return c, nil
}

// resolvePins finds, for a gate named gname, the signal bound to each
// input pin g.i1..g.iN and the output pin g.o. Each pin resolves to
// the first neighbor in its adjacency list that is not the gate
// itself (spec §4.B step 3, §9 "pin resolution ambiguity": the source
// connection-list order decides ties). The pin-scan for inputs stops
// at the first missing "g.iK" key — that is the declared arity.
//
// An output pin drives its first neighbor that is neither the gate
// itself nor another gate pin (a port or a named wire); when it is
// wired only to other gates' pins, the pin label "g.o" names the
// signal. An input pin wired straight to another gate's output pin
// "h.o" binds to whatever signal h's output drives, so producer and
// consumer always agree on one signal name.
func resolvePins(gname string, adjacency map[string][]string) (inputs []string, output string, err error) {
	signalOf := func(outPin, self string) string {
		for _, n := range adjacency[outPin] {
			if n != self && !strings.Contains(n, ".") {
				return n
			}
		}
		return outPin
	}

	for i := 1; ; i++ {
		pin := gname + ".i" + strconv.Itoa(i)
		neighbors, ok := adjacency[pin]
		if !ok {
			break
		}
		sig, found := firstNonSelf(neighbors, gname)
		if !found {
			return nil, "", fmt.Errorf("%w: %s has no resolvable signal", ErrUnresolvedPin, pin)
		}
		if strings.HasSuffix(sig, ".o") {
			sig = signalOf(sig, strings.TrimSuffix(sig, ".o"))
		}
		inputs = append(inputs, sig)
	}
	if len(inputs) == 0 {
		return nil, "", fmt.Errorf("%w: %s declares no input pins", ErrUnresolvedPin, gname)
	}

	outPin := gname + ".o"
	neighbors, ok := adjacency[outPin]
	if !ok {
		return nil, "", fmt.Errorf("%w: %s has no output pin", ErrUnresolvedPin, outPin)
	}
	if _, found := firstNonSelf(neighbors, gname); !found {
		return nil, "", fmt.Errorf("%w: %s has no resolvable signal", ErrUnresolvedPin, outPin)
	}
	output = signalOf(outPin, gname)

	return inputs, output, nil
}

// firstNonSelf returns the first entry in neighbors that does not
// equal self (a pin is, topologically, a bridge back to the gate
// itself in some encodings, so that candidate must be skipped).
func firstNonSelf(neighbors []string, self string) (string, bool) {
	for _, n := range neighbors {
		if n != self {
			return n, true
		}
	}
	return "", false
}

// topoSort runs Kahn's algorithm over the gate list, FIFO, using a
// signal-to-producer index for in-edges (spec §4.B step 4, §9 "arena +
// indices"). Ties are broken by gates' position in the input slice
// (their enumeration order), matching spec's stability requirement.
func topoSort(gates []*model.Gate, driverOf map[string]string) ([]*model.Gate, error) {
	indexOf := make(map[string]int, len(gates))
	for i, g := range gates {
		indexOf[g.Name] = i
	}

	inDegree := make([]int, len(gates))
	dependents := make([][]int, len(gates)) // producer index -> consumer indices

	for i, g := range gates {
		for _, in := range g.Inputs {
			producerName, hasProducer := driverOf[in]
			if !hasProducer {
				continue // primary input or otherwise unproduced signal
			}
			pi, ok := indexOf[producerName]
			if !ok {
				continue
			}
			inDegree[i]++
			dependents[pi] = append(dependents[pi], i)
		}
	}

	queue := make([]int, 0, len(gates))
	for i := range gates {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	ordered := make([]*model.Gate, 0, len(gates))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		ordered = append(ordered, gates[i])

		for _, dep := range dependents[i] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(ordered) != len(gates) {
		var stuck []string
		for i, g := range gates {
			if inDegree[i] > 0 {
				stuck = append(stuck, g.Name)
			}
		}
		return nil, fmt.Errorf("%w: gates %s", ErrCycle, strings.Join(stuck, ", "))
	}
	return ordered, nil
}
