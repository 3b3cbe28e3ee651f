package loader

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/fyerfyer/dxdiag/internal/model"
)

// rawNode is a namespace-agnostic generic XML node: encoding/xml
// matches elements by local name when a struct field's tag carries no
// namespace, which is exactly the "tolerates an optional namespace
// prefix" behavior spec §6 asks for (the original DX loader did the
// same thing explicitly with ElementTree, trying the namespaced find
// first and falling back to the bare tag — see
// original_source/DiagnosisSystemClass.py:_parseModel).
type rawNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []rawNode  `xml:",any"`
	Content  string     `xml:",chardata"`
}

func (n *rawNode) find(local string) *rawNode {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == local {
			return &n.Children[i]
		}
	}
	return nil
}

// findAll collects every descendant node named local, at any depth —
// the Go equivalent of ElementTree's ".//tag" search.
func (n *rawNode) findAll(local string) []*rawNode {
	var out []*rawNode
	var walk func(node *rawNode)
	walk = func(node *rawNode) {
		for i := range node.Children {
			child := &node.Children[i]
			if child.XMLName.Local == local {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(n)
	return out
}

func (n *rawNode) text() string {
	if n == nil {
		return ""
	}
	return n.Content
}

// LoadXML reads a structural description from r and builds a Circuit
// (spec §4.B, §6). The document is expected to contain a <system>
// element (at any depth, optionally namespaced) holding <component>
// records (each with <name> and <componentType> children) and
// <connection> records (each with <c1> and <c2> endpoint children).
func LoadXML(r io.Reader, name string) (*model.Circuit, error) {
	var root rawNode
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModel, err)
	}

	system := &root
	if root.XMLName.Local != "system" {
		found := root.findAll("system")
		if len(found) == 0 {
			return nil, fmt.Errorf("%w: no <system> element found", ErrMalformedModel)
		}
		system = found[0]
	}

	var components []component // preserves document order, spec's tie-break
	for _, comp := range system.findAll("component") {
		cname := comp.find("name").text()
		ctype := comp.find("componentType").text()
		if cname == "" || ctype == "" {
			return nil, fmt.Errorf("%w: component missing name or componentType", ErrMalformedModel)
		}
		components = append(components, component{Name: cname, Type: ctype})
	}

	// Adjacency map over endpoint labels, preserving the connection
	// list's insertion order for each endpoint's neighbor list (spec §9
	// open question: pin resolution picks the *first* non-self
	// neighbor, so the source file's connection order matters).
	adjacency := make(map[string][]string)
	for _, conn := range system.findAll("connection") {
		c1 := conn.find("c1").text()
		c2 := conn.find("c2").text()
		if c1 == "" || c2 == "" {
			return nil, fmt.Errorf("%w: connection missing c1 or c2", ErrMalformedModel)
		}
		adjacency[c1] = append(adjacency[c1], c2)
		adjacency[c2] = append(adjacency[c2], c1)
	}

	return buildCircuit(name, components, adjacency)
}

// LoadXMLFile opens path and delegates to LoadXML.
func LoadXMLFile(path string) (*model.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModel, err)
	}
	defer f.Close()
	return LoadXML(f, baseName(path))
}
