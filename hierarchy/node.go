package hierarchy

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/carbonviz/dataset"
)

// Kind tags a Node as the root, an intermediate group or a leaf.
type Kind uint8

const (
	KindRoot Kind = iota
	KindGroup
	KindLeaf
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindGroup:
		return "group"
	case KindLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if k > KindLeaf {
		return nil, fmt.Errorf("hierarchy: invalid node kind %d", k)
	}

	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "root":
		*k = KindRoot
	case "group":
		*k = KindGroup
	case "leaf":
		*k = KindLeaf
	default:
		return fmt.Errorf("hierarchy: unknown node kind %q", text)
	}

	return nil
}

// RootName is the name given to every root node.
const RootName = "root"

// Node is one node of a grouping tree.
//
// Root and group nodes carry Children; group aggregates are not stored and
// are computed on demand with Sum. Leaves carry the record's value and the
// record itself, shared with the input slice.
type Node struct {
	Kind     Kind           `json:"kind"`
	Name     string         `json:"name"`
	Value    float64        `json:"value,omitempty"`
	Record   dataset.Record `json:"record,omitempty"`
	Children []*Node        `json:"children,omitempty"`
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Kind == KindLeaf
}

// UnmarshalJSON decodes a node. Leaf records come back as dataset.Row, the
// schema-less projection of whatever record type was encoded.
func (n *Node) UnmarshalJSON(data []byte) error {
	var aux struct {
		Kind     Kind        `json:"kind"`
		Name     string      `json:"name"`
		Value    float64     `json:"value"`
		Record   dataset.Row `json:"record"`
		Children []*Node     `json:"children"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*n = Node{Kind: aux.Kind, Name: aux.Name, Value: aux.Value, Children: aux.Children}
	if aux.Record != nil {
		n.Record = aux.Record
	}

	return nil
}
