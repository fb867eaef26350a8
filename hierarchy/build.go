// Package hierarchy groups flat records into a root → group … → leaf tree
// ready for a treemap layout.
package hierarchy

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/arloliu/carbonviz/dataset"
	"github.com/arloliu/carbonviz/errs"
	"github.com/arloliu/carbonviz/internal/collision"
	"github.com/arloliu/carbonviz/internal/hash"
	"github.com/arloliu/carbonviz/internal/options"
)

// Anomaly describes a leaf whose value field was missing or not numeric and
// was therefore given the value 0.
type Anomaly struct {
	Index  int    // position of the record in the input
	Name   string // leaf name
	Field  string // leaf value field
	Reason string
}

// Result is the outcome of BuildReport.
type Result struct {
	Root      *Node
	Anomalies []Anomaly
	// Collisions counts group path hashes shared by distinct groups. They are
	// resolved by name and never merge groups.
	Collisions int
}

type groupRef struct {
	node *Node
	id   int
	key  uint64
}

// Build groups records into a tree in a single pass.
//
// Each successive entry of groupKeys adds one level of group nodes, named
// by the records' values for that field; a record lacking the field is
// grouped under the empty name. Groups and leaves appear in first-encounter
// order. Every record becomes exactly one leaf whose Value is read from
// leafValueField. With no group keys the leaves hang directly off the root.
//
// Empty input yields a root with no children.
func Build[R dataset.Record](records []R, groupKeys []string, leafValueField string, opts ...Option) (*Node, error) {
	res, err := BuildReport(records, groupKeys, leafValueField, opts...)
	if err != nil {
		return nil, err
	}

	return res.Root, nil
}

// BuildReport is Build that also returns the value anomalies and hash
// collisions met along the way.
func BuildReport[R dataset.Record](records []R, groupKeys []string, leafValueField string, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	root := &Node{Kind: KindRoot, Name: RootName, Children: []*Node{}}
	res := &Result{Root: root}
	if len(records) == 0 {
		return res, nil
	}

	index := collision.NewIndex[groupRef](len(records) * len(groupKeys))
	nextID := 1

	for i, rec := range records {
		parent := groupRef{node: root, id: 0, key: hash.Root}

		for _, field := range groupKeys {
			name := ""
			if v, ok := rec.Field(field); ok {
				name = v.Text()
			}

			key := hash.Path(parent.key, name)
			idxKey := collision.Key{Parent: parent.id, Name: name}

			ref, found := index.Get(key, idxKey)
			if !found {
				ref = groupRef{
					node: &Node{Kind: KindGroup, Name: name, Children: []*Node{}},
					id:   nextID,
					key:  key,
				}
				nextID++
				parent.node.Children = append(parent.node.Children, ref.node)

				if index.Put(key, idxKey, ref) {
					cfg.Logger.Debug("group path hash collision resolved by name",
						slog.String("field", field), slog.String("group", name))
				}
			}
			parent = ref
		}

		leafName := leafNameOf(rec, cfg.LeafNameField, i)
		value, reason := leafValue(rec, leafValueField)
		if reason != "" {
			if cfg.StrictValues {
				return nil, fmt.Errorf("record %d (%s) field %q: %s: %w",
					i, leafName, leafValueField, reason, errs.ErrInvalidLeafValue)
			}

			res.Anomalies = append(res.Anomalies, Anomaly{Index: i, Name: leafName, Field: leafValueField, Reason: reason})
			cfg.Logger.Warn("leaf value treated as 0",
				slog.Int("index", i),
				slog.String("leaf", leafName),
				slog.String("field", leafValueField),
				slog.String("reason", reason))
		}

		parent.node.Children = append(parent.node.Children, &Node{
			Kind:   KindLeaf,
			Name:   leafName,
			Value:  value,
			Record: rec,
		})
	}

	res.Collisions = index.Collisions()

	return res, nil
}

func leafNameOf(rec dataset.Record, field string, index int) string {
	if v, ok := rec.Field(field); ok {
		return v.Text()
	}

	return strconv.Itoa(index)
}

// leafValue returns the numeric value of field, or 0 and a reason when it
// cannot be used.
func leafValue(rec dataset.Record, field string) (float64, string) {
	v, ok := rec.Field(field)
	if !ok {
		return 0, "missing"
	}

	f, ok := v.Num()
	if !ok {
		return 0, "not numeric (" + v.Kind().String() + ")"
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, "not finite"
	}

	return f, ""
}
