package filter

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/carbonviz/dataset"
	"github.com/arloliu/carbonviz/internal/hash"
	"github.com/arloliu/carbonviz/internal/options"
)

// EmptySetPolicy decides what an explicitly empty set constraint means.
type EmptySetPolicy uint8

const (
	// EmptySetMatchAll treats an empty set as no constraint.
	EmptySetMatchAll EmptySetPolicy = iota
	// EmptySetMatchNone makes an empty set exclude every record.
	EmptySetMatchNone
)

func (p EmptySetPolicy) String() string {
	if p == EmptySetMatchNone {
		return "match-none"
	}

	return "match-all"
}

// DefaultSearchFields are searched when a Spec names no searchable fields.
var DefaultSearchFields = []string{dataset.FieldCompany}

// Kind identifies a constraint type.
type Kind uint8

const (
	KindRange Kind = iota + 1
	KindSet
	KindChoice
)

func (k Kind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindSet:
		return "set"
	case KindChoice:
		return "choice"
	default:
		return "unknown"
	}
}

// Range is an inclusive numeric interval. A nil bound is unbounded.
type Range struct {
	Min *float64
	Max *float64
}

// Between returns the range [lo, hi].
func Between(lo, hi float64) Range {
	return Range{Min: &lo, Max: &hi}
}

// AtLeast returns the range [lo, +inf).
func AtLeast(lo float64) Range {
	return Range{Min: &lo}
}

// AtMost returns the range (-inf, hi].
func AtMost(hi float64) Range {
	return Range{Max: &hi}
}

// Choice returns a pointer to v for WithChoice.
func Choice(v string) *string {
	return &v
}

func (r Range) bounded() bool {
	return r.Min != nil || r.Max != nil
}

func (r Range) contains(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}

	return true
}

// constraint is one field's predicate. Values are never mutated once the
// constraint is stored in a Spec.
type constraint struct {
	field  string
	kind   Kind
	rng    Range
	values []string
	set    map[string]struct{}
	choice *string
}

// Spec is an immutable filter specification. The zero value matches every
// record.
type Spec struct {
	constraints  []constraint // sorted by field
	query        string       // lower-cased
	searchFields []string
	policy       EmptySetPolicy
}

// Option configures a Spec created by New.
type Option = options.Option[*Spec]

// WithEmptySetPolicy selects what an explicitly empty set means.
func WithEmptySetPolicy(policy EmptySetPolicy) Option {
	return options.New(func(s *Spec) error {
		if policy != EmptySetMatchAll && policy != EmptySetMatchNone {
			return fmt.Errorf("unknown empty set policy %d", policy)
		}
		s.policy = policy

		return nil
	})
}

// WithSearchFields sets the fields the substring search looks at.
func WithSearchFields(fields ...string) Option {
	return options.New(func(s *Spec) error {
		for _, f := range fields {
			if f == "" {
				return fmt.Errorf("search field name must not be empty")
			}
		}
		s.searchFields = slices.Clone(fields)

		return nil
	})
}

// New creates an empty Spec configured by opts.
func New(opts ...Option) (Spec, error) {
	s := &Spec{}
	if err := options.Apply(s, opts...); err != nil {
		return Spec{}, err
	}

	return *s, nil
}

// with returns a copy of s with c replacing any constraint on c.field.
func (s Spec) with(c constraint) Spec {
	out := s
	out.constraints = make([]constraint, 0, len(s.constraints)+1)

	inserted := false
	for _, existing := range s.constraints {
		switch {
		case existing.field == c.field:
			out.constraints = append(out.constraints, c)
			inserted = true
		case !inserted && c.field < existing.field:
			out.constraints = append(out.constraints, c, existing)
			inserted = true
		default:
			out.constraints = append(out.constraints, existing)
		}
	}
	if !inserted {
		out.constraints = append(out.constraints, c)
	}

	return out
}

// WithRange constrains field to the inclusive range r.
func (s Spec) WithRange(field string, r Range) Spec {
	c := constraint{field: field, kind: KindRange}
	if r.Min != nil {
		lo := *r.Min
		c.rng.Min = &lo
	}
	if r.Max != nil {
		hi := *r.Max
		c.rng.Max = &hi
	}

	return s.with(c)
}

// WithSet constrains field to the listed values. Calling it with no values
// records an explicitly empty set, whose meaning follows the Spec's
// EmptySetPolicy.
func (s Spec) WithSet(field string, values ...string) Spec {
	c := constraint{
		field:  field,
		kind:   KindSet,
		values: slices.Clone(values),
		set:    make(map[string]struct{}, len(values)),
	}
	for _, v := range values {
		c.set[v] = struct{}{}
	}

	return s.with(c)
}

// WithChoice constrains field to equal *value. A nil value is the "All"
// option: the field is unconstrained.
func (s Spec) WithChoice(field string, value *string) Spec {
	if value == nil {
		return s.Without(field)
	}

	v := *value

	return s.with(constraint{field: field, kind: KindChoice, choice: &v})
}

// WithSearch sets the substring query. The query is lower-cased; an empty
// query clears the search. When fields are given they replace the Spec's
// searchable fields.
func (s Spec) WithSearch(query string, fields ...string) Spec {
	out := s
	out.query = strings.ToLower(query)
	if len(fields) > 0 {
		out.searchFields = slices.Clone(fields)
	}

	return out
}

// Without removes any constraint on field.
func (s Spec) Without(field string) Spec {
	idx := slices.IndexFunc(s.constraints, func(c constraint) bool { return c.field == field })
	if idx < 0 {
		return s
	}

	out := s
	out.constraints = slices.Delete(slices.Clone(s.constraints), idx, idx+1)

	return out
}

// Policy returns the Spec's empty-set policy.
func (s Spec) Policy() EmptySetPolicy {
	return s.policy
}

// Query returns the lower-cased search query.
func (s Spec) Query() string {
	return s.query
}

// SearchFields returns the fields the search query is matched against.
func (s Spec) SearchFields() []string {
	if len(s.searchFields) == 0 {
		return slices.Clone(DefaultSearchFields)
	}

	return slices.Clone(s.searchFields)
}

// Fields returns the constrained field names in sorted order.
func (s Spec) Fields() []string {
	fields := make([]string, len(s.constraints))
	for i, c := range s.constraints {
		fields[i] = c.field
	}

	return fields
}

// KindOf returns the kind of constraint on field, if any.
func (s Spec) KindOf(field string) (Kind, bool) {
	for _, c := range s.constraints {
		if c.field == field {
			return c.kind, true
		}
	}

	return 0, false
}

func (s Spec) active(c constraint) bool {
	switch c.kind {
	case KindRange:
		return c.rng.bounded()
	case KindSet:
		return len(c.set) > 0 || s.policy == EmptySetMatchNone
	case KindChoice:
		return c.choice != nil
	default:
		return false
	}
}

// Active returns the number of constraints that can reject a record,
// counting a non-empty search as one.
func (s Spec) Active() int {
	n := 0
	for _, c := range s.constraints {
		if s.active(c) {
			n++
		}
	}
	if s.query != "" {
		n++
	}

	return n
}

// Fingerprint returns a stable 64-bit digest of the Spec's effective
// meaning. Specs that filter identically under the same policy share a
// fingerprint regardless of how they were built; it is suitable as a cache
// key for filtered results.
func (s Spec) Fingerprint() uint64 {
	d := hash.NewDigest()
	d.WriteField(s.policy.String())

	for _, c := range s.constraints {
		if !s.active(c) {
			continue
		}

		d.WriteField(c.field)
		d.WriteField(c.kind.String())

		switch c.kind {
		case KindRange:
			d.WriteField(formatBound(c.rng.Min, math.Inf(-1)))
			d.WriteField(formatBound(c.rng.Max, math.Inf(1)))
		case KindSet:
			values := make([]string, 0, len(c.set))
			for v := range c.set {
				values = append(values, v)
			}
			slices.Sort(values)
			d.WriteField(strconv.Itoa(len(values)))
			for _, v := range values {
				d.WriteField(v)
			}
		case KindChoice:
			d.WriteField(*c.choice)
		}
	}

	if s.query != "" {
		d.WriteField("search")
		d.WriteField(s.query)
		for _, f := range s.SearchFields() {
			d.WriteField(f)
		}
	}

	return d.Sum64()
}

func formatBound(b *float64, unbounded float64) string {
	v := unbounded
	if b != nil {
		v = *b
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
