package filter

import (
	"math"
	"strings"

	"github.com/arloliu/carbonviz/dataset"
)

// Matches reports whether record satisfies every active constraint of spec.
func Matches(record dataset.Record, spec Spec) bool {
	for i := range spec.constraints {
		c := &spec.constraints[i]
		if !spec.active(*c) {
			continue
		}
		if !matchConstraint(record, c) {
			return false
		}
	}

	if spec.query != "" && !matchSearch(record, spec) {
		return false
	}

	return true
}

func matchConstraint(record dataset.Record, c *constraint) bool {
	v, ok := record.Field(c.field)
	if !ok {
		return false
	}

	switch c.kind {
	case KindRange:
		f, ok := v.Num()
		return ok && c.rng.contains(f)
	case KindSet:
		_, ok := c.set[v.Text()]
		return ok
	case KindChoice:
		return v.Text() == *c.choice
	default:
		return true
	}
}

func matchSearch(record dataset.Record, spec Spec) bool {
	fields := spec.searchFields
	if len(fields) == 0 {
		fields = DefaultSearchFields
	}

	for _, name := range fields {
		v, ok := record.Field(name)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(v.Text()), spec.query) {
			return true
		}
	}

	return false
}

// Apply returns the records that match spec, in their original order.
//
// The result is always a fresh slice, never aliasing records, and is empty
// (not nil) when nothing matches. Records themselves are not copied or
// modified.
func Apply[R dataset.Record](records []R, spec Spec) []R {
	out := make([]R, 0, len(records))
	if spec.Active() == 0 {
		return append(out, records...)
	}

	for _, r := range records {
		if Matches(r, spec) {
			out = append(out, r)
		}
	}

	return out
}

// Count returns how many records match spec without building a slice.
func Count[R dataset.Record](records []R, spec Spec) int {
	n := 0
	for _, r := range records {
		if Matches(r, spec) {
			n++
		}
	}

	return n
}

// Distinct returns the distinct text values of field in first-encounter
// order, skipping records without the field. It is how checkbox and radio
// groups are populated.
func Distinct[R dataset.Record](records []R, field string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, r := range records {
		v, ok := r.Field(field)
		if !ok {
			continue
		}

		text := v.Text()
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		out = append(out, text)
	}

	return out
}

// Extent returns the minimum and maximum of a numeric field, the bounds of a
// range slider. ok is false when no record holds a finite number in field.
func Extent[R dataset.Record](records []R, field string) (lo, hi float64, ok bool) {
	for _, r := range records {
		v, present := r.Field(field)
		if !present {
			continue
		}

		f, isNum := v.Num()
		if !isNum || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}

		if !ok {
			lo, hi, ok = f, f, true
			continue
		}
		lo = min(lo, f)
		hi = max(hi, f)
	}

	return lo, hi, ok
}
