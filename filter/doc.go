// Package filter evaluates compound predicates over flat records.
//
// A Spec maps field names to constraints and is immutable: every builder
// method returns a new Spec and leaves its receiver untouched, so UI state
// can hold the current Spec and derive the next one on each control change.
//
//	spec := filter.Spec{}.
//	    WithSet("sector", "Technology", "Retailing").
//	    WithRange("totalEmissions", filter.AtLeast(100)).
//	    WithChoice("wcGrade", filter.Choice("A")).
//	    WithSearch("micro")
//	kept := filter.Apply(companies, spec)
//
// Constraint kinds:
//   - range: inclusive bounds, either side optional; the value must be numeric
//   - set: the value's text must be one of the listed strings
//   - choice: the value's text must equal the chosen string; nil means "All"
//   - search: a case-insensitive substring of any searchable field
//
// A record passes when it satisfies every active constraint. A record that
// lacks a constrained field fails range, set and choice constraints.
//
// An explicitly empty set is inactive under the default EmptySetMatchAll
// policy (nothing checked reads as "no preference"). EmptySetMatchNone makes
// it exclude every record instead.
package filter
