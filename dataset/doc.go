// Package dataset defines the typed records the carbonviz engines read.
//
// Every record implements Record, a single typed accessor keyed by field
// name. Filters and hierarchy builders only ever see that accessor, so any
// field can be filtered or grouped on while the well-known numeric fields
// stay strongly typed on the concrete types:
//
//	var c dataset.Company
//	c.TotalEmissions          // *float64, nil when missing
//	v, ok := c.Field("sector") // FieldValue, for generic engines
//
// Row is the schema-less projection for datasets without a dedicated type.
// Records are never mutated by any engine; loaders build them once.
package dataset
