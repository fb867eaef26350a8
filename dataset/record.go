package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
)

// Record is a flat entity with scalar fields looked up by name.
type Record interface {
	// Field returns the named field and true, or the zero FieldValue and
	// false when the record has no such field.
	Field(name string) (FieldValue, bool)
}

// Row is the schema-less record projection: any field name maps to a scalar.
// A KindNone entry is treated as absent.
type Row map[string]FieldValue

var _ Record = Row(nil)

// Field implements Record.
func (r Row) Field(name string) (FieldValue, bool) {
	v, ok := r[name]
	if !ok || v.IsZero() {
		return FieldValue{}, false
	}

	return v, true
}

// Fields returns the row's field names in sorted order.
func (r Row) Fields() []string {
	return slices.Sorted(maps.Keys(r))
}

// Records converts a typed slice into a []Record without copying elements.
func Records[T Record](items []T) []Record {
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = item
	}

	return out
}

// ReadRows decodes a JSON array of flat objects into Rows.
func ReadRows(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}

	return rows, nil
}

// ReadCompanies decodes a JSON array of Fortune-500 company objects.
func ReadCompanies(r io.Reader) ([]Company, error) {
	var companies []Company
	if err := json.NewDecoder(r).Decode(&companies); err != nil {
		return nil, fmt.Errorf("decode companies: %w", err)
	}

	return companies, nil
}

// ReadCountries decodes a JSON array of {"country": ..., "metrics": {...}}
// objects.
func ReadCountries(r io.Reader) ([]Country, error) {
	var countries []Country
	if err := json.NewDecoder(r).Decode(&countries); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}

	return countries, nil
}
