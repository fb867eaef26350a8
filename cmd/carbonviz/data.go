package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/arloliu/carbonviz/dataset"
)

// Record schemas accepted by --schema.
const (
	schemaRows      = "rows"
	schemaCompanies = "companies"
	schemaCountries = "countries"
)

// loadRecords reads a JSON array from path using the named schema.
func loadRecords(path, schema string) ([]dataset.Record, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided path is expected
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "carbonviz: cannot open %q (%v)", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only input

	var records []dataset.Record
	switch strings.ToLower(schema) {
	case schemaRows:
		rows, rerr := dataset.ReadRows(f)
		records, err = dataset.Records(rows), rerr
	case schemaCompanies:
		companies, rerr := dataset.ReadCompanies(f)
		records, err = dataset.Records(companies), rerr
	case schemaCountries:
		countries, rerr := dataset.ReadCountries(f)
		records, err = dataset.Records(countries), rerr
	default:
		return nil, exitError(ExitInvalidArgs, "carbonviz: unknown schema %q (want %s, %s or %s)",
			schema, schemaRows, schemaCompanies, schemaCountries)
	}
	if err != nil {
		return nil, dataError(err, "carbonviz: %s", path)
	}

	return records, nil
}

func schemaUsage() string {
	return fmt.Sprintf("record schema: %s, %s or %s", schemaRows, schemaCompanies, schemaCountries)
}
