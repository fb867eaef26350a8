package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/carbonviz/filter"
	"github.com/arloliu/carbonviz/footprint"
)

// RangeConfig is one numeric slider. Either bound may be omitted.
type RangeConfig struct {
	Min *float64 `yaml:"min,omitempty" toml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty" toml:"max,omitempty"`
}

// SearchConfig is the free-text search box.
type SearchConfig struct {
	Query  string   `yaml:"query" toml:"query"`
	Fields []string `yaml:"fields,omitempty" toml:"fields,omitempty"`
}

// FilterFile is the on-disk form of a filter.Spec.
//
//	emptySet: match-all
//	ranges:
//	  revenues: {min: 1000000000}
//	sets:
//	  sector: [Technology, Retailing]
//	choices:
//	  companyType: Public
//	search:
//	  query: bank
type FilterFile struct {
	EmptySet string                 `yaml:"emptySet,omitempty" toml:"emptySet,omitempty"`
	Ranges   map[string]RangeConfig `yaml:"ranges,omitempty" toml:"ranges,omitempty"`
	Sets     map[string][]string    `yaml:"sets,omitempty" toml:"sets,omitempty"`
	Choices  map[string]string      `yaml:"choices,omitempty" toml:"choices,omitempty"`
	Search   *SearchConfig          `yaml:"search,omitempty" toml:"search,omitempty"`
}

// Spec converts the file into a filter.Spec.
func (f *FilterFile) Spec() (filter.Spec, error) {
	var opts []filter.Option
	switch strings.ToLower(f.EmptySet) {
	case "", "match-all":
	case "match-none":
		opts = append(opts, filter.WithEmptySetPolicy(filter.EmptySetMatchNone))
	default:
		return filter.Spec{}, fmt.Errorf("unknown emptySet policy %q (want match-all or match-none)", f.EmptySet)
	}

	spec, err := filter.New(opts...)
	if err != nil {
		return filter.Spec{}, err
	}

	for field, r := range f.Ranges {
		spec = spec.WithRange(field, filter.Range{Min: r.Min, Max: r.Max})
	}
	for field, values := range f.Sets {
		spec = spec.WithSet(field, values...)
	}
	for field, value := range f.Choices {
		spec = spec.WithChoice(field, filter.Choice(value))
	}
	if f.Search != nil {
		spec = spec.WithSearch(f.Search.Query, f.Search.Fields...)
	}

	return spec, nil
}

// TasksFile describes a footprint run: emission factors, the usage to price
// and the reference data for equivalents.
type TasksFile struct {
	// Preset is "author", "average" or empty. Explicit Usage entries
	// override preset values.
	Preset  string             `yaml:"preset,omitempty" toml:"preset,omitempty"`
	Tasks   []footprint.Task   `yaml:"tasks" toml:"tasks"`
	Usage   map[string]float64 `yaml:"usage,omitempty" toml:"usage,omitempty"`
	Factors []footprint.Factor `yaml:"factors,omitempty" toml:"factors,omitempty"`
	Trips   []footprint.Trip   `yaml:"trips,omitempty" toml:"trips,omitempty"`
}

// WeeklyUsage merges the preset with the explicit usage entries.
func (f *TasksFile) WeeklyUsage() (footprint.Usage, error) {
	var preset footprint.Preset
	switch strings.ToLower(f.Preset) {
	case "", "none":
		preset = footprint.PresetNone
	case "author":
		preset = footprint.PresetAuthor
	case "average":
		preset = footprint.PresetAverage
	default:
		return nil, fmt.Errorf("unknown preset %q (want author, average or none)", f.Preset)
	}

	usage := footprint.PresetUsage(f.Tasks, preset)
	for name, v := range f.Usage {
		usage[strings.ToLower(name)] = v
	}

	return usage, nil
}

// LoadFilter reads a YAML or TOML filter file and returns its Spec.
func LoadFilter(path string) (filter.Spec, error) {
	var f FilterFile
	if err := decodeFile(path, &f); err != nil {
		return filter.Spec{}, err
	}

	spec, err := f.Spec()
	if err != nil {
		return filter.Spec{}, fmt.Errorf("%s: %w", path, err)
	}

	return spec, nil
}

// LoadTasks reads a YAML or TOML tasks file.
func LoadTasks(path string) (*TasksFile, error) {
	var f TasksFile
	if err := decodeFile(path, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

// decodeFile picks the decoder from the file extension; anything other
// than .toml is read as YAML.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided path is expected
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, v)
	} else {
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}
