// Package footprint estimates the emissions of a week of digital activity
// and expresses a yearly total in everyday equivalents.
//
// Emission factors are grams of CO2e per unit of activity (per hour of
// streaming, per email, per search...). A Usage maps task names to how many
// units were done in a week.
package footprint

import (
	"cmp"
	"slices"
	"strings"
)

// WeeksPerYear converts weekly totals to yearly ones.
const WeeksPerYear = 52

// Task is one digital activity with its emission factor.
type Task struct {
	Name             string  `json:"name" yaml:"name"`
	Label            string  `json:"label,omitempty" yaml:"label,omitempty"`
	Platform         string  `json:"platform,omitempty" yaml:"platform,omitempty"`
	Unit             string  `json:"unit" yaml:"unit"`
	EmissionsPerUnit float64 `json:"emissionsPerUnit" yaml:"emissionsPerUnit"`
	// AuthorWeekly and AverageWeekly are reference usages offered as presets.
	AuthorWeekly  float64 `json:"authorWeekly,omitempty" yaml:"authorWeekly,omitempty"`
	AverageWeekly float64 `json:"averageWeekly,omitempty" yaml:"averageWeekly,omitempty"`
}

// Key returns the lower-cased name Usage entries are matched against.
func (t Task) Key() string {
	return strings.ToLower(t.Name)
}

// DisplayName returns Label, or Name when no label is set.
func (t Task) DisplayName() string {
	if t.Label != "" {
		return t.Label
	}

	return t.Name
}

// Usage maps task names to weekly units. Names are matched case-insensitively.
type Usage map[string]float64

// Preset selects a reference weekly usage.
type Preset uint8

const (
	PresetNone    Preset = iota // PresetNone is zero usage for every task.
	PresetAuthor                // PresetAuthor is the article author's week.
	PresetAverage               // PresetAverage is an average US user's week.
)

// PresetUsage builds a Usage from the tasks' reference columns.
func PresetUsage(tasks []Task, preset Preset) Usage {
	usage := make(Usage, len(tasks))
	for _, t := range tasks {
		switch preset {
		case PresetAuthor:
			usage[t.Key()] = t.AuthorWeekly
		case PresetAverage:
			usage[t.Key()] = t.AverageWeekly
		default:
			usage[t.Key()] = 0
		}
	}

	return usage
}

// TaskEmission is one task's share of a Breakdown.
type TaskEmission struct {
	Name      string  `json:"name"`
	Label     string  `json:"label"`
	Platform  string  `json:"platform,omitempty"`
	Unit      string  `json:"unit"`
	Usage     float64 `json:"usage"`
	Emissions float64 `json:"emissions"`
}

// Breakdown is a week of emissions, largest task first.
type Breakdown struct {
	Total float64        `json:"total"`
	Tasks []TaskEmission `json:"tasks"`
}

// Yearly returns the breakdown total scaled to a year.
func (b Breakdown) Yearly() float64 {
	return Yearly(b.Total)
}

// Share returns the fraction of the total emitted by the i-th task, 0 when
// the total is 0.
func (b Breakdown) Share(i int) float64 {
	if b.Total == 0 || i < 0 || i >= len(b.Tasks) {
		return 0
	}

	return b.Tasks[i].Emissions / b.Total
}

// Calculate multiplies each task's emission factor by its weekly usage and
// sums the total. Tasks missing from usage count as 0. Tasks are returned by
// emissions, largest first; ties keep the input order.
func Calculate(tasks []Task, usage Usage) Breakdown {
	normalized := make(map[string]float64, len(usage))
	for name, v := range usage {
		normalized[strings.ToLower(name)] = v
	}

	b := Breakdown{Tasks: make([]TaskEmission, 0, len(tasks))}
	for _, t := range tasks {
		units := normalized[t.Key()]
		e := t.EmissionsPerUnit * units
		b.Total += e
		b.Tasks = append(b.Tasks, TaskEmission{
			Name:      t.Key(),
			Label:     t.DisplayName(),
			Platform:  t.Platform,
			Unit:      t.Unit,
			Usage:     units,
			Emissions: e,
		})
	}

	slices.SortStableFunc(b.Tasks, func(x, y TaskEmission) int {
		return cmp.Compare(y.Emissions, x.Emissions)
	})

	return b
}

// Yearly scales a weekly total to a year.
func Yearly(weekly float64) float64 {
	return weekly * WeeksPerYear
}
