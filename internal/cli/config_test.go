package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/carbonviz/dataset"
	"github.com/arloliu/carbonviz/filter"
)

const filterYAML = `
emptySet: match-none
ranges:
  revenues: {min: 100}
sets:
  sector: [Tech, Retail]
choices:
  companyType: Public
search:
  query: Corp
`

const filterTOML = `
emptySet = "match-none"

[ranges.revenues]
min = 100.0

[sets]
sector = ["Tech", "Retail"]

[choices]
companyType = "Public"

[search]
query = "Corp"
`

func TestLoadFilter(t *testing.T) {
	tests := []struct {
		name, file, content string
	}{
		{"yaml", "filter.yaml", filterYAML},
		{"toml", "filter.toml", filterTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := LoadFilter(writeTestFile(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, filter.EmptySetMatchNone, spec.Policy())
			assert.Equal(t, "corp", spec.Query())
			assert.Equal(t, []string{"companyType", "revenues", "sector"}, spec.Fields())
			assert.Equal(t, 4, spec.Active())

			match := dataset.Row{
				"company":     dataset.String("Acme Corp"),
				"revenues":    dataset.Number(150),
				"sector":      dataset.String("Tech"),
				"companyType": dataset.String("Public"),
			}
			assert.True(t, filter.Matches(match, spec))

			match["revenues"] = dataset.Number(50)
			assert.False(t, filter.Matches(match, spec))
		})
	}
}

func TestLoadFilter_Errors(t *testing.T) {
	_, err := LoadFilter(writeTestFile(t, "bad.yaml", "emptySet: sometimes\n"))
	require.ErrorContains(t, err, "unknown emptySet policy")

	_, err = LoadFilter(writeTestFile(t, "broken.yaml", "ranges: [1, 2\n"))
	require.ErrorContains(t, err, "parse")

	_, err = LoadFilter(writeTestFile(t, "broken.toml", "ranges = \n"))
	require.ErrorContains(t, err, "parse")

	_, err = LoadFilter("/nonexistent/filter.yaml")
	require.Error(t, err)
}

func TestLoadFilter_Empty(t *testing.T) {
	spec, err := LoadFilter(writeTestFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Zero(t, spec.Active())
	assert.Equal(t, filter.EmptySetMatchAll, spec.Policy())
}

const tasksYAML = `
preset: author
tasks:
  - name: Email
    unit: emails
    emissionsPerUnit: 4
    authorWeekly: 50
  - name: streaming
    label: Streaming video
    unit: hours
    emissionsPerUnit: 55
    authorWeekly: 3
usage:
  STREAMING: 10
factors:
  - {name: driving, emissionsPerUnit: 400}
  - {name: beef_serving, emissionsPerUnit: 2000}
  - {name: charging_smartphone, emissionsPerUnit: 10}
trips:
  - {departure: New York, destination: Boston, distance: 215}
`

func TestLoadTasks(t *testing.T) {
	f, err := LoadTasks(writeTestFile(t, "tasks.yaml", tasksYAML))
	require.NoError(t, err)
	require.Len(t, f.Tasks, 2)
	require.Len(t, f.Factors, 3)
	require.Len(t, f.Trips, 1)
	assert.InDelta(t, 55.0, f.Tasks[1].EmissionsPerUnit, 0)

	usage, err := f.WeeklyUsage()
	require.NoError(t, err)
	assert.InDelta(t, 50.0, usage["email"], 0)
	assert.InDelta(t, 10.0, usage["streaming"], 0, "explicit usage overrides the preset")
}

func TestTasksFile_UnknownPreset(t *testing.T) {
	f := &TasksFile{Preset: "weekend"}
	_, err := f.WeeklyUsage()
	require.ErrorContains(t, err, "unknown preset")
}
