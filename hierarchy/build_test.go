package hierarchy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/carbonviz/dataset"
	"github.com/arloliu/carbonviz/errs"
)

func scenarioRecords() []dataset.Record {
	return []dataset.Record{
		dataset.Row{"company": dataset.String("Microsoft"), "sector": dataset.String("Tech"), "industry": dataset.String("Software"), "totalEmissions": dataset.Number(100)},
		dataset.Row{"company": dataset.String("Dell"), "sector": dataset.String("Tech"), "industry": dataset.String("Hardware"), "totalEmissions": dataset.Number(50)},
		dataset.Row{"company": dataset.String("Amazon"), "sector": dataset.String("Retail"), "industry": dataset.String("E-comm"), "totalEmissions": dataset.Number(30)},
	}
}

var sectorIndustry = []string{"sector", "industry"}

func childNames(n *Node) []string {
	out := make([]string, len(n.Children))
	for i, c := range n.Children {
		out[i] = c.Name
	}

	return out
}

func TestBuild_Scenario(t *testing.T) {
	root, err := Build(scenarioRecords(), sectorIndustry, "totalEmissions")
	require.NoError(t, err)

	require.Equal(t, KindRoot, root.Kind)
	require.Equal(t, RootName, root.Name)
	require.Equal(t, []string{"Tech", "Retail"}, childNames(root))

	tech := root.Children[0]
	require.Equal(t, KindGroup, tech.Kind)
	require.Equal(t, []string{"Software", "Hardware"}, childNames(tech))
	require.Equal(t, []string{"E-comm"}, childNames(root.Children[1]))

	require.Equal(t, 3, CountLeaves(root))

	values := make([]float64, 0, 3)
	for _, leaf := range Leaves(root) {
		require.Equal(t, KindLeaf, leaf.Kind)
		values = append(values, leaf.Value)
	}
	require.Equal(t, []float64{100, 50, 30}, values)

	require.InDelta(t, 180.0, Sum(root), 0)
	require.InDelta(t, 150.0, Sum(tech), 0)
}

func TestBuild_LeafCarriesRecord(t *testing.T) {
	records := scenarioRecords()
	root, err := Build(records, sectorIndustry, "totalEmissions")
	require.NoError(t, err)

	leaf, ok := Find(root, "Tech", "Hardware", "Dell")
	require.True(t, ok)
	require.Equal(t, records[1], leaf.Record)
}

func TestBuild_Empty(t *testing.T) {
	root, err := Build([]dataset.Company{}, sectorIndustry, "totalEmissions")
	require.NoError(t, err)
	require.Equal(t, KindRoot, root.Kind)
	require.Empty(t, root.Children)
	require.Equal(t, 0, CountLeaves(root))
	require.InDelta(t, 0.0, Sum(root), 0)
}

func TestBuild_NoGroupKeys(t *testing.T) {
	root, err := Build(scenarioRecords(), nil, "totalEmissions")
	require.NoError(t, err)
	require.Equal(t, []string{"Microsoft", "Dell", "Amazon"}, childNames(root))
	for _, c := range root.Children {
		require.True(t, c.IsLeaf())
	}
}

func TestBuild_SameNameUnderDifferentParents(t *testing.T) {
	records := []dataset.Record{
		dataset.Row{"company": dataset.String("A"), "sector": dataset.String("Tech"), "industry": dataset.String("Services"), "v": dataset.Number(1)},
		dataset.Row{"company": dataset.String("B"), "sector": dataset.String("Retail"), "industry": dataset.String("Services"), "v": dataset.Number(2)},
		dataset.Row{"company": dataset.String("C"), "sector": dataset.String("Tech"), "industry": dataset.String("Services"), "v": dataset.Number(3)},
	}

	root, err := Build(records, sectorIndustry, "v")
	require.NoError(t, err)

	techServices, ok := Find(root, "Tech", "Services")
	require.True(t, ok)
	require.Equal(t, []string{"A", "C"}, childNames(techServices))

	retailServices, ok := Find(root, "Retail", "Services")
	require.True(t, ok)
	require.Equal(t, []string{"B"}, childNames(retailServices))
}

func TestBuild_MissingGroupField(t *testing.T) {
	records := []dataset.Record{
		dataset.Row{"company": dataset.String("A"), "sector": dataset.String("Tech"), "v": dataset.Number(1)},
		dataset.Row{"company": dataset.String("B"), "v": dataset.Number(2)},
	}

	root, err := Build(records, []string{"sector"}, "v")
	require.NoError(t, err)
	require.Equal(t, []string{"Tech", ""}, childNames(root))
	require.Equal(t, 2, CountLeaves(root), "records without the field are not dropped")
}

func TestBuild_LeafValueAnomalies(t *testing.T) {
	records := []dataset.Record{
		dataset.Row{"company": dataset.String("Good"), "v": dataset.Number(7)},
		dataset.Row{"company": dataset.String("Missing")},
		dataset.Row{"company": dataset.String("Text"), "v": dataset.String("lots")},
		dataset.Row{"v": dataset.Number(1)},
	}

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))

	res, err := BuildReport(records, nil, "v", WithLogger(logger))
	require.NoError(t, err)
	require.Equal(t, 4, CountLeaves(res.Root))
	require.Equal(t, []string{"Good", "Missing", "Text", "3"}, childNames(res.Root), "unnamed leaves fall back to their index")

	require.Len(t, res.Anomalies, 2)
	require.Equal(t, 1, res.Anomalies[0].Index)
	require.Equal(t, "missing", res.Anomalies[0].Reason)
	require.Equal(t, "Text", res.Anomalies[1].Name)
	require.InDelta(t, 0.0, res.Root.Children[1].Value, 0)

	require.Contains(t, logs.String(), "level=WARN")
	require.Contains(t, logs.String(), "leaf=Missing")
	require.Contains(t, logs.String(), "leaf=Text")
}

func TestBuild_StrictValues(t *testing.T) {
	records := []dataset.Record{
		dataset.Row{"company": dataset.String("Good"), "v": dataset.Number(7)},
		dataset.Row{"company": dataset.String("Bad"), "v": dataset.Bool(true)},
	}

	_, err := Build(records, nil, "v", WithStrictValues())
	require.ErrorIs(t, err, errs.ErrInvalidLeafValue)
	require.Contains(t, err.Error(), "Bad")
}

func TestBuild_Options(t *testing.T) {
	root, err := Build(scenarioRecords(), []string{"sector"}, "totalEmissions", WithLeafName("industry"))
	require.NoError(t, err)
	tech, _ := Find(root, "Tech")
	require.Equal(t, []string{"Software", "Hardware"}, childNames(tech))

	_, err = Build(scenarioRecords(), nil, "v", WithLeafName(""))
	require.Error(t, err)
	_, err = Build(scenarioRecords(), nil, "v", WithLogger(nil))
	require.Error(t, err)
}

func TestBuild_Companies(t *testing.T) {
	companies := []dataset.Company{
		{Company: "Walmart", Sector: "Retailing", Industry: "General Merchandisers", TotalEmissions: dataset.Metric(410)},
		{Company: "Apple", Sector: "Technology", Industry: "Computers", TotalEmissions: dataset.Metric(760)},
		{Company: "Target", Sector: "Retailing", Industry: "General Merchandisers", TotalEmissions: dataset.Metric(90)},
	}

	res, err := BuildReport(companies, []string{dataset.FieldSector, dataset.FieldIndustry}, dataset.FieldTotalEmissions)
	require.NoError(t, err)
	require.Empty(t, res.Anomalies)
	require.Zero(t, res.Collisions)

	gm, ok := Find(res.Root, "Retailing", "General Merchandisers")
	require.True(t, ok)
	require.InDelta(t, 500.0, Sum(gm), 0)
}

func TestBuild_CompanyMissingEmissions(t *testing.T) {
	companies, err := dataset.ReadCompanies(strings.NewReader(`[
		{"company":"Walmart","sector":"Retailing","totalEmissions":410},
		{"company":"Kroger","sector":"Retailing","totalEmissions":null}
	]`))
	require.NoError(t, err)

	res, err := BuildReport(companies, []string{dataset.FieldSector}, dataset.FieldTotalEmissions)
	require.NoError(t, err)
	require.Len(t, res.Anomalies, 1)
	require.Equal(t, Anomaly{Index: 1, Name: "Kroger", Field: dataset.FieldTotalEmissions, Reason: "missing"}, res.Anomalies[0])
	require.InDelta(t, 410.0, Sum(res.Root), 0)

	_, err = Build(companies, []string{dataset.FieldSector}, dataset.FieldTotalEmissions, WithStrictValues())
	require.ErrorIs(t, err, errs.ErrInvalidLeafValue)
}

// groupPath returns the group names above each leaf, keyed by leaf name.
func groupPaths(root *Node) map[string]string {
	paths := make(map[string]string)
	var visit func(n *Node, prefix string)
	visit = func(n *Node, prefix string) {
		for _, c := range n.Children {
			if c.IsLeaf() {
				paths[c.Name] = prefix
				continue
			}
			visit(c, prefix+"/"+c.Name)
		}
	}
	visit(root, "")

	return paths
}

func TestBuild_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 5))
	sectors := []string{"Tech", "Retail", "Energy"}
	industries := []string{"Software", "Services", "Hardware", "Oil"}

	for round := range 50 {
		n := rng.IntN(60) + 1
		records := make([]dataset.Record, n)
		for i := range records {
			records[i] = dataset.Row{
				"company":  dataset.String(fmt.Sprintf("c%d", i)),
				"sector":   dataset.String(sectors[rng.IntN(len(sectors))]),
				"industry": dataset.String(industries[rng.IntN(len(industries))]),
				"v":        dataset.Number(float64(rng.IntN(1000))),
			}
		}

		root, err := Build(records, sectorIndustry, "v")
		require.NoError(t, err)
		require.Equal(t, n, CountLeaves(root), "round %d", round)

		paths := groupPaths(root)
		for i := range records {
			for j := range records {
				ri, rj := records[i].(dataset.Row), records[j].(dataset.Row)
				same := ri["sector"] == rj["sector"] && ri["industry"] == rj["industry"]
				samePath := paths[fmt.Sprintf("c%d", i)] == paths[fmt.Sprintf("c%d", j)]
				assert.Equal(t, same, samePath)
			}
		}

		again, err := Build(records, sectorIndustry, "v")
		require.NoError(t, err)
		require.Equal(t, root, again, "idempotent")
	}
}

func TestNode_JSON(t *testing.T) {
	root, err := Build(scenarioRecords(), sectorIndustry, "totalEmissions")
	require.NoError(t, err)

	data, err := json.Marshal(root)
	require.NoError(t, err)
	require.Contains(t, string(data), `"kind":"root"`)
	require.Contains(t, string(data), `"kind":"leaf"`)

	var decoded Node
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, 3, CountLeaves(&decoded))
	require.InDelta(t, Sum(root), Sum(&decoded), 0)

	leaf, ok := Find(&decoded, "Retail", "E-comm", "Amazon")
	require.True(t, ok)
	v, ok := leaf.Record.Field("totalEmissions")
	require.True(t, ok)
	require.Equal(t, dataset.Number(30), v)

	require.Error(t, json.Unmarshal([]byte(`{"kind":"branch"}`), &decoded))
}

func BenchmarkBuild(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	records := make([]dataset.Company, 500)
	for i := range records {
		records[i] = dataset.Company{
			Company:        fmt.Sprintf("company-%d", i),
			Sector:         fmt.Sprintf("sector-%d", rng.IntN(20)),
			Industry:       fmt.Sprintf("industry-%d", rng.IntN(70)),
			TotalEmissions: dataset.Metric(rng.Float64() * 1000),
		}
	}
	keys := []string{dataset.FieldSector, dataset.FieldIndustry}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Build(records, keys, dataset.FieldTotalEmissions); err != nil {
			b.Fatal(err)
		}
	}
}
