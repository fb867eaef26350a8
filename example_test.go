package carbonviz_test

import (
	"fmt"

	"github.com/arloliu/carbonviz"
	"github.com/arloliu/carbonviz/dataset"
	"github.com/arloliu/carbonviz/filter"
	"github.com/arloliu/carbonviz/hierarchy"
	"github.com/arloliu/carbonviz/regression"
)

func ExampleFitLinear() {
	fit, err := carbonviz.FitLinear([]regression.Sample{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("slope=%.1f intercept=%.1f r=%.1f\n", fit.Slope, fit.Intercept, fit.R)
	// Output: slope=2.0 intercept=0.0 r=1.0
}

func ExampleTreemap() {
	companies := []dataset.Company{
		{Company: "A", Sector: "Tech", TotalEmissions: dataset.Metric(10)},
		{Company: "B", Sector: "Retail", TotalEmissions: dataset.Metric(40)},
		{Company: "C", Sector: "Tech", TotalEmissions: dataset.Metric(20)},
	}

	spec, _ := filter.New()
	tm, err := carbonviz.Treemap(companies, spec, []string{dataset.FieldSector}, dataset.FieldTotalEmissions)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, sector := range tm.Root.Children {
		fmt.Printf("%s %.0f\n", sector.Name, hierarchy.Sum(sector))
	}
	fmt.Println(tm.Caption())
	// Output:
	// Retail 40
	// Tech 30
	// Over a year, the websites of these 3 companies emitted 70 tonnes of CO₂.
}
