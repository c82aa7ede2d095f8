package main

import (
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-infoplot/infoplot"
)

// plotSummary builds a faceted plot of a one-feature summary: one
// facet per aggregate column plus one for the bucket counts, all
// sharing the bucket index on X.
func plotSummary(s *infoplot.Summary, title string) (*gg.Plot, int) {
	// Unpivot wants uniform value types, so lift count to float64.
	var cnt []float64
	slice.Convert(&cnt, s.Table.MustColumn("count"))
	data := table.NewBuilder(s.Table).Add("count", cnt).Done()

	cols := append([]string{"count"}, s.ValueCols...)
	g := table.Unpivot(data, "metric", "value", cols...)

	p := gg.NewPlot(g)
	p.SortBy("x")
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.FacetX{Col: "metric", SplitYScales: true})
	p.Add(gg.LayerLines{X: "x", Y: "value"})
	p.Add(gg.LayerPoints{X: "x", Y: "value"})
	if title != "" {
		p.Add(gg.Title(title))
	}
	return p, len(cols)
}
