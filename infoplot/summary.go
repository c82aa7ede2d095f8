// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infoplot

import (
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// FeatureInfo describes one bucketed feature of a Summary for
// renderers: its display name, resolved type, and per-bucket labels.
type FeatureInfo struct {
	Name string
	Type FeatureType

	// Labels holds one display label per bucket, in bucket order:
	// an interval like "[1, 5.5)" for numeric buckets, "<0" or ">4"
	// for outlier buckets, "Name_0"/"Name_1" for binary features,
	// and the column names for one-hot features.
	Labels []string

	// Percentiles holds per-bucket percentile-range labels. It is
	// set only for percentile grids when Options.ShowPercentile.
	Percentiles []string
}

// A Summary is the per-bucket aggregation produced by Target,
// Prediction, and their interact variants. It is the sole artifact a
// rendering layer needs to draw bar, box, or heatmap charts.
type Summary struct {
	// Table holds one row per bucket (one feature) or per pair of
	// buckets (two features) in ascending bucket order, zero-count
	// buckets included. Its columns are the bucket indices ("x", or
	// "x1" and "x2"), the display label columns, the optional
	// percentile label columns, "count", and then ValueCols.
	Table *table.Table

	// Features describes the bucketed feature(s): one entry for
	// Target and Prediction, two for the interact variants.
	Features []FeatureInfo

	// ValueCols names the aggregate value columns of Table, in
	// request order.
	ValueCols []string
}

// An aggResult is one named aggregate column, dense over buckets.
type aggResult struct {
	name string
	vals []float64
}

// assemble builds the one-feature summary: every bucket appears,
// with count 0 and zero aggregates where no rows landed.
func assemble(b *bucketing, cnt []int, results []aggResult) *Summary {
	xs := make([]int, b.n)
	for i := range xs {
		xs[i] = i
	}
	tb := new(table.Builder).Add("x", xs).Add("display_column", b.labels)
	if b.ranks != nil {
		tb.Add("percentile_column", b.ranks)
	}
	tb.Add("count", cnt)
	cols := make([]string, len(results))
	for i, r := range results {
		tb.Add(r.name, r.vals)
		cols[i] = r.name
	}
	return &Summary{
		Table:     tb.Done(),
		Features:  []FeatureInfo{b.info()},
		ValueCols: cols,
	}
}

// assembleInteract builds the two-feature summary directly as a
// dense table over the full Cartesian product of bucket indices, in
// (x1, x2) lexicographic order. cnt and results are indexed by the
// dense key x1*n2 + x2.
func assembleInteract(b1, b2 *bucketing, cnt []int, results []aggResult) *Summary {
	n := b1.n * b2.n
	x1 := make([]int, n)
	x2 := make([]int, n)
	d1 := make([]string, n)
	d2 := make([]string, n)
	for i := 0; i < b1.n; i++ {
		for j := 0; j < b2.n; j++ {
			k := i*b2.n + j
			x1[k], x2[k] = i, j
			d1[k], d2[k] = b1.labels[i], b2.labels[j]
		}
	}
	tb := new(table.Builder).
		Add("x1", x1).
		Add("x2", x2).
		Add("display_column_1", d1).
		Add("display_column_2", d2)
	for fi, b := range []*bucketing{b1, b2} {
		if b.ranks == nil {
			continue
		}
		pc := make([]string, n)
		for k := 0; k < n; k++ {
			if fi == 0 {
				pc[k] = b.ranks[x1[k]]
			} else {
				pc[k] = b.ranks[x2[k]]
			}
		}
		tb.Add("percentile_column_"+strconv.Itoa(fi+1), pc)
	}
	tb.Add("count", cnt)
	cols := make([]string, len(results))
	for i, r := range results {
		tb.Add(r.name, r.vals)
		cols[i] = r.name
	}
	return &Summary{
		Table:     tb.Done(),
		Features:  []FeatureInfo{b1.info(), b2.info()},
		ValueCols: cols,
	}
}

// bucketLabels renders one display label per bucket of g, outlier
// buckets included.
func (g *grid) bucketLabels() []string {
	return g.labelBuckets(func(i int) string {
		return displayNum(g.points[i])
	})
}

// rankLabels renders the percentile range covered by each bucket of
// a percentile grid, in the same bracket convention as bucketLabels.
func (g *grid) rankLabels() []string {
	if g.ranks == nil {
		return nil
	}
	return g.labelBuckets(func(i int) string {
		return displayRanks(g.ranks[i])
	})
}

// labelBuckets builds interval labels from a per-boundary formatter.
// The final inner bucket closes with "]" when the grid includes its
// endpoint; outlier buckets render as "<first" and ">last".
func (g *grid) labelBuckets(boundary func(i int) string) []string {
	var out []string
	last := len(g.points) - 1
	if g.lower {
		out = append(out, "<"+boundary(0))
	}
	if last == 0 {
		b := boundary(0)
		out = append(out, "["+b+", "+b+"]")
	} else {
		for i := 0; i < last; i++ {
			right := ")"
			if g.endpoint && i == last-1 {
				right = "]"
			}
			out = append(out, "["+boundary(i)+", "+boundary(i+1)+right)
		}
	}
	if g.upper {
		op := ">"
		if !g.endpoint {
			op = ">="
		}
		out = append(out, op+boundary(last))
	}
	return out
}

// displayNum formats a grid value the way it appears in bucket
// labels: integers bare, otherwise the shortest of one or two
// decimal places.
func displayNum(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	if r := math.Round(v*10) / 10; r == v {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// displayRanks formats the percentile rank(s) of one boundary. A
// boundary that several ranks collapsed onto lists them all.
func displayRanks(ranks []float64) string {
	if len(ranks) == 1 {
		return displayNum(ranks[0])
	}
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = displayNum(r)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
