// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infoplot

import (
	"math"
	"sort"

	"github.com/aclements/go-gg/table"
)

// excluded marks rows that take part in no bucket: NaN feature
// values, out-of-range values without outlier buckets, and ambiguous
// one-hot encodings.
const excluded = -1

// assign maps a single numeric value to its bucket index in g, or
// excluded. Bucket i covers [points[i], points[i+1]); the final
// bucket is closed on both ends when the grid includes its endpoint.
func (g *grid) assign(v float64) int {
	if math.IsNaN(v) {
		return excluded
	}
	off := 0
	if g.lower {
		off = 1
	}
	switch {
	case g.belowRange(v):
		if g.lower {
			return 0
		}
		return excluded
	case g.aboveRange(v):
		if g.upper {
			return off + g.inner()
		}
		return excluded
	}
	if len(g.points) < 2 {
		// Degenerate grid: the single bucket holds exactly points[0].
		return off
	}
	i := sort.SearchFloat64s(g.points, v)
	if i == len(g.points) || g.points[i] != v {
		i--
	}
	if i == len(g.points)-1 {
		// v equals the final boundary of an endpoint grid.
		i--
	}
	return off + i
}

// assignBinary maps a 0/1 value to its bucket index.
func assignBinary(v float64) int {
	switch v {
	case 0:
		return 0
	case 1:
		return 1
	}
	return excluded
}

// assignOneHot returns the position of the single column equal to 1
// in the given row, or excluded if no column or more than one column
// is set. cols is indexed [column][row].
func assignOneHot(cols [][]float64, row int) int {
	x := excluded
	for j := range cols {
		if cols[j][row] == 1 {
			if x != excluded {
				return excluded
			}
			x = j
		}
	}
	return x
}

// A bucketing is one feature resolved against the data: its type,
// bucket count, per-row bucket assignment, and display labels.
type bucketing struct {
	feature Feature
	ftype   FeatureType
	n       int
	x       []int // per-row bucket index or excluded

	labels []string
	ranks  []string // percentile labels, nil unless requested
}

// bucketize classifies f against t and assigns every row of t to a
// bucket. spec applies only to numeric features.
func bucketize(t *table.Table, f Feature, spec GridSpec, showPercentile bool) (*bucketing, error) {
	ft, err := Classify(t, f)
	if err != nil {
		return nil, err
	}
	b := &bucketing{feature: f, ftype: ft}

	switch ft {
	case Binary:
		xs, err := numColumn(t, f.Columns[0])
		if err != nil {
			return nil, err
		}
		b.n = 2
		b.x = make([]int, len(xs))
		for i, v := range xs {
			b.x[i] = assignBinary(v)
		}
		b.labels = []string{f.Name + "_0", f.Name + "_1"}

	case Onehot:
		cols := make([][]float64, len(f.Columns))
		for j, col := range f.Columns {
			if cols[j], err = numColumn(t, col); err != nil {
				return nil, err
			}
		}
		b.n = len(cols)
		b.x = make([]int, t.Len())
		for i := range b.x {
			b.x[i] = assignOneHot(cols, i)
		}
		b.labels = append([]string(nil), f.Columns...)

	case Numeric:
		xs, err := numColumn(t, f.Columns[0])
		if err != nil {
			return nil, err
		}
		g, err := buildGrid(xs, spec)
		if err != nil {
			return nil, err
		}
		b.n = g.nbuckets()
		b.x = make([]int, len(xs))
		for i, v := range xs {
			b.x[i] = g.assign(v)
		}
		b.labels = g.bucketLabels()
		if showPercentile {
			b.ranks = g.rankLabels()
		}
	}
	return b, nil
}

func (b *bucketing) info() FeatureInfo {
	return FeatureInfo{
		Name:        b.feature.Name,
		Type:        b.ftype,
		Labels:      b.labels,
		Percentiles: b.ranks,
	}
}

// crossKeys combines two per-feature bucket assignments into a
// single dense key x1*n2 + x2, enumerating the full Cartesian
// product of bucket pairs. A row excluded by either feature stays
// excluded.
func crossKeys(b1, b2 *bucketing) []int {
	keys := make([]int, len(b1.x))
	for i := range keys {
		if b1.x[i] == excluded || b2.x[i] == excluded {
			keys[i] = excluded
			continue
		}
		keys[i] = b1.x[i]*b2.n + b2.x[i]
	}
	return keys
}
