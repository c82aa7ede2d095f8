// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infoplot

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/vec"
)

// A GridType selects how automatic grid boundaries are placed for a
// numeric feature.
type GridType int

const (
	// Percentile places boundaries at evenly spaced percentile
	// ranks of the observed values.
	Percentile GridType = iota

	// Equal places boundaries at evenly spaced values between the
	// minimum and maximum observed value.
	Equal
)

func (t GridType) String() string {
	switch t {
	case Percentile:
		return "percentile"
	case Equal:
		return "equal"
	}
	return fmt.Sprintf("GridType(%d)", int(t))
}

// A GridSpec controls how a numeric feature's values are discretized
// into buckets. The zero GridSpec is not useful; start from
// DefaultGrid.
//
// Out-of-range values follow one convention for every grid type: a
// value is below range if it is less than the first boundary, and
// above range if it is greater than the last boundary (greater than
// or equal when Endpoint is false). Out-of-range rows land in
// dedicated outlier buckets when ShowOutliers is set and are
// excluded from aggregation otherwise.
type GridSpec struct {
	// Type selects percentile or equal-width boundary placement. It
	// is ignored when Points is non-nil.
	Type GridType

	// NumPoints is the number of grid boundaries to generate.
	NumPoints int

	// PercentileRange restricts a Percentile grid to a sub-range of
	// percentile ranks, e.g. &[2]float64{5, 95}. Nil means 0-100.
	PercentileRange *[2]float64

	// Range restricts an Equal grid to a sub-range of values. Nil
	// means the full observed range.
	Range *[2]float64

	// Points, if non-nil, is a custom list of grid boundaries. It
	// overrides Type, NumPoints, and the ranges, and must contain
	// at least two distinct points.
	Points []float64

	// Endpoint includes the final generated boundary in the grid.
	// When false, the last boundary is dropped and values at the
	// remaining last boundary fall out of range.
	Endpoint bool

	// ShowOutliers retains out-of-range values in below-range and
	// above-range buckets rather than excluding them.
	ShowOutliers bool
}

// DefaultGrid returns the default grid specification: ten
// percentile-spaced boundaries covering the full value range.
func DefaultGrid() GridSpec {
	return GridSpec{Type: Percentile, NumPoints: 10, Endpoint: true}
}

// A grid is the resolved bucket structure for one numeric feature:
// strictly increasing boundaries plus optional virtual outlier
// buckets on either side.
type grid struct {
	points []float64

	// ranks holds the percentile ranks that produced each boundary.
	// It is nil for non-percentile grids. A boundary produced by
	// several ranks (duplicate percentile values) keeps all of them.
	ranks [][]float64

	lower, upper bool
	endpoint     bool
}

// buildGrid resolves spec against the observed values. NaN values
// are ignored. An all-identical value set produces a valid
// single-bucket grid rather than failing.
func buildGrid(values []float64, spec GridSpec) (*grid, error) {
	if spec.Points != nil {
		return buildCustomGrid(values, spec)
	}

	xs := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: no values to build a grid from", ErrGrid)
	}
	if spec.NumPoints < 2 {
		return nil, fmt.Errorf("%w: need at least 2 grid points, got %d", ErrGrid, spec.NumPoints)
	}

	g := &grid{endpoint: spec.Endpoint}
	switch spec.Type {
	case Percentile:
		lo, hi := 0.0, 100.0
		if r := spec.PercentileRange; r != nil {
			lo, hi = r[0], r[1]
		}
		if !(0 <= lo && lo < hi && hi <= 100) {
			return nil, fmt.Errorf("%w: bad percentile range [%v, %v]", ErrGrid, lo, hi)
		}
		ranks := vec.Linspace(lo, hi, spec.NumPoints)
		if !spec.Endpoint {
			ranks = ranks[:len(ranks)-1]
		}
		sorted := append([]float64(nil), xs...)
		sort.Float64s(sorted)
		points := make([]float64, len(ranks))
		for i, r := range ranks {
			points[i] = quantileSorted(sorted, r/100)
		}
		g.points, g.ranks = dedupRanked(points, ranks)

	case Equal:
		lo, hi := minMax(xs)
		if r := spec.Range; r != nil {
			lo, hi = r[0], r[1]
			if lo > hi {
				return nil, fmt.Errorf("%w: bad value range [%v, %v]", ErrGrid, lo, hi)
			}
		}
		points := vec.Linspace(lo, hi, spec.NumPoints)
		if !spec.Endpoint {
			points = points[:len(points)-1]
		}
		g.points = dedup(points)

	default:
		return nil, fmt.Errorf("%w: unknown grid type %v", ErrGrid, spec.Type)
	}

	g.markOutliers(xs, spec.ShowOutliers)
	return g, nil
}

func buildCustomGrid(values []float64, spec GridSpec) (*grid, error) {
	if len(spec.Points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 custom grid points, got %d", ErrGrid, len(spec.Points))
	}
	points := append([]float64(nil), spec.Points...)
	for _, p := range points {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("%w: custom grid point %v", ErrGrid, p)
		}
	}
	sort.Float64s(points)
	for i := 1; i < len(points); i++ {
		if points[i] == points[i-1] {
			return nil, fmt.Errorf("%w: custom grid points are not strictly increasing at %v", ErrGrid, points[i])
		}
	}

	g := &grid{points: points, endpoint: spec.Endpoint}
	xs := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}
	g.markOutliers(xs, spec.ShowOutliers)
	return g, nil
}

// markOutliers records which virtual outlier buckets the observed
// values require. Without ShowOutliers the grid keeps no outlier
// buckets and out-of-range rows are excluded at assignment.
func (g *grid) markOutliers(xs []float64, show bool) {
	if !show {
		return
	}
	for _, x := range xs {
		if g.belowRange(x) {
			g.lower = true
		}
		if g.aboveRange(x) {
			g.upper = true
		}
	}
}

func (g *grid) belowRange(v float64) bool {
	return v < g.points[0]
}

func (g *grid) aboveRange(v float64) bool {
	last := g.points[len(g.points)-1]
	if !g.endpoint {
		return v >= last
	}
	return v > last
}

// inner returns the number of non-outlier buckets. A degenerate
// single-boundary grid still has one bucket.
func (g *grid) inner() int {
	if len(g.points) < 2 {
		return 1
	}
	return len(g.points) - 1
}

// nbuckets returns the total bucket count, outlier buckets included.
func (g *grid) nbuckets() int {
	n := g.inner()
	if g.lower {
		n++
	}
	if g.upper {
		n++
	}
	return n
}

func minMax(xs []float64) (lo, hi float64) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return
}

// dedup removes repeated values from a sorted slice.
func dedup(xs []float64) []float64 {
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

// dedupRanked removes repeated boundary values from a sorted slice,
// merging the percentile ranks of the dropped duplicates into the
// kept boundary.
func dedupRanked(points, ranks []float64) ([]float64, [][]float64) {
	outP := points[:1]
	outR := [][]float64{{ranks[0]}}
	for i, p := range points[1:] {
		if p == outP[len(outP)-1] {
			last := len(outR) - 1
			outR[last] = append(outR[last], ranks[i+1])
			continue
		}
		outP = append(outP, p)
		outR = append(outR, []float64{ranks[i+1]})
	}
	return outP, outR
}
