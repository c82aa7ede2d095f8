// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infoplot

import (
	"math"
	"sort"
)

// groupRows collects the row indices of each bucket. Excluded rows
// belong to no group.
func groupRows(keys []int, n int) [][]int {
	groups := make([][]int, n)
	for i, k := range keys {
		if k == excluded {
			continue
		}
		groups[k] = append(groups[k], i)
	}
	return groups
}

// counts returns the number of rows in each bucket.
func counts(groups [][]int) []int {
	out := make([]int, len(groups))
	for k, rows := range groups {
		out[k] = len(rows)
	}
	return out
}

// aggregate reduces col to one statistic per bucket, skipping NaN
// values. Buckets with no usable values keep the zero default so
// the summary stays dense.
func aggregate(groups [][]int, col []float64, f func([]float64) float64) []float64 {
	out := make([]float64, len(groups))
	var vals []float64
	for k, rows := range groups {
		vals = vals[:0]
		for _, i := range rows {
			if v := col[i]; !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
		if len(vals) == 0 {
			continue
		}
		out[k] = f(vals)
	}
	return out
}

// quantile returns the q'th quantile of xs using linear
// interpolation between order statistics. xs need not be sorted.
func quantile(xs []float64, q float64) float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	return quantileSorted(s, q)
}

// quantileSorted is quantile for already-sorted values.
func quantileSorted(s []float64, q float64) float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return s[0]
	}
	if q >= 1 {
		return s[len(s)-1]
	}
	h := q * float64(len(s)-1)
	fl, frac := math.Modf(h)
	k := int(fl)
	if frac == 0 || k+1 >= len(s) {
		return s[k]
	}
	return s[k] + frac*(s[k+1]-s[k])
}
