// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infoplot

import (
	"math"
	"testing"
)

func TestQuantile(t *testing.T) {
	cases := []struct {
		xs   []float64
		q    float64
		want float64
	}{
		{[]float64{1, 2, 3, 4}, 0.25, 1.75},
		{[]float64{1, 2, 3, 4}, 0.5, 2.5},
		{[]float64{1, 2, 3, 4}, 0.75, 3.25},
		{[]float64{3, 1, 2}, 0.5, 2}, // unsorted input
		{[]float64{1, 2, 3}, 0.25, 1.5},
		{[]float64{1, 2, 3}, 0.75, 2.5},
		{[]float64{5}, 0.5, 5},
		{[]float64{1, 10}, 0, 1},
		{[]float64{1, 10}, 1, 10},
	}
	for _, c := range cases {
		if got := quantile(c.xs, c.q); !approx(got, c.want) {
			t.Errorf("quantile(%v, %v) should be %v; got %v", c.xs, c.q, c.want, got)
		}
	}
	if got := quantile(nil, 0.5); !math.IsNaN(got) {
		t.Errorf("quantile of no values should be NaN; got %v", got)
	}
}

func TestGroupRows(t *testing.T) {
	keys := []int{0, 2, excluded, 0, 1, excluded}
	groups := groupRows(keys, 3)
	if want := [][]int{{0, 3}, {4}, {1}}; !de(groups, want) {
		t.Fatalf("groups should be %v; got %v", want, groups)
	}
	if want := []int{2, 1, 1}; !de(counts(groups), want) {
		t.Fatalf("counts should be %v; got %v", want, counts(groups))
	}
}

func TestAggregate(t *testing.T) {
	groups := [][]int{{0, 1, 2}, {3}, nil}
	col := []float64{1, nan, 3, 7}
	got := aggregate(groups, col, func(xs []float64) float64 {
		sum := 0.0
		for _, x := range xs {
			sum += x
		}
		return sum
	})
	// NaN values are skipped and the empty bucket keeps the dense
	// zero default.
	if want := []float64{4, 7, 0}; !de(got, want) {
		t.Fatalf("aggregate should be %v; got %v", want, got)
	}
}
