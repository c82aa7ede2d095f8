// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infoplot

import (
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestAssignNumeric(t *testing.T) {
	g, err := buildGrid(ten(), GridSpec{Type: Percentile, NumPoints: 3, Endpoint: true})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		v    float64
		want int
	}{
		{1, 0},    // first boundary
		{3, 0},    // interior
		{5.5, 1},  // middle boundary starts the second bucket
		{9.9, 1},  // interior
		{10, 1},   // last boundary, endpoint grid: closed
		{0.5, excluded},
		{10.5, excluded},
		{nan, excluded},
	}
	for _, c := range cases {
		if got := g.assign(c.v); got != c.want {
			t.Errorf("assign(%v) should be %v; got %v", c.v, c.want, got)
		}
	}
}

func TestAssignNumericOutliers(t *testing.T) {
	g, err := buildGrid([]float64{-5, 1, 2, 3, 100}, GridSpec{Points: []float64{0, 4}, Endpoint: true, ShowOutliers: true})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		v    float64
		want int
	}{
		{-5, 0}, // below-range bucket
		{0, 1},
		{2, 1},
		{4, 1},   // closed upper end
		{100, 2}, // above-range bucket
		{nan, excluded},
	}
	for _, c := range cases {
		if got := g.assign(c.v); got != c.want {
			t.Errorf("assign(%v) should be %v; got %v", c.v, c.want, got)
		}
	}
}

func TestAssignBinary(t *testing.T) {
	cases := []struct {
		v    float64
		want int
	}{{0, 0}, {1, 1}, {nan, excluded}}
	for _, c := range cases {
		if got := assignBinary(c.v); got != c.want {
			t.Errorf("assignBinary(%v) should be %v; got %v", c.v, c.want, got)
		}
	}
}

func TestAssignOneHot(t *testing.T) {
	cols := [][]float64{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 0, 1},
		{0, 0, 1, 0, 0},
	}
	want := []int{0, 1, 2, excluded, excluded} // all-zero and double-one rows drop
	for row, w := range want {
		if got := assignOneHot(cols, row); got != w {
			t.Errorf("assignOneHot(row %d) should be %v; got %v", row, w, got)
		}
	}
}

func TestBucketizeCoverage(t *testing.T) {
	// Every non-excluded row lands in exactly one bucket with an
	// index inside [0, n).
	tab := new(table.Builder).
		Add("Fare", []float64{1, 2, 3, nan, 5, 6, 7, 8, 9, 10}).
		Done()
	b, err := bucketize(tab, Col("Fare"), DefaultGrid(), false)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.x) != tab.Len() {
		t.Fatalf("bucketize should assign all %d rows; got %d", tab.Len(), len(b.x))
	}
	kept := 0
	for i, x := range b.x {
		if x == excluded {
			continue
		}
		if x < 0 || x >= b.n {
			t.Fatalf("row %d bucket %d out of range [0, %d)", i, x, b.n)
		}
		kept++
	}
	if kept != 9 {
		t.Fatalf("should keep 9 rows (one NaN); kept %d", kept)
	}
	if len(b.labels) != b.n {
		t.Fatalf("should have %d labels; got %d", b.n, len(b.labels))
	}
}

func TestCrossKeys(t *testing.T) {
	b1 := &bucketing{n: 2, x: []int{0, 1, excluded, 1}}
	b2 := &bucketing{n: 3, x: []int{2, 0, 1, excluded}}
	want := []int{2, 3, excluded, excluded}
	if got := crossKeys(b1, b2); !de(got, want) {
		t.Fatalf("crossKeys should be %v; got %v", want, got)
	}
}
