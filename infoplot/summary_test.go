// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infoplot

import "testing"

func TestDisplayNum(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{1, "1"},
		{-3, "-3"},
		{0, "0"},
		{5.5, "5.5"},
		{-0.5, "-0.5"},
		{3.14159, "3.14"},
		{0.125, "0.13"},
		{2.999, "3"},
		{100, "100"},
	}
	for _, c := range cases {
		if got := displayNum(c.v); got != c.want {
			t.Errorf("displayNum(%v) should be %q; got %q", c.v, c.want, got)
		}
	}
}

func TestDisplayRanks(t *testing.T) {
	if got := displayRanks([]float64{50}); got != "50" {
		t.Errorf("single rank should be %q; got %q", "50", got)
	}
	if got := displayRanks([]float64{0, 25, 50}); got != "(0, 25, 50)" {
		t.Errorf("merged ranks should be %q; got %q", "(0, 25, 50)", got)
	}
}

func TestAssemble(t *testing.T) {
	b := &bucketing{
		feature: Col("f"),
		ftype:   Numeric,
		n:       2,
		labels:  []string{"[1, 5.5)", "[5.5, 10]"},
		ranks:   []string{"[0, 50)", "[50, 100]"},
	}
	s := assemble(b, []int{3, 7}, []aggResult{{"y", []float64{0.5, 1}}})
	want := []string{"x", "display_column", "percentile_column", "count", "y"}
	if !de(s.Table.Columns(), want) {
		t.Fatalf("columns should be %v; got %v", want, s.Table.Columns())
	}
	if !de(s.Table.Column("x"), []int{0, 1}) {
		t.Fatalf("x should be [0 1]; got %v", s.Table.Column("x"))
	}
	if !de(s.ValueCols, []string{"y"}) {
		t.Fatalf("value columns should be [y]; got %v", s.ValueCols)
	}
	if len(s.Features) != 1 || s.Features[0].Name != "f" {
		t.Fatalf("summary should describe feature f; got %+v", s.Features)
	}
}

func TestAssembleInteractPercentiles(t *testing.T) {
	b1 := &bucketing{
		feature: Col("a"), ftype: Numeric, n: 2,
		labels: []string{"[0, 1)", "[1, 2]"},
		ranks:  []string{"[0, 50)", "[50, 100]"},
	}
	// Only the first feature used a percentile grid.
	b2 := &bucketing{
		feature: Col("b"), ftype: Binary, n: 2,
		labels: []string{"b_0", "b_1"},
	}
	s := assembleInteract(b1, b2, []int{1, 2, 3, 4}, []aggResult{{"y", []float64{1, 2, 3, 4}}})
	want := []string{"x1", "x2", "display_column_1", "display_column_2", "percentile_column_1", "count", "y"}
	if !de(s.Table.Columns(), want) {
		t.Fatalf("columns should be %v; got %v", want, s.Table.Columns())
	}
	// x1-major ordering: percentile_column_1 repeats per x2 bucket.
	wantPC := []string{"[0, 50)", "[0, 50)", "[50, 100]", "[50, 100]"}
	if !de(s.Table.Column("percentile_column_1"), wantPC) {
		t.Fatalf("percentile_column_1 should be %v; got %v", wantPC, s.Table.Column("percentile_column_1"))
	}
	wantD2 := []string{"b_0", "b_1", "b_0", "b_1"}
	if !de(s.Table.Column("display_column_2"), wantD2) {
		t.Fatalf("display_column_2 should be %v; got %v", wantD2, s.Table.Column("display_column_2"))
	}
}
