// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// readTable reads CSV data with a header row into a table. A column
// whose values all parse as numbers becomes []float64, with empty,
// "NA", and "NaN" cells mapped to NaN; any other column stays
// []string.
func readTable(r io.Reader) (*table.Table, error) {
	recs, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header, rows := recs[0], recs[1:]

	b := new(table.Builder)
	for j, name := range header {
		vals := make([]string, len(rows))
		for i, rec := range rows {
			vals[i] = rec[j]
		}
		if nums, ok := parseNums(vals); ok {
			b.Add(name, nums)
		} else {
			b.Add(name, vals)
		}
	}
	return b.Done(), nil
}

func parseNums(vals []string) ([]float64, bool) {
	nums := make([]float64, len(vals))
	numeric := false
	for i, s := range vals {
		switch s {
		case "", "NA", "NaN", "nan":
			nums[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		nums[i] = v
		numeric = true
	}
	return nums, numeric
}
