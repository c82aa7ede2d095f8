// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infoplot

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// A Feature identifies the feature under investigation: either a
// single column, or a group of one-hot encoded columns that together
// represent one categorical feature.
type Feature struct {
	// Name is the display name of the feature. It need not be a
	// column name.
	Name string

	// Columns is the column of the feature in the data table or, for
	// a one-hot feature, its group of columns.
	Columns []string

	oneHot bool
}

// Col returns a Feature for a single data column.
func Col(name string) Feature {
	return Feature{Name: name, Columns: []string{name}}
}

// OneHot returns a Feature for a group of one-hot encoded columns.
// The group must contain at least two columns; within each row,
// exactly one of them is expected to be 1.
func OneHot(name string, columns ...string) Feature {
	return Feature{Name: name, Columns: columns, oneHot: true}
}

// A FeatureType classifies how a feature's values map to buckets.
type FeatureType int

const (
	// Binary features take only the values 0 and 1 and get one
	// bucket per value.
	Binary FeatureType = iota

	// Onehot features are groups of 0/1 columns and get one bucket
	// per column.
	Onehot

	// Numeric features are discretized on a grid of boundaries.
	Numeric
)

func (t FeatureType) String() string {
	switch t {
	case Binary:
		return "binary"
	case Onehot:
		return "onehot"
	case Numeric:
		return "numeric"
	}
	return fmt.Sprintf("FeatureType(%d)", int(t))
}

// Classify determines the FeatureType of f given the data in t.
//
// A feature with two or more columns is Onehot. A single-column
// feature whose non-NaN values are all 0 or 1 is Binary; any other
// single-column feature is Numeric. Classification happens once per
// call, at entry; the per-row bucketing never re-inspects types.
func Classify(t *table.Table, f Feature) (FeatureType, error) {
	if len(f.Columns) == 0 {
		return 0, fmt.Errorf("%w: feature %q has no columns", ErrFeature, f.Name)
	}
	if f.oneHot && len(f.Columns) < 2 {
		return 0, fmt.Errorf("%w: one-hot feature %q needs at least 2 columns, got %d", ErrFeature, f.Name, len(f.Columns))
	}
	if len(f.Columns) >= 2 {
		for _, col := range f.Columns {
			if _, err := numColumn(t, col); err != nil {
				return 0, fmt.Errorf("%w: %v", ErrFeature, err)
			}
		}
		return Onehot, nil
	}

	xs, err := numColumn(t, f.Columns[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFeature, err)
	}
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if x != 0 && x != 1 {
			return Numeric, nil
		}
	}
	return Binary, nil
}

// numColumn extracts column col of t as []float64, converting from
// any numeric column type. NaN marks missing values. The result may
// alias the table's column; callers must not modify it.
func numColumn(t *table.Table, col string) ([]float64, error) {
	c := t.Column(col)
	if c == nil {
		return nil, fmt.Errorf("column %q not in table", col)
	}
	if xs, ok := c.([]float64); ok {
		return xs, nil
	}
	switch reflect.TypeOf(c).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32:
	default:
		return nil, fmt.Errorf("column %q is %T, not numeric", col, c)
	}
	var xs []float64
	slice.Convert(&xs, c)
	return xs, nil
}
