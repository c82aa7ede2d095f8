// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package infoplot summarizes how a target variable or a model's
// predictions vary across the values of one or two features.
//
// Feature values are discretized into grid buckets (percentile,
// equal-width, or custom boundaries for numeric features; one bucket
// per category for binary and one-hot features) and the target or
// prediction columns are aggregated within each bucket into a dense
// summary table: per-bucket counts, means for targets, and quartiles
// for predictions. The summary is an ordinary go-gg table, so it can
// be printed, joined, or fed to a renderer directly.
//
// All computation is pure and call-scoped: input tables are never
// modified and nothing is shared across calls.
package infoplot

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// Options control bucketing and presentation for Target and
// Prediction. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// Grid controls how a numeric feature is discretized. It is
	// ignored for binary and one-hot features.
	Grid GridSpec

	// ShowPercentile adds a percentile_column of per-bucket
	// percentile ranges to the summary of a percentile grid.
	ShowPercentile bool

	// WhichClasses selects the classes of a multiclass model whose
	// probability columns are aggregated, in ascending order. Nil
	// means all classes. Only Prediction uses it.
	WhichClasses []int
}

// DefaultOptions returns Options with the default grid.
func DefaultOptions() Options {
	return Options{Grid: DefaultGrid()}
}

// InteractOptions control TargetInteract and PredictionInteract,
// with one grid specification per feature.
type InteractOptions struct {
	Grids          [2]GridSpec
	ShowPercentile bool
	WhichClasses   []int
}

// DefaultInteractOptions returns InteractOptions with default grids
// for both features.
func DefaultInteractOptions() InteractOptions {
	return InteractOptions{Grids: [2]GridSpec{DefaultGrid(), DefaultGrid()}}
}

// Target summarizes the mean of each target column across the
// buckets of feature. For a multiclass problem, targets lists the
// one-hot encoded target columns; otherwise it holds the single
// target column.
//
// The summary has columns x, display_column, optionally
// percentile_column, count, and one mean column per target, named
// after the target.
func Target(t *table.Table, feature Feature, targets []string, opts Options) (*Summary, error) {
	tcols, err := targetColumns(t, targets)
	if err != nil {
		return nil, err
	}
	b, err := bucketize(t, feature, opts.Grid, opts.ShowPercentile)
	if err != nil {
		return nil, err
	}
	groups := groupRows(b.x, b.n)
	results := make([]aggResult, len(targets))
	for i, name := range targets {
		results[i] = aggResult{name, aggregate(groups, tcols[i], stats.Mean)}
	}
	return assemble(b, counts(groups), results), nil
}

// Prediction summarizes the distribution of a model's predictions
// across the buckets of feature: per-bucket quartiles q1, q2, and q3
// of each prediction column, named "<col>_q1" and so on.
func Prediction(t *table.Table, m Model, feature Feature, opts Options) (*Summary, error) {
	names, pcols, err := predictionColumns(t, m, opts.WhichClasses)
	if err != nil {
		return nil, err
	}
	b, err := bucketize(t, feature, opts.Grid, opts.ShowPercentile)
	if err != nil {
		return nil, err
	}
	groups := groupRows(b.x, b.n)
	return assemble(b, counts(groups), quartileResults(groups, names, pcols)), nil
}

// TargetInteract summarizes the mean of each target column across
// the Cartesian product of two features' buckets. Every bucket
// combination appears in the summary, unobserved ones with count 0
// and zero aggregates.
func TargetInteract(t *table.Table, features [2]Feature, targets []string, opts InteractOptions) (*Summary, error) {
	tcols, err := targetColumns(t, targets)
	if err != nil {
		return nil, err
	}
	b1, b2, groups, err := bucketizeInteract(t, features, opts)
	if err != nil {
		return nil, err
	}
	results := make([]aggResult, len(targets))
	for i, name := range targets {
		results[i] = aggResult{name, aggregate(groups, tcols[i], stats.Mean)}
	}
	return assembleInteract(b1, b2, counts(groups), results), nil
}

// PredictionInteract summarizes prediction quartiles across the
// Cartesian product of two features' buckets.
func PredictionInteract(t *table.Table, m Model, features [2]Feature, opts InteractOptions) (*Summary, error) {
	names, pcols, err := predictionColumns(t, m, opts.WhichClasses)
	if err != nil {
		return nil, err
	}
	b1, b2, groups, err := bucketizeInteract(t, features, opts)
	if err != nil {
		return nil, err
	}
	return assembleInteract(b1, b2, counts(groups), quartileResults(groups, names, pcols)), nil
}

func bucketizeInteract(t *table.Table, features [2]Feature, opts InteractOptions) (b1, b2 *bucketing, groups [][]int, err error) {
	if b1, err = bucketize(t, features[0], opts.Grids[0], opts.ShowPercentile); err != nil {
		return nil, nil, nil, err
	}
	if b2, err = bucketize(t, features[1], opts.Grids[1], opts.ShowPercentile); err != nil {
		return nil, nil, nil, err
	}
	groups = groupRows(crossKeys(b1, b2), b1.n*b2.n)
	return b1, b2, groups, nil
}

func quartileResults(groups [][]int, names []string, cols [][]float64) []aggResult {
	quartiles := []struct {
		suffix string
		q      float64
	}{{"q1", 0.25}, {"q2", 0.5}, {"q3", 0.75}}

	var results []aggResult
	for i, name := range names {
		col := cols[i]
		for _, qt := range quartiles {
			q := qt.q
			results = append(results, aggResult{
				name + "_" + qt.suffix,
				aggregate(groups, col, func(xs []float64) float64 { return quantile(xs, q) }),
			})
		}
	}
	return results
}

func targetColumns(t *table.Table, targets []string) ([][]float64, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: no target columns", ErrTarget)
	}
	cols := make([][]float64, len(targets))
	for i, name := range targets {
		xs, err := numColumn(t, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTarget, err)
		}
		cols[i] = xs
	}
	return cols, nil
}
