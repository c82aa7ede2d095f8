// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-infoplot/infoplot"
)

// A Config is the TOML plot specification read with -c. Flags cover
// the simple one-feature cases; the spec file covers everything
// else: one-hot groups, custom grids, two-feature interactions, and
// precomputed prediction columns.
type Config struct {
	// Data is the CSV file to read. A path argument on the command
	// line overrides it.
	Data string `toml:"data"`

	// Targets lists the target column(s) to summarize: one column,
	// or a group of one-hot target columns for multiclass.
	Targets []string `toml:"targets"`

	// Prediction, if set, summarizes precomputed prediction columns
	// instead of targets.
	Prediction *PredictionConfig `toml:"prediction"`

	// ShowPercentile adds percentile-range columns to percentile
	// grid summaries.
	ShowPercentile bool `toml:"show_percentile"`

	// Features holds one or two [[feature]] blocks.
	Features []FeatureConfig `toml:"feature"`
}

// A PredictionConfig names prediction columns already present in the
// data, typically exported from a trained model.
type PredictionConfig struct {
	// Columns holds the prediction column(s): one for regression,
	// one probability column per class for classification.
	Columns []string `toml:"columns"`

	// Classes is the model's class count; 0 means regression.
	Classes int `toml:"classes"`

	// Which selects the multiclass classes to summarize.
	Which []int `toml:"which"`
}

// A FeatureConfig is one [[feature]] block.
type FeatureConfig struct {
	Name    string     `toml:"name"`
	Column  string     `toml:"column"`
	Columns []string   `toml:"columns"` // one-hot group
	Grid    GridConfig `toml:"grid"`
}

// A GridConfig is the [feature.grid] table.
type GridConfig struct {
	Type            string    `toml:"type"` // "percentile" (default) or "equal"
	Points          int       `toml:"points"`
	Custom          []float64 `toml:"custom"`
	PercentileRange []float64 `toml:"percentile_range"`
	Range           []float64 `toml:"range"`
	NoEndpoint      bool      `toml:"no_endpoint"`
	ShowOutliers    bool      `toml:"show_outliers"`
}

func readConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) check() error {
	if len(c.Features) == 0 || len(c.Features) > 2 {
		return fmt.Errorf("need 1 or 2 features, got %d", len(c.Features))
	}
	if len(c.Targets) == 0 && c.Prediction == nil {
		return fmt.Errorf("need targets or a [prediction] block")
	}
	if len(c.Targets) > 0 && c.Prediction != nil {
		return fmt.Errorf("targets and [prediction] are mutually exclusive")
	}
	if p := c.Prediction; p != nil && len(p.Columns) == 0 {
		return fmt.Errorf("[prediction] needs columns")
	}
	return nil
}

func (f *FeatureConfig) feature() (infoplot.Feature, error) {
	switch {
	case f.Column != "" && len(f.Columns) > 0:
		return infoplot.Feature{}, fmt.Errorf("feature %q: column and columns are mutually exclusive", f.Name)
	case f.Column != "":
		ft := infoplot.Col(f.Column)
		if f.Name != "" {
			ft.Name = f.Name
		}
		return ft, nil
	case len(f.Columns) > 0:
		name := f.Name
		if name == "" {
			name = f.Columns[0]
		}
		return infoplot.OneHot(name, f.Columns...), nil
	}
	return infoplot.Feature{}, fmt.Errorf("feature %q: no column(s) given", f.Name)
}

func (g *GridConfig) spec() (infoplot.GridSpec, error) {
	spec := infoplot.DefaultGrid()
	switch g.Type {
	case "", "percentile":
	case "equal":
		spec.Type = infoplot.Equal
	default:
		return spec, fmt.Errorf("unknown grid type %q", g.Type)
	}
	if g.Points != 0 {
		spec.NumPoints = g.Points
	}
	if g.Custom != nil {
		spec.Points = append([]float64(nil), g.Custom...)
	}
	if g.PercentileRange != nil {
		r, err := pair(g.PercentileRange)
		if err != nil {
			return spec, err
		}
		spec.PercentileRange = r
	}
	if g.Range != nil {
		r, err := pair(g.Range)
		if err != nil {
			return spec, err
		}
		spec.Range = r
	}
	spec.Endpoint = !g.NoEndpoint
	spec.ShowOutliers = g.ShowOutliers
	return spec, nil
}

func pair(xs []float64) (*[2]float64, error) {
	if len(xs) != 2 {
		return nil, fmt.Errorf("range needs exactly 2 values, got %d", len(xs))
	}
	return &[2]float64{xs[0], xs[1]}, nil
}

// columnModel adapts precomputed prediction columns stored in the
// data table to the infoplot.Model interface.
type columnModel struct {
	classes int
	cols    []string
}

func (m columnModel) NClasses() int { return m.classes }

func (m columnModel) Predict(t *table.Table) ([][]float64, error) {
	out := make([][]float64, len(m.cols))
	for i, col := range m.cols {
		c := t.Column(col)
		if c == nil {
			return nil, fmt.Errorf("prediction column %q not in table", col)
		}
		xs, ok := c.([]float64)
		if !ok {
			return nil, fmt.Errorf("prediction column %q is %T, not numeric", col, c)
		}
		out[i] = xs
	}
	return out, nil
}
