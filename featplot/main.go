// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command featplot summarizes how a target value or a precomputed
// model prediction varies across the buckets of one or two features
// of a CSV data set.
//
// The input CSV must have a header row. Simple one-feature target
// summaries can be specified entirely with flags:
//
//	featplot -feature Fare -target Survived titanic.csv
//
// One-hot feature groups, custom grids, two-feature interactions,
// and prediction summaries use a TOML spec file:
//
//	featplot -c plot.toml titanic.csv
//
// By default featplot writes an SVG plot; -table prints the summary
// table instead. Two-feature summaries always print as a table.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-infoplot/infoplot"
)

func main() {
	log.SetPrefix("featplot: ")
	log.SetFlags(0)

	var (
		flagConfig     = flag.String("c", "", "read plot spec from TOML `file`")
		flagFeature    = flag.String("feature", "", "feature `column`, or comma-separated one-hot columns")
		flagName       = flag.String("name", "", "display `name` for the feature (default: column name)")
		flagTarget     = flag.String("target", "", "target `column`, or comma-separated one-hot target columns")
		flagGrid       = flag.String("grid", "percentile", "grid `type`: percentile or equal")
		flagPoints     = flag.Int("points", 10, "number of grid points for numeric features")
		flagPercentile = flag.Bool("percentile", false, "show percentile ranges for percentile grids")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable      = flag.Bool("table", false, "output the summary table instead of a plot")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := new(Config)
	if *flagConfig != "" {
		var err error
		cfg, err = readConfig(*flagConfig)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *flagFeature != "" {
		fc := FeatureConfig{
			Name: *flagName,
			Grid: GridConfig{Type: *flagGrid, Points: *flagPoints},
		}
		if cols := strings.Split(*flagFeature, ","); len(cols) > 1 {
			fc.Columns = cols
		} else {
			fc.Column = cols[0]
		}
		cfg.Features = append(cfg.Features, fc)
	}
	if *flagTarget != "" {
		cfg.Targets = strings.Split(*flagTarget, ",")
	}
	if *flagPercentile {
		cfg.ShowPercentile = true
	}
	if err := cfg.check(); err != nil {
		log.Fatal(err)
	}

	// Read the data set.
	path := cfg.Data
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	in := os.Stdin
	if path != "" && path != "-" {
		var err error
		in, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()
	}
	data, err := readTable(in)
	if err != nil {
		log.Fatal(err)
	}

	s, err := summarize(cfg, data)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *flagOut != "" {
		out, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()
	}

	if *flagTable || len(cfg.Features) == 2 {
		table.Fprint(out, s.Table)
		return
	}
	p, ncols := plotSummary(s, plotTitle(cfg, s))
	p.WriteSVG(out, 400*ncols, 300)
}

// summarize dispatches to the infoplot entry point the config calls
// for.
func summarize(cfg *Config, data *table.Table) (*infoplot.Summary, error) {
	feats := make([]infoplot.Feature, len(cfg.Features))
	specs := make([]infoplot.GridSpec, len(cfg.Features))
	for i := range cfg.Features {
		var err error
		if feats[i], err = cfg.Features[i].feature(); err != nil {
			return nil, err
		}
		if specs[i], err = cfg.Features[i].Grid.spec(); err != nil {
			return nil, err
		}
	}

	if len(cfg.Features) == 1 {
		opts := infoplot.Options{Grid: specs[0], ShowPercentile: cfg.ShowPercentile}
		if p := cfg.Prediction; p != nil {
			opts.WhichClasses = p.Which
			return infoplot.Prediction(data, columnModel{p.Classes, p.Columns}, feats[0], opts)
		}
		return infoplot.Target(data, feats[0], cfg.Targets, opts)
	}

	opts := infoplot.InteractOptions{
		Grids:          [2]infoplot.GridSpec{specs[0], specs[1]},
		ShowPercentile: cfg.ShowPercentile,
	}
	pair := [2]infoplot.Feature{feats[0], feats[1]}
	if p := cfg.Prediction; p != nil {
		opts.WhichClasses = p.Which
		return infoplot.PredictionInteract(data, columnModel{p.Classes, p.Columns}, pair, opts)
	}
	return infoplot.TargetInteract(data, pair, cfg.Targets, opts)
}

func plotTitle(cfg *Config, s *infoplot.Summary) string {
	if cfg.Prediction != nil {
		return fmt.Sprintf("Prediction quartiles by %s", s.Features[0].Name)
	}
	return fmt.Sprintf("Mean %s by %s", strings.Join(cfg.Targets, ", "), s.Features[0].Name)
}
