// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infoplot

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/table"
)

// A Model supplies predictions for Prediction and
// PredictionInteract. It is an external collaborator: infoplot never
// trains or introspects a model beyond NClasses.
type Model interface {
	// NClasses returns the number of classes a classification model
	// predicts, or 0 for a regression model.
	NClasses() int

	// Predict returns prediction columns for the rows of t: one
	// column for a regression model, one probability column per
	// class for a classification model. Every column must hold
	// t.Len() values.
	Predict(t *table.Table) ([][]float64, error)
}

// predictionColumns runs the model and selects the prediction
// columns to aggregate: the sole column for regression, the positive
// class probability for binary classification, and one column per
// selected class for multiclass. which selects multiclass classes;
// nil means all, and the selection is applied in ascending order.
func predictionColumns(t *table.Table, m Model, which []int) ([]string, [][]float64, error) {
	n := m.NClasses()

	classes := which
	if n > 2 {
		if classes == nil {
			classes = make([]int, n)
			for i := range classes {
				classes[i] = i
			}
		} else {
			classes = append([]int(nil), classes...)
			sort.Ints(classes)
			for i, c := range classes {
				if c < 0 || c >= n {
					return nil, nil, fmt.Errorf("%w: class %d of a %d-class model", ErrClassSelection, c, n)
				}
				if i > 0 && classes[i-1] == c {
					return nil, nil, fmt.Errorf("%w: class %d selected twice", ErrClassSelection, c)
				}
			}
		}
	} else if which != nil {
		return nil, nil, fmt.Errorf("%w: WhichClasses set, but model is not multiclass (%d classes)", ErrClassSelection, n)
	}

	preds, err := m.Predict(t)
	if err != nil {
		return nil, nil, err
	}
	want := n
	if n < 2 {
		want = 1
	}
	if len(preds) != want {
		return nil, nil, fmt.Errorf("model returned %d prediction columns, want %d", len(preds), want)
	}
	for _, col := range preds {
		if len(col) != t.Len() {
			return nil, nil, fmt.Errorf("model returned %d predictions for %d rows", len(col), t.Len())
		}
	}

	switch {
	case n < 2:
		return []string{"prediction"}, preds[:1], nil
	case n == 2:
		return []string{"prediction"}, [][]float64{preds[1]}, nil
	}
	names := make([]string, len(classes))
	cols := make([][]float64, len(classes))
	for i, c := range classes {
		names[i] = fmt.Sprintf("prediction_%d", c)
		cols[i] = preds[c]
	}
	return names, cols, nil
}
