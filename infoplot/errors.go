// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infoplot

import "errors"

// Error kinds returned by the infoplot API. All validation happens
// before any bucketing or aggregation, so a non-nil error means no
// partial result was computed. Callers test for a kind with
// errors.Is.
var (
	// ErrFeature reports a bad feature specification: no columns, a
	// column missing from the table, a non-numeric column, or a
	// one-hot group declared with fewer than two columns.
	ErrFeature = errors.New("invalid feature")

	// ErrGrid reports an unusable grid specification, such as fewer
	// than two custom cut points or non-monotonic custom points.
	ErrGrid = errors.New("invalid grid")

	// ErrTarget reports missing or unusable target columns.
	ErrTarget = errors.New("invalid target")

	// ErrClassSelection reports a WhichClasses entry that does not
	// name a class of the model, or a class selection applied to a
	// model that is not multiclass.
	ErrClassSelection = errors.New("invalid class selection")
)
