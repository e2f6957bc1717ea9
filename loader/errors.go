// SPDX-License-Identifier: MIT
// Package: socialnet/loader
//
// errors.go - sentinel errors for the loader package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context (row, field) with %w.

package loader

import "errors"

// ErrGraphNil is returned when Load or Apply receives a nil *core.Graph.
var ErrGraphNil = errors.New("loader: graph is nil")

// ErrOpenFailed indicates that LoadFile could not open the data file.
// The underlying *fs.PathError is wrapped alongside it.
var ErrOpenFailed = errors.New("loader: cannot open data file")

// ErrTooFewFields indicates a row with fewer than id, name, handle.
// Classification: malformed row, skipped by Read.
var ErrTooFewFields = errors.New("loader: too few fields")

// ErrBadID indicates a user or neighbor id that is not a base-10 integer.
// Classification: malformed row, skipped by Read.
var ErrBadID = errors.New("loader: bad id")

// ErrSuspectRecord is returned by Record.Check for a row that loads but
// fails struct validation (negative id, empty handle, whitespace in handle).
// Classification: loaded with a warning, counted in Report.Flagged.
var ErrSuspectRecord = errors.New("loader: suspect record")
