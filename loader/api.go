// SPDX-License-Identifier: MIT
// Package: socialnet/loader
//
// api.go - public entry-points for the loader package.
//
// Design contract:
//   - Read parses rows; only rows with too few fields or non-integer ids are
//     dropped. Suspect rows (Record.Check) load with a warning.
//   - Apply replays records into core.Graph in record order:
//     AddUser, then AddConnection(id, n) for each neighbor.
//   - Load/LoadFile compose the two and log a summary.
//   - Determinism: same input ⇒ identical adjacency lists.

package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/socialnet/core"
)

// Report summarizes one Read/Load run.
type Report struct {
	// Rows is the number of data rows encountered (comments and blank lines excluded).
	Rows int

	// Accepted is the number of rows that parsed.
	Accepted int

	// Flagged is the number of accepted rows that failed Record.Check.
	Flagged int

	// Skipped is the number of malformed rows dropped.
	Skipped int
}

// Read parses rows from r into records.
//
// Malformed rows (too few fields, non-integer ids, CSV syntax errors) are
// skipped, counted in Report.Skipped, and logged at warn level. Rows that
// fail Record.Check are kept, counted in Report.Flagged, and logged at warn
// level. Only I/O failures and context cancellation abort the read.
//
// Complexity: O(total input size).
func Read(ctx context.Context, r io.Reader, opts ...Option) ([]Record, *Report, error) {
	cfg := newLoaderConfig(opts...)

	cr := csv.NewReader(r)
	cr.Comma = cfg.delimiter
	cr.Comment = cfg.comment
	cr.FieldsPerRecord = -1 // neighbor lists vary in length
	cr.LazyQuotes = true

	report := &Report{}
	var records []Record
	for {
		if err := ctx.Err(); err != nil {
			return nil, report, err
		}

		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, report, fmt.Errorf("loader: read: %w", err)
			}
			report.Rows++
			report.Skipped++
			cfg.logger.Warn("skipping unparsable row",
				zap.Int("line", pe.StartLine),
				zap.Error(err),
			)
			continue
		}
		report.Rows++

		line, _ := cr.FieldPos(0)
		rec, err := ParseRecord(fields)
		if err != nil {
			report.Skipped++
			cfg.logger.Warn("skipping malformed row",
				zap.Int("line", line),
				zap.Int("fields", len(fields)),
				zap.Error(err),
			)
			continue
		}
		rec.Line = line
		if err = rec.Check(); err != nil {
			report.Flagged++
			cfg.logger.Warn("loading suspect row",
				zap.Int("line", line),
				zap.Int("id", rec.ID),
				zap.Error(err),
			)
		}
		records = append(records, rec)
		report.Accepted++
	}

	return records, report, nil
}

// Apply replays records into g in order: AddUser, then one AddConnection per
// neighbor. The first core error aborts with the row's line attached; users
// and connections applied before it stay in g.
//
// Complexity: O(Σ (1 + len(rec.Neighbors))).
func Apply(g *core.Graph, records []Record) error {
	if g == nil {
		return ErrGraphNil
	}
	for _, rec := range records {
		g.AddUser(rec.ID, rec.Name, rec.Handle)
		for _, n := range rec.Neighbors {
			if err := g.AddConnection(rec.ID, n); err != nil {
				return fmt.Errorf("loader: line %d: %w", rec.Line, err)
			}
		}
	}

	return nil
}

// Load reads records from r and applies them to g.
func Load(ctx context.Context, g *core.Graph, r io.Reader, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := newLoaderConfig(opts...)

	records, report, err := Read(ctx, r, opts...)
	if err != nil {
		return report, err
	}
	if err = Apply(g, records); err != nil {
		return report, err
	}

	cfg.logger.Info("graph loaded",
		zap.Int("rows", report.Rows),
		zap.Int("accepted", report.Accepted),
		zap.Int("skipped", report.Skipped),
		zap.Int("flagged", report.Flagged),
		zap.Int("users", g.UserCount()),
		zap.Int("connections", g.ConnectionCount()),
	)

	return report, nil
}

// LoadFile opens path and loads it into g.
//
// Errors:
//   - ErrOpenFailed (joined with the *fs.PathError) when the file cannot be opened.
//   - anything Load returns.
func LoadFile(ctx context.Context, g *core.Graph, path string, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	defer f.Close()

	return Load(ctx, g, f, opts...)
}
