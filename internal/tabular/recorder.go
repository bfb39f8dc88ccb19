package tabular

import (
	"context"

	"festfusion/internal/domain/archive"
	"festfusion/pkg/logger"
)

// Recorder appends submission rows to the worksheet, repairing the header
// first when it drifts from the canonical schema. Repair is destructive and
// all-or-nothing: row 1 is replaced, existing data columns are not migrated.
type Recorder struct {
	ws  Worksheet
	log *logger.Logger
}

func NewRecorder(ws Worksheet, log *logger.Logger) *Recorder {
	return &Recorder{ws: ws, log: log}
}

// Append writes one record at the next free row. The computed index can lose
// a race against a concurrent writer; the unconditional append fallback
// accepts whatever position the remote service picks.
func (r *Recorder) Append(ctx context.Context, rec archive.Record) error {
	if err := r.repairHeader(ctx); err != nil {
		return err
	}

	row := rec.Row()

	all, err := r.ws.AllValues(ctx)
	if err != nil {
		return err
	}
	next := len(all) + 1

	if err := r.ws.InsertRow(ctx, next, row); err != nil {
		if r.log != nil {
			r.log.Warnf("positional insert at row %d failed, appending instead: %s", next, err)
		}
		return r.ws.AppendRow(ctx, row)
	}
	return nil
}

// repairHeader verifies row 1 cell-by-cell against the canonical header and
// rewrites it on any mismatch. A second call observes the repaired header and
// does nothing, so repeated appends never stack header rows.
func (r *Recorder) repairHeader(ctx context.Context) error {
	current, err := r.ws.RowValues(ctx, 1)
	if err != nil {
		return err
	}
	if headerMatches(current) {
		return nil
	}

	if r.log != nil {
		r.log.Warnf("worksheet header mismatch, rewriting canonical schema v%d", archive.SchemaVersion)
	}
	if len(current) > 0 {
		if err := r.ws.DeleteRow(ctx, 1); err != nil {
			return err
		}
	}
	return r.ws.InsertRow(ctx, 1, archive.Header)
}

func headerMatches(row []string) bool {
	if len(row) < len(archive.Header) {
		return false
	}
	for i, want := range archive.Header {
		if row[i] != want {
			return false
		}
	}
	return true
}

// CleanupTestRows removes diagnostics rows (file_name column equal to
// marker), bottom-up so row numbers stay stable while deleting.
func (r *Recorder) CleanupTestRows(ctx context.Context, marker string) (int, error) {
	all, err := r.ws.AllValues(ctx)
	if err != nil {
		return 0, err
	}
	deleted := 0
	for i := len(all) - 1; i >= 1; i-- {
		row := all[i]
		if len(row) > 1 && row[1] == marker {
			if err := r.ws.DeleteRow(ctx, i+1); err != nil {
				return deleted, err
			}
			deleted++
		}
	}
	return deleted, nil
}
