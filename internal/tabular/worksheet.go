// Package tabular is the spreadsheet-backed system of record. The Worksheet
// interface carries exactly the row operations the recorder needs, so the
// append logic is testable without the remote service.
package tabular

import "context"

// Worksheet is one sheet of the remote spreadsheet. Row numbers are 1-based,
// matching the remote service's row addressing.
type Worksheet interface {
	RowValues(ctx context.Context, row int) ([]string, error)
	AllValues(ctx context.Context) ([][]string, error)
	DeleteRow(ctx context.Context, row int) error
	InsertRow(ctx context.Context, row int, values []string) error
	AppendRow(ctx context.Context, values []string) error
}
