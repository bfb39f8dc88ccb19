package tabular

import (
	"context"
	"fmt"
	"strings"

	festfusion_errors "festfusion/pkg/errors"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleWorksheet is the first worksheet of a named spreadsheet, resolved
// through a Drive query the way the original archive was shared: by name,
// first non-trashed match.
type GoogleWorksheet struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetID       int64
	sheetTitle    string
}

// OpenByName resolves the spreadsheet via Drive and binds to its first sheet.
func OpenByName(ctx context.Context, name string, opts ...option.ClientOption) (*GoogleWorksheet, error) {
	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}

	query := fmt.Sprintf("name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false",
		strings.ReplaceAll(name, "'", "\\'"))
	list, err := driveSvc.Files.List().Q(query).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet lookup: %w", err)
	}
	if len(list.Files) == 0 {
		return nil, festfusion_errors.ErrNotFound
	}
	spreadsheetID := list.Files[0].Id

	sheetsSvc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	meta, err := sheetsSvc.Spreadsheets.Get(spreadsheetID).Fields("sheets(properties(sheetId,title,index))").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet metadata: %w", err)
	}
	if len(meta.Sheets) == 0 {
		return nil, festfusion_errors.ErrNotFound
	}
	props := meta.Sheets[0].Properties

	return &GoogleWorksheet{
		svc:           sheetsSvc,
		spreadsheetID: spreadsheetID,
		sheetID:       props.SheetId,
		sheetTitle:    props.Title,
	}, nil
}

func (w *GoogleWorksheet) RowValues(ctx context.Context, row int) ([]string, error) {
	rng := fmt.Sprintf("'%s'!%d:%d", w.sheetTitle, row, row)
	resp, err := w.svc.Spreadsheets.Values.Get(w.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	return toStrings(resp.Values[0]), nil
}

func (w *GoogleWorksheet) AllValues(ctx context.Context) ([][]string, error) {
	resp, err := w.svc.Spreadsheets.Values.Get(w.spreadsheetID, fmt.Sprintf("'%s'", w.sheetTitle)).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	out := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		out = append(out, toStrings(row))
	}
	return out, nil
}

func (w *GoogleWorksheet) DeleteRow(ctx context.Context, row int) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    w.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(row - 1),
					EndIndex:   int64(row),
				},
			},
		}},
	}
	_, err := w.svc.Spreadsheets.BatchUpdate(w.spreadsheetID, req).Context(ctx).Do()
	return err
}

func (w *GoogleWorksheet) InsertRow(ctx context.Context, row int, values []string) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			InsertDimension: &sheets.InsertDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    w.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(row - 1),
					EndIndex:   int64(row),
				},
			},
		}},
	}
	if _, err := w.svc.Spreadsheets.BatchUpdate(w.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return err
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(values)}}
	rng := fmt.Sprintf("'%s'!A%d", w.sheetTitle, row)
	_, err := w.svc.Spreadsheets.Values.Update(w.spreadsheetID, rng, vr).
		ValueInputOption("RAW").Context(ctx).Do()
	return err
}

func (w *GoogleWorksheet) AppendRow(ctx context.Context, values []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(values)}}
	_, err := w.svc.Spreadsheets.Values.Append(w.spreadsheetID, fmt.Sprintf("'%s'", w.sheetTitle), vr).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	return err
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func toInterfaces(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}
