package tabular

import (
	"context"
	"errors"
	"testing"
	"time"

	"festfusion/internal/domain/archive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWorksheet is an in-memory Worksheet with 1-based row addressing.
type fakeWorksheet struct {
	rows       [][]string
	failInsert bool
	appends    int
	inserts    int
	deletes    int
}

func (f *fakeWorksheet) RowValues(ctx context.Context, row int) ([]string, error) {
	if row < 1 || row > len(f.rows) {
		return nil, nil
	}
	return f.rows[row-1], nil
}

func (f *fakeWorksheet) AllValues(ctx context.Context) ([][]string, error) {
	return f.rows, nil
}

func (f *fakeWorksheet) DeleteRow(ctx context.Context, row int) error {
	f.deletes++
	if row < 1 || row > len(f.rows) {
		return errors.New("row out of range")
	}
	f.rows = append(f.rows[:row-1], f.rows[row:]...)
	return nil
}

func (f *fakeWorksheet) InsertRow(ctx context.Context, row int, values []string) error {
	f.inserts++
	if f.failInsert {
		return errors.New("insert rejected")
	}
	if row < 1 {
		return errors.New("row out of range")
	}
	for len(f.rows) < row-1 {
		f.rows = append(f.rows, nil)
	}
	f.rows = append(f.rows[:row-1], append([][]string{values}, f.rows[row-1:]...)...)
	return nil
}

func (f *fakeWorksheet) AppendRow(ctx context.Context, values []string) error {
	f.appends++
	f.rows = append(f.rows, values)
	return nil
}

func testRecord(file string) archive.Record {
	return archive.Record{
		Timestamp:        time.Date(2025, 8, 10, 12, 30, 0, 0, time.UTC),
		FileName:         file,
		DistrictName:     "Hyderabad",
		EnglishSummary:   "english",
		FestivalName:     "Bonalu",
		TeluguSummary:    "telugu",
		StorageReference: "https://example.com/f",
	}
}

func TestAppendToEmptySheetWritesHeaderFirst(t *testing.T) {
	ws := &fakeWorksheet{}
	rec := NewRecorder(ws, nil)

	require.NoError(t, rec.Append(context.Background(), testRecord("a.jpg")))

	require.Len(t, ws.rows, 2)
	assert.Equal(t, archive.Header, ws.rows[0])
	assert.Equal(t, "a.jpg", ws.rows[1][1])
	assert.Equal(t, "2025-08-10 12:30:00", ws.rows[1][0])
}

func TestHeaderRepairIsIdempotent(t *testing.T) {
	ws := &fakeWorksheet{}
	rec := NewRecorder(ws, nil)

	require.NoError(t, rec.Append(context.Background(), testRecord("a.jpg")))
	require.NoError(t, rec.Append(context.Background(), testRecord("b.jpg")))

	headerRows := 0
	for _, row := range ws.rows {
		if len(row) > 0 && row[0] == archive.Header[0] && len(row) == len(archive.Header) && row[1] == archive.Header[1] {
			headerRows++
		}
	}
	assert.Equal(t, 1, headerRows, "repeated appends must never stack header rows")
	require.Len(t, ws.rows, 3)
	assert.Equal(t, "a.jpg", ws.rows[1][1])
	assert.Equal(t, "b.jpg", ws.rows[2][1])
}

func TestMismatchedHeaderIsReplaced(t *testing.T) {
	ws := &fakeWorksheet{rows: [][]string{
		{"time", "file", "village"},
		{"2025-01-01 00:00:00", "old.jpg", "Medak"},
	}}
	rec := NewRecorder(ws, nil)

	require.NoError(t, rec.Append(context.Background(), testRecord("new.jpg")))

	assert.Equal(t, archive.Header, ws.rows[0])
	// The misaligned data row is kept as-is; repair replaces row 1 only.
	assert.Equal(t, "old.jpg", ws.rows[1][1])
	assert.Equal(t, "new.jpg", ws.rows[2][1])
	assert.Equal(t, 1, ws.deletes)
}

func TestShortHeaderTriggersRepair(t *testing.T) {
	ws := &fakeWorksheet{rows: [][]string{archive.Header[:4]}}
	rec := NewRecorder(ws, nil)

	require.NoError(t, rec.Append(context.Background(), testRecord("a.jpg")))
	assert.Equal(t, archive.Header, ws.rows[0])
}

func TestInsertFailureFallsBackToAppend(t *testing.T) {
	ws := &fakeWorksheet{rows: [][]string{archive.Header}, failInsert: true}
	rec := NewRecorder(ws, nil)

	require.NoError(t, rec.Append(context.Background(), testRecord("a.jpg")))
	assert.Equal(t, 1, ws.appends)
	assert.Equal(t, "a.jpg", ws.rows[1][1])
}

func TestCleanupTestRows(t *testing.T) {
	ws := &fakeWorksheet{rows: [][]string{
		archive.Header,
		{"t", "diagnostic_test", "diagnostic_test", "", "", "", ""},
		{"t", "keep.jpg", "Hyderabad", "", "", "", ""},
		{"t", "diagnostic_test", "diagnostic_test", "", "", "", ""},
	}}
	rec := NewRecorder(ws, nil)

	deleted, err := rec.CleanupTestRows(context.Background(), "diagnostic_test")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	require.Len(t, ws.rows, 2)
	assert.Equal(t, "keep.jpg", ws.rows[1][1])
}
