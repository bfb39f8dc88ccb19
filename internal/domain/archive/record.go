package archive

import "time"

// SchemaVersion identifies the canonical worksheet layout. Header repair is
// all-or-nothing against this version; there is no partial column migration.
const SchemaVersion = 1

// Header is the canonical first row of the worksheet. Column order and text
// are fixed; any mismatch triggers a full header repair before data rows are
// appended.
var Header = []string{
	"timestamp",
	"file_name",
	"district_name",
	"english_summary",
	"festival_name",
	"telugu_summary",
	"storage_reference",
}

// RowTimestampFormat is the format written into the timestamp column.
const RowTimestampFormat = "2006-01-02 15:04:05"

// Record is one persisted submission row. Rows are permanent once appended;
// there is no update or delete path outside diagnostics cleanup.
type Record struct {
	Timestamp        time.Time
	FileName         string
	DistrictName     string
	EnglishSummary   string
	FestivalName     string
	TeluguSummary    string
	StorageReference string
}

// Row renders the record in canonical column order.
func (r Record) Row() []string {
	return []string{
		r.Timestamp.Format(RowTimestampFormat),
		r.FileName,
		r.DistrictName,
		r.EnglishSummary,
		r.FestivalName,
		r.TeluguSummary,
		r.StorageReference,
	}
}
