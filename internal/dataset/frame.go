package dataset

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DefaultNAValues are the tokens the dataframe backend reads as missing.
var DefaultNAValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// Frame is the dataframe backend. All columns are string-typed so values are
// reported exactly as they appear in the file.
type Frame struct {
	df dataframe.DataFrame
}

// NewFrame builds a dataframe from a header and data rows. Header names are
// made unique with UniqueHeaders.
func NewFrame(headers []string, rows [][]string) (*Frame, error) {
	if err := checkShape(headers, rows, nil); err != nil {
		return nil, err
	}
	// Deduplicate before LoadRecords, which otherwise renames repeats "_0", "_1".
	records := make([][]string, 0, len(rows)+1)
	records = append(records, UniqueHeaders(headers))
	records = append(records, rows...)
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(DefaultNAValues),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("build dataframe: %w", df.Err)
	}
	return &Frame{df: df}, nil
}

func (f *Frame) Headers() []string { return f.df.Names() }
func (f *Frame) Len() int          { return f.df.Nrow() }

func (f *Frame) Cell(row, col int) string {
	e := f.df.Elem(row, col)
	if e.IsNA() {
		return ""
	}
	return e.String()
}

func (f *Frame) Missing(row, col int) bool {
	e := f.df.Elem(row, col)
	return e.IsNA() || e.String() == ""
}
