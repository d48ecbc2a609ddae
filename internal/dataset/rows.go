package dataset

import "strings"

// Rows is the plain row-list backend.
type Rows struct {
	headers []string
	rows    [][]string
}

// NewRows validates that every row matches the header width. Header names are
// made unique with UniqueHeaders.
func NewRows(headers []string, rows [][]string) (*Rows, error) {
	if err := checkShape(headers, rows, nil); err != nil {
		return nil, err
	}
	return &Rows{headers: UniqueHeaders(headers), rows: rows}, nil
}

func (r *Rows) Headers() []string { return r.headers }
func (r *Rows) Len() int          { return len(r.rows) }

func (r *Rows) Cell(row, col int) string { return r.rows[row][col] }

func (r *Rows) Missing(row, col int) bool {
	return strings.TrimSpace(r.rows[row][col]) == ""
}

// checkShape rejects empty data and rows whose width differs from the header.
// lines holds the source line of each row; when nil, row i is assumed to sit
// on line i+2 below a one-line header.
func checkShape(headers []string, rows [][]string, lines []int) error {
	if len(rows) == 0 {
		return ErrEmptyDataset
	}
	for i, rec := range rows {
		if len(rec) != len(headers) {
			line := i + 2
			if i < len(lines) {
				line = lines[i]
			}
			return &RaggedRowError{Line: line, Got: len(rec), Want: len(headers)}
		}
	}
	return nil
}
