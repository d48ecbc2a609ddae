package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// DefaultPath is the dataset location relative to the project root.
var DefaultPath = filepath.Join("data", "raw", "music_survey_data.csv")

// Options controls how a file is loaded.
type Options struct {
	Backend Backend
	// Sheet selects the XLSX worksheet; empty means the first sheet.
	Sheet string
	// Logger receives load diagnostics; nil means slog.Default().
	Logger *slog.Logger
}

// Load reads the file at path into the requested backend. Failures are either
// *NotFoundError or *ReadError; nothing is returned on partial reads.
func Load(path string, opt Options) (*Source, error) {
	log := opt.Logger
	if log == nil {
		log = slog.Default()
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &ReadError{Path: path, Err: fmt.Errorf("stat: %w", err)}
	}
	if info.IsDir() {
		return nil, &ReadError{Path: path, Err: fmt.Errorf("%s is a directory", path)}
	}
	backend := opt.Backend
	if backend == "" {
		backend = BackendRows
	}

	var headers []string
	var rows [][]string
	var lines []int
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".tsv", ".txt":
		headers, rows, lines, err = readDelimited(path, sniffDelimiter(path))
	case ".xlsx":
		headers, rows, err = readXLSX(path, opt.Sheet)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err == nil {
		err = checkShape(headers, rows, lines)
	}
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	log.Debug("dataset parsed", "path", path, "rows", len(rows), "columns", len(headers), "backend", string(backend))

	var ds Dataset
	switch backend {
	case BackendFrame:
		ds, err = NewFrame(headers, rows)
	case BackendRows:
		ds, err = NewRows(headers, rows)
	default:
		err = &UnknownBackendError{Name: string(backend)}
	}
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return &Source{Dataset: ds, Path: path, Size: info.Size(), Backend: backend}, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readDelimited also returns the file line on which each data row starts.
func readDelimited(path string, delim rune) ([]string, [][]string, []int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read file: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, nil, nil, ErrInvalidEncoding
	}
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	// Shape is validated by checkShape so the error names the offending line.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil, ErrEmptyDataset
		}
		return nil, nil, nil, fmt.Errorf("read header: %w", err)
	}
	header = append([]string(nil), header...)
	var rows [][]string
	var lines []int
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		line, _ := r.FieldPos(0)
		rows = append(rows, rec)
		lines = append(lines, line)
	}
	return header, rows, lines, nil
}

func readXLSX(path, sheet string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, ErrEmptyDataset
		}
		sheet = sheets[0]
	}
	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(all) == 0 {
		return nil, nil, ErrEmptyDataset
	}
	header := all[0]
	rows := make([][]string, 0, len(all)-1)
	for _, rec := range all[1:] {
		// The workbook reader drops trailing empty cells; pad them back.
		if len(rec) < len(header) {
			tmp := make([]string, len(header))
			copy(tmp, rec)
			rec = tmp
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}
