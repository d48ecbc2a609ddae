package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when the file has a header but no data rows.
	ErrEmptyDataset = errors.New("dataset has no rows")
	// ErrRaggedRow marks a row whose cell count differs from the header.
	ErrRaggedRow = errors.New("row length does not match header")
	// ErrInvalidEncoding is returned for input that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
	// ErrUnsupportedFormat is returned for file extensions the loader does not read.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// NotFoundError indicates the input path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dataset not found at %s", e.Path)
}

// ReadError covers every other failure while loading: I/O, parsing, encoding
// and shape violations.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e == nil || e.Err == nil {
		return "read error"
	}
	return e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }

// RaggedRowError describes the first malformed row. Line is 1-based and counts
// the header row.
type RaggedRowError struct {
	Line int
	Got  int
	Want int
}

func (e *RaggedRowError) Error() string {
	return fmt.Sprintf("line %d: got %d cells, want %d", e.Line, e.Got, e.Want)
}

func (e *RaggedRowError) Unwrap() error { return ErrRaggedRow }

// UnknownBackendError is returned by ParseBackend.
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown backend: %s (use rows or frame)", e.Name)
}
