package dataset

import "fmt"

// Dataset is an ordered set of headers and rows of string cells aligned with them.
type Dataset interface {
	Headers() []string
	// Len returns the number of data rows (the header row excluded).
	Len() int
	Cell(row, col int) string
	// Missing reports whether the cell holds no response. Each backend applies
	// its own notion of "empty".
	Missing(row, col int) bool
}

// UniqueHeaders returns a copy of headers in which every name is distinct.
// Blank names become "Unnamed: <i>" and repeats get ".1", ".2", ... suffixes in
// order of appearance, so both backends expose the same column names.
func UniqueHeaders(headers []string) []string {
	out := make([]string, len(headers))
	used := make(map[string]bool, len(headers))
	for i, h := range headers {
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for k := 1; used[name]; k++ {
			name = fmt.Sprintf("%s.%d", h, k)
		}
		used[name] = true
		out[i] = name
	}
	return out
}

// Index returns the position of the named column, or -1 when absent.
func Index(ds Dataset, name string) int {
	for i, h := range ds.Headers() {
		if h == name {
			return i
		}
	}
	return -1
}

// Has reports whether the dataset has a column with the given name.
func Has(ds Dataset, name string) bool { return Index(ds, name) >= 0 }

// Backend names a Dataset implementation.
type Backend string

const (
	// BackendRows keeps plain row lists; whitespace-only cells count as missing.
	BackendRows Backend = "rows"
	// BackendFrame loads into a string-typed dataframe; NA tokens count as missing.
	BackendFrame Backend = "frame"
)

// ParseBackend validates a backend name. An empty name yields def.
func ParseBackend(s string, def Backend) (Backend, error) {
	switch Backend(s) {
	case "":
		return def, nil
	case BackendRows, BackendFrame:
		return Backend(s), nil
	default:
		return "", &UnknownBackendError{Name: s}
	}
}

// Source is a loaded dataset together with where it came from.
type Source struct {
	Dataset
	Path    string
	Size    int64
	Backend Backend
}
