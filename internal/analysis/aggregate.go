package analysis

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KaramelBytes/surveyscope/internal/dataset"
)

// PreviewLimit is the default number of characters kept by Preview.
const PreviewLimit = 100

// ErrUnknownColumn is returned when a named column is not in the dataset.
var ErrUnknownColumn = errors.New("unknown column")

// ValueCount is one entry of a value distribution.
type ValueCount struct {
	Value   string
	Count   int
	Percent float64
}

// Distribution captures value counts and missingness for a single column.
// Percentages are relative to Total, the dataset row count.
type Distribution struct {
	Column         string
	Total          int
	Missing        int
	MissingPercent float64
	// Values is ordered by descending count; ties keep first-seen order.
	Values []ValueCount
	// First is the first non-missing value in row order.
	First string
}

// Present is the number of non-missing cells.
func (d *Distribution) Present() int { return d.Total - d.Missing }

// Unique is the number of distinct non-missing values.
func (d *Distribution) Unique() int { return len(d.Values) }

// Top returns at most n entries; n <= 0 returns all of them.
func (d *Distribution) Top(n int) []ValueCount {
	if n <= 0 || n >= len(d.Values) {
		return d.Values
	}
	return d.Values[:n]
}

// ValueCounts scans one column and builds its Distribution.
func ValueCounts(ds dataset.Dataset, column string) (*Distribution, error) {
	col := dataset.Index(ds, column)
	if col < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	n := ds.Len()
	d := &Distribution{Column: column, Total: n}
	counts := make(map[string]int)
	var order []string
	for row := 0; row < n; row++ {
		if ds.Missing(row, col) {
			d.Missing++
			continue
		}
		v := ds.Cell(row, col)
		if _, seen := counts[v]; !seen {
			order = append(order, v)
			if len(order) == 1 {
				d.First = v
			}
		}
		counts[v]++
	}
	d.MissingPercent = Percent(d.Missing, n)
	d.Values = make([]ValueCount, 0, len(order))
	for _, v := range order {
		c := counts[v]
		d.Values = append(d.Values, ValueCount{Value: v, Count: c, Percent: Percent(c, n)})
	}
	sort.SliceStable(d.Values, func(i, j int) bool {
		return d.Values[i].Count > d.Values[j].Count
	})
	return d, nil
}

// Percent returns count/total*100 rounded to one decimal place, or 0 when
// total is not positive. Rounding follows fixed-point formatting of the exact
// binary value, so 1/16 gives 6.2 rather than 6.3.
func Percent(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	x := float64(count) / float64(total) * 100
	p, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	if err != nil {
		return 0
	}
	return p
}

// Preview shortens free text to limit characters plus an ellipsis. Text within
// the limit is returned unchanged.
func Preview(s string, limit int) string {
	if limit <= 0 {
		limit = PreviewLimit
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

// MissingStat is the missing-value count of one column.
type MissingStat struct {
	Column  string
	Count   int
	Percent float64
}

// MissingSummary lists columns with at least one missing cell, highest
// percentage first. Ties keep header order.
func MissingSummary(ds dataset.Dataset) []MissingStat {
	n := ds.Len()
	headers := ds.Headers()
	counts := make([]int, len(headers))
	for row := 0; row < n; row++ {
		for col := range headers {
			if ds.Missing(row, col) {
				counts[col]++
			}
		}
	}
	var out []MissingStat
	for col, c := range counts {
		if c == 0 {
			continue
		}
		out = append(out, MissingStat{Column: headers[col], Count: c, Percent: Percent(c, n)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// DateRange is the span of parseable timestamps in a column. Cells that do
// not parse are skipped.
type DateRange struct {
	Column string
	From   time.Time
	To     time.Time
	Parsed int
	// Zoned is set when a parsed cell carried a UTC offset.
	Zoned bool
}

// Valid reports whether at least one cell parsed.
func (r *DateRange) Valid() bool { return r.Parsed > 0 }

// ParseDateRange scans a column for its earliest and latest timestamps.
func ParseDateRange(ds dataset.Dataset, column string) (*DateRange, error) {
	col := dataset.Index(ds, column)
	if col < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	r := &DateRange{Column: column}
	for row := 0; row < ds.Len(); row++ {
		if ds.Missing(row, col) {
			continue
		}
		t, zoned, ok := parseTimeMaybe(strings.TrimSpace(ds.Cell(row, col)))
		if !ok {
			continue
		}
		r.Zoned = r.Zoned || zoned
		if r.Parsed == 0 || t.Before(r.From) {
			r.From = t
		}
		if r.Parsed == 0 || t.After(r.To) {
			r.To = t
		}
		r.Parsed++
	}
	return r, nil
}

var timeLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339, true},
	{"2006-01-02 15:04:05Z07:00", true},
	{"2006-01-02 15:04:05 -0700", true},
	{"2006-01-02T15:04:05-0700", true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02 15:04", false},
	{"2006-01-02", false},
	{"2006/01/02", false},
	{"2006/01/02 15:04:05", false},
	{"1/2/2006 15:04:05", false},
	{"1/2/2006 15:04", false},
	{"1/2/2006 3:04:05 PM", false},
	{"1/2/2006 3:04 PM", false},
	{"1/2/2006", false},
	{"01/02/2006", false},
	{"1/2/06 15:04", false},
}

func parseTimeMaybe(s string) (time.Time, bool, bool) {
	for _, l := range timeLayouts {
		if t, err := time.Parse(l.layout, s); err == nil {
			return t, l.zoned, true
		}
	}
	return time.Time{}, false, false
}
