package analysis

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/KaramelBytes/surveyscope/internal/dataset"
)

var surveyRows = []string{
	"Q1,Province",
	"yes,BC",
	"no,ON",
	"yes,",
}

func loadFixture(t *testing.T, lines []string, backend dataset.Backend) *dataset.Source {
	t.Helper()
	p := filepath.Join(t.TempDir(), "survey.csv")
	if err := os.WriteFile(p, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	src, err := dataset.Load(p, dataset.Options{Backend: backend})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return src
}

func mustRows(t *testing.T, headers []string, rows [][]string) dataset.Dataset {
	t.Helper()
	ds, err := dataset.NewRows(headers, rows)
	if err != nil {
		t.Fatalf("NewRows: %v", err)
	}
	return ds
}

func TestValueCountsEndToEnd(t *testing.T) {
	for _, b := range []dataset.Backend{dataset.BackendRows, dataset.BackendFrame} {
		t.Run(string(b), func(t *testing.T) {
			src := loadFixture(t, surveyRows, b)

			q1, err := ValueCounts(src, "Q1")
			if err != nil {
				t.Fatalf("ValueCounts Q1: %v", err)
			}
			want := []ValueCount{{"yes", 2, 66.7}, {"no", 1, 33.3}}
			if len(q1.Values) != len(want) {
				t.Fatalf("Q1 values = %#v, want %#v", q1.Values, want)
			}
			for i := range want {
				if q1.Values[i] != want[i] {
					t.Errorf("Q1 value[%d] = %#v, want %#v", i, q1.Values[i], want[i])
				}
			}
			if q1.Missing != 0 {
				t.Errorf("Q1 missing = %d, want 0", q1.Missing)
			}

			prov, err := ValueCounts(src, "Province")
			if err != nil {
				t.Fatalf("ValueCounts Province: %v", err)
			}
			if prov.Missing != 1 || prov.MissingPercent != 33.3 {
				t.Errorf("Province missing = %d (%.1f%%), want 1 (33.3%%)", prov.Missing, prov.MissingPercent)
			}
			if prov.Unique() != 2 {
				t.Errorf("Province unique = %d, want 2", prov.Unique())
			}
		})
	}
}

func TestValueCountsSumsToRowCount(t *testing.T) {
	ds := mustRows(t, []string{"c"}, [][]string{{"a"}, {""}, {"b"}, {"a"}, {"  "}, {"c"}, {"b"}, {"a"}})
	d, err := ValueCounts(ds, "c")
	if err != nil {
		t.Fatal(err)
	}
	sum := d.Missing
	for _, v := range d.Values {
		sum += v.Count
		want, _ := strconv.ParseFloat(fmt.Sprintf("%.1f", float64(v.Count)/float64(ds.Len())*100), 64)
		if v.Percent != want {
			t.Errorf("percent for %q = %v, want %v", v.Value, v.Percent, want)
		}
	}
	if sum != ds.Len() {
		t.Fatalf("counts + missing = %d, want %d", sum, ds.Len())
	}
	if d.Present() != 6 {
		t.Errorf("present = %d, want 6", d.Present())
	}
}

func TestValueCountsTiesKeepFirstSeenOrder(t *testing.T) {
	ds := mustRows(t, []string{"c"}, [][]string{{"z"}, {"y"}, {"x"}, {"x"}, {"y"}, {"z"}, {"w"}})
	d, err := ValueCounts(ds, "c")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, v := range d.Values {
		got = append(got, v.Value)
	}
	if strings.Join(got, ",") != "z,y,x,w" {
		t.Fatalf("order = %v, want z,y,x,w", got)
	}
	if d.First != "z" {
		t.Errorf("first = %q, want z", d.First)
	}
	if top := d.Top(2); len(top) != 2 || top[1].Value != "y" {
		t.Errorf("top(2) = %#v", top)
	}
	if all := d.Top(0); len(all) != 4 {
		t.Errorf("top(0) len = %d, want 4", len(all))
	}
}

func TestValueCountsUnknownColumn(t *testing.T) {
	ds := mustRows(t, []string{"a"}, [][]string{{"1"}})
	if _, err := ValueCounts(ds, "b"); !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("err = %v, want ErrUnknownColumn", err)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		count, total int
		want         float64
	}{
		{2, 3, 66.7},
		{1, 3, 33.3},
		{0, 5, 0},
		{5, 5, 100},
		{1, 8, 12.5},
		{1, 0, 0},
		{1, 16, 6.2},
		{1, 400, 0.2},
		{23, 2000, 1.1},
		{3, 16, 18.8},
	}
	for _, tt := range tests {
		if got := Percent(tt.count, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %v, want %v", tt.count, tt.total, got, tt.want)
		}
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("a", 150)
	got := Preview(long, 100)
	if got != strings.Repeat("a", 100)+"..." {
		t.Errorf("Preview(150 chars) = %q", got)
	}
	short := strings.Repeat("b", 50)
	if got := Preview(short, 100); got != short {
		t.Errorf("Preview(50 chars) = %q, want unchanged", got)
	}
	exact := strings.Repeat("c", 100)
	if got := Preview(exact, 0); got != exact {
		t.Errorf("Preview(100 chars) changed: %q", got)
	}
	// character-based, not byte-based
	music := strings.Repeat("♪", 101)
	if got := Preview(music, 100); got != strings.Repeat("♪", 100)+"..." {
		t.Errorf("Preview(runes) = %q", got)
	}
}

func TestMissingSummary(t *testing.T) {
	ds := mustRows(t, []string{"full", "half", "most", "tie"}, [][]string{
		{"a", "", "", "x"},
		{"b", "y", "", ""},
		{"c", "", "", "z"},
		{"d", "y", "q", "z"},
	})
	got := MissingSummary(ds)
	want := []MissingStat{{"most", 3, 75}, {"half", 2, 50}, {"tie", 1, 25}}
	if len(got) != len(want) {
		t.Fatalf("summary = %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("summary[%d] = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestParseDateRange(t *testing.T) {
	ds := mustRows(t, []string{"engagement_started_EDT"}, [][]string{
		{"2023-05-02 09:30:00"},
		{"not a date"},
		{""},
		{"2023-04-28 17:05:00"},
		{"5/10/2023 8:00"},
	})
	r, err := ParseDateRange(ds, ColumnEngagementStart)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Valid() || r.Parsed != 3 {
		t.Fatalf("parsed = %d, want 3", r.Parsed)
	}
	if got := r.From.Format("2006-01-02 15:04:05"); got != "2023-04-28 17:05:00" {
		t.Errorf("from = %s", got)
	}
	if got := r.To.Format("2006-01-02 15:04:05"); got != "2023-05-10 08:00:00" {
		t.Errorf("to = %s", got)
	}
	if r.Zoned {
		t.Errorf("naive timestamps reported as zoned")
	}

	none := mustRows(t, []string{"d"}, [][]string{{"x"}})
	r, err = ParseDateRange(none, "d")
	if err != nil {
		t.Fatal(err)
	}
	if r.Valid() {
		t.Errorf("expected no parsed dates")
	}
}

func TestParseDateRangeKeepsOffset(t *testing.T) {
	ds := mustRows(t, []string{"d"}, [][]string{
		{"2023-05-01 10:00:00-04:00"},
		{"2023-05-03T12:30:00-04:00"},
	})
	r, err := ParseDateRange(ds, "d")
	if err != nil {
		t.Fatal(err)
	}
	if !r.Zoned || r.Parsed != 2 {
		t.Fatalf("range = %#v", r)
	}
	if got := r.From.Format("2006-01-02 15:04:05-07:00"); got != "2023-05-01 10:00:00-04:00" {
		t.Errorf("from = %s", got)
	}
}
