// Package report renders analysis summaries as console text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/surveyscope/internal/analysis"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Title is printed at the top of both reports.
const Title = "🎵 Vancouver AI Hackathon Round 4: The Soundtrack of Us"

const ruleWidth = 60

// Options holds the top-N limits applied while rendering.
type Options struct {
	TopValues     int // provinces and discovery methods
	TopOpenEnded  int // open-ended columns listed in the column overview
	SampleColumns int // open-ended columns previewed
	TopMissing    int
	HeaderPreview int // column names listed by the simple report
	PreviewChars  int
}

// DefaultOptions returns the limits both reports use unless configured.
func DefaultOptions() Options {
	return Options{
		TopValues:     5,
		TopOpenEnded:  5,
		SampleColumns: 3,
		TopMissing:    10,
		HeaderPreview: 10,
		PreviewChars:  analysis.PreviewLimit,
	}
}

// Source describes the input file in the overview section.
type Source struct {
	Path string
	Size int64
}

// printer swallows write errors: reports go to a console and never fail.
type printer struct {
	w   io.Writer
	num *message.Printer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, num: message.NewPrinter(language.English)}
}

func (p *printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) rule() { p.line("%s", strings.Repeat("=", ruleWidth)) }

func (p *printer) section(title string) {
	p.line("")
	p.rule()
	p.line("%s", title)
	p.rule()
}

// count formats an integer with thousands separators.
func (p *printer) count(n int) string { return p.num.Sprintf("%d", n) }

func (p *printer) stat(indent, label string, count int, pct float64) {
	p.line("%s%s: %d (%.1f%%)", indent, label, count, pct)
}

func (p *printer) values(vals []analysis.ValueCount) {
	for _, v := range vals {
		p.stat("  ", v.Value, v.Count, v.Percent)
	}
}

func (p *printer) samples(s *analysis.Summary, opt Options, emptyNote bool) {
	p.section("💭 SAMPLE RESPONSES")
	for _, sm := range limit(s.Samples, opt.SampleColumns) {
		p.line("")
		p.line("%s:", sm.Column)
		if sm.Responses == 0 && emptyNote {
			p.line("  No responses available")
			continue
		}
		p.line("  Total responses: %d", sm.Responses)
		if sm.Responses > 0 {
			p.line("  Sample: \"%s\"", analysis.Preview(sm.Text, opt.PreviewChars))
		}
	}
}

func megabytes(size int64) float64 { return float64(size) / 1024 / 1024 }

func limit[T any](s []T, n int) []T {
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[:n]
}

// Banner writes the report heading. It is printed before the dataset loads so
// load failures appear under it.
func Banner(w io.Writer, subtitle string) {
	p := newPrinter(w)
	p.line("%s", Title)
	p.line("%s", subtitle)
	p.rule()
}
