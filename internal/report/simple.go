package report

import (
	"io"
	"strings"

	"github.com/KaramelBytes/surveyscope/internal/analysis"
)

// Simple writes the basic exploration report: overview, category counts and
// sample responses.
func Simple(w io.Writer, src Source, s *analysis.Summary, opt Options) {
	p := newPrinter(w)

	p.section("📊 DATASET OVERVIEW")
	p.line("Total responses: %s", p.count(s.Rows))
	p.line("Total columns: %d", len(s.Headers))
	p.line("File size: %.1f MB", megabytes(src.Size))
	p.line("")
	p.line("Column names (first %d):", opt.HeaderPreview)
	for i, h := range limit(s.Headers, opt.HeaderPreview) {
		p.line("  %d. %s", i+1, h)
	}
	if opt.HeaderPreview > 0 && len(s.Headers) > opt.HeaderPreview {
		p.line("  ... and %d more columns", len(s.Headers)-opt.HeaderPreview)
	}

	p.section("📋 COLUMN OVERVIEW")
	p.line("Question columns: %d", len(s.Columns.Question))
	p.line("Open-ended response columns: %d", len(s.Columns.OpenEnded))
	p.line("Sentiment analysis columns: %d", len(s.Columns.Sentiment))
	p.line("Demographic columns: %d", len(s.Columns.Demographic))

	p.samples(s, opt, false)

	p.line("")
	p.rule()
	p.line("✅ Basic exploration complete!")
	p.rule()
	p.line("")
	p.line("For the full report, including response patterns and missing data, run:")
	p.line("surveyscope explore")
	p.line("")
	p.line("Happy exploring! 🚀")
}

// ColumnList writes one line per header with its category labels.
func ColumnList(w io.Writer, headers []string, cls *analysis.Classifier) {
	p := newPrinter(w)
	for i, h := range headers {
		labels := cls.Classify(h)
		names := make([]string, len(labels))
		for j, l := range labels {
			names[j] = string(l)
		}
		p.line("%3d. %s [%s]", i+1, h, strings.Join(names, ", "))
	}
}
