package report

import (
	"io"

	"github.com/KaramelBytes/surveyscope/internal/analysis"
)

const (
	timestampLayout      = "2006-01-02 15:04:05"
	zonedTimestampLayout = "2006-01-02 15:04:05-07:00"
)

// Explore writes the full exploration report.
func Explore(w io.Writer, src Source, s *analysis.Summary, opt Options) {
	p := newPrinter(w)

	p.section("📊 DATASET OVERVIEW")
	p.line("Total responses: %s", p.count(s.Rows))
	p.line("Total columns: %d", len(s.Headers))
	p.line("File size: %.1f MB", megabytes(src.Size))

	p.line("")
	p.line("Date range:")
	if s.Dates != nil {
		if s.Dates.Valid() {
			layout := timestampLayout
			if s.Dates.Zoned {
				layout = zonedTimestampLayout
			}
			p.line("  From: %s", s.Dates.From.Format(layout))
			p.line("  To: %s", s.Dates.To.Format(layout))
		} else {
			p.line("  From: NaT")
			p.line("  To: NaT")
		}
	}

	p.line("")
	p.line("Geographic distribution:")
	if s.Province != nil {
		p.values(s.Province.Top(opt.TopValues))
	}

	p.section("📋 COLUMN OVERVIEW")
	p.line("Question columns:")
	p.line("  Found %d question columns", len(s.Columns.Question))
	p.line("")
	p.line("Open-ended response columns:")
	p.line("  Found %d open-ended response columns", len(s.Columns.OpenEnded))
	for _, c := range limit(s.OpenEnded, opt.TopOpenEnded) {
		p.line("    %s: %d responses", c.Column, c.Count)
	}
	p.line("")
	p.line("Sentiment analysis columns:")
	p.line("  Found %d sentiment analysis columns", len(s.Columns.Sentiment))
	p.line("")
	p.line("Demographic columns:")
	for _, c := range s.Demographics {
		p.line("    %s: %d unique values", c.Column, c.Count)
	}

	p.section("🎵 RESPONSE PATTERNS")
	if s.Relationship != nil {
		p.line("")
		p.line("Music relationship levels:")
		p.values(s.Relationship.Values)
	}
	if s.Discovery != nil {
		p.line("")
		p.line("Primary music discovery methods:")
		p.values(s.Discovery.Top(opt.TopValues))
	}
	if s.AgeGroup != nil {
		p.line("")
		p.line("Age distribution:")
		p.values(s.AgeGroup.Values)
	}

	p.samples(s, opt, true)

	p.section("🔍 MISSING DATA SUMMARY")
	if len(s.Missing) == 0 {
		p.line("No missing data found!")
	} else {
		p.line("Top %d columns with missing data:", opt.TopMissing)
		for _, m := range limit(s.Missing, opt.TopMissing) {
			p.stat("  ", m.Column, m.Count, m.Percent)
		}
	}

	p.line("")
	p.rule()
	p.line("✅ Exploration complete!")
	p.rule()
	p.line("")
	p.line("Next steps:")
	p.line("1. Examine specific columns of interest")
	p.line("2. Create visualizations of key patterns")
	p.line("3. Analyze relationships between variables")
	p.line("4. Develop your hackathon project idea")
	p.line("")
	p.line("Happy exploring! 🚀")
}
