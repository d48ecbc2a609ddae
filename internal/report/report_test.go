package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/surveyscope/internal/analysis"
	"github.com/KaramelBytes/surveyscope/internal/dataset"
)

func summarize(t *testing.T, headers []string, rows [][]string) *analysis.Summary {
	t.Helper()
	ds, err := dataset.NewRows(headers, rows)
	require.NoError(t, err)
	s, err := analysis.Summarize(ds, nil)
	require.NoError(t, err)
	return s
}

func TestExplore_Sections(t *testing.T) {
	long := strings.Repeat("x", 150)
	s := summarize(t,
		[]string{"engagement_started_EDT", "Province", "Q1_Relationship_with_music", "Q4_OE_why", "Q4_OE_sentiment"},
		[][]string{
			{"2023-05-01 10:00:00", "BC", "yes", long, "0.1"},
			{"2023-05-02 11:00:00", "ON", "no", "", ""},
			{"2023-05-03 12:00:00", "", "yes", "short", "0.4"},
		})

	var buf bytes.Buffer
	Explore(&buf, Source{Path: "survey.csv", Size: 3 * 1024 * 1024}, s, DefaultOptions())
	out := buf.String()

	for _, want := range []string{
		"📊 DATASET OVERVIEW",
		"Total responses: 3",
		"Total columns: 5",
		"File size: 3.0 MB",
		"  From: 2023-05-01 10:00:00",
		"  To: 2023-05-03 12:00:00",
		"  BC: 1 (33.3%)",
		"  Found 3 question columns",
		"    Q4_OE_why: 2 responses",
		"  Found 1 sentiment analysis columns",
		"    Province: 2 unique values",
		"Music relationship levels:",
		"  yes: 2 (66.7%)",
		"  no: 1 (33.3%)",
		"💭 SAMPLE RESPONSES",
		"  Sample: \"" + strings.Repeat("x", 100) + "...\"",
		"Top 10 columns with missing data:",
		"  Province: 1 (33.3%)",
		"  Q4_OE_why: 1 (33.3%)",
		"✅ Exploration complete!",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Age distribution:")
	assert.NotContains(t, out, long)
	assert.Contains(t, out, strings.Repeat("=", 60)+"\n")
}

func TestExplore_NoMissingAndNaT(t *testing.T) {
	s := summarize(t, []string{"engagement_started_EDT"}, [][]string{{"soon"}})
	var buf bytes.Buffer
	Explore(&buf, Source{}, s, DefaultOptions())
	out := buf.String()
	assert.Contains(t, out, "  From: NaT")
	assert.Contains(t, out, "No missing data found!")
}

func TestExplore_ZonedDateRange(t *testing.T) {
	s := summarize(t, []string{"engagement_started_EDT"}, [][]string{
		{"2023-05-01 10:00:00-04:00"},
		{"2023-05-02 11:00:00-04:00"},
	})
	var buf bytes.Buffer
	Explore(&buf, Source{}, s, DefaultOptions())
	out := buf.String()
	assert.Contains(t, out, "  From: 2023-05-01 10:00:00-04:00")
	assert.Contains(t, out, "  To: 2023-05-02 11:00:00-04:00")
}

func TestExplore_TopNTruncation(t *testing.T) {
	var rows [][]string
	provinces := []string{"BC", "ON", "QC", "AB", "MB", "SK", "NS"}
	for i, p := range provinces {
		for j := 0; j <= len(provinces)-i; j++ {
			rows = append(rows, []string{p, "Radio " + p})
		}
	}
	s := summarize(t, []string{"Province", "Q2_Discovering_music"}, rows)
	var buf bytes.Buffer
	Explore(&buf, Source{}, s, DefaultOptions())
	out := buf.String()
	assert.Contains(t, out, "  MB: ")
	assert.NotContains(t, out, "  SK: ")
	assert.Contains(t, out, "  Radio MB: ")
	assert.NotContains(t, out, "  Radio SK: ")
}

func TestExplore_ThousandsSeparator(t *testing.T) {
	rows := make([][]string, 1234)
	for i := range rows {
		rows[i] = []string{fmt.Sprint(i)}
	}
	s := summarize(t, []string{"id"}, rows)
	var buf bytes.Buffer
	Explore(&buf, Source{}, s, DefaultOptions())
	assert.Contains(t, buf.String(), "Total responses: 1,234")
}

func TestSimple(t *testing.T) {
	headers := make([]string, 12)
	row := make([]string, 12)
	for i := range headers {
		headers[i] = fmt.Sprintf("Q%d_OE_text", i+1)
		row[i] = "answer"
	}
	row[1] = " "
	s := summarize(t, headers, [][]string{row})

	var buf bytes.Buffer
	Simple(&buf, Source{Size: 512 * 1024}, s, DefaultOptions())
	out := buf.String()
	assert.Contains(t, out, "File size: 0.5 MB")
	assert.Contains(t, out, "  1. Q1_OE_text")
	assert.Contains(t, out, "  10. Q10_OE_text")
	assert.NotContains(t, out, "  11. Q11_OE_text")
	assert.Contains(t, out, "  ... and 2 more columns")
	assert.Contains(t, out, "Question columns: 12")
	assert.Contains(t, out, "Open-ended response columns: 12")
	assert.Contains(t, out, "Demographic columns: 0")
	assert.Equal(t, 3, strings.Count(out, "  Total responses: "))
	assert.Contains(t, out, "Q2_OE_text:\n  Total responses: 0\n")
	assert.NotContains(t, out, "Q4_OE_text:")
	assert.Contains(t, out, "✅ Basic exploration complete!")
}

func TestBannerAndColumnList(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf, "Data Exploration Script")
	assert.Equal(t, Title+"\nData Exploration Script\n"+strings.Repeat("=", 60)+"\n", buf.String())

	buf.Reset()
	ColumnList(&buf, []string{"Q6_OE_sentiment_score", "Gender", "id"}, analysis.NewClassifier(nil))
	assert.Equal(t,
		"  1. Q6_OE_sentiment_score [question, sentiment]\n"+
			"  2. Gender [demographic]\n"+
			"  3. id [other]\n",
		buf.String())
}
