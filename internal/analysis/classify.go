package analysis

import "strings"

// Category is a column label derived from the header's naming convention.
type Category string

const (
	CategoryQuestion    Category = "question"
	CategoryOpenEnded   Category = "open-ended"
	CategorySentiment   Category = "sentiment"
	CategoryDemographic Category = "demographic"
	CategoryOther       Category = "other"
)

// DefaultDemographics is the allow-list of respondent attribute columns.
var DefaultDemographics = []string{"AgeGroup_Broad", "Province", "Education", "Gender", "HH_Income_Fine_23"}

// IsQuestion reports whether the header names a survey question.
func IsQuestion(h string) bool { return strings.HasPrefix(h, "Q") }

// IsSentiment reports whether the header holds a derived sentiment score.
func IsSentiment(h string) bool { return strings.Contains(h, "sentiment") }

// IsOpenEnded reports whether the header holds free-text responses.
// Sentiment columns derived from free text are excluded.
func IsOpenEnded(h string) bool {
	return strings.Contains(h, "_OE") && !IsSentiment(h)
}

// Classifier applies the naming rules. The rules are evaluated independently,
// so a header may carry several categories.
type Classifier struct {
	demographics []string
	demoSet      map[string]struct{}
}

// NewClassifier uses DefaultDemographics when demographics is empty.
func NewClassifier(demographics []string) *Classifier {
	if len(demographics) == 0 {
		demographics = DefaultDemographics
	}
	set := make(map[string]struct{}, len(demographics))
	for _, d := range demographics {
		set[d] = struct{}{}
	}
	return &Classifier{demographics: demographics, demoSet: set}
}

// IsDemographic is an exact match against the allow-list.
func (c *Classifier) IsDemographic(h string) bool {
	_, ok := c.demoSet[h]
	return ok
}

// Classify returns every category the header matches, or CategoryOther.
func (c *Classifier) Classify(h string) []Category {
	var out []Category
	if IsQuestion(h) {
		out = append(out, CategoryQuestion)
	}
	if IsOpenEnded(h) {
		out = append(out, CategoryOpenEnded)
	}
	if IsSentiment(h) {
		out = append(out, CategorySentiment)
	}
	if c.IsDemographic(h) {
		out = append(out, CategoryDemographic)
	}
	if len(out) == 0 {
		out = append(out, CategoryOther)
	}
	return out
}

// Columns holds headers grouped by category.
type Columns struct {
	Question    []string
	OpenEnded   []string
	Sentiment   []string
	Demographic []string
	Other       []string
}

// Partition groups headers by category. Demographic columns follow the
// allow-list order and only include names present in headers; every other
// group keeps header order.
func (c *Classifier) Partition(headers []string) Columns {
	var cols Columns
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[h] = struct{}{}
		matched := false
		if IsQuestion(h) {
			cols.Question = append(cols.Question, h)
			matched = true
		}
		if IsOpenEnded(h) {
			cols.OpenEnded = append(cols.OpenEnded, h)
			matched = true
		}
		if IsSentiment(h) {
			cols.Sentiment = append(cols.Sentiment, h)
			matched = true
		}
		if c.IsDemographic(h) {
			matched = true
		}
		if !matched {
			cols.Other = append(cols.Other, h)
		}
	}
	for _, d := range c.demographics {
		if _, ok := present[d]; ok {
			cols.Demographic = append(cols.Demographic, d)
		}
	}
	return cols
}
