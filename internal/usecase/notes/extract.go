package notes

import "strings"

// KeywordCategory classifies a keyword rule
type KeywordCategory string

const (
	CategoryDecision KeywordCategory = "decision"
	CategoryAction   KeywordCategory = "action"
)

// KeywordRule binds a lowercase keyword to the category it flags
type KeywordRule struct {
	Keyword  string
	Category KeywordCategory
}

// DefaultKeywordRules returns the built-in bilingual (FR/EN) keyword table.
// Matching is by substring, not word boundary: "faire" also fires inside
// "affaire". Known false-positive source, kept so report output stays
// stable; tighten via a custom rule table, not here.
func DefaultKeywordRules() []KeywordRule {
	return []KeywordRule{
		{Keyword: "décidé", Category: CategoryDecision},
		{Keyword: "décision", Category: CategoryDecision},
		{Keyword: "convenu", Category: CategoryDecision},
		{Keyword: "agreed", Category: CategoryDecision},
		{Keyword: "will decide", Category: CategoryDecision},
		{Keyword: "decided", Category: CategoryDecision},
		{Keyword: "decision", Category: CategoryDecision},

		{Keyword: "à faire", Category: CategoryAction},
		{Keyword: "faire", Category: CategoryAction},
		{Keyword: "action", Category: CategoryAction},
		{Keyword: "follow", Category: CategoryAction},
		{Keyword: "implement", Category: CategoryAction},
		{Keyword: "to do", Category: CategoryAction},
	}
}

// Extractor classifies summary sentences as decisions or actions using a
// lexical keyword table. It carries no state beyond the table and is safe
// for concurrent use.
type Extractor struct {
	decisionKeywords []string
	actionKeywords   []string
}

// NewExtractor builds an extractor from the given rules. Keywords are
// lowercased; rules with an unknown category are dropped. Pass
// DefaultKeywordRules() for the stock table.
func NewExtractor(rules []KeywordRule) *Extractor {
	e := &Extractor{}
	for _, rule := range rules {
		kw := strings.ToLower(rule.Keyword)
		switch rule.Category {
		case CategoryDecision:
			e.decisionKeywords = append(e.decisionKeywords, kw)
		case CategoryAction:
			e.actionKeywords = append(e.actionKeywords, kw)
		}
	}
	return e
}

// DecisionsActions walks the summary sentence by sentence and returns the
// sentences flagged as decisions and as actions, preserving their order of
// appearance. Decision keywords take precedence: a sentence matching both
// sets is classified as a decision only. Sentences matching neither are
// discarded.
func (e *Extractor) DecisionsActions(summary string) (decisions, actions []string) {
	for _, sentence := range SplitSentences(summary) {
		low := strings.ToLower(sentence)
		switch {
		case containsAny(low, e.decisionKeywords):
			decisions = append(decisions, sentence)
		case containsAny(low, e.actionKeywords):
			actions = append(actions, sentence)
		}
	}
	return decisions, actions
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
