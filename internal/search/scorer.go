package search

import (
	"strings"
	"unicode/utf8"
)

const (
	// KeywordWeight is added for every (term, AI keyword) pair where either
	// string contains the other.
	KeywordWeight = 30
	// ContentWeight is added for every term found in the record content.
	ContentWeight = 15
	// MaxConfidence caps the summed score.
	MaxConfidence = 100
	// MinTermRunes is the shortest query term kept by Tokenize.
	MinTermRunes = 3
)

// Match is the outcome of scoring one record.
type Match struct {
	Confidence      int
	MatchedKeywords []string
}

// Tokenize lower-cases q, splits it on whitespace and drops terms shorter than
// MinTermRunes. Order and duplicates are preserved.
func Tokenize(q string) []string {
	return tokenize(q, MinTermRunes)
}

func tokenize(q string, minRunes int) []string {
	fields := strings.Fields(strings.ToLower(q))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minRunes {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Score rates one record against already tokenized query terms using the
// default weights. keywords are expected lower-cased (see domain.Record);
// content is lower-cased here.
//
// Containment is checked in both directions, so short terms produce false
// positives ("html" contains "ml"). That is accepted behaviour.
func Score(terms, keywords []string, content string) Match {
	return score(defaultConfig(), terms, keywords, content)
}

func score(cfg config, terms, keywords []string, content string) Match {
	content = strings.ToLower(content)
	raw := 0
	matched := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))

	for _, term := range terms {
		for _, kw := range keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(kw, term) || strings.Contains(term, kw) {
				raw += cfg.keywordWeight
				if _, dup := seen[kw]; !dup {
					seen[kw] = struct{}{}
					matched = append(matched, kw)
				}
			}
		}
		if strings.Contains(content, term) {
			raw += cfg.contentWeight
		}
	}

	if raw > MaxConfidence {
		raw = MaxConfidence
	}
	if raw < 0 {
		raw = 0
	}
	return Match{Confidence: raw, MatchedKeywords: matched}
}
