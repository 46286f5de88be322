package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"whitespace", " \t\n ", []string{}},
		{"short words dropped", "a of to AI ml", []string{}},
		{"lowercased and split", "Machine  LEARNING\tresearch", []string{"machine", "learning", "research"}},
		{"three runes kept", "nlp", []string{"nlp"}},
		{"duplicates kept", "robot robot", []string{"robot", "robot"}},
		{"runes not bytes", "éé ñandú", []string{"ñandú"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestScore_KeywordBothDirections(t *testing.T) {
	// keyword contains term
	m := Score([]string{"machine"}, []string{"machine learning"}, "")
	assert.Equal(t, 30, m.Confidence)
	assert.Equal(t, []string{"machine learning"}, m.MatchedKeywords)

	// term contains keyword
	m = Score([]string{"cybersecurity"}, []string{"security"}, "")
	assert.Equal(t, 30, m.Confidence)
	assert.Equal(t, []string{"security"}, m.MatchedKeywords)
}

func TestScore_ExactKeywordRoundTrip(t *testing.T) {
	m := Score(Tokenize("cybersecurity"), []string{"cybersecurity", "networks"}, "")
	assert.GreaterOrEqual(t, m.Confidence, 30)
	assert.Contains(t, m.MatchedKeywords, "cybersecurity")
}

func TestScore_ContentContainmentOnly(t *testing.T) {
	m := Score([]string{"quantum", "computing", "absent"}, nil, "Quantum Computing Lab")
	assert.Equal(t, 30, m.Confidence)
	assert.Empty(t, m.MatchedKeywords)
	assert.NotNil(t, m.MatchedKeywords)
}

func TestScore_CountsEveryPairAndDedupsMatched(t *testing.T) {
	terms := []string{"robot", "robotics"}
	kws := []string{"robotics", "soft robotics"}
	// robot: both keywords contain it (+60); robotics: both contain it (+60) -> capped
	m := Score(terms, kws, "")
	assert.Equal(t, 100, m.Confidence)
	assert.Equal(t, []string{"robotics", "soft robotics"}, m.MatchedKeywords)
}

func TestScore_CappedAt100(t *testing.T) {
	terms := []string{"data", "data", "data", "data"}
	m := Score(terms, []string{"data"}, "data")
	assert.Equal(t, MaxConfidence, m.Confidence)
	assert.Equal(t, []string{"data"}, m.MatchedKeywords)
}

func TestScore_AdversarialInputs(t *testing.T) {
	assert.Equal(t, 0, Score(nil, nil, "").Confidence)
	assert.Equal(t, 0, Score([]string{}, []string{"x"}, "x").Confidence)
	// Blank keywords never match (every string contains "").
	m := Score([]string{"anything"}, []string{""}, "")
	assert.Equal(t, 0, m.Confidence)
	assert.Empty(t, m.MatchedKeywords)
}

func TestScore_KnownSubstringFalsePositive(t *testing.T) {
	// "html" contains "htm"; "rain" contains "rai". Both are accepted matches.
	m := Score([]string{"htm"}, []string{"html"}, "")
	assert.Equal(t, 30, m.Confidence)
	m = Score([]string{"rai"}, []string{"rain"}, "")
	assert.Equal(t, 30, m.Confidence)
}
