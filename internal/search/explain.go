package search

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tbourn/go-discovery-backend/internal/domain"
)

// Explain builds the one-sentence justification shown next to a result.
// It cites at most the first two matched keywords plus the matched count and
// falls back to a content-only sentence when nothing in matched is available.
// The output depends only on its arguments.
func Explain(kind domain.Kind, matched []string, confidence int, rec domain.Record) string {
	n := len(matched)
	if n == 0 {
		return fmt.Sprintf("This %s matches the search through its descriptive text (confidence %d, %s).",
			kindNoun(kind), confidence, countPhrase(0))
	}
	topics := topicPhrase(matched)

	switch kind {
	case domain.KindFaculty:
		who := "This faculty member"
		if f, ok := rec.(domain.Faculty); ok && strings.TrimSpace(f.Name) != "" {
			who = strings.TrimSpace(f.Name)
		}
		return fmt.Sprintf("%s's research interests align with %s, with %s.", who, topics, countPhrase(n))
	case domain.KindPaper:
		return fmt.Sprintf("This study focuses on %s, with %s.", topics, countPhrase(n))
	case domain.KindPatent:
		return fmt.Sprintf("The technology described in this patent applies to %s, with %s.", topics, countPhrase(n))
	case domain.KindProject:
		status := "research"
		if p, ok := rec.(domain.Project); ok && strings.TrimSpace(p.Status) != "" {
			// Casers are stateful, so one per call.
			status = cases.Lower(language.Und).String(strings.TrimSpace(p.Status))
		}
		return fmt.Sprintf("This %s project focuses on %s, with %s.", status, topics, countPhrase(n))
	}
	return fmt.Sprintf("This %s relates to %s, with %s.", kindNoun(kind), topics, countPhrase(n))
}

func topicPhrase(matched []string) string {
	if len(matched) == 1 {
		return matched[0]
	}
	return matched[0] + " and " + matched[1]
}

func countPhrase(n int) string {
	if n == 1 {
		return "1 matching keyword"
	}
	return fmt.Sprintf("%d matching keywords", n)
}

func kindNoun(k domain.Kind) string {
	switch k {
	case domain.KindFaculty:
		return "faculty profile"
	case domain.KindPaper:
		return "paper"
	case domain.KindPatent:
		return "patent"
	case domain.KindProject:
		return "project"
	}
	return "record"
}
