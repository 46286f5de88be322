// Package domain defines the record types of the knowledge-discovery
// directory (faculty, papers, patents, projects), the Dataset bundle that
// groups them, the ranked SearchResult returned by the search core, and the
// GORM-mapped SearchLog audit row.
//
// Record is a sealed interface: only the four record kinds in this package
// implement it, so a type switch over Record values is closed.
package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Kind discriminates the four record collections.
type Kind string

const (
	KindFaculty Kind = "faculty"
	KindPaper   Kind = "paper"
	KindPatent  Kind = "patent"
	KindProject Kind = "project"
)

// Kinds lists every record kind in collection order. Search results with equal
// confidence keep this order.
var Kinds = []Kind{KindFaculty, KindPaper, KindPatent, KindProject}

// ParseKind maps a user-supplied name ("paper", "Papers", " patent ") to a Kind.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "s")
	switch Kind(s) {
	case KindFaculty, KindPaper, KindPatent, KindProject:
		return Kind(s), true
	}
	return "", false
}

// ID is a record identifier. Upstream sources use both JSON strings and JSON
// numbers for ids; both decode into the same string form.
type ID string

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// Record is implemented by Faculty, Paper, Patent and Project.
type Record interface {
	// Kind reports which collection the record belongs to.
	Kind() Kind
	// RecordID returns the record identifier.
	RecordID() ID
	// Keywords returns the AI keywords lower-cased for matching, with blank
	// entries dropped. The record's own field is left untouched.
	Keywords() []string
	// Content returns the text searched by content containment.
	Content() string

	sealed()
}

// Faculty is a faculty member profile.
type Faculty struct {
	ID                ID       `json:"id"`
	Name              string   `json:"name"`
	Title             string   `json:"title"`
	Department        string   `json:"department"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Office            string   `json:"office"`
	Bio               string   `json:"bio"`
	ResearchInterests []string `json:"researchInterests"`
	AIKeywords        []string `json:"aiKeywords"`
}

// Paper is a published paper.
type Paper struct {
	ID         ID       `json:"id"`
	Title      string   `json:"title"`
	Authors    []string `json:"authors"`
	Year       int      `json:"year"`
	Abstract   string   `json:"abstract"`
	URL        string   `json:"url"`
	AIKeywords []string `json:"aiKeywords"`
}

// Patent is a granted or filed patent.
type Patent struct {
	ID           ID       `json:"id"`
	Title        string   `json:"title"`
	Inventors    []string `json:"inventors"`
	PatentNumber string   `json:"patentNumber"`
	Year         int      `json:"year"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	AIKeywords   []string `json:"aiKeywords"`
}

// Project is a research project. Status is free-form ("Active", "Completed").
// LeadFaculty holds display names, not references to Faculty records.
type Project struct {
	ID          ID       `json:"id"`
	Title       string   `json:"title"`
	LeadFaculty []string `json:"leadFaculty"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	AIKeywords  []string `json:"aiKeywords"`
}

func (Faculty) Kind() Kind { return KindFaculty }
func (Paper) Kind() Kind   { return KindPaper }
func (Patent) Kind() Kind  { return KindPatent }
func (Project) Kind() Kind { return KindProject }

func (f Faculty) RecordID() ID { return f.ID }
func (p Paper) RecordID() ID   { return p.ID }
func (p Patent) RecordID() ID  { return p.ID }
func (p Project) RecordID() ID { return p.ID }

func (f Faculty) Keywords() []string { return lowerKeywords(f.AIKeywords) }
func (p Paper) Keywords() []string   { return lowerKeywords(p.AIKeywords) }
func (p Patent) Keywords() []string  { return lowerKeywords(p.AIKeywords) }
func (p Project) Keywords() []string { return lowerKeywords(p.AIKeywords) }

// Content joins name, title, department, bio and research interests.
func (f Faculty) Content() string {
	return joinFields(f.Name, f.Title, f.Department, f.Bio, strings.Join(f.ResearchInterests, " "))
}

// Content joins title, abstract and authors.
func (p Paper) Content() string {
	return joinFields(p.Title, p.Abstract, strings.Join(p.Authors, " "))
}

// Content joins title, description and inventors.
func (p Patent) Content() string {
	return joinFields(p.Title, p.Description, strings.Join(p.Inventors, " "))
}

// Content joins title, description and lead faculty.
func (p Project) Content() string {
	return joinFields(p.Title, p.Description, strings.Join(p.LeadFaculty, " "))
}

func (Faculty) sealed() {}
func (Paper) sealed()   {}
func (Patent) sealed()  {}
func (Project) sealed() {}

func lowerKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

func joinFields(parts ...string) string {
	return strings.Join(parts, " ")
}
