package domain

import (
	"encoding/json"
	"time"
)

// SearchResult wraps exactly one matched record.
//
// Confidence is a heuristic ranking score in [0,100], not a probability.
// MatchedKeywords holds the lower-cased AI keywords that matched at least one
// query term; it is empty (never nil) when the score came from content text.
type SearchResult struct {
	Type            Kind     `json:"type"`
	Data            Record   `json:"data"`
	Confidence      int      `json:"confidence"`
	AIJustification string   `json:"aiJustification"`
	MatchedKeywords []string `json:"matchedKeywords"`
}

// UnmarshalJSON decodes Data into the concrete record type named by Type.
func (r *SearchResult) UnmarshalJSON(b []byte) error {
	var raw struct {
		Type            Kind            `json:"type"`
		Data            json.RawMessage `json:"data"`
		Confidence      int             `json:"confidence"`
		AIJustification string          `json:"aiJustification"`
		MatchedKeywords []string        `json:"matchedKeywords"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var rec Record
	switch raw.Type {
	case KindFaculty:
		var v Faculty
		if err := json.Unmarshal(raw.Data, &v); err != nil {
			return err
		}
		rec = v
	case KindPaper:
		var v Paper
		if err := json.Unmarshal(raw.Data, &v); err != nil {
			return err
		}
		rec = v
	case KindPatent:
		var v Patent
		if err := json.Unmarshal(raw.Data, &v); err != nil {
			return err
		}
		rec = v
	case KindProject:
		var v Project
		if err := json.Unmarshal(raw.Data, &v); err != nil {
			return err
		}
		rec = v
	}
	*r = SearchResult{
		Type:            raw.Type,
		Data:            rec,
		Confidence:      raw.Confidence,
		AIJustification: raw.AIJustification,
		MatchedKeywords: raw.MatchedKeywords,
	}
	return nil
}

// SearchLog is an audit row written for every executed search. It records
// that a query ran and how it ranked, never the dataset contents.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - Query: the raw query text as submitted.
//   - Terms: normalised query terms joined by a single space.
//   - ResultCount: number of results returned after filtering.
//   - TopConfidence: confidence of the first result, 0 when none.
//   - RequestID: correlation id of the HTTP request, when any.
type SearchLog struct {
	ID            string    `json:"id"             gorm:"type:char(36);primaryKey"`
	Query         string    `json:"query"          gorm:"type:text;not null"`
	Terms         string    `json:"terms"          gorm:"type:text;not null;default:''"`
	ResultCount   int       `json:"result_count"   gorm:"not null;default:0"`
	TopConfidence int       `json:"top_confidence" gorm:"not null;default:0;check:top_confidence BETWEEN 0 AND 100"`
	RequestID     string    `json:"request_id,omitempty" gorm:"type:varchar(64)"`
	CreatedAt     time.Time `json:"created_at"     gorm:"index:idx_search_logs_created"`
}

// TableName returns the database table name for SearchLog.
func (SearchLog) TableName() string { return "search_logs" }
