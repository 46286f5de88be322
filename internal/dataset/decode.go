// Package dataset loads the knowledge-discovery dataset from a remote JSON
// endpoint, falls back to a built-in dataset when that fails, and holds the
// currently active dataset in a Store that the search engine reads from.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tbourn/go-discovery-backend/internal/domain"
)

// ErrNotObject is returned by Decode when the document is not a JSON object.
var ErrNotObject = errors.New("dataset document is not a JSON object")

// Collection names as they appear in the dataset document.
const (
	keyFaculty  = "faculty"
	keyPapers   = "papers"
	keyPatents  = "patents"
	keyProjects = "projects"
)

// Report describes what Decode had to coerce.
type Report struct {
	// Coerced lists collections that were absent, null or not an array.
	Coerced []string `json:"coerced,omitempty"`
	// Skipped counts array elements per collection that failed to decode.
	Skipped map[string]int `json:"skipped,omitempty"`
}

// Clean reports whether nothing was coerced or skipped.
func (r Report) Clean() bool { return len(r.Coerced) == 0 && len(r.Skipped) == 0 }

// Decode parses a dataset document. The top level must be a JSON object;
// each collection that is missing or of the wrong shape becomes an empty
// list, and elements that do not decode are dropped, without affecting the
// other collections. The returned Dataset is normalised.
func Decode(b []byte) (domain.Dataset, Report, error) {
	rep := Report{Skipped: map[string]int{}}

	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return domain.Dataset{}, rep, ErrNotObject
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(b, &top); err != nil {
		return domain.Dataset{}, rep, fmt.Errorf("%w: %v", ErrNotObject, err)
	}

	var ds domain.Dataset
	ds.Faculty = decodeCollection[domain.Faculty](top, keyFaculty, &rep)
	ds.Papers = decodeCollection[domain.Paper](top, keyPapers, &rep)
	ds.Patents = decodeCollection[domain.Patent](top, keyPatents, &rep)
	ds.Projects = decodeCollection[domain.Project](top, keyProjects, &rep)

	if len(rep.Skipped) == 0 {
		rep.Skipped = nil
	}
	return ds.Normalize(), rep, nil
}

func decodeCollection[T any](top map[string]json.RawMessage, key string, rep *Report) []T {
	raw, ok := top[key]
	if !ok {
		rep.Coerced = append(rep.Coerced, key)
		return []T{}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		rep.Coerced = append(rep.Coerced, key)
		return []T{}
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		var v T
		if bytes.Equal(it, []byte("null")) {
			rep.Skipped[key]++
			continue
		}
		if err := json.Unmarshal(it, &v); err != nil {
			rep.Skipped[key]++
			continue
		}
		out = append(out, v)
	}
	return out
}
