package domain

// Dataset is the four-collection bundle searched as a unit. There is no
// referential integrity between collections.
type Dataset struct {
	Faculty  []Faculty `json:"faculty"`
	Papers   []Paper   `json:"papers"`
	Patents  []Patent  `json:"patents"`
	Projects []Project `json:"projects"`
}

// Counts is the number of records per collection.
type Counts struct {
	Faculty  int `json:"faculty"`
	Papers   int `json:"papers"`
	Patents  int `json:"patents"`
	Projects int `json:"projects"`
}

// Total sums all collections.
func (c Counts) Total() int { return c.Faculty + c.Papers + c.Patents + c.Projects }

// Counts reports the size of each collection.
func (d Dataset) Counts() Counts {
	return Counts{
		Faculty:  len(d.Faculty),
		Papers:   len(d.Papers),
		Patents:  len(d.Patents),
		Projects: len(d.Projects),
	}
}

// Records returns the records of one collection, in original order.
func (d Dataset) Records(k Kind) []Record {
	var out []Record
	switch k {
	case KindFaculty:
		out = make([]Record, len(d.Faculty))
		for i := range d.Faculty {
			out[i] = d.Faculty[i]
		}
	case KindPaper:
		out = make([]Record, len(d.Papers))
		for i := range d.Papers {
			out[i] = d.Papers[i]
		}
	case KindPatent:
		out = make([]Record, len(d.Patents))
		for i := range d.Patents {
			out[i] = d.Patents[i]
		}
	case KindProject:
		out = make([]Record, len(d.Projects))
		for i := range d.Projects {
			out[i] = d.Projects[i]
		}
	}
	return out
}

// Normalize returns a copy in which every collection and every list field is
// non-nil, so callers can range and serialise without nil checks.
func (d Dataset) Normalize() Dataset {
	out := Dataset{
		Faculty:  make([]Faculty, len(d.Faculty)),
		Papers:   make([]Paper, len(d.Papers)),
		Patents:  make([]Patent, len(d.Patents)),
		Projects: make([]Project, len(d.Projects)),
	}
	for i, f := range d.Faculty {
		f.ResearchInterests = nonNil(f.ResearchInterests)
		f.AIKeywords = nonNil(f.AIKeywords)
		out.Faculty[i] = f
	}
	for i, p := range d.Papers {
		p.Authors = nonNil(p.Authors)
		p.AIKeywords = nonNil(p.AIKeywords)
		out.Papers[i] = p
	}
	for i, p := range d.Patents {
		p.Inventors = nonNil(p.Inventors)
		p.AIKeywords = nonNil(p.AIKeywords)
		out.Patents[i] = p
	}
	for i, p := range d.Projects {
		p.LeadFaculty = nonNil(p.LeadFaculty)
		p.AIKeywords = nonNil(p.AIKeywords)
		out.Projects[i] = p
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
