package types

// CandidateRecord is a parsed resume in the normalized form consumed by
// scoring. Like JobRequirement, records are created once by extraction,
// persisted, and reused across many ranking runs.
type CandidateRecord struct {
	// ID is a stable identifier, typically derived from the source file.
	ID     string   `json:"id"`
	Name   string   `json:"name,omitempty"`
	Skills []string `json:"skills"`

	Education  []EducationEntry  `json:"education,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`

	// Summary holds the candidate's professional summary, if present.
	Summary string `json:"summary,omitempty"`
}

// EducationEntry is a single educational qualification.
type EducationEntry struct {
	Institution string `json:"institution"`

	// DegreeLevel is empty when the degree could not be classified.
	DegreeLevel DegreeLevel `json:"degree_level,omitempty"`

	// RawDegree preserves the degree string as written on the resume
	// (e.g. "B.S. in Computer Science").
	RawDegree string `json:"raw_degree,omitempty"`

	GraduationYear *int `json:"graduation_year,omitempty"`
}

// ExperienceEntry is a single professional work experience entry. Dates are
// kept as written ("Jan 2020", "2020-03", "Present", or empty); years of
// experience are derived at scoring time, not stored.
type ExperienceEntry struct {
	Title     string `json:"title"`
	Company   string `json:"company,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// HighestDegree returns the highest classified degree level among the
// candidate's education entries. Entries with an unknown level are excluded.
// Returns the empty level when nothing is classifiable.
func (c *CandidateRecord) HighestDegree() DegreeLevel {
	var highest DegreeLevel
	for _, edu := range c.Education {
		if edu.DegreeLevel.Known() && edu.DegreeLevel.Rank() > highest.Rank() {
			highest = edu.DegreeLevel
		}
	}
	return highest
}
