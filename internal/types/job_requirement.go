// Package types provides the structured data shapes shared by extraction,
// persistence, and the scoring engine.
package types

// JobRequirement is a parsed job description in the normalized form consumed
// by scoring. Instances are created once by extraction, persisted, and
// treated as immutable afterwards.
type JobRequirement struct {
	ID               string   `json:"id,omitempty"`
	Title            string   `json:"title"`
	MustHaveSkills   []string `json:"must_have_skills"`
	NiceToHaveSkills []string `json:"nice_to_have_skills"`

	// MinYearsExperience is nil when the JD does not state a minimum.
	MinYearsExperience *float64 `json:"min_years_experience,omitempty"`

	// RequiredEducation is empty when the JD has no education requirement.
	RequiredEducation DegreeLevel `json:"required_education,omitempty"`

	// Description holds the raw JD text, used as the semantic search query.
	Description string `json:"description,omitempty"`
}

// DedupeSkills enforces the must-have/nice-to-have disjointness invariant:
// a skill listed in both sets stays must-have and is dropped from
// nice-to-have. Skill lists are assumed to be already normalized.
func (j *JobRequirement) DedupeSkills() {
	if len(j.MustHaveSkills) == 0 || len(j.NiceToHaveSkills) == 0 {
		return
	}

	must := make(map[string]bool, len(j.MustHaveSkills))
	for _, skill := range j.MustHaveSkills {
		must[skill] = true
	}

	nice := j.NiceToHaveSkills[:0]
	for _, skill := range j.NiceToHaveSkills {
		if !must[skill] {
			nice = append(nice, skill)
		}
	}
	j.NiceToHaveSkills = nice
}
