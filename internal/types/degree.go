package types

import "strings"

// DegreeLevel is an ordinal education level. The zero value means the level
// is unknown or was not extracted.
type DegreeLevel string

// Degree levels in ascending order of rank.
const (
	DegreeHighSchool DegreeLevel = "high_school"
	DegreeAssociate  DegreeLevel = "associate"
	DegreeBachelor   DegreeLevel = "bachelor"
	DegreeMaster     DegreeLevel = "master"
	DegreeDoctorate  DegreeLevel = "doctorate"
)

// degreeRank maps degree levels to numeric ranks for comparison
var degreeRank = map[DegreeLevel]int{
	DegreeHighSchool: 1,
	DegreeAssociate:  2,
	DegreeBachelor:   3,
	DegreeMaster:     4,
	DegreeDoctorate:  5,
}

// Rank returns the ordinal rank of the level, or 0 for unknown levels.
func (d DegreeLevel) Rank() int {
	return degreeRank[d]
}

// Known reports whether d is one of the recognized degree levels.
func (d DegreeLevel) Known() bool {
	return d.Rank() > 0
}

// AtLeast reports whether d meets or exceeds the required level.
// An unknown level never satisfies a requirement.
func (d DegreeLevel) AtLeast(required DegreeLevel) bool {
	return d.Known() && d.Rank() >= required.Rank()
}

// degreeKeywords maps free-text degree markers to levels. Checked in order
// of descending rank so "PhD in CS, BSc in Math" resolves to doctorate.
var degreeKeywords = []struct {
	level    DegreeLevel
	keywords []string
}{
	{DegreeDoctorate, []string{"phd", "ph.d", "doctorate", "doctoral", "d.phil"}},
	{DegreeMaster, []string{"master", "m.s", "msc", "m.sc", "mba", "m.eng", "meng", "m.a."}},
	{DegreeBachelor, []string{"bachelor", "b.s", "bsc", "b.sc", "b.a", "b.eng", "beng", "undergraduate degree"}},
	{DegreeAssociate, []string{"associate", "a.s", "a.a"}},
	{DegreeHighSchool, []string{"high school", "highschool", "secondary school", "ged", "diploma"}},
}

// DegreeLevelFromText maps a free-text degree string such as
// "B.S. in Computer Science" or "Master of Business Administration" to a
// DegreeLevel. Returns the empty level when no marker is recognized.
func DegreeLevelFromText(text string) DegreeLevel {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return ""
	}
	if level := DegreeLevel(lower); level.Known() {
		return level
	}
	for _, entry := range degreeKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.level
			}
		}
	}
	return ""
}
