// Package types defines the candidate, team, and role records shared across
// the scoring engine.
package types

import "strings"

// Candidate is one normalized candidate record. CanonicalSkills is either
// supplied by the ingestion layer (already taxonomy-mapped) or derived from
// the record's text by the engine before any scoring happens.
type Candidate struct {
	ID              string      `json:"id" validate:"required"`
	Name            string      `json:"name" validate:"required"`
	ResumeText      string      `json:"resume_text"`
	SkillsText      string      `json:"skills_text"`
	CanonicalSkills []string    `json:"canonical_skills,omitempty"`
	YearsExperience float64     `json:"years_experience" validate:"gte=0"`
	Personality     Personality `json:"personality"`
	TeamID          string      `json:"team_id,omitempty"`
}

// Document concatenates the free-text body and the explicit skill text. This
// is the text the vector space is fitted over and the taxonomy matcher scans.
func (c Candidate) Document() string {
	return strings.TrimSpace(c.ResumeText + " " + c.SkillsText)
}

// SkillSet returns the candidate's canonical skills as a set.
func (c Candidate) SkillSet() SkillSet {
	return NewSkillSet(c.CanonicalSkills)
}
