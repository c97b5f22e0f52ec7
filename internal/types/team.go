package types

// Team is one normalized team record. Skills are canonical tags; Personality
// is the team's Big Five centroid.
type Team struct {
	ID          string      `json:"team_id" validate:"required"`
	Name        string      `json:"team_name"`
	Skills      []string    `json:"team_skills"`
	Personality Personality `json:"personality"`
}

// SkillSet returns the team's skills as a set. An empty team skill set is
// valid and means the team covers nothing yet.
func (t Team) SkillSet() SkillSet {
	return NewSkillSet(t.Skills)
}
