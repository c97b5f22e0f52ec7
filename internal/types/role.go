package types

// RoleSpec describes the role a ranking session scores against. The two skill
// lists are disjoint in intent but not enforced disjoint; when a skill appears
// in both, the required interpretation wins downstream.
type RoleSpec struct {
	Role           string   `json:"role" validate:"required"`
	RequiredSkills []string `json:"required_skills"`
	NiceToHave     []string `json:"nice_to_have"`
}
