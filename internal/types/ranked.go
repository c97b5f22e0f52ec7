package types

// RankedCandidate is the per-query scoring record the ranker produces for one
// candidate. It exists only for the duration of a ranking call.
type RankedCandidate struct {
	Candidate

	SemanticScore    float64 `json:"sem_score"`
	RequiredCoverage float64 `json:"coverage_required"`
	NiceCoverage     float64 `json:"coverage_nice"`
	ExperienceScore  float64 `json:"exp_score"`
	FinalScore       float64 `json:"final_score"`
}
