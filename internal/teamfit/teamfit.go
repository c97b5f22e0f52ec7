// Package teamfit scores a single candidate against a team roster, blending
// skill-gap coverage, personality similarity, and diversity.
package teamfit

import (
	"math"
	"sort"

	"github.com/cpkonha/talentgraph/internal/taxonomy"
	"github.com/cpkonha/talentgraph/internal/types"
)

// Weights of the blended team score.
const (
	coverageWeight    = 0.55
	personalityWeight = 0.35
	diversityWeight   = 0.10
)

// TeamScore is the fit breakdown for one team. PersonalityFit is an
// unclamped cosine in [-1,1]; the other components are in [0,1].
type TeamScore struct {
	TeamID         string  `json:"team_id"`
	TeamName       string  `json:"team_name"`
	Coverage       float64 `json:"coverage"`
	PersonalityFit float64 `json:"personality_fit"`
	Diversity      float64 `json:"diversity"`
	FinalScore     float64 `json:"final_score"`
}

// ScoreTeams scores every team for the candidate and returns all of them
// sorted descending by final score.
//
// Per team: gap = required - team skills; coverage is the fraction of the gap
// the candidate fills, 1.0 when the gap is empty (any candidate perfectly
// covers a non-existent gap). Diversity measures the candidate's overlap with
// the team's existing skills against the required-set size, not the team's
// own size, rewarding required-relevant novelty.
func ScoreTeams(candidate types.Candidate, teams []types.Team, required []string) []TeamScore {
	candidateSkills := candidate.SkillSet()
	requiredSet := taxonomy.CanonicalizeSet(required)
	candidateVector := candidate.Personality.Vector()

	scores := make([]TeamScore, 0, len(teams))
	for _, team := range teams {
		teamSkills := taxonomy.CanonicalizeSet(team.Skills)
		gap := requiredSet.Difference(teamSkills)

		coverage := 1.0
		if len(gap) > 0 {
			coverage = float64(candidateSkills.IntersectCount(gap)) / float64(len(gap))
		}

		personality := cosine(candidateVector, team.Personality.Vector())

		overlap := float64(candidateSkills.IntersectCount(teamSkills)) / float64(max(1, len(requiredSet)))
		diversity := 1.0 - overlap

		final := coverageWeight*coverage + personalityWeight*personality + diversityWeight*diversity

		scores = append(scores, TeamScore{
			TeamID:         team.ID,
			TeamName:       team.Name,
			Coverage:       coverage,
			PersonalityFit: personality,
			Diversity:      diversity,
			FinalScore:     final,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].FinalScore > scores[j].FinalScore
	})
	return scores
}

// cosine computes cosine similarity of two trait vectors; zero vectors
// yield 0.
func cosine(a, b [5]float64) float64 {
	dot, normA, normB := 0.0, 0.0, 0.0
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
