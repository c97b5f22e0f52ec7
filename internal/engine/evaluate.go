package engine

import (
	"fmt"

	"github.com/cpkonha/talentgraph/internal/taxonomy"
	"github.com/cpkonha/talentgraph/internal/teamfit"
	"github.com/cpkonha/talentgraph/internal/types"
)

// Gap severity values. The rule is ordinal and position-based: the first two
// missing required skills are high, the rest medium.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
)

const highSeverityGaps = 2

// Weights of the composed team score.
const (
	avgScoreWeight      = 0.7
	coverageRatioWeight = 0.3
)

// Gap is one required skill the selected group lacks.
type Gap struct {
	Skill    string `json:"skill"`
	Severity string `json:"severity"`
}

// DiversityMetrics summarizes the selected group: mean Big Five traits plus
// size and average experience.
type DiversityMetrics struct {
	Openness          float64 `json:"O"`
	Conscientiousness float64 `json:"C"`
	Extraversion      float64 `json:"E"`
	Agreeableness     float64 `json:"A"`
	Neuroticism       float64 `json:"N"`
	TeamSize          int     `json:"teamSize"`
	AvgExperience     float64 `json:"avgExperience"`
}

// Alternative is one suggested substitute lineup.
type Alternative struct {
	Name         string   `json:"name"`
	CandidateIDs []string `json:"candidateIds"`
}

// TeamEvaluation is the result of scoring a selected group of candidates.
type TeamEvaluation struct {
	TeamScore        float64          `json:"teamScore"`
	Gaps             []Gap            `json:"gaps"`
	DiversityMetrics DiversityMetrics `json:"diversityMetrics"`
	Alternatives     []Alternative    `json:"alternatives"`
}

// AlternativesFunc generates alternative lineups from the ranked pool. It is
// a pluggable strategy; the default enumerates combinations from the top
// five, a deliberate placeholder rather than a search.
type AlternativesFunc func(ranked []CandidateProfile, teamSize int) []Alternative

const (
	alternativesPoolSize = 5
	maxAlternatives      = 3
)

// TopFiveCombinations is the default strategy: up to three size-k
// combinations drawn from the top five ranked candidates.
func TopFiveCombinations(ranked []CandidateProfile, teamSize int) []Alternative {
	top := make([]string, 0, alternativesPoolSize)
	for _, profile := range ranked {
		if len(top) == alternativesPoolSize {
			break
		}
		top = append(top, profile.ID)
	}
	if len(top) == 0 {
		return nil
	}
	k := teamSize
	if k > len(top) {
		k = len(top)
	}
	if k < 1 {
		k = 1
	}

	alternatives := make([]Alternative, 0, maxAlternatives)
	for i, combo := range combinations(top, k) {
		if i == maxAlternatives {
			break
		}
		alternatives = append(alternatives, Alternative{
			Name:         fmt.Sprintf("Option %d", i+1),
			CandidateIDs: combo,
		})
	}
	return alternatives
}

// combinations enumerates size-k index combinations in lexicographic order.
func combinations(items []string, k int) [][]string {
	var out [][]string
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}
	for {
		combo := make([]string, k)
		for i, idx := range indices {
			combo[i] = items[idx]
		}
		out = append(out, combo)

		i := k - 1
		for i >= 0 && indices[i] == len(items)-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}

// EvaluateTeam scores a selected group of candidates against the required
// skills: blended average candidate score plus group coverage, the missing
// skills as ordered gaps, group diversity metrics, and alternative lineups.
// Unknown candidate ids return MissingEntityError.
func (e *Engine) EvaluateTeam(candidateIDs, required []string) (TeamEvaluation, error) {
	if len(required) == 0 {
		required = e.role.RequiredSkills
	}
	ranked := e.Rank(required, nil, len(e.candidates))

	lookup := make(map[string]CandidateProfile, len(ranked))
	for _, profile := range ranked {
		lookup[profile.ID] = profile
	}

	selected := make([]CandidateProfile, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		profile, ok := lookup[id]
		if !ok {
			return TeamEvaluation{}, &MissingEntityError{Kind: "candidate", ID: id}
		}
		selected = append(selected, profile)
	}

	avgScore := 0.0
	for _, profile := range selected {
		avgScore += profile.FinalScore
	}
	if len(selected) > 0 {
		avgScore /= float64(len(selected))
	}

	requiredSet := taxonomy.CanonicalizeSet(required)
	groupSkills := make(types.SkillSet)
	for _, profile := range selected {
		for _, skill := range profile.CanonicalSkills {
			groupSkills[skill] = true
		}
	}
	missing := requiredSet.Difference(groupSkills).Sorted()

	gaps := make([]Gap, 0, len(missing))
	for i, skill := range missing {
		severity := SeverityMedium
		if i < highSeverityGaps {
			severity = SeverityHigh
		}
		gaps = append(gaps, Gap{Skill: titleCase(skill), Severity: severity})
	}

	coverageRatio := 1.0
	if len(requiredSet) > 0 {
		coverageRatio = 1.0 - float64(len(missing))/float64(len(requiredSet))
	}
	teamScore := clamp01(avgScoreWeight*avgScore + coverageRatioWeight*coverageRatio)

	teamSize := len(selected)
	if teamSize < 1 {
		teamSize = 1
	}

	return TeamEvaluation{
		TeamScore:        teamScore,
		Gaps:             gaps,
		DiversityMetrics: diversityMetrics(selected),
		Alternatives:     e.alternatives(ranked, teamSize),
	}, nil
}

// RecommendTeams runs the team-fit scorer for one candidate against the
// engine's team roster. Unknown candidate ids return MissingEntityError.
func (e *Engine) RecommendTeams(candidateID string, required []string) ([]teamfit.TeamScore, error) {
	if len(required) == 0 {
		required = e.role.RequiredSkills
	}
	for _, candidate := range e.candidates {
		if candidate.ID == candidateID {
			return teamfit.ScoreTeams(candidate, e.teams, required), nil
		}
	}
	return nil, &MissingEntityError{Kind: "candidate", ID: candidateID}
}

func diversityMetrics(selected []CandidateProfile) DiversityMetrics {
	metrics := DiversityMetrics{
		Openness:          0.5,
		Conscientiousness: 0.5,
		Extraversion:      0.5,
		Agreeableness:     0.5,
		Neuroticism:       0.5,
		TeamSize:          len(selected),
	}
	if len(selected) == 0 {
		return metrics
	}

	var o, c, ex, a, n, years float64
	for _, profile := range selected {
		p := profile.Personality
		o += p.Openness
		c += p.Conscientiousness
		ex += p.Extraversion
		a += p.Agreeableness
		n += p.Neuroticism
		years += profile.YearsExperience
	}
	count := float64(len(selected))
	metrics.Openness = o / count
	metrics.Conscientiousness = c / count
	metrics.Extraversion = ex / count
	metrics.Agreeableness = a / count
	metrics.Neuroticism = n / count
	metrics.AvgExperience = years / count
	return metrics
}
