package ranking

import "github.com/cpkonha/talentgraph/internal/types"

// requiredCoverage is the fraction of the required set present in the
// candidate's canonical skills.
func requiredCoverage(skills, required types.SkillSet) float64 {
	return float64(skills.IntersectCount(required)) / float64(max(1, len(required)))
}

// niceCoverage is the same ratio against the nice-to-have set, defined as 0.0
// when the nice set is empty. Absence of nice-to-have skills is no bonus, not
// full credit.
func niceCoverage(skills, nice types.SkillSet) float64 {
	if len(nice) == 0 {
		return 0.0
	}
	return float64(skills.IntersectCount(nice)) / float64(len(nice))
}

// experienceScores min-max scales years-of-experience across the pool. A
// degenerate pool where every candidate shares the same value scores 0 for
// all, so a flat column never manufactures differentiation.
func experienceScores(pool []types.Candidate) []float64 {
	scores := make([]float64, len(pool))
	if len(pool) == 0 {
		return scores
	}
	minYears := pool[0].YearsExperience
	maxYears := pool[0].YearsExperience
	for _, c := range pool[1:] {
		if c.YearsExperience < minYears {
			minYears = c.YearsExperience
		}
		if c.YearsExperience > maxYears {
			maxYears = c.YearsExperience
		}
	}
	if maxYears <= minYears {
		return scores
	}
	for i, c := range pool {
		scores[i] = (c.YearsExperience - minYears) / (maxYears - minYears)
	}
	return scores
}
