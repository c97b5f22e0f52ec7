package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpkonha/talentgraph/internal/types"
)

func TestEvaluateTeam_GapSeverityByPosition(t *testing.T) {
	e := engineFixture()

	// C3 has no canonical skills; every required skill is a gap.
	result, err := e.EvaluateTeam([]string{"C3"}, []string{"python", "sql", "machine learning"})
	require.NoError(t, err)

	require.Len(t, result.Gaps, 3)
	// Missing skills are sorted; the first two are high severity.
	assert.Equal(t, Gap{Skill: "Machine Learning", Severity: SeverityHigh}, result.Gaps[0])
	assert.Equal(t, Gap{Skill: "Python", Severity: SeverityHigh}, result.Gaps[1])
	assert.Equal(t, Gap{Skill: "Sql", Severity: SeverityMedium}, result.Gaps[2])
}

func TestEvaluateTeam_NoGapsWhenGroupCoversRequired(t *testing.T) {
	e := engineFixture()

	result, err := e.EvaluateTeam([]string{"C1"}, []string{"python", "sql"})
	require.NoError(t, err)
	assert.Empty(t, result.Gaps)
}

func TestEvaluateTeam_ScoreBlendsAverageAndCoverage(t *testing.T) {
	e := engineFixture()

	result, err := e.EvaluateTeam([]string{"C2"}, []string{"python", "sql"})
	require.NoError(t, err)

	profile, err := e.Candidate("C2")
	require.NoError(t, err)

	// One missing skill out of two required.
	expected := 0.7*profile.FinalScore + 0.3*0.5
	assert.InDelta(t, expected, result.TeamScore, 1e-9)
}

func TestEvaluateTeam_ScoreWithinUnitInterval(t *testing.T) {
	e := engineFixture()

	result, err := e.EvaluateTeam([]string{"C1", "C2"}, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.TeamScore, 0.0)
	assert.LessOrEqual(t, result.TeamScore, 1.0)
}

func TestEvaluateTeam_UnknownCandidate(t *testing.T) {
	e := engineFixture()

	_, err := e.EvaluateTeam([]string{"C1", "ghost"}, nil)
	require.Error(t, err)

	var missing *MissingEntityError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "ghost", missing.ID)
}

func TestEvaluateTeam_DiversityMetrics(t *testing.T) {
	role := types.RoleSpec{Role: "analyst", RequiredSkills: []string{"python"}}
	candidates := []types.Candidate{
		{ID: "C1", Name: "Asha", CanonicalSkills: []string{"python"}, YearsExperience: 4,
			Personality: types.Personality{Openness: 0.2, Conscientiousness: 0.4, Extraversion: 0.6, Agreeableness: 0.8, Neuroticism: 0.4}},
		{ID: "C2", Name: "Tomas", CanonicalSkills: []string{"python"}, YearsExperience: 8,
			Personality: types.Personality{Openness: 0.6, Conscientiousness: 0.8, Extraversion: 0.2, Agreeableness: 0.4, Neuroticism: 0.6}},
	}
	e := New(role, candidates, nil, nil)

	result, err := e.EvaluateTeam([]string{"C1", "C2"}, nil)
	require.NoError(t, err)

	d := result.DiversityMetrics
	assert.Equal(t, 2, d.TeamSize)
	assert.InDelta(t, 0.4, d.Openness, 1e-12)
	assert.InDelta(t, 0.6, d.Conscientiousness, 1e-12)
	assert.InDelta(t, 0.4, d.Extraversion, 1e-12)
	assert.InDelta(t, 0.6, d.Agreeableness, 1e-12)
	assert.InDelta(t, 0.5, d.Neuroticism, 1e-12)
	assert.InDelta(t, 6.0, d.AvgExperience, 1e-12)
}

func TestEvaluateTeam_AlternativesCapAtThree(t *testing.T) {
	role := types.RoleSpec{Role: "analyst", RequiredSkills: []string{"python"}}
	candidates := make([]types.Candidate, 0, 6)
	for _, id := range []string{"C1", "C2", "C3", "C4", "C5", "C6"} {
		candidates = append(candidates, types.Candidate{
			ID: id, Name: id, CanonicalSkills: []string{"python"},
		})
	}
	e := New(role, candidates, nil, nil)

	result, err := e.EvaluateTeam([]string{"C1", "C2"}, nil)
	require.NoError(t, err)

	require.Len(t, result.Alternatives, 3)
	for _, alt := range result.Alternatives {
		assert.Len(t, alt.CandidateIDs, 2)
		assert.Contains(t, alt.Name, "Option")
	}
	assert.Equal(t, "Option 1", result.Alternatives[0].Name)
}

func TestEvaluateTeam_PluggableAlternatives(t *testing.T) {
	e := engineFixture()
	e.SetAlternatives(func(ranked []CandidateProfile, teamSize int) []Alternative {
		return []Alternative{{Name: "Custom", CandidateIDs: []string{"C1"}}}
	})

	result, err := e.EvaluateTeam([]string{"C1"}, nil)
	require.NoError(t, err)
	require.Len(t, result.Alternatives, 1)
	assert.Equal(t, "Custom", result.Alternatives[0].Name)
}

func TestTopFiveCombinations_DrawsFromTopFiveOnly(t *testing.T) {
	ranked := make([]CandidateProfile, 0, 7)
	for _, id := range []string{"C1", "C2", "C3", "C4", "C5", "C6", "C7"} {
		p := CandidateProfile{}
		p.ID = id
		ranked = append(ranked, p)
	}

	alternatives := TopFiveCombinations(ranked, 2)
	require.Len(t, alternatives, 3)
	for _, alt := range alternatives {
		for _, id := range alt.CandidateIDs {
			assert.Contains(t, []string{"C1", "C2", "C3", "C4", "C5"}, id)
		}
	}
}

func TestTopFiveCombinations_EmptyPool(t *testing.T) {
	assert.Nil(t, TopFiveCombinations(nil, 2))
}

func TestTopFiveCombinations_TeamSizeLargerThanPool(t *testing.T) {
	ranked := make([]CandidateProfile, 0, 2)
	for _, id := range []string{"C1", "C2"} {
		p := CandidateProfile{}
		p.ID = id
		ranked = append(ranked, p)
	}

	alternatives := TopFiveCombinations(ranked, 4)
	require.Len(t, alternatives, 1)
	assert.Equal(t, []string{"C1", "C2"}, alternatives[0].CandidateIDs)
}

func TestCombinations_LexicographicOrder(t *testing.T) {
	out := combinations([]string{"a", "b", "c"}, 2)
	assert.Equal(t, [][]string{{"a", "b"}, {"a", "c"}, {"b", "c"}}, out)
}

func TestRecommendTeams_ScoresRoster(t *testing.T) {
	e := engineFixture()

	scores, err := e.RecommendTeams("C1", nil)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "T1", scores[0].TeamID)
	// T1 covers sql; C1 fills the remaining python gap.
	assert.InDelta(t, 1.0, scores[0].Coverage, 1e-12)
}

func TestRecommendTeams_UnknownCandidate(t *testing.T) {
	e := engineFixture()

	_, err := e.RecommendTeams("ghost", nil)
	require.Error(t, err)

	var missing *MissingEntityError
	assert.True(t, errors.As(err, &missing))
}
