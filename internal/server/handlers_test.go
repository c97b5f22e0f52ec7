package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpkonha/talentgraph/internal/engine"
	"github.com/cpkonha/talentgraph/internal/types"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	role := types.RoleSpec{
		Role:           "data analyst",
		RequiredSkills: []string{"python", "sql"},
		NiceToHave:     []string{"cloud"},
	}
	candidates := []types.Candidate{
		{ID: "C1", Name: "Asha Rao", ResumeText: "Python and SQL analyst.",
			CanonicalSkills: []string{"python", "sql", "cloud"}, YearsExperience: 6, Personality: types.NeutralPersonality()},
		{ID: "C2", Name: "Tomas Ek", ResumeText: "Junior python developer.",
			CanonicalSkills: []string{"python"}, YearsExperience: 2, Personality: types.NeutralPersonality()},
		{ID: "C3", Name: "Mira Voss", ResumeText: "Support generalist.",
			YearsExperience: 3, Personality: types.NeutralPersonality()},
	}
	teams := []types.Team{
		{ID: "T1", Name: "Insights", Skills: []string{"sql"}, Personality: types.NeutralPersonality()},
	}

	srv, err := New(Config{Engine: engine.New(role, candidates, teams, nil)})
	require.NoError(t, err)
	return srv
}

func doRequest(srv *Server, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestNew_RequiresEngine(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleSearch_DefaultLimit(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodPost, "/search", `{"requiredSkills":["python","sql"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Candidates, 3)
	assert.Equal(t, "C1", resp.Candidates[0].ID)
	for i := 1; i < len(resp.Candidates); i++ {
		assert.GreaterOrEqual(t, resp.Candidates[i-1].Score, resp.Candidates[i].Score)
	}
}

func TestHandleSearch_SkillsAcceptDelimitedString(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodPost, "/search", `{"requiredSkills":"python; sql","niceToHave":"cloud"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Candidates)
	assert.InDelta(t, 1.0, resp.Candidates[0].SkillScore, 1e-9)
}

func TestHandleSearch_LimitTruncates(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodPost, "/search", `{"limit":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Candidates, 1)
	assert.Equal(t, 3, resp.Total)
}

func TestHandleSearch_LimitOutOfRange(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodPost, "/search", `{"limit":101}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(srv, http.MethodPost, "/search", `{"limit":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearch_InvalidBody(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodPost, "/search", `{"limit":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearch_QueryFilter(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodPost, "/search", `{"query":"tomas"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Candidates, 1)
	assert.Equal(t, "C2", resp.Candidates[0].ID)
}

func TestHandleSearch_QueryWithNoMatchesFallsBack(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodPost, "/search", `{"query":"zzzzz"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Candidates, 3)
}

func TestHandleGetCandidate(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodGet, "/candidates/C2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		CandidatePayload
		Personality map[string]float64 `json:"personality"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Tomas Ek", body.Name)
	assert.Equal(t, "data analyst", body.Title)
	assert.InDelta(t, 0.5, body.Personality["O"], 1e-12)
}

func TestHandleGetCandidate_NotFound(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodGet, "/candidates/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleEvaluateTeam(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodPost, "/team/evaluate", `{"candidateIds":["C1","C2"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var evaluation engine.TeamEvaluation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &evaluation))
	assert.GreaterOrEqual(t, evaluation.TeamScore, 0.0)
	assert.LessOrEqual(t, evaluation.TeamScore, 1.0)
	assert.Equal(t, 2, evaluation.DiversityMetrics.TeamSize)
}

func TestHandleEvaluateTeam_EmptySelection(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodPost, "/team/evaluate", `{"candidateIds":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEvaluateTeam_UnknownCandidate(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodPost, "/team/evaluate", `{"candidateIds":["ghost"]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleRecommendTeams(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodPost, "/teams/recommend", `{"candidateId":"C1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Teams []struct {
			TeamID     string  `json:"team_id"`
			FinalScore float64 `json:"final_score"`
		} `json:"teams"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Teams, 1)
	assert.Equal(t, "T1", body.Teams[0].TeamID)
}

func TestHandleRecommendTeams_MissingID(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodPost, "/teams/recommend", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRecommendTeams_UnknownCandidate(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodPost, "/teams/recommend", `{"candidateId":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleRelatedness(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodGet, "/relatedness?candidate_node=candidate:C1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rel struct {
		Metapath float64 `json:"metapath"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rel))
	assert.InDelta(t, 1.0, rel.Metapath, 1e-9)
}

func TestHandleRelatedness_RequiresCandidateNode(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(srv, http.MethodGet, "/relatedness", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
