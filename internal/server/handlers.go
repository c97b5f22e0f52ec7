package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cpkonha/talentgraph/internal/engine"
	"github.com/cpkonha/talentgraph/internal/graph"
	"github.com/cpkonha/talentgraph/internal/ingest"
	"github.com/cpkonha/talentgraph/internal/observability"
	"github.com/cpkonha/talentgraph/internal/store"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 100
)

// SearchRequest is the body of POST /search. Skill fields accept either an
// array of strings or a single delimited string.
type SearchRequest struct {
	ProjectName    string           `json:"projectName,omitempty"`
	Query          string           `json:"query,omitempty"`
	RequiredSkills ingest.SkillList `json:"requiredSkills,omitempty"`
	NiceToHave     ingest.SkillList `json:"niceToHave,omitempty"`
	Limit          int              `json:"limit,omitempty"`
}

// CandidatePayload is the presentation record for one candidate.
type CandidatePayload struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Title           string            `json:"title"`
	Score           float64           `json:"score"`
	SkillScore      float64           `json:"skillScore"`
	NetworkScore    float64           `json:"networkScore"`
	SemanticScore   float64           `json:"semanticScore"`
	CoverageNice    float64           `json:"coverageNice"`
	YearsExperience float64           `json:"yearsExperience"`
	TopSkills       []string          `json:"topSkills"`
	CanonicalSkills []string          `json:"canonicalSkills"`
	ResumeText      string            `json:"resumeText"`
	Relatedness     graph.Relatedness `json:"relatedness"`
	RationaleShort  string            `json:"rationaleShort"`
	RationaleFull   string            `json:"rationaleFull"`
}

// SearchResponse is the body returned by POST /search.
type SearchResponse struct {
	Candidates []CandidatePayload `json:"candidates"`
	Total      int                `json:"total"`
}

// TeamEvaluationRequest is the body of POST /team/evaluate.
type TeamEvaluationRequest struct {
	CandidateIDs   []string         `json:"candidateIds"`
	RequiredSkills ingest.SkillList `json:"requiredSkills,omitempty"`
}

// RecommendTeamsRequest is the body of POST /teams/recommend.
type RecommendTeamsRequest struct {
	CandidateID    string           `json:"candidateId"`
	RequiredSkills ingest.SkillList `json:"requiredSkills,omitempty"`
}

func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	fields := observability.RequestFields(uuid.New().String(), r.Method, r.URL.Path)
	return observability.WithFields(s.logger, fields...)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	logger := s.requestLogger(r)

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Limit == 0 {
		req.Limit = defaultSearchLimit
	}
	if req.Limit < 1 || req.Limit > maxSearchLimit {
		s.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and 100")
		return
	}

	// Score the whole pool; the limit applies after the optional post-filter.
	profiles := s.engine.Rank(req.RequiredSkills, req.NiceToHave, s.engine.PoolSize())
	candidates := make([]CandidatePayload, 0, len(profiles))
	for _, profile := range profiles {
		candidates = append(candidates, candidatePayload(profile, s.engine.Role().Role))
	}

	if req.Query != "" {
		if filtered := filterByQuery(candidates, req.Query); len(filtered) > 0 {
			candidates = filtered
		}
	}

	limited := candidates
	if req.Limit < len(limited) {
		limited = limited[:req.Limit]
	}

	logger.Info("search served",
		zap.Int("pool_results", len(candidates)),
		zap.Int("returned", len(limited)),
	)
	s.auditSearch(req, limited, logger)

	s.jsonResponse(w, http.StatusOK, SearchResponse{Candidates: limited, Total: len(candidates)})
}

// filterByQuery applies the free-text post-filter over names and canonical
// skills. An empty filter result falls back to the unfiltered list.
func filterByQuery(candidates []CandidatePayload, query string) []CandidatePayload {
	queryLower := strings.ToLower(query)
	filtered := make([]CandidatePayload, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate.Name), queryLower) {
			filtered = append(filtered, candidate)
			continue
		}
		for _, skill := range candidate.CanonicalSkills {
			if strings.Contains(strings.ToLower(skill), queryLower) {
				filtered = append(filtered, candidate)
				break
			}
		}
	}
	return filtered
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Candidate ID is required")
		return
	}

	profile, err := s.engine.Candidate(id)
	if err != nil {
		var missing *engine.MissingEntityError
		if errors.As(err, &missing) {
			s.errorResponse(w, http.StatusNotFound, "Candidate not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	payload := candidatePayload(profile, s.engine.Role().Role)
	s.jsonResponse(w, http.StatusOK, struct {
		CandidatePayload
		Personality map[string]float64 `json:"personality"`
	}{
		CandidatePayload: payload,
		Personality: map[string]float64{
			"O": profile.Personality.Openness,
			"C": profile.Personality.Conscientiousness,
			"E": profile.Personality.Extraversion,
			"A": profile.Personality.Agreeableness,
			"N": profile.Personality.Neuroticism,
		},
	})
}

func (s *Server) handleEvaluateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.CandidateIDs) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "candidateIds required")
		return
	}

	evaluation, err := s.engine.EvaluateTeam(req.CandidateIDs, req.RequiredSkills)
	if err != nil {
		var missing *engine.MissingEntityError
		if errors.As(err, &missing) {
			s.errorResponse(w, http.StatusNotFound, missing.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, evaluation)
}

func (s *Server) handleRecommendTeams(w http.ResponseWriter, r *http.Request) {
	var req RecommendTeamsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.CandidateID == "" {
		s.errorResponse(w, http.StatusBadRequest, "candidateId required")
		return
	}

	scores, err := s.engine.RecommendTeams(req.CandidateID, req.RequiredSkills)
	if err != nil {
		var missing *engine.MissingEntityError
		if errors.As(err, &missing) {
			s.errorResponse(w, http.StatusNotFound, missing.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"teams": scores})
}

// handleRelatedness is the low-level diagnostics endpoint: raw signals for
// an arbitrary node pair. Absent nodes yield zeros.
func (s *Server) handleRelatedness(w http.ResponseWriter, r *http.Request) {
	roleNode := r.URL.Query().Get("role_node")
	candidateNode := r.URL.Query().Get("candidate_node")
	if roleNode == "" {
		roleNode = s.engine.RoleNode()
	}
	if candidateNode == "" {
		s.errorResponse(w, http.StatusBadRequest, "candidate_node is required")
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.Relatedness(roleNode, candidateNode))
}

// auditSearch persists the search when a store is configured. Best effort:
// failures are logged, never surfaced.
func (s *Server) auditSearch(req SearchRequest, results []CandidatePayload, logger *zap.Logger) {
	if s.store == nil {
		return
	}
	top := make([]string, 0, len(results))
	for _, candidate := range results {
		top = append(top, candidate.ID)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.store.SaveSearch(ctx, store.SearchAudit{
		ID:            uuid.New(),
		RequiredSkill: req.RequiredSkills,
		NiceToHave:    req.NiceToHave,
		Limit:         req.Limit,
		TopCandidates: top,
	})
	if err != nil {
		logger.Warn("failed to save search audit", zap.Error(err))
	}
}

func candidatePayload(profile engine.CandidateProfile, roleTitle string) CandidatePayload {
	return CandidatePayload{
		ID:              profile.ID,
		Name:            profile.Name,
		Title:           roleTitle,
		Score:           profile.FinalScore,
		SkillScore:      profile.RequiredCoverage,
		NetworkScore:    profile.NetworkScore,
		SemanticScore:   profile.SemanticScore,
		CoverageNice:    profile.NiceCoverage,
		YearsExperience: profile.YearsExperience,
		TopSkills:       profile.TopSkills,
		CanonicalSkills: profile.CanonicalSkills,
		ResumeText:      profile.ResumeText,
		Relatedness:     profile.Relatedness,
		RationaleShort:  profile.RationaleShort,
		RationaleFull:   profile.RationaleFull,
	}
}
