// Package engine composes the candidate ranker and the graph relatedness
// signals into presentation-ready records, owning the one-time construction
// of the entity graph and the fitted vector space.
package engine

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/cpkonha/talentgraph/internal/graph"
	"github.com/cpkonha/talentgraph/internal/ranking"
	"github.com/cpkonha/talentgraph/internal/taxonomy"
	"github.com/cpkonha/talentgraph/internal/types"
)

// Weights of the network relatedness blend. Jaccard is computed and surfaced
// but carries no weight in this particular blend.
const (
	metapathWeight   = 0.5
	stationaryWeight = 0.3
	adamicAdarWeight = 0.2
)

const maxTopSkills = 6

// CandidateProfile is the presentation-ready record for one candidate: the
// ranker's scores plus the normalized network facet. The network score is
// exposed alongside, never fused into, the ranker's final score.
type CandidateProfile struct {
	types.RankedCandidate

	Relatedness    graph.Relatedness `json:"relatedness"`
	NetworkScore   float64           `json:"network_score"`
	TopSkills      []string          `json:"top_skills"`
	RationaleShort string            `json:"rationale_short"`
	RationaleFull  string            `json:"rationale_full"`
}

// artifacts are the expensive build products: immutable after construction
// and safe for unlimited concurrent readers.
type artifacts struct {
	graph  *graph.Graph
	ranker *ranking.Ranker
}

// Engine scores one fixed (role, candidate pool, team pool) triple. The
// graph and vector space are built at most once per Engine and reused
// read-only across all ranking calls.
type Engine struct {
	role       types.RoleSpec
	candidates []types.Candidate
	teams      []types.Team
	logger     *zap.Logger

	group      singleflight.Group
	mu         sync.RWMutex
	built      *artifacts
	buildCount int

	alternatives AlternativesFunc
}

// New prepares an engine for the given inputs. Candidate skill sets are
// canonicalized here, once, so every downstream component sees the same
// deduplicated tags: records with an explicit pre-computed set keep it;
// all others get a taxonomy pass over their combined text.
func New(role types.RoleSpec, candidates []types.Candidate, teams []types.Team, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	pool := make([]types.Candidate, len(candidates))
	copy(pool, candidates)
	for i := range pool {
		if len(pool[i].CanonicalSkills) > 0 {
			pool[i].CanonicalSkills = taxonomy.CanonicalizeAll(pool[i].CanonicalSkills)
		} else {
			pool[i].CanonicalSkills = taxonomy.Extract(pool[i].Document()).Sorted()
		}
	}
	return &Engine{
		role:         role,
		candidates:   pool,
		teams:        teams,
		logger:       logger,
		alternatives: TopFiveCombinations,
	}
}

// SetAlternatives replaces the alternatives generation strategy. Must be
// called before the engine serves traffic.
func (e *Engine) SetAlternatives(fn AlternativesFunc) {
	if fn != nil {
		e.alternatives = fn
	}
}

// RoleNode returns the role's graph node id.
func (e *Engine) RoleNode() string {
	return graph.NodeID(graph.NodeRole, e.role.Role)
}

// Role returns the role spec this engine scores against.
func (e *Engine) Role() types.RoleSpec {
	return e.role
}

// Teams returns the engine's team roster.
func (e *Engine) Teams() []types.Team {
	return e.teams
}

// PoolSize returns the number of candidates in the pool.
func (e *Engine) PoolSize() int {
	return len(e.candidates)
}

// build returns the memoized graph and ranker, constructing them on first
// use. The singleflight group guarantees at most one build executes even
// under concurrent callers; reads afterwards take only the RLock.
func (e *Engine) build() *artifacts {
	e.mu.RLock()
	if e.built != nil {
		defer e.mu.RUnlock()
		return e.built
	}
	e.mu.RUnlock()

	result, _, _ := e.group.Do("build", func() (any, error) {
		e.mu.RLock()
		cached := e.built
		e.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		g := graph.Build(e.role, e.candidates, e.teams, graph.DefaultConfig())
		ranker := ranking.NewRanker(e.candidates)
		built := &artifacts{graph: g, ranker: ranker}

		e.mu.Lock()
		e.built = built
		e.buildCount++
		e.mu.Unlock()

		e.logger.Info("scoring artifacts built",
			zap.Int("graph_nodes", g.NumNodes()),
			zap.Int("graph_edges", g.NumEdges()),
			zap.Int("candidates", len(e.candidates)),
			zap.Int("teams", len(e.teams)),
		)
		return built, nil
	})
	return result.(*artifacts)
}

// Rank scores the whole pool against the required and nice-to-have lists
// (falling back to the role's own lists when one is empty) and returns the
// top candidates, each carrying both the ranker facet and the network facet.
func (e *Engine) Rank(required, nice []string, limit int) []CandidateProfile {
	if len(required) == 0 {
		required = e.role.RequiredSkills
	}
	if len(nice) == 0 {
		nice = e.role.NiceToHave
	}

	built := e.build()
	ranked := built.ranker.Rank(required, nice, len(e.candidates))

	roleNode := e.RoleNode()
	signals := make([]graph.Relatedness, len(ranked))
	var maxMetapath, maxStationary, maxAdamicAdar float64
	for i, rc := range ranked {
		signals[i] = graph.Score(built.graph, roleNode, graph.NodeID(graph.NodeCandidate, rc.ID))
		maxMetapath = maxFloat(maxMetapath, signals[i].Metapath)
		maxStationary = maxFloat(maxStationary, signals[i].Stationary)
		maxAdamicAdar = maxFloat(maxAdamicAdar, signals[i].AdamicAdar)
	}

	profiles := make([]CandidateProfile, 0, len(ranked))
	for i, rc := range ranked {
		// Normalization divides by the pool maximum only; a zero maximum
		// normalizes every candidate to zero.
		network := metapathWeight*normalizeByMax(signals[i].Metapath, maxMetapath) +
			stationaryWeight*normalizeByMax(signals[i].Stationary, maxStationary) +
			adamicAdarWeight*normalizeByMax(signals[i].AdamicAdar, maxAdamicAdar)

		rc.FinalScore = clamp01(rc.FinalScore)
		rc.SemanticScore = clamp01(rc.SemanticScore)
		rc.RequiredCoverage = clamp01(rc.RequiredCoverage)
		rc.NiceCoverage = clamp01(rc.NiceCoverage)
		rc.ExperienceScore = clamp01(rc.ExperienceScore)

		profiles = append(profiles, CandidateProfile{
			RankedCandidate: rc,
			Relatedness:     signals[i],
			NetworkScore:    clamp01(network),
			TopSkills:       topSkills(rc.CanonicalSkills),
			RationaleShort:  rationaleShort(rc),
			RationaleFull:   rationaleFull(rc, signals[i]),
		})
	}

	if limit < len(profiles) {
		profiles = profiles[:limit]
	}
	return profiles
}

// Candidate returns the scored profile for one candidate under the role's
// default skill lists. Unknown ids return MissingEntityError.
func (e *Engine) Candidate(id string) (CandidateProfile, error) {
	for _, profile := range e.Rank(nil, nil, len(e.candidates)) {
		if profile.ID == id {
			return profile, nil
		}
	}
	return CandidateProfile{}, &MissingEntityError{Kind: "candidate", ID: id}
}

// Relatedness computes the four raw signals for an arbitrary pair of node
// ids. Diagnostics only: absent nodes yield zeros, not errors.
func (e *Engine) Relatedness(roleNode, candidateNode string) graph.Relatedness {
	return graph.Score(e.build().graph, roleNode, candidateNode)
}

// Graph exposes the built entity graph for diagnostics.
func (e *Engine) Graph() *graph.Graph {
	return e.build().graph
}

func normalizeByMax(value, poolMax float64) float64 {
	if poolMax == 0 {
		return 0.0
	}
	return value / poolMax
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxFloat(a, b float64) float64 {
	if b > a {
		return b
	}
	return a
}

// topSkills title-cases up to maxTopSkills canonical tags for display.
func topSkills(skills []string) []string {
	out := make([]string, 0, maxTopSkills)
	for _, s := range skills {
		if len(out) == maxTopSkills {
			break
		}
		out = append(out, titleCase(s))
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func rationaleShort(rc types.RankedCandidate) string {
	return fmt.Sprintf("%s covers %d%% of required skills and brings %.0f years experience.",
		rc.Name, int(rc.RequiredCoverage*100+0.5), rc.YearsExperience)
}

func rationaleFull(rc types.RankedCandidate, rel graph.Relatedness) string {
	return fmt.Sprintf("Semantic similarity %.2f, required skill coverage %d%% plus optional skill coverage %d%%."+
		" Graph meta-path: %.3f, stationary walk: %.4f, Adamic/Adar: %.3f.",
		rc.SemanticScore, int(rc.RequiredCoverage*100+0.5), int(rc.NiceCoverage*100+0.5),
		rel.Metapath, rel.Stationary, rel.AdamicAdar)
}
