package ranking

import (
	"sort"
	"strings"

	"github.com/cpkonha/talentgraph/internal/taxonomy"
	"github.com/cpkonha/talentgraph/internal/types"
)

// Weights of the blended final score.
const (
	semanticWeight         = 0.55
	requiredCoverageWeight = 0.25
	niceCoverageWeight     = 0.10
	experienceWeight       = 0.10
)

// Ranker holds one candidate pool together with the vector space fitted over
// its documents. Construction is the expensive step; a Ranker is immutable
// afterwards and safe for concurrent use.
type Ranker struct {
	pool       []types.Candidate
	vectorizer *Vectorizer
	documents  []map[int]float64
}

// NewRanker fits the vector space over the pool. Candidates are expected to
// carry their canonical skill sets already; the engine populates them at the
// boundary.
func NewRanker(pool []types.Candidate) *Ranker {
	corpus := make([]string, len(pool))
	for i, c := range pool {
		corpus[i] = c.Document()
	}
	vectorizer := FitVectorizer(corpus)
	documents := make([]map[int]float64, len(pool))
	for i, doc := range corpus {
		documents[i] = vectorizer.Transform(doc)
	}
	return &Ranker{pool: pool, vectorizer: vectorizer, documents: documents}
}

// Pool returns the ranker's candidate pool in original order.
func (r *Ranker) Pool() []types.Candidate {
	return r.pool
}

// Rank scores every candidate against the required and nice-to-have skill
// lists and returns them sorted strictly descending by final score, truncated
// to min(limit, pool size). Ties keep the pool's original order; there is no
// secondary key.
func (r *Ranker) Rank(required, nice []string, limit int) []types.RankedCandidate {
	query := strings.Join(required, " ") + " " + strings.Join(nice, " ")
	queryVector := r.vectorizer.Transform(query)

	requiredSet := taxonomy.CanonicalizeSet(required)
	niceSet := taxonomy.CanonicalizeSet(nice)
	experience := experienceScores(r.pool)

	ranked := make([]types.RankedCandidate, 0, len(r.pool))
	for i, candidate := range r.pool {
		skills := candidate.SkillSet()
		semantic := CosineSimilarity(queryVector, r.documents[i])
		covRequired := requiredCoverage(skills, requiredSet)
		covNice := niceCoverage(skills, niceSet)

		final := semanticWeight*semantic +
			requiredCoverageWeight*covRequired +
			niceCoverageWeight*covNice +
			experienceWeight*experience[i]

		ranked = append(ranked, types.RankedCandidate{
			Candidate:        candidate,
			SemanticScore:    semantic,
			RequiredCoverage: covRequired,
			NiceCoverage:     covNice,
			ExperienceScore:  experience[i],
			FinalScore:       final,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})

	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}
