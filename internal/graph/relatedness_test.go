package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpkonha/talentgraph/internal/types"
)

// relatednessFixture builds a small pool: C1 covers both required skills,
// C2 covers one, C3 none.
func relatednessFixture() *Graph {
	role := types.RoleSpec{Role: "analyst", RequiredSkills: []string{"python", "sql"}}
	candidates := []types.Candidate{
		{ID: "C1", Name: "Asha", CanonicalSkills: []string{"python", "sql"}},
		{ID: "C2", Name: "Tomas", CanonicalSkills: []string{"python"}},
		{ID: "C3", Name: "Mira"},
	}
	return Build(role, candidates, nil, DefaultConfig())
}

func TestMetapathOverlap(t *testing.T) {
	g := relatednessFixture()

	assert.InDelta(t, 1.0, MetapathOverlap(g, "role:analyst", "candidate:C1"), 1e-12)
	assert.InDelta(t, 0.5, MetapathOverlap(g, "role:analyst", "candidate:C2"), 1e-12)
	assert.InDelta(t, 0.0, MetapathOverlap(g, "role:analyst", "candidate:C3"), 1e-12)
}

func TestMetapathOverlap_RoleWithoutSkills(t *testing.T) {
	role := types.RoleSpec{Role: "generalist"}
	g := Build(role, []types.Candidate{{ID: "C1", Name: "Asha", CanonicalSkills: []string{"python"}}}, nil, DefaultConfig())

	assert.Equal(t, 0.0, MetapathOverlap(g, "role:generalist", "candidate:C1"))
}

func TestMetapathOverlap_NotPenalizedForExtraSkills(t *testing.T) {
	role := types.RoleSpec{Role: "analyst", RequiredSkills: []string{"python"}}
	candidates := []types.Candidate{
		{ID: "C1", Name: "Asha", CanonicalSkills: []string{"python", "cloud", "java", "sql"}},
	}
	g := Build(role, candidates, nil, DefaultConfig())

	assert.InDelta(t, 1.0, MetapathOverlap(g, "role:analyst", "candidate:C1"), 1e-12)
}

func TestScore_AbsentNodesYieldZeros(t *testing.T) {
	g := relatednessFixture()

	r := Score(g, "role:analyst", "candidate:nope")
	assert.Equal(t, Relatedness{}, r)

	r = Score(g, "role:nope", "candidate:C1")
	assert.Equal(t, Relatedness{}, r)
}

func TestJaccardNeighbors(t *testing.T) {
	g := relatednessFixture()

	// Role and C1 share the identical neighborhood {python, sql}.
	assert.InDelta(t, 1.0, JaccardNeighbors(g, "role:analyst", "candidate:C1"), 1e-12)
	// {python, sql} vs {python}: 1 shared over 2 in the union.
	assert.InDelta(t, 0.5, JaccardNeighbors(g, "role:analyst", "candidate:C2"), 1e-12)
}

func TestJaccardNeighbors_Symmetric(t *testing.T) {
	g := relatednessFixture()

	ab := JaccardNeighbors(g, "role:analyst", "candidate:C2")
	ba := JaccardNeighbors(g, "candidate:C2", "role:analyst")
	assert.Equal(t, ab, ba)
}

func TestJaccardNeighbors_TwoIsolatedNodesIsZero(t *testing.T) {
	g := New()
	g.AddNode(&Node{ID: "candidate:C1", Type: NodeCandidate})
	g.AddNode(&Node{ID: "candidate:C2", Type: NodeCandidate})

	assert.Equal(t, 0.0, JaccardNeighbors(g, "candidate:C1", "candidate:C2"))
}

func TestAdamicAdar(t *testing.T) {
	g := relatednessFixture()

	// python has degree 3 (role, C1, C2); sql has degree 2 (role, C1).
	expected := 1.0/math.Log(3) + 1.0/math.Log(2)
	assert.InDelta(t, expected, AdamicAdar(g, "role:analyst", "candidate:C1"), 1e-12)
	assert.InDelta(t, 1.0/math.Log(3), AdamicAdar(g, "role:analyst", "candidate:C2"), 1e-12)
	assert.Equal(t, 0.0, AdamicAdar(g, "role:analyst", "candidate:C3"))
}

func TestAdamicAdar_Symmetric(t *testing.T) {
	g := relatednessFixture()

	ab := AdamicAdar(g, "role:analyst", "candidate:C2")
	ba := AdamicAdar(g, "candidate:C2", "role:analyst")
	assert.InDelta(t, ab, ba, 1e-12)
}

func TestAdamicAdar_DegreeOneNeighborSkipped(t *testing.T) {
	g := New()
	g.AddNode(&Node{ID: "candidate:C1", Type: NodeCandidate})
	g.AddNode(&Node{ID: "skill:python", Type: NodeSkill})
	g.AddEdge("candidate:C1", "skill:python", Edge{Type: EdgeHasSkill, Weight: 1.0})

	// The node's only shared neighbor with itself has degree 1; ln(1) is
	// guarded against, so the sum stays zero.
	assert.Equal(t, 0.0, AdamicAdar(g, "candidate:C1", "candidate:C1"))
}

func TestStationaryDistribution_SumsToOne(t *testing.T) {
	g := relatednessFixture()

	dist := stationaryDistribution(g, "role:analyst", DefaultAlpha)
	total := 0.0
	for _, p := range dist {
		require.GreaterOrEqual(t, p, 0.0)
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-6)
}

func TestStationaryRelatedness_OrdersByConnectivity(t *testing.T) {
	g := relatednessFixture()

	strong := StationaryRelatedness(g, "role:analyst", "candidate:C1", DefaultAlpha)
	weak := StationaryRelatedness(g, "role:analyst", "candidate:C2", DefaultAlpha)
	isolated := StationaryRelatedness(g, "role:analyst", "candidate:C3", DefaultAlpha)

	assert.Greater(t, strong, weak)
	assert.Greater(t, weak, 0.0)
	assert.Equal(t, 0.0, isolated)
}

func TestStationaryRelatedness_AbsentNode(t *testing.T) {
	g := relatednessFixture()

	assert.Equal(t, 0.0, StationaryRelatedness(g, "role:analyst", "candidate:nope", DefaultAlpha))
}
