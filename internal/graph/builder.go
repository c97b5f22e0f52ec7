package graph

import (
	"github.com/cpkonha/talentgraph/internal/taxonomy"
	"github.com/cpkonha/talentgraph/internal/types"
)

// Config carries the edge weights used during graph construction.
type Config struct {
	WeightRequires    float64
	NiceToHaveFactor  float64
	WeightHasSkill    float64
	WeightCandidateOf float64
}

// DefaultConfig returns the standard edge weights.
func DefaultConfig() Config {
	return Config{
		WeightRequires:    1.0,
		NiceToHaveFactor:  0.6,
		WeightHasSkill:    1.0,
		WeightCandidateOf: 0.8,
	}
}

// Build constructs the typed entity graph for one (role, candidate pool,
// team pool) triple. Every skill referenced by any role, team, or candidate
// resolves to exactly one shared skill node. Construction is deterministic
// for a fixed input order: building twice from identical inputs yields
// identical node and edge sets.
func Build(role types.RoleSpec, candidates []types.Candidate, teams []types.Team, cfg Config) *Graph {
	g := New()

	roleNode := NodeID(NodeRole, role.Role)
	g.AddNode(&Node{ID: roleNode, Type: NodeRole, Name: role.Role})

	// Required skills go in before nice-to-haves so a skill listed in both
	// keeps its required edge; AddEdge refuses the downgrade regardless.
	for _, raw := range role.RequiredSkills {
		skill := taxonomy.CanonicalTag(raw)
		if skill == "" {
			continue
		}
		skillNode := NodeID(NodeSkill, skill)
		g.AddNode(&Node{ID: skillNode, Type: NodeSkill, Name: skill})
		g.AddEdge(roleNode, skillNode, Edge{Type: EdgeRequires, Weight: cfg.WeightRequires, Required: true})
	}
	for _, raw := range role.NiceToHave {
		skill := taxonomy.CanonicalTag(raw)
		if skill == "" {
			continue
		}
		skillNode := NodeID(NodeSkill, skill)
		g.AddNode(&Node{ID: skillNode, Type: NodeSkill, Name: skill})
		g.AddEdge(roleNode, skillNode, Edge{Type: EdgeRequires, Weight: cfg.WeightRequires * cfg.NiceToHaveFactor, Required: false})
	}

	for _, team := range teams {
		teamNode := NodeID(NodeTeam, team.ID)
		g.AddNode(&Node{ID: teamNode, Type: NodeTeam, Name: team.Name, Personality: team.Personality})
		for _, raw := range team.Skills {
			skill := taxonomy.CanonicalTag(raw)
			if skill == "" {
				continue
			}
			skillNode := NodeID(NodeSkill, skill)
			g.AddNode(&Node{ID: skillNode, Type: NodeSkill, Name: skill})
			g.AddEdge(teamNode, skillNode, Edge{Type: EdgeHasSkill, Weight: cfg.WeightHasSkill})
		}
	}

	for _, candidate := range candidates {
		candidateNode := NodeID(NodeCandidate, candidate.ID)
		g.AddNode(&Node{ID: candidateNode, Type: NodeCandidate, Name: candidate.Name, Years: candidate.YearsExperience})
		for _, skill := range candidateSkills(candidate) {
			skillNode := NodeID(NodeSkill, skill)
			g.AddNode(&Node{ID: skillNode, Type: NodeSkill, Name: skill})
			g.AddEdge(candidateNode, skillNode, Edge{Type: EdgeHasSkill, Weight: cfg.WeightHasSkill})
		}

		// Membership edge only when the team node already exists.
		if candidate.TeamID != "" {
			teamNode := NodeID(NodeTeam, candidate.TeamID)
			if g.HasNode(teamNode) {
				g.AddEdge(candidateNode, teamNode, Edge{Type: EdgeCandidateOf, Weight: cfg.WeightCandidateOf})
			}
		}
	}

	return g
}

// candidateSkills returns the candidate's canonical skills. An explicit
// pre-computed set is used as-is to avoid a second taxonomy pass; otherwise
// the set is derived from the record's combined text.
func candidateSkills(c types.Candidate) []string {
	if len(c.CanonicalSkills) > 0 {
		return c.CanonicalSkills
	}
	return taxonomy.Extract(c.Document()).Sorted()
}
