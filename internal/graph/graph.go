// Package graph builds the typed entity graph over roles, skills, candidates,
// and teams, and computes relatedness signals over it.
package graph

import (
	"sort"

	"github.com/cpkonha/talentgraph/internal/types"
)

// Node type constants.
const (
	NodeRole      = "role"
	NodeSkill     = "skill"
	NodeCandidate = "candidate"
	NodeTeam      = "team"
)

// Edge type constants.
const (
	EdgeRequires    = "REQUIRES"
	EdgeHasSkill    = "HAS_SKILL"
	EdgeCandidateOf = "CANDIDATE_OF"
)

// NodeID builds the wire-visible "<type>:<key>" identifier. The format is a
// convention other components rely on and must be preserved exactly.
func NodeID(nodeType, key string) string {
	return nodeType + ":" + key
}

// Node is one typed graph node. Years is set for candidate nodes and
// Personality for team nodes; other attributes are zero-valued.
type Node struct {
	ID          string
	Type        string
	Name        string
	Years       float64
	Personality types.Personality
}

// Edge is one undirected typed edge. Required is meaningful only for
// REQUIRES edges and distinguishes mandatory from nice-to-have skills.
type Edge struct {
	Type     string
	Weight   float64
	Required bool
}

// Graph is an undirected typed graph. At most one edge exists per unordered
// node pair. Once built for a (role, candidate pool, team pool) triple the
// graph is treated as immutable; relatedness queries never mutate it.
type Graph struct {
	nodes map[string]*Node
	adj   map[string]map[string]Edge
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		adj:   make(map[string]map[string]Edge),
	}
}

// AddNode inserts the node if absent. Re-adding an existing id keeps the
// first node, so shared skill nodes stay deduplicated across role, team, and
// candidate neighborhoods.
func (g *Graph) AddNode(n *Node) {
	if _, ok := g.nodes[n.ID]; ok {
		return
	}
	g.nodes[n.ID] = n
	g.adj[n.ID] = make(map[string]Edge)
}

// AddEdge inserts or overwrites the edge between a and b. Both nodes must
// already exist; edges to unknown nodes are dropped. A later insertion for
// the same pair overwrites the earlier edge, except that a REQUIRES edge with
// required=true is never downgraded by a non-required update.
func (g *Graph) AddEdge(a, b string, e Edge) {
	if _, ok := g.nodes[a]; !ok {
		return
	}
	if _, ok := g.nodes[b]; !ok {
		return
	}
	if existing, ok := g.adj[a][b]; ok {
		if existing.Type == EdgeRequires && existing.Required && !e.Required {
			return
		}
	}
	g.adj[a][b] = e
	g.adj[b][a] = e
}

// HasNode reports whether the id exists in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node for id, if present.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// EdgeBetween returns the edge between a and b, if one exists.
func (g *Graph) EdgeBetween(a, b string) (Edge, bool) {
	e, ok := g.adj[a][b]
	return e, ok
}

// Neighbors returns the ids adjacent to id, sorted for determinism. Unknown
// ids yield an empty slice.
func (g *Graph) Neighbors(id string) []string {
	edges := g.adj[id]
	out := make([]string, 0, len(edges))
	for neighbor := range edges {
		out = append(out, neighbor)
	}
	sort.Strings(out)
	return out
}

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id string) int {
	return len(g.adj[id])
}

// WeightedDegree returns the sum of edge weights incident to id.
func (g *Graph) WeightedDegree(id string) float64 {
	total := 0.0
	for _, e := range g.adj[id] {
		total += e.Weight
	}
	return total
}

// NodeIDs returns every node id, sorted.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NodesOfType returns the sorted ids of all nodes with the given type.
func (g *Graph) NodesOfType(nodeType string) []string {
	ids := make([]string, 0)
	for id, n := range g.nodes {
		if n.Type == nodeType {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// NumEdges returns the undirected edge count.
func (g *Graph) NumEdges() int {
	total := 0
	for _, edges := range g.adj {
		total += len(edges)
	}
	return total / 2
}

// skillNeighbors returns the skill-typed neighbors of id as a set.
func (g *Graph) skillNeighbors(id string) map[string]bool {
	out := make(map[string]bool)
	for neighbor := range g.adj[id] {
		if n, ok := g.nodes[neighbor]; ok && n.Type == NodeSkill {
			out[neighbor] = true
		}
	}
	return out
}

// neighborSet returns all neighbors of id as a set.
func (g *Graph) neighborSet(id string) map[string]bool {
	out := make(map[string]bool, len(g.adj[id]))
	for neighbor := range g.adj[id] {
		out[neighbor] = true
	}
	return out
}
