package graph

import "math"

// DefaultAlpha is the teleportation probability of the stationary walk:
// the walk restarts at the role node with probability alpha and follows a
// weighted edge with probability 1-alpha.
const DefaultAlpha = 0.15

const (
	walkTolerance     = 1e-10
	walkMaxIterations = 100
)

// Relatedness carries the four independent graph signals for one role/
// candidate pair. No cross-signal normalization happens here; callers
// normalize across a candidate pool.
type Relatedness struct {
	Metapath   float64 `json:"metapath"`
	Stationary float64 `json:"stationary"`
	Jaccard    float64 `json:"jaccard"`
	AdamicAdar float64 `json:"adamic_adar"`
}

// Score computes all four signals for the pair. Absent nodes yield zeros.
func Score(g *Graph, roleNode, candidateNode string) Relatedness {
	return Relatedness{
		Metapath:   MetapathOverlap(g, roleNode, candidateNode),
		Stationary: StationaryRelatedness(g, roleNode, candidateNode, DefaultAlpha),
		Jaccard:    JaccardNeighbors(g, roleNode, candidateNode),
		AdamicAdar: AdamicAdar(g, roleNode, candidateNode),
	}
}

// MetapathOverlap counts role->skill<-candidate two-hop connections,
// normalized by the role's skill count. The ratio is directed: a candidate is
// not penalized for skills outside the role's requirement set.
func MetapathOverlap(g *Graph, roleNode, candidateNode string) float64 {
	if !g.HasNode(roleNode) || !g.HasNode(candidateNode) {
		return 0.0
	}
	roleSkills := g.skillNeighbors(roleNode)
	if len(roleSkills) == 0 {
		return 0.0
	}
	candidateSkills := g.skillNeighbors(candidateNode)
	shared := 0
	for skill := range roleSkills {
		if candidateSkills[skill] {
			shared++
		}
	}
	return float64(shared) / float64(len(roleSkills))
}

// StationaryRelatedness runs a random walk with restart whose teleport
// distribution places all mass on the role node, and returns the stationary
// visitation probability of the candidate node.
func StationaryRelatedness(g *Graph, roleNode, candidateNode string, alpha float64) float64 {
	if !g.HasNode(roleNode) || !g.HasNode(candidateNode) {
		return 0.0
	}
	dist := stationaryDistribution(g, roleNode, alpha)
	return dist[candidateNode]
}

// stationaryDistribution computes the walk's stationary distribution by
// power iteration over the weighted adjacency structure. Nodes with zero
// edge weight are dangling; their mass teleports back to the restart
// distribution so the walk stays well-defined.
func stationaryDistribution(g *Graph, sourceNode string, alpha float64) map[string]float64 {
	ids := g.NodeIDs()
	n := len(ids)
	if n == 0 {
		return map[string]float64{}
	}
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	damping := 1.0 - alpha

	teleport := make([]float64, n)
	teleport[index[sourceNode]] = 1.0

	weights := make([]float64, n)
	for i, id := range ids {
		weights[i] = g.WeightedDegree(id)
	}

	current := make([]float64, n)
	copy(current, teleport)
	next := make([]float64, n)

	for iter := 0; iter < walkMaxIterations; iter++ {
		danglingMass := 0.0
		for i := range next {
			next[i] = 0.0
		}
		for i, id := range ids {
			if weights[i] == 0 {
				danglingMass += current[i]
				continue
			}
			share := current[i] / weights[i]
			for neighbor, edge := range g.adj[id] {
				next[index[neighbor]] += share * edge.Weight
			}
		}

		delta := 0.0
		for i := range next {
			value := (1.0-damping)*teleport[i] + damping*(next[i]+danglingMass*teleport[i])
			delta += math.Abs(value - current[i])
			next[i] = value
		}
		current, next = next, current
		if delta < walkTolerance {
			break
		}
	}

	dist := make(map[string]float64, n)
	for i, id := range ids {
		dist[id] = current[i]
	}
	return dist
}

// JaccardNeighbors computes Jaccard similarity over the full neighbor sets of
// both nodes, all neighbor types included. The 0/0 case of two empty
// neighborhoods is defined as 0.
func JaccardNeighbors(g *Graph, a, b string) float64 {
	if !g.HasNode(a) || !g.HasNode(b) {
		return 0.0
	}
	na := g.neighborSet(a)
	nb := g.neighborSet(b)
	intersection := 0
	for id := range na {
		if nb[id] {
			intersection++
		}
	}
	union := len(na) + len(nb) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// AdamicAdar sums 1/ln(degree(z)) over common neighbors z, up-weighting rare
// shared skills relative to common ones. Neighbors of degree <= 1 contribute
// nothing; ln(1) would divide by zero.
func AdamicAdar(g *Graph, a, b string) float64 {
	if !g.HasNode(a) || !g.HasNode(b) {
		return 0.0
	}
	na := g.neighborSet(a)
	nb := g.neighborSet(b)
	score := 0.0
	for id := range na {
		if !nb[id] {
			continue
		}
		degree := g.Degree(id)
		if degree <= 1 {
			continue
		}
		score += 1.0 / math.Log(float64(degree))
	}
	return score
}
