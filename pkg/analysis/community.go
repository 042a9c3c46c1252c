package analysis

import (
	"sort"
	"time"

	"github.com/nmorrow/socialgraph/pkg/graph"
	"github.com/nmorrow/socialgraph/pkg/logging"
	"github.com/nmorrow/socialgraph/pkg/metrics"
)

// DetectCommunities partitions the nodes into disjoint communities by greedy
// modularity maximization: starting from one singleton community per node, the
// connected pair of communities whose merge yields the largest modularity gain
// is merged until no merge increases modularity. Community indices identify a
// partition within one run and carry no further meaning; membership is the
// contract. A nodeless graph yields an empty map and a warning, not an error.
//
// Ties on modularity gain are broken deterministically in favor of the
// smallest community-label pair, with labels anchored to the lexicographic
// order of the nodes, so a given graph always produces the same partition.
func (a *Analyzer) DetectCommunities() (map[int][]string, error) {
	start := time.Now()

	if a.graph.NodeCount() == 0 {
		a.logger.Warn("graph has no nodes for community detection")
		a.record("communities", metrics.StatusEmpty, start, 0)
		return map[int][]string{}, nil
	}

	partition := greedyModularity(a.graph)

	result := make(map[int][]string, len(partition))
	for i, members := range partition {
		result[i] = members
	}

	a.logger.Info("detected communities", logging.ResultCount(len(result)))
	a.record("communities", metrics.StatusSuccess, start, len(result))
	return result, nil
}

// community tracks one block of the evolving partition. The label is the
// singleton index of its first member and never changes, which keeps the
// tie-break order stable across merges.
type community struct {
	members []string
	degree  int
}

// greedyModularity implements the Clauset-Newman-Moore greedy merge over
// Q = (1/2m) sum_ij [A_ij - k_i*k_j/2m] delta(c_i, c_j). Only connected
// community pairs can increase Q, so candidates come from the shrinking
// between-community edge table. An edgeless graph keeps every node in its
// own community.
func greedyModularity(g *graph.Graph) [][]string {
	nodes := g.Nodes()
	m := g.EdgeCount()

	index := make(map[string]int, len(nodes))
	for i, node := range nodes {
		index[node] = i
	}

	communities := make(map[int]*community, len(nodes))
	for i, node := range nodes {
		communities[i] = &community{
			members: []string{node},
			degree:  g.Degree(node),
		}
	}

	// links[{i, j}] counts edges between communities i and j (i < j).
	links := make(map[[2]int]int, m)
	for _, edge := range g.Edges() {
		i, j := index[edge.From], index[edge.To]
		if j < i {
			i, j = j, i
		}
		links[[2]int{i, j}]++
	}

	const eps = 1e-12
	mf := float64(m)

	for len(links) > 0 {
		pairs := make([][2]int, 0, len(links))
		for pair := range links {
			pairs = append(pairs, pair)
		}
		sort.Slice(pairs, func(a, b int) bool {
			if pairs[a][0] != pairs[b][0] {
				return pairs[a][0] < pairs[b][0]
			}
			return pairs[a][1] < pairs[b][1]
		})

		// Merging communities X and Y changes Q by
		// E_XY/m - D_X*D_Y/(2m^2); ascending pair order makes the first
		// of several equal gains win.
		bestGain := eps
		bestPair := [2]int{-1, -1}
		for _, pair := range pairs {
			between := float64(links[pair])
			di := float64(communities[pair[0]].degree)
			dj := float64(communities[pair[1]].degree)
			gain := between/mf - di*dj/(2.0*mf*mf)
			if gain > bestGain {
				bestGain = gain
				bestPair = pair
			}
		}
		if bestPair[0] < 0 {
			break
		}

		keep, gone := bestPair[0], bestPair[1]
		communities[keep].members = append(communities[keep].members, communities[gone].members...)
		communities[keep].degree += communities[gone].degree
		delete(communities, gone)

		remapped := make(map[[2]int]int, len(links))
		for pair, count := range links {
			i, j := pair[0], pair[1]
			if i == gone {
				i = keep
			}
			if j == gone {
				j = keep
			}
			if i == j {
				continue // absorbed into the merged community
			}
			if j < i {
				i, j = j, i
			}
			remapped[[2]int{i, j}] += count
		}
		links = remapped
	}

	partition := make([][]string, 0, len(communities))
	for _, c := range communities {
		members := make([]string, len(c.members))
		copy(members, c.members)
		sort.Strings(members)
		partition = append(partition, members)
	}
	sort.Slice(partition, func(a, b int) bool {
		return partition[a][0] < partition[b][0]
	})
	return partition
}
