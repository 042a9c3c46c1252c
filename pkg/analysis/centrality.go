package analysis

import (
	"container/list"
	"time"

	"github.com/nmorrow/socialgraph/pkg/graph"
	"github.com/nmorrow/socialgraph/pkg/logging"
	"github.com/nmorrow/socialgraph/pkg/metrics"
)

// ComputeCentrality computes normalized betweenness centrality for every node
// using a Brandes O(VE) pass: each node's score is the fraction of shortest
// paths between all other node pairs that run through it, in [0, 1]. Graphs
// with fewer than three nodes score zero everywhere; a nodeless graph yields
// an empty map and a warning, not an error.
func (a *Analyzer) ComputeCentrality() (map[string]float64, error) {
	start := time.Now()

	if a.graph.NodeCount() == 0 {
		a.logger.Warn("graph has no nodes")
		a.record("centrality", metrics.StatusEmpty, start, 0)
		return map[string]float64{}, nil
	}

	scores, err := brandesBetweenness(a.graph)
	if err != nil {
		wrapped := computationError("ComputeCentrality", err)
		a.logger.Error("centrality computation failed", logging.Error(wrapped))
		a.record("centrality", metrics.StatusError, start, 0)
		return nil, wrapped
	}

	a.logger.Info("computed betweenness centrality", logging.ResultCount(len(scores)))
	a.record("centrality", metrics.StatusSuccess, start, len(scores))
	return scores, nil
}

// brandesBetweenness accumulates shortest-path dependencies per node over a
// BFS from every source. The undirected accumulation counts each unordered
// pair twice, so the 1/((n-1)(n-2)) factor yields the standard normalized
// score (raw halved, then divided by (n-1)(n-2)/2 pairs).
func brandesBetweenness(g *graph.Graph) (map[string]float64, error) {
	nodes := g.Nodes()

	betweenness := make(map[string]float64, len(nodes))
	for _, node := range nodes {
		betweenness[node] = 0.0
	}

	for _, source := range nodes {
		stack := make([]string, 0, len(nodes))
		predecessors := make(map[string][]string, len(nodes))
		sigma := make(map[string]float64, len(nodes))
		distance := make(map[string]int, len(nodes))

		for _, node := range nodes {
			sigma[node] = 0.0
			distance[node] = -1
		}
		sigma[source] = 1.0
		distance[source] = 0

		queue := list.New()
		queue.PushBack(source)

		for queue.Len() > 0 {
			v, ok := queue.Remove(queue.Front()).(string)
			if !ok {
				continue
			}
			stack = append(stack, v)

			neighbors, err := g.Neighbors(v)
			if err != nil {
				return nil, err
			}

			for _, w := range neighbors {
				if distance[w] < 0 {
					queue.PushBack(w)
					distance[w] = distance[v] + 1
				}
				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Back-propagation of dependencies in reverse BFS order
		delta := make(map[string]float64, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, pred := range predecessors[w] {
				delta[pred] += (sigma[pred] / sigma[w]) * (1.0 + delta[w])
			}
			if w != source {
				betweenness[w] += delta[w]
			}
		}
	}

	if len(nodes) > 2 {
		normFactor := 1.0 / float64((len(nodes)-1)*(len(nodes)-2))
		for node := range betweenness {
			betweenness[node] *= normFactor
		}
	} else {
		for node := range betweenness {
			betweenness[node] = 0.0
		}
	}

	return betweenness, nil
}
