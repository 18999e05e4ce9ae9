package path

import "testing"

// lineGraph connects i with i-1 and i+1 on 0..n-1, except across the gap node.
type lineGraph struct {
	n   int
	gap int
}

func (g lineGraph) GetNeighbors(node int) []int {
	var neighbors []int
	for _, next := range []int{node - 1, node + 1} {
		if next >= 0 && next < g.n && next != g.gap {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

func (g lineGraph) GetCost(currentNode int, neighbor int) float64 {
	return 1
}

func TestShortestPathOnLine(t *testing.T) {
	path := ShortestPath(0, 4, 100, lineGraph{n: 6, gap: -1})
	if len(path) != 5 {
		t.Fatalf("expected 5 nodes, got %v", path)
	}
	for i, node := range path {
		if node != i {
			t.Fatalf("expected node %d at %d, got %v", i, i, path)
		}
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	if path := ShortestPath(0, 4, 100, lineGraph{n: 6, gap: 2}); path != nil {
		t.Fatalf("expected no path across the gap, got %v", path)
	}
	if path := ShortestPath(0, 4, 3, lineGraph{n: 6, gap: -1}); path != nil {
		t.Fatalf("expected no path beyond max cost, got %v", path)
	}
}

func TestDijkstraDistances(t *testing.T) {
	dist, prev := Dijkstra(2, 100, lineGraph{n: 5, gap: -1})
	if dist[0] != 2 || dist[4] != 2 || dist[2] != 0 {
		t.Fatalf("unexpected distances %v", dist)
	}
	if prev[0] != 1 || prev[1] != 2 {
		t.Fatalf("unexpected predecessors %v", prev)
	}
}
