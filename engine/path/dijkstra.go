package path

import (
	"container/heap"
	"math"
)

type DijkstraSource[T any] interface {
	GetNeighbors(node T) []T
	GetCost(currentNode T, neighbor T) float64
}

// Dijkstra expands from source until every node reachable within maxCost is settled.
func Dijkstra[T comparable](source T, maxCost float64, dataSource DijkstraSource[T]) (dist map[T]float64, prev map[T]T) {
	dist = make(map[T]float64)
	prev = make(map[T]T)
	queued := make(map[T]PathNode[T])
	dist[source] = 0
	getDist := func(n T) float64 {
		if d, ok := dist[n]; ok {
			return d
		}
		return math.MaxFloat64
	}
	start := NewNode(source)
	Q := NewPriorityQueue([]PathNode[T]{start})
	queued[source] = start
	for Q.Len() > 0 {
		currentNode := heap.Pop(&Q).(PathNode[T])
		current := currentNode.GetValue()
		delete(queued, current)
		for _, neighbor := range dataSource.GetNeighbors(current) {
			neighborDist := getDist(current) + dataSource.GetCost(current, neighbor)
			if neighborDist > maxCost || neighborDist >= getDist(neighbor) {
				continue
			}
			dist[neighbor] = neighborDist
			prev[neighbor] = current
			if existing, ok := queued[neighbor]; ok {
				Q.update(existing, neighborDist)
				continue
			}
			node := NewNode(neighbor)
			node.SetPriority(neighborDist)
			queued[neighbor] = node
			heap.Push(&Q, node)
		}
	}
	return
}

// ShortestPath returns the node sequence from source to target, both included,
// or nil when the target is not reachable within maxCost.
func ShortestPath[T comparable](source, target T, maxCost float64, dataSource DijkstraSource[T]) []T {
	if source == target {
		return []T{source}
	}
	dist, prev := Dijkstra(source, maxCost, dataSource)
	if _, reached := dist[target]; !reached {
		return nil
	}
	var reversed []T
	for node := target; node != source; node = prev[node] {
		reversed = append(reversed, node)
	}
	reversed = append(reversed, source)
	result := make([]T, len(reversed))
	for i, node := range reversed {
		result[len(reversed)-1-i] = node
	}
	return result
}
