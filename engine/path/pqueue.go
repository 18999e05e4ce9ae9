package path

import (
	"container/heap"
)

func NewNode[T comparable](value T) *PqItem[T] {
	return &PqItem[T]{value: value}
}

// PqItem is a graph node managed by the priority queue.
type PqItem[T comparable] struct {
	value    T
	priority float64
	// maintained by the heap.Interface methods
	index int
}

func (item *PqItem[T]) GetPriority() float64 {
	return item.priority
}

func (item *PqItem[T]) SetPriority(priority float64) {
	item.priority = priority
}

func (item *PqItem[T]) GetIndex() int {
	return item.index
}

func (item *PqItem[T]) SetIndex(index int) {
	item.index = index
}

func (item *PqItem[T]) GetValue() T {
	return item.value
}

type PathNode[T comparable] interface {
	GetPriority() float64
	SetPriority(float64)
	GetIndex() int
	SetIndex(int)
	GetValue() T
}

func NewPriorityQueue[T comparable](items []PathNode[T]) PriorityQueue[T] {
	pq := make(PriorityQueue[T], len(items))
	for i, item := range items {
		item.SetIndex(i)
		pq[i] = item
	}
	heap.Init(&pq)
	return pq
}

// PriorityQueue is a min-heap over node priorities.
type PriorityQueue[T comparable] []PathNode[T]

func (pq *PriorityQueue[T]) Len() int { return len(*pq) }

func (pq *PriorityQueue[T]) Less(i, j int) bool {
	return (*pq)[i].GetPriority() < (*pq)[j].GetPriority()
}

func (pq *PriorityQueue[T]) Swap(i, j int) {
	(*pq)[i], (*pq)[j] = (*pq)[j], (*pq)[i]
	(*pq)[i].SetIndex(i)
	(*pq)[j].SetIndex(j)
}

func (pq *PriorityQueue[T]) Push(x any) {
	item := x.(PathNode[T])
	item.SetIndex(len(*pq))
	*pq = append(*pq, item)
}

func (pq *PriorityQueue[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.SetIndex(-1)
	*pq = old[0 : n-1]
	return item
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.Len() == 0
}

// update changes the priority of a queued node and restores the heap order.
func (pq *PriorityQueue[T]) update(item PathNode[T], priority float64) {
	item.SetPriority(priority)
	heap.Fix(pq, item.GetIndex())
}
