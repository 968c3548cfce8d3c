// Package frontier holds the queue plumbing shared by the searches:
// a generic binary min-heap with lazy decrease-key, and a FIFO queue.
//
// Heap orders items by a caller-supplied less function; the smallest item is
// popped first. Dijkstra and A* both drive it as a min-heap by passing an
// ascending comparator on their priority key, so no key negation is needed
// anywhere. Stale entries are never removed in place: callers push a fresh
// entry when a priority improves and skip outdated ones when popped.
package frontier

import "container/heap"

// Heap is a binary min-heap of T ordered by less.
type Heap[T any] struct {
	items entries[T]
}

// NewHeap returns an empty heap ordered by less.
func NewHeap[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{items: entries[T]{less: less}}
}

// Push inserts x. O(log n).
func (h *Heap[T]) Push(x T) { heap.Push(&h.items, x) }

// Pop removes and returns the smallest item. ok is false on an empty heap.
func (h *Heap[T]) Pop() (x T, ok bool) {
	if h.items.Len() == 0 {
		return x, false
	}
	return heap.Pop(&h.items).(T), true
}

// Len returns the number of queued items, stale ones included.
func (h *Heap[T]) Len() int { return h.items.Len() }

// entries implements heap.Interface.
type entries[T any] struct {
	data []T
	less func(a, b T) bool
}

func (e entries[T]) Len() int           { return len(e.data) }
func (e entries[T]) Less(i, j int) bool { return e.less(e.data[i], e.data[j]) }
func (e entries[T]) Swap(i, j int)      { e.data[i], e.data[j] = e.data[j], e.data[i] }

func (e *entries[T]) Push(x any) { e.data = append(e.data, x.(T)) }

func (e *entries[T]) Pop() any {
	old := e.data
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero
	e.data = old[:n-1]

	return item
}

// Queue is a FIFO queue. Popped slots are released once half the backing
// array is dead, keeping Pop amortised O(1).
type Queue[T any] struct {
	data []T
	head int
}

// NewQueue returns a queue holding items in order.
func NewQueue[T any](items ...T) *Queue[T] {
	return &Queue[T]{data: append([]T(nil), items...)}
}

// Push appends x to the back.
func (q *Queue[T]) Push(x T) { q.data = append(q.data, x) }

// Pop removes and returns the front item. ok is false on an empty queue.
func (q *Queue[T]) Pop() (x T, ok bool) {
	if q.head == len(q.data) {
		return x, false
	}
	x = q.data[q.head]
	var zero T
	q.data[q.head] = zero
	q.head++
	if q.head > 32 && q.head*2 >= len(q.data) {
		q.data = append([]T(nil), q.data[q.head:]...)
		q.head = 0
	}
	return x, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.data) - q.head }
