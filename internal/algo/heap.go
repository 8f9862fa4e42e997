package algo

import "container/heap"

// heapItem pairs a node with the key it was pushed or decrease-keyed with.
// The node's Slot field is kept in sync with this item's position in the
// backing slice on every swap, per spec.md §4.1's "back-pointer" contract.
type heapItem[T any] struct {
	node *SearchNode[T]
	key  float64
}

// heapData is the flat array container/heap.Interface operates on, following
// the same index-field-on-swap convention as astar3DHeap: every Swap writes
// the moved elements' slot back into their nodes before returning.
type heapData[T any] []*heapItem[T]

func (h heapData[T]) Len() int { return len(h) }

func (h heapData[T]) Less(i, j int) bool { return h[i].key < h[j].key }

func (h heapData[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].node.Slot = i
	h[j].node.Slot = j
}

func (h *heapData[T]) Push(x any) {
	item := x.(*heapItem[T])
	item.node.Slot = len(*h)
	*h = append(*h, item)
}

func (h *heapData[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	item.node.Slot = InvalidIndex
	return item
}

// IndexedHeap is the min-heap keyed by f-score spec.md §4.1 describes:
// push, pop, decrease_key and size, with every node's Slot kept valid for
// the duration of its residency so the planner can tell push from
// decrease-key in O(1).
type IndexedHeap[T any] struct {
	data heapData[T]
}

// NewIndexedHeap builds an empty heap.
func NewIndexedHeap[T any]() *IndexedHeap[T] {
	h := &IndexedHeap[T]{}
	heap.Init(&h.data)
	return h
}

// Size returns the number of nodes currently in the heap.
func (h *IndexedHeap[T]) Size() int {
	return h.data.Len()
}

// Push inserts node with the given key. Precondition: node is not currently
// in this heap (node.Slot == InvalidIndex).
func (h *IndexedHeap[T]) Push(node *SearchNode[T], key float64) {
	heap.Push(&h.data, &heapItem[T]{node: node, key: key})
}

// Pop removes and returns the minimum-key node. Reports false if the heap is
// empty.
func (h *IndexedHeap[T]) Pop() (*SearchNode[T], float64, bool) {
	if h.data.Len() == 0 {
		return nil, 0, false
	}
	item := heap.Pop(&h.data).(*heapItem[T])
	return item.node, item.key, true
}

// DecreaseKey lowers node's key and re-establishes the heap invariant.
// It is a contract violation (spec.md §4.1) to call this on a node not
// currently in the heap, or with a key greater than the node's current key;
// both panic rather than silently corrupting the heap.
func (h *IndexedHeap[T]) DecreaseKey(node *SearchNode[T], newKey float64) {
	if !node.InHeap() {
		panic("algo: DecreaseKey on node not in heap")
	}
	item := h.data[node.Slot]
	if newKey > item.key {
		panic("algo: DecreaseKey key must not increase")
	}
	item.key = newKey
	heap.Fix(&h.data, node.Slot)
}
