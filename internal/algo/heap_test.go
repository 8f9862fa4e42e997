package algo

import "testing"

func TestIndexedHeapPopOrder(t *testing.T) {
	h := NewIndexedHeap[int]()
	nodes := make([]*SearchNode[int], 5)
	keys := []float64{5, 1, 4, 2, 3}
	for i, k := range keys {
		nodes[i] = NewSearchNode(i)
		h.Push(nodes[i], k)
	}

	var popped []float64
	for h.Size() > 0 {
		_, key, ok := h.Pop()
		if !ok {
			t.Fatalf("Pop reported empty heap with Size()=%d", h.Size())
		}
		popped = append(popped, key)
	}

	want := []float64{1, 2, 3, 4, 5}
	for i, k := range want {
		if popped[i] != k {
			t.Errorf("pop order[%d] = %v, want %v (full: %v)", i, popped[i], k, popped)
		}
	}
}

func TestIndexedHeapSlotTracking(t *testing.T) {
	h := NewIndexedHeap[int]()
	n1 := NewSearchNode(1)
	n2 := NewSearchNode(2)
	n3 := NewSearchNode(3)

	h.Push(n1, 10)
	h.Push(n2, 20)
	h.Push(n3, 30)

	for _, n := range []*SearchNode[int]{n1, n2, n3} {
		if !n.InHeap() {
			t.Errorf("node %+v should report InHeap after Push", n)
		}
		if h.data[n.Slot].node != n {
			t.Errorf("heap slot %d does not point back to node %+v", n.Slot, n)
		}
	}

	popped, _, _ := h.Pop()
	if popped.InHeap() {
		t.Errorf("popped node should no longer report InHeap")
	}
}

func TestIndexedHeapDecreaseKey(t *testing.T) {
	h := NewIndexedHeap[int]()
	n1 := NewSearchNode(1)
	n2 := NewSearchNode(2)
	h.Push(n1, 10)
	h.Push(n2, 20)

	h.DecreaseKey(n2, 5)

	first, key, _ := h.Pop()
	if first != n2 || key != 5 {
		t.Errorf("after DecreaseKey, expected n2 with key 5 first, got node=%+v key=%v", first, key)
	}
}

func TestIndexedHeapDecreaseKeyPanicsWhenNotInHeap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic when DecreaseKey called on a node not in the heap")
		}
	}()

	h := NewIndexedHeap[int]()
	n := NewSearchNode(1)
	h.DecreaseKey(n, 1)
}

func TestIndexedHeapDecreaseKeyPanicsOnIncrease(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic when DecreaseKey is called with a larger key")
		}
	}()

	h := NewIndexedHeap[int]()
	n := NewSearchNode(1)
	h.Push(n, 5)
	h.DecreaseKey(n, 6)
}
