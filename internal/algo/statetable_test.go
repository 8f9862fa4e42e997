package algo

import "testing"

func intHash(v int) int64   { return int64(v) }
func intEqual(a, b int) bool { return a == b }

func TestStateTableAddIsIdempotent(t *testing.T) {
	st := NewStateTable[int](16, intHash, intEqual)

	n1 := st.Add(42)
	n2 := st.Add(42)

	if n1 != n2 {
		t.Errorf("Add(42) twice returned distinct nodes: %p != %p", n1, n2)
	}
	if st.Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Len())
	}
}

func TestStateTableGetReturnsInternedValue(t *testing.T) {
	st := NewStateTable[int](16, intHash, intEqual)
	st.Add(7)

	node, ok := st.Get(7)
	if !ok {
		t.Fatalf("Get(7) reported not found after Add(7)")
	}
	if node.Value != 7 {
		t.Errorf("Get(7).Value = %v, want 7", node.Value)
	}

	if _, ok := st.Get(8); ok {
		t.Errorf("Get(8) should report not found")
	}
}

func TestStateTableClear(t *testing.T) {
	st := NewStateTable[int](16, intHash, intEqual)
	st.Add(1)
	st.Add(2)
	st.Clear()

	if st.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", st.Len())
	}
	if _, ok := st.Get(1); ok {
		t.Errorf("Get(1) should report not found after Clear")
	}
}

func TestStateTableToleratesCollisions(t *testing.T) {
	// capacity 1 forces every key into the same bucket.
	st := NewStateTable[int](1, intHash, intEqual)
	st.Add(1)
	st.Add(2)
	st.Add(3)

	if st.Len() != 3 {
		t.Errorf("Len() = %d, want 3", st.Len())
	}
	for _, v := range []int{1, 2, 3} {
		node, ok := st.Get(v)
		if !ok || node.Value != v {
			t.Errorf("Get(%d) = (%+v, %v), want a node with Value=%d", v, node, ok, v)
		}
	}
}
