package bsp

import "testing"

// TestIsLeafChild_NodeChildKindLaw exercises spec.md §8's "Node child
// kind law": child < 0 => -1-child is a leaf index; child >= 0 => child
// is a node index.
func TestIsLeafChild_NodeChildKindLaw(t *testing.T) {
	cases := []struct {
		child      int32
		wantLeaf   bool
		wantIdx    int
	}{
		{0, false, 0},
		{5, false, 5},
		{-1, true, 0},
		{-2, true, 1},
		{-100, true, 99},
	}

	for _, c := range cases {
		idx, isLeaf := IsLeafChild(c.child)
		if isLeaf != c.wantLeaf || idx != c.wantIdx {
			t.Fatalf("IsLeafChild(%d) = (%d, %v), want (%d, %v)", c.child, idx, isLeaf, c.wantIdx, c.wantLeaf)
		}
	}
}
