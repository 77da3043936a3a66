package bsp

import "github.com/go-vbsp/vbsp-los/vbspfile"

// Node is a canonicalized interior BSP node. Children[i] >= 0 is a node
// index; Children[i] < 0 encodes a leaf index as -1-Children[i]. The
// encoding is preserved verbatim from the on-disk format rather than
// resolved into a tagged union, matching spec.md's "index references,
// not pointers" guidance — the traversal disambiguates at walk time.
type Node struct {
	PlaneIdx  int32
	Children  [2]int32
	Mins      [3]int16
	Maxs      [3]int16
	FirstFace uint16
	NumFaces  uint16
	Area      int16
}

// IsLeafChild reports whether child (one of Children[0]/Children[1])
// denotes a leaf, and if so returns its leaf index.
func IsLeafChild(child int32) (leafIdx int, isLeaf bool) {
	if child < 0 {
		return int(-1 - child), true
	}
	return int(child), false
}

func canonicalizeNodes(raw []vbspfile.Node) []Node {
	nodes := make([]Node, len(raw))
	for i, n := range raw {
		nodes[i] = Node{
			PlaneIdx:  n.PlaneNum,
			Children:  n.Children,
			Mins:      n.Mins,
			Maxs:      n.Maxs,
			FirstFace: n.FirstFace,
			NumFaces:  n.NumFaces,
			Area:      n.Area,
		}
	}
	return nodes
}
