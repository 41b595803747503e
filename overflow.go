package dynpage

// Overflow classifies whether an incoming entry fits on a leaf page
// without a split (§4.4.1, GLOSSARY "Overflow classification").
type Overflow int

const (
	// OverflowNo: the entry fits in the gap between the offset array and
	// allocOffset without any reclamation.
	OverflowNo Overflow = iota
	// OverflowNeedDefrag: the entry only fits once dead space is
	// reclaimed by defragmentLeaf.
	OverflowNeedDefrag
	// OverflowYes: the entry does not fit even after defragmentation;
	// the tree layer must split.
	OverflowYes
)

func (o Overflow) String() string {
	switch o {
	case OverflowNo:
		return "NO"
	case OverflowNeedDefrag:
		return "NEED_DEFRAG"
	case OverflowYes:
		return "YES"
	default:
		return "?"
	}
}

// LeafOverflow implements §4.4.1's fit test.
func (c *NodeClass[K, V]) LeafOverflow(cur Cursor, keyCount int, newKey K, newValue V) Overflow {
	alloc := getAllocOffset(cur) - leafOffsetArrayEnd(keyCount)
	dead := getDeadSpace(cur)
	need := c.leafEntryFootprint(newKey, newValue)

	switch {
	case need < alloc:
		return OverflowNo
	case need < alloc+dead:
		return OverflowNeedDefrag
	default:
		return OverflowYes
	}
}

func (c *NodeClass[K, V]) leafEntryFootprint(k K, v V) int {
	return 2*sizeWordWidth + c.layout.KeySize(k) + c.layout.ValueSize(v) + leafSlotWidth
}

// InternalOverflow reports whether an incoming key fits on an internal
// page. Internal nodes don't track dead space in this layout (§4.4.1);
// removal writes tombstones but the engine does not defragment internal
// nodes in this version (§9 open question - left partial to match the
// upstream snapshot).
func (c *NodeClass[K, V]) InternalOverflow(cur Cursor, keyCount int, newKey K) bool {
	alloc := getAllocOffset(cur) - internalOffsetArrayEnd(keyCount)
	need := sizeWordWidth + c.layout.KeySize(newKey) + internalSlotWidth
	return need >= alloc
}

// LeafUnderflow reports whether a leaf is less than half full: available
// space (the alloc gap plus dead space) exceeds half the node's total
// space (§4.8). Rebalance/merge decisions belong to the tree layer.
func (c *NodeClass[K, V]) LeafUnderflow(cur Cursor, keyCount int) bool {
	available := getAllocOffset(cur) - leafOffsetArrayEnd(keyCount) + getDeadSpace(cur)
	return available > c.pageSize/2
}
