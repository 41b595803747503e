package dynpage

// This layout intentionally rejects these operations (§7, "Unsupported
// operations"; §9). Calling one of them is a programmer error: the tree
// layer must not call them on dynamic-size nodes. The dynamic-size layout
// is incomplete for internal-node rebalancing and internal splits in this
// snapshot - matched here rather than implemented symmetrically to the
// leaf case, per the open question in §9.

// SetKeyAt is unsupported: a key's serialized length generally differs
// from what's stored, so an in-place key rewrite can't be expressed the
// way SetValueAt expresses an in-place value rewrite.
func (c *NodeClass[K, V]) SetKeyAt(Cursor, int, int, K) error {
	return newError(ErrUnsupported, "SetKeyAt is not supported by the dynamic-size layout")
}

// LeafMaxKeyCount is unsupported: entry count has no fixed bound in a
// variable-length layout; the bound is on bytes, not keys.
func (c *NodeClass[K, V]) LeafMaxKeyCount() (int, error) {
	return 0, newError(ErrUnsupported, "LeafMaxKeyCount is not supported by the dynamic-size layout")
}

// ReasonableChildCount is unsupported for the same reason as
// LeafMaxKeyCount.
func (c *NodeClass[K, V]) ReasonableChildCount(int) (bool, error) {
	return false, newError(ErrUnsupported, "ReasonableChildCount is not supported by the dynamic-size layout")
}

// DoSplitInternal is unsupported: internal-node splitting for this layout
// is left as a TODO upstream; only leaf splits are implemented.
func (c *NodeClass[K, V]) DoSplitInternal(Cursor, Cursor, int, int, K, ChildPointer, *StructurePropagation[K]) error {
	return newError(ErrUnsupported, "DoSplitInternal is not supported by the dynamic-size layout")
}

// MoveKeyValuesFromLeftToRight is unsupported: leaf rebalancing by moving
// entries between siblings is left as a TODO upstream.
func (c *NodeClass[K, V]) MoveKeyValuesFromLeftToRight(Cursor, Cursor, int, int, int) error {
	return newError(ErrUnsupported, "MoveKeyValuesFromLeftToRight is not supported by the dynamic-size layout")
}

// CanRebalanceLeaves is unsupported: without
// MoveKeyValuesFromLeftToRight, there is no rebalance to decide about.
func (c *NodeClass[K, V]) CanRebalanceLeaves(Cursor, Cursor, int, int) (bool, error) {
	return false, newError(ErrUnsupported, "CanRebalanceLeaves is not supported by the dynamic-size layout")
}

// CanMergeLeaves is unsupported for the same reason.
func (c *NodeClass[K, V]) CanMergeLeaves(Cursor, Cursor, int, int) (bool, error) {
	return false, newError(ErrUnsupported, "CanMergeLeaves is not supported by the dynamic-size layout")
}
