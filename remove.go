package dynpage

// tombstoneLeafBlob marks the leaf blob at offset off (with the given
// key/value sizes) dead and accounts its bytes into deadSpace.
func (c *NodeClass[K, V]) tombstoneLeafBlob(cur Cursor, off int, keySize, valueSize uint16) {
	putKeySize(cur, off, int(putTombstone(keySize)))
	dead := getDeadSpace(cur) + 2*sizeWordWidth + int(keySize) + int(valueSize)
	setDeadSpace(cur, dead)
}

// tombstoneInternalBlob marks the internal key blob at offset off dead.
// Internal nodes don't track deadSpace (§4.4.1), so this only flips the
// tombstone bit; the bytes are reclaimed only if the tree layer rebuilds
// the page (defragmentLeaf covers leaves only, per §4.6/§9).
func (c *NodeClass[K, V]) tombstoneInternalBlob(cur Cursor, off int, keySize uint16) {
	putKeySize(cur, off, int(putTombstone(keySize)))
}

// RemoveKeyValueAt implements §4.5: tombstone the blob, account its bytes
// as dead space, then close the offset-array hole.
func (c *NodeClass[K, V]) RemoveKeyValueAt(cur Cursor, p, keyCount int) int {
	off := c.leafBlobOffset(cur, p, keyCount)
	if cur.Exception() != nil {
		return keyCount
	}
	keySize := stripTombstone(readKeySize(cur, off))
	valueSize := readValueSize(cur, off+sizeWordWidth)

	c.tombstoneLeafBlob(cur, off, keySize, valueSize)
	shiftLeafSlotsLeft(cur, p, keyCount)

	return keyCount - 1
}

// RemoveKeyAndRightChildAt implements §4.5: tombstone the key blob, then
// shift the (offset, right-child) slot at p out of the interleave.
func (c *NodeClass[K, V]) RemoveKeyAndRightChildAt(cur Cursor, p, keyCount int) int {
	off := c.internalBlobOffset(cur, p, keyCount)
	if cur.Exception() != nil {
		return keyCount
	}
	keySize := stripTombstone(readKeySize(cur, off))
	c.tombstoneInternalBlob(cur, off, keySize)

	shiftBytesDown(cur, internalKeySlotOffset(p+1), internalOffsetArrayEnd(keyCount), internalSlotWidth)

	return keyCount - 1
}

// RemoveKeyAndLeftChildAt implements §4.5: tombstone the key blob, then
// shift the (left-child, offset) slot at p out of the interleave - the
// slot starts one child-pointer-width earlier than the right-child
// variant above. Shifting the remaining interleave as one contiguous
// block automatically carries the trailing rightmost child pointer into
// its correct new position, subsuming the separate relocation step a
// slot-by-slot implementation would need.
func (c *NodeClass[K, V]) RemoveKeyAndLeftChildAt(cur Cursor, p, keyCount int) int {
	off := c.internalBlobOffset(cur, p, keyCount)
	if cur.Exception() != nil {
		return keyCount
	}
	keySize := stripTombstone(readKeySize(cur, off))
	c.tombstoneInternalBlob(cur, off, keySize)

	shiftBytesDown(cur, internalChildSlotOffset(p+1), internalOffsetArrayEnd(keyCount), internalSlotWidth)

	return keyCount - 1
}
