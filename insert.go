package dynpage

// InsertKeyValueAt implements §4.4.2: writes a new leaf blob just below
// the current allocOffset, opens a slot-array hole at p, and points the
// new slot at the blob. Returns the node's new key count. The caller
// (tree layer) must have already confirmed LeafOverflow doesn't return
// OverflowYes, defragmenting first if it returned OverflowNeedDefrag.
func (c *NodeClass[K, V]) InsertKeyValueAt(cur Cursor, p, keyCount int, k K, v V) int {
	keySize := c.layout.KeySize(k)
	valueSize := c.layout.ValueSize(v)
	blobSize := 2*sizeWordWidth + keySize + valueSize

	newAlloc := getAllocOffset(cur) - blobSize
	setAllocOffset(cur, newAlloc)

	putKeySize(cur, newAlloc, keySize)
	putValueSize(cur, newAlloc+sizeWordWidth, valueSize)
	c.layout.WriteKey(cur, newAlloc+2*sizeWordWidth, k)
	c.layout.WriteValue(cur, newAlloc+2*sizeWordWidth+keySize, v)

	shiftLeafSlotsRight(cur, p, keyCount)
	writeLeafSlot(cur, p, newAlloc)

	return keyCount + 1
}

// InsertKeyAndRightChildAt implements §4.4.3: same blob placement as a
// leaf insert but the blob stores only the key, and the new child pointer
// is written into the offset-array interleave slot associated with p.
func (c *NodeClass[K, V]) InsertKeyAndRightChildAt(cur Cursor, p, keyCount int, k K, rightChild ChildPointer, writerGen uint32) int {
	keySize := c.layout.KeySize(k)
	blobSize := sizeWordWidth + keySize

	newAlloc := getAllocOffset(cur) - blobSize
	setAllocOffset(cur, newAlloc)

	putKeySize(cur, newAlloc, keySize)
	c.layout.WriteKey(cur, newAlloc+sizeWordWidth, k)

	shiftBytesUp(cur, internalKeySlotOffset(p), internalOffsetArrayEnd(keyCount), internalSlotWidth)
	writeInternalKeyOffset(cur, p, newAlloc)
	c.children.Write(cur, internalChildSlotOffset(p+1), rightChild, writerGen)

	return keyCount + 1
}
