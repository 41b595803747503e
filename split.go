package dynpage

// DoSplitLeaf implements §4.7: split a full leaf so the incoming entry
// fits, choosing the split point that most evenly halves used space
// rather than entry count. left holds the existing leftKeyCount entries
// plus the new (newKey, newValue) logically inserted at insertPos; right
// is a freshly allocated, empty page. Returns the new key counts of both
// nodes and records the split key in sp.
func (c *NodeClass[K, V]) DoSplitLeaf(left, right Cursor, leftKeyCount, insertPos int, newKey K, newValue V, sp *StructurePropagation[K]) (int, int) {
	newEntryFootprint := c.leafEntryFootprint(newKey, newValue)

	existingFootprint := make([]int, leftKeyCount)
	total := newEntryFootprint
	for i := 0; i < leftKeyCount; i++ {
		off := c.leafBlobOffset(left, i, leftKeyCount)
		keySize := int(stripTombstone(readKeySize(left, off)))
		valueSize := int(readValueSize(left, off+sizeWordWidth))
		fp := 2*sizeWordWidth + keySize + valueSize + leafSlotWidth
		existingFootprint[i] = fp
		total += fp
	}
	halfSpace := total / 2

	middlePos := 0
	accumulated := 0
	currentDelta := total
	includedNew := false
	existingIdx := 0
	for i := 0; i <= leftKeyCount; i++ {
		var fp int
		if i == insertPos && !includedNew {
			fp = newEntryFootprint
			includedNew = true
		} else {
			if existingIdx >= leftKeyCount {
				break
			}
			fp = existingFootprint[existingIdx]
			existingIdx++
		}

		newAccumulated := accumulated + fp
		delta := absInt(newAccumulated - halfSpace)
		if delta > currentDelta {
			break
		}
		accumulated = newAccumulated
		currentDelta = delta
		middlePos = i
	}

	var splitKey K
	if middlePos == insertPos {
		splitKey = newKey
	} else {
		idx := middlePos
		if insertPos < middlePos {
			idx = middlePos - 1
		}
		splitKey = c.KeyAt(left, idx, leftKeyCount, true)
	}
	sp.set(splitKey)

	rightKeyCount := 0
	if insertPos < middlePos {
		for leftKeyCount > middlePos-1 {
			rightKeyCount = c.transferRawKeyValue(left, right, middlePos-1, leftKeyCount, rightKeyCount)
			leftKeyCount--
		}
		c.DefragmentLeaf(left, leftKeyCount)
		leftKeyCount = c.InsertKeyValueAt(left, insertPos, leftKeyCount, newKey, newValue)
	} else {
		for leftKeyCount > middlePos {
			rightKeyCount = c.transferRawKeyValue(left, right, middlePos, leftKeyCount, rightKeyCount)
			leftKeyCount--
		}
		c.DefragmentLeaf(left, leftKeyCount)
		rightKeyCount = c.InsertKeyValueAt(right, insertPos-middlePos, rightKeyCount, newKey, newValue)
	}

	c.log.Debugw("split leaf",
		"leftKeyCount", leftKeyCount,
		"rightKeyCount", rightKeyCount,
		"middlePos", middlePos,
		"insertPos", insertPos,
	)

	return leftKeyCount, rightKeyCount
}

// transferRawKeyValue moves the leaf entry at srcIdx from left to the tail
// of right's offset array, copying the raw blob (size words and payload)
// rather than re-encoding through the layout codec, then tombstones the
// source and closes its offset-array hole (§4.7 step 3).
func (c *NodeClass[K, V]) transferRawKeyValue(left, right Cursor, srcIdx, leftKeyCount, rightKeyCount int) int {
	off := c.leafBlobOffset(left, srcIdx, leftKeyCount)
	if left.Exception() != nil {
		return rightKeyCount
	}
	keySize := stripTombstone(readKeySize(left, off))
	valueSize := readValueSize(left, off+sizeWordWidth)
	blobSize := 2*sizeWordWidth + int(keySize) + int(valueSize)

	newAlloc := getAllocOffset(right) - blobSize
	setAllocOffset(right, newAlloc)
	left.CopyTo(off, right, newAlloc, blobSize)
	writeLeafSlot(right, rightKeyCount, newAlloc)

	c.tombstoneLeafBlob(left, off, keySize, valueSize)
	shiftLeafSlotsLeft(left, srcIdx, leftKeyCount)

	return rightKeyCount + 1
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
