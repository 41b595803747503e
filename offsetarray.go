package dynpage

// §3, "Offset array": leaf slots are one absolute page offset each;
// internal slots interleave a (key) offset field with a child pointer,
// with one more child than keys.

func leafSlotOffset(p int) int {
	return headerEnd + p*leafSlotWidth
}

func leafOffsetArrayEnd(keyCount int) int {
	return headerEnd + keyCount*leafSlotWidth
}

// internalChildSlotOffset returns the byte offset of child pointer i
// (0 <= i <= keyCount) in the internal interleave.
func internalChildSlotOffset(i int) int {
	if i == 0 {
		return headerEnd
	}
	return headerEnd + childPointerWidth + (i-1)*internalSlotWidth + offsetWidth
}

// internalKeySlotOffset returns the byte offset of the key-offset field
// off_p (0 <= p < keyCount) in the internal interleave.
func internalKeySlotOffset(p int) int {
	return headerEnd + childPointerWidth + p*internalSlotWidth
}

func internalOffsetArrayEnd(keyCount int) int {
	return headerEnd + childPointerWidth + keyCount*internalSlotWidth
}

func readLeafSlot(cur Cursor, p int) int {
	return int(readKeyOffset(cur, leafSlotOffset(p)))
}

func writeLeafSlot(cur Cursor, p int, pageOffset int) {
	putKeyOffset(cur, leafSlotOffset(p), pageOffset)
}

// shiftLeafSlotsRight opens a one-slot hole at position p by moving
// slots [p, keyCount) up by one slot (§4.4.2 step 2).
func shiftLeafSlotsRight(cur Cursor, p, keyCount int) {
	for i := keyCount - 1; i >= p; i-- {
		writeLeafSlot(cur, i+1, readLeafSlot(cur, i))
	}
}

// shiftLeafSlotsLeft closes the hole at position p by moving slots
// [p+1, keyCount) down by one slot (§4.5).
func shiftLeafSlotsLeft(cur Cursor, p, keyCount int) {
	for i := p + 1; i < keyCount; i++ {
		writeLeafSlot(cur, i-1, readLeafSlot(cur, i))
	}
}

func readInternalKeyOffset(cur Cursor, p int) int {
	return int(readKeyOffset(cur, internalKeySlotOffset(p)))
}

func writeInternalKeyOffset(cur Cursor, p int, pageOffset int) {
	putKeyOffset(cur, internalKeySlotOffset(p), pageOffset)
}

// shiftBytesUp relocates [startOffset, endOffset) up by shiftAmount
// bytes. The whole region is captured into a scratch buffer first, so
// this is correct regardless of whether source and destination overlap.
func shiftBytesUp(cur Cursor, startOffset, endOffset, shiftAmount int) {
	if endOffset <= startOffset {
		return
	}
	buf := make([]byte, endOffset-startOffset)
	cur.ReadAt(startOffset, buf)
	cur.WriteAt(startOffset+shiftAmount, buf)
}

// shiftBytesDown relocates [startOffset, endOffset) down by shiftAmount
// bytes, same overlap-safety as shiftBytesUp.
func shiftBytesDown(cur Cursor, startOffset, endOffset, shiftAmount int) {
	if endOffset <= startOffset {
		return
	}
	buf := make([]byte, endOffset-startOffset)
	cur.ReadAt(startOffset, buf)
	cur.WriteAt(startOffset-shiftAmount, buf)
}
