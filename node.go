package dynpage

// §4.3: Entry heap read. Given a logical position p, the engine seeks the
// offset-array slot, reads the entry offset, range-checks it against P
// (setting a cursor exception rather than crashing), then seeks to the
// blob.

// leafBlobOffset resolves logical position p to its blob's absolute page
// offset, range-checking against the page size.
func (c *NodeClass[K, V]) leafBlobOffset(cur Cursor, p, keyCount int) int {
	if p < 0 || p >= keyCount {
		cur.SetCursorException("leaf position out of range")
		c.log.Warnw("corruption: leaf position out of range", "p", p, "keyCount", keyCount)
		return -1
	}
	off := readLeafSlot(cur, p)
	if off < 0 || off >= c.pageSize {
		cur.SetCursorException("leaf entry offset out of page range")
		c.log.Warnw("corruption: leaf entry offset out of page range", "p", p, "offset", off, "pageSize", c.pageSize)
		return -1
	}
	return off
}

func (c *NodeClass[K, V]) internalBlobOffset(cur Cursor, p, keyCount int) int {
	if p < 0 || p >= keyCount {
		cur.SetCursorException("internal key position out of range")
		c.log.Warnw("corruption: internal key position out of range", "p", p, "keyCount", keyCount)
		return -1
	}
	off := readInternalKeyOffset(cur, p)
	if off < 0 || off >= c.pageSize {
		cur.SetCursorException("internal entry offset out of page range")
		c.log.Warnw("corruption: internal entry offset out of page range", "p", p, "offset", off, "pageSize", c.pageSize)
		return -1
	}
	return off
}

// KeyAt reads the key at logical position p (§4.3). For leaves it skips
// the valueSize word before delegating to the layout codec; for internal
// nodes the blob holds only the key.
func (c *NodeClass[K, V]) KeyAt(cur Cursor, p, keyCount int, isLeaf bool) K {
	var off int
	if isLeaf {
		off = c.leafBlobOffset(cur, p, keyCount)
	} else {
		off = c.internalBlobOffset(cur, p, keyCount)
	}
	if cur.Exception() != nil {
		return c.layout.NewKey()
	}

	keySize := stripTombstone(readKeySize(cur, off))
	if int(keySize) > c.keyValueSizeCap {
		cur.SetCursorException("key size exceeds keyValueSizeCap")
		return c.layout.NewKey()
	}

	keyStart := off + sizeWordWidth
	if isLeaf {
		keyStart += sizeWordWidth // skip the valueSize word
	}
	return c.layout.ReadKey(cur, keyStart, int(keySize))
}

// ValueAt reads the value at logical position p. Leaf-only (§4.3).
func (c *NodeClass[K, V]) ValueAt(cur Cursor, p, keyCount int) V {
	off := c.leafBlobOffset(cur, p, keyCount)
	if cur.Exception() != nil {
		return c.layout.NewValue()
	}

	keySize := stripTombstone(readKeySize(cur, off))
	valueSize := readValueSize(cur, off+sizeWordWidth)
	if int(keySize) > c.keyValueSizeCap || int(valueSize) > c.keyValueSizeCap {
		cur.SetCursorException("size word exceeds keyValueSizeCap")
		return c.layout.NewValue()
	}

	valueStart := off + 2*sizeWordWidth + int(keySize)
	return c.layout.ReadValue(cur, valueStart, int(valueSize))
}

// SetValueAt overwrites the value at logical position p in place if its
// serialized length is unchanged, returning true on success. Otherwise it
// returns false without mutating the page; the tree layer must fall back
// to a remove+insert cycle (§4.3).
//
// The stored key size is read via readKeyOffset (the offset-width reader)
// rather than readKeySize here, reproducing the teacher's behavior
// exactly as flagged in spec §9: sizeWordWidth and offsetWidth happen to
// be equal in this layout, so the two readers are byte-for-byte
// interchangeable and this is not reachable as a live bug - but if a
// future revision of the format widens one and not the other, this call
// site needs to move to readKeySize. Left as-is to match the observed
// upstream behavior rather than silently "fixing" it.
func (c *NodeClass[K, V]) SetValueAt(cur Cursor, p, keyCount int, v V) bool {
	off := c.leafBlobOffset(cur, p, keyCount)
	if cur.Exception() != nil {
		return false
	}

	keySize := stripTombstone(uint16(readKeyOffset(cur, off)))
	storedValueSize := readValueSize(cur, off+sizeWordWidth)
	newSize := c.layout.ValueSize(v)
	if newSize != int(storedValueSize) {
		return false
	}

	valueStart := off + 2*sizeWordWidth + int(keySize)
	c.layout.WriteValue(cur, valueStart, v)
	return true
}

// ChildAt reads the child pointer associated with internal key position p
// (the child to the right of key p; see §4.4.3/§4.3). stableGen and
// unstableGen are the two generations the caller currently considers
// valid reads of.
func (c *NodeClass[K, V]) ChildAt(cur Cursor, p, keyCount int, stableGen, unstableGen uint32) ChildPointer {
	if p < -1 || p >= keyCount {
		cur.SetCursorException("internal child position out of range")
		return InvalidChildPointer
	}
	return c.children.Read(cur, internalChildSlotOffset(p+1), stableGen, unstableGen)
}

// SetChildAt overwrites the child pointer at internal position p.
func (c *NodeClass[K, V]) SetChildAt(cur Cursor, p, keyCount int, child ChildPointer, writerGen uint32) {
	if p < -1 || p >= keyCount {
		cur.SetCursorException("internal child position out of range")
		return
	}
	c.children.Write(cur, internalChildSlotOffset(p+1), child, writerGen)
}
