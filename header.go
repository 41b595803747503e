package dynpage

// §4.2: allocOffset and deadSpace live at fixed positions right after the
// base header. Each accessor performs the appropriate fixed-width
// ReadAt/WriteAt at the field's absolute offset; the cursor's seek
// position is not moved.

func getAllocOffset(cur Cursor) int {
	buf := make([]byte, offsetWidth)
	cur.ReadAt(allocOffsetFieldOffset, buf)
	return int(getUint16LE(buf))
}

func setAllocOffset(cur Cursor, value int) {
	buf := make([]byte, offsetWidth)
	putUint16LE(buf, uint16(value))
	cur.WriteAt(allocOffsetFieldOffset, buf)
}

// getDeadSpace asserts the tombstone bit is clear on read: a set bit here
// is structural corruption (invariant witness, §4.2), not a valid size.
func getDeadSpace(cur Cursor) int {
	buf := make([]byte, offsetWidth)
	cur.ReadAt(deadSpaceFieldOffset, buf)
	v := getUint16LE(buf)
	if hasTombstone(v) {
		cur.SetCursorException("deadSpace field has tombstone bit set")
		return 0
	}
	return int(v)
}

func setDeadSpace(cur Cursor, value int) {
	buf := make([]byte, offsetWidth)
	putUint16LE(buf, uint16(value))
	cur.WriteAt(deadSpaceFieldOffset, buf)
}

// WriteAdditionalHeader initializes the dynamic-layout header fields for a
// freshly allocated page: allocOffset = pageSize, deadSpace = 0 (§3,
// "Lifecycle"). The tree layer calls this once, after writing its own
// base header fields.
func WriteAdditionalHeader(cur Cursor) {
	setAllocOffset(cur, cur.GetCurrentPageSize())
	setDeadSpace(cur, 0)
}
