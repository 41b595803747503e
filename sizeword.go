package dynpage

// This file is the "dynamic-size util" of spec §4.1: encoding size
// integers with a dedicated tombstone bit in the key-size word, plus the
// offset codec shared by the offset array and allocOffset/deadSpace.

func putKeySize(cur Cursor, offset int, size int) {
	buf := make([]byte, sizeWordWidth)
	putUint16LE(buf, uint16(size))
	cur.WriteAt(offset, buf)
}

func readKeySize(cur Cursor, offset int) uint16 {
	buf := make([]byte, sizeWordWidth)
	cur.ReadAt(offset, buf)
	return getUint16LE(buf)
}

func putValueSize(cur Cursor, offset int, size int) {
	buf := make([]byte, sizeWordWidth)
	putUint16LE(buf, uint16(size))
	cur.WriteAt(offset, buf)
}

func readValueSize(cur Cursor, offset int) uint16 {
	buf := make([]byte, sizeWordWidth)
	cur.ReadAt(offset, buf)
	return getUint16LE(buf)
}

func putKeyOffset(cur Cursor, slotOffset int, pageOffset int) {
	buf := make([]byte, offsetWidth)
	putUint16LE(buf, uint16(pageOffset))
	cur.WriteAt(slotOffset, buf)
}

func readKeyOffset(cur Cursor, slotOffset int) uint16 {
	buf := make([]byte, offsetWidth)
	cur.ReadAt(slotOffset, buf)
	return getUint16LE(buf)
}

// putTombstone sets the tombstone bit on a keySize word value (does not
// touch the page; callers pass the result to putKeySize).
func putTombstone(keySize uint16) uint16 {
	return keySize | tombstoneBit
}

func hasTombstone(x uint16) bool {
	return x&tombstoneBit != 0
}

func stripTombstone(x uint16) uint16 {
	return x &^ tombstoneBit
}
