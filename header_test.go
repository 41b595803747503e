package dynpage

import "testing"

func TestWriteAdditionalHeaderInitializesFreshPage(t *testing.T) {
	cur := NewBufferCursor(make([]byte, 256))
	WriteAdditionalHeader(cur)

	if got := getAllocOffset(cur); got != 256 {
		t.Fatalf("allocOffset: got %d, want 256", got)
	}
	if got := getDeadSpace(cur); got != 0 {
		t.Fatalf("deadSpace: got %d, want 0", got)
	}
}

func TestGetDeadSpaceRejectsTombstonedField(t *testing.T) {
	cur := NewBufferCursor(make([]byte, 256))
	WriteAdditionalHeader(cur)

	// Corrupt the deadSpace field directly, bypassing setDeadSpace.
	buf := make([]byte, offsetWidth)
	putUint16LE(buf, tombstoneBit)
	cur.WriteAt(deadSpaceFieldOffset, buf)

	getDeadSpace(cur)
	if cur.Exception() == nil {
		t.Fatal("expected a cursor exception reading a tombstoned deadSpace field")
	}
}
