package dynpage

import "testing"

func TestSizeWordRoundTrip(t *testing.T) {
	cur := NewBufferCursor(make([]byte, 64))

	putKeySize(cur, 0, 123)
	if got := readKeySize(cur, 0); got != 123 {
		t.Fatalf("readKeySize: got %d, want 123", got)
	}

	putValueSize(cur, 2, 4567)
	if got := readValueSize(cur, 2); got != 4567 {
		t.Fatalf("readValueSize: got %d, want 4567", got)
	}

	putKeyOffset(cur, 4, 60000)
	if got := readKeyOffset(cur, 4); got != 60000 {
		t.Fatalf("readKeyOffset: got %d, want 60000", got)
	}
}

func TestTombstoneBit(t *testing.T) {
	plain := uint16(300)
	if hasTombstone(plain) {
		t.Fatal("plain size word reports tombstone set")
	}

	marked := putTombstone(plain)
	if !hasTombstone(marked) {
		t.Fatal("putTombstone didn't set the bit")
	}
	if stripTombstone(marked) != plain {
		t.Fatalf("stripTombstone: got %d, want %d", stripTombstone(marked), plain)
	}
}

func TestTombstoneDoesNotClobberMaxSize(t *testing.T) {
	marked := putTombstone(maxSizeValue)
	if stripTombstone(marked) != maxSizeValue {
		t.Fatalf("round trip at maxSizeValue: got %d, want %d", stripTombstone(marked), maxSizeValue)
	}
}
