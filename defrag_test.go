package dynpage

import (
	"fmt"
	"testing"
)

// TestDefragmentPreservesLiveEntries is invariant 4: after
// defragmentLeaf, deadSpace is zero and every live entry reads back
// identically to its pre-defrag bytes.
func TestDefragmentPreservesLiveEntries(t *testing.T) {
	c := newTestClass(t, 512)
	cur := NewBufferCursor(make([]byte, 512))
	WriteAdditionalHeader(cur)

	keyCount := 0
	for i := 0; i < 10; i++ {
		k := []byte(fmt.Sprintf("k%02d", i))
		v := []byte(fmt.Sprintf("v%02d-value", i))
		keyCount = c.InsertKeyValueAt(cur, keyCount, keyCount, k, v)
	}

	// Tombstone every third entry.
	for p := keyCount - 1; p >= 0; p -= 3 {
		keyCount = c.RemoveKeyValueAt(cur, p, keyCount)
	}

	wantKeys := make([]string, keyCount)
	wantValues := make([]string, keyCount)
	for p := 0; p < keyCount; p++ {
		wantKeys[p] = string(c.KeyAt(cur, p, keyCount, true))
		wantValues[p] = string(c.ValueAt(cur, p, keyCount))
	}

	c.DefragmentLeaf(cur, keyCount)

	if got := getDeadSpace(cur); got != 0 {
		t.Fatalf("deadSpace after defrag: got %d, want 0", got)
	}
	for p := 0; p < keyCount; p++ {
		if got := string(c.KeyAt(cur, p, keyCount, true)); got != wantKeys[p] {
			t.Fatalf("position %d key: got %q, want %q", p, got, wantKeys[p])
		}
		if got := string(c.ValueAt(cur, p, keyCount)); got != wantValues[p] {
			t.Fatalf("position %d value: got %q, want %q", p, got, wantValues[p])
		}
	}

	// Heap-walk totality: scanning allocOffset..pageSize by blob size
	// lands exactly on the page boundary with no tombstones remaining.
	offset := getAllocOffset(cur)
	for offset < 512 {
		keyWord := readKeySize(cur, offset)
		if hasTombstone(keyWord) {
			t.Fatalf("tombstone survived defragmentation at offset %d", offset)
		}
		keySize := int(stripTombstone(keyWord))
		valueSize := int(readValueSize(cur, offset+sizeWordWidth))
		offset += 2*sizeWordWidth + keySize + valueSize
	}
	if offset != 512 {
		t.Fatalf("heap walk did not land exactly on the page boundary: got %d", offset)
	}
}

// TestDefragmentIsIdempotent is invariant 4's idempotence half: running
// defragmentLeaf again on an already-compact page is a no-op.
func TestDefragmentIsIdempotent(t *testing.T) {
	c := newTestClass(t, 256)
	cur := NewBufferCursor(make([]byte, 256))
	WriteAdditionalHeader(cur)

	keyCount := 0
	keyCount = c.InsertKeyValueAt(cur, 0, keyCount, []byte("a"), []byte("1"))
	keyCount = c.InsertKeyValueAt(cur, 1, keyCount, []byte("b"), []byte("2"))

	c.DefragmentLeaf(cur, keyCount)
	allocAfterFirst := getAllocOffset(cur)

	c.DefragmentLeaf(cur, keyCount)
	if got := getAllocOffset(cur); got != allocAfterFirst {
		t.Fatalf("second defrag moved allocOffset: got %d, want %d", got, allocAfterFirst)
	}
	if got := getDeadSpace(cur); got != 0 {
		t.Fatalf("deadSpace after second defrag: got %d, want 0", got)
	}
}

func TestDeadSpaceAccounting(t *testing.T) {
	c := newTestClass(t, 256)
	cur := NewBufferCursor(make([]byte, 256))
	WriteAdditionalHeader(cur)

	keyCount := 0
	keyCount = c.InsertKeyValueAt(cur, 0, keyCount, []byte("aa"), []byte("111"))
	keyCount = c.InsertKeyValueAt(cur, 1, keyCount, []byte("bbbb"), []byte("2"))

	keyCount = c.RemoveKeyValueAt(cur, 0, keyCount)
	want := 2*sizeWordWidth + len("aa") + len("111")
	if got := getDeadSpace(cur); got != want {
		t.Fatalf("deadSpace after first removal: got %d, want %d", got, want)
	}

	keyCount = c.RemoveKeyValueAt(cur, 0, keyCount)
	want += 2*sizeWordWidth + len("bbbb") + len("1")
	if got := getDeadSpace(cur); got != want {
		t.Fatalf("deadSpace after second removal: got %d, want %d", got, want)
	}
}
