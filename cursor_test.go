package dynpage

import "testing"

func TestBufferCursorReadWriteBounds(t *testing.T) {
	cur := NewBufferCursor(make([]byte, 16))

	cur.WriteAt(0, []byte("hello"))
	got := make([]byte, 5)
	cur.ReadAt(0, got)
	if string(got) != "hello" {
		t.Fatalf("round trip: got %q, want hello", got)
	}
	if cur.Exception() != nil {
		t.Fatalf("unexpected exception: %v", cur.Exception())
	}

	cur.ReadAt(12, make([]byte, 8))
	if cur.Exception() == nil {
		t.Fatal("expected exception reading past the end of the page")
	}

	cur.ClearException()
	cur.WriteAt(-1, []byte("x"))
	if cur.Exception() == nil {
		t.Fatal("expected exception writing at a negative offset")
	}
}

func TestBufferCursorCopyOverlapping(t *testing.T) {
	cur := NewBufferCursor([]byte("abcdefghij"))

	// Shift "cdefg" (offset 2, len 5) two bytes to the right: the
	// source and destination ranges overlap.
	cur.CopyTo(2, cur, 4, 5)
	if got := string(cur.Bytes()); got != "abcdcdefgj" {
		t.Fatalf("overlapping copy forward: got %q", got)
	}
}

func TestBufferCursorCopyOverlappingBackward(t *testing.T) {
	cur := NewBufferCursor([]byte("abcdefghij"))

	// Shift "defgh" (offset 3, len 5) two bytes to the left.
	cur.CopyTo(3, cur, 1, 5)
	if got := string(cur.Bytes()); got != "adefghghij" {
		t.Fatalf("overlapping copy backward: got %q", got)
	}
}

func TestBufferCursorCopyAcrossPages(t *testing.T) {
	src := NewBufferCursor([]byte("hello world"))
	dst := NewBufferCursor(make([]byte, 11))

	src.CopyTo(0, dst, 0, 11)
	if string(dst.Bytes()) != "hello world" {
		t.Fatalf("cross-page copy: got %q", dst.Bytes())
	}
}

func TestCursorExceptionIsSticky(t *testing.T) {
	cur := NewBufferCursor(make([]byte, 8))
	cur.SetCursorException("first")
	cur.SetCursorException("second")

	e, ok := cur.Exception().(*Error)
	if !ok {
		t.Fatalf("Exception(): got %T, want *Error", cur.Exception())
	}
	if e.Message != "first" {
		t.Fatalf("sticky exception should keep the first message: got %q", e.Message)
	}

	cur.ClearException()
	if cur.Exception() != nil {
		t.Fatal("ClearException did not clear the latched error")
	}
}
