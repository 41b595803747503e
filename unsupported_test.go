package dynpage

import "testing"

func TestUnsupportedOperationsReturnErrUnsupported(t *testing.T) {
	c := newTestClass(t, 256)
	cur := NewBufferCursor(make([]byte, 256))

	if err := c.SetKeyAt(cur, 0, 0, nil); !Is(err, ErrUnsupported) {
		t.Errorf("SetKeyAt: got %v, want ErrUnsupported", err)
	}
	if _, err := c.LeafMaxKeyCount(); !Is(err, ErrUnsupported) {
		t.Errorf("LeafMaxKeyCount: got %v, want ErrUnsupported", err)
	}
	if _, err := c.ReasonableChildCount(0); !Is(err, ErrUnsupported) {
		t.Errorf("ReasonableChildCount: got %v, want ErrUnsupported", err)
	}
	if err := c.DoSplitInternal(cur, cur, 0, 0, nil, ChildPointer{}, nil); !Is(err, ErrUnsupported) {
		t.Errorf("DoSplitInternal: got %v, want ErrUnsupported", err)
	}
	if err := c.MoveKeyValuesFromLeftToRight(cur, cur, 0, 0, 0); !Is(err, ErrUnsupported) {
		t.Errorf("MoveKeyValuesFromLeftToRight: got %v, want ErrUnsupported", err)
	}
	if _, err := c.CanRebalanceLeaves(cur, cur, 0, 0); !Is(err, ErrUnsupported) {
		t.Errorf("CanRebalanceLeaves: got %v, want ErrUnsupported", err)
	}
	if _, err := c.CanMergeLeaves(cur, cur, 0, 0); !Is(err, ErrUnsupported) {
		t.Errorf("CanMergeLeaves: got %v, want ErrUnsupported", err)
	}
}

func TestLeafUnderflow(t *testing.T) {
	c := newTestClass(t, 256)
	cur := NewBufferCursor(make([]byte, 256))
	WriteAdditionalHeader(cur)

	if !c.LeafUnderflow(cur, 0) {
		t.Fatal("an empty leaf should report underflow")
	}

	keyCount := 0
	for i := 0; i < 8; i++ {
		keyCount = c.InsertKeyValueAt(cur, keyCount, keyCount, []byte("key-padded"), []byte("value-padded"))
	}
	if c.LeafUnderflow(cur, keyCount) {
		t.Fatal("a near-full leaf should not report underflow")
	}
}
