package dynpage

// Cursor is the page-cursor contract this engine consumes (§6, "Cursor
// contract (consumed)"). It is supplied by the page cache / durability
// layer above; the engine never constructs one on its own behalf except
// in tests and the reference implementations below.
//
// Range checks discovered while reading through a Cursor (an offset
// outside [0, pageSize), a size word over the page class's
// keyValueSizeCap) are reported via SetCursorException rather than by a
// panic or a Go error return, mirroring the "sticky" cursor-exception
// protocol of spec §5: the caller observes the failure once, after the
// operation, through Exception().
type Cursor interface {
	// GetOffset returns the cursor's current seek position.
	GetOffset() int
	// SetOffset seeks the cursor to an absolute byte offset.
	SetOffset(offset int)

	// ReadAt reads len(into) bytes starting at offset, without moving
	// the cursor's seek position.
	ReadAt(offset int, into []byte)
	// WriteAt writes src starting at offset, without moving the
	// cursor's seek position.
	WriteAt(offset int, src []byte)

	// CopyTo performs an intra- or inter-page memory move of length
	// bytes from srcOffset in this cursor's page to dstOffset in dst's
	// page. Overlapping ranges within one page behave as memmove.
	CopyTo(srcOffset int, dst Cursor, dstOffset int, length int)

	// GetCurrentPageSize returns the total byte count of the page this
	// cursor addresses.
	GetCurrentPageSize() int

	// SetCursorException latches the first structural-corruption error
	// observed during the current operation. Subsequent calls are
	// no-ops until the tree layer begins a new operation by clearing it.
	SetCursorException(message string)
	// Exception returns the latched error, or nil if none was set since
	// the last ClearException.
	Exception() error
	// ClearException resets the latched error, beginning a fresh
	// operation per §5's single-writer-per-call model.
	ClearException()
}

// BufferCursor is a Cursor backed by a plain in-memory byte slice - the
// simplest concrete page representation, grounded in the teacher's
// []byte-backed page.go. Suitable for unit tests and for any caller that
// already owns the page bytes outside of a page cache.
type BufferCursor struct {
	data   []byte
	offset int
	err    error
}

// NewBufferCursor wraps data as a Cursor. data is owned by the cursor for
// the lifetime of the node operations performed over it.
func NewBufferCursor(data []byte) *BufferCursor {
	return &BufferCursor{data: data}
}

// Bytes returns the underlying page bytes.
func (c *BufferCursor) Bytes() []byte { return c.data }

func (c *BufferCursor) GetOffset() int      { return c.offset }
func (c *BufferCursor) SetOffset(o int)     { c.offset = o }
func (c *BufferCursor) GetCurrentPageSize() int { return len(c.data) }

func (c *BufferCursor) ReadAt(offset int, into []byte) {
	if offset < 0 || offset+len(into) > len(c.data) {
		c.SetCursorException("read out of page bounds")
		return
	}
	copy(into, c.data[offset:offset+len(into)])
}

func (c *BufferCursor) WriteAt(offset int, src []byte) {
	if offset < 0 || offset+len(src) > len(c.data) {
		c.SetCursorException("write out of page bounds")
		return
	}
	copy(c.data[offset:offset+len(src)], src)
}

func (c *BufferCursor) CopyTo(srcOffset int, dst Cursor, dstOffset int, length int) {
	if length == 0 {
		return
	}
	if srcOffset < 0 || srcOffset+length > len(c.data) {
		c.SetCursorException("copy source out of page bounds")
		return
	}
	if same, ok := dst.(*BufferCursor); ok && same == c {
		// Intra-page move: behave as memmove under overlap.
		copyWithOverlap(c.data, dstOffset, srcOffset, length)
		return
	}
	buf := make([]byte, length)
	copy(buf, c.data[srcOffset:srcOffset+length])
	dst.WriteAt(dstOffset, buf)
}

func (c *BufferCursor) SetCursorException(message string) {
	if c.err == nil {
		c.err = newError(ErrCursorException, message)
	}
}

func (c *BufferCursor) Exception() error { return c.err }
func (c *BufferCursor) ClearException()  { c.err = nil }

// copyWithOverlap copies length bytes from data[src:src+length] to
// data[dst:dst+length], correct even when the ranges overlap - the
// "page-internal copies" of §4.6's defragmentation slide.
func copyWithOverlap(data []byte, dst, src, length int) {
	if dst == src {
		return
	}
	copy(data[dst:dst+length], data[src:src+length])
}
