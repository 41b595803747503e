// Package cursor provides concrete dynpage.Cursor implementations backed
// by real storage, as opposed to dynpage.BufferCursor's plain byte slice.
package cursor

import (
	"golang.org/x/sys/unix"

	"github.com/arbordb/dynpage"
	"github.com/arbordb/dynpage/mmap"
)

// MmapCursor is a dynpage.Cursor over one fixed-size page inside a larger
// memory-mapped file - the page-cache-backed cursor spec §1 describes as
// an external collaborator. It is grounded in the teacher's mmap package
// (itself built on golang.org/x/sys/unix), generalized from "the whole
// database file" down to "one page-sized window of a mapping".
type MmapCursor struct {
	m          *mmap.Map
	pageOffset int64
	pageSize   int
	offset     int
	err        error
}

// NewMmapCursor addresses the page at pageOffset (a multiple of pageSize)
// within m. m must already cover [pageOffset, pageOffset+pageSize).
func NewMmapCursor(m *mmap.Map, pageOffset int64, pageSize int) *MmapCursor {
	return &MmapCursor{m: m, pageOffset: pageOffset, pageSize: pageSize}
}

func (c *MmapCursor) bytes() []byte {
	return c.m.Data()[c.pageOffset : c.pageOffset+int64(c.pageSize)]
}

func (c *MmapCursor) GetOffset() int          { return c.offset }
func (c *MmapCursor) SetOffset(o int)         { c.offset = o }
func (c *MmapCursor) GetCurrentPageSize() int { return c.pageSize }

func (c *MmapCursor) ReadAt(offset int, into []byte) {
	if offset < 0 || offset+len(into) > c.pageSize {
		c.SetCursorException("mmap cursor: read out of page bounds")
		return
	}
	copy(into, c.bytes()[offset:offset+len(into)])
}

func (c *MmapCursor) WriteAt(offset int, src []byte) {
	if !c.m.Writable() {
		c.SetCursorException("mmap cursor: write to a read-only mapping")
		return
	}
	if offset < 0 || offset+len(src) > c.pageSize {
		c.SetCursorException("mmap cursor: write out of page bounds")
		return
	}
	copy(c.bytes()[offset:offset+len(src)], src)
}

// CopyTo moves bytes between two windows of mapped memory. Within the
// same page this is a plain Go copy (memmove-safe under overlap); across
// pages it reads the source page's bytes into a scratch buffer first,
// since the two pages may themselves overlap in the underlying mapping
// in pathological configurations.
func (c *MmapCursor) CopyTo(srcOffset int, dst dynpage.Cursor, dstOffset int, length int) {
	if length == 0 {
		return
	}
	if srcOffset < 0 || srcOffset+length > c.pageSize {
		c.SetCursorException("mmap cursor: copy source out of page bounds")
		return
	}
	if same, ok := dst.(*MmapCursor); ok && same == c {
		copy(c.bytes()[dstOffset:dstOffset+length], c.bytes()[srcOffset:srcOffset+length])
		return
	}
	buf := make([]byte, length)
	copy(buf, c.bytes()[srcOffset:srcOffset+length])
	dst.WriteAt(dstOffset, buf)
}

func (c *MmapCursor) SetCursorException(message string) {
	if c.err == nil {
		c.err = dynpage.NewCursorError(message)
	}
}

func (c *MmapCursor) Exception() error { return c.err }
func (c *MmapCursor) ClearException()  { c.err = nil }

// Sync flushes this page's dirty bytes to the backing file, matching the
// durability boundary the teacher's mmap.Map.SyncRange exposes.
func (c *MmapCursor) Sync() error {
	return c.m.SyncRange(c.pageOffset, int64(c.pageSize))
}

// AdviseWillNeed hints the kernel this page is about to be read, useful
// before a root-to-leaf descent touches a cold page.
func (c *MmapCursor) AdviseWillNeed() error {
	return unix.Madvise(c.bytes(), unix.MADV_WILLNEED)
}
