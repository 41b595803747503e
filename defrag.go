package dynpage

// DefragmentLeaf implements §4.6: reclaim every tombstoned blob's bytes by
// sliding the page's live blobs up against P, leaving one contiguous free
// gap between the offset array and the (raised) allocOffset.
//
// The heap is walked once, ascending from allocOffset to P, to discover
// each blob's bounds and tombstone state (invariant 3: blobs are packed
// with no gaps, so this walk always lands exactly on P). Blobs are then
// relocated in descending order - starting from the one already nearest
// P and working back toward allocOffset - so that every blob's new offset
// is computed, and physically written, before any blob below it can
// overlap the space being vacated. A live blob whose new offset equals
// its old one is left untouched.
func (c *NodeClass[K, V]) DefragmentLeaf(cur Cursor, keyCount int) {
	type blob struct {
		offset int
		size   int
		dead   bool
	}

	allocOffset := getAllocOffset(cur)
	deadBefore := getDeadSpace(cur)

	var blobs []blob
	for offset := allocOffset; offset < c.pageSize; {
		keyWord := readKeySize(cur, offset)
		dead := hasTombstone(keyWord)
		keySize := int(stripTombstone(keyWord))
		valueSize := int(readValueSize(cur, offset+sizeWordWidth))
		size := 2*sizeWordWidth + keySize + valueSize
		blobs = append(blobs, blob{offset: offset, size: size, dead: dead})
		offset += size
	}

	remap := make(map[int]int, len(blobs))
	writeCursor := c.pageSize
	for i := len(blobs) - 1; i >= 0; i-- {
		b := blobs[i]
		if b.dead {
			continue
		}
		writeCursor -= b.size
		if writeCursor != b.offset {
			cur.CopyTo(b.offset, cur, writeCursor, b.size)
		}
		remap[b.offset] = writeCursor
	}

	for p := 0; p < keyCount; p++ {
		old := readLeafSlot(cur, p)
		if newOffset, ok := remap[old]; ok {
			writeLeafSlot(cur, p, newOffset)
		} else {
			cur.SetCursorException("defragmentLeaf: live slot points at an unmapped blob")
			return
		}
	}

	setAllocOffset(cur, writeCursor)
	setDeadSpace(cur, 0)

	c.log.Debugw("defragmented leaf",
		"pageSize", c.pageSize,
		"keyCount", keyCount,
		"reclaimed", deadBefore,
		"allocOffset", writeCursor,
	)
}
