package dynpage

// Width constants for the dynamic-size layout. These are the format's
// versioning surface: changing any of them changes the on-page bytes.
const (
	// sizeWordWidth is the width in bytes of the keySize and valueSize
	// fields (S_k, S_v in spec terms). The high bit of the keySize word
	// is the tombstone bit, so the addressable size range is 15 bits.
	sizeWordWidth = 2

	// offsetWidth is the width in bytes of a page offset field (O in
	// spec terms): used both in the offset array and for allocOffset.
	offsetWidth = 2

	// childPointerWidth is the width in bytes of one generation-safe
	// child pointer in the internal offset-array interleave: a 32-bit
	// page number plus a 32-bit generation tag.
	childPointerWidth = 8

	// tombstoneBit marks a keySize word as belonging to a dead blob.
	tombstoneBit uint16 = 1 << 15

	// maxSizeValue is the largest representable size after stripping
	// the tombstone bit.
	maxSizeValue uint16 = tombstoneBit - 1
)

// baseHeaderSize is the size of the fixed prefix the tree layer writes
// before the dynamic-layout header fields (allocOffset, deadSpace). It
// stands in for whatever node-common fields (page type, key count, right
// sibling, level, ...) the tree layer's base header carries; this engine
// only needs to know where its own two fields start. 8 bytes matches
// spec §8's worked scenarios, which size the combined base-plus-dynamic
// header at 12 bytes (8 base + 2 allocOffset + 2 deadSpace).
const baseHeaderSize = 8

// Header field offsets, relative to the start of the page.
const (
	allocOffsetFieldOffset = baseHeaderSize
	deadSpaceFieldOffset   = baseHeaderSize + offsetWidth
	// headerEnd is the first byte belonging to the offset array.
	headerEnd = deadSpaceFieldOffset + offsetWidth
)

// Page size constraints.
const (
	// MinPageSize is the smallest page size this layout can be
	// constructed over; see keyValueSizeCap derivation in NewNodeClass.
	MinPageSize = 128

	// MaxPageSize bounds pages to what a 16-bit offset can address,
	// including allocOffset = P on a fresh page.
	MaxPageSize = 1<<16 - 1

	// minKeyValueSizeCap is the floor imposed by spec §3: "... cap >=
	// 64 bits", i.e. at least 8 bytes of key or value must always fit.
	minKeyValueSizeCap = 8
)

// leafSlotWidth is the offset-array pitch for a leaf node: one absolute
// page offset per logical position.
const leafSlotWidth = offsetWidth

// internalSlotWidth is the offset-array pitch for one (offset, child)
// pair in the internal interleave.
const internalSlotWidth = offsetWidth + childPointerWidth
