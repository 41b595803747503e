package dynpage

import "go.uber.org/zap"

// Config configures a NodeClass (§3, "Lifecycle"; ambient "Configuration").
type Config[K, V any] struct {
	// PageSize is the fixed size P of every page this class manages.
	PageSize int
	// Layout is the key/value codec capability (§6).
	Layout Layout[K, V]
	// Children is the generation-safe child-pointer codec used by
	// internal nodes (§4.3, §4.4.3).
	Children ChildCodec
	// Logger receives structured events for corruption, defragmentation,
	// and split decisions. A nil Logger is replaced with a no-op.
	Logger *zap.SugaredLogger
}

// NodeClass is the node layout engine for one page size / key-value type
// combination (§3: "keyValueSizeCap: chosen at construction..."). It is
// stateless beyond its Config - all mutable state lives in the page bytes
// a Cursor addresses.
type NodeClass[K, V any] struct {
	pageSize        int
	layout          Layout[K, V]
	children        ChildCodec
	log             *zap.SugaredLogger
	keyValueSizeCap int
}

// NewNodeClass constructs a NodeClass, deriving keyValueSizeCap per §3:
//
//	totalSpace/2 - totalOverhead >= keyValueSizeCap >= minKeyValueSizeCap
//
// totalOverhead accounts for the page header plus one offset-array slot
// and both size words for the smallest possible entry on each side of the split this bound
// protects (a page must always be able to hold at least two minimum-size
// entries, so a leaf split always has somewhere to put the propagated
// key). Construction fails with ErrMetadataMismatch if no such cap exists.
func NewNodeClass[K, V any](cfg Config[K, V]) (*NodeClass[K, V], error) {
	if cfg.PageSize < MinPageSize || cfg.PageSize > MaxPageSize {
		return nil, newError(ErrMetadataMismatch, "page size out of range")
	}
	if cfg.Layout == nil {
		return nil, newError(ErrMetadataMismatch, "layout is required")
	}
	children := cfg.Children
	if children == nil {
		children = DefaultChildCodec{}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	totalOverhead := headerEnd + leafSlotWidth + 2*sizeWordWidth
	sizeCap := cfg.PageSize/2 - totalOverhead
	if sizeCap < minKeyValueSizeCap {
		return nil, newError(ErrMetadataMismatch, "page too small to satisfy keyValueSizeCap floor")
	}
	if sizeCap > int(maxSizeValue) {
		sizeCap = int(maxSizeValue)
	}

	return &NodeClass[K, V]{
		pageSize:        cfg.PageSize,
		layout:          cfg.Layout,
		children:        children,
		log:             log,
		keyValueSizeCap: sizeCap,
	}, nil
}

// PageSize returns the fixed page size P this class was constructed for.
func (c *NodeClass[K, V]) PageSize() int { return c.pageSize }

// KeyValueSizeCap returns the hard cap on a single key's or value's
// serialized length (§3, invariant 6).
func (c *NodeClass[K, V]) KeyValueSizeCap() int { return c.keyValueSizeCap }

// ReasonableKeyCount reports whether keyCount is plausible for this page
// size: within [0, the most entries that could ever fit, even all at the
// minimum footprint]. Used by the tree layer as a sanity check after bulk
// operations such as cursor replay or recovery (§6 names it without
// defining it; grounded in the teacher's own split-capacity accounting in
// page.splitPoint).
func (c *NodeClass[K, V]) ReasonableKeyCount(keyCount int) bool {
	if keyCount < 0 {
		return false
	}
	minLeafEntryFootprint := leafSlotWidth + 2*sizeWordWidth
	maxPossible := (c.pageSize - headerEnd) / minLeafEntryFootprint
	return keyCount <= maxPossible
}
