package dynpage

// Layout is the key/value codec contract this engine consumes (§6,
// "Layout contract (consumed)"). Implementations must be deterministic:
// keySize/valueSize must report exactly the number of bytes
// writeKey/writeValue will produce, and readKey/readValue must consume
// exactly that many bytes back.
type Layout[K, V any] interface {
	KeySize(k K) int
	ValueSize(v V) int

	WriteKey(cur Cursor, offset int, k K)
	WriteValue(cur Cursor, offset int, v V)

	ReadKey(cur Cursor, offset int, n int) K
	ReadValue(cur Cursor, offset int, n int) V

	// CopyKey returns an independent copy of k, used by split when a key
	// is read from one page and must be held past the source blob being
	// tombstoned.
	CopyKey(k K) K
	NewKey() K
	NewValue() V
}

// BytesLayout is a Layout[[]byte, []byte] for variable-length byte-slice
// keys and values - the common case, grounded in the teacher's own
// []byte-typed keys/values throughout cursor.go.
type BytesLayout struct{}

func (BytesLayout) KeySize(k []byte) int   { return len(k) }
func (BytesLayout) ValueSize(v []byte) int { return len(v) }

func (BytesLayout) WriteKey(cur Cursor, offset int, k []byte)   { cur.WriteAt(offset, k) }
func (BytesLayout) WriteValue(cur Cursor, offset int, v []byte) { cur.WriteAt(offset, v) }

func (BytesLayout) ReadKey(cur Cursor, offset int, n int) []byte {
	buf := make([]byte, n)
	cur.ReadAt(offset, buf)
	return buf
}

func (BytesLayout) ReadValue(cur Cursor, offset int, n int) []byte {
	buf := make([]byte, n)
	cur.ReadAt(offset, buf)
	return buf
}

func (BytesLayout) CopyKey(k []byte) []byte {
	cp := make([]byte, len(k))
	copy(cp, k)
	return cp
}

func (BytesLayout) NewKey() []byte   { return nil }
func (BytesLayout) NewValue() []byte { return nil }

// StringLayout is a Layout[string, string] for variable-length string
// keys and values, for trees whose tree layer already works in strings
// rather than raw bytes.
type StringLayout struct{}

func (StringLayout) KeySize(k string) int   { return len(k) }
func (StringLayout) ValueSize(v string) int { return len(v) }

func (StringLayout) WriteKey(cur Cursor, offset int, k string)   { cur.WriteAt(offset, []byte(k)) }
func (StringLayout) WriteValue(cur Cursor, offset int, v string) { cur.WriteAt(offset, []byte(v)) }

func (StringLayout) ReadKey(cur Cursor, offset int, n int) string {
	buf := make([]byte, n)
	cur.ReadAt(offset, buf)
	return string(buf)
}

func (StringLayout) ReadValue(cur Cursor, offset int, n int) string {
	buf := make([]byte, n)
	cur.ReadAt(offset, buf)
	return string(buf)
}

func (StringLayout) CopyKey(k string) string { return k }
func (StringLayout) NewKey() string          { return "" }
func (StringLayout) NewValue() string        { return "" }
