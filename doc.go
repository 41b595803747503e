// Package dynpage implements the dynamic-size page layout of a persistent
// B+tree index node: packing a variable number of variable-length key/value
// entries into one fixed-size page, with insertion, deletion, in-place
// update, split, and tombstone-driven space reclamation.
//
// dynpage covers only the node layout engine. The tree-level insert/delete
// algorithms, the page cache and durability layer, and the key/value codec
// are external collaborators the tree layer supplies to a NodeClass.
//
// Basic usage:
//
//	class, err := dynpage.NewNodeClass[[]byte, []byte](dynpage.Config[[]byte, []byte]{
//	    PageSize: 4096,
//	    Layout:   dynpage.BytesLayout{},
//	    Children: dynpage.DefaultChildCodec{},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cur := dynpage.NewBufferCursor(make([]byte, class.PageSize()))
//	dynpage.WriteAdditionalHeader(cur)
//	keyCount := class.InsertKeyValueAt(cur, 0, 0, []byte("hello"), []byte("world"))
package dynpage
