package huffman

// node is one entry of a flattened Huffman decode tree. Child index 0
// marks a missing branch (the root can never be a child).
type node struct {
	leaf  bool
	x, y  uint8
	child [2]uint16
}

// Table is a decode tree plus its escape width. Tables 16-23 and
// 24-31 share one tree each and differ only in linbits.
type Table struct {
	nodes   []node
	linbits uint
}

// buildTree flattens a codeword/length list into a walkable tree.
// Values are addressed x*dim+y. Codewords that conflict with an
// already-placed prefix are dropped rather than corrupting the tree.
func buildTree(codes []uint16, lens []uint8, dim int) []node {
	nodes := make([]node, 1, 2*len(codes))
	for i := range codes {
		n := uint(lens[i])
		if n == 0 {
			continue
		}
		pos := 0
		ok := true
		for b := int(n) - 1; b >= 0; b-- {
			if nodes[pos].leaf {
				ok = false
				break
			}
			bit := codes[i] >> uint(b) & 1
			if nodes[pos].child[bit] == 0 {
				nodes = append(nodes, node{})
				nodes[pos].child[bit] = uint16(len(nodes) - 1)
			}
			pos = int(nodes[pos].child[bit])
		}
		if ok && !nodes[pos].leaf && nodes[pos].child[0] == 0 && nodes[pos].child[1] == 0 {
			nodes[pos] = node{leaf: true, x: uint8(i / dim), y: uint8(i % dim)}
		}
	}
	return nodes
}

// spectralTables maps table_select values 0-31 to decode tables. Nil
// entries (0, 4, 14) decode to runs of zeros without consuming bits.
var spectralTables [32]*Table

// count1Tables maps count1table_select to the quadruple tables. Leaf
// x holds the packed v,w,x,y bits.
var count1Tables [2]*Table

func init() {
	t := func(codes []uint16, lens []uint8, dim int) []node {
		return buildTree(codes, lens, dim)
	}

	own := func(nodes []node) *Table { return &Table{nodes: nodes} }
	spectralTables[1] = own(t(tab1Code[:], tab1Len[:], 2))
	spectralTables[2] = own(t(tab2Code[:], tab2Len[:], 3))
	spectralTables[3] = own(t(tab3Code[:], tab3Len[:], 3))
	spectralTables[5] = own(t(tab5Code[:], tab5Len[:], 4))
	spectralTables[6] = own(t(tab6Code[:], tab6Len[:], 4))
	spectralTables[7] = own(t(tab7Code[:], tab7Len[:], 6))
	spectralTables[8] = own(t(tab8Code[:], tab8Len[:], 6))
	spectralTables[9] = own(t(tab9Code[:], tab9Len[:], 6))
	spectralTables[10] = own(t(tab10Code[:], tab10Len[:], 8))
	spectralTables[11] = own(t(tab11Code[:], tab11Len[:], 8))
	spectralTables[12] = own(t(tab12Code[:], tab12Len[:], 8))
	spectralTables[13] = own(t(tab13Code[:], tab13Len[:], 16))
	spectralTables[15] = own(t(tab15Code[:], tab15Len[:], 16))

	tree16 := t(tab16Code[:], tab16Len[:], 16)
	tree24 := t(tab24Code[:], tab24Len[:], 16)
	for i := 16; i < 32; i++ {
		tree := tree16
		if i >= 24 {
			tree = tree24
		}
		spectralTables[i] = &Table{nodes: tree, linbits: escapeLinbits[i-16]}
	}

	count1Tables[0] = own(t(count1ACode[:], count1ALen[:], 1))
	count1Tables[1] = own(t(count1BCode[:], count1BLen[:], 1))
}
