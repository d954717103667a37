package huffman

import (
	"github.com/llehouerou/go-mp3dec/internal/bits"
)

// SpectrumLen is the number of frequency lines per granule per
// channel.
const SpectrumLen = 576

// walk follows one codeword through t's tree. A missing branch
// (corrupt bitstream) yields the 0,0 leaf.
func walk(r *bits.Reader, t *Table) (uint8, uint8) {
	pos := 0
	for !t.nodes[pos].leaf {
		next := t.nodes[pos].child[r.Get1Bit()]
		if next == 0 {
			return 0, 0
		}
		pos = int(next)
	}
	return t.nodes[pos].x, t.nodes[pos].y
}

// decodeValue finishes one big-values magnitude: linbits escape for
// saturated values, then the sign bit. Order per ISO/IEC 11172-3
// 2.4.3.4.6: escape bits directly follow the codeword, the sign bit
// follows the escape bits.
func decodeValue(r *bits.Reader, t *Table, mag uint8) int32 {
	v := int32(mag)
	if t.linbits > 0 && mag == 15 {
		v += int32(r.GetBits(t.linbits))
	}
	if v != 0 && r.Get1Bit() != 0 {
		v = -v
	}
	return v
}

// Decode entropy-decodes one granule's frequency lines into is.
//
// The big-values region (2*bigValues lines) is split at region1 and
// region2 into three regions decoded with tableSelect[0..2]. The
// remainder is decoded with the count1 quadruple table until the bit
// budget runs out. budget is the absolute bit offset in r at which
// the granule's side-entropy data ends (granule start plus
// part2_3_length); decoding never runs past it. If a codeword would
// overrun the budget the remaining lines are zero-filled instead of
// failing the frame.
//
// Decode returns the index one past the last decoded line. Lines from
// there to 576 are zeroed. The caller is responsible for realigning r
// to the budget afterwards.
func Decode(r *bits.Reader, bigValues int, tableSelect [3]int, count1Select int,
	region1, region2, budget int, is *[SpectrumLen]int32) int {

	n := 0
	for ; n < bigValues*2; n += 2 {
		var sel int
		switch {
		case n < region1:
			sel = tableSelect[0]
		case n < region2:
			sel = tableSelect[1]
		default:
			sel = tableSelect[2]
		}

		t := spectralTables[sel&31]
		if t == nil {
			// Tables 0, 4 and 14 carry no data: a run of zero pairs.
			is[n], is[n+1] = 0, 0
			continue
		}
		if r.BitsRead() >= budget {
			break
		}
		x, y := walk(r, t)
		is[n] = decodeValue(r, t, x)
		is[n+1] = decodeValue(r, t, y)
	}

	// count1 region: quadruples of -1/0/+1 until the budget is
	// exhausted or the spectrum is full.
	c1 := count1Tables[count1Select&1]
	for n+4 <= SpectrumLen && r.BitsRead() < budget {
		packed, _ := walk(r, c1)
		var quad [4]int32
		for i := 0; i < 4; i++ {
			if packed&(8>>uint(i)) != 0 {
				quad[i] = 1
				if r.Get1Bit() != 0 {
					quad[i] = -1
				}
			}
		}
		if r.BitsRead() > budget {
			// The quadruple straddled the granule boundary; it
			// belongs to noise, not to this granule.
			break
		}
		is[n], is[n+1], is[n+2], is[n+3] = quad[0], quad[1], quad[2], quad[3]
		n += 4
	}

	for i := n; i < SpectrumLen; i++ {
		is[i] = 0
	}
	return n
}
