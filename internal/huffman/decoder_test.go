package huffman

import (
	"testing"

	"github.com/llehouerou/go-mp3dec/internal/bits"
)

// bitWriter builds small test bitstreams MSB first.
type bitWriter struct {
	data []byte
	n    uint
}

func (w *bitWriter) put(v uint32, bits uint) {
	for i := int(bits) - 1; i >= 0; i-- {
		if w.n%8 == 0 {
			w.data = append(w.data, 0)
		}
		if v>>uint(i)&1 != 0 {
			w.data[len(w.data)-1] |= 0x80 >> (w.n % 8)
		}
		w.n++
	}
}

func TestWalk_Table1(t *testing.T) {
	// ISO table 1: (0,0)='1', (1,0)='01', (0,1)='001', (1,1)='000'.
	tests := []struct {
		code uint32
		bits uint
		x, y uint8
	}{
		{0b1, 1, 0, 0},
		{0b01, 2, 1, 0},
		{0b001, 3, 0, 1},
		{0b000, 3, 1, 1},
	}
	for _, tt := range tests {
		var w bitWriter
		w.put(tt.code, tt.bits)
		r := bits.NewReader(w.data)
		x, y := walk(r, spectralTables[1])
		if x != tt.x || y != tt.y {
			t.Errorf("walk(%0*b) = (%d,%d), want (%d,%d)", tt.bits, tt.code, x, y, tt.x, tt.y)
		}
		if r.BitsRead() != int(tt.bits) {
			t.Errorf("walk(%0*b) consumed %d bits, want %d", tt.bits, tt.code, r.BitsRead(), tt.bits)
		}
	}
}

func TestTreesAreComplete(t *testing.T) {
	// Every non-escape tree must resolve any bit pattern to a leaf
	// within the maximum codeword length, or a damaged stream could
	// spin past the granule budget.
	for sel, tab := range spectralTables {
		if tab == nil {
			continue
		}
		for _, pattern := range [][]byte{{0x00, 0x00, 0x00, 0x00}, {0xFF, 0xFF, 0xFF, 0xFF}, {0xA5, 0xA5, 0xA5, 0xA5}} {
			r := bits.NewReader(pattern)
			walk(r, tab)
			if r.BitsRead() > 19 {
				t.Errorf("table %d: codeword walk consumed %d bits", sel, r.BitsRead())
			}
		}
	}
}

func TestDecode_SignBits(t *testing.T) {
	// Two pairs via table 1: (1,1) negative/positive, then (1,0)
	// negative.
	var w bitWriter
	w.put(0b000, 3) // (1,1)
	w.put(1, 1)     // x negative
	w.put(0, 1)     // y positive
	w.put(0b01, 2)  // (1,0)
	w.put(1, 1)     // x negative
	w.put(0, 8)     // padding

	var is [SpectrumLen]int32
	r := bits.NewReader(w.data)
	n := Decode(r, 2, [3]int{1, 1, 1}, 0, 576, 576, 7+2, &is)

	if n < 4 {
		t.Fatalf("Decode returned %d lines, want >= 4", n)
	}
	want := []int32{-1, 1, -1, 0}
	for i, v := range want {
		if is[i] != v {
			t.Errorf("is[%d] = %d, want %d", i, is[i], v)
		}
	}
}

func TestDecode_Count1TableB(t *testing.T) {
	// Table B is fixed 4-bit: codeword 15-v for packed value v.
	// '0000' decodes v=w=x=y=1, each followed by a sign bit.
	var w bitWriter
	w.put(0b0000, 4)
	w.put(0b0101, 4) // signs: +,-,+,-
	w.put(0b1111, 4) // packed 0: four zeros, no signs
	w.put(0, 8)

	var is [SpectrumLen]int32
	r := bits.NewReader(w.data)
	n := Decode(r, 0, [3]int{0, 0, 0}, 1, 0, 0, 12, &is)

	if n != 8 {
		t.Fatalf("Decode returned %d lines, want 8", n)
	}
	want := []int32{1, -1, 1, -1, 0, 0, 0, 0}
	for i, v := range want {
		if is[i] != v {
			t.Errorf("is[%d] = %d, want %d", i, is[i], v)
		}
	}
}

func TestDecode_BudgetTruncation(t *testing.T) {
	// A budget of zero bits must produce an all-zero spectrum and
	// consume nothing, regardless of what the buffer holds.
	var is [SpectrumLen]int32
	is[100] = 42 // stale value from a previous granule
	r := bits.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	n := Decode(r, 100, [3]int{16, 16, 16}, 0, 100, 200, 0, &is)

	if n != 0 {
		t.Errorf("Decode with zero budget returned %d lines", n)
	}
	if r.BitsRead() != 0 {
		t.Errorf("Decode with zero budget consumed %d bits", r.BitsRead())
	}
	for i, v := range is {
		if v != 0 {
			t.Fatalf("is[%d] = %d after truncation, want 0", i, v)
		}
	}
}

func TestDecode_TableZeroRuns(t *testing.T) {
	// table_select 0 decodes zero pairs without consuming bits.
	var is [SpectrumLen]int32
	r := bits.NewReader([]byte{0xFF, 0xFF})
	Decode(r, 10, [3]int{0, 0, 0}, 1, 20, 20, 4, &is)

	for i := 0; i < 20; i++ {
		if is[i] != 0 {
			t.Fatalf("is[%d] = %d, want 0", i, is[i])
		}
	}
}

func TestEscapeLinbits(t *testing.T) {
	// Escape widths per table family (ISO Table B.7).
	if spectralTables[16].linbits != 1 {
		t.Errorf("table 16 linbits = %d, want 1", spectralTables[16].linbits)
	}
	if spectralTables[23].linbits != 13 {
		t.Errorf("table 23 linbits = %d, want 13", spectralTables[23].linbits)
	}
	if spectralTables[24].linbits != 4 {
		t.Errorf("table 24 linbits = %d, want 4", spectralTables[24].linbits)
	}
	if spectralTables[31].linbits != 13 {
		t.Errorf("table 31 linbits = %d, want 13", spectralTables[31].linbits)
	}
	if spectralTables[13].linbits != 0 {
		t.Errorf("table 13 linbits = %d, want 0", spectralTables[13].linbits)
	}
}
