package spectrum

import (
	"testing"

	"github.com/llehouerou/go-mp3dec/internal/bits"
	"github.com/llehouerou/go-mp3dec/internal/frame"
)

func onesReader() *bits.Reader {
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = 0xFF
	}
	return bits.NewReader(buf)
}

func TestDecodeScaleFactorsLong(t *testing.T) {
	// scalefac_compress 1: slen1=0, slen2=1. Bands 0-10 consume no
	// bits, bands 11-20 read one bit each.
	g := &frame.GranuleInfo{ScalefacCompress: 1}
	var scfsi [4]bool
	var sf ScaleFactors
	r := onesReader()
	DecodeScaleFactors(r, g, &scfsi, 0, &sf, &sf)

	for sfb := 0; sfb < 11; sfb++ {
		if sf.L[sfb] != 0 {
			t.Errorf("L[%d] = %d, want 0", sfb, sf.L[sfb])
		}
	}
	for sfb := 11; sfb < 21; sfb++ {
		if sf.L[sfb] != 1 {
			t.Errorf("L[%d] = %d, want 1", sfb, sf.L[sfb])
		}
	}
	if got := r.BitsRead(); got != 10 {
		t.Errorf("consumed %d bits, want 10", got)
	}
}

func TestDecodeScaleFactorsScfsiCopy(t *testing.T) {
	g := &frame.GranuleInfo{ScalefacCompress: 15} // slen1=4, slen2=3
	scfsi := [4]bool{true, false, true, false}

	var prev ScaleFactors
	for i := range prev.L {
		prev.L[i] = 9
	}

	var sf ScaleFactors
	r := bits.NewReader(make([]byte, 64)) // all-zero factors where read
	DecodeScaleFactors(r, g, &scfsi, 1, &prev, &sf)

	// Groups 0 (bands 0-5) and 2 (bands 11-15) are copied; the rest
	// are read as zero.
	for sfb := 0; sfb < 6; sfb++ {
		if sf.L[sfb] != 9 {
			t.Errorf("L[%d] = %d, want copied 9", sfb, sf.L[sfb])
		}
	}
	for sfb := 6; sfb < 11; sfb++ {
		if sf.L[sfb] != 0 {
			t.Errorf("L[%d] = %d, want 0", sfb, sf.L[sfb])
		}
	}
	for sfb := 11; sfb < 16; sfb++ {
		if sf.L[sfb] != 9 {
			t.Errorf("L[%d] = %d, want copied 9", sfb, sf.L[sfb])
		}
	}
	// Copied bands consume no bits: 5 bands in group 1 at slen1=4,
	// 5 bands in group 3 at slen2=3.
	if got := r.BitsRead(); got != 5*4+5*3 {
		t.Errorf("consumed %d bits, want %d", got, 5*4+5*3)
	}
}

func TestDecodeScaleFactorsPureShort(t *testing.T) {
	g := &frame.GranuleInfo{
		ScalefacCompress: 15, // slen1=4, slen2=3
		WindowSwitching:  true,
		BlockType:        2,
	}
	var scfsi [4]bool
	var sf ScaleFactors
	r := onesReader()
	DecodeScaleFactors(r, g, &scfsi, 0, &sf, &sf)

	for sfb := 0; sfb < 6; sfb++ {
		for w := 0; w < 3; w++ {
			if sf.S[sfb][w] != 15 {
				t.Errorf("S[%d][%d] = %d, want 15", sfb, w, sf.S[sfb][w])
			}
		}
	}
	for sfb := 6; sfb < 12; sfb++ {
		for w := 0; w < 3; w++ {
			if sf.S[sfb][w] != 7 {
				t.Errorf("S[%d][%d] = %d, want 7", sfb, w, sf.S[sfb][w])
			}
		}
	}
	if got := r.BitsRead(); got != 18*4+18*3 {
		t.Errorf("consumed %d bits, want %d", got, 18*4+18*3)
	}
	if sf.IllegalS[3][1] != 7 {
		t.Errorf("IllegalS = %d, want 7", sf.IllegalS[3][1])
	}
}

func TestDecodeScaleFactorsMixed(t *testing.T) {
	g := &frame.GranuleInfo{
		ScalefacCompress: 15,
		WindowSwitching:  true,
		BlockType:        2,
		MixedBlock:       true,
	}
	var scfsi [4]bool
	var sf ScaleFactors
	r := onesReader()
	DecodeScaleFactors(r, g, &scfsi, 0, &sf, &sf)

	// 8 long bands + short bands 3-5 at slen1, short 6-11 at slen2.
	if got := r.BitsRead(); got != (8+9)*4+18*3 {
		t.Errorf("consumed %d bits, want %d", got, (8+9)*4+18*3)
	}
	if sf.L[7] != 15 {
		t.Errorf("L[7] = %d, want 15", sf.L[7])
	}
	if sf.S[3][0] != 15 || sf.S[6][0] != 7 {
		t.Errorf("short factors = %d/%d, want 15/7", sf.S[3][0], sf.S[6][0])
	}
}

func TestDecodeScaleFactorsLSFLong(t *testing.T) {
	// scalefac_compress 80: 80>>4=5 -> slen 1,0; 80&15 -> slen2=0,
	// slen3=0. blockNumber 0, long layout 6/5/5/5 bands.
	g := &frame.GranuleInfo{ScalefacCompress: 80}
	var sf ScaleFactors
	r := onesReader()
	preflag := DecodeScaleFactorsLSF(r, g, false, &sf)
	if preflag {
		t.Error("preflag implied for blockNumber 0")
	}
	for sfb := 0; sfb < 6; sfb++ {
		if sf.L[sfb] != 1 {
			t.Errorf("L[%d] = %d, want 1", sfb, sf.L[sfb])
		}
		if sf.IllegalL[sfb] != 1 {
			t.Errorf("IllegalL[%d] = %d, want 1", sfb, sf.IllegalL[sfb])
		}
	}
	for sfb := 6; sfb < 21; sfb++ {
		if sf.L[sfb] != 0 {
			t.Errorf("L[%d] = %d, want 0", sfb, sf.L[sfb])
		}
		if sf.IllegalL[sfb] != 0 {
			t.Errorf("IllegalL[%d] = %d, want 0", sfb, sf.IllegalL[sfb])
		}
	}
	if got := r.BitsRead(); got != 6 {
		t.Errorf("consumed %d bits, want 6", got)
	}
}

func TestDecodeScaleFactorsLSFPreflag(t *testing.T) {
	// scalefac_compress >= 500 implies preflag.
	g := &frame.GranuleInfo{ScalefacCompress: 500}
	var sf ScaleFactors
	if preflag := DecodeScaleFactorsLSF(onesReader(), g, false, &sf); !preflag {
		t.Error("preflag not implied for blockNumber 2")
	}
}
