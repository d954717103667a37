package synth

import (
	"math"
	"testing"
)

func TestProcessSilence(t *testing.T) {
	var f Filter
	var in [32]float32
	out := make([]float32, 32)
	for i := 0; i < 40; i++ {
		f.Process(&in, out, 1)
		for j, v := range out {
			if v != 0 {
				t.Fatalf("pass %d sample %d = %v, want 0", i, j, v)
			}
		}
	}
}

func TestProcessBounded(t *testing.T) {
	// A full-scale constant subband signal must keep the output in a
	// sane range once the filter history fills.
	var f Filter
	var in [32]float32
	for i := range in {
		in[i] = 1
	}
	out := make([]float32, 32)
	var peak float64
	for i := 0; i < 64; i++ {
		f.Process(&in, out, 1)
		for _, v := range out {
			if av := math.Abs(float64(v)); av > peak {
				peak = av
			}
		}
	}
	if peak == 0 {
		t.Fatal("filter produced silence from a full-scale input")
	}
	if peak > 40 {
		t.Errorf("peak = %v, wildly out of range", peak)
	}
}

func TestProcessDeterministicAfterReset(t *testing.T) {
	var in [32]float32
	for i := range in {
		in[i] = float32(math.Sin(float64(i) * 0.37))
	}

	run := func(f *Filter) []float32 {
		var got []float32
		out := make([]float32, 32)
		for i := 0; i < 8; i++ {
			f.Process(&in, out, 1)
			got = append(got, out...)
		}
		return got
	}

	var f Filter
	first := run(&f)
	f.Reset()
	second := run(&f)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sample %d differs after reset: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestProcessStride(t *testing.T) {
	var in [32]float32
	in[0] = 1

	var mono, stereo Filter
	flat := make([]float32, 32)
	strided := make([]float32, 64)
	for i := 0; i < 4; i++ {
		mono.Process(&in, flat, 1)
		stereo.Process(&in, strided, 2)
		for j := 0; j < 32; j++ {
			if flat[j] != strided[2*j] {
				t.Fatalf("pass %d sample %d: stride 2 diverges", i, j)
			}
		}
	}
}

func TestWindowTable(t *testing.T) {
	// The duplicated table must mirror the base window so rolling
	// reads never wrap.
	for i := 0; i < 512; i++ {
		if d[i] != d[i+512] {
			t.Fatalf("d[%d] != d[%d]", i, i+512)
		}
	}
	// Peak of the prototype window is 37519/32768.
	var peak float32
	for _, v := range d {
		if v > peak {
			peak = v
		}
	}
	want := float32(37519.0 / 32768.0)
	if peak != want {
		t.Errorf("window peak = %v, want %v", peak, want)
	}
}
