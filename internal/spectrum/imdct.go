package spectrum

import (
	"math"

	"github.com/llehouerou/go-mp3dec/internal/frame"
)

// Inverse MDCT basis and block windows, ISO/IEC 11172-3 2.4.3.4.10.2
// and 2.4.3.4.10.3.
var (
	cos36 [36][18]float32
	cos12 [12][6]float32
	// blockWindow[block_type] over 36 samples; short windows use
	// shortWindow over 12.
	blockWindow [4][36]float32
	shortWindow [12]float32
)

func init() {
	for i := 0; i < 36; i++ {
		for m := 0; m < 18; m++ {
			cos36[i][m] = float32(math.Cos(math.Pi / 72 * float64((2*i+1+18)*(2*m+1))))
		}
	}
	for i := 0; i < 12; i++ {
		for m := 0; m < 6; m++ {
			cos12[i][m] = float32(math.Cos(math.Pi / 24 * float64((2*i+1+6)*(2*m+1))))
		}
	}

	for i := 0; i < 36; i++ {
		blockWindow[0][i] = float32(math.Sin(math.Pi / 36 * (float64(i) + 0.5)))
	}
	for i := 0; i < 36; i++ {
		switch {
		case i < 18:
			blockWindow[1][i] = blockWindow[0][i]
		case i < 24:
			blockWindow[1][i] = 1
		case i < 30:
			blockWindow[1][i] = float32(math.Sin(math.Pi / 12 * (float64(i-18) + 0.5)))
		}
		switch {
		case i < 6:
		case i < 12:
			blockWindow[3][i] = float32(math.Sin(math.Pi / 12 * (float64(i-6) + 0.5)))
		case i < 18:
			blockWindow[3][i] = 1
		default:
			blockWindow[3][i] = blockWindow[0][i]
		}
	}
	for i := 0; i < 12; i++ {
		shortWindow[i] = float32(math.Sin(math.Pi / 12 * (float64(i) + 0.5)))
	}
}

func imdct36(in []float32, blockType int, out *[36]float32) {
	w := &blockWindow[blockType]
	for i := 0; i < 36; i++ {
		var sum float32
		for m := 0; m < 18; m++ {
			sum += in[m] * cos36[i][m]
		}
		out[i] = sum * w[i]
	}
}

func imdct12(in []float32, out *[36]float32) {
	for i := range out {
		out[i] = 0
	}
	// Three windows of six lines each, overlaid at 6-sample offsets
	// into the middle of the block.
	var x [6]float32
	for win := 0; win < 3; win++ {
		for m := 0; m < 6; m++ {
			x[m] = in[win+3*m]
		}
		for i := 0; i < 12; i++ {
			var sum float32
			for m := 0; m < 6; m++ {
				sum += x[m] * cos12[i][m]
			}
			out[6+6*win+i] += sum * shortWindow[i]
		}
	}
}

// Hybrid runs the inverse MDCT over all 32 subbands of one granule
// and channel, overlap-adds against the previous granule's tail and
// applies frequency inversion to odd samples of odd subbands. ts is
// filled sample-major so each row feeds one polyphase step.
func Hybrid(g *frame.GranuleInfo, xr *[SpectrumLen]float32, overlap *[32][18]float32, ts *[18][32]float32) {
	var raw [36]float32
	for sb := 0; sb < 32; sb++ {
		in := xr[18*sb : 18*sb+18]
		if g.ShortBlocks() && !(g.MixedBlock && sb < 2) {
			imdct12(in, &raw)
		} else {
			bt := int(g.BlockType)
			if g.MixedBlock && sb < 2 {
				bt = 0
			}
			imdct36(in, bt, &raw)
		}
		for k := 0; k < 18; k++ {
			v := raw[k] + overlap[sb][k]
			overlap[sb][k] = raw[k+18]
			if sb&1 != 0 && k&1 != 0 {
				v = -v
			}
			ts[k][sb] = v
		}
	}
}
