package spectrum

import (
	"math"

	"github.com/llehouerou/go-mp3dec/internal/frame"
	"github.com/llehouerou/go-mp3dec/internal/tables"
)

// SpectrumLen is the number of frequency lines per granule per
// channel.
const SpectrumLen = 576

// pow43 caches |x|^(4/3) for quantized magnitudes that fit a Huffman
// codeword without linbits. Larger values fall back to math.Pow.
var pow43 [8207]float64

func init() {
	for i := range pow43 {
		pow43[i] = math.Pow(float64(i), 4.0/3.0)
	}
}

func requantPow(x int32) float64 {
	neg := false
	if x < 0 {
		neg = true
		x = -x
	}
	var p float64
	if x < int32(len(pow43)) {
		p = pow43[x]
	} else {
		p = math.Pow(float64(x), 4.0/3.0)
	}
	if neg {
		return -p
	}
	return p
}

// Dequantize converts the entropy-decoded integer spectrum is into
// scaled spectral values xr, per ISO/IEC 11172-3 2.4.3.4.7.1:
//
//	xr = sign(is) * |is|^(4/3) * 2^(gain/4) * 2^(-step*(scf + pretab))
//
// where gain folds global_gain, the fixed 210 offset and, inside
// short windows, 8*subblock_gain, and step is 0.5 or 1 depending on
// scalefac_scale. The pretab term applies only when preflag is set.
// count is the number of lines the entropy decoder produced; lines at
// and above it become zero.
func Dequantize(h *frame.Header, g *frame.GranuleInfo, sf *ScaleFactors, preflag bool, is *[SpectrumLen]int32, count int, xr *[SpectrumLen]float32) {
	family := tables.RateFamily(uint8(h.Version), h.SampleRateIdx)
	sfbLong := &tables.SfbLong[family]
	sfbShort := &tables.SfbShort[family]

	step := 0.5
	if g.ScalefacScale != 0 {
		step = 1.0
	}
	baseGain := float64(g.GlobalGain) - 210

	// Long-band region: the whole granule for long blocks, the first
	// two subbands for mixed blocks, nothing for pure short blocks.
	longEnd := count
	shortStart := 0
	if g.ShortBlocks() {
		if g.MixedBlock {
			if longEnd > 36 {
				longEnd = 36
			}
			shortStart = 3
		} else {
			longEnd = 0
		}
	}

	gainLong := math.Exp2(baseGain / 4)
	band := 0
	for i := 0; i < longEnd; {
		for band+1 < len(sfbLong) && sfbLong[band+1] <= i {
			band++
		}
		scf := sf.L[band]
		if preflag && band < len(tables.Pretab) {
			scf += tables.Pretab[band]
		}
		mult := gainLong * math.Exp2(-step*float64(scf))
		end := longEnd
		if band+1 < len(sfbLong) && sfbLong[band+1] < end {
			end = sfbLong[band+1]
		}
		for ; i < end; i++ {
			xr[i] = float32(requantPow(is[i]) * mult)
		}
	}

	if !g.ShortBlocks() {
		for i := count; i < SpectrumLen; i++ {
			xr[i] = 0
		}
		return
	}

	// Short-band region: each band is three window-major runs of
	// width lines.
	i := sfbShort[shortStart] * 3
	for k := count; k < i; k++ {
		xr[k] = 0
	}
	for b := shortStart; b+1 < len(sfbShort) && i < count; b++ {
		width := sfbShort[b+1] - sfbShort[b]
		for win := 0; win < 3; win++ {
			gain := baseGain - 8*float64(g.SubblockGain[win])
			mult := math.Exp2(gain/4) * math.Exp2(-step*float64(sf.S[b][win]))
			for k := 0; k < width && i < count; k++ {
				xr[i] = float32(requantPow(is[i]) * mult)
				i++
			}
		}
	}
	for ; i < SpectrumLen; i++ {
		xr[i] = 0
	}
}
