package spectrum

import (
	"math"

	"github.com/llehouerou/go-mp3dec/internal/frame"
	"github.com/llehouerou/go-mp3dec/internal/tables"
)

// isRatio holds the MPEG-1 intensity stereo left/right weights for
// is_pos 0..6: ratio = tan(is_pos * pi/12), left weight
// ratio/(1+ratio), right weight 1/(1+ratio). is_pos 7 marks "no
// intensity" and has no entry.
var isRatioL, isRatioR [7]float32

// lsfScale holds the LSF intensity multipliers, indexed by
// scalefac_compress bit 0 and then by the scale step (is_pos+1)/2.
// The step base is 2^(-1/4) when the bit is clear and 2^(-1/2) when
// set (ISO/IEC 13818-3 2.4.3.2, intensity_scale).
var lsfScale [2][32]float32

func init() {
	for p := 0; p < 7; p++ {
		ratio := math.Tan(float64(p) * math.Pi / 12)
		isRatioL[p] = float32(ratio / (1 + ratio))
		isRatioR[p] = float32(1 / (1 + ratio))
	}
	for n := 0; n < 32; n++ {
		lsfScale[0][n] = float32(math.Pow(math.Exp2(-0.25), float64(n)))
		lsfScale[1][n] = float32(math.Pow(math.Exp2(-0.5), float64(n)))
	}
}

// IntensityBound returns the first line of the intensity stereo
// region: the smallest scale factor band boundary at or above the
// right channel's nonzero extent rzero.
func IntensityBound(h *frame.Header, g *frame.GranuleInfo, rzero int) int {
	family := tables.RateFamily(uint8(h.Version), h.SampleRateIdx)
	if g.ShortBlocks() && !(g.MixedBlock && rzero <= 36) {
		sfbShort := &tables.SfbShort[family]
		for _, b := range sfbShort {
			if b*3 >= rzero {
				return b * 3
			}
		}
		return SpectrumLen
	}
	sfbLong := &tables.SfbLong[family]
	for _, b := range sfbLong {
		if b >= rzero {
			return b
		}
	}
	return SpectrumLen
}

// DecodeMS undoes mid/side coding in place over the first count lines
// of both channels (ISO/IEC 11172-3 2.4.3.4.9.2).
func DecodeMS(left, right *[SpectrumLen]float32, count int) {
	const invSqrt2 = float32(0.7071067811865476)
	for i := 0; i < count; i++ {
		m, s := left[i], right[i]
		left[i] = (m + s) * invSqrt2
		right[i] = (m - s) * invSqrt2
	}
}

// DecodeIntensity applies intensity stereo to the zero part of the
// right channel, using the right channel's scale factors as intensity
// positions. bound is the first line of the intensity region, rounded
// down by the caller to a scale factor band boundary from the right
// channel's nonzero extent. Bands whose position carries the illegal
// marker keep whatever the earlier mid/side pass (or plain copy)
// produced.
//
// ms reports that a mid/side pass already ran over these lines. The
// intensity weights then act on sqrt(2)*M, not M/sqrt(2), so the
// source value is doubled to undo the halving (ISO/IEC 11172-3
// 2.4.3.4.9.3: intensity in ms_stereo scales the mid signal).
func DecodeIntensity(h *frame.Header, g *frame.GranuleInfo, sfRight *ScaleFactors, left, right *[SpectrumLen]float32, bound int, ms bool) {
	family := tables.RateFamily(uint8(h.Version), h.SampleRateIdx)
	lsf := h.Version.LSF()
	ioIdx := g.ScalefacCompress & 1
	msGain := float32(1)
	if ms {
		msGain = 2
	}

	if g.ShortBlocks() {
		sfbShort := &tables.SfbShort[family]
		start := 0
		if g.MixedBlock {
			// The two long subbands of a mixed block sit below any
			// intensity bound and are never rescaled.
			start = 3
			if bound < 36 {
				bound = 36
			}
		}
		for b := start; b+1 < len(sfbShort); b++ {
			if sfbShort[b]*3 < bound {
				continue
			}
			width := sfbShort[b+1] - sfbShort[b]
			for win := 0; win < 3; win++ {
				pos := sfRight.S[b][win]
				if pos == sfRight.IllegalS[b][win] {
					continue
				}
				base := sfbShort[b]*3 + win*width
				for k := 0; k < width; k++ {
					applyIntensity(lsf, ioIdx, pos, msGain, left, right, base+k)
				}
			}
		}
		return
	}

	intensityLong(family, sfRight, lsf, ioIdx, msGain, left, right, bound, SpectrumLen)
}

func intensityLong(family int, sfRight *ScaleFactors, lsf bool, ioIdx int, msGain float32, left, right *[SpectrumLen]float32, bound, end int) {
	sfbLong := &tables.SfbLong[family]
	for b := 0; b+1 < len(sfbLong); b++ {
		if sfbLong[b] < bound {
			continue
		}
		pos := sfRight.L[b]
		if pos == sfRight.IllegalL[b] {
			continue
		}
		hi := sfbLong[b+1]
		if hi > end {
			hi = end
		}
		for i := sfbLong[b]; i < hi; i++ {
			applyIntensity(lsf, ioIdx, pos, msGain, left, right, i)
		}
		if hi == end {
			return
		}
	}
}

func applyIntensity(lsf bool, ioIdx, pos int, msGain float32, left, right *[SpectrumLen]float32, i int) {
	sig := left[i] * msGain
	if lsf {
		if pos == 0 {
			left[i], right[i] = sig, sig
			return
		}
		idx := (pos + 1) / 2
		if idx >= len(lsfScale[ioIdx]) {
			return
		}
		k := lsfScale[ioIdx][idx]
		if pos&1 != 0 {
			left[i], right[i] = k*sig, sig
		} else {
			left[i], right[i] = sig, k*sig
		}
		return
	}
	if pos >= len(isRatioL) {
		return
	}
	left[i] = sig * isRatioL[pos]
	right[i] = sig * isRatioR[pos]
}
