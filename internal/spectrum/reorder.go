package spectrum

import (
	"github.com/llehouerou/go-mp3dec/internal/frame"
	"github.com/llehouerou/go-mp3dec/internal/tables"
)

// Reorder rearranges short-block spectral lines from the transmitted
// band-then-window order into the window-interleaved order the hybrid
// filterbank consumes: after the pass, line 18*sb + 3*m + w is
// coefficient m of window w within subband sb. Long blocks and the
// long lower subbands of a mixed block are untouched.
func Reorder(h *frame.Header, g *frame.GranuleInfo, xr *[SpectrumLen]float32) {
	if !g.ShortBlocks() {
		return
	}

	family := tables.RateFamily(uint8(h.Version), h.SampleRateIdx)
	sfbShort := &tables.SfbShort[family]

	start := 0
	if g.MixedBlock {
		start = 3
	}

	var tmp [SpectrumLen]float32
	base := sfbShort[start] * 3
	for b := start; b+1 < len(sfbShort); b++ {
		width := sfbShort[b+1] - sfbShort[b]
		src := sfbShort[b] * 3
		for win := 0; win < 3; win++ {
			for k := 0; k < width; k++ {
				tmp[sfbShort[b]*3+k*3+win] = xr[src+win*width+k]
			}
		}
	}
	copy(xr[base:], tmp[base:])
}
