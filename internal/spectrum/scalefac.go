package spectrum

import (
	"github.com/llehouerou/go-mp3dec/internal/bits"
	"github.com/llehouerou/go-mp3dec/internal/frame"
)

// ScaleFactors holds one channel's decoded scale factors for one
// granule. Illegal* mirror the band layout with each field's all-ones
// value; an intensity position equal to it signals "no intensity" for
// that band (always 7 for MPEG-1, width-dependent for LSF).
type ScaleFactors struct {
	L        [23]int    // long bands
	S        [13][3]int // short bands, [band][window]
	IllegalL [23]int
	IllegalS [13][3]int
}

// slen bit widths for MPEG-1, indexed by scalefac_compress
// (ISO/IEC 11172-3 2.4.2.7).
var (
	slen1Tab = [16]int{0, 0, 0, 0, 3, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4}
	slen2Tab = [16]int{0, 1, 2, 3, 0, 1, 2, 3, 1, 2, 3, 1, 2, 3, 2, 3}
)

// DecodeScaleFactors reads the MPEG-1 scale factors for one granule
// and channel. prev is the same channel's granule-0 factors, used
// when scfsi flags a band group as shared; it is ignored for
// granule 0.
func DecodeScaleFactors(r *bits.Reader, g *frame.GranuleInfo, scfsi *[4]bool, gr int, prev, out *ScaleFactors) {
	slen1 := slen1Tab[g.ScalefacCompress&15]
	slen2 := slen2Tab[g.ScalefacCompress&15]

	*out = ScaleFactors{}
	for i := range out.IllegalL {
		out.IllegalL[i] = 7
	}
	for i := range out.IllegalS {
		for w := range out.IllegalS[i] {
			out.IllegalS[i][w] = 7
		}
	}

	if g.ShortBlocks() {
		if g.MixedBlock {
			// Two long subbands worth of long bands, then short
			// bands from band 3 up.
			for sfb := 0; sfb < 8; sfb++ {
				out.L[sfb] = int(r.GetBits(uint(slen1)))
			}
			for sfb := 3; sfb < 6; sfb++ {
				for w := 0; w < 3; w++ {
					out.S[sfb][w] = int(r.GetBits(uint(slen1)))
				}
			}
		} else {
			for sfb := 0; sfb < 6; sfb++ {
				for w := 0; w < 3; w++ {
					out.S[sfb][w] = int(r.GetBits(uint(slen1)))
				}
			}
		}
		for sfb := 6; sfb < 12; sfb++ {
			for w := 0; w < 3; w++ {
				out.S[sfb][w] = int(r.GetBits(uint(slen2)))
			}
		}
		// Band 12 has no scale factor.
		return
	}

	// Long blocks. scfsi groups 0-3 cover bands 0-5, 6-10, 11-15,
	// 16-20; a set flag on granule 1 copies granule 0's factors.
	groups := [5]int{0, 6, 11, 16, 21}
	for grp := 0; grp < 4; grp++ {
		slen := slen1
		if grp >= 2 {
			slen = slen2
		}
		if gr == 1 && scfsi[grp] {
			for sfb := groups[grp]; sfb < groups[grp+1]; sfb++ {
				out.L[sfb] = prev.L[sfb]
			}
			continue
		}
		for sfb := groups[grp]; sfb < groups[grp+1]; sfb++ {
			out.L[sfb] = int(r.GetBits(uint(slen)))
		}
	}
	// Band 21 has no scale factor.
}

// LSF scale factor field counts, indexed [blockNumber][blockClass]
// with blockClass 0=long, 1=short, 2=mixed
// (ISO/IEC 13818-3 2.4.3.2).
var lsfBandCounts = [6][3][4]int{
	{{6, 5, 5, 5}, {9, 9, 9, 9}, {6, 9, 9, 9}},
	{{6, 5, 7, 3}, {9, 9, 12, 6}, {6, 9, 12, 6}},
	{{11, 10, 0, 0}, {18, 18, 0, 0}, {15, 18, 0, 0}},
	{{7, 7, 7, 0}, {12, 12, 12, 0}, {6, 15, 12, 0}},
	{{6, 6, 6, 3}, {12, 9, 9, 6}, {6, 12, 9, 6}},
	{{8, 8, 5, 0}, {15, 12, 9, 0}, {6, 18, 9, 0}},
}

// DecodeScaleFactorsLSF reads the MPEG-2/2.5 scale factors for one
// granule and channel. intensity must be true for the right channel
// of an intensity-stereo frame, which uses a different
// scalefac_compress partitioning. It reports whether preflag is
// implied for this granule.
func DecodeScaleFactorsLSF(r *bits.Reader, g *frame.GranuleInfo, intensity bool, out *ScaleFactors) (preflag bool) {
	sfc := g.ScalefacCompress
	var slen [4]int
	var blockNumber int

	*out = ScaleFactors{}
	if !intensity {
		switch {
		case sfc < 400:
			slen[0] = (sfc >> 4) / 5
			slen[1] = (sfc >> 4) % 5
			slen[2] = sfc >> 2 & 3
			slen[3] = sfc & 3
			blockNumber = 0
		case sfc < 500:
			sfc -= 400
			slen[0] = (sfc >> 2) / 5
			slen[1] = (sfc >> 2) % 5
			slen[2] = sfc & 3
			blockNumber = 1
		default:
			sfc -= 500
			slen[0] = sfc / 3
			slen[1] = sfc % 3
			blockNumber = 2
			preflag = true
		}
	} else {
		sfc >>= 1
		switch {
		case sfc < 180:
			slen[0] = sfc / 36
			slen[1] = (sfc % 36) / 6
			slen[2] = sfc % 6
			blockNumber = 3
		case sfc < 244:
			sfc -= 180
			slen[0] = sfc >> 4 & 3
			slen[1] = sfc >> 2 & 3
			slen[2] = sfc & 3
			blockNumber = 4
		default:
			sfc -= 244
			slen[0] = sfc / 3
			slen[1] = sfc % 3
			blockNumber = 5
		}
	}

	blockClass := 0
	switch {
	case g.PureShortBlocks():
		blockClass = 1
	case g.ShortBlocks():
		blockClass = 2
	}
	counts := &lsfBandCounts[blockNumber][blockClass]

	// Read the flat scale factor sequence, tracking each field's
	// all-ones value for intensity-position legality.
	var flat, illegal [40]int
	n := 0
	for grp := 0; grp < 4; grp++ {
		for i := 0; i < counts[grp] && n < len(flat); i++ {
			if slen[grp] > 0 {
				flat[n] = int(r.GetBits(uint(slen[grp])))
			}
			illegal[n] = 1<<uint(slen[grp]) - 1
			n++
		}
	}

	// Distribute into the band layout.
	switch blockClass {
	case 0:
		for sfb := 0; sfb < 21 && sfb < n; sfb++ {
			out.L[sfb] = flat[sfb]
			out.IllegalL[sfb] = illegal[sfb]
		}
	case 1:
		i := 0
		for sfb := 0; sfb < 12 && i < n; sfb++ {
			for w := 0; w < 3 && i < n; w++ {
				out.S[sfb][w] = flat[i]
				out.IllegalS[sfb][w] = illegal[i]
				i++
			}
		}
	case 2:
		i := 0
		for sfb := 0; sfb < 6 && i < n; sfb++ {
			out.L[sfb] = flat[i]
			out.IllegalL[sfb] = illegal[i]
			i++
		}
		for sfb := 3; sfb < 12 && i < n; sfb++ {
			for w := 0; w < 3 && i < n; w++ {
				out.S[sfb][w] = flat[i]
				out.IllegalS[sfb][w] = illegal[i]
				i++
			}
		}
	}
	return preflag
}
