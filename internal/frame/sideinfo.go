package frame

import "github.com/llehouerou/go-mp3dec/internal/bits"

// GranuleInfo is the per-granule, per-channel portion of the side
// information. All fields are fixed-width in the bitstream; field
// widths follow ISO/IEC 11172-3 2.4.1.7 (and 13818-3 2.4.1.7 for the
// LSF differences).
type GranuleInfo struct {
	Part23Length     int  // 12 bits: main-data bits for scalefactors + Huffman data
	BigValues        int  // 9 bits: pair count of the big-values region
	GlobalGain       int  // 8 bits
	ScalefacCompress int  // 4 bits MPEG-1, 9 bits LSF
	WindowSwitching  bool // 1 bit
	BlockType        int  // 2 bits, meaningful when WindowSwitching
	MixedBlock       bool // 1 bit
	TableSelect      [3]int
	SubblockGain     [3]int
	Region0Count     int
	Region1Count     int
	Preflag          bool // always from bitstream in MPEG-1, derived in LSF
	ScalefacScale    int  // 1 bit
	Count1Table      int  // 1 bit
}

// ShortBlocks reports whether the granule uses short windows.
func (g *GranuleInfo) ShortBlocks() bool {
	return g.WindowSwitching && g.BlockType == 2
}

// PureShortBlocks reports short windows with no long lower subbands.
func (g *GranuleInfo) PureShortBlocks() bool {
	return g.ShortBlocks() && !g.MixedBlock
}

// SideInfo is the decoded side information of one frame.
// Granules is indexed [granule][channel]; LSF frames use only
// granule 0.
type SideInfo struct {
	MainDataBegin int // reservoir look-back distance in bytes
	Scfsi         [2][4]bool
	Granules      [2][2]GranuleInfo
}

// MaxBigValues bounds big_values: 2*big_values frequency lines must
// fit in the 576-line granule with room for the count1 region.
const MaxBigValues = 288

// ParseSideInfo decodes the side information for h from r. It reports
// ok=false when a field combination is not decodable (big_values out
// of range, reserved block type); such frames are skipped by the
// caller while their main data still enters the reservoir.
func ParseSideInfo(h Header, r *bits.Reader) (SideInfo, bool) {
	var si SideInfo
	channels := h.Channels()
	lsf := h.Version.LSF()

	if lsf {
		si.MainDataBegin = int(r.GetBits(8))
		r.SkipBits(uint(channels)) // private_bits
	} else {
		si.MainDataBegin = int(r.GetBits(9))
		if channels == 1 {
			r.SkipBits(5)
		} else {
			r.SkipBits(3)
		}
		for ch := 0; ch < channels; ch++ {
			for band := 0; band < 4; band++ {
				si.Scfsi[ch][band] = r.Get1Bit() != 0
			}
		}
	}

	for gr := 0; gr < h.Granules(); gr++ {
		for ch := 0; ch < channels; ch++ {
			g := &si.Granules[gr][ch]
			g.Part23Length = int(r.GetBits(12))
			g.BigValues = int(r.GetBits(9))
			if g.BigValues > MaxBigValues {
				return si, false
			}
			g.GlobalGain = int(r.GetBits(8))
			if lsf {
				g.ScalefacCompress = int(r.GetBits(9))
			} else {
				g.ScalefacCompress = int(r.GetBits(4))
			}
			g.WindowSwitching = r.Get1Bit() != 0

			if g.WindowSwitching {
				g.BlockType = int(r.GetBits(2))
				if g.BlockType == 0 {
					// Reserved: window switching with the normal
					// window makes the region split undefined.
					return si, false
				}
				g.MixedBlock = r.Get1Bit() != 0
				for i := 0; i < 2; i++ {
					g.TableSelect[i] = int(r.GetBits(5))
				}
				for i := 0; i < 3; i++ {
					g.SubblockGain[i] = int(r.GetBits(3))
				}
				// Implicit region split (2.4.2.7): the whole
				// big-values range falls in regions 0 and 1.
				if g.PureShortBlocks() {
					g.Region0Count = 8
				} else {
					g.Region0Count = 7
				}
				g.Region1Count = 20 - g.Region0Count
			} else {
				for i := 0; i < 3; i++ {
					g.TableSelect[i] = int(r.GetBits(5))
				}
				g.Region0Count = int(r.GetBits(4))
				g.Region1Count = int(r.GetBits(3))
			}

			if !lsf {
				g.Preflag = r.Get1Bit() != 0
			}
			g.ScalefacScale = int(r.Get1Bit())
			g.Count1Table = int(r.Get1Bit())
		}
	}
	return si, !r.Overrun()
}
