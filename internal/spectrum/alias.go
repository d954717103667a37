package spectrum

import (
	"math"

	"github.com/llehouerou/go-mp3dec/internal/frame"
)

// Butterfly coefficients from ISO/IEC 11172-3 Table B.9.
var aliasCs, aliasCa [8]float32

func init() {
	c := [8]float64{-0.6, -0.535, -0.33, -0.185, -0.095, -0.041, -0.0142, -0.0037}
	for i, ci := range c {
		den := math.Sqrt(1 + ci*ci)
		aliasCs[i] = float32(1 / den)
		aliasCa[i] = float32(ci / den)
	}
}

// ReduceAlias applies the anti-alias butterflies across subband
// boundaries (ISO/IEC 11172-3 2.4.3.4.10.1). Pure short blocks have
// no long subbands and get none; a mixed block gets only the boundary
// between its two long subbands.
func ReduceAlias(g *frame.GranuleInfo, xr *[SpectrumLen]float32) {
	if g.PureShortBlocks() {
		return
	}
	bounds := 31
	if g.ShortBlocks() {
		bounds = 1
	}
	for sb := 0; sb < bounds; sb++ {
		base := 18*sb + 17
		for i := 0; i < 8; i++ {
			lo := xr[base-i]
			hi := xr[base+1+i]
			xr[base-i] = lo*aliasCs[i] - hi*aliasCa[i]
			xr[base+1+i] = hi*aliasCs[i] + lo*aliasCa[i]
		}
	}
}
