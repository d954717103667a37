package mp3dec

import (
	"github.com/llehouerou/go-mp3dec/internal/frame"
	"github.com/llehouerou/go-mp3dec/internal/huffman"
	"github.com/llehouerou/go-mp3dec/internal/output"
	"github.com/llehouerou/go-mp3dec/internal/spectrum"
	"github.com/llehouerou/go-mp3dec/internal/tables"
)

// Decode locates and decodes the next frame in src, writing
// interleaved PCM to pcm and reporting how many bytes of src the
// caller should discard.
//
// ok is false exactly when consumed is zero: src holds no complete
// decodable frame and the caller must append more data before
// retrying. When a frame spans src but its reservoir look-back is
// unsatisfiable (typical right after joining a stream mid-way), the
// frame is skipped: consumed covers its byte span, info is populated
// and info.SamplesProduced is zero. Garbage before a located frame is
// consumed together with the frame.
//
// pcm must hold at least MaxSamplesPerFrame values; a shorter buffer
// is a programming error and panics.
func (d *Decoder) Decode(src []byte, pcm []float32) (consumed int, info FrameInfo, ok bool) {
	if len(pcm) < MaxSamplesPerFrame {
		panic("mp3dec: pcm buffer shorter than MaxSamplesPerFrame")
	}

	offset, h, found := frame.Sync(src)
	if !found {
		return 0, FrameInfo{}, false
	}
	end := offset + h.Size()
	if end > len(src) {
		return 0, FrameInfo{}, false
	}

	info = FrameInfo{
		Channels:   h.Channels(),
		SampleRate: int(h.SampleRate()),
		Bitrate:    int(h.Bitrate()),
	}

	crc := 0
	if h.Protection {
		crc = 2
	}
	d.side.Reset(src[offset+frame.HeaderSize+crc : offset+h.MainDataOffset()])
	si, siOK := frame.ParseSideInfo(h, &d.side)

	mainData := src[offset+h.MainDataOffset() : end]
	if !siOK || !d.res.Restore(si.MainDataBegin, d.scratch[:si.MainDataBegin]) {
		// Undecodable frame: advance past it so the reservoir keeps
		// accumulating for the frames that follow.
		d.res.Push(mainData)
		return end, info, true
	}
	n := si.MainDataBegin + copy(d.scratch[si.MainDataBegin:], mainData)
	d.main.Reset(d.scratch[:n])
	d.res.Push(mainData)

	channels := h.Channels()
	for gr := 0; gr < h.Granules(); gr++ {
		for ch := 0; ch < channels; ch++ {
			d.decodeGranule(&h, &si, gr, ch)
		}
		if channels == 2 {
			d.decodeStereo(&h, &si, gr)
		}
		for ch := 0; ch < channels; ch++ {
			d.reconstruct(&h, &si.Granules[gr][ch], gr, ch, channels, pcm)
		}
	}

	info.SamplesProduced = h.Samples() * channels
	return end, info, true
}

// decodeGranule runs scale factor and entropy decoding plus
// requantization for one granule of one channel, leaving the scaled
// spectrum in d.xr[ch] and its nonzero extent in d.count[ch].
func (d *Decoder) decodeGranule(h *frame.Header, si *frame.SideInfo, gr, ch int) {
	g := &si.Granules[gr][ch]
	start := d.main.BitsRead()
	budget := start + g.Part23Length

	preflag := g.Preflag
	if h.Version.LSF() {
		intensity := ch == 1 && h.IntensityStereo()
		preflag = spectrum.DecodeScaleFactorsLSF(&d.main, g, intensity, &d.sf[gr][ch])
	} else {
		spectrum.DecodeScaleFactors(&d.main, g, &si.Scfsi[ch], gr, &d.sf[0][ch], &d.sf[gr][ch])
	}

	region1, region2 := regionBounds(h, g)
	d.count[ch] = huffman.Decode(&d.main, g.BigValues, g.TableSelect,
		g.Count1Table, region1, region2, budget, &d.is)
	d.main.SetPosition(budget)

	spectrum.Dequantize(h, g, &d.sf[gr][ch], preflag, &d.is, d.count[ch], &d.xr[ch])
}

// regionBounds converts the side-info region counts into frequency
// line boundaries for the big-values table switch. Window-switching
// granules have fixed regions ending at line 36.
func regionBounds(h *frame.Header, g *frame.GranuleInfo) (region1, region2 int) {
	if g.WindowSwitching && g.PureShortBlocks() {
		return 36, spectrum.SpectrumLen
	}
	sfbLong := &tables.SfbLong[tables.RateFamily(uint8(h.Version), h.SampleRateIdx)]
	r0 := g.Region0Count + 1
	if r0 > len(sfbLong)-1 {
		r0 = len(sfbLong) - 1
	}
	r1 := r0 + g.Region1Count + 1
	if r1 > len(sfbLong)-1 {
		r1 = len(sfbLong) - 1
	}
	return sfbLong[r0], sfbLong[r1]
}

// decodeStereo undoes joint-stereo coding for one granule. Mid/side
// runs across the full spectrum; intensity rescaling starts at the
// band boundary covering the right channel's nonzero extent, and
// bands whose position is the illegal marker keep the mid/side
// result. When both modes are active the intensity pass compensates
// for the mid/side halving so the weights apply to the mid signal.
func (d *Decoder) decodeStereo(h *frame.Header, si *frame.SideInfo, gr int) {
	ms := h.MSStereo()
	if ms {
		spectrum.DecodeMS(&d.xr[0], &d.xr[1], spectrum.SpectrumLen)
	}
	if h.IntensityStereo() {
		g := &si.Granules[gr][1]
		bound := spectrum.IntensityBound(h, g, d.count[1])
		spectrum.DecodeIntensity(h, g, &d.sf[gr][1], &d.xr[0], &d.xr[1], bound, ms)
	}
}

// reconstruct runs one channel of one granule through reordering,
// alias reduction, the hybrid filterbank and polyphase synthesis,
// writing 576 interleaved samples into pcm.
func (d *Decoder) reconstruct(h *frame.Header, g *frame.GranuleInfo, gr, ch, channels int, pcm []float32) {
	spectrum.Reorder(h, g, &d.xr[ch])
	spectrum.ReduceAlias(g, &d.xr[ch])
	spectrum.Hybrid(g, &d.xr[ch], &d.overlap[ch], &d.ts)
	for k := 0; k < 18; k++ {
		base := (gr*576 + k*32) * channels
		d.synth[ch].Process(&d.ts[k], pcm[base+ch:], channels)
	}
}

// DecodeInt16 is Decode with 16-bit output: samples are scaled by
// 32768 and clamped. pcm must hold at least MaxSamplesPerFrame
// values.
func (d *Decoder) DecodeInt16(src []byte, pcm []int16) (consumed int, info FrameInfo, ok bool) {
	if len(pcm) < MaxSamplesPerFrame {
		panic("mp3dec: pcm buffer shorter than MaxSamplesPerFrame")
	}
	consumed, info, ok = d.Decode(src, d.fbuf[:])
	output.Int16(d.fbuf[:info.SamplesProduced], pcm)
	return consumed, info, ok
}
