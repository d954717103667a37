package mp3dec

import (
	"github.com/llehouerou/go-mp3dec/internal/bits"
	"github.com/llehouerou/go-mp3dec/internal/reservoir"
	"github.com/llehouerou/go-mp3dec/internal/spectrum"
	"github.com/llehouerou/go-mp3dec/internal/synth"
)

// maxFrameSize is the largest possible Layer III frame:
// 320 kbit/s at 32 kHz plus the padding byte.
const maxFrameSize = 144000*320/32000 + 1

// Decoder decodes a Layer III stream frame by frame. It holds all
// cross-frame state: the bit reservoir, per-channel filterbank
// overlap and the polyphase history. The zero value is not ready for
// use; call NewDecoder.
//
// A Decoder must not be used from multiple goroutines concurrently.
type Decoder struct {
	res  reservoir.Reservoir
	side bits.Reader
	main bits.Reader

	// scratch holds the reservoir look-back followed by the current
	// frame's main data, so one contiguous read covers both.
	scratch [reservoir.Capacity + maxFrameSize]byte

	is      [spectrum.SpectrumLen]int32
	xr      [2][spectrum.SpectrumLen]float32
	sf      [2][2]spectrum.ScaleFactors
	count   [2]int
	overlap [2][32][18]float32
	ts      [18][32]float32
	synth   [2]synth.Filter

	fbuf [MaxSamplesPerFrame]float32
}

// NewDecoder returns a decoder ready for the first frame. This is
// the only allocation the package makes; Decode itself allocates
// nothing.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Reset returns the decoder to its initial state, dropping the bit
// reservoir and all filterbank history. Use it when the input stream
// position jumps, as after a seek.
func (d *Decoder) Reset() {
	d.res.Reset()
	d.overlap = [2][32][18]float32{}
	d.synth[0].Reset()
	d.synth[1].Reset()
}
