// Package frame locates and parses MPEG Layer III frame headers and
// side information. It never consumes input on its own; callers pass
// byte windows and act on the reported offsets.
package frame

// Version is the MPEG version encoded in the frame header.
// ISO/IEC 11172-3 2.4.1.3 defines 2'b11 as MPEG-1; ISO/IEC 13818-3
// adds 2'b10 (MPEG-2 LSF) and the unofficial 2'b00 extension is
// MPEG-2.5.
type Version uint8

const (
	Version2_5      Version = 0
	VersionReserved Version = 1
	Version2        Version = 2
	Version1        Version = 3
)

// LSF reports whether the version uses the low-sampling-frequency
// profile (one granule per frame, halved frame size).
func (v Version) LSF() bool {
	return v != Version1
}

// Layer is the MPEG layer encoded in the frame header. Only Layer III
// is decodable here; the other layers invalidate the frame.
type Layer uint8

const (
	LayerReserved Layer = 0
	LayerIII      Layer = 1
	LayerII       Layer = 2
	LayerI        Layer = 3
)

// Mode is the channel mode.
type Mode uint8

const (
	ModeStereo Mode = iota
	ModeJointStereo
	ModeDualChannel
	ModeMono
)

// Emphasis is the de-emphasis indication. Informational only; no
// de-emphasis filter is applied.
type Emphasis uint8

const (
	EmphasisNone Emphasis = iota
	Emphasis50_15
	EmphasisReserved
	EmphasisCCITTJ17
)

// HeaderSize is the size in bytes of the fixed frame header.
const HeaderSize = 4

// Header is a parsed 4-byte frame header.
type Header struct {
	Version       Version
	Layer         Layer
	Protection    bool // CRC-16 word follows the header
	BitrateIndex  uint8
	SampleRateIdx uint8
	Padding       bool
	Mode          Mode
	ModeExtension uint8
	Emphasis      Emphasis
}

// Bitrates in kbit/s for Layer III, indexed by bitrate_index 1-14.
// Index 0 is free format and index 15 is forbidden; both invalidate
// the header here.
var bitrateKbps = [2][15]uint16{
	// MPEG-1
	{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320},
	// MPEG-2 / MPEG-2.5 (LSF)
	{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
}

// Sample rates in Hz, indexed by sampling_frequency. Index 3 is
// reserved.
var sampleRatesHz = [4][3]uint32{
	Version2_5:      {11025, 12000, 8000},
	VersionReserved: {0, 0, 0},
	Version2:        {22050, 24000, 16000},
	Version1:        {44100, 48000, 32000},
}

// ParseHeader decodes the 4 bytes at the start of data into a Header.
// It reports ok=false for anything that is not a plausible Layer III
// header: missing sync pattern, reserved version, wrong layer,
// free-format or forbidden bitrate, reserved sample rate.
func ParseHeader(data []byte) (Header, bool) {
	if len(data) < HeaderSize {
		return Header{}, false
	}
	// 11-bit sync: 0xFF followed by 3 more set bits.
	if data[0] != 0xFF || data[1]&0xE0 != 0xE0 {
		return Header{}, false
	}

	h := Header{
		Version:       Version(data[1] >> 3 & 0x3),
		Layer:         Layer(data[1] >> 1 & 0x3),
		Protection:    data[1]&0x1 == 0,
		BitrateIndex:  data[2] >> 4,
		SampleRateIdx: data[2] >> 2 & 0x3,
		Padding:       data[2]&0x2 != 0,
		Mode:          Mode(data[3] >> 6),
		ModeExtension: data[3] >> 4 & 0x3,
		Emphasis:      Emphasis(data[3] & 0x3),
	}

	if h.Version == VersionReserved || h.Layer != LayerIII {
		return Header{}, false
	}
	if h.BitrateIndex == 0 || h.BitrateIndex == 15 {
		return Header{}, false
	}
	if h.SampleRateIdx == 3 {
		return Header{}, false
	}
	return h, true
}

// Bitrate returns the frame bitrate in kbit/s.
func (h Header) Bitrate() uint32 {
	fam := 0
	if h.Version.LSF() {
		fam = 1
	}
	return uint32(bitrateKbps[fam][h.BitrateIndex])
}

// SampleRate returns the sampling frequency in Hz.
func (h Header) SampleRate() uint32 {
	return sampleRatesHz[h.Version][h.SampleRateIdx]
}

// Channels returns 1 for single-channel mode, 2 otherwise.
func (h Header) Channels() int {
	if h.Mode == ModeMono {
		return 1
	}
	return 2
}

// Granules returns the number of granules per frame: 2 for MPEG-1 and
// 1 for the LSF versions.
func (h Header) Granules() int {
	if h.Version.LSF() {
		return 1
	}
	return 2
}

// Samples returns the number of PCM samples per channel a frame
// decodes to.
func (h Header) Samples() int {
	return h.Granules() * 576
}

// Size returns the total frame length in bytes, including the header,
// the optional CRC word, side information and main data.
//
// Layer III frame length is 144*bitrate/samplerate for MPEG-1 and half
// that for the LSF versions, plus one padding byte when the padding
// bit is set (ISO/IEC 11172-3 2.4.3.1).
func (h Header) Size() int {
	factor := 144000
	if h.Version.LSF() {
		factor = 72000
	}
	return factor*int(h.Bitrate())/int(h.SampleRate()) + boolToInt(h.Padding)
}

// SideInfoSize returns the byte length of the side information block.
func (h Header) SideInfoSize() int {
	switch {
	case h.Version.LSF() && h.Mode == ModeMono:
		return 9
	case h.Version.LSF():
		return 17
	case h.Mode == ModeMono:
		return 17
	default:
		return 32
	}
}

// MainDataOffset returns the byte offset of the main-data region
// within the frame: header, optional CRC word and side information.
func (h Header) MainDataOffset() int {
	n := HeaderSize + h.SideInfoSize()
	if h.Protection {
		n += 2
	}
	return n
}

// IntensityStereo reports whether intensity stereo coding is active.
func (h Header) IntensityStereo() bool {
	return h.Mode == ModeJointStereo && h.ModeExtension&0x1 != 0
}

// MSStereo reports whether mid/side stereo coding is active.
func (h Header) MSStereo() bool {
	return h.Mode == ModeJointStereo && h.ModeExtension&0x2 != 0
}

// Compatible reports whether other could plausibly be the next frame
// of the same stream: same version, layer, sample rate and channel
// count. The bitrate may change frame to frame.
func (h Header) Compatible(other Header) bool {
	return h.Version == other.Version &&
		h.Layer == other.Layer &&
		h.SampleRateIdx == other.SampleRateIdx &&
		h.Channels() == other.Channels()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
