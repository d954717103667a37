// Package mp3dec decodes MPEG-1/2/2.5 Layer III audio to PCM one
// frame at a time.
//
// The decoder performs no allocation per call and keeps no copy of
// the compressed input: the caller owns both buffers and feeds a
// rolling byte window. A window of at least 16 KiB is recommended so
// resynchronization skips and the bit reservoir never starve.
//
//	dec := mp3dec.NewDecoder()
//	pcm := make([]float32, mp3dec.MaxSamplesPerFrame)
//	for len(window) > 0 {
//	    consumed, info, ok := dec.Decode(window, pcm)
//	    if !ok {
//	        break // need more data
//	    }
//	    window = window[consumed:]
//	    use(pcm[:info.SamplesProduced], info)
//	}
package mp3dec

// MaxSamplesPerFrame is the minimum capacity of the PCM output
// buffer: 1152 samples per channel times two channels. Mono and LSF
// frames fill less of it.
const MaxSamplesPerFrame = 2304

// Channel layouts reported in FrameInfo.
const (
	Mono   = 1
	Stereo = 2
)

// FrameInfo describes one decoded frame.
type FrameInfo struct {
	// SamplesProduced counts the interleaved PCM values written to
	// the output buffer. It is zero for a frame that was skipped
	// because its bit reservoir look-back was unsatisfiable.
	SamplesProduced int
	// Channels is Mono or Stereo.
	Channels int
	// SampleRate in Hz.
	SampleRate int
	// Bitrate in kbit/s of this frame.
	Bitrate int
}
