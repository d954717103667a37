package mp3dec_test

import (
	"fmt"

	"github.com/llehouerou/go-mp3dec"
)

func Example() {
	// A minimal 128 kbit/s 44100 Hz mono frame: all-zero side info
	// and main data decode to silence.
	stream := make([]byte, 417)
	copy(stream, []byte{0xFF, 0xFB, 0x90, 0xC0})

	dec := mp3dec.NewDecoder()
	pcm := make([]float32, mp3dec.MaxSamplesPerFrame)

	window := stream
	for len(window) > 0 {
		consumed, info, ok := dec.Decode(window, pcm)
		if !ok {
			// Append more compressed data and retry.
			break
		}
		window = window[consumed:]
		fmt.Printf("%d Hz, %d channel(s), %d samples\n",
			info.SampleRate, info.Channels, info.SamplesProduced)
	}
	// Output: 44100 Hz, 1 channel(s), 1152 samples
}
