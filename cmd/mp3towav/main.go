// Command mp3towav decodes an MP3 file to a 16-bit PCM WAV file.
//
// It drives the frame decoder with a rolling byte window over the
// whole input, the way a streaming caller would.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/llehouerou/go-mp3dec"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: mp3towav <input.mp3> <output.wav>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	dec := mp3dec.NewDecoder()
	var pcm [mp3dec.MaxSamplesPerFrame]int16

	var samples []int
	var sampleRate, channels int
	window := data
	for len(window) > 0 {
		consumed, info, ok := dec.DecodeInt16(window, pcm[:])
		if !ok {
			break
		}
		window = window[consumed:]
		if info.SamplesProduced == 0 {
			continue
		}
		if sampleRate == 0 {
			sampleRate = info.SampleRate
			channels = info.Channels
		}
		for _, s := range pcm[:info.SamplesProduced] {
			samples = append(samples, int(s))
		}
	}
	if sampleRate == 0 {
		log.Fatal("no decodable audio found")
	}

	out, err := os.Create(os.Args[2])
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	enc := wav.NewEncoder(out, sampleRate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		log.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		log.Fatal(err)
	}
}
