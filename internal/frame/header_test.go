package frame

import "testing"

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		ok   bool
		want Header
	}{
		{
			name: "mpeg1 mono 128kbps 44100",
			data: []byte{0xFF, 0xFB, 0x90, 0xC0},
			ok:   true,
			want: Header{
				Version: Version1, Layer: LayerIII,
				BitrateIndex: 9, SampleRateIdx: 0,
				Mode: ModeMono,
			},
		},
		{
			name: "mpeg1 joint stereo ms",
			data: []byte{0xFF, 0xFB, 0x90, 0x60},
			ok:   true,
			want: Header{
				Version: Version1, Layer: LayerIII,
				BitrateIndex: 9, SampleRateIdx: 0,
				Mode: ModeJointStereo, ModeExtension: 2,
			},
		},
		{
			name: "mpeg2 lsf",
			data: []byte{0xFF, 0xF3, 0x90, 0xC0},
			ok:   true,
			want: Header{
				Version: Version2, Layer: LayerIII,
				BitrateIndex: 9, SampleRateIdx: 0,
				Mode: ModeMono,
			},
		},
		{name: "no sync", data: []byte{0xFE, 0xFB, 0x90, 0xC0}, ok: false},
		{name: "partial sync", data: []byte{0xFF, 0x1B, 0x90, 0xC0}, ok: false},
		{name: "reserved version", data: []byte{0xFF, 0xEB, 0x90, 0xC0}, ok: false},
		{name: "layer II", data: []byte{0xFF, 0xFD, 0x90, 0xC0}, ok: false},
		{name: "free format", data: []byte{0xFF, 0xFB, 0x00, 0xC0}, ok: false},
		{name: "forbidden bitrate", data: []byte{0xFF, 0xFB, 0xF0, 0xC0}, ok: false},
		{name: "reserved sample rate", data: []byte{0xFF, 0xFB, 0x9C, 0xC0}, ok: false},
		{name: "short input", data: []byte{0xFF, 0xFB, 0x90}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := ParseHeader(tt.data)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if h.Version != tt.want.Version || h.Layer != tt.want.Layer ||
				h.BitrateIndex != tt.want.BitrateIndex ||
				h.SampleRateIdx != tt.want.SampleRateIdx ||
				h.Mode != tt.want.Mode || h.ModeExtension != tt.want.ModeExtension {
				t.Errorf("header = %+v, want %+v", h, tt.want)
			}
		})
	}
}

func TestHeaderDerived(t *testing.T) {
	h, ok := ParseHeader([]byte{0xFF, 0xFB, 0x90, 0xC0}) // 128kbps 44100 mono
	if !ok {
		t.Fatal("header did not parse")
	}
	if got := h.Bitrate(); got != 128 {
		t.Errorf("Bitrate() = %d, want 128", got)
	}
	if got := h.SampleRate(); got != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", got)
	}
	if got := h.Size(); got != 417 {
		t.Errorf("Size() = %d, want 417", got)
	}
	if got := h.Channels(); got != 1 {
		t.Errorf("Channels() = %d, want 1", got)
	}
	if got := h.Granules(); got != 2 {
		t.Errorf("Granules() = %d, want 2", got)
	}
	if got := h.SideInfoSize(); got != 17 {
		t.Errorf("SideInfoSize() = %d, want 17", got)
	}
	if got := h.MainDataOffset(); got != 21 {
		t.Errorf("MainDataOffset() = %d, want 21", got)
	}

	// Padding adds one byte.
	hp, _ := ParseHeader([]byte{0xFF, 0xFB, 0x92, 0xC0})
	if got := hp.Size(); got != 418 {
		t.Errorf("padded Size() = %d, want 418", got)
	}

	// LSF: one granule, half-length frames, 9-byte mono side info.
	h2, ok := ParseHeader([]byte{0xFF, 0xF3, 0x90, 0xC0}) // 80kbps 22050 mono
	if !ok {
		t.Fatal("LSF header did not parse")
	}
	if got := h2.Bitrate(); got != 80 {
		t.Errorf("LSF Bitrate() = %d, want 80", got)
	}
	if got := h2.Samples(); got != 576 {
		t.Errorf("LSF Samples() = %d, want 576", got)
	}
	if got := h2.Size(); got != 72000*80/22050 {
		t.Errorf("LSF Size() = %d, want %d", got, 72000*80/22050)
	}
	if got := h2.SideInfoSize(); got != 9 {
		t.Errorf("LSF SideInfoSize() = %d, want 9", got)
	}

	// CRC-protected frames place a 2-byte word before the side info.
	hc, ok := ParseHeader([]byte{0xFF, 0xFA, 0x90, 0xC0})
	if !ok {
		t.Fatal("protected header did not parse")
	}
	if !hc.Protection {
		t.Error("Protection not set")
	}
	if got := hc.MainDataOffset(); got != 23 {
		t.Errorf("protected MainDataOffset() = %d, want 23", got)
	}
}

func TestHeaderStereoFlags(t *testing.T) {
	js, _ := ParseHeader([]byte{0xFF, 0xFB, 0x90, 0x70}) // joint, ext 3
	if !js.MSStereo() || !js.IntensityStereo() {
		t.Error("mode extension 3 should enable both joint modes")
	}
	plain, _ := ParseHeader([]byte{0xFF, 0xFB, 0x90, 0x00}) // stereo
	if plain.MSStereo() || plain.IntensityStereo() {
		t.Error("plain stereo must not report joint coding")
	}
}
