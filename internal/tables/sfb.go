// Package tables holds the fixed Layer III scalefactor band layout
// tables from ISO/IEC 11172-3 Table B.8 and the ISO/IEC 13818-3 (and
// MPEG-2.5) extensions.
package tables

// Band boundaries are cumulative frequency-line start indices: 22
// long bands (23 entries) and 13 short bands per window (14 entries,
// in lines per window).

// RateFamily maps the header's raw version bits (0=MPEG-2.5,
// 2=MPEG-2, 3=MPEG-1) and sampling_frequency index to a row of the
// band tables. Callers must pass validated fields only.
func RateFamily(versionBits, sampleRateIdx uint8) int {
	switch versionBits {
	case 3:
		return int(sampleRateIdx)
	case 2:
		return 3 + int(sampleRateIdx)
	default:
		return 6 + int(sampleRateIdx)
	}
}

// SfbLong holds long-block band boundaries, indexed by RateFamily.
var SfbLong = [9][23]int{
	// MPEG-1: 44100, 48000, 32000
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 52, 62, 74, 90, 110, 134, 162, 196, 238, 288, 342, 418, 576},
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 42, 50, 60, 72, 88, 106, 128, 156, 190, 230, 276, 330, 384, 576},
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 54, 66, 82, 102, 126, 156, 194, 240, 296, 364, 448, 550, 576},
	// MPEG-2: 22050, 24000, 16000
	{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
	{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 114, 136, 162, 194, 232, 278, 332, 394, 464, 540, 576},
	{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
	// MPEG-2.5: 11025, 12000, 8000
	{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
	{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
	{0, 12, 24, 36, 48, 60, 72, 88, 108, 132, 160, 192, 232, 280, 336, 400, 476, 566, 568, 570, 572, 574, 576},
}

// SfbShort holds short-block band boundaries in lines per window,
// indexed by RateFamily.
var SfbShort = [9][14]int{
	{0, 4, 8, 12, 16, 22, 30, 40, 52, 66, 84, 106, 136, 192},
	{0, 4, 8, 12, 16, 22, 28, 38, 50, 64, 80, 100, 126, 192},
	{0, 4, 8, 12, 16, 22, 30, 42, 58, 78, 104, 138, 180, 192},
	{0, 4, 8, 12, 18, 24, 32, 42, 56, 74, 100, 132, 174, 192},
	{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 136, 180, 192},
	{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 134, 174, 192},
	{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 134, 174, 192},
	{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 134, 174, 192},
	{0, 8, 16, 24, 36, 52, 72, 96, 124, 160, 162, 164, 166, 192},
}

// Pretab is the additional scalefactor offset applied to the upper
// long bands when preflag is set (ISO/IEC 11172-3 2.4.3.4.5).
var Pretab = [22]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 3, 3, 3, 2, 0}
