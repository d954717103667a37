// Package output converts decoded float32 PCM to 16-bit integer
// samples.
package output

// Int16 converts len(src) samples into dst, scaling by 32768 and
// clamping to the int16 range. dst must be at least as long as src.
func Int16(src []float32, dst []int16) {
	for i, s := range src {
		v := int32(s * 32768)
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		dst[i] = int16(v)
	}
}
