// Package reservoir implements the Layer III bit reservoir: a bounded
// backlog of main-data bytes that lets a granule's data begin before
// its own frame's main-data region.
package reservoir

// Capacity is the maximum look-back distance in bytes. main_data_begin
// is a 9-bit field for MPEG-1 (511) and an 8-bit field for the LSF
// versions (255); one buffer sized for the larger family serves both.
const Capacity = 511

// Reservoir is a rolling byte buffer of recent main data. The zero
// value is an empty reservoir.
type Reservoir struct {
	buf [Capacity]byte
	n   int
}

// Held returns the number of history bytes currently available for
// look-back.
func (rv *Reservoir) Held() int {
	return rv.n
}

// Restore copies the newest lookback bytes of history into dst and
// reports whether the look-back was satisfiable. A look-back deeper
// than the held history (typical right after resynchronization) leaves
// dst untouched and returns false.
func (rv *Reservoir) Restore(lookback int, dst []byte) bool {
	if lookback < 0 || lookback > rv.n {
		return false
	}
	copy(dst, rv.buf[rv.n-lookback:rv.n])
	return true
}

// Push appends a frame's main-data bytes to the history tail. Bytes
// older than Capacity are discarded; no future frame may reference
// them.
func (rv *Reservoir) Push(data []byte) {
	if len(data) >= Capacity {
		copy(rv.buf[:], data[len(data)-Capacity:])
		rv.n = Capacity
		return
	}
	keep := rv.n
	if keep+len(data) > Capacity {
		keep = Capacity - len(data)
		copy(rv.buf[:keep], rv.buf[rv.n-keep:rv.n])
	}
	copy(rv.buf[keep:], data)
	rv.n = keep + len(data)
}

// Reset discards all held history.
func (rv *Reservoir) Reset() {
	rv.n = 0
}
