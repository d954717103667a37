package frame

// Sync scans window for the start of a plausible Layer III frame.
//
// A candidate is a byte offset whose four bytes parse as a valid
// header. When the window holds enough trailing bytes to reach the
// position implied by the candidate's frame length, the candidate is
// accepted only if a compatible header starts there too; this guards
// against sync-pattern bytes occurring inside audio data or tags.
// When the window is too short for that check the candidate is
// accepted optimistically rather than stalling the stream.
//
// Sync returns the candidate offset, its parsed header and ok=true.
// On ok=false, offset is instead the count of leading bytes known not
// to start a frame; the caller may discard that prefix before
// retrying with more input.
func Sync(window []byte) (offset int, h Header, ok bool) {
	for i := 0; i+HeaderSize <= len(window); i++ {
		cand, valid := ParseHeader(window[i:])
		if !valid {
			continue
		}
		next := i + cand.Size()
		if next+HeaderSize <= len(window) {
			peer, valid := ParseHeader(window[next:])
			if !valid || !cand.Compatible(peer) {
				continue
			}
		}
		return i, cand, true
	}
	// Nothing found. All bytes except a possible partial header at the
	// tail are safe to discard.
	skip := len(window) - (HeaderSize - 1)
	if skip < 0 {
		skip = 0
	}
	return skip, Header{}, false
}
