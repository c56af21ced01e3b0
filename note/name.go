package note

// EncodeName encodes name into a fixed-capacity, NUL-padded byte buffer.
//
// The returned buffer always has length capacity. When the name fits
// (len(name) < capacity), it is followed by zero bytes, at least one, so the
// buffer is NUL-terminated. When it does not fit, the buffer holds the first
// capacity bytes of the name with no terminator, and truncated is true.
//
// Truncation is silent in the Note constructors; this function is the
// strict entry point for callers (such as build-time generators) that want
// to detect and reject it.
//
// Parameters:
//   - name: Name string to encode
//   - capacity: Declared buffer capacity N, including the NUL byte
//
// Returns:
//   - []byte: Buffer of exactly capacity bytes
//   - bool: true when the name and its terminator did not fit
func EncodeName(name string, capacity int) ([]byte, bool) {
	if capacity < 0 {
		capacity = 0
	}

	buf := make([]byte, capacity)
	copy(buf, name)

	// The terminator needs one byte of its own; len(name) == capacity-1 is
	// the largest name that still fits.
	return buf, len(name) >= capacity
}
