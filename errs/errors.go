// Package errs defines the sentinel errors shared across elfnote packages.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is after call sites wrap them with additional context.
package errs

import "errors"

var (
	// ErrInvalidHeaderSize indicates a byte slice too short to contain the
	// 12-byte note header.
	ErrInvalidHeaderSize = errors.New("invalid note header size")

	// ErrShortBuffer indicates a byte slice shorter than the sizes declared
	// in the note header (name or descriptor region cut off).
	ErrShortBuffer = errors.New("buffer shorter than declared note size")

	// ErrInvalidChdr indicates a compression header that is too short or
	// declares an unknown layout.
	ErrInvalidChdr = errors.New("invalid compression header")

	// ErrUnknownCompression indicates an unsupported ch_type value or
	// compression type.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrInvalidClass indicates an ELF class other than ELF32 or ELF64.
	ErrInvalidClass = errors.New("invalid ELF class")

	// ErrSizeMismatch indicates decompressed data whose length does not match
	// the ch_size field of the compression header.
	ErrSizeMismatch = errors.New("decompressed size mismatch")
)
