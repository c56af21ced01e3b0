package note

import (
	"fmt"

	"github.com/arloliu/elfnote/endian"
	"github.com/arloliu/elfnote/errs"
	"github.com/arloliu/elfnote/internal/hash"
)

const (
	// HeaderSize is the fixed size of the note header (namesz, descsz, type).
	HeaderSize = 12
	// Align is the record alignment mandated by the ELF note format.
	Align = 4
)

// Note represents a single ELF note record.
//
// A Note is immutable after construction: the constructors copy the name and
// descriptor into buffers owned by the Note, and all accessors return either
// copies or read-only views.
type Note struct {
	name []byte // exactly NameSize bytes, NUL padded or truncated
	desc []byte

	// Type is the caller-supplied numeric tag distinguishing note kinds
	// within a section.
	Type uint32
}

// New creates a Note with name capacity len(name)+1, so the name is stored
// whole with its NUL terminator. This is the constructor the declarative
// layers use and the one that can never truncate.
//
// The descriptor bytes are stored verbatim; their internal packing is the
// caller's concern (see DescBuilder).
func New(name string, typ uint32, desc []byte) *Note {
	return NewWithCapacity(name, len(name)+1, typ, desc)
}

// NewWithCapacity creates a Note with an explicit name capacity.
//
// capacity becomes the record's namesz regardless of the actual string
// length. A name longer than capacity-1 bytes is silently truncated; use
// EncodeName first when truncation must be detected.
func NewWithCapacity(name string, capacity int, typ uint32, desc []byte) *Note {
	buf, _ := EncodeName(name, capacity)

	d := make([]byte, len(desc))
	copy(d, desc)

	return &Note{
		name: buf,
		desc: d,
		Type: typ,
	}
}

// NameSize returns the namesz header field: the declared name capacity,
// including the NUL byte, independent of the stored string's length.
func (n *Note) NameSize() uint32 {
	return uint32(len(n.name)) //nolint:gosec
}

// DescSize returns the descsz header field: the descriptor size in bytes.
func (n *Note) DescSize() uint32 {
	return uint32(len(n.desc)) //nolint:gosec
}

// Name returns the raw name buffer, including NUL padding.
func (n *Note) Name() []byte {
	return n.name
}

// NameString returns the name up to the first NUL byte.
//
// In the truncated case there may be no NUL, in which case the whole buffer
// is returned as a string.
func (n *Note) NameString() string {
	for i, b := range n.name {
		if b == 0 {
			return string(n.name[:i])
		}
	}

	return string(n.name)
}

// Desc returns the descriptor bytes.
func (n *Note) Desc() []byte {
	return n.desc
}

// DescOffset returns the record-relative byte offset of the descriptor:
// the header plus the name buffer, rounded up to 4 bytes.
//
// The format only guarantees 4-byte alignment at this offset. Callers whose
// descriptor needs stricter alignment must arrange it externally and can use
// this offset to verify their placement.
func (n *Note) DescOffset() int {
	return AlignUp(HeaderSize + len(n.name))
}

// Size returns the serialized size of the record: header, name buffer,
// alignment gap, and descriptor. It excludes the trailing padding that
// separates consecutive records; see PaddedSize.
func (n *Note) Size() int {
	return n.DescOffset() + len(n.desc)
}

// PaddedSize returns Size rounded up to the 4-byte record alignment, the
// space the record occupies when emitted into a section image.
func (n *Note) PaddedSize() int {
	return AlignUp(n.Size())
}

// AppendTo appends the serialized record to buf and returns the extended
// slice. The record is emitted unpadded; sequential emitters pad to
// PaddedSize between records.
func (n *Note) AppendTo(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint32(buf, n.NameSize())
	buf = engine.AppendUint32(buf, n.DescSize())
	buf = engine.AppendUint32(buf, n.Type)
	buf = append(buf, n.name...)

	// Alignment gap between name and descriptor.
	for i := HeaderSize + len(n.name); i < n.DescOffset(); i++ {
		buf = append(buf, 0)
	}

	return append(buf, n.desc...)
}

// Bytes serializes the record using the given endian engine.
func (n *Note) Bytes(engine endian.EndianEngine) []byte {
	return n.AppendTo(make([]byte, 0, n.Size()), engine)
}

// Fingerprint returns the xxHash64 of the record serialized in native byte
// order. Two records with identical name buffer, type and descriptor have
// the same fingerprint, which makes it usable for deduplication and for
// change detection in generated files.
func (n *Note) Fingerprint() uint64 {
	return hash.Sum64(n.Bytes(endian.GetNativeEngine()))
}

// Parse parses a serialized note record from data.
//
// It exists to validate record layout and support round-trip tests; scanning
// note sections out of ELF binaries is the business of an ELF parsing
// library, not this package.
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize when data cannot hold the header,
//     errs.ErrShortBuffer when the declared name or descriptor region is cut off
func (n *Note) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	namesz := engine.Uint32(data[0:4])
	descsz := engine.Uint32(data[4:8])
	n.Type = engine.Uint32(data[8:12])

	nameEnd := HeaderSize + int(namesz)
	descStart := AlignUp(nameEnd)
	descEnd := descStart + int(descsz)
	if len(data) < descEnd {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrShortBuffer, descEnd, len(data))
	}

	n.name = make([]byte, namesz)
	copy(n.name, data[HeaderSize:nameEnd])

	n.desc = make([]byte, descsz)
	copy(n.desc, data[descStart:descEnd])

	return nil
}

// ParseNote parses one record from the front of data and additionally
// reports the number of bytes consumed including trailing record padding,
// so consecutive records can be walked with data[consumed:].
func ParseNote(data []byte, engine endian.EndianEngine) (*Note, int, error) {
	n := &Note{}
	if err := n.Parse(data, engine); err != nil {
		return nil, 0, err
	}

	consumed := n.PaddedSize()
	if consumed > len(data) {
		// The final record of an image may omit trailing padding.
		consumed = len(data)
	}

	return n, consumed, nil
}

// AlignUp rounds n up to the next multiple of the 4-byte record alignment.
func AlignUp(n int) int {
	return (n + Align - 1) &^ (Align - 1)
}
