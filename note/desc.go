package note

import "github.com/arloliu/elfnote/endian"

// DescBuilder assembles a descriptor payload field by field.
//
// ELF descriptors are tightly packed: consecutive fields follow each other
// with no padding, which Go's struct layout rules cannot promise. The
// builder sidesteps struct layout entirely by appending each field through
// the endian engine, so the resulting bytes are identical on every host.
//
// Methods return the builder for chaining:
//
//	desc := note.NewDescBuilder(engine).
//		U32(abiTag).
//		U32(major).U32(minor).U32(patch).
//		Build()
type DescBuilder struct {
	engine endian.EndianEngine
	buf    []byte
}

// NewDescBuilder creates a DescBuilder using the given endian engine for
// multi-byte fields.
func NewDescBuilder(engine endian.EndianEngine) *DescBuilder {
	return &DescBuilder{engine: engine}
}

// U8 appends a single byte.
func (b *DescBuilder) U8(v uint8) *DescBuilder {
	b.buf = append(b.buf, v)
	return b
}

// U16 appends a 16-bit value.
func (b *DescBuilder) U16(v uint16) *DescBuilder {
	b.buf = b.engine.AppendUint16(b.buf, v)
	return b
}

// U32 appends a 32-bit value.
func (b *DescBuilder) U32(v uint32) *DescBuilder {
	b.buf = b.engine.AppendUint32(b.buf, v)
	return b
}

// U64 appends a 64-bit value.
func (b *DescBuilder) U64(v uint64) *DescBuilder {
	b.buf = b.engine.AppendUint64(b.buf, v)
	return b
}

// Bytes appends raw bytes verbatim.
func (b *DescBuilder) Bytes(data []byte) *DescBuilder {
	b.buf = append(b.buf, data...)
	return b
}

// String appends the raw bytes of s without a terminator. Descriptors that
// carry NUL-terminated text must append the terminator explicitly with U8(0).
func (b *DescBuilder) String(s string) *DescBuilder {
	b.buf = append(b.buf, s...)
	return b
}

// Len returns the number of bytes assembled so far.
func (b *DescBuilder) Len() int {
	return len(b.buf)
}

// Build returns the assembled descriptor. The builder must not be used
// afterwards.
func (b *DescBuilder) Build() []byte {
	return b.buf
}

// DescUint32 encodes a single 32-bit descriptor value.
func DescUint32(engine endian.EndianEngine, v uint32) []byte {
	return engine.AppendUint32(nil, v)
}

// DescUint64 encodes a single 64-bit descriptor value.
func DescUint64(engine endian.EndianEngine, v uint64) []byte {
	return engine.AppendUint64(nil, v)
}
