package section

import (
	"io"

	"github.com/arloliu/elfnote/endian"
	"github.com/arloliu/elfnote/internal/options"
	"github.com/arloliu/elfnote/internal/pool"
	"github.com/arloliu/elfnote/note"
)

// Builder assembles note records into a section image by simple sequential
// emission. Every record is padded so the next one starts on a 4-byte
// boundary.
//
// A Builder is not safe for concurrent use. After Finish the Builder is
// reset and may be reused for another image.
type Builder struct {
	buf     *pool.ByteBuffer
	engine  endian.EndianEngine
	section string
	count   int
}

// BuilderOption configures a Builder.
type BuilderOption = options.Option[*Builder]

// WithEngine sets the endian engine used for record headers.
// The default is the host's native byte order.
func WithEngine(engine endian.EndianEngine) BuilderOption {
	return options.NoError(func(b *Builder) {
		b.engine = engine
	})
}

// WithLittleEndian selects little-endian record headers, for producing
// images targeting a little-endian platform from any host.
func WithLittleEndian() BuilderOption {
	return WithEngine(endian.GetLittleEndianEngine())
}

// WithBigEndian selects big-endian record headers.
func WithBigEndian() BuilderOption {
	return WithEngine(endian.GetBigEndianEngine())
}

// WithSectionName sets the target section name attached to the image.
// The default is DefaultName (".note").
func WithSectionName(name string) BuilderOption {
	return options.NoError(func(b *Builder) {
		b.section = name
	})
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	b := &Builder{
		buf:     pool.GetImageBuffer(),
		engine:  endian.GetNativeEngine(),
		section: DefaultName,
	}

	if err := options.Apply(b, opts...); err != nil {
		pool.PutImageBuffer(b.buf)
		return nil, err
	}

	return b, nil
}

// Add emits a record into the image, padding it to the 4-byte record
// alignment. It returns the Builder for chaining.
//
// Records are independent: adding one never alters the bytes of those
// already emitted.
func (b *Builder) Add(n *note.Note) *Builder {
	b.buf.Grow(n.PaddedSize())
	b.buf.B = n.AppendTo(b.buf.B, b.engine)
	b.buf.WriteByteN(0, note.AlignUp(b.buf.Len())-b.buf.Len())
	b.count++

	return b
}

// AddEntry constructs a record from its parts and emits it. The name
// capacity is len(name)+1, so AddEntry never truncates.
func (b *Builder) AddEntry(name string, typ uint32, desc []byte) *Builder {
	return b.Add(note.New(name, typ, desc))
}

// SectionName returns the target section name for this image.
func (b *Builder) SectionName() string {
	return b.section
}

// Count returns the number of records emitted so far.
func (b *Builder) Count() int {
	return b.count
}

// Len returns the current image size in bytes.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Bytes returns a copy of the image built so far. The Builder remains
// usable afterwards.
func (b *Builder) Bytes() []byte {
	out := make([]byte, b.buf.Len())
	copy(out, b.buf.Bytes())

	return out
}

// WriteTo writes the current image to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	return b.buf.WriteTo(w)
}

// Finish returns the completed image and resets the Builder for reuse,
// returning its buffer to the pool.
func (b *Builder) Finish() []byte {
	out := b.Bytes()

	pool.PutImageBuffer(b.buf)
	b.buf = pool.GetImageBuffer()
	b.count = 0

	return out
}

// ParseImage walks a section image and returns its records in declaration
// order. It is the round-trip counterpart of the Builder, intended for
// validation and tests rather than general ELF inspection.
func ParseImage(data []byte, engine endian.EndianEngine) ([]*note.Note, error) {
	var notes []*note.Note
	for len(data) > 0 {
		n, consumed, err := note.ParseNote(data, engine)
		if err != nil {
			return nil, err
		}

		notes = append(notes, n)
		data = data[consumed:]
	}

	return notes, nil
}
