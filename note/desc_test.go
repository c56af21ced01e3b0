package note

import (
	"testing"

	"github.com/arloliu/elfnote/endian"
	"github.com/stretchr/testify/require"
)

func TestDescBuilder(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	desc := NewDescBuilder(engine).
		U8(0x01).
		U16(0x0203).
		U32(0x04050607).
		U64(0x08090A0B0C0D0E0F).
		Build()

	// Fields are packed back to back with no padding.
	require.Equal(t, []byte{
		0x01,
		0x03, 0x02,
		0x07, 0x06, 0x05, 0x04,
		0x0F, 0x0E, 0x0D, 0x0C, 0x0B, 0x0A, 0x09, 0x08,
	}, desc)
	require.Len(t, desc, 1+2+4+8)
}

func TestDescBuilder_BytesAndString(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	b := NewDescBuilder(engine)
	b.String("abc").U8(0).Bytes([]byte{0xFF})

	require.Equal(t, 5, b.Len())
	require.Equal(t, []byte{'a', 'b', 'c', 0, 0xFF}, b.Build())
}

func TestDescHelpers(t *testing.T) {
	t.Run("Uint32", func(t *testing.T) {
		engine := endian.GetBigEndianEngine()
		require.Equal(t, []byte{0, 0, 0, 7}, DescUint32(engine, 7))
	})

	t.Run("Uint64 per engine order", func(t *testing.T) {
		le := DescUint64(endian.GetLittleEndianEngine(), 7)
		be := DescUint64(endian.GetBigEndianEngine(), 7)

		require.Equal(t, []byte{7, 0, 0, 0, 0, 0, 0, 0}, le)
		require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 7}, be)
	})
}

func TestDescBuilder_InNote(t *testing.T) {
	engine := endian.GetNativeEngine()

	desc := NewDescBuilder(engine).U32(1).U32(2).U32(3).U32(4).Build()
	n := New("GNU", 5, desc)

	require.Equal(t, uint32(16), n.DescSize())

	data := n.Bytes(engine)
	off := n.DescOffset()
	for i, want := range []uint32{1, 2, 3, 4} {
		require.Equal(t, want, engine.Uint32(data[off+4*i:off+4*i+4]))
	}
}
