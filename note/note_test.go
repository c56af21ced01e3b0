package note

import (
	"testing"

	"github.com/arloliu/elfnote/endian"
	"github.com/arloliu/elfnote/errs"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	n := New("GNU", 3, []byte{0xAA, 0xBB})

	require.Equal(t, uint32(4), n.NameSize()) // len("GNU")+1
	require.Equal(t, uint32(2), n.DescSize())
	require.Equal(t, uint32(3), n.Type)
	require.Equal(t, "GNU", n.NameString())
	require.Equal(t, []byte{0xAA, 0xBB}, n.Desc())
}

func TestNew_CopiesDescriptor(t *testing.T) {
	desc := []byte{1, 2, 3, 4}
	n := New("Go", 1, desc)

	desc[0] = 0xFF
	require.Equal(t, []byte{1, 2, 3, 4}, n.Desc())
}

func TestNewWithCapacity(t *testing.T) {
	t.Run("Capacity larger than name", func(t *testing.T) {
		n := NewWithCapacity("Go", 8, 1, nil)

		require.Equal(t, uint32(8), n.NameSize())
		require.Equal(t, []byte{'G', 'o', 0, 0, 0, 0, 0, 0}, n.Name())
		require.Equal(t, "Go", n.NameString())
	})

	t.Run("Silent truncation", func(t *testing.T) {
		n := NewWithCapacity("toolongname", 4, 1, nil)

		require.Equal(t, uint32(4), n.NameSize())
		require.Equal(t, []byte("tool"), n.Name())
		// No NUL in the buffer; NameString falls back to the whole buffer.
		require.Equal(t, "tool", n.NameString())
	})
}

func TestNote_Layout(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	// Name "ex" with capacity 3: header(12) + name(3) + gap(1) + desc(2).
	n := NewWithCapacity("ex", 3, 0x42, []byte{0xCA, 0xFE})

	require.Equal(t, 16, n.DescOffset())
	require.Equal(t, 18, n.Size())
	require.Equal(t, 20, n.PaddedSize())

	data := n.Bytes(engine)
	require.Equal(t, []byte{
		3, 0, 0, 0, // namesz
		2, 0, 0, 0, // descsz
		0x42, 0, 0, 0, // type
		'e', 'x', 0, // name
		0,          // alignment gap
		0xCA, 0xFE, // descriptor
	}, data)
}

// The two concrete layout scenarios from the format documentation.
func TestNote_ReferenceScenarios(t *testing.T) {
	engine := endian.GetNativeEngine()

	t.Run("Eight char name with byte descriptor", func(t *testing.T) {
		n := New("xxxxxxxx", 1, []byte{1, 2, 3, 4})

		require.Equal(t, uint32(9), n.NameSize())
		require.Equal(t, uint32(4), n.DescSize())
		require.Equal(t, uint32(1), n.Type)
		require.Equal(t, []byte("xxxxxxxx\x00"), n.Name())
		require.Equal(t, []byte{1, 2, 3, 4}, n.Desc())

		data := n.Bytes(engine)
		require.Equal(t, uint32(9), engine.Uint32(data[0:4]))
		require.Equal(t, uint32(4), engine.Uint32(data[4:8]))
		require.Equal(t, uint32(1), engine.Uint32(data[8:12]))
		require.Equal(t, []byte("xxxxxxxx\x00"), data[12:21])
		// name region padded from 21 to 24, descriptor follows
		require.Equal(t, []byte{0, 0, 0}, data[21:24])
		require.Equal(t, []byte{1, 2, 3, 4}, data[24:28])
	})

	t.Run("Five char name with uint64 descriptor", func(t *testing.T) {
		n := New("yyyyy", 2, DescUint64(engine, 7))

		require.Equal(t, uint32(6), n.NameSize())
		require.Equal(t, uint32(8), n.DescSize())
		require.Equal(t, uint32(2), n.Type)

		data := n.Bytes(engine)
		require.Equal(t, []byte("yyyyy\x00"), data[12:18])
		// descriptor starts at align4(12+6) = 20
		require.Equal(t, uint64(7), engine.Uint64(data[20:28]))
	})
}

func TestNote_RoundTrip(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"little": endian.GetLittleEndianEngine(),
		"big":    endian.GetBigEndianEngine(),
	}

	for label, engine := range engines {
		t.Run(label, func(t *testing.T) {
			original := New("GNU", 0xCAFE, []byte{9, 8, 7, 6, 5})
			data := original.Bytes(engine)

			parsed := &Note{}
			require.NoError(t, parsed.Parse(data, engine))

			require.Equal(t, original.NameSize(), parsed.NameSize())
			require.Equal(t, original.DescSize(), parsed.DescSize())
			require.Equal(t, original.Type, parsed.Type)
			require.Equal(t, original.NameString(), parsed.NameString())
			require.Equal(t, original.Desc(), parsed.Desc())
		})
	}
}

func TestNote_Parse_Errors(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	t.Run("Header too short", func(t *testing.T) {
		n := &Note{}
		err := n.Parse([]byte{1, 2, 3}, engine)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Declared sizes exceed data", func(t *testing.T) {
		full := New("GNU", 1, []byte{1, 2, 3, 4}).Bytes(engine)

		n := &Note{}
		err := n.Parse(full[:len(full)-2], engine)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrShortBuffer)
	})
}

func TestParseNote_Consumed(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	// Size 18, padded size 20; follow-up bytes present.
	first := NewWithCapacity("ex", 3, 7, []byte{0xCA, 0xFE})
	data := first.Bytes(engine)
	data = append(data, 0, 0)             // record padding
	data = append(data, 0xDE, 0xAD, 0xBE) // trailing garbage

	n, consumed, err := ParseNote(data, engine)
	require.NoError(t, err)
	require.Equal(t, 20, consumed)
	require.Equal(t, uint32(7), n.Type)

	t.Run("Final record without trailing padding", func(t *testing.T) {
		n2, consumed2, err := ParseNote(first.Bytes(engine), engine)
		require.NoError(t, err)
		require.Equal(t, 18, consumed2)
		require.Equal(t, first.Desc(), n2.Desc())
	})
}

func TestNote_EmptyDescriptor(t *testing.T) {
	engine := endian.GetNativeEngine()
	n := New("empty", 5, nil)

	require.Equal(t, uint32(0), n.DescSize())
	require.Equal(t, n.DescOffset(), n.Size())

	data := n.Bytes(engine)
	require.Len(t, data, n.Size())

	parsed := &Note{}
	require.NoError(t, parsed.Parse(data, engine))
	require.Empty(t, parsed.Desc())
}

func TestNote_Fingerprint(t *testing.T) {
	a := New("GNU", 1, []byte{1, 2})
	b := New("GNU", 1, []byte{1, 2})
	c := New("GNU", 2, []byte{1, 2})

	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestAlignUp(t *testing.T) {
	cases := map[int]int{0: 0, 1: 4, 2: 4, 3: 4, 4: 4, 5: 8, 12: 12, 13: 16}
	for in, want := range cases {
		require.Equal(t, want, AlignUp(in), "AlignUp(%d)", in)
	}
}
