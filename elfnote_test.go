package elfnote

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/elfnote/endian"
	"github.com/arloliu/elfnote/section"
)

// TestNewAndMarshal verifies the wrapper produces the same bytes as the
// note package with the native engine.
func TestNewAndMarshal(t *testing.T) {
	n := New("example", 1, []byte{1, 2, 3, 4})

	data := Marshal(n)
	require.Equal(t, n.Bytes(endian.GetNativeEngine()), data)
	require.Len(t, data, n.Size())
}

func TestDescHelpers(t *testing.T) {
	engine := endian.GetNativeEngine()

	require.Equal(t, uint32(7), engine.Uint32(DescUint32(7)))
	require.Equal(t, uint64(7), engine.Uint64(DescUint64(7)))
}

func TestBuildSection(t *testing.T) {
	image, err := BuildSection(".note.example",
		New("example", 1, []byte{1, 2, 3, 4}),
		New("example", 2, DescUint64(7)),
	)
	require.NoError(t, err)

	notes, err := section.ParseImage(image, endian.GetNativeEngine())
	require.NoError(t, err)
	require.Len(t, notes, 2)
	require.Equal(t, uint32(1), notes[0].Type)
	require.Equal(t, uint32(2), notes[1].Type)
	require.Equal(t, "example", notes[0].NameString())
}

func TestBuildSection_DefaultName(t *testing.T) {
	image, err := BuildSection("", New("GNU", section.TypeGNUBuildID, []byte{0xAB}))
	require.NoError(t, err)
	require.NotEmpty(t, image)
}
