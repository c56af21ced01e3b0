package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(64)

	n, err := bb.Write([]byte("GNU\x00"))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, 4, bb.Len())
	require.Equal(t, []byte("GNU\x00"), bb.Bytes())

	bb.MustWrite([]byte{1, 2, 3})
	require.Equal(t, 7, bb.Len())
}

func TestByteBuffer_WriteByteN(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.MustWrite([]byte("Go"))
	bb.WriteByteN(0, 2)

	require.Equal(t, []byte{'G', 'o', 0, 0}, bb.Bytes())

	bb.WriteByteN(0, 0)
	require.Equal(t, 4, bb.Len())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.Grow(4)
	require.GreaterOrEqual(t, bb.Cap(), 8)

	// Growing beyond capacity must preserve existing content.
	bb.MustWrite([]byte{1, 2, 3, 4})
	bb.Grow(2048)
	require.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 2048)
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("payload"))
	capBefore := bb.Cap()

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("note image"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(10), n)
	require.Equal(t, "note image", out.String())
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("abc"))
	p.Put(bb)

	// Buffers from the pool are always empty.
	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())

	// Oversized buffers are discarded, nil is tolerated.
	big := NewByteBuffer(128)
	big.MustWrite(make([]byte, 128))
	p.Put(big)
	p.Put(nil)
}

func TestDefaultPool(t *testing.T) {
	ib := GetImageBuffer()
	require.NotNil(t, ib)
	require.Equal(t, 0, ib.Len())
	PutImageBuffer(ib)
}
