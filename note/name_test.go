package note

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeName_Fits(t *testing.T) {
	t.Run("Exact fit with terminator", func(t *testing.T) {
		buf, truncated := EncodeName("GNU", 4)

		require.False(t, truncated)
		require.Equal(t, []byte{'G', 'N', 'U', 0}, buf)
	})

	t.Run("Extra capacity is zero filled", func(t *testing.T) {
		buf, truncated := EncodeName("Go", 8)

		require.False(t, truncated)
		require.Equal(t, []byte{'G', 'o', 0, 0, 0, 0, 0, 0}, buf)
	})

	t.Run("Empty name", func(t *testing.T) {
		buf, truncated := EncodeName("", 1)

		require.False(t, truncated)
		require.Equal(t, []byte{0}, buf)
	})
}

func TestEncodeName_Truncation(t *testing.T) {
	t.Run("Name longer than capacity", func(t *testing.T) {
		buf, truncated := EncodeName("toolongname", 4)

		require.True(t, truncated)
		require.Equal(t, []byte("tool"), buf)
		// The truncated buffer carries no terminator.
		require.NotContains(t, buf, byte(0))
	})

	t.Run("Name exactly capacity bytes", func(t *testing.T) {
		// The terminator needs its own byte, so this is already truncation.
		buf, truncated := EncodeName("CORE", 4)

		require.True(t, truncated)
		require.Equal(t, []byte("CORE"), buf)
	})

	t.Run("Zero capacity", func(t *testing.T) {
		buf, truncated := EncodeName("x", 0)

		require.True(t, truncated)
		require.Empty(t, buf)
	})

	t.Run("Negative capacity treated as zero", func(t *testing.T) {
		buf, truncated := EncodeName("x", -3)

		require.True(t, truncated)
		require.Empty(t, buf)
	})
}

func TestEncodeName_AllShorterLengths(t *testing.T) {
	// For every string shorter than the capacity, the buffer is the string
	// followed by zeros and reading back to the first NUL recovers it.
	const capacity = 16
	for length := 0; length < capacity; length++ {
		s := strings.Repeat("a", length)
		buf, truncated := EncodeName(s, capacity)

		require.False(t, truncated, "length %d", length)
		require.Len(t, buf, capacity)
		require.Equal(t, s, string(buf[:length]))
		for i := length; i < capacity; i++ {
			require.Zero(t, buf[i], "length %d byte %d", length, i)
		}
	}
}
