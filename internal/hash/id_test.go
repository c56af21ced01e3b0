package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum64(t *testing.T) {
	a := Sum64([]byte("GNU"))
	b := Sum64([]byte("GNU"))
	require.Equal(t, a, b)

	c := Sum64([]byte("Go"))
	require.NotEqual(t, a, c)
}

func TestSum64String(t *testing.T) {
	require.Equal(t, Sum64([]byte("example")), Sum64String("example"))
	require.Equal(t, Sum64(nil), Sum64String(""))
}
