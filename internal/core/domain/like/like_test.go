package like

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounterKey(t *testing.T) {
	require.Equal(t, "album_likes:album-1", CounterKey("album-1"))
	require.Equal(t, CounterKey("a"), CounterKey("a"))
	require.NotEqual(t, CounterKey("a"), CounterKey("b"))
}
