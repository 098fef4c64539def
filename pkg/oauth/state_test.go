package oauth

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomState_DiscardsBiasedBytes(t *testing.T) {
	assert.Equal(t, 248, stateCutoff)

	// The reader is consumed StateLength bytes at a time; the rejected bytes
	// force a second read.
	src := []byte{
		0, 255, 61, 248, 62, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 247,
		11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26,
	}
	state, err := randomState(bytes.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "A9ABCDEFGHIJK9LM", state)
}

func TestRandomState_ShortReader(t *testing.T) {
	_, err := randomState(bytes.NewReader(make([]byte, StateLength-1)))
	assert.Error(t, err)
}
