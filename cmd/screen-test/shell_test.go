package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := parseColor("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, uint16(0xf800), c)

	c, err = parseColor("00ff00")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x07e0), c)

	for _, bad := range []string{"", "zz", "1000000"} {
		_, err = parseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseArg(t *testing.T) {
	assert.Equal(t, 128, parseArg("128"))
	assert.Equal(t, true, parseArg("true"))
	assert.Equal(t, "on", parseArg("on"))
}
