package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeadOnly(t *testing.T) {
	act, err := Parse("town")
	require.NoError(t, err)
	assert.Equal(t, "town", act.Head)
	assert.Equal(t, 0, act.Len())
}

func TestParsePath(t *testing.T) {
	act, err := Parse("shop:buy:w:2")
	require.NoError(t, err)
	assert.Equal(t, "shop", act.Head)
	assert.Equal(t, "buy", act.At(0))
	assert.Equal(t, "w", act.At(1))

	idx, ok := act.IntAt(2)
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestParseSignedSegment(t *testing.T) {
	act, err := Parse("bet:+50")
	require.NoError(t, err)

	n, ok := act.IntAt(0)
	require.True(t, ok)
	assert.Equal(t, 50, n)
}

func TestPrefixMatching(t *testing.T) {
	act, err := Parse("inv:weapon:set:3")
	require.NoError(t, err)

	assert.True(t, act.HasPrefix("inv", "weapon", "set"))
	assert.True(t, act.HasPrefix("inv"))
	assert.False(t, act.HasPrefix("inv", "armor"))
	assert.False(t, act.Is("inv", "weapon"))
	assert.True(t, act.Is("inv", "weapon", "set", "3"))
}

func TestRoundTrip(t *testing.T) {
	for _, id := range []string{"town", "dng:town", "guess:14", "shop:sellconfirm:yes", "train:Strength"} {
		act, err := Parse(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, act.String())
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", ":", "shop::buy", "1town"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}
