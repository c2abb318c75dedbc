package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < Count; i++ {
		assert.Equal(t, i, FromIndex(i).Index())
	}
	for _, tl := range All() {
		assert.Equal(t, tl, FromIndex(tl.Index()))
	}
}

func TestIndexLayout(t *testing.T) {
	assert.Equal(t, 0, Man(1).Index())
	assert.Equal(t, 8, Man(9).Index())
	assert.Equal(t, 9, Pin(1).Index())
	assert.Equal(t, 18, Sou(1).Index())
	assert.Equal(t, 27, East.Index())
	assert.Equal(t, 30, North.Index())
	assert.Equal(t, 31, White.Index())
	assert.Equal(t, 33, Red.Index())
}

func TestFromIndexPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { FromIndex(-1) })
	assert.Panics(t, func() { FromIndex(Count) })
}

func TestIndicates(t *testing.T) {
	for _, tc := range []struct {
		indicator, dora Tile
	}{
		{Man(4), Man(5)},
		{Man(9), Man(1)},
		{Pin(9), Pin(1)},
		{Sou(9), Sou(1)},
		{East, South},
		{North, East},
		{White, Green},
		{Red, White},
	} {
		assert.Equal(t, tc.dora, tc.indicator.Indicates(), "indicator %s", tc.indicator)
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, Man(1).IsTerminal())
	assert.False(t, Man(5).IsTerminal())
	assert.False(t, East.IsTerminal())
	assert.True(t, East.IsTerminalOrHonor())
	assert.True(t, Man(5).IsSimple())
	assert.False(t, Sou(9).IsSimple())
	assert.True(t, Green.IsGreen())
	assert.True(t, Sou(6).IsGreen())
	assert.False(t, Sou(5).IsGreen())
	assert.False(t, White.IsGreen())
}

func TestParse(t *testing.T) {
	tiles, err := Parse("123m55p E w")
	require.NoError(t, err)
	assert.Equal(t, []Tile{Man(1), Man(2), Man(3), Pin(5), Pin(5), East, White}, tiles)

	_, err = Parse("12x")
	assert.Error(t, err)

	_, err = Parse("12")
	assert.Error(t, err)

	_, err = Parse("12E")
	assert.Error(t, err)
}

func TestParseOne(t *testing.T) {
	tl, err := ParseOne("7s")
	require.NoError(t, err)
	assert.Equal(t, Sou(7), tl)

	_, err = ParseOne("77s")
	assert.Error(t, err)
}

func TestSort(t *testing.T) {
	tiles := MustParse("r 9s 1m E 5p")
	Sort(tiles)
	assert.Equal(t, []Tile{Man(1), Pin(5), Sou(9), East, Red}, tiles)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Man 1, East, Red", Names(MustParse("1m E r")))
	assert.Equal(t, "", Names(nil))
}

func TestCountTiles(t *testing.T) {
	counts := CountTiles(MustParse("1122m w"))
	assert.Equal(t, 2, counts[Man(1).Index()])
	assert.Equal(t, 2, counts[Man(2).Index()])
	assert.Equal(t, 1, counts[White.Index()])
}
