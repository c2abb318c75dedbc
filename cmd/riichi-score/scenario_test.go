package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	riichiscore "riichi-score-go"
	"riichi-score-go/game"
	"riichi-score-go/score"
	"riichi-score-go/tile"
)

func TestScenarioRoundTrip(t *testing.T) {
	scen, err := LoadScenario(filepath.Join("testdata", "riichi_tsumo.yaml"))
	require.NoError(t, err)

	in, err := scen.Input()
	require.NoError(t, err)
	assert.Equal(t, tile.Pin(8), in.WinningTile)
	assert.Equal(t, game.Tsumo, in.Win)
	assert.Equal(t, tile.South, in.Player.SeatWind)
	assert.True(t, in.Player.IsMenzen)
	assert.True(t, in.Player.IsRiichi)
	assert.Equal(t, []tile.Tile{tile.Sou(3)}, in.Game.DoraIndicators)

	out, err := riichiscore.Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, 7, out.Han)
	assert.Equal(t, score.LimitHaneman, out.Limit)
}

func TestScenarioRejectsBadWinType(t *testing.T) {
	scen := &Scenario{
		Hand:        "234567m345678p44s",
		WinningTile: "8p",
		Win:         "steal",
		Player:      PlayerSpec{SeatWind: "S"},
		Game:        GameSpec{RoundWind: "E"},
	}
	_, err := scen.Input()
	assert.Error(t, err)
}

func TestScenarioRejectsBadMeldType(t *testing.T) {
	scen := &Scenario{
		Hand:        "234567m345678p44s",
		WinningTile: "8p",
		Win:         "ron",
		OpenMelds:   []MeldSpec{{Type: "pair", Tile: "4s"}},
		Player:      PlayerSpec{SeatWind: "S"},
		Game:        GameSpec{RoundWind: "E"},
	}
	_, err := scen.Input()
	assert.Error(t, err)
}
