package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riichi-score-go/game"
	"riichi-score-go/hand"
	"riichi-score-go/tile"
	"riichi-score-go/yaku"
)

func TestBasePointTiers(t *testing.T) {
	rules := DefaultRules()

	for _, tc := range []struct {
		han, fu int
		points  int
		limit   Limit
	}{
		{1, 30, 240, LimitNone},
		{2, 40, 640, LimitNone},
		{3, 30, 960, LimitNone},
		{4, 40, 2000, LimitMangan}, // 2560 raw, capped
		{5, 30, 2000, LimitMangan},
		{6, 30, 3000, LimitHaneman},
		{7, 70, 3000, LimitHaneman},
		{8, 20, 4000, LimitBaiman},
		{10, 30, 4000, LimitBaiman},
		{11, 30, 6000, LimitSanbaiman},
		{13, 30, 8000, LimitYakuman},
		{20, 30, 8000, LimitYakuman},
	} {
		points, limit := BasePoints(tc.han, tc.fu, rules)
		assert.Equal(t, tc.points, points, "han=%d fu=%d", tc.han, tc.fu)
		assert.Equal(t, tc.limit, limit, "han=%d fu=%d", tc.han, tc.fu)
	}
}

func TestKiriageMangan(t *testing.T) {
	points, limit := BasePoints(4, 30, Rules{KiriageMangan: true})
	assert.Equal(t, 2000, points)
	assert.Equal(t, LimitMangan, limit)

	points, limit = BasePoints(4, 30, Rules{})
	assert.Equal(t, 1920, points)
	assert.Equal(t, LimitNone, limit)
}

func TestRoundUp100(t *testing.T) {
	assert.Equal(t, 0, RoundUp100(0))
	assert.Equal(t, 100, RoundUp100(1))
	assert.Equal(t, 1000, RoundUp100(960))
	assert.Equal(t, 1000, RoundUp100(1000))
	assert.Equal(t, 1100, RoundUp100(1001))
}

func scoreHand(t *testing.T, in *hand.Input, rules Rules) *Result {
	t.Helper()
	org, err := hand.Organize(in)
	require.NoError(t, err)
	res, err := yaku.Evaluate(org, &in.Player, &in.Game, in.Win)
	require.NoError(t, err)
	out, err := Calculate(res, &in.Player, &in.Game, in.Win, rules)
	require.NoError(t, err)
	return out
}

func TestPinfuTsumoScore(t *testing.T) {
	in := &hand.Input{
		Tiles:       tile.MustParse("234567m345678p44s"),
		WinningTile: tile.Pin(8),
		Player:      game.PlayerContext{SeatWind: tile.South, IsMenzen: true},
		Game:        game.GameContext{RoundWind: tile.East},
		Win:         game.Tsumo,
	}
	out := scoreHand(t, in, DefaultRules())

	// Pinfu, menzen tsumo, tanyao: 3 han 20 fu, base 640.
	assert.Equal(t, 3, out.Han)
	assert.Equal(t, 20, out.Fu)
	assert.Equal(t, 640, out.BasePoints)
	assert.Equal(t, 1300, out.TsumoDealerPay)
	assert.Equal(t, 700, out.TsumoNonDealerPay)
	assert.Equal(t, 2700, out.Total)
}

func TestDealerRonPaysSixfold(t *testing.T) {
	in := &hand.Input{
		Tiles:       tile.MustParse("234567m345678p44s"),
		WinningTile: tile.Pin(8),
		Player:      game.PlayerContext{SeatWind: tile.East, IsDealer: true, IsMenzen: true},
		Game:        game.GameContext{RoundWind: tile.East},
		Win:         game.Ron,
	}
	out := scoreHand(t, in, DefaultRules())

	// Pinfu and tanyao on a dealer ron: 2 han 30 fu, base 480.
	assert.Equal(t, 2, out.Han)
	assert.Equal(t, 30, out.Fu)
	assert.Equal(t, 2900, out.RonValue)
	assert.Equal(t, 2900, out.Total)
}

func TestHonbaAndSticks(t *testing.T) {
	in := &hand.Input{
		Tiles:       tile.MustParse("234567m345678p44s"),
		WinningTile: tile.Pin(8),
		Player:      game.PlayerContext{SeatWind: tile.South, IsMenzen: true},
		Game:        game.GameContext{RoundWind: tile.East, Honba: 2, RiichiSticks: 1},
		Win:         game.Ron,
	}
	out := scoreHand(t, in, DefaultRules())

	// 2 han 30 fu non-dealer ron: 480 * 4 = 1920 -> 2000, plus 600
	// honba and a 1000-point stick.
	assert.Equal(t, 2600, out.RonValue)
	assert.Equal(t, 3600, out.Total)
}

func TestChiitoitsuFu(t *testing.T) {
	in := &hand.Input{
		Tiles:       tile.MustParse("1122m3344p556677s"),
		WinningTile: tile.Sou(7),
		Player:      game.PlayerContext{SeatWind: tile.South, IsMenzen: true},
		Game:        game.GameContext{RoundWind: tile.East},
		Win:         game.Ron,
	}
	out := scoreHand(t, in, DefaultRules())
	assert.Equal(t, 25, out.Fu)
	assert.Equal(t, 2, out.Han)
}

func TestTripletFu(t *testing.T) {
	// 222m 555m concealed, 777p finished by the discard, 456s, pair 44s.
	// 20 base + 10 menzen ron + 4 + 4 + 2 = 40.
	in := &hand.Input{
		Tiles:       tile.MustParse("222m555m777p456s44s"),
		WinningTile: tile.Pin(7),
		Player:      game.PlayerContext{SeatWind: tile.South, IsMenzen: true, IsRiichi: true},
		Game:        game.GameContext{RoundWind: tile.East},
		Win:         game.Ron,
	}
	out := scoreHand(t, in, DefaultRules())
	assert.Equal(t, 40, out.Fu)
}

func TestDoubleWindPairFu(t *testing.T) {
	// An East pair for the East dealer in the East round earns both wind
	// bonuses: 20 base + 10 menzen ron + 8 (999s) + 4 pair = 42 -> 50.
	in := &hand.Input{
		Tiles:       tile.MustParse("234m567m678p999s EE"),
		WinningTile: tile.Pin(8),
		Player:      game.PlayerContext{SeatWind: tile.East, IsDealer: true, IsMenzen: true, IsRiichi: true},
		Game:        game.GameContext{RoundWind: tile.East},
		Win:         game.Ron,
	}
	out := scoreHand(t, in, DefaultRules())
	assert.Equal(t, 50, out.Fu)
}

func TestYakumanScore(t *testing.T) {
	in := &hand.Input{
		Tiles:       tile.MustParse("222m555m777p999s44s"),
		WinningTile: tile.Sou(9),
		Player:      game.PlayerContext{SeatWind: tile.South, IsMenzen: true},
		Game:        game.GameContext{RoundWind: tile.East},
		Win:         game.Tsumo,
	}
	out := scoreHand(t, in, DefaultRules())

	assert.Equal(t, LimitYakuman, out.Limit)
	assert.Equal(t, 1, out.YakumanUnits)
	assert.Equal(t, 8000, out.BasePoints)
	assert.Equal(t, 16000, out.TsumoDealerPay)
	assert.Equal(t, 8000, out.TsumoNonDealerPay)
	assert.Equal(t, 32000, out.Total)
}

func TestDoubleYakumanKnob(t *testing.T) {
	in := &hand.Input{
		Tiles:       tile.MustParse("222m555m777p999s44s"),
		WinningTile: tile.Sou(4),
		Player:      game.PlayerContext{SeatWind: tile.South, IsMenzen: true},
		Game:        game.GameContext{RoundWind: tile.East},
		Win:         game.Ron,
	}

	out := scoreHand(t, in, DefaultRules())
	assert.Equal(t, 2, out.YakumanUnits)
	assert.Equal(t, 16000, out.BasePoints)

	out = scoreHand(t, in, Rules{KiriageMangan: true})
	assert.Equal(t, 1, out.YakumanUnits)
	assert.Equal(t, 8000, out.BasePoints)
}

func TestNoYaku(t *testing.T) {
	in := &hand.Input{
		Tiles:       append(tile.MustParse("345m567p888s55s"), tile.MustParse("111m")...),
		WinningTile: tile.Sou(5),
		OpenMelds:   []hand.DeclaredMeld{{Type: hand.TypeTriplet, Tile: tile.Man(1)}},
		Player:      game.PlayerContext{SeatWind: tile.South},
		Game:        game.GameContext{RoundWind: tile.East},
		Win:         game.Ron,
	}
	org, err := hand.Organize(in)
	require.NoError(t, err)
	res, err := yaku.Evaluate(org, &in.Player, &in.Game, in.Win)
	require.NoError(t, err)
	_, err = Calculate(res, &in.Player, &in.Game, in.Win, DefaultRules())
	assert.ErrorIs(t, err, ErrNoYaku)
}
