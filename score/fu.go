package score

import (
	"riichi-score-go/game"
	"riichi-score-go/hand"
	"riichi-score-go/yaku"
)

// Fu computes the fu of an evaluated hand. Seven pairs is a flat 25 with
// no rounding; pinfu fixes 20 on tsumo and 30 on ron. Everything else
// starts from the base 20, collects its bonuses, and rounds up to the next
// 10 with a floor of 30. Yakuman hands score from fixed base points, so
// their fu is reported as 0.
func Fu(res *yaku.Result, p *game.PlayerContext, g *game.GameContext, win game.WinType) int {
	if res.IsYakuman() {
		return 0
	}
	if res.Shape.SevenPairs != nil {
		return 25
	}
	h := res.Shape.Standard
	pinfu := res.Has(yaku.Pinfu)

	if pinfu {
		if win == game.Tsumo {
			return 20
		}
		return 30
	}

	fu := 20
	if win == game.Tsumo {
		fu += 2
	}
	if p.IsMenzen && win == game.Ron {
		fu += 10
	}

	// The wait bonus applies when some reading of the win was a closed,
	// edge, or pair wait. With pinfu already excluded, taking the bonus
	// whenever such a reading exists picks the higher-scoring
	// interpretation.
	if h.HasWait(hand.WaitKanchan) || h.HasWait(hand.WaitPenchan) || h.HasWait(hand.WaitTanki) {
		fu += 2
	}

	if h.PairTile.IsDragon() {
		fu += 2
	}
	// Seat and round wind each contribute, so a double wind pair is worth 4.
	if h.PairTile == p.SeatWind {
		fu += 2
	}
	if h.PairTile == g.RoundWind {
		fu += 2
	}

	for _, grp := range h.Groups {
		if grp.Type == hand.TypeSequence {
			continue
		}
		base := 2
		if grp.Type == hand.TypeQuad {
			base = 8
		}
		if grp.First().IsTerminalOrHonor() {
			base *= 2
		}
		if concealedForFu(grp, h, win) {
			base *= 2
		}
		fu += base
	}

	fu = (fu + 9) / 10 * 10
	if fu < 30 {
		fu = 30
	}
	return fu
}

// concealedForFu reports whether a triplet or quad earns the concealed
// bonus. A triplet finished by the winning discard counts as open.
func concealedForFu(g hand.Group, h *hand.StandardHand, win game.WinType) bool {
	if !g.IsConcealed {
		return false
	}
	if win == game.Ron && g.Type == hand.TypeTriplet && g.First() == h.WinningTile {
		return false
	}
	return true
}
