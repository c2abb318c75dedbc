package score

import (
	"errors"

	"riichi-score-go/game"
	"riichi-score-go/yaku"
)

// ErrNoYaku is returned for a hand with no scoring pattern: it cannot
// legally win regardless of dora.
var ErrNoYaku = errors.New("hand has no yaku")

// Result is the final scoring of one winning hand.
type Result struct {
	Han          int
	Fu           int
	List         []yaku.Yaku
	Limit        Limit
	YakumanUnits int
	BasePoints   int

	// Payment amounts. RonValue is what the discarder pays on a ron;
	// the tsumo fields are per-payer amounts. Total is what the winner
	// receives, honba and riichi sticks included.
	RonValue          int
	TsumoDealerPay    int
	TsumoNonDealerPay int
	Total             int
}

// Calculate turns a pattern evaluation into han, fu, base points, and the
// payment split.
func Calculate(res *yaku.Result, p *game.PlayerContext, g *game.GameContext, win game.WinType, rules Rules) (*Result, error) {
	out := &Result{List: res.List}

	if res.IsYakuman() {
		units := 0
		for _, y := range res.List {
			if !y.IsYakuman() {
				continue
			}
			if rules.DoubleYakuman {
				units += y.YakumanUnits()
			} else {
				units++
			}
		}
		out.YakumanUnits = units
		out.Han = 13 * units
		out.Limit = LimitYakuman
		out.BasePoints = 8000 * units
	} else {
		out.Han = res.TotalHan(p.IsMenzen)
		if out.Han == 0 {
			return nil, ErrNoYaku
		}
		out.Fu = Fu(res, p, g, win)
		out.BasePoints, out.Limit = BasePoints(out.Han, out.Fu, rules)
	}

	pay(out, p, g, win)
	return out, nil
}

func pay(out *Result, p *game.PlayerContext, g *game.GameContext, win game.WinType) {
	base := out.BasePoints
	sticks := g.RiichiSticks * 1000

	if win == game.Ron {
		mult := 4
		if p.IsDealer {
			mult = 6
		}
		out.RonValue = RoundUp100(base*mult) + g.Honba*300
		out.Total = out.RonValue + sticks
		return
	}

	if p.IsDealer {
		out.TsumoNonDealerPay = RoundUp100(base*2) + g.Honba*100
		out.Total = 3*out.TsumoNonDealerPay + sticks
		return
	}
	out.TsumoDealerPay = RoundUp100(base*2) + g.Honba*100
	out.TsumoNonDealerPay = RoundUp100(base) + g.Honba*100
	out.Total = out.TsumoDealerPay + 2*out.TsumoNonDealerPay + sticks
}
