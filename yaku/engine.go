package yaku

import (
	"errors"

	"riichi-score-go/game"
	"riichi-score-go/hand"
	"riichi-score-go/tile"
)

// ErrInvalidHand is returned when the tiles form neither a standard shape
// nor one of the recognized irregular shapes.
var ErrInvalidHand = errors.New("hand is not a standard, seven pairs, or thirteen orphans shape")

// Shape is the classified form the evaluated hand took. Exactly one of the
// three pointers is set; NineGates annotates a Standard hand whose tile
// profile is chuuren poutou.
type Shape struct {
	Standard   *hand.StandardHand
	SevenPairs *hand.SevenPairs
	Orphans    *hand.ThirteenOrphans
	NineGates  bool
}

// AllTiles flattens the classified hand.
func (s *Shape) AllTiles() []tile.Tile {
	switch {
	case s.Standard != nil:
		return s.Standard.AllTiles()
	case s.SevenPairs != nil:
		return s.SevenPairs.AllTiles()
	default:
		return s.Orphans.AllTiles()
	}
}

// Result is the full pattern evaluation of one winning hand. List holds
// every granted pattern; the three dora entries appear at most once each,
// with their occurrence counts alongside.
type Result struct {
	Shape Shape
	List  []Yaku

	DoraCount    int
	UraDoraCount int
	AkaDoraCount int
}

// Has reports whether the pattern was granted.
func (r *Result) Has(y Yaku) bool {
	for _, x := range r.List {
		if x == y {
			return true
		}
	}
	return false
}

// IsYakuman reports whether any granted pattern is a yakuman.
func (r *Result) IsYakuman() bool {
	for _, y := range r.List {
		if y.IsYakuman() {
			return true
		}
	}
	return false
}

// YakumanUnits sums the yakuman multipliers over the granted patterns.
func (r *Result) YakumanUnits() int {
	units := 0
	for _, y := range r.List {
		units += y.YakumanUnits()
	}
	return units
}

// TotalHan sums han over the granted patterns, counting each dora entry
// once per occurrence.
func (r *Result) TotalHan(menzen bool) int {
	han := 0
	for _, y := range r.List {
		switch y {
		case Dora:
			han += r.DoraCount
		case UraDora:
			han += r.UraDoraCount
		case AkaDora:
			han += r.AkaDoraCount
		default:
			han += y.Han(menzen)
		}
	}
	return han
}

// Evaluate classifies the organized hand and runs the pattern stages:
// game-state yakuman, hand-shape yakuman with override resolution, then
// ordinary patterns and dora counting when no yakuman applies. An empty
// List with no error means the hand has no scoring pattern.
func Evaluate(org hand.Organization, p *game.PlayerContext, g *game.GameContext, win game.WinType) (*Result, error) {
	res := &Result{}

	if org.Standard != nil {
		res.Shape.Standard = org.Standard
		res.Shape.NineGates = isNineGates(org.Standard)
	} else if k, ok := hand.CheckThirteenOrphans(org.Counts, org.WinningTile); ok {
		res.Shape.Orphans = k
	} else if s, ok := hand.CheckSevenPairs(org.Counts, org.WinningTile); ok {
		res.Shape.SevenPairs = s
	} else {
		return nil, ErrInvalidHand
	}

	var yakuman []Yaku
	if g.IsTenhou {
		yakuman = append(yakuman, Tenhou)
	}
	if g.IsChiihou {
		yakuman = append(yakuman, Chiihou)
	}
	if g.IsRenhou {
		yakuman = append(yakuman, Renhou)
	}

	switch {
	case res.Shape.Orphans != nil:
		if res.Shape.Orphans.Wait == hand.WaitKokushiThirteen {
			yakuman = append(yakuman, KokushiMusouJuusanmen)
		} else {
			yakuman = append(yakuman, KokushiMusou)
		}
	case res.Shape.SevenPairs != nil:
		if allHonors(res.Shape.SevenPairs.AllTiles()) {
			yakuman = append(yakuman, Tsuuiisou)
		}
	default:
		yakuman = append(yakuman, standardYakuman(res.Shape.Standard, res.Shape.NineGates, win)...)
	}

	if len(yakuman) > 0 {
		res.List = resolveYakumanOverrides(yakuman)
		return res, nil
	}

	if res.Shape.SevenPairs != nil {
		res.List = sevenPairsYaku(res.Shape.SevenPairs, p, g, win)
	} else {
		res.List = standardYaku(res.Shape.Standard, p, g, win)
	}

	countBonusTiles(res, p, g)
	return res, nil
}

// countBonusTiles adds the dora entries. A hand with no pattern and no
// riichi declaration earns nothing from dora alone; the hidden indicator
// set only counts under riichi.
func countBonusTiles(res *Result, p *game.PlayerContext, g *game.GameContext) {
	riichi := p.IsRiichi || p.IsDoubleRiichi
	if len(res.List) == 0 && !riichi {
		return
	}
	tiles := res.Shape.AllTiles()

	if n := countDora(tiles, g.DoraIndicators); n > 0 {
		res.DoraCount = n
		res.List = append(res.List, Dora)
	}
	if riichi {
		if n := countDora(tiles, g.UraDoraIndicators); n > 0 {
			res.UraDoraCount = n
			res.List = append(res.List, UraDora)
		}
	}
	if g.NumAkaDora > 0 {
		res.AkaDoraCount = g.NumAkaDora
		res.List = append(res.List, AkaDora)
	}
}

// countDora counts hand tiles matched by any indicator's successor, once
// per occurrence per indicator.
func countDora(tiles []tile.Tile, indicators []tile.Tile) int {
	n := 0
	for _, ind := range indicators {
		d := ind.Indicates()
		for _, t := range tiles {
			if t == d {
				n++
			}
		}
	}
	return n
}
