package yaku

import (
	"riichi-score-go/game"
	"riichi-score-go/hand"
	"riichi-score-go/tile"
)

// standardYakuman collects the hand-shape yakuman of a standard
// decomposition.
func standardYakuman(h *hand.StandardHand, nineGates bool, win game.WinType) []Yaku {
	var list []Yaku
	tiles := h.AllTiles()

	if allHonors(tiles) {
		list = append(list, Tsuuiisou)
	}
	if allTerminals(tiles) {
		list = append(list, Chinroutou)
	}
	if allGreen(tiles) {
		list = append(list, Ryuuiisou)
	}

	if quadCount(h) == 4 {
		list = append(list, Suukantsu)
	}

	if concealedTriplets(h, win) == 4 {
		if h.HasWait(hand.WaitTanki) {
			list = append(list, SuuankouTanki)
		} else {
			list = append(list, Suuankou)
		}
	}

	dragons, winds := 0, 0
	for _, g := range h.Groups {
		if g.Type == hand.TypeSequence {
			continue
		}
		if g.First().IsDragon() {
			dragons++
		}
		if g.First().IsWind() {
			winds++
		}
	}
	if dragons == 3 {
		list = append(list, Daisangen)
	}
	if winds == 4 {
		list = append(list, Daisuushi)
	} else if winds == 3 && h.PairTile.IsWind() {
		list = append(list, Shousuushi)
	}

	if nineGates {
		if extra, ok := nineGatesProfile(h); ok && extra == h.WinningTile {
			list = append(list, JunseiChuurenPoutou)
		} else {
			list = append(list, ChuurenPoutou)
		}
	}

	return list
}

// resolveYakumanOverrides drops each ordinary yakuman whose doubled
// variant is also present.
func resolveYakumanOverrides(list []Yaku) []Yaku {
	override := map[Yaku]Yaku{
		Suuankou:      SuuankouTanki,
		KokushiMusou:  KokushiMusouJuusanmen,
		ChuurenPoutou: JunseiChuurenPoutou,
	}
	has := func(y Yaku) bool {
		for _, x := range list {
			if x == y {
				return true
			}
		}
		return false
	}
	out := list[:0]
	for _, y := range list {
		if doubled, ok := override[y]; ok && has(doubled) {
			continue
		}
		out = append(out, y)
	}
	return out
}

// isNineGates reports whether the hand has the chuuren poutou profile.
func isNineGates(h *hand.StandardHand) bool {
	_, ok := nineGatesProfile(h)
	return ok
}

// nineGatesProfile checks for a fully concealed single-suit hand holding
// 1112345678999 of that suit plus exactly one duplicate, and returns the
// duplicated tile.
func nineGatesProfile(h *hand.StandardHand) (extra tile.Tile, ok bool) {
	if !h.PairTile.IsNumbered() {
		return tile.Tile{}, false
	}
	suit := h.PairTile.Suit
	for _, g := range h.Groups {
		if !g.IsConcealed {
			return tile.Tile{}, false
		}
	}

	var counts [10]int
	for _, t := range h.AllTiles() {
		if t.Suit != suit {
			return tile.Tile{}, false
		}
		counts[t.Value]++
	}

	found := false
	for v := 1; v <= 9; v++ {
		want := 1
		if v == 1 || v == 9 {
			want = 3
		}
		switch counts[v] {
		case want:
		case want + 1:
			if found {
				return tile.Tile{}, false
			}
			extra = tile.Tile{Suit: suit, Value: v}
			found = true
		default:
			return tile.Tile{}, false
		}
	}
	if !found {
		return tile.Tile{}, false
	}
	return extra, true
}

// concealedTriplets counts triplets and quads that stay concealed for the
// suuankou and sanankou checks. A triplet finished by the winning discard
// was completed off another player's tile and does not count.
func concealedTriplets(h *hand.StandardHand, win game.WinType) int {
	n := 0
	for _, g := range h.Groups {
		if g.Type == hand.TypeSequence || !g.IsConcealed {
			continue
		}
		if win == game.Ron && g.Type == hand.TypeTriplet && g.First() == h.WinningTile {
			continue
		}
		n++
	}
	return n
}

func quadCount(h *hand.StandardHand) int {
	n := 0
	for _, g := range h.Groups {
		if g.Type == hand.TypeQuad {
			n++
		}
	}
	return n
}

func tripletCount(h *hand.StandardHand) int {
	n := 0
	for _, g := range h.Groups {
		if g.Type != hand.TypeSequence {
			n++
		}
	}
	return n
}

func allHonors(tiles []tile.Tile) bool {
	for _, t := range tiles {
		if !t.IsHonor() {
			return false
		}
	}
	return true
}

func allTerminals(tiles []tile.Tile) bool {
	for _, t := range tiles {
		if !t.IsTerminal() {
			return false
		}
	}
	return true
}

func allTerminalsOrHonors(tiles []tile.Tile) bool {
	for _, t := range tiles {
		if !t.IsTerminalOrHonor() {
			return false
		}
	}
	return true
}

func allSimples(tiles []tile.Tile) bool {
	for _, t := range tiles {
		if !t.IsSimple() {
			return false
		}
	}
	return true
}

func allGreen(tiles []tile.Tile) bool {
	for _, t := range tiles {
		if !t.IsGreen() {
			return false
		}
	}
	return true
}
