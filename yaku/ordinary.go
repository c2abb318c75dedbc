package yaku

import (
	"riichi-score-go/game"
	"riichi-score-go/hand"
	"riichi-score-go/tile"
)

// standardYaku collects every ordinary pattern of a standard hand. Yakuhai
// entries repeat once per qualifying triplet, and a triplet of the seat
// wind in the seat's own round earns both wind patterns.
func standardYaku(h *hand.StandardHand, p *game.PlayerContext, g *game.GameContext, win game.WinType) []Yaku {
	var list []Yaku
	menzen := p.IsMenzen
	tiles := h.AllTiles()

	switch {
	case p.IsDoubleRiichi:
		list = append(list, DoubleRiichi)
	case p.IsRiichi:
		list = append(list, Riichi)
	}
	if p.IsIppatsu {
		list = append(list, Ippatsu)
	}
	if win == game.Tsumo && menzen {
		list = append(list, MenzenTsumo)
	}
	if g.IsHaitei {
		list = append(list, HaiteiRaoyue)
	}
	if g.IsHoutei {
		list = append(list, HouteiRaoyui)
	}
	if g.IsRinshan {
		list = append(list, RinshanKaihou)
	}
	if g.IsChankan {
		list = append(list, Chankan)
	}

	for _, grp := range h.Groups {
		if grp.Type == hand.TypeSequence {
			continue
		}
		t := grp.First()
		if t.IsDragon() {
			list = append(list, YakuhaiDragon)
		}
		if t == p.SeatWind {
			list = append(list, YakuhaiSeatWind)
		}
		if t == g.RoundWind {
			list = append(list, YakuhaiRoundWind)
		}
	}

	if menzen && tripletCount(h) == 0 &&
		!h.PairTile.IsDragon() && h.PairTile != p.SeatWind && h.PairTile != g.RoundWind &&
		h.HasWait(hand.WaitRyanmen) {
		list = append(list, Pinfu)
	}

	if allSimples(tiles) {
		list = append(list, Tanyao)
	}

	if menzen {
		switch duplicateSequencePairs(h) {
		case 2:
			list = append(list, Ryanpeikou)
		case 1:
			list = append(list, Iipeikou)
		}
	}

	if hasSanshokuDoujun(h) {
		list = append(list, SanshokuDoujun)
	}
	if hasIttsu(h) {
		list = append(list, Ittsu)
	}

	// Four triplets and three concealed triplets never combine: an
	// all-triplet hand scores the former only.
	if tripletCount(h) == 4 {
		list = append(list, Toitoi)
	} else if concealedTriplets(h, win) == 3 {
		list = append(list, Sanankou)
	}

	if quadCount(h) == 3 {
		list = append(list, Sankantsu)
	}
	if hasSanshokuDoukou(h) {
		list = append(list, SanshokuDoukou)
	}

	if dragonTriplets(h) == 2 && h.PairTile.IsDragon() {
		list = append(list, Shousangen)
	}

	if allTerminalsOrHonors(tiles) {
		if !allTerminals(tiles) {
			list = append(list, Honroutou)
		}
	} else if outside, pure := outsideHand(h); outside {
		if pure && menzen {
			list = append(list, Junchan)
		} else {
			list = append(list, Chanta)
		}
	}

	switch flushProfile(tiles) {
	case flushPure:
		list = append(list, Chinitsu)
	case flushMixed:
		list = append(list, Honitsu)
	}

	// A win off a replacement draw or a robbed quad did not come through
	// an ordinary two-sided wait.
	if g.IsRinshan || g.IsChankan {
		list = removeYaku(list, Pinfu)
	}

	return list
}

// sevenPairsYaku collects the patterns a seven-pairs hand can carry. The
// shape rules out every meld-based pattern.
func sevenPairsYaku(s *hand.SevenPairs, p *game.PlayerContext, g *game.GameContext, win game.WinType) []Yaku {
	list := []Yaku{Chiitoitsu}
	tiles := s.AllTiles()

	switch {
	case p.IsDoubleRiichi:
		list = append(list, DoubleRiichi)
	case p.IsRiichi:
		list = append(list, Riichi)
	}
	if p.IsIppatsu {
		list = append(list, Ippatsu)
	}
	if win == game.Tsumo {
		list = append(list, MenzenTsumo)
	}
	if g.IsHaitei {
		list = append(list, HaiteiRaoyue)
	}
	if g.IsHoutei {
		list = append(list, HouteiRaoyui)
	}

	if allSimples(tiles) {
		list = append(list, Tanyao)
	}
	if allTerminalsOrHonors(tiles) {
		list = append(list, Honroutou)
	}

	switch flushProfile(tiles) {
	case flushPure:
		list = append(list, Chinitsu)
	case flushMixed:
		list = append(list, Honitsu)
	}

	return list
}

func removeYaku(list []Yaku, y Yaku) []Yaku {
	out := list[:0]
	for _, x := range list {
		if x != y {
			out = append(out, x)
		}
	}
	return out
}

func dragonTriplets(h *hand.StandardHand) int {
	n := 0
	for _, g := range h.Groups {
		if g.Type != hand.TypeSequence && g.First().IsDragon() {
			n++
		}
	}
	return n
}

// duplicateSequencePairs counts pairs of identical sequences among the
// four groups: one pair for iipeikou, two for ryanpeikou.
func duplicateSequencePairs(h *hand.StandardHand) int {
	counts := map[tile.Tile]int{}
	for _, g := range h.Groups {
		if g.Type == hand.TypeSequence {
			counts[g.First()]++
		}
	}
	pairs := 0
	for _, n := range counts {
		pairs += n / 2
	}
	return pairs
}

// hasSanshokuDoujun looks for the same sequence in all three numbered
// suits.
func hasSanshokuDoujun(h *hand.StandardHand) bool {
	var starts [3][10]bool
	for _, g := range h.Groups {
		if g.Type == hand.TypeSequence {
			starts[int(g.First().Suit)][g.First().Value] = true
		}
	}
	for v := 1; v <= 7; v++ {
		if starts[tile.SuitMan][v] && starts[tile.SuitPin][v] && starts[tile.SuitSou][v] {
			return true
		}
	}
	return false
}

// hasIttsu looks for the 1-2-3, 4-5-6, 7-8-9 run of a single suit.
func hasIttsu(h *hand.StandardHand) bool {
	var starts [3][10]bool
	for _, g := range h.Groups {
		if g.Type == hand.TypeSequence {
			starts[int(g.First().Suit)][g.First().Value] = true
		}
	}
	for s := 0; s < 3; s++ {
		if starts[s][1] && starts[s][4] && starts[s][7] {
			return true
		}
	}
	return false
}

// hasSanshokuDoukou looks for the same-rank triplet in all three numbered
// suits.
func hasSanshokuDoukou(h *hand.StandardHand) bool {
	var ranks [3][10]bool
	for _, g := range h.Groups {
		if g.Type != hand.TypeSequence && g.First().IsNumbered() {
			ranks[int(g.First().Suit)][g.First().Value] = true
		}
	}
	for v := 1; v <= 9; v++ {
		if ranks[tile.SuitMan][v] && ranks[tile.SuitPin][v] && ranks[tile.SuitSou][v] {
			return true
		}
	}
	return false
}

// outsideHand reports whether every group and the pair contain a terminal
// or honor, and whether honors are absent entirely (the stricter tier).
func outsideHand(h *hand.StandardHand) (outside, pure bool) {
	pure = true
	for _, unit := range h.AllGroups() {
		hasYaochuu := false
		for _, t := range unit {
			if t.IsTerminalOrHonor() {
				hasYaochuu = true
			}
			if t.IsHonor() {
				pure = false
			}
		}
		if !hasYaochuu {
			return false, false
		}
	}
	return true, pure
}

type flush int

const (
	flushNone flush = iota
	flushMixed
	flushPure
)

// flushProfile classifies the hand's suit usage: one numbered suit alone,
// one numbered suit with honors, or neither.
func flushProfile(tiles []tile.Tile) flush {
	suit := tile.Suit(-1)
	honors := false
	for _, t := range tiles {
		if t.IsHonor() {
			honors = true
			continue
		}
		if suit < 0 {
			suit = t.Suit
		} else if suit != t.Suit {
			return flushNone
		}
	}
	if suit < 0 {
		// Honors only; the all-honors yakuman owns that shape.
		return flushNone
	}
	if honors {
		return flushMixed
	}
	return flushPure
}
