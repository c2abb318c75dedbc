package hand

import (
	"errors"
	"fmt"

	"riichi-score-go/tile"
)

// ErrBadMeld is returned when a declared meld's tiles are missing from the
// hand's count vector.
var ErrBadMeld = errors.New("declared meld tiles exceed the tiles held")

// Organize validates the input and searches for a standard four-meld,
// one-pair decomposition of the concealed portion. When no candidate pair
// leads to a complete decomposition, the returned Organization carries the
// full hand's count vector so the irregular classifiers can run on it.
func Organize(in *Input) (Organization, error) {
	counts := tile.CountTiles(in.Tiles)
	if err := validate(in, counts); err != nil {
		return Organization{}, err
	}

	// Fixed melds come off the count vector before the search. Closed
	// kans stay concealed; every open call does not.
	concealed := counts
	declared := make([]Group, 0, 4)
	for _, t := range in.ClosedKans {
		if err := subtractMeld(&concealed, DeclaredMeld{Type: TypeQuad, Tile: t}); err != nil {
			return Organization{}, err
		}
		declared = append(declared, newQuad(t, true))
	}
	for _, m := range in.OpenMelds {
		if err := subtractMeld(&concealed, m); err != nil {
			return Organization{}, err
		}
		switch m.Type {
		case TypeSequence:
			declared = append(declared, newSequence(m.Tile, false))
		case TypeTriplet:
			declared = append(declared, newTriplet(m.Tile, false))
		case TypeQuad:
			declared = append(declared, newQuad(m.Tile, false))
		}
	}

	// The wait is read off the concealed part of the hand, so the winning
	// tile must survive the meld subtraction.
	if concealed[in.WinningTile.Index()] == 0 {
		return Organization{}, fmt.Errorf("%w: %s", ErrWinningTileDeclared, in.WinningTile)
	}

	irregular := Organization{Counts: counts, WinningTile: in.WinningTile}
	needed := 4 - len(declared)

	if needed == 0 {
		// Only the pair is left. The winning tile has to be that pair.
		for i, n := range concealed {
			if n == 2 {
				h := &StandardHand{
					PairTile:    tile.FromIndex(i),
					WinningTile: in.WinningTile,
					Waits:       []Wait{WaitTanki},
				}
				copy(h.Groups[:], declared)
				return Organization{Standard: h, WinningTile: in.WinningTile}, nil
			}
		}
		return irregular, nil
	}

	// Try every tile held at least twice as the pair, then backtrack over
	// the remainder. Triplets before sequences, lowest index first, makes
	// the first complete decomposition deterministic.
	for i := 0; i < tile.Count; i++ {
		if concealed[i] < 2 {
			continue
		}
		scratch := concealed
		scratch[i] -= 2
		melds := make([]Group, 0, needed)
		if !findMelds(&scratch, &melds) || len(melds) != needed {
			continue
		}
		h := &StandardHand{
			PairTile:    tile.FromIndex(i),
			WinningTile: in.WinningTile,
		}
		copy(h.Groups[:], declared)
		copy(h.Groups[len(declared):], melds)
		h.Waits = determineWaits(h)
		return Organization{Standard: h, WinningTile: in.WinningTile}, nil
	}

	return irregular, nil
}

// findMelds consumes counts meld by meld, appending each found group to
// melds. It succeeds when the vector reaches zero everywhere.
func findMelds(counts *[tile.Count]int, melds *[]Group) bool {
	first := -1
	for i, n := range *counts {
		if n > 0 {
			first = i
			break
		}
	}
	if first < 0 {
		return true
	}
	t := tile.FromIndex(first)

	if counts[first] >= 3 {
		counts[first] -= 3
		*melds = append(*melds, newTriplet(t, true))
		if findMelds(counts, melds) {
			return true
		}
		*melds = (*melds)[:len(*melds)-1]
		counts[first] += 3
	}

	if t.IsNumbered() && t.Value <= 7 && counts[first+1] > 0 && counts[first+2] > 0 {
		counts[first]--
		counts[first+1]--
		counts[first+2]--
		*melds = append(*melds, newSequence(t, true))
		if findMelds(counts, melds) {
			return true
		}
		*melds = (*melds)[:len(*melds)-1]
		counts[first]++
		counts[first+1]++
		counts[first+2]++
	}

	return false
}

func subtractMeld(counts *[tile.Count]int, m DeclaredMeld) error {
	i := m.Tile.Index()
	switch m.Type {
	case TypeSequence:
		if counts[i] < 1 || counts[i+1] < 1 || counts[i+2] < 1 {
			return fmt.Errorf("%w: sequence from %s", ErrBadMeld, m.Tile)
		}
		counts[i]--
		counts[i+1]--
		counts[i+2]--
	case TypeTriplet:
		if counts[i] < 3 {
			return fmt.Errorf("%w: triplet of %s", ErrBadMeld, m.Tile)
		}
		counts[i] -= 3
	case TypeQuad:
		if counts[i] < 4 {
			return fmt.Errorf("%w: quad of %s", ErrBadMeld, m.Tile)
		}
		counts[i] -= 4
	}
	return nil
}
