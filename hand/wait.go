package hand

import "fmt"

// determineWaits collects every wait shape consistent with the
// decomposition: the pair and each concealed group are checked against the
// winning tile and every distinct match contributes its shape. A tile that
// could have finished either a triplet or an adjacent sequence therefore
// yields both readings, and consumers probe for the one they need.
func determineWaits(h *StandardHand) []Wait {
	var waits []Wait
	add := func(w Wait) {
		for _, x := range waits {
			if x == w {
				return
			}
		}
		waits = append(waits, w)
	}

	if h.PairTile == h.WinningTile {
		add(WaitTanki)
	}
	for _, g := range h.Groups {
		if !g.IsConcealed || !g.Contains(h.WinningTile) {
			continue
		}
		switch g.Type {
		case TypeTriplet, TypeQuad:
			add(WaitShanpon)
		case TypeSequence:
			switch h.WinningTile {
			case g.Tiles[1]:
				add(WaitKanchan)
			case g.Tiles[0]:
				if g.Tiles[2].Value == 9 {
					add(WaitPenchan)
				} else {
					add(WaitRyanmen)
				}
			case g.Tiles[2]:
				if g.Tiles[0].Value == 1 {
					add(WaitPenchan)
				} else {
					add(WaitRyanmen)
				}
			}
		}
	}

	if len(waits) == 0 {
		// The decomposer only builds hands that contain the winning
		// tile, so an empty set means a bug upstream.
		panic(fmt.Sprintf("winning tile %s not in any group of the decomposition", h.WinningTile))
	}
	return waits
}
