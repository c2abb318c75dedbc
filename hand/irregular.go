package hand

import "riichi-score-go/tile"

// CheckSevenPairs reports whether the count vector forms seven pairs.
// A count of 4 contributes two pairs of the same tile; any count of 1 or 3
// rejects the shape. The wait is always Tanki.
func CheckSevenPairs(counts [tile.Count]int, winning tile.Tile) (*SevenPairs, bool) {
	s := &SevenPairs{WinningTile: winning}
	units := 0
	for i, n := range counts {
		switch n {
		case 0:
			continue
		case 2:
			if units < 7 {
				s.Pairs[units] = tile.FromIndex(i)
			}
			units++
		case 4:
			if units < 6 {
				s.Pairs[units] = tile.FromIndex(i)
				s.Pairs[units+1] = tile.FromIndex(i)
			}
			units += 2
		default:
			return nil, false
		}
	}
	if units != 7 {
		return nil, false
	}
	return s, true
}

// CheckThirteenOrphans reports whether the count vector is the thirteen
// orphans: every terminal and honor held, one of them doubled, nothing
// else. The wait is thirteen-sided exactly when the doubled tile is the
// winning tile.
func CheckThirteenOrphans(counts [tile.Count]int, winning tile.Tile) (*ThirteenOrphans, bool) {
	k := &ThirteenOrphans{WinningTile: winning}
	seen := 0
	pairs := 0
	for i, n := range counts {
		if n == 0 {
			continue
		}
		t := tile.FromIndex(i)
		if !t.IsTerminalOrHonor() {
			return nil, false
		}
		switch n {
		case 1:
		case 2:
			k.PairTile = t
			pairs++
		default:
			return nil, false
		}
		if seen < 13 {
			k.Tiles[seen] = t
		}
		seen++
	}
	if seen != 13 || pairs != 1 {
		return nil, false
	}
	if k.PairTile == winning {
		k.Wait = WaitKokushiThirteen
	} else {
		k.Wait = WaitKokushiSingle
	}
	return k, true
}
