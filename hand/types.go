// Package hand turns a raw winning-tile multiset into a structured
// decomposition: four melds and a pair, or the raw counts for the two
// recognized irregular shapes.
package hand

import (
	"riichi-score-go/game"
	"riichi-score-go/tile"
)

// GroupType tags a meld as a sequence, triplet, or quad.
type GroupType int

const (
	TypeSequence GroupType = iota
	TypeTriplet
	TypeQuad
)

func (g GroupType) String() string {
	switch g {
	case TypeSequence:
		return "Sequence"
	case TypeTriplet:
		return "Triplet"
	case TypeQuad:
		return "Quad"
	}
	return "Unknown"
}

// Group is one meld of a decomposed hand. Tiles holds three tiles for a
// sequence or triplet and four for a quad, sorted ascending for sequences.
type Group struct {
	Type        GroupType
	Tiles       []tile.Tile
	IsConcealed bool
}

// First returns the representative tile: the lowest tile of a sequence or
// the repeated tile of a triplet/quad.
func (g Group) First() tile.Tile { return g.Tiles[0] }

// Contains reports whether the group uses the given tile value.
func (g Group) Contains(t tile.Tile) bool {
	switch g.Type {
	case TypeTriplet, TypeQuad:
		return g.Tiles[0] == t
	default:
		return g.Tiles[0] == t || g.Tiles[1] == t || g.Tiles[2] == t
	}
}

func newSequence(first tile.Tile, concealed bool) Group {
	return Group{
		Type: TypeSequence,
		Tiles: []tile.Tile{
			first,
			{Suit: first.Suit, Value: first.Value + 1},
			{Suit: first.Suit, Value: first.Value + 2},
		},
		IsConcealed: concealed,
	}
}

func newTriplet(t tile.Tile, concealed bool) Group {
	return Group{Type: TypeTriplet, Tiles: []tile.Tile{t, t, t}, IsConcealed: concealed}
}

func newQuad(t tile.Tile, concealed bool) Group {
	return Group{Type: TypeQuad, Tiles: []tile.Tile{t, t, t, t}, IsConcealed: concealed}
}

// Wait classifies how the winning tile completed the hand.
type Wait int

const (
	WaitRyanmen Wait = iota // two-sided sequence wait
	WaitTanki               // pair wait
	WaitPenchan             // edge wait (1-2 on 3, 8-9 on 7)
	WaitKanchan             // closed wait (middle of a sequence)
	WaitShanpon             // triplet-pair wait

	WaitKokushiSingle   // thirteen orphans, single-tile wait
	WaitKokushiThirteen // thirteen orphans, thirteen-way wait
	WaitNineSided       // true nine gates
)

func (w Wait) String() string {
	switch w {
	case WaitRyanmen:
		return "Ryanmen"
	case WaitTanki:
		return "Tanki"
	case WaitPenchan:
		return "Penchan"
	case WaitKanchan:
		return "Kanchan"
	case WaitShanpon:
		return "Shanpon"
	case WaitKokushiSingle:
		return "Kokushi single wait"
	case WaitKokushiThirteen:
		return "Kokushi thirteen-sided wait"
	case WaitNineSided:
		return "Nine-sided wait"
	}
	return "Unknown"
}

// StandardHand is a confirmed four-meld, one-pair decomposition.
//
// Waits holds every wait shape consistent with this decomposition, in scan
// order (pair first, then melds). A winning tile can sit in more than one
// group of the same decomposition, so consumers pick the member that serves
// them: pinfu looks for Ryanmen, the single-wait four-concealed upgrade
// looks for Tanki.
type StandardHand struct {
	Groups      [4]Group
	PairTile    tile.Tile
	WinningTile tile.Tile
	Waits       []Wait
}

// HasWait reports whether w is among the consistent wait shapes.
func (h *StandardHand) HasWait(w Wait) bool {
	for _, x := range h.Waits {
		if x == w {
			return true
		}
	}
	return false
}

// AllTiles flattens the hand: pair first, then each meld's tiles.
func (h *StandardHand) AllTiles() []tile.Tile {
	tiles := make([]tile.Tile, 0, 16)
	tiles = append(tiles, h.PairTile, h.PairTile)
	for _, g := range h.Groups {
		tiles = append(tiles, g.Tiles...)
	}
	return tiles
}

// AllGroups returns the five structural units (pair first) as tile lists,
// for checks that inspect every unit.
func (h *StandardHand) AllGroups() [][]tile.Tile {
	groups := make([][]tile.Tile, 0, 5)
	groups = append(groups, []tile.Tile{h.PairTile, h.PairTile})
	for _, g := range h.Groups {
		groups = append(groups, g.Tiles)
	}
	return groups
}

// SevenPairs is the seven-pairs irregular shape. A quad-derived double pair
// appears twice in Pairs. The wait is always Tanki.
type SevenPairs struct {
	Pairs       [7]tile.Tile
	WinningTile tile.Tile
}

// AllTiles flattens the seven pairs into 14 tiles.
func (s *SevenPairs) AllTiles() []tile.Tile {
	tiles := make([]tile.Tile, 0, 14)
	for _, p := range s.Pairs {
		tiles = append(tiles, p, p)
	}
	return tiles
}

// ThirteenOrphans is the thirteen-orphans irregular shape: the 13 required
// terminal/honor kinds with one of them doubled as the pair.
type ThirteenOrphans struct {
	Tiles       [13]tile.Tile
	PairTile    tile.Tile
	WinningTile tile.Tile
	Wait        Wait // WaitKokushiSingle or WaitKokushiThirteen
}

// AllTiles flattens the shape into 14 tiles.
func (k *ThirteenOrphans) AllTiles() []tile.Tile {
	tiles := make([]tile.Tile, 0, 14)
	tiles = append(tiles, k.Tiles[:]...)
	tiles = append(tiles, k.PairTile)
	return tiles
}

// Organization is the decomposer's output. Standard is set when a four-meld
// one-pair shape was found; otherwise Counts holds the full hand's count
// vector for irregular classification.
type Organization struct {
	Standard    *StandardHand
	Counts      [tile.Count]int
	WinningTile tile.Tile
}

// DeclaredMeld names a meld fixed by a prior open call: its type and its
// representative tile (the lowest tile for a sequence).
type DeclaredMeld struct {
	Type GroupType
	Tile tile.Tile
}

// Input is the complete caller-supplied description of one winning hand.
// Tiles holds every tile the winner ends with, including the winning tile
// and the tiles inside declared melds.
type Input struct {
	Tiles       []tile.Tile
	WinningTile tile.Tile
	OpenMelds   []DeclaredMeld
	ClosedKans  []tile.Tile
	Player      game.PlayerContext
	Game        game.GameContext
	Win         game.WinType
}
