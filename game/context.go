// Package game carries the per-evaluation player and round context. All of
// it is plain immutable data supplied by the caller; nothing here persists
// across scoring calls.
package game

import "riichi-score-go/tile"

// WinType says how the winning tile arrived.
type WinType int

const (
	Tsumo WinType = iota // self-draw
	Ron                  // claimed from a discard
)

func (w WinType) String() string {
	if w == Tsumo {
		return "Tsumo"
	}
	return "Ron"
}

// PlayerContext describes the winning player at the moment of the win.
type PlayerContext struct {
	SeatWind       tile.Tile // one of the four wind tiles
	IsDealer       bool
	IsRiichi       bool
	IsDoubleRiichi bool
	IsIppatsu      bool
	IsMenzen       bool // fully concealed (closed kans allowed)
}

// GameContext describes the round at the moment of the win, including the
// instant-win flags and the dora indicators. Indicators are ordinary data
// here, not table state.
type GameContext struct {
	RoundWind         tile.Tile
	Round             int
	Honba             int
	RiichiSticks      int
	DoraIndicators    []tile.Tile
	UraDoraIndicators []tile.Tile
	NumAkaDora        int // red fives held, declared by the caller

	IsTenhou  bool // dealer wins on the initial deal
	IsChiihou bool // non-dealer wins on the first uninterrupted draw
	IsRenhou  bool // non-dealer rons before their first draw
	IsHaitei  bool // tsumo on the last wall tile
	IsHoutei  bool // ron on the last discard
	IsRinshan bool // tsumo on the replacement tile after a kan
	IsChankan bool // ron robbing an added kan
}
