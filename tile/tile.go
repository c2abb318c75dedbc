// Package tile defines the 34 distinct riichi mahjong tile values, the
// canonical dense index over them, and the dora successor rule.
package tile

import "fmt"

// Suit identifies the tile family. Numbered suits come before honors so
// that Index ordering matches the conventional man < pin < sou < winds <
// dragons sort.
type Suit int

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
	SuitWind
	SuitDragon
)

func (s Suit) String() string {
	switch s {
	case SuitMan:
		return "Man"
	case SuitPin:
		return "Pin"
	case SuitSou:
		return "Sou"
	case SuitWind:
		return "Wind"
	case SuitDragon:
		return "Dragon"
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// Tile is an immutable tile value. Numbered suits use Value 1-9; winds use
// 1-4 (East, South, West, North); dragons use 1-3 (White, Green, Red).
type Tile struct {
	Suit  Suit
	Value int
}

// Honor tile values.
var (
	East  = Tile{SuitWind, 1}
	South = Tile{SuitWind, 2}
	West  = Tile{SuitWind, 3}
	North = Tile{SuitWind, 4}
	White = Tile{SuitDragon, 1}
	Green = Tile{SuitDragon, 2}
	Red   = Tile{SuitDragon, 3}
)

// Man returns the n-of-characters tile.
func Man(n int) Tile { return Tile{SuitMan, n} }

// Pin returns the n-of-circles tile.
func Pin(n int) Tile { return Tile{SuitPin, n} }

// Sou returns the n-of-bamboo tile.
func Sou(n int) Tile { return Tile{SuitSou, n} }

var windNames = [...]string{"", "East", "South", "West", "North"}
var dragonNames = [...]string{"", "White", "Green", "Red"}

func (t Tile) String() string {
	switch t.Suit {
	case SuitMan, SuitPin, SuitSou:
		return fmt.Sprintf("%s %d", t.Suit, t.Value)
	case SuitWind:
		if t.Value >= 1 && t.Value <= 4 {
			return windNames[t.Value]
		}
	case SuitDragon:
		if t.Value >= 1 && t.Value <= 3 {
			return dragonNames[t.Value]
		}
	}
	return fmt.Sprintf("%s %d?", t.Suit, t.Value)
}

// IsNumbered reports whether the tile belongs to one of the three numbered
// suits.
func (t Tile) IsNumbered() bool {
	return t.Suit == SuitMan || t.Suit == SuitPin || t.Suit == SuitSou
}

// IsHonor reports whether the tile is a wind or dragon.
func (t Tile) IsHonor() bool {
	return t.Suit == SuitWind || t.Suit == SuitDragon
}

// IsWind reports whether the tile is a wind.
func (t Tile) IsWind() bool { return t.Suit == SuitWind }

// IsDragon reports whether the tile is a dragon.
func (t Tile) IsDragon() bool { return t.Suit == SuitDragon }

// IsTerminal reports whether the tile is a 1 or 9 of a numbered suit.
func (t Tile) IsTerminal() bool {
	return t.IsNumbered() && (t.Value == 1 || t.Value == 9)
}

// IsSimple reports whether the tile is a 2-8 of a numbered suit.
func (t Tile) IsSimple() bool {
	return t.IsNumbered() && t.Value >= 2 && t.Value <= 8
}

// IsTerminalOrHonor reports whether the tile is a terminal or an honor.
func (t Tile) IsTerminalOrHonor() bool {
	return t.IsTerminal() || t.IsHonor()
}

// IsGreen reports whether the tile belongs to the all-green set
// (Sou 2, 3, 4, 6, 8 and the green dragon).
func (t Tile) IsGreen() bool {
	if t == Green {
		return true
	}
	if t.Suit != SuitSou {
		return false
	}
	switch t.Value {
	case 2, 3, 4, 6, 8:
		return true
	}
	return false
}

// Count is the number of distinct tile values.
const Count = 34

// Index maps the tile to its canonical index:
// 0-8 man, 9-17 pin, 18-26 sou, 27-30 winds, 31-33 dragons.
func (t Tile) Index() int {
	switch t.Suit {
	case SuitMan:
		return t.Value - 1
	case SuitPin:
		return 9 + t.Value - 1
	case SuitSou:
		return 18 + t.Value - 1
	case SuitWind:
		return 27 + t.Value - 1
	case SuitDragon:
		return 31 + t.Value - 1
	}
	panic(fmt.Sprintf("tile: invalid tile %+v", t))
}

// FromIndex is the inverse of Index. It panics on an index outside 0-33;
// that is a programmer error, not an input error.
func FromIndex(i int) Tile {
	switch {
	case i >= 0 && i < 9:
		return Tile{SuitMan, i + 1}
	case i < 18:
		return Tile{SuitPin, i - 9 + 1}
	case i < 27:
		return Tile{SuitSou, i - 18 + 1}
	case i < 31:
		return Tile{SuitWind, i - 27 + 1}
	case i < Count:
		return Tile{SuitDragon, i - 31 + 1}
	}
	panic(fmt.Sprintf("tile: index %d out of range", i))
}

// Indicates returns the tile a dora indicator points at: numbered tiles
// wrap 9 back to 1 within the suit, winds cycle East-South-West-North,
// dragons cycle White-Green-Red.
func (t Tile) Indicates() Tile {
	switch t.Suit {
	case SuitMan, SuitPin, SuitSou:
		if t.Value == 9 {
			return Tile{t.Suit, 1}
		}
		return Tile{t.Suit, t.Value + 1}
	case SuitWind:
		if t.Value == 4 {
			return East
		}
		return Tile{SuitWind, t.Value + 1}
	case SuitDragon:
		if t.Value == 3 {
			return White
		}
		return Tile{SuitDragon, t.Value + 1}
	}
	panic(fmt.Sprintf("tile: invalid tile %+v", t))
}

// All returns the 34 distinct tile values in index order.
func All() []Tile {
	tiles := make([]Tile, Count)
	for i := range tiles {
		tiles[i] = FromIndex(i)
	}
	return tiles
}

// CountTiles builds a 34-length count vector from a tile list.
func CountTiles(tiles []Tile) [Count]int {
	var counts [Count]int
	for _, t := range tiles {
		counts[t.Index()]++
	}
	return counts
}
