package tile

import (
	"fmt"
	"sort"
	"strings"
)

// Parse reads the compact hand notation used by the CLI and tests:
// digit runs followed by a suit letter ("123m55p"), honor letters E S W N
// for winds and w g r for the white/green/red dragons. Whitespace separates
// groups but carries no meaning.
func Parse(s string) ([]Tile, error) {
	var tiles []Tile
	var pending []int

	flush := func(suit Suit) {
		for _, v := range pending {
			tiles = append(tiles, Tile{suit, v})
		}
		pending = pending[:0]
	}

	for _, r := range s {
		switch {
		case r >= '1' && r <= '9':
			pending = append(pending, int(r-'0'))
		case r == 'm':
			flush(SuitMan)
		case r == 'p':
			flush(SuitPin)
		case r == 's':
			flush(SuitSou)
		case r == 'E', r == 'S', r == 'W', r == 'N', r == 'w', r == 'g', r == 'r':
			if len(pending) > 0 {
				return nil, fmt.Errorf("tile: digits %v before honor letter %q", pending, r)
			}
			switch r {
			case 'E':
				tiles = append(tiles, East)
			case 'S':
				tiles = append(tiles, South)
			case 'W':
				tiles = append(tiles, West)
			case 'N':
				tiles = append(tiles, North)
			case 'w':
				tiles = append(tiles, White)
			case 'g':
				tiles = append(tiles, Green)
			case 'r':
				tiles = append(tiles, Red)
			}
		case r == ' ' || r == '\t' || r == '\n':
			// separator only; digits must be closed by a suit letter
		default:
			return nil, fmt.Errorf("tile: unrecognized character %q in %q", r, s)
		}
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("tile: trailing digits without a suit letter in %q", s)
	}
	return tiles, nil
}

// ParseOne parses notation that must describe exactly one tile.
func ParseOne(s string) (Tile, error) {
	tiles, err := Parse(s)
	if err != nil {
		return Tile{}, err
	}
	if len(tiles) != 1 {
		return Tile{}, fmt.Errorf("tile: %q describes %d tiles, want 1", s, len(tiles))
	}
	return tiles[0], nil
}

// MustParse is Parse for test fixtures and examples; it panics on bad
// notation.
func MustParse(s string) []Tile {
	tiles, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

// MustParseOne is ParseOne for test fixtures and examples; it panics on
// bad notation.
func MustParseOne(s string) Tile {
	t, err := ParseOne(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Sort orders tiles by index, in place.
func Sort(tiles []Tile) {
	sort.Slice(tiles, func(i, j int) bool {
		return tiles[i].Index() < tiles[j].Index()
	})
}

// Names formats a tile list for display.
func Names(tiles []Tile) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
