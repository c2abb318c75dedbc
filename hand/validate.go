package hand

import (
	"errors"
	"fmt"

	"riichi-score-go/game"
	"riichi-score-go/tile"
)

// Validation failures are caller errors: the input describes a game state
// that cannot occur. Each one names the specific rule that was broken.
var (
	ErrRiichiConflict      = errors.New("riichi and double riichi cannot both be declared")
	ErrRiichiOpenHand      = errors.New("riichi requires a concealed hand")
	ErrIppatsuWithoutRii   = errors.New("ippatsu requires a riichi declaration")
	ErrMenzenOpenMelds     = errors.New("hand marked concealed but open melds are declared")
	ErrTenhouState         = errors.New("tenhou requires a dealer tsumo with no declared melds")
	ErrChiihouState        = errors.New("chiihou requires a non-dealer tsumo with no declared melds")
	ErrRenhouState         = errors.New("renhou requires a non-dealer ron with no declared melds")
	ErrHaiteiNotTsumo      = errors.New("haitei requires a tsumo win")
	ErrHouteiNotRon        = errors.New("houtei requires a ron win")
	ErrHaiteiHoutei        = errors.New("haitei and houtei cannot both be set")
	ErrRinshanNotTsumo     = errors.New("rinshan requires a tsumo win")
	ErrChankanNotRon       = errors.New("chankan requires a ron win")
	ErrTooManyMelds        = errors.New("more than four melds declared")
	ErrTileCount           = errors.New("tile count does not match the declared quads")
	ErrWinningTileMissing  = errors.New("winning tile is not in the hand")
	ErrTooManyCopies       = errors.New("more than four copies of a tile")
	ErrBadSequence         = errors.New("declared sequence must start at rank 1 through 7 of a numbered suit")
	ErrTooManyAkaDora      = errors.New("more red fives declared than fives held")
	ErrWinningTileDeclared = errors.New("every copy of the winning tile sits in a declared meld")
)

// validate checks Input consistency before decomposition. counts is the
// count vector over in.Tiles.
func validate(in *Input, counts [tile.Count]int) error {
	p, g := &in.Player, &in.Game

	if p.IsRiichi && p.IsDoubleRiichi {
		return ErrRiichiConflict
	}
	if (p.IsRiichi || p.IsDoubleRiichi) && !p.IsMenzen {
		return ErrRiichiOpenHand
	}
	if p.IsIppatsu && !p.IsRiichi && !p.IsDoubleRiichi {
		return ErrIppatsuWithoutRii
	}
	if p.IsMenzen && len(in.OpenMelds) > 0 {
		return ErrMenzenOpenMelds
	}

	melds := len(in.OpenMelds) + len(in.ClosedKans)
	if g.IsTenhou && (!p.IsDealer || in.Win != game.Tsumo || melds > 0) {
		return ErrTenhouState
	}
	if g.IsChiihou && (p.IsDealer || in.Win != game.Tsumo || melds > 0) {
		return ErrChiihouState
	}
	if g.IsRenhou && (p.IsDealer || in.Win != game.Ron || melds > 0) {
		return ErrRenhouState
	}
	if g.IsHaitei && g.IsHoutei {
		return ErrHaiteiHoutei
	}
	if g.IsHaitei && in.Win != game.Tsumo {
		return ErrHaiteiNotTsumo
	}
	if g.IsHoutei && in.Win != game.Ron {
		return ErrHouteiNotRon
	}
	if g.IsRinshan && in.Win != game.Tsumo {
		return ErrRinshanNotTsumo
	}
	if g.IsChankan && in.Win != game.Ron {
		return ErrChankanNotRon
	}

	if melds > 4 {
		return ErrTooManyMelds
	}

	quads := len(in.ClosedKans)
	for _, m := range in.OpenMelds {
		if m.Type == TypeQuad {
			quads++
		}
		if m.Type == TypeSequence && (!m.Tile.IsNumbered() || m.Tile.Value > 7) {
			return fmt.Errorf("%w: %s", ErrBadSequence, m.Tile)
		}
	}
	if len(in.Tiles) != 14+quads {
		return fmt.Errorf("%w: have %d tiles, want %d", ErrTileCount, len(in.Tiles), 14+quads)
	}

	if counts[in.WinningTile.Index()] == 0 {
		return fmt.Errorf("%w: %s", ErrWinningTileMissing, in.WinningTile)
	}
	for i, n := range counts {
		if n > 4 {
			return fmt.Errorf("%w: %s", ErrTooManyCopies, tile.FromIndex(i))
		}
	}

	fives := counts[tile.Man(5).Index()] + counts[tile.Pin(5).Index()] + counts[tile.Sou(5).Index()]
	if g.NumAkaDora > fives {
		return fmt.Errorf("%w: %d declared, %d held", ErrTooManyAkaDora, g.NumAkaDora, fives)
	}
	return nil
}
