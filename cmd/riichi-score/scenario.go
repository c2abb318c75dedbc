package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"riichi-score-go/game"
	"riichi-score-go/hand"
	"riichi-score-go/tile"
)

// Scenario is the YAML description of one winning hand. Tiles use the
// compact notation ("234567m345678p44s", winds E S W N, dragons w g r).
type Scenario struct {
	Hand        string     `yaml:"hand"`
	WinningTile string     `yaml:"winning_tile"`
	Win         string     `yaml:"win"`
	OpenMelds   []MeldSpec `yaml:"open_melds"`
	ClosedKans  []string   `yaml:"closed_kans"`
	Player      PlayerSpec `yaml:"player"`
	Game        GameSpec   `yaml:"game"`
}

type MeldSpec struct {
	Type string `yaml:"type"` // sequence, triplet, quad
	Tile string `yaml:"tile"` // lowest tile for a sequence
}

type PlayerSpec struct {
	SeatWind     string `yaml:"seat_wind"`
	Dealer       bool   `yaml:"dealer"`
	Riichi       bool   `yaml:"riichi"`
	DoubleRiichi bool   `yaml:"double_riichi"`
	Ippatsu      bool   `yaml:"ippatsu"`
}

type GameSpec struct {
	RoundWind         string   `yaml:"round_wind"`
	Honba             int      `yaml:"honba"`
	RiichiSticks      int      `yaml:"riichi_sticks"`
	DoraIndicators    []string `yaml:"dora_indicators"`
	UraDoraIndicators []string `yaml:"ura_dora_indicators"`
	AkaDora           int      `yaml:"aka_dora"`
	Tenhou            bool     `yaml:"tenhou"`
	Chiihou           bool     `yaml:"chiihou"`
	Renhou            bool     `yaml:"renhou"`
	Haitei            bool     `yaml:"haitei"`
	Houtei            bool     `yaml:"houtei"`
	Rinshan           bool     `yaml:"rinshan"`
	Chankan           bool     `yaml:"chankan"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &s, nil
}

// Input converts the scenario to the scorer's input record.
func (s *Scenario) Input() (*hand.Input, error) {
	tiles, err := tile.Parse(s.Hand)
	if err != nil {
		return nil, fmt.Errorf("hand: %w", err)
	}
	winning, err := tile.ParseOne(s.WinningTile)
	if err != nil {
		return nil, fmt.Errorf("winning_tile: %w", err)
	}

	var win game.WinType
	switch s.Win {
	case "tsumo":
		win = game.Tsumo
	case "ron":
		win = game.Ron
	default:
		return nil, fmt.Errorf("win: %q is not tsumo or ron", s.Win)
	}

	in := &hand.Input{
		Tiles:       tiles,
		WinningTile: winning,
		Win:         win,
	}

	for _, m := range s.OpenMelds {
		t, err := tile.ParseOne(m.Tile)
		if err != nil {
			return nil, fmt.Errorf("open meld tile: %w", err)
		}
		var mt hand.GroupType
		switch m.Type {
		case "sequence":
			mt = hand.TypeSequence
		case "triplet":
			mt = hand.TypeTriplet
		case "quad":
			mt = hand.TypeQuad
		default:
			return nil, fmt.Errorf("open meld type: %q is not sequence, triplet, or quad", m.Type)
		}
		in.OpenMelds = append(in.OpenMelds, hand.DeclaredMeld{Type: mt, Tile: t})
	}
	for _, k := range s.ClosedKans {
		t, err := tile.ParseOne(k)
		if err != nil {
			return nil, fmt.Errorf("closed kan tile: %w", err)
		}
		in.ClosedKans = append(in.ClosedKans, t)
	}

	seat, err := tile.ParseOne(s.Player.SeatWind)
	if err != nil {
		return nil, fmt.Errorf("seat_wind: %w", err)
	}
	round, err := tile.ParseOne(s.Game.RoundWind)
	if err != nil {
		return nil, fmt.Errorf("round_wind: %w", err)
	}
	if !seat.IsWind() || !round.IsWind() {
		return nil, fmt.Errorf("seat and round winds must be wind tiles")
	}

	in.Player = game.PlayerContext{
		SeatWind:       seat,
		IsDealer:       s.Player.Dealer,
		IsRiichi:       s.Player.Riichi,
		IsDoubleRiichi: s.Player.DoubleRiichi,
		IsIppatsu:      s.Player.Ippatsu,
		IsMenzen:       len(s.OpenMelds) == 0,
	}

	in.Game = game.GameContext{
		RoundWind:    round,
		Honba:        s.Game.Honba,
		RiichiSticks: s.Game.RiichiSticks,
		NumAkaDora:   s.Game.AkaDora,
		IsTenhou:     s.Game.Tenhou,
		IsChiihou:    s.Game.Chiihou,
		IsRenhou:     s.Game.Renhou,
		IsHaitei:     s.Game.Haitei,
		IsHoutei:     s.Game.Houtei,
		IsRinshan:    s.Game.Rinshan,
		IsChankan:    s.Game.Chankan,
	}
	for _, d := range s.Game.DoraIndicators {
		t, err := tile.ParseOne(d)
		if err != nil {
			return nil, fmt.Errorf("dora indicator: %w", err)
		}
		in.Game.DoraIndicators = append(in.Game.DoraIndicators, t)
	}
	for _, d := range s.Game.UraDoraIndicators {
		t, err := tile.ParseOne(d)
		if err != nil {
			return nil, fmt.Errorf("ura dora indicator: %w", err)
		}
		in.Game.UraDoraIndicators = append(in.Game.UraDoraIndicators, t)
	}

	return in, nil
}
