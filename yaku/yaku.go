// Package yaku evaluates a decomposed winning hand against the full table
// of scoring patterns: game-state yakuman, hand-shape yakuman, the ordinary
// yaku, and bonus-tile counts.
package yaku

import "fmt"

// Yaku identifies one scoring pattern. The set is closed; consumers switch
// over it exhaustively.
type Yaku int

const (
	Riichi Yaku = iota
	DoubleRiichi
	Ippatsu
	MenzenTsumo
	Pinfu
	Tanyao
	Iipeikou
	YakuhaiDragon
	YakuhaiSeatWind
	YakuhaiRoundWind
	HaiteiRaoyue
	HouteiRaoyui
	RinshanKaihou
	Chankan
	Chiitoitsu
	SanshokuDoujun
	Ittsu
	Chanta
	Toitoi
	Sanankou
	SanshokuDoukou
	Sankantsu
	Shousangen
	Honroutou
	Ryanpeikou
	Junchan
	Honitsu
	Chinitsu

	Tenhou
	Chiihou
	Renhou
	KokushiMusou
	KokushiMusouJuusanmen
	Suuankou
	SuuankouTanki
	Daisangen
	Shousuushi
	Daisuushi
	Tsuuiisou
	Chinroutou
	Ryuuiisou
	Suukantsu
	ChuurenPoutou
	JunseiChuurenPoutou

	Dora
	UraDora
	AkaDora
)

var yakuNames = map[Yaku]string{
	Riichi:                "Riichi",
	DoubleRiichi:          "Double Riichi",
	Ippatsu:               "Ippatsu",
	MenzenTsumo:           "Menzen Tsumo",
	Pinfu:                 "Pinfu",
	Tanyao:                "Tanyao",
	Iipeikou:              "Iipeikou",
	YakuhaiDragon:         "Yakuhai (Dragon)",
	YakuhaiSeatWind:       "Yakuhai (Seat Wind)",
	YakuhaiRoundWind:      "Yakuhai (Round Wind)",
	HaiteiRaoyue:          "Haitei Raoyue",
	HouteiRaoyui:          "Houtei Raoyui",
	RinshanKaihou:         "Rinshan Kaihou",
	Chankan:               "Chankan",
	Chiitoitsu:            "Chiitoitsu",
	SanshokuDoujun:        "Sanshoku Doujun",
	Ittsu:                 "Ittsu",
	Chanta:                "Chanta",
	Toitoi:                "Toitoi",
	Sanankou:              "Sanankou",
	SanshokuDoukou:        "Sanshoku Doukou",
	Sankantsu:             "Sankantsu",
	Shousangen:            "Shousangen",
	Honroutou:             "Honroutou",
	Ryanpeikou:            "Ryanpeikou",
	Junchan:               "Junchan",
	Honitsu:               "Honitsu",
	Chinitsu:              "Chinitsu",
	Tenhou:                "Tenhou",
	Chiihou:               "Chiihou",
	Renhou:                "Renhou",
	KokushiMusou:          "Kokushi Musou",
	KokushiMusouJuusanmen: "Kokushi Musou Juusanmen",
	Suuankou:              "Suuankou",
	SuuankouTanki:         "Suuankou Tanki",
	Daisangen:             "Daisangen",
	Shousuushi:            "Shousuushi",
	Daisuushi:             "Daisuushi",
	Tsuuiisou:             "Tsuuiisou",
	Chinroutou:            "Chinroutou",
	Ryuuiisou:             "Ryuuiisou",
	Suukantsu:             "Suukantsu",
	ChuurenPoutou:         "Chuuren Poutou",
	JunseiChuurenPoutou:   "Junsei Chuuren Poutou",
	Dora:                  "Dora",
	UraDora:               "Ura Dora",
	AkaDora:               "Aka Dora",
}

func (y Yaku) String() string {
	if name, ok := yakuNames[y]; ok {
		return name
	}
	return fmt.Sprintf("Yaku(%d)", int(y))
}

// IsYakuman reports whether the pattern is a yakuman tier.
func (y Yaku) IsYakuman() bool {
	return y >= Tenhou && y <= JunseiChuurenPoutou
}

// YakumanUnits returns the yakuman multiplier: 2 for the doubled variants,
// 1 for ordinary yakuman, 0 otherwise.
func (y Yaku) YakumanUnits() int {
	switch y {
	case KokushiMusouJuusanmen, SuuankouTanki, JunseiChuurenPoutou:
		return 2
	case Tenhou, Chiihou, Renhou, KokushiMusou, Suuankou, Daisangen,
		Shousuushi, Daisuushi, Tsuuiisou, Chinroutou, Ryuuiisou,
		Suukantsu, ChuurenPoutou:
		return 1
	}
	return 0
}

// Han returns the pattern's han value. Patterns that lose a han when the
// hand is open take the concealment flag into account; a yakuman reports
// 13 per unit. Dora patterns are worth one han per counted tile, which the
// caller multiplies by the occurrence count.
func (y Yaku) Han(menzen bool) int {
	if u := y.YakumanUnits(); u > 0 {
		return 13 * u
	}
	switch y {
	case Riichi, Ippatsu, MenzenTsumo, Pinfu, Tanyao, Iipeikou,
		YakuhaiDragon, YakuhaiSeatWind, YakuhaiRoundWind,
		HaiteiRaoyue, HouteiRaoyui, RinshanKaihou, Chankan,
		Dora, UraDora, AkaDora:
		return 1
	case DoubleRiichi, Chiitoitsu, Toitoi, Sanankou, SanshokuDoukou,
		Sankantsu, Shousangen, Honroutou:
		return 2
	case SanshokuDoujun, Ittsu, Chanta:
		if menzen {
			return 2
		}
		return 1
	case Ryanpeikou:
		return 3
	case Junchan, Honitsu:
		if menzen {
			return 3
		}
		return 2
	case Chinitsu:
		if menzen {
			return 6
		}
		return 5
	}
	return 0
}
