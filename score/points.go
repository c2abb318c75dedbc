// Package score maps an evaluated hand to fu, base points, a named limit
// tier, and the final payment split.
package score

// Limit names the fixed point tiers.
type Limit int

const (
	LimitNone Limit = iota
	LimitMangan
	LimitHaneman
	LimitBaiman
	LimitSanbaiman
	LimitYakuman
)

func (l Limit) String() string {
	switch l {
	case LimitMangan:
		return "Mangan"
	case LimitHaneman:
		return "Haneman"
	case LimitBaiman:
		return "Baiman"
	case LimitSanbaiman:
		return "Sanbaiman"
	case LimitYakuman:
		return "Yakuman"
	}
	return ""
}

// Rules holds the table-rule knobs that change scoring arithmetic.
type Rules struct {
	// KiriageMangan rounds the 1920-point hands (4 han 30 fu, 3 han
	// 60 fu) up to mangan.
	KiriageMangan bool
	// DoubleYakuman grants two yakuman units to the doubled variants;
	// when off they pay a single unit like any other yakuman.
	DoubleYakuman bool
}

// DefaultRules returns the common ruleset: kiriage mangan on, double
// yakuman on.
func DefaultRules() Rules {
	return Rules{KiriageMangan: true, DoubleYakuman: true}
}

// BasePoints maps a non-yakuman (han, fu) pair to base points and its
// limit tier. Thirteen or more han is a counted yakuman; below five han
// the fu formula applies, capped at mangan.
func BasePoints(han, fu int, rules Rules) (int, Limit) {
	switch {
	case han >= 13:
		return 8000, LimitYakuman
	case han >= 11:
		return 6000, LimitSanbaiman
	case han >= 8:
		return 4000, LimitBaiman
	case han >= 6:
		return 3000, LimitHaneman
	case han == 5:
		return 2000, LimitMangan
	}
	base := fu * (1 << (han + 2))
	if base > 2000 || (rules.KiriageMangan && base >= 1920) {
		return 2000, LimitMangan
	}
	return base, LimitNone
}

// RoundUp100 rounds a point total up to the next multiple of 100.
func RoundUp100(n int) int {
	return (n + 99) / 100 * 100
}
