// Package riichiscore scores a complete riichi mahjong winning hand: it
// decomposes the tiles, evaluates every scoring pattern, and computes the
// point payments.
package riichiscore

import (
	"riichi-score-go/hand"
	"riichi-score-go/score"
	"riichi-score-go/yaku"
)

// Calculate scores a winning hand under the default table rules.
func Calculate(in *hand.Input) (*score.Result, error) {
	return CalculateWithRules(in, score.DefaultRules())
}

// CalculateWithRules runs the full pipeline: decomposition, pattern
// evaluation, then fu and payment arithmetic. The returned error names the
// validation or classification step that rejected the hand.
func CalculateWithRules(in *hand.Input, rules score.Rules) (*score.Result, error) {
	org, err := hand.Organize(in)
	if err != nil {
		return nil, err
	}
	res, err := yaku.Evaluate(org, &in.Player, &in.Game, in.Win)
	if err != nil {
		return nil, err
	}
	return score.Calculate(res, &in.Player, &in.Game, in.Win, rules)
}

// Evaluate exposes the pattern stage on its own, for callers that want the
// classified shape and pattern list without point arithmetic.
func Evaluate(in *hand.Input) (*yaku.Result, error) {
	org, err := hand.Organize(in)
	if err != nil {
		return nil, err
	}
	return yaku.Evaluate(org, &in.Player, &in.Game, in.Win)
}
