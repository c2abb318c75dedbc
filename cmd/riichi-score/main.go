package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	riichiscore "riichi-score-go"
	"riichi-score-go/game"
	"riichi-score-go/internal/config"
	"riichi-score-go/internal/logging"
	"riichi-score-go/score"
	"riichi-score-go/tile"
	"riichi-score-go/yaku"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "riichi-score <scenario.yaml>",
	Short: "score a riichi mahjong winning hand",
	Long: `riichi-score reads a YAML scenario describing a winning hand and its
context, decomposes the hand, evaluates every scoring pattern, and prints
the han, fu, and point payments.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configFile)
		if err != nil {
			logging.Fatal("load config: %v", err)
		}
		logging.Init(cfg.Prefix, cfg.Level)

		scen, err := LoadScenario(args[0])
		if err != nil {
			logging.Fatal("load scenario: %v", err)
		}
		in, err := scen.Input()
		if err != nil {
			logging.Fatal("bad scenario: %v", err)
		}

		logging.Debug("scoring %s winning on %s", scen.Hand, scen.WinningTile)
		out, err := riichiscore.CalculateWithRules(in, cfg.Rules())
		if err != nil {
			logging.Error("cannot score hand: %v", err)
			os.Exit(1)
		}

		sorted := append([]tile.Tile(nil), in.Tiles...)
		tile.Sort(sorted)
		fmt.Printf("Hand: %s (winning on %s)\n\n", tile.Names(sorted), in.WinningTile)

		printResult(out, in.Win, in.Player.IsMenzen)
	},
}

func printResult(out *score.Result, win game.WinType, menzen bool) {
	// Bonus tiles appear once per matching tile; fold them into one line
	// each so the listed han add up to the total.
	bonus := map[yaku.Yaku]int{}

	fmt.Println("Yaku:")
	for _, y := range out.List {
		switch y {
		case yaku.Dora, yaku.UraDora, yaku.AkaDora:
			bonus[y]++
		default:
			fmt.Printf("  %s (%d han)\n", y, y.Han(menzen))
		}
	}
	for _, y := range []yaku.Yaku{yaku.Dora, yaku.UraDora, yaku.AkaDora} {
		if n := bonus[y]; n > 0 {
			fmt.Printf("  %s %d (%d han)\n", y, n, n)
		}
	}

	if out.Limit == score.LimitYakuman {
		if out.YakumanUnits > 1 {
			fmt.Printf("\n%dx Yakuman\n", out.YakumanUnits)
		} else {
			fmt.Printf("\nYakuman\n")
		}
	} else {
		fmt.Printf("\n%d han %d fu", out.Han, out.Fu)
		if out.Limit != score.LimitNone {
			fmt.Printf(" (%s)", out.Limit)
		}
		fmt.Println()
	}

	if win == game.Ron {
		fmt.Printf("Discarder pays %d\n", out.RonValue)
	} else if out.TsumoDealerPay > 0 {
		fmt.Printf("Dealer pays %d, others pay %d each\n", out.TsumoDealerPay, out.TsumoNonDealerPay)
	} else {
		fmt.Printf("Everyone pays %d\n", out.TsumoNonDealerPay)
	}
	fmt.Printf("Winner receives %d\n", out.Total)
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "configFile", "", "optional rules/log configuration file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
