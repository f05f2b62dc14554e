package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hts/naive"
	"github.com/katalvlaran/hts/reconcile"
)

var (
	flagHorizon int
	flagMethod  string
)

var forecastCmd = &cobra.Command{
	Use:   "forecast [data.csv]",
	Short: "Run a reconciled forecast with the bundled persistence baseline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRunConfig(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("horizon") {
			cfg.Horizon = flagHorizon
		}
		if cmd.Flags().Changed("method") {
			cfg.Method = flagMethod
		}

		series, topo, err := loadHierarchy(args[0], cfg)
		if err != nil {
			return err
		}

		rcfg, err := cfg.reconcileConfig()
		if err != nil {
			return err
		}

		backend := naive.New(naive.WithSeasonLength(cfg.SeasonLength))
		res, err := reconcile.Run(cmd.Context(), backend, series, topo, rcfg)
		if err != nil {
			return err
		}

		if res.CV != nil {
			fmt.Printf("Cross-validated selection: %s\n", res.CV.Selected)
			for _, m := range []reconcile.Method{
				reconcile.MethodBottomUp,
				reconcile.MethodTopDownForecastProp,
				reconcile.MethodTopDownHistAvgProp,
				reconcile.MethodTopDownAvgHistProp,
				reconcile.MethodOptimalCombination,
			} {
				fmt.Printf("  %-40s %g\n", m, res.CV.Scores[m])
			}
			fmt.Println()
		}

		printForecast(series.Names(), res, rcfg.Horizon)

		return nil
	},
}

func init() {
	forecastCmd.Flags().IntVarP(&flagHorizon, "horizon", "H", reconcile.DefaultHorizon, "Future steps to forecast")
	forecastCmd.Flags().StringVarP(&flagMethod, "method", "m", reconcile.DefaultMethod.String(), "Reconciliation method (or CVselect)")
	rootCmd.AddCommand(forecastCmd)
}

func printForecast(names []string, res *reconcile.Result, horizon int) {
	fmt.Printf("Method: %s\n", res.Method)
	fmt.Print("time")
	for _, name := range names {
		fmt.Printf("\t%s", name)
	}
	fmt.Println()

	for h := 0; h < horizon; h++ {
		// Times align across tables; take the axis from the total's table.
		axis := res.Tables[0].Times
		if len(axis) >= horizon {
			fmt.Print(axis[len(axis)-horizon+h].Format(time.DateOnly))
		} else {
			fmt.Printf("t+%d", h+1)
		}
		for _, tab := range res.Tables {
			f, err := tab.Future(horizon)
			if err != nil {
				fmt.Printf("\t?")
				continue
			}
			fmt.Printf("\t%g", f[h])
		}
		fmt.Println()
	}
}
