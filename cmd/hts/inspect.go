package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hts/hierarchy"
	"github.com/katalvlaran/hts/summing"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [data.csv]",
	Short: "Build the hierarchy from a long-format CSV and print the derived structures",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRunConfig(cfgPath)
		if err != nil {
			return err
		}

		series, topo, err := loadHierarchy(args[0], cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Topology (nodes per level below the root): %v\n", topo.Levels)
		fmt.Printf("Nodes: %d  Leaves: %d  Rows: %d\n\n", topo.NodeCount(), topo.LeafCount(), series.Len())

		printSeries(series)

		S, err := summing.Build(topo)
		if err != nil {
			return err
		}
		fmt.Printf("\nSumming matrix (%dx%d):\n%s", S.Rows(), S.Cols(), S.String())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// loadHierarchy runs the shared CSV → rows → (weekly) → wide table path.
func loadHierarchy(path string, cfg runConfig) (*hierarchy.Series, *hierarchy.Topology, error) {
	rows, tagNames, err := readRows(path)
	if err != nil {
		return nil, nil, err
	}
	fmt.Printf("Loaded %d observations with tags %v from %s\n", len(rows), tagNames, path)

	if cfg.Weekly {
		rows, err = hierarchy.ResampleWeekly(rows)
		if err != nil {
			return nil, nil, err
		}
		fmt.Printf("Resampled to %d week-ending observations\n", len(rows))
	}

	levels := cfg.Levels
	if len(levels) == 0 {
		levels = defaultLevels(len(tagNames))
	}

	return hierarchy.Build(rows, levels, cfg.buildOptions()...)
}

func printSeries(s *hierarchy.Series) {
	fmt.Print("time")
	for _, name := range s.Names() {
		fmt.Printf("\t%s", name)
	}
	fmt.Println()

	times := s.Times()
	for t := 0; t < s.Len(); t++ {
		fmt.Print(times[t].Format(time.DateOnly))
		for col := 0; col < s.NumCols(); col++ {
			v, _ := s.At(t, col)
			fmt.Printf("\t%g", v)
		}
		fmt.Println()
	}
}
