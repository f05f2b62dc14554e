// hts is a small driver around the reconciliation library: it reads a
// long-format CSV, assembles the hierarchy, and either inspects the
// derived structures or runs a reconciled forecast with the bundled
// persistence baseline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "hts",
	Short:         "Hierarchical time-series forecast reconciliation",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to a YAML run configuration")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hts:", err)
		os.Exit(1)
	}
}
