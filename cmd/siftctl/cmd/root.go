// Package cmd contains all CLI commands for siftctl.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	catalogPath string
	noColor     bool
	version     = "dev"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "siftctl",
	Short: "Catalog search CLI",
	Long: `siftctl searches a JSON product catalog by keyword and filters the
results with constraints parsed from the query text (budget, colors,
category).

Example usage:
  siftctl search "winter wedding guest dress under $150"
  siftctl search --raw "satin dress"        # skip constraint filtering
  siftctl search --json "gold heels" | jq .`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	rootCmd.Version = v
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "data/catalog.json", "path to the catalog JSON file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
