package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "specdrift",
	Version: Version,
	Short:   "Detect drift between specification documents",
	Long: `Specdrift validates consistency across the human-written specification
documents of a project: use cases, BDD feature files, and service specs.
It answers three questions:
1. Does every use case have tests, and every test a use case?
2. Do acceptance criteria and BDD scenarios still match up?
3. Do use cases and services agree about who depends on whom?`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringP("dir", "C", ".", "Project root directory")
	RootCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")
}
