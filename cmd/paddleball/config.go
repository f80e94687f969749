package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Prints the configuration as loaded from --config or the search path,
with the variant's rules applied when one is given. The output is valid
input for --config.

Examples:
  paddleball config
  paddleball config classic > classic.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	cfg := loadArena()
	if len(args) > 0 {
		config.ApplyVariant(&cfg, variantArg(args))
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Print(string(data))
}
