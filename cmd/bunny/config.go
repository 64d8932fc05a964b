package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective runner configuration",
	Long: `Print the runner configuration after the config search path and the
difficulty preset are applied. The output is valid input for --config.

Search order:
  --config <path> -> ~/.bunny/configs/runner.yaml -> ./configs/runner.yaml -> built-in

Examples:
  bunny config
  bunny config --difficulty hard > hard.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadRunner()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
