package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-pop/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a round would use, as YAML.

Lookup order:
  --config <path>
  ~/.balloons/configs/balloons.yaml
  ./configs/balloons.yaml
  built-in defaults

Examples:
  balloons config
  balloons config --defaults > ~/.balloons/configs/balloons.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		fmt.Print(string(config.GetDefaultYAML()))
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
