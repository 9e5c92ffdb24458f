package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pigpong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration.

Save it as ~/.pigpong/configs/pigpong.yaml or ./configs/pigpong.yaml to
change it, or pass any file with --config.

Example:
  pigpong config > my-pigpong.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
