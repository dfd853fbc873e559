package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pacman/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Prints the built-in default configuration as YAML. Save it to
~/.pacman/configs/pacman.yaml or ./configs/pacman.yaml to customize the game.

With --resolved, prints the configuration the game would actually use after
searching the config directories (or the file given with --config).`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective config instead of the default")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML (with --resolved)")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !flagResolved {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = fmt.Fprint(os.Stdout, string(out))
	return err
}
