package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cliotris/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration cliotris would use, as YAML.

Config files are searched in order:
  1. --config <path>
  2. ~/.cliotris/config.yaml
  3. ./configs/cliotris.yaml
  4. built-in defaults

Examples:
  cliotris config
  cliotris config --defaults > ~/.cliotris/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the commented built-in defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagConfigDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
