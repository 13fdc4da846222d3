// Root command for the cadence CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dukaforge/cadence/internal/paths"
	"github.com/dukaforge/cadence/pkg/cadence"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configDataDir string
	configModel   string
)

var rootCmd = &cobra.Command{
	Use:     "cadence",
	Short:   "Cadence is a local-first day planner",
	Version: cadence.Version,
	Long: `Cadence is a local-first personal task and scheduling application.
Tasks, day plans, and settings live in a single SQLite file owned by you;
the optional assist commands call a hosted model to enrich tasks and
propose schedules.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configModel = cfg.GetString(cfgKeyModel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory holding cadence.db (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(assistCmd)
	rootCmd.AddCommand(purgeCmd)
}

// resolveDataDir returns the data directory following the precedence
// --data-dir flag > config.yaml data_dir > CADENCE_DATA_DIR env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence --config-dir flag > CADENCE_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
