package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"aurixflash/pkg/config"
	"aurixflash/pkg/logger"
)

var (
	cfg       *config.Config
	cfgSource string
)

var rootCmd = &cobra.Command{
	Use:   "aurixflash",
	Short: "Flash Intel-HEX images onto AURIX TC39x boards",
	Long: `Drives the Infineon Memtool command line in batch mode to flash
Intel-HEX firmware images onto an AURIX TC39x target.

A DAS server instance must already be running on this machine; the board is
addressed through its DAS port selector.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logger.ParseLevel(cfg.Logging.Level)
		if err != nil {
			fmt.Printf("Warning: %v, using INFO\n", err)
		}
		logger.SetLevel(level)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	loaded, source, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Warning: failed to load configuration: %v, using defaults\n", err)
		defaults := config.DefaultConfig
		loaded, source = &defaults, "built-in defaults"
	}
	cfg, cfgSource = loaded, source

	rootCmd.PersistentFlags().StringVar(&cfg.Flasher.MemtoolPath, "memtool", cfg.Flasher.MemtoolPath,
		"Path to the Infineon Memtool executable")
	rootCmd.PersistentFlags().StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level,
		"Log level (DEBUG, INFO, WARN, ERROR)")

	rootCmd.AddCommand(newFlashCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newConfigCmd())
}
