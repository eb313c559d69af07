package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/avercin/chartembed/chart"
	"github.com/avercin/chartembed/config"
	"github.com/avercin/chartembed/utils"
)

var (
	exit       = os.Exit
	configPath string
	debug      bool
)

// NewRootCmd creates the root 'chartembed' command with persistent flags and subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chartembed",
		Short: "Render embeddable chart fragments for static-site pages",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to chartembed config YAML")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Load environment variables from .env file, if present
		_ = godotenv.Load()

		if debug {
			utils.SetMode("debug")
		}
	}

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newIncludeCmd())

	return rootCmd
}

// loadOptions resolves renderer options from the config file. A missing file
// just means defaults; anything else is worth a warning.
func loadOptions() chart.Options {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.Warn("could not load config %s: %v", configPath, err)
		}
		return chart.Options{}
	}
	if cfg.Log.Level != "" && !debug {
		utils.SetMode(cfg.Log.Level)
	}
	return cfg.Chart.Options()
}
