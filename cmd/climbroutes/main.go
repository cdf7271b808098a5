package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/siili/climbingroutes/internal/config"
	"github.com/siili/climbingroutes/internal/logging"
	"github.com/siili/climbingroutes/pkg/grade"
	"github.com/siili/climbingroutes/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	cfg     config.Config
	palette grade.Palette = grade.DefaultPalette
	log     = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "climbroutes",
	Short: "Plan and inspect climbing routes",
	Long: `climbroutes works with climbing routes: chains of clips connected by segments and
colored by their difficulty grade. Routes are built from tap scripts, analysed,
rendered and stored in a local database.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./climbingroutes.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides the config file)")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	log = logging.New(level, os.Stderr)

	p, err := cfg.BandPalette()
	if err != nil {
		return err
	}
	palette = p

	log.Debug().Str("config", configPath).Str("storage", cfg.Storage.Path).Msg("Configuration loaded")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
