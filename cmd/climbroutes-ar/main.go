package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/siili/climbingroutes/internal/app"
	"github.com/siili/climbingroutes/internal/config"
	"github.com/siili/climbingroutes/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configPath string
	routeIDs   []string
)

var rootCmd = &cobra.Command{
	Use:   "climbroutes-ar",
	Short: "3D route editor",
	Long: `climbroutes-ar simulates the AR route editor: place clips on the floor and on
ledges, drag them around and grade the route. Stored routes can be opened with --route.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		palette, err := cfg.BandPalette()
		if err != nil {
			return err
		}

		ids := make([]uuid.UUID, 0, len(routeIDs))
		for _, s := range routeIDs {
			id, err := uuid.Parse(s)
			if err != nil {
				return fmt.Errorf("invalid route id %q: %w", s, err)
			}
			ids = append(ids, id)
		}

		return app.Run(app.Options{
			Width:       int32(cfg.Viewer.Width),
			Height:      int32(cfg.Viewer.Height),
			Palette:     palette,
			StoragePath: cfg.Storage.Path,
			Log:         logging.New(cfg.LogLevel, os.Stderr),
			Routes:      ids,
		})
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default ./climbingroutes.yaml)")
	rootCmd.Flags().StringSliceVar(&routeIDs, "route", nil, "ID of a stored route to open (repeatable)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
