package main

import (
	"fmt"
	"os"

	"github.com/siili/climbingroutes/pkg/render"
	"github.com/spf13/cobra"
)

var (
	renderOutput string
	renderWidth  int
	renderHeight int
)

var renderCmd = &cobra.Command{
	Use:   "render [script.yaml]",
	Short: "Render a front elevation of the route built by a script",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "route.png", "Output PNG file")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Image width in pixels (default from config)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Image height in pixels (default from config)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	r, err := scriptRoute(args[0])
	if err != nil {
		return err
	}

	opts := render.DefaultOptions()
	opts.Width, opts.Height = cfg.Render.Width, cfg.Render.Height
	if renderWidth > 0 {
		opts.Width = renderWidth
	}
	if renderHeight > 0 {
		opts.Height = renderHeight
	}

	f, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", renderOutput, err)
	}
	defer f.Close()

	if err := render.WritePNG(f, r, opts); err != nil {
		return err
	}

	log.Info().
		Str("file", renderOutput).
		Int("width", opts.Width).
		Int("height", opts.Height).
		Msg("Route rendered")
	return f.Close()
}
