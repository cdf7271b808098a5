package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/siili/climbingroutes/pkg/analysis"
	"github.com/siili/climbingroutes/pkg/route"
	"github.com/siili/climbingroutes/pkg/script"
	"github.com/siili/climbingroutes/pkg/watcher"
	"github.com/spf13/cobra"
)

var replayWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay [script.yaml]",
	Short: "Replay a tap script and print the resulting routes",
	Long: `Run the steps of a tap script (taps, selections, drags, info edits) through an
editing session and print every route it produced. With --watch the script is
replayed again whenever the file changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&replayWatch, "watch", "w", false, "Replay again when the script changes")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	filename := args[0]

	if err := replayAndPrint(out, filename); err != nil {
		if !replayWatch {
			return err
		}
		log.Error().Err(err).Str("file", filename).Msg("Replay failed")
	}
	if !replayWatch {
		return nil
	}

	w, err := watcher.New(watcher.DefaultDebounce, log)
	if err != nil {
		return err
	}
	defer w.Close()

	err = w.Watch([]string{filename}, func(path string) {
		fmt.Fprintf(out, "\n--- %s changed ---\n", path)
		if err := replayAndPrint(out, path); err != nil {
			log.Error().Err(err).Str("file", path).Msg("Replay failed")
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("file", filename).Msg("Watching for changes, press Ctrl+C to stop")
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// replayFile parses and replays a script
func replayFile(filename string) (*script.Result, error) {
	s, err := script.Parse(filename)
	if err != nil {
		return nil, err
	}
	return script.Replay(s, palette, log)
}

// scriptRoute replays a script and returns the route being edited at its end, or the
// last route it placed
func scriptRoute(filename string) (*route.Chain, error) {
	res, err := replayFile(filename)
	if err != nil {
		return nil, err
	}
	if r := res.Session.Active(); r != nil {
		return r, nil
	}
	routes := res.Session.Routes()
	if len(routes) == 0 {
		return nil, fmt.Errorf("script %s places no route", filename)
	}
	return routes[len(routes)-1], nil
}

func replayAndPrint(out io.Writer, filename string) error {
	res, err := replayFile(filename)
	if err != nil {
		return err
	}

	routes := res.Session.Routes()
	fmt.Fprintf(out, "Routes: %d  (ignored taps: %d, recomputed segments: %d)\n",
		len(routes), res.Ignored, res.Recomputed)

	for i, r := range routes {
		fmt.Fprintf(out, "\nRoute %d  %s\n", i+1, r.ID())
		printRoute(out, r)
	}

	for _, v := range res.Validations {
		if !v.OK() {
			fmt.Fprintf(out, "\nValidation: %v\n", v.Err)
		}
		for _, warning := range v.Warnings {
			fmt.Fprintf(out, "Warning: %v\n", warning)
		}
	}
	return nil
}

func printRoute(out io.Writer, r *route.Chain) {
	fmt.Fprint(out, r.Info().Card().String())

	selected, hasSelection := r.SelectedIndex()
	for i, w := range r.Waypoints() {
		marker := " "
		if hasSelection && i == selected {
			marker = "*"
		}
		line := fmt.Sprintf(" %s %2d  %s", marker, i, analysis.FormatVector(w.Position()))
		if w.IsStart() {
			line += "  start"
		}
		if s, ok := w.Segment(); ok {
			line += "  " + analysis.FormatMeasurement(s.Length, "")
			if s.Degenerate {
				line += " (degenerate)"
			}
		}
		fmt.Fprintln(out, line)
	}
}
