package main

import (
	"fmt"

	"github.com/siili/climbingroutes/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoLongest int

var infoCmd = &cobra.Command{
	Use:   "info [script.yaml]",
	Short: "Display measurements of the route built by a script",
	Long:  "Show the route card, dimensions, segment lengths and height gain of the route a tap script builds.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().IntVarP(&infoLongest, "longest", "n", 3, "Number of longest segments to list")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	r, err := scriptRoute(filename)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeRoute(r)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Route Information")
	fmt.Fprintln(out, "=================")
	fmt.Fprint(out, r.Info().Card().String())
	fmt.Fprintf(out, "ID: %s\n", r.ID())
	fmt.Fprintf(out, "Script: %s\n\n", filename)

	fmt.Fprintln(out, "Route Statistics:")
	fmt.Fprintf(out, "  Clips: %d\n", result.WaypointCount)
	fmt.Fprintf(out, "  Segments: %d\n", result.SegmentCount)
	if result.Degenerate > 0 {
		fmt.Fprintf(out, "  Degenerate segments: %d\n", result.Degenerate)
	}
	fmt.Fprintf(out, "  Total length: %s\n", analysis.FormatMeasurement(result.TotalLength, ""))
	fmt.Fprintf(out, "  Height gain: %s\n\n", analysis.FormatMeasurement(result.HeightGain, ""))

	if result.WaypointCount > 0 {
		fmt.Fprintln(out, "Bounding Box:")
		fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

		fmt.Fprintln(out, "Dimensions:")
		fmt.Fprintf(out, "  Width (X): %s\n", analysis.FormatMeasurement(result.Dimensions.X, ""))
		fmt.Fprintf(out, "  Height (Y): %s\n", analysis.FormatMeasurement(result.Dimensions.Y, ""))
		fmt.Fprintf(out, "  Depth (Z): %s\n", analysis.FormatMeasurement(result.Dimensions.Z, ""))
		fmt.Fprintf(out, "  Diagonal: %s\n\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), ""))
	}

	if result.SegmentCount == 0 {
		return nil
	}

	fmt.Fprintln(out, "Segment Lengths:")
	fmt.Fprintf(out, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinSegmentLength, ""))
	fmt.Fprintf(out, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxSegmentLength, ""))
	fmt.Fprintf(out, "  Average: %s\n", analysis.FormatMeasurement(result.AvgSegmentLength, ""))

	if infoLongest > 0 {
		fmt.Fprintln(out, "\nLongest Segments:")
		for _, s := range analysis.FindLongestSegments(result, infoLongest) {
			fmt.Fprintf(out, "  %d -> %d  %s  rise %s\n", s.From, s.To,
				analysis.FormatMeasurement(s.Length, ""), analysis.FormatMeasurement(s.Rise, ""))
		}
	}
	return nil
}
