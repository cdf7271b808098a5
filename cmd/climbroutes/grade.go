package main

import (
	"fmt"
	"strconv"

	"github.com/siili/climbingroutes/pkg/grade"
	"github.com/spf13/cobra"
)

var gradeAll bool

var gradeCmd = &cobra.Command{
	Use:   "grade [difficulty]",
	Short: "Show the grade text and color band of a difficulty",
	Long:  "Convert a difficulty (0-35) into its grade label and color band. With --all, print the whole scale.",
	Args:  cobra.RangeArgs(0, 1),
	RunE:  runGrade,
}

func init() {
	gradeCmd.Flags().BoolVar(&gradeAll, "all", false, "Print every difficulty")
	rootCmd.AddCommand(gradeCmd)
}

func runGrade(cmd *cobra.Command, args []string) error {
	if gradeAll || len(args) == 0 {
		for d := grade.MinDifficulty; d <= grade.MaxDifficulty; d++ {
			if err := printGrade(cmd, d); err != nil {
				return err
			}
		}
		return nil
	}

	d, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("difficulty must be a number: %w", err)
	}
	return printGrade(cmd, d)
}

func printGrade(cmd *cobra.Command, d int) error {
	text, err := grade.Text(d)
	if err != nil {
		return err
	}
	band, err := grade.BandFor(d)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%2d  %-3s  %-6s  %s\n", d, text, band, grade.HexColor(palette.Color(band)))
	return err
}
