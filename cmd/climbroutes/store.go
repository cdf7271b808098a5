package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/siili/climbingroutes/internal/store"
	"github.com/siili/climbingroutes/pkg/analysis"
	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/route"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save [script.yaml]",
	Short: "Save the route built by a script to the database",
	Args:  cobra.ExactArgs(1),
	RunE:  runSave,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored routes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a stored route",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a stored route",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(saveCmd, listCmd, showCmd, deleteCmd)
}

func openStore() (*store.Store, error) {
	return store.Open(cfg.Storage.Path, log)
}

func runSave(cmd *cobra.Command, args []string) error {
	r, err := scriptRoute(args[0])
	if err != nil {
		return err
	}

	if v := r.Info().Validate(); !v.OK() {
		return fmt.Errorf("route cannot be saved: %w", v.Err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Save(r); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", r.ID(), r.Info().DisplayName())
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	routes, err := s.List()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGRADE\tTYPE\tCLIPS\tUPDATED")
	for _, r := range routes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			r.ID, r.Name, r.Grade, r.Type, r.Waypoints, r.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid route id: %w", err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	sys := route.NewSelectionSystem()
	r, err := s.Load(id, func(pos geometry.Vector3) route.Node { return sys.Place(pos) },
		route.WithPalette(palette), route.WithLogger(log))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Route %s\n", r.ID())
	printRoute(out, r)

	result := analysis.AnalyzeRoute(r)
	fmt.Fprintf(out, "\nTotal length: %s, height gain: %s\n",
		analysis.FormatMeasurement(result.TotalLength, ""),
		analysis.FormatMeasurement(result.HeightGain, ""))
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid route id: %w", err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Delete(id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}
