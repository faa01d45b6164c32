package cmd

import (
	"fmt"
	"time"

	"github.com/sadopc/petpal/internal/export"
	"github.com/spf13/cobra"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export to-dos as CSV or everything as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "csv" && format != "json" {
				return fmt.Errorf("unknown format %q (want csv or json)", format)
			}
			if out == "" {
				out = export.Filename(format, time.Now())
			}

			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.load(cmd.Context()); err != nil {
				return err
			}

			snap := s.store.Snapshot()
			if format == "csv" {
				err = export.ToCSV(snap.Todos, snap.Pets, out)
			} else {
				err = export.ToJSON(snap, out)
			}
			if err != nil {
				return err
			}

			s.log.Info("exported", "format", format, "path", out)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pets and %d to-dos to %s\n", len(snap.Pets), len(snap.Todos), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "export format: csv or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default petpal-export-<date>.<format>)")
	return cmd
}
