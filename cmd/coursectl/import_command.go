package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newImportCommand(ctx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Import course packages into the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStores, err := ctx.service()
			if err != nil {
				return err
			}
			defer closeStores()

			var rows [][]string
			imported, deduped, failed := 0, 0, 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					failed++
					continue
				}
				res, err := svc.Import(cmd.Context(), filepath.Base(path), data)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					failed++
					continue
				}
				status := "imported"
				if res.Deduplicated {
					status = "duplicate"
					deduped++
				} else {
					imported++
				}
				rows = append(rows, []string{
					res.Course.ID, res.Course.Format, res.Course.Title, status,
				})
			}

			if len(rows) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(),
					renderTable([]string{"ID", "FORMAT", "TITLE", "STATUS"}, rows))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d imported, %d duplicates, %d failed\n",
				imported, deduped, failed)
			if failed > 0 {
				return fmt.Errorf("%d package(s) failed", failed)
			}
			return nil
		},
	}
}
