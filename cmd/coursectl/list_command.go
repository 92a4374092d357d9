package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cataloged courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStores, err := ctx.service()
			if err != nil {
				return err
			}
			defer closeStores()

			courses, err := svc.Store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog is empty")
				return nil
			}

			rows := make([][]string, 0, len(courses))
			for _, c := range courses {
				flags := ""
				if c.Required {
					flags = "required"
				}
				if c.NeedsApproval {
					if flags != "" {
						flags += ",approval"
					} else {
						flags = "approval"
					}
				}
				rows = append(rows, []string{
					c.ID, c.Format, c.Title, c.EntryPoint, flags, c.CreatedAt,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "FORMAT", "TITLE", "ENTRY POINT", "FLAGS", "CREATED"},
				rows))
			return nil
		},
	}
}
