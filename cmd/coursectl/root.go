package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hazyhaar/coursepack/catalog"
	"github.com/hazyhaar/coursepack/ingest"
	"github.com/hazyhaar/coursepack/packscan"

	_ "modernc.org/sqlite"
)

// cliContext carries the flag values and lazily opens the local stores.
type cliContext struct {
	dbPath   string
	blobsDir string
}

func (c *cliContext) pipeline() *packscan.Pipeline {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return packscan.New(packscan.Config{Logger: logger})
}

func (c *cliContext) service() (*ingest.Service, func(), error) {
	store, err := catalog.Open(c.dbPath)
	if err != nil {
		return nil, nil, err
	}
	blobs, err := ingest.NewBlobStore(c.blobsDir)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	svc := ingest.NewService(c.pipeline(), store, blobs, slog.Default())
	return svc, func() { store.Close() }, nil
}

func newRootCommand() *cobra.Command {
	ctx := &cliContext{}

	rootCmd := &cobra.Command{
		Use:           "coursectl",
		Short:         "Course package catalog CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.dbPath, "db", "db/catalog.db", "Catalog database path")
	rootCmd.PersistentFlags().StringVar(&ctx.blobsDir, "blobs", "blobs", "Blob storage directory")

	rootCmd.AddCommand(newImportCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))

	return rootCmd
}
