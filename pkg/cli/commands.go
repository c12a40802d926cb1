package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aigovhub/lineage/pkg/server"
	"github.com/aigovhub/lineage/pkg/store/sql"
)

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lineage HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return server.Launch(cmd.Context(), opts.logger, opts.cfg)
		},
	}

	cmd.Flags().String("address", "", "address to listen on (default localhost:5000)")

	return cmd
}

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the lineage tables",
		RunE: func(_ *cobra.Command, _ []string) error {
			database, err := sql.NewDatabase(opts.logger, opts.cfg)
			if err != nil {
				return err
			}

			defer func() {
				if sqlDB, err := database.DB(); err == nil {
					_ = sqlDB.Close()
				}
			}()

			if err := sql.Migrate(database); err != nil {
				return err
			}

			opts.logger.Info("Lineage tables are up to date")

			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
