package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracklight/timesheet-backend-go/internal/config"
	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/pkg/database"
	"github.com/tracklight/timesheet-backend-go/internal/pkg/export"
	"github.com/tracklight/timesheet-backend-go/internal/repository/memory"
	"github.com/tracklight/timesheet-backend-go/internal/repository/postgresql"
	"github.com/tracklight/timesheet-backend-go/internal/repository/sqlitestore"
	timesheetService "github.com/tracklight/timesheet-backend-go/internal/service/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/snapshot"
	"github.com/tracklight/timesheet-backend-go/internal/workspace"
)

var rootCmd = &cobra.Command{
	Use:   "timesheetctl",
	Short: "Operator CLI for the timesheet backend",
	Long: `timesheetctl talks directly to the configured snapshot store.
It shares its configuration with the API server via environment variables.`,
	SilenceUsage: true,
}

func openWorkspace(ctx context.Context) (*workspace.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var store snapshot.Store
	switch cfg.Snapshot.Store {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		pgStore := postgresql.NewSnapshotStore(db)
		if err := pgStore.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("snapshot migration: %w", err)
		}
		store = pgStore
	case "sqlite":
		sqliteStore, err := sqlitestore.Open(cfg.Snapshot.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		store = sqliteStore
	case "memory":
		store = memory.NewSnapshotStore()
	default:
		return nil, fmt.Errorf("unsupported snapshot store %q", cfg.Snapshot.Store)
	}

	return workspace.Open(ctx, store)
}

var (
	exportOutput     string
	exportDepartment string
	exportStartDate  string
	exportEndDate    string
	exportStatus     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export timesheet entries as CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace(cmd.Context())
		if err != nil {
			return err
		}

		criteria := timesheet.FilterCriteria{
			Department: exportDepartment,
			StartDate:  exportStartDate,
			EndDate:    exportEndDate,
		}
		if exportStatus != "" {
			status, ok := timesheet.ParseStatus(exportStatus)
			if !ok {
				return fmt.Errorf("unknown status %q", exportStatus)
			}
			criteria.Status = &status
		}

		entries := timesheetService.FilterEntries(ws.Entries(), ws.Users(), criteria)

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return export.WriteCSV(out, entries, ws.Users(), ws.Projects())
	},
}

var envCmd = &cobra.Command{
	Use:   "env [live|staging]",
	Short: "Show or switch the active environment",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace(cmd.Context())
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Println(ws.Environment())
			return nil
		}

		env, err := snapshot.ParseEnvironment(args[0])
		if err != nil {
			return err
		}
		if err := ws.Switch(cmd.Context(), env); err != nil {
			return err
		}
		fmt.Println("Switched to", env)
		return nil
	},
}

var resetStagingCmd = &cobra.Command{
	Use:   "reset-staging",
	Short: "Reset the staging snapshot to the seed data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace(cmd.Context())
		if err != nil {
			return err
		}
		if err := ws.ResetStaging(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Staging data reset")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write CSV to a file instead of stdout")
	exportCmd.Flags().StringVar(&exportDepartment, "department", "", "Only entries from this department")
	exportCmd.Flags().StringVar(&exportStartDate, "start-date", "", "Earliest date to include (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportEndDate, "end-date", "", "Latest date to include (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportStatus, "status", "", "Only entries with this status")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(resetStagingCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
