package commands

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/activitytracker/core/internal/adapters/repository"
	"github.com/activitytracker/core/internal/infrastructure/config"
	"github.com/activitytracker/core/internal/infrastructure/database"
	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/infrastructure/server"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Activity Tracker API server",
		Long:  "Start the Activity Tracker API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewMigrateCommand creates the migrate command with subcommands
func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Storage migration commands",
		Long:  "Manage storage schema migrations (up, down, version)",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Run all up migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration("up")
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Run all down migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration("down")
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print current migration version",
		Run: func(cmd *cobra.Command, args []string) {
			showMigrationVersion()
		},
	})

	return migrateCmd
}

// NewBackupCommand creates the backup command with export/import subcommands
func NewBackupCommand() *cobra.Command {
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Backup commands",
		Long:  "Export the tracked data to a JSON file or restore it from one",
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tracked data as JSON",
		Run: func(cmd *cobra.Command, args []string) {
			output, _ := cmd.Flags().GetString("output")
			runExport(output)
		},
	}
	exportCmd.Flags().String("output", "", "Output file path (defaults to stdout)")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all tracked data with a JSON backup",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runImport(args[0])
		},
	}

	backupCmd.AddCommand(exportCmd)
	backupCmd.AddCommand(importCmd)
	return backupCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Activity Tracker version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Activity Tracker Core v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	db, err := database.New(cfg.Storage)
	if err != nil {
		appLogger.Fatal("Failed to open storage", "error", err)
	}
	defer db.Close()

	if err := db.MigrateUp(); err != nil {
		appLogger.Fatal("Failed to migrate storage", "error", err)
	}

	srv, err := server.New(cfg, db, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting Activity Tracker API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
	)

	if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		appLogger.Fatal("Server failed to start", "error", err)
	}
}

func openStorage() (*config.Config, *database.DB) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	return cfg, db
}

func runMigration(direction string) {
	_, db := openStorage()
	defer db.Close()

	var err error
	switch direction {
	case "up":
		err = db.MigrateUp()
	case "down":
		err = db.MigrateDown()
	}

	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	fmt.Printf("Migration %s completed successfully\n", direction)
}

func showMigrationVersion() {
	_, db := openStorage()
	defer db.Close()

	version, dirty, err := db.MigrationVersion()
	if err != nil {
		log.Fatalf("Failed to get migration version: %v", err)
	}

	fmt.Printf("Current migration version: %d\n", version)
	fmt.Printf("Dirty: %t\n", dirty)
}

func runExport(output string) {
	_, db := openStorage()
	defer db.Close()

	if err := db.MigrateUp(); err != nil {
		log.Fatalf("Failed to migrate storage: %v", err)
	}

	store := repository.NewDocumentRepository(repository.NewKVRepository(db.DB))

	data, err := store.Export(context.Background())
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	if output == "" {
		fmt.Println(string(data))
		return
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		log.Fatalf("Failed to write export file: %v", err)
	}
	fmt.Printf("Exported data to %s\n", output)
}

func runImport(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read import file: %v", err)
	}

	_, db := openStorage()
	defer db.Close()

	if err := db.MigrateUp(); err != nil {
		log.Fatalf("Failed to migrate storage: %v", err)
	}

	store := repository.NewDocumentRepository(repository.NewKVRepository(db.DB))

	if err := store.Import(context.Background(), data); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	fmt.Println("Import completed successfully")
}
