package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/activitytracker/core/cmd/tracker/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Activity Tracker API Server",
		Long:  `Activity Tracker is a personal activity tracking service covering items, categories, favorites, a workout log, a wishlist and profile settings.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewBackupCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
