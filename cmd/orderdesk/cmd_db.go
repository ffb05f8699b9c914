package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/config"
	"github.com/shashiranjanraj/orderdesk/database/seeders"
	"github.com/shashiranjanraj/orderdesk/pkg/database"
	"github.com/shashiranjanraj/orderdesk/pkg/migration"
)

// bootDB loads config and opens the database connection.
func bootDB() (*gorm.DB, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	return database.ConnectFromConfig()
}

// withDB runs fn against a freshly opened connection and closes it after.
func withDB(fn func(db *gorm.DB) error) error {
	db, err := bootDB()
	if err != nil {
		return err
	}
	defer database.Close(db) //nolint:errcheck
	return fn(db)
}

// orderdesk migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Running migrations…")
			_, err := migration.New(db, out).Run()
			return err
		})
	},
}

// orderdesk migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Rolling back last batch…")
			_, err := migration.New(db, out).Rollback()
			return err
		})
	},
}

// orderdesk migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			_, err := migration.New(db, cmd.OutOrStdout()).Status()
			return err
		})
	},
}

// orderdesk seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Running seeders…")
			svc := services.New(repositories.NewSet(db))
			return seeders.RunAll(cmd.Context(), svc, out)
		})
	},
}
