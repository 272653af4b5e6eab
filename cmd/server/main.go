package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"wave-estimates-backend/internal/config"
	"wave-estimates-backend/internal/db"
	"wave-estimates-backend/internal/routes"
)

var rootCmd = &cobra.Command{
	Use:   "wave-estimates",
	Short: "REST backend for customers, items and estimates",
	Long:  `Serves the estimates API. Without a subcommand it behaves like "serve".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Apply the schema, seed demo data and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema and print the migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, gdb, err := open()
		if err != nil {
			return err
		}
		defer closeDB(gdb)

		if err := db.Migrate(gdb, cfg.Database.Dialect(), cfg.Database.DSN(), cfg.Database.Migrations); err != nil {
			return err
		}
		if !cfg.Database.Migrations {
			fmt.Println("Schema applied with AutoMigrate (set MIGRATIONS=true for versioned SQL migrations)")
			return nil
		}

		status, err := db.GetMigrationStatus(cfg.Database.Dialect(), cfg.Database.DSN())
		if err != nil {
			return err
		}
		fmt.Printf("Migration version: %d/%d (dirty=%v, pending=%v)\n",
			status.CurrentVersion, status.LatestVersion, status.Dirty, status.Pending)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo customers, items and estimates into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, gdb, err := open()
		if err != nil {
			return err
		}
		defer closeDB(gdb)

		if err := db.Migrate(gdb, cfg.Database.Dialect(), cfg.Database.DSN(), cfg.Database.Migrations); err != nil {
			return err
		}
		seeded, err := db.Seed(cmd.Context(), gdb)
		if err != nil {
			return err
		}
		if !seeded {
			fmt.Println("Database already has customers, nothing seeded")
		}
		return nil
	},
}

func open() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	gdb, err := config.InitDB(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, gdb, nil
}

func closeDB(gdb *gorm.DB) {
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.Close()
	}
}

func serve() error {
	cfg, gdb, err := open()
	if err != nil {
		return err
	}
	defer closeDB(gdb)

	if err := db.Migrate(gdb, cfg.Database.Dialect(), cfg.Database.DSN(), cfg.Database.Migrations); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if cfg.Database.Seed {
		if _, err := db.Seed(context.Background(), gdb); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      routes.NewRouter(cfg, gdb),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
		log.Println("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
