package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes REST endpoints for resume analysis, categorization, and skill extraction.",
	RunE:  runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default from config, :8080)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	analyzer, err := newAnalyzer(ctx, cfg, logger, cfg.EnableSummarization)
	if err != nil {
		return err
	}

	// The database is optional; without it the server still serves the
	// stateless analysis endpoints.
	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("preparing database schema: %w", err)
		}
		logger.Info("storage enabled")
	} else {
		logger.Warn("DATABASE_URL not set, storage endpoints disabled")
	}

	srv := server.New(server.Config{
		ListenAddr:  cfg.ListenAddr,
		MaxFileSize: cfg.MaxFileSizeBytes(),
	}, analyzer, database, logger)

	logger.Info("starting the resume analyzer API", zap.String("addr", cfg.ListenAddr))
	return srv.Start()
}
