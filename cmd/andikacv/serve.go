package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gedeon/andikacv/internal/config"
	"github.com/gedeon/andikacv/internal/db"
	"github.com/gedeon/andikacv/internal/export"
	"github.com/gedeon/andikacv/internal/server"
	"github.com/gedeon/andikacv/internal/session"
	"github.com/gedeon/andikacv/internal/storage"
	"github.com/gedeon/andikacv/pkg/logger"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the AndikaCV HTTP API server",
	Long: `Starts the REST API: authentication, CV and cover letter persistence,
template catalog, PDF export and photo uploads. Configuration comes from
environment variables (DATABASE_URL, JWT_SECRET, REDIS_URL, CLOUDINARY_*).`,
	RunE: runServe,
}

var servePort string

func init() {
	serveCommand.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCommand)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	log := logger.New(cfg.Env)

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sessions := session.NewStore(nil)
	if cfg.RedisURL != "" {
		sessions, err = session.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
	} else {
		log.Warn("REDIS_URL not set, logout revocation disabled")
	}

	uploader := storage.Disabled()
	if cfg.Cloudinary.CloudName != "" {
		uploader, err = storage.NewCloudinaryUploader(
			cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			return fmt.Errorf("failed to configure cloudinary: %w", err)
		}
	} else {
		log.Warn("Cloudinary credentials not set, photo uploads disabled")
	}

	srv, err := server.New(server.Deps{
		Config:   cfg,
		Logger:   log,
		DB:       database,
		Sessions: sessions,
		Uploader: uploader,
		PDF:      export.NewPDFRenderer(cfg.ChromePath),
	})
	if err != nil {
		database.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Info("configuration loaded", zap.String("env", cfg.Env), zap.String("port", cfg.Port))
	return srv.Start()
}
