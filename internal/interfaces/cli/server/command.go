package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/infrastructure/persistence/seeds"
	httpRouter "helpdesk/internal/interfaces/http"
	"helpdesk/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
	seedData    bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the helpdesk HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run schema migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&seedData, "seed", false, "Load demo users, tickets, and articles on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server",
		"environment", env,
		"driver", cfg.Database.Driver,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if cfg.Database.Driver != "memory" {
		if err := database.Init(&cfg.Database); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer database.Close()

		if autoMigrate {
			if env == "production" {
				log.Warnw("auto-migration is enabled in production environment")
			}
			strategy := migration.NewGormAutoMigrateStrategy()
			if err := strategy.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
				return fmt.Errorf("auto-migration failed: %w", err)
			}
		}

		if seedData {
			hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
			if err := seeds.Seed(database.Get(), hasher); err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
		}
	}

	container, err := httpRouter.NewContainer(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}

	if err := container.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	log.Infow("event dispatcher started")

	container.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	if err := container.Shutdown(ctx); err != nil {
		log.Warnw("container shutdown reported an error", "error", err)
	}

	log.Infow("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
