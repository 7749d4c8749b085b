package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop/cmd"
	"shop/internal/adapters/out/kafka"
	"shop/internal/adapters/out/postgres"
	"shop/internal/core/ports"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

func main() {
	var envFile string

	root := &cobra.Command{
		Use:          "shop",
		Short:        "Order management service",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and the scheduled jobs",
			RunE: func(c *cobra.Command, _ []string) error {
				return serve(c.Context(), envFile)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(_ *cobra.Command, _ []string) error {
				return migrate(envFile)
			},
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Fatalf("shop: %v", err)
	}
}

func migrate(envFile string) error {
	configs, err := cmd.LoadConfig(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := postgres.Open(configs.Connection().DSN())
	if err != nil {
		return err
	}

	return postgres.Migrate(db)
}

func serve(ctx context.Context, envFile string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs, err := cmd.LoadConfig(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := postgres.Open(configs.Connection().DSN())
	if err != nil {
		return err
	}

	var publisher ports.OrderEventPublisher
	if configs.KafkaHost != "" {
		kafkaPublisher := kafka.NewOrderEventPublisher(
			kafka.NewWriter(configs.KafkaHost, configs.KafkaOrderChangedTopic),
		)
		defer func() {
			if closeErr := kafkaPublisher.Close(); closeErr != nil {
				logger.Error("Failed to close kafka writer", "error", closeErr)
			}
		}()
		publisher = kafkaPublisher
	}

	app := cmd.NewCompositionRoot(configs, db, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Error("Failed to shut down http server", "error", shutdownErr)
		}
	}()

	logger.Info("Starting http server", "port", configs.HTTPPort)
	if err = e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
