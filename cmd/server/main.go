package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"person-api/internal/api"
	"person-api/internal/auth"
	"person-api/internal/config"
	"person-api/internal/database"
	"person-api/internal/domain/repositories"
	"person-api/internal/logging"
	"person-api/internal/metrics"
	"person-api/internal/services"
	"person-api/internal/validation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("person-api stopped")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn().Err(err).Msg("closing database")
		}
	}()

	validator := validation.New()
	personService := services.NewPersonService(repositories.NewPersonRepository(db), validator, logger)

	var credentials auth.CredentialProvider
	if !cfg.Auth.Disabled {
		principal, err := auth.NewPrincipal(cfg.Auth.Username, cfg.Auth.Password, "USER")
		if err != nil {
			return err
		}
		provider, err := auth.NewInMemoryCredentialProvider(principal)
		if err != nil {
			return err
		}
		credentials = provider
	}

	app := api.NewApp(api.Options{
		PersonService:  personService,
		Validator:      validator,
		Logger:         logger,
		Metrics:        metrics.New(),
		Credentials:    credentials,
		Realm:          cfg.Auth.Realm,
		RequestTimeout: cfg.RequestTimeout,
		Health: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("address", cfg.ListenAddress).Msg("person-api listening")
		errCh <- app.Listen(cfg.ListenAddress)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
