package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/insurance/internal/config"
	"github.com/umalmyha/insurance/internal/infra"
	"github.com/umalmyha/insurance/internal/repository"
)

const DefaultStoreConnectTimeout = 5 * time.Second

func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	client, err := connectToStore(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer client.Close()

	start(client, cfg)
}

func connectToStore(cfg config.Config) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultStoreConnectTimeout)
	defer cancel()

	client, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		return nil, err
	}

	if err := repository.Seed(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to seed initial collections - %w", err)
	}
	return client, nil
}

func start(client *redis.Client, cfg config.Config) {
	app, err := infra.Router(client, cfg)
	if err != nil {
		logrus.Fatalf("failed to build server - %s", err)
	}

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.ServerCfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ServerCfg.ShutdownTimeout)
		defer cancel()

		app.Logger.Infof("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			app.Logger.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
