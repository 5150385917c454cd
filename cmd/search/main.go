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
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-search/internal/config"
	"github.com/umalmyha/customer-search/internal/infra"
)

const connectTimeout = 5 * time.Second

// @title       Customer Search API
// @version     1.0
// @description Searches customers of customers directory.
// @host        localhost:3000
// @BasePath    /
func main() {
	cfg, err := config.BuildSearch()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := infra.Logging(cfg.LogCfg); err != nil {
		logrus.Fatal(err)
	}

	var redisClient *redis.Client
	if cfg.SessionCfg.Store == config.SessionStoreRedis {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		redisClient, err = infra.Redis(ctx, cfg.RedisCfg)
		cancel()
		if err != nil {
			logrus.Fatal(err)
		}

		defer func() {
			if err := redisClient.Close(); err != nil {
				logrus.Errorf("failed to gracefully close connection to redis - %v", err)
			}
		}()
	}

	app, err := infra.SearchRouter(cfg, redisClient)
	if err != nil {
		logrus.Fatal(err)
	}

	start(app, cfg.HTTPCfg)
}

func start(app *echo.Echo, httpCfg config.SearchHTTPCfg) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", httpCfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logrus.Errorf("failed to stop server gracefully - %v", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("shutting down the server, unexpected error occurred - %v", err)
		}
	}
}
