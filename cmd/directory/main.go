package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-search/internal/config"
	"github.com/umalmyha/customer-search/internal/infra"
	"github.com/umalmyha/customer-search/internal/repository"
)

const connectTimeout = 5 * time.Second

func main() {
	cfg, err := config.BuildDirectory()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := infra.Logging(cfg.LogCfg); err != nil {
		logrus.Fatal(err)
	}

	fileRepo, err := repository.NewFileCustomerRepository(cfg.SeedFile)
	if err != nil {
		logrus.Fatal(err)
	}

	customerRepo, closeFn, err := customerRepository(cfg, fileRepo)
	if err != nil {
		logrus.Fatal(err)
	}
	defer closeFn()

	app, err := infra.DirectoryRouter(customerRepo)
	if err != nil {
		logrus.Fatal(err)
	}

	start(app, cfg.HTTPCfg)
}

// customerRepository connects to configured source, seeding it from seed file when requested
func customerRepository(cfg config.DirectoryCfg, fileRepo repository.CustomerRepository) (repository.CustomerRepository, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	var (
		customerRepo repository.CustomerRepository
		closeFn      = func() {}
	)

	switch cfg.Source {
	case config.DirectorySourcePostgres:
		pgPool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
		if err != nil {
			return nil, nil, err
		}
		customerRepo = repository.NewPostgresCustomerRepository(pgPool)
		closeFn = pgPool.Close
	case config.DirectorySourceMongo:
		mongoClient, err := infra.Mongodb(ctx, cfg.MongoCfg)
		if err != nil {
			return nil, nil, err
		}
		customerRepo = repository.NewMongoCustomerRepository(mongoClient, cfg.MongoCfg.Database)
		closeFn = func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				logrus.Errorf("failed to gracefully close connection to mongo - %v", err)
			}
		}
	default:
		return fileRepo, closeFn, nil
	}

	if cfg.SeedOnStart {
		seeder, ok := customerRepo.(repository.CustomerSeeder)
		if !ok {
			closeFn()
			return nil, nil, fmt.Errorf("%s directory source can't be seeded", cfg.Source)
		}

		n, err := repository.Seed(ctx, fileRepo, seeder)
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		logrus.WithFields(logrus.Fields{"source": cfg.Source, "count": n}).Info("directory has been seeded")
	}

	return customerRepo, closeFn, nil
}

func start(app *echo.Echo, httpCfg config.DirectoryHTTPCfg) {
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
