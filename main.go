package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/clienthub/clienthub/internal/config"
	"github.com/clienthub/clienthub/internal/infra"
	"github.com/clienthub/clienthub/internal/repository"
	"github.com/clienthub/clienthub/internal/service"
	"github.com/clienthub/clienthub/pkg/db/transactor"
)

// @title       clienthub API
// @version     1.0
// @description Customer relationship management API

// @securityDefinitions.apikey ApiKeyAuth
// @in   header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Infof("no .env file loaded - %v", err)
	}

	cfg, err := config.Build()
	if err != nil {
		logrus.Fatalf("failed to build config - %v", err)
	}

	userRps, customerRps, closeStore, err := connectStorage(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to %s storage - %v", cfg.StorageCfg.Backend, err)
	}
	defer closeStore()

	userSvc := service.NewUserService(userRps)
	customerSvc := service.NewCustomerService(customerRps)

	e, err := infra.Router(userSvc, customerSvc, cfg.AuthCfg)
	if err != nil {
		logrus.Fatalf("failed to build server - %v", err)
	}

	start(e, cfg.ServerCfg)
}

// connectStorage wires the repositories of the configured backend. Exactly
// one backend is active per deployment; an unreachable store is fatal.
func connectStorage(cfg config.Config) (repository.UserRepository, repository.CustomerRepository, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ServerCfg.ConnectTimeout)
	defer cancel()

	switch cfg.StorageCfg.Backend {
	case config.BackendPostgres:
		pool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
		if err != nil {
			return nil, nil, nil, err
		}

		trx := transactor.NewPgxWithinTransactionExecutor(pool)
		return repository.NewPostgresUserRepository(trx), repository.NewPostgresCustomerRepository(trx), pool.Close, nil
	case config.BackendMongo:
		client, err := infra.Mongodb(ctx, cfg.MongoCfg)
		if err != nil {
			return nil, nil, nil, err
		}

		db := client.Database(cfg.MongoCfg.Database)
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logrus.Errorf("failed to disconnect from mongodb - %v", err)
			}
		}
		return repository.NewMongoUserRepository(db), repository.NewMongoCustomerRepository(db), closeFn, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageCfg.Backend)
	}
}

func start(e *echo.Echo, cfg config.ServerCfg) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- e.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := e.Shutdown(ctx); err != nil {
			logrus.Fatalf("failed to stop server gracefully - %v", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("shutting down the server, unexpected error occurred - %v", err)
		}
	}
}
