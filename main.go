package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/cashbox-server/api"
	"github.com/carson-networks/cashbox-server/internal/config"
	"github.com/carson-networks/cashbox-server/internal/logging"
	"github.com/carson-networks/cashbox-server/internal/operator"
	"github.com/carson-networks/cashbox-server/internal/service"
	"github.com/carson-networks/cashbox-server/internal/storage"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		logrus.WithError(err).Fatal("config.LoadDotEnv")
	}

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("cashbox-server starting")

	if envConfig.RunMigrations {
		if err := storage.RunMigrations(envConfig.PostgresURL(), logger); err != nil {
			logger.WithError(err).Fatal("storage.RunMigrations")
		}
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, logger, envConfig.OperatorWorkers, envConfig.OperatorQueueSize)
	delegator.Start()

	svc := service.NewService(dbStorage.Reader(), delegator, envConfig.ReportLocation)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
			Pinger:  dbStorage,
		}
		return httpRest.Serve(groupCtx)
	})

	err = group.Wait()
	delegator.Stop()
	if err != nil {
		logger.WithError(err).Error("cashbox-server stopped with error")
		return
	}
	logger.Info("cashbox-server stopped")
}
