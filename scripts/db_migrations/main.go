package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/cashbox-server/internal/config"
	"github.com/carson-networks/cashbox-server/internal/logging"
	"github.com/carson-networks/cashbox-server/internal/storage"
)

func main() {
	if err := server_config.LoadDotEnv(".env"); err != nil {
		logrus.WithError(err).Fatal("LoadDotEnv")
	}

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(env.LogLevel)
	if err := storage.RunMigrations(env.PostgresURL(), logger); err != nil {
		logger.WithError(err).Fatal("RunMigrations")
	}
}
