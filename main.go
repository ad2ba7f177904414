package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/moneta-app/finance-server/api"
	"github.com/moneta-app/finance-server/internal/auth"
	"github.com/moneta-app/finance-server/internal/config"
	"github.com/moneta-app/finance-server/internal/logging"
	"github.com/moneta-app/finance-server/internal/operator"
	"github.com/moneta-app/finance-server/internal/service"
	"github.com/moneta-app/finance-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	// One worker: check-and-write actions stay serialized.
	opDelegator := operator.NewOperatorDelegator(dbStorage, 1)
	opDelegator.Start()

	issuer := auth.NewTokenIssuer(envConfig.JWTSecret, envConfig.AccessTokenTTL, envConfig.RefreshTokenTTL)
	svc := service.NewService(dbStorage, opDelegator, issuer)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:      logger,
			Port:        envConfig.HTTPPort,
			Service:     svc,
			TokenIssuer: issuer,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
