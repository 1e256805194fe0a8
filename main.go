package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/api"
	"github.com/carson-networks/budget-tracker/internal/config"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/notify"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("budget-tracker starting")

	// run returns only after its deferred cleanup, so exiting here leaves
	// no storage handle or queue behind.
	if err := run(logger); err != nil {
		os.Exit(1)
	}
	logrus.Info("budget-tracker stopped")
}

func run(logger *logrus.Logger) error {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Error("config.ProcessEnvironmentVariables")
		return err
	}
	logger.SetLevel(envConfig.LogLevel)
	logrus.SetLevel(envConfig.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ledger, err := storage.NewStorage(ctx, envConfig, logger)
	if err != nil {
		logger.WithError(err).Error("storage.NewStorage")
		return err
	}
	defer func() {
		if err := ledger.Close(); err != nil {
			logger.WithError(err).Error("storage.Close")
		}
	}()

	delegator := operator.NewOperatorDelegator(ledger, envConfig.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	notifiers := notify.Multi{notify.NewLogNotifier(logger)}
	if envConfig.AMQPURL != "" {
		publisher, err := notify.NewAMQPPublisher(envConfig.AMQPURL, envConfig.AMQPExchange, envConfig.AMQPRoutingKey)
		if err != nil {
			logger.WithError(err).Error("notify.NewAMQPPublisher")
			return err
		}
		defer publisher.Close()
		notifiers = append(notifiers, publisher)
	}

	svc := service.NewService(ledger, delegator, notifiers, service.Options{
		Location: envConfig.Location,
		Logger:   logger,
	})

	httpRest := api.Rest{
		Logger:         logger,
		Port:           envConfig.Port,
		Service:        svc,
		AllowedOrigins: envConfig.CORSAllowedOrigins,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("api.Serve")
		return err
	}
	return nil
}
