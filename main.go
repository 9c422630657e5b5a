package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"trips/clients"
	"trips/log"
	"trips/service"
)

func main() {
	log.Init(logrus.InfoLevel)
	logger := watermill.NewStdLogger(false, false)

	if err := run(logger); err != nil {
		logger.Error("failed to run", err, nil)
	}
}

func run(logger watermill.LoggerAdapter) error {
	gateway, err := clients.NewGateway(os.Getenv("GATEWAY_ADDR"))
	if err != nil {
		return fmt.Errorf("creating gateway client: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Error("failed to close redis connection", err, nil)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	svc, err := service.New(logger, rdb, gateway, os.Getenv("SERVICE_TOKEN"))
	if err != nil {
		return fmt.Errorf("creating service: %w", err)
	}

	return svc.Run(ctx)
}
