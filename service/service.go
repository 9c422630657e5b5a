package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"trips/clients"
	"trips/dashboard"
	"trips/http"
	"trips/message"
	"trips/payment"
	"trips/session"
)

type Service struct {
	msgRouter  *message.Router
	httpRouter *echo.Echo
	poller     *dashboard.Poller
}

func New(
	logger watermill.LoggerAdapter,
	redisClient *redis.Client,
	gateway *clients.Gateway,
	serviceToken string,
) (*Service, error) {
	usersClient := clients.NewUsersClient(gateway)
	packagesClient := clients.NewPackagesClient(gateway)
	bookingsClient := clients.NewBookingsClient(gateway)
	insuranceClient := clients.NewInsuranceClient(gateway)
	reviewsClient := clients.NewReviewsClient(gateway)
	assistanceClient := clients.NewAssistanceClient(gateway)

	eventBus, err := message.NewEventBus(redisClient, logger)
	if err != nil {
		return nil, fmt.Errorf("creating event bus: %w", err)
	}

	sessions := session.NewStore(redisClient)
	wishlist := session.NewWishlist(redisClient, eventBus)
	notifications := session.NewNotifications(redisClient)

	poller := dashboard.NewPoller(usersClient, packagesClient, bookingsClient, serviceToken, dashboard.DefaultInterval)

	payments := payment.NewMockProvider(bookingsClient, eventBus, payment.DefaultProcessingDelay)

	msgRouter, err := message.NewRouter(message.RouterDeps{
		Logger:        logger,
		RedisClient:   redisClient,
		Wishlist:      wishlist,
		Dashboard:     poller,
		Notifications: notifications,
	})
	if err != nil {
		return nil, fmt.Errorf("creating message router: %w", err)
	}

	httpRouter := http.NewRouter(http.RouterDeps{
		Users:         usersClient,
		Packages:      packagesClient,
		Bookings:      bookingsClient,
		Insurance:     insuranceClient,
		Reviews:       reviewsClient,
		Assistance:    assistanceClient,
		Sessions:      sessions,
		Wishlist:      wishlist,
		Notifications: notifications,
		Payments:      payments,
		Stats:         poller,
		Publisher:     eventBus,
	})

	return &Service{
		msgRouter:  msgRouter,
		httpRouter: httpRouter,
		poller:     poller,
	}, nil
}

func (s Service) Run(ctx context.Context) error {
	g, runCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.msgRouter.Run(runCtx); err != nil {
			return fmt.Errorf("running messaging router: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		// Wait for message router
		<-s.msgRouter.Running()

		return s.poller.Run(runCtx)
	})

	g.Go(func() error {
		<-s.msgRouter.Running()

		logrus.Info("Starting HTTP server...")
		err := s.httpRouter.Start(":8080")
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-runCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		logrus.Info("Shutting down HTTP server...")
		if err := s.httpRouter.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("waiting for shutdown: %w", err)
	}
	logrus.Info("Shutdown complete.")

	return nil
}
