package message

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/lithammer/shortuuid/v3"
	"github.com/redis/go-redis/v9"
)

const syncWishlistHandlerName = "sync-wishlist"

// consumerGroup names the Redis-stream consumer group for a handler. Most
// handlers share one group across instances so each event is worked exactly
// once, but sync-wishlist invalidates a per-process cache: every instance
// must see every event, so its group carries a process-unique suffix.
func consumerGroup(handlerName, instanceID string) string {
	if handlerName == syncWishlistHandlerName {
		return "svc-trips." + handlerName + "." + instanceID
	}

	return "svc-trips." + handlerName
}

type RouterDeps struct {
	Logger        watermill.LoggerAdapter
	RedisClient   *redis.Client
	Wishlist      WishlistRefresher
	Dashboard     DashboardRefresher
	Notifications NotificationAppender
}

type Router struct {
	*message.Router
}

func NewRouter(deps RouterDeps) (*Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("creating router: %w", err)
	}

	router.AddMiddleware(correlationIDMiddleware)
	router.AddMiddleware(loggerMiddleware)
	router.AddMiddleware(handlerLogMiddleware)
	router.AddMiddleware(middleware.Retry{
		MaxRetries:      10,
		InitialInterval: time.Millisecond * 100,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          deps.Logger,
	}.Middleware)

	instanceID := shortuuid.New()

	config := cqrs.EventProcessorConfig{
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return redisstream.NewSubscriber(redisstream.SubscriberConfig{
				Client:        deps.RedisClient,
				ConsumerGroup: consumerGroup(params.HandlerName, instanceID),
			}, deps.Logger)
		},
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return params.EventName, nil
		},
		Marshaler: cqrs.JSONMarshaler{
			GenerateName: cqrs.StructName,
		},
		Logger: deps.Logger,
	}

	ep, err := cqrs.NewEventProcessorWithConfig(router, config)
	if err != nil {
		return nil, fmt.Errorf("creating event processor: %w", err)
	}

	handler := NewHandler(deps.Wishlist, deps.Dashboard, deps.Notifications)

	handlers := []cqrs.EventHandler{
		cqrs.NewEventHandler(syncWishlistHandlerName, handler.SyncWishlist),
		cqrs.NewEventHandler("refresh-dashboard-on-booking", handler.RefreshDashboardOnBooking),
		cqrs.NewEventHandler("refresh-dashboard-on-payment", handler.RefreshDashboardOnPayment),
		cqrs.NewEventHandler("notify-booking-paid", handler.NotifyBookingPaid),
		cqrs.NewEventHandler("notify-assistance-resolved", handler.NotifyAssistanceResolved),
	}

	if err := ep.AddHandlers(handlers...); err != nil {
		return nil, fmt.Errorf("adding handlers: %w", err)
	}

	return &Router{router}, nil
}
