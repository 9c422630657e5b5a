package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"trips/clients"
	"trips/entity"
)

var ErrServerClosed = http.ErrServerClosed

type RouterDeps struct {
	Users         clients.UsersClient
	Packages      clients.PackagesClient
	Bookings      clients.BookingsClient
	Insurance     clients.InsuranceClient
	Reviews       clients.ReviewsClient
	Assistance    clients.AssistanceClient
	Sessions      SessionStore
	Wishlist      WishlistStore
	Notifications NotificationsLister
	Payments      PaymentProvider
	Stats         StatsProvider
	Publisher     Publisher
}

func NewRouter(deps RouterDeps) *echo.Echo {
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Use(middleware.Recover())
	server.Use(correlationIDMiddleware)

	server.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	h := handler{
		users:         deps.Users,
		packages:      deps.Packages,
		bookings:      deps.Bookings,
		insurance:     deps.Insurance,
		reviews:       deps.Reviews,
		assistance:    deps.Assistance,
		sessions:      deps.Sessions,
		wishlist:      deps.Wishlist,
		notifications: deps.Notifications,
		payments:      deps.Payments,
		stats:         deps.Stats,
		publisher:     deps.Publisher,
	}

	server.POST("/register", h.Register)
	server.POST("/login", h.Login)

	server.GET("/packages", h.ListPackages)
	server.GET("/packages/:id", h.GetPackage)
	server.GET("/packages/:id/reviews", h.ListPackageReviews)
	server.GET("/insurance/plans", h.ListInsurancePlans)

	authed := server.Group("", h.requireSession)
	authed.POST("/logout", h.Logout)
	authed.GET("/profile", h.GetProfile)
	authed.PUT("/profile", h.UpdateProfile)
	authed.GET("/wishlist", h.GetWishlist)
	authed.PUT("/wishlist/:packageID", h.ToggleWishlist)
	authed.POST("/bookings", h.CreateBooking)
	authed.GET("/bookings", h.ListOwnBookings)
	authed.POST("/bookings/:id/payment", h.PayBooking)
	authed.POST("/reviews", h.CreateReview)
	authed.POST("/contact", h.CreateContactRequest)
	authed.POST("/assistance", h.CreateAssistanceRequest)
	authed.GET("/assistance", h.ListOwnAssistanceRequests)
	authed.GET("/notifications", h.ListNotifications)

	agent := server.Group("", h.requireSession, requireRole(entity.RoleAgent, entity.RoleAdmin))
	agent.POST("/packages", h.CreatePackage)
	agent.PUT("/packages/:id", h.UpdatePackage)
	agent.DELETE("/packages/:id", h.DeletePackage)
	agent.PUT("/reviews/:id/response", h.RespondToReview)
	agent.PUT("/bookings/:id/status", h.UpdateBookingStatus)
	agent.GET("/agent/stats", h.GetAgentStats)

	admin := server.Group("/admin", h.requireSession, requireRole(entity.RoleAdmin))
	admin.GET("/stats", h.GetAdminStats)
	admin.GET("/users", h.ListUsers)
	admin.GET("/bookings", h.ListAllBookings)
	admin.GET("/assistance", h.ListAllAssistanceRequests)
	admin.PUT("/assistance/:id/resolve", h.ResolveAssistanceRequest)

	return server
}
