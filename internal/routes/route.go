package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/carhub/internal/container"
	"github.com/joshua-takyi/carhub/internal/handlers"
	"github.com/joshua-takyi/carhub/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	secret := []byte(container.Config.JWTSecret)

	// liveness
	r.GET("/", func(c *gin.Context) {
		c.String(200, "carhub api is running")
	})

	// public routes
	r.POST("/jwt", handlers.IssueToken(secret))
	r.POST("/users", handlers.RegisterUser(container.UserService))
	r.GET("/users", handlers.ListUsers(container.UserService))
	r.GET("/cars", handlers.RecentListings(container.ListingService))
	r.GET("/search", handlers.SearchListings(container.ListingService))

	// guarded routes
	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(secret))
	{
		protected.POST("/cars", handlers.CreateListing(container.ListingService))
		protected.GET("/my-listings", handlers.MyListings(container.ListingService))
		protected.PUT("/cars/:id", handlers.UpdateListing(container.ListingService))
		protected.DELETE("/cars/:id", handlers.DeleteListing(container.ListingService))
		protected.POST("/bookings", handlers.CreateBooking(container.BookingService))
		protected.GET("/bookings", handlers.MyBookings(container.BookingService))
	}

	return r
}
