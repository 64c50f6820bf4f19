package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stays-backend/controllers"
	"stays-backend/metrics"
	"stays-backend/middleware"
	"stays-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the route tree.
func SetupRouter(
	auth *services.AuthService,
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	cc *controllers.ContactController,
	pc *controllers.ProfileController,
	adc *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), metrics.Middleware())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", ac.SignUp)
			authRoutes.POST("/login", ac.SignIn)
			authRoutes.GET("/me", middleware.AuthRequired(auth), ac.Me)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.ListRooms)
			rooms.GET("/:id", rc.GetRoom)
			rooms.GET("/:id/reviews", rc.GetRoomReviews)
			rooms.GET("/:id/availability", rc.CheckAvailability)
		}

		api.POST("/quotes", rc.Quote)
		api.POST("/contact", cc.CreateMessage)

		authed := api.Group("")
		authed.Use(middleware.AuthRequired(auth))
		{
			bookings := authed.Group("/bookings")
			{
				bookings.POST("", bc.CreateBooking)
				bookings.GET("", bc.ListMyBookings)
				bookings.POST("/:id/cancel", bc.CancelBooking)
			}

			authed.GET("/profile", pc.GetProfile)
			authed.PUT("/profile", pc.UpdateProfile)
			authed.GET("/loyalty", pc.GetLoyalty)
			authed.POST("/reviews", pc.CreateReview)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(auth), middleware.AdminRequired(auth))
		{
			admin.GET("/bookings", adc.ListBookings)
			admin.PATCH("/bookings/:id/status", adc.SetBookingStatus)

			admin.GET("/contact-messages", adc.ListContactMessages)
			admin.PATCH("/contact-messages/:id/status", adc.SetContactStatus)

			admin.POST("/rooms", adc.CreateRoom)
			admin.PATCH("/rooms/:id", adc.UpdateRoom)
			admin.PUT("/rooms/:id", adc.UpdateRoom)
			admin.DELETE("/rooms/:id", adc.DeleteRoom)
		}
	}

	return r
}
