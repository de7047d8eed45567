package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"roomify/handlers"
	"roomify/middleware"
	"roomify/models"
)

// RegisterAuthRoutes registers registration and sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, auth *handlers.AuthHandler) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", auth.Register)
		api.POST("/login", auth.Login)

		api.Use(middleware.JWTAuthMiddleware())
		api.DELETE("/revoke/:sessionId", auth.Revoke)
	}
}

// RegisterUserRoutes registers account management endpoints. All
// require authentication; the listing additionally the admin role.
func RegisterUserRoutes(r *gin.Engine, users *handlers.UserHandler) {
	api := r.Group("/api/users")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("/:id", users.GetUser)
		api.PATCH("/:id", users.UpdateUser)
		api.PATCH("/:id/password", users.UpdatePassword)
		api.DELETE("/:id", users.DeleteUser)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.GET("", users.ListUsers)
	}
}

// RegisterRoomRoutes registers room CRUD endpoints. Reads are public;
// mutations require authentication.
func RegisterRoomRoutes(r *gin.Engine, rooms *handlers.RoomHandler) {
	api := r.Group("/api/rooms")
	{
		api.GET("", rooms.ListRooms)
		api.GET("/:id", rooms.GetRoom)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", rooms.CreateRoom)
		protected.PATCH("/:id", rooms.UpdateRoom)
		protected.DELETE("/:id", rooms.DeleteRoom)
	}
}

// RegisterReservationRoutes registers the booking lifecycle endpoints.
// Room availability listing is public; everything else requires
// authentication, statistics and hard deletes additionally the admin
// role.
func RegisterReservationRoutes(r *gin.Engine, reservations *handlers.ReservationHandler) {
	api := r.Group("/api/reservations")
	{
		api.GET("/room/:roomId", reservations.GetRoomReservations)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", reservations.CreateReservation)
		protected.GET("/:id", reservations.GetReservation)
		protected.PATCH("/:id", reservations.UpdateReservation)
		protected.PATCH("/:id/cancel", reservations.CancelReservation)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
		admin.DELETE("/:id", reservations.DeleteReservation)
		admin.GET("/stats", reservations.GetRoomsStatistics)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Roomify"})
	})
}

// CORSMiddleware returns the CORS policy for browser clients.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
