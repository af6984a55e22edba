package routes

import (
	"net/http"

	"campusrent/controllers"
	"campusrent/middleware"
	"campusrent/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// Handlers groups the controllers the router needs.
type Handlers struct {
	Listings  *controllers.ListingController
	Bookings  *controllers.BookingController
	Reviews   *controllers.ReviewController
	Favorites *controllers.FavoriteController
}

func SetupRoutes(router *gin.Engine, h Handlers, jwtSecret string, m *melody.Melody) {
	auth := middleware.AuthMiddleware(jwtSecret)
	optionalAuth := middleware.OptionalAuth(jwtSecret)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.SessionMiddleware())

	v1.GET("/rooms", optionalAuth, h.Listings.GetRooms)
	v1.GET("/rooms/:id", optionalAuth, h.Listings.GetRoomDetail)
	v1.GET("/vehicles", optionalAuth, h.Listings.GetVehicles)
	v1.GET("/vehicles/:id", optionalAuth, h.Listings.GetVehicleDetail)
	v1.GET("/featured", h.Listings.GetFeatured)
	v1.GET("/suggest", h.Listings.Suggest)
	v1.DELETE("/cache/listings", auth, h.Listings.InvalidateCache)

	v1.POST("/quotes", h.Bookings.Quote)
	v1.POST("/bookings", auth, h.Bookings.CreateBooking)
	v1.GET("/bookings", auth, h.Bookings.GetUserBookings)
	v1.PUT("/bookings/:id/cancel", auth, h.Bookings.CancelBooking)
	v1.PUT("/bookings/:id/complete", auth, h.Bookings.CompleteBooking)

	v1.GET("/reviews", h.Reviews.GetReviews)
	v1.POST("/reviews", auth, h.Reviews.CreateReview)

	v1.GET("/favorites", auth, h.Favorites.GetFavorites)
	v1.POST("/favorites/toggle", auth, h.Favorites.ToggleFavorite)

	if m != nil {
		InitWebSocket(router, m, jwtSecret)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}

// InitWebSocket serves /ws. The token travels as a query parameter because
// browsers cannot set headers on websocket upgrades.
func InitWebSocket(router *gin.Engine, m *melody.Melody, jwtSecret string) {
	router.GET("/ws", func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			token = c.GetHeader("Authorization")
		}
		userID, err := services.GetUserIDFromToken(token, jwtSecret)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		m.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{"userID": userID})
	})
}
