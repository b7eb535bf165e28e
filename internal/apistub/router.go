package apistub

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"busjet/internal/config"
)

// NewRouter builds the stub's gin engine with the usual middleware set:
// request ids, request logging, panic recovery and CORS for the browser
// frontend the real backend serves.
func NewRouter(env config.StubEnv, store *Store) *gin.Engine {
	tokens := NewTokenManager(env.JWTSecret)
	h := NewHandlers(store, tokens)

	r := gin.New()
	r.Use(RequestID(), Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "route not found")
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/signup", h.Signup)

		api.GET("/user/profile", RequireAuth(tokens, store), h.Profile)
		api.GET("/buses/search", h.SearchTrips)

		bookings := api.Group("/bookings", RequireAuth(tokens, store))
		bookings.POST("", h.CreateBooking)
		bookings.GET("/my", h.MyBookings)
	}

	admin := r.Group("/admin", RequireAuth(tokens, store), RequireAdmin())
	{
		admin.GET("/stats", h.AdminStats)
		admin.POST("/bus/add", h.AddBus)
	}

	return r
}
