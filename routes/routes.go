package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"cabin-backoffice/controllers"
	"cabin-backoffice/middleware"
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
	ac *controllers.AuthController,
	cc *controllers.CabinController,
	rc *controllers.ReservationController,
	sc *controllers.SettingsController,
	uc *controllers.UserController,
	sdc *controllers.SampleDataController,
	log zerolog.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics())
	r.Static("/uploads", "./uploads")

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
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", ac.Signup)
			auth.POST("/login", ac.Login)
			auth.GET("/me", middleware.RequireAuth(), ac.Me)
		}

		cabins := api.Group("/cabins")
		{
			cabins.GET("", cc.GetCabins)
			cabins.POST("", middleware.RequireAuth(), middleware.RequireAdmin(), cc.CreateCabin)
			cabins.PUT("/:id", middleware.RequireAuth(), middleware.RequireAdmin(), cc.UpdateCabin)
			cabins.DELETE("/:id", middleware.RequireAuth(), middleware.RequireAdmin(), cc.DeleteCabin)
			cabins.POST("/:id/duplicate", middleware.RequireAuth(), middleware.RequireAdmin(), cc.DuplicateCabin)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.GetReservations)
			reservations.GET("/:id", rc.GetReservation)
			reservations.POST("", middleware.RequireAuth(), rc.CreateReservation)
			reservations.DELETE("/:id", middleware.RequireAuth(), middleware.RequireAdmin(), rc.DeleteReservation)
			reservations.PATCH("/:id/checkin", middleware.RequireAuth(), middleware.RequireAdmin(), rc.CheckIn)
			reservations.PATCH("/:id/checkout", middleware.RequireAuth(), middleware.RequireAdmin(), rc.CheckOut)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", sc.GetSettings)
			settings.PATCH("", middleware.RequireAuth(), middleware.RequireAdmin(), sc.UpdateSetting)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", uc.GetGuests)
			guests.POST("/import", middleware.RequireAuth(), middleware.RequireAdmin(), uc.ImportGuests)
		}

		api.PUT("/users/me", middleware.RequireAuth(), uc.UpdateMe)

		api.POST("/sample-data", middleware.RequireAuth(), middleware.RequireAdmin(), sdc.UploadAll)
	}

	return r
}
