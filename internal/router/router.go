package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/starmap-dev/starmap/internal/handlers"
	"github.com/starmap-dev/starmap/internal/middleware"
)

func NewRouter(allowedOrigins []string) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", handlers.Home)
	r.GET("/health", handlers.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	scientists := r.Group("/scientists")
	{
		scientists.GET("", handlers.ListScientists)
		scientists.POST("", handlers.CreateScientist)
		scientists.GET("/:id", handlers.GetScientist)
		scientists.PATCH("/:id", handlers.UpdateScientist)
		scientists.DELETE("/:id", handlers.DeleteScientist)
	}

	planets := r.Group("/planets")
	{
		planets.GET("", handlers.ListPlanets)
		planets.POST("", handlers.CreatePlanet)
		planets.GET("/:id", handlers.GetPlanet)
		planets.DELETE("/:id", handlers.DeletePlanet)
	}

	missions := r.Group("/missions")
	{
		missions.POST("", handlers.CreateMission)
		missions.GET("/:id", handlers.GetMission)
		missions.DELETE("/:id", handlers.DeleteMission)
	}

	return r
}
