package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dethrtrns/techwondoe-test-task/internal/middleware"
)

// NewRouter assembles the settings API. Requests with the wrong verb on a
// known route get a 405 with a descriptive message rather than gin's
// default 404.
func NewRouter(users *UserHandler, export *ExportHandler, health *HealthHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Invalid HTTP method for this route"})
	})

	// Health and metrics endpoints
	router.GET("/health", health.Health)
	router.GET("/ready", health.Ready)
	router.GET("/live", health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/add", users.AddUser)
		api.GET("/get", users.GetUsers)
		api.PUT("/update", users.UpdateUser)
		api.DELETE("/delete", users.DeleteUser)
		api.GET("/export", export.DownloadCSV)
	}

	return router
}
