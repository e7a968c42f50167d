package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"demandsim/internal/api/handlers"
	"demandsim/internal/api/middleware"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	simulateHandler := handlers.NewSimulateHandler()
	strategiesHandler := handlers.NewStrategiesHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/simulate", simulateHandler.Simulate)
		v1.GET("/strategies", strategiesHandler.List)
	}

	log.Printf("listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
