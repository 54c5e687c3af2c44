package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"energy-outlook/internal/api"
	"energy-outlook/internal/api/handlers"
	"energy-outlook/internal/api/middleware"
	"energy-outlook/internal/sim"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	production := os.Getenv("API_ENV") == "production"
	var log *zap.Logger
	var err error
	if production {
		gin.SetMode(gin.ReleaseMode)
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler())

	h := handlers.NewSimulationHandler(sim.New(log), api.NewRunStore())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/simulate", h.Simulate)
		v1.GET("/runs/:id", h.GetRun)
		v1.GET("/runs/:id/records", h.GetRecords)
		v1.GET("/scenarios", h.ListScenarios)
	}

	addr := ":" + port
	log.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
