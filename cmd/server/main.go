package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/youruser/colorpages/config"
	"github.com/youruser/colorpages/internal/api"
	"github.com/youruser/colorpages/internal/queue"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	v, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("loading config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		logrus.Fatalf("parsing config: %v", err)
	}
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	producer := queue.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer producer.Close()

	r := gin.New()
	r.Use(gin.Recovery())
	api.RegisterRoutes(r, api.NewHandler(cfg, producer))

	port := config.GetEnv("PORT", cfg.Server.Port)
	logrus.Info("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		logrus.Fatal(err)
	}
}
