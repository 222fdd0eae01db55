package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"orderbridge/internal/config"
	"orderbridge/internal/handlers"
	"orderbridge/internal/logger"
	"orderbridge/internal/middleware"
	"orderbridge/internal/odoo"
	"orderbridge/internal/order"
)

func main() {
	config.Load()

	log := logger.New(config.AppEnv.LogLevel, config.AppEnv.LogFormat)
	defer log.Sync()

	client, err := odoo.NewClient(
		config.AppEnv.OdooURL,
		config.AppEnv.OdooDB,
		config.AppEnv.OdooUsername,
		config.AppEnv.OdooPassword,
	)
	if err != nil {
		log.Fatal("odoo client setup failed", zap.Error(err))
	}
	if err := client.Authenticate(); err != nil {
		log.Fatal("odoo authentication failed", zap.Error(err))
	}
	log.Info("connected to odoo", zap.Int64("uid", client.UID()))

	proc := order.NewProcessor(client, config.AppEnv.DefaultCountry, log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(logger.RequestLogger(log))
	r.Use(logger.Recovery(log))

	r.POST("/webhook", handlers.Webhook(proc, log))
	r.GET("/health", handlers.Health())

	log.Info("webhook server listening", zap.String("port", config.AppEnv.Port))
	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
