package be

import (
	"bankdemo/biz/handler"
	"bankdemo/biz/middleware"
	_ "bankdemo/docs"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/adaptor"
	"github.com/hertz-contrib/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
)

func register(h *server.Hertz) {
	h.GET("/ping", handler.Ping)
	h.GET("/metrics", adaptor.HertzHandler(promhttp.Handler()))
	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	v1 := h.Group("/api/v1")
	v1.GET("/mode", handler.Mode)

	authGroup := v1.Group("/auth")
	authGroup.POST("/login", handler.Login)
	authGroup.POST("/logout", handler.Logout)

	bank := v1.Group("/bank", middleware.Protected()...)
	bank.GET("/dashboard", handler.Dashboard)
	bank.GET("/transactions", handler.Transactions)
	bank.POST("/transfer", handler.Transfer)

	messages := v1.Group("/messages", middleware.Protected()...)
	messages.GET("", handler.ListMessages)
	messages.POST("", handler.PostMessage)
	messages.DELETE("/:id", handler.DeleteMessage)
}
