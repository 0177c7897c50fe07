package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.Use(Logger())
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/locate", h.locate)
		api.POST("/audit", h.audit)
		api.POST("/normalize", h.normalize)
		api.POST("/debug", h.debug)
		api.POST("/header", h.header)
		api.GET("/qr", h.qr)
		api.GET("/urls", h.urls)
		api.POST("/jobs/header", h.enqueueHeader)
	}
}
