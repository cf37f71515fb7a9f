package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册所有 API 路由。
func RegisterRoutes(r *gin.Engine, qaHandler *QAHandler) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/models", qaHandler.ListModels)
		apiV1.POST("/qa", qaHandler.Ask)
	}
}
