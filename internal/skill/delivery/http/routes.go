package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the skill transports onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/alexa", h.HandleAlexa)
	rg.POST("/proxy", h.HandleProxy)
}
