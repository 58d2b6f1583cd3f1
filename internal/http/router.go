package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/thegridly/authsvc/internal/http/handlers"
)

func BuildRouter(ah *handlers.AuthHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/login", ah.Login)
	auth.POST("/signup", ah.Signup)
	auth.POST("/logout", ah.Logout)
	auth.GET("/session", ah.Session)

	return r
}
