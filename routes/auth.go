package routes

import (
	"github.com/gin-gonic/gin"

	"codeshift/controllers"
	"codeshift/middlewares"
)

// SetupAuthRoutes wires the authentication endpoints. The OAuth initiate and
// callback endpoints are public; /auth/me and /auth/logout require a session.
func SetupAuthRoutes(router *gin.Engine, ac *controllers.AuthController) {
	auth := router.Group("/auth")
	auth.POST("/github", ac.GitHubLogin)
	auth.POST("/github/callback", ac.GitHubCallback)

	session := auth.Group("/")
	session.Use(middlewares.AuthMiddleware())
	session.GET("/me", ac.Me)
	session.POST("/logout", ac.Logout)
}
