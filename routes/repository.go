package routes

import (
	"github.com/gin-gonic/gin"

	"codeshift/controllers"
	"codeshift/middlewares"
)

// SetupRepositoryRoutes wires the linked-repository endpoints behind the
// session middleware.
func SetupRepositoryRoutes(router *gin.Engine, rc *controllers.RepositoryController) {
	repos := router.Group("/repositories")
	repos.Use(middlewares.AuthMiddleware())

	repos.GET("", rc.List)
	repos.POST("", rc.Link)
	repos.GET("/github", rc.ListGitHub)
	repos.GET("/:id", rc.Get)
	repos.DELETE("/:id", rc.Delete)
}
