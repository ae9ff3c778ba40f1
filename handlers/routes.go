package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-website-api/config"
	"personal-website-api/middleware"
)

// RegisterRoutes attaches all API routes to the router. Admin routes
// other than login are guarded by middleware.AdminAuth.
func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	contactHandler *ContactHandler,
	newsletterHandler *NewsletterHandler,
	userHandler *UserHandler,
	contentHandler *ContentHandler,
	adminHandler *AdminHandler,
	healthHandler *HealthHandler,
) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": config.AppName,
			"version": config.AppVersion,
		})
	})

	api := router.Group("/api")

	health := api.Group("/health")
	{
		health.GET("/", healthHandler.Check)
	}

	contact := api.Group("/contact")
	{
		contact.POST("/", contactHandler.CreateContact)
		contact.GET("/", contactHandler.GetContacts)
		contact.GET("/:id", contactHandler.GetContact)
	}

	newsletter := api.Group("/newsletter")
	{
		newsletter.POST("/subscribe", newsletterHandler.Subscribe)
		newsletter.POST("/unsubscribe/:email", newsletterHandler.Unsubscribe)
		newsletter.GET("/subscribers", newsletterHandler.GetSubscribers)
	}

	content := api.Group("/content")
	{
		content.GET("/categories", contentHandler.GetCategories)
		content.POST("/categories", contentHandler.CreateCategory)
		content.GET("/categories/:id", contentHandler.GetCategory)
		content.PUT("/categories/:id", contentHandler.UpdateCategory)
		content.DELETE("/categories/:id", contentHandler.DeleteCategory)

		content.GET("/posts", contentHandler.GetPosts)
		content.POST("/posts", contentHandler.CreatePost)
		content.GET("/posts/:id", contentHandler.GetPost)
		content.PUT("/posts/:id", contentHandler.UpdatePost)
		content.DELETE("/posts/:id", contentHandler.DeletePost)

		content.GET("/projects", contentHandler.GetProjects)
		content.POST("/projects", contentHandler.CreateProject)
		content.GET("/projects/:id", contentHandler.GetProject)
		content.PUT("/projects/:id", contentHandler.UpdateProject)
		content.DELETE("/projects/:id", contentHandler.DeleteProject)
	}

	users := api.Group("/users")
	{
		users.GET("/", userHandler.GetUsers)
		users.POST("/", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/login", adminHandler.Login)

		protected := admin.Group("")
		protected.Use(middleware.AdminAuth(cfg))
		{
			protected.GET("/stats", adminHandler.GetStats)
			protected.GET("/contacts", adminHandler.GetContacts)
			protected.DELETE("/contacts/:id", adminHandler.DeleteContact)
		}
	}
}
