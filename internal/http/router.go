package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Optional dependencies left nil disable their routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(SecurityHeadersMiddleware())

	health := NewHealthController(cfg.Database, cfg.Version)
	tools := NewToolsController(cfg.Entities)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Reader endpoints
	if cfg.Reader != nil {
		bible := NewBibleController(cfg.Reader)
		router.GET("/api/bible/books", bible.GetBooks)
		router.GET("/api/bible/:book/:chapter", bible.GetChapter)
		router.GET("/api/bible/:book/:chapter/:verse", bible.GetVerse)
	}

	// Wiki endpoints
	if cfg.Wiki != nil {
		wiki := NewWikiController(cfg.Wiki)
		router.GET("/api/wiki", wiki.ListRecent)
		router.POST("/api/wiki", wiki.CreateArticle)
		router.GET("/api/wiki/:slug", wiki.GetArticle)
		router.PUT("/api/wiki/:slug", wiki.UpdateArticle)
		router.GET("/api/wiki/:slug/revisions", wiki.GetRevisions)
	}

	// Entity endpoints
	if cfg.Entities != nil {
		entitiesController := NewEntitiesController(cfg.Entities)
		router.GET("/api/entities", entitiesController.ListEntities)
		router.POST("/api/entities", entitiesController.CreateEntity)
		router.GET("/api/entities/:slug", entitiesController.GetEntity)
		router.POST("/api/verses/:id/entities", entitiesController.AttachToVerse)
	}

	// Text tools
	router.POST("/api/tools/linkify", tools.Linkify)
	router.POST("/api/tools/references", tools.References)
	router.POST("/api/tools/annotate", tools.Annotate)

	// Search, the target of unresolved links
	if cfg.Verses != nil && cfg.Articles != nil {
		search := NewSearchController(cfg.Verses, cfg.Articles, cfg.TranslationID)
		router.GET("/search", search.Search)
	}

	// Task management endpoints
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient)
		router.GET("/api/tasks/types", tasksController.ListTaskTypes)
		router.GET("/api/tasks/:id", tasksController.GetTaskStatus)
		router.POST("/api/tasks/:type/run", tasksController.RunTask)
	}

	return router
}
