package service

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf/cache"
	"bookshelf/handlers"
	"bookshelf/models"
)

func SetupRoutes(library models.Library, recorder *cache.Recorder, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}

	routes := gin.New()
	routes.Use(gin.Recovery(), LogRequest(logger))
	routes.SetHTMLTemplate(handlers.Templates())

	handlers.NewShell(library, recorder, logger).Register(routes)

	api := NewAPI(library, recorder, logger)
	apiRoutes := routes.Group("/api")
	{
		apiRoutes.GET("/books", api.ListBooks)
		apiRoutes.PUT("/book", api.CreateBook)
		apiRoutes.POST("/book/:title", api.UpdateBookByTitle)
		apiRoutes.DELETE("/book/:title", api.DeleteBookByTitle)
		apiRoutes.GET("/search", api.SearchBooks)
		apiRoutes.GET("/store", api.Store)
		apiRoutes.GET("/activity", api.Activity)
		apiRoutes.GET("/export", api.ExportLibrary)
		apiRoutes.POST("/import", api.ImportLibrary)
	}

	return routes
}

// LogRequest writes one line per request once the handler chain is done.
func LogRequest(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
