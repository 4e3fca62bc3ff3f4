package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/cache"
	"bookshelf/codec"
	"bookshelf/models"
)

// API exposes the library as JSON for scripts and other programs. It drives
// the same Library the shell does.
type API struct {
	library  models.Library
	recorder *cache.Recorder
	logger   *slog.Logger
}

func NewAPI(library models.Library, recorder *cache.Recorder, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{library: library, recorder: recorder, logger: logger}
}

func (api *API) ListBooks(c *gin.Context) {
	c.JSON(http.StatusOK, api.library.List())
}

func (api *API) CreateBook(c *gin.Context) {
	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := api.library.Add(c.Request.Context(), book); err != nil {
		api.abortWithError(c, err)
		return
	}

	api.recorder.Record("add", book.Title)
	c.JSON(http.StatusOK, gin.H{
		"status": "created",
		"title":  book.Title,
	})
}

func (api *API) UpdateBookByTitle(c *gin.Context) {
	title := c.Param("title")

	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := api.library.Edit(c.Request.Context(), title, book); err != nil {
		api.abortWithError(c, err)
		return
	}

	api.recorder.Record("edit", book.Title)
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (api *API) DeleteBookByTitle(c *gin.Context) {
	title := c.Param("title")

	removed, err := api.library.Remove(c.Request.Context(), title)
	if err != nil {
		api.abortWithError(c, err)
		return
	}

	if removed > 0 {
		api.recorder.Record("remove", title)
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "deleted",
		"removed": removed,
	})
}

func (api *API) SearchBooks(c *gin.Context) {
	c.JSON(http.StatusOK, api.library.Search(c.Query("q")))
}

func (api *API) Store(c *gin.Context) {
	c.JSON(http.StatusOK, api.library.Statistics())
}

func (api *API) Activity(c *gin.Context) {
	entries := api.recorder.Recent()
	if entries == nil {
		entries = []models.Activity{}
	}
	c.JSON(http.StatusOK, entries)
}

func (api *API) ExportLibrary(c *gin.Context) {
	data, err := api.library.Export()
	if err != nil {
		api.abortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, codec.MIME_TYPE, data)
}

// ImportLibrary replaces the library with the request body.
func (api *API) ImportLibrary(c *gin.Context) {
	if err := api.library.Import(c.Request.Context(), c.Request.Body); err != nil {
		api.abortWithError(c, err)
		return
	}

	api.recorder.Record("import", "")
	c.JSON(http.StatusOK, gin.H{
		"status": "imported",
		"books":  api.library.Len(),
	})
}

func (api *API) abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidBook), errors.Is(err, models.ErrMalformedLibrary):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrBookNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		api.logger.Error("api request failed", "path", c.Request.URL.Path, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
