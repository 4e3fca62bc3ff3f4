package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/codec"
	"bookshelf/models"
)

func (shell *Shell) ShowAdd(c *gin.Context) {
	shell.render(c, http.StatusOK, shell.newPage(ActionAdd))
}

func (shell *Shell) SubmitAdd(c *gin.Context) {
	p := shell.newPage(ActionAdd)

	var form bookForm
	if err := c.ShouldBind(&form); err != nil {
		p.Form = form
		p.flash(FLASH_ERROR, bindErrorMessage(err))
		shell.render(c, http.StatusBadRequest, p)
		return
	}
	if form.missingRequired() {
		p.Form = form
		p.flash(FLASH_ERROR, "Title and Author are required!")
		shell.render(c, http.StatusBadRequest, p)
		return
	}

	if err := shell.library.Add(c.Request.Context(), form.book()); err != nil {
		p.Form = form
		shell.renderError(c, p, err)
		return
	}

	shell.recorder.Record(ActionAdd.Slug(), form.Title)
	p.flash(FLASH_SUCCESS, fmt.Sprintf("Book '%s' added successfully!", form.Title))
	shell.render(c, http.StatusOK, p)
}

func (shell *Shell) ShowBooks(c *gin.Context) {
	p := shell.newPage(ActionViewAll)
	p.Books = shell.library.List()
	if len(p.Books) == 0 {
		p.flash(FLASH_INFO, "No books in the library.")
	}
	shell.render(c, http.StatusOK, p)
}

func (shell *Shell) ShowRemove(c *gin.Context) {
	p := shell.newPage(ActionRemove)
	p.Titles = shell.library.Titles()
	if len(p.Titles) == 0 {
		p.flash(FLASH_INFO, "No books available to remove.")
	}
	shell.render(c, http.StatusOK, p)
}

// SubmitRemove drops every book carrying the chosen title.
func (shell *Shell) SubmitRemove(c *gin.Context) {
	p := shell.newPage(ActionRemove)

	if shell.library.Len() == 0 {
		p.flash(FLASH_INFO, "No books available to remove.")
		shell.render(c, http.StatusOK, p)
		return
	}

	title := c.PostForm("title")
	removed, err := shell.library.Remove(c.Request.Context(), title)
	p.Titles = shell.library.Titles()
	if err != nil {
		shell.renderError(c, p, err)
		return
	}

	if removed == 0 {
		p.flash(FLASH_INFO, fmt.Sprintf("No book titled '%s' found.", title))
	} else {
		shell.recorder.Record(ActionRemove.Slug(), title)
		p.flash(FLASH_SUCCESS, fmt.Sprintf("Book '%s' removed successfully!", title))
	}
	shell.render(c, http.StatusOK, p)
}

func (shell *Shell) ShowSearch(c *gin.Context) {
	shell.render(c, http.StatusOK, shell.newPage(ActionSearch))
}

func (shell *Shell) SubmitSearch(c *gin.Context) {
	p := shell.newPage(ActionSearch)
	p.Query = c.PostForm("query")
	p.Searched = true
	p.Books = shell.library.Search(p.Query)
	if len(p.Books) == 0 {
		p.flash(FLASH_WARNING, "No matching books found.")
	}
	shell.render(c, http.StatusOK, p)
}

// ShowEdit pre-fills the form with the first book carrying the selected
// title, or the first book when nothing (or an unknown title) is selected.
func (shell *Shell) ShowEdit(c *gin.Context) {
	p := shell.newPage(ActionEdit)
	p.Titles = shell.library.Titles()
	if len(p.Titles) == 0 {
		p.flash(FLASH_INFO, "No books to edit.")
		shell.render(c, http.StatusOK, p)
		return
	}

	book, found := shell.library.Find(c.Query("title"))
	if !found {
		book, _ = shell.library.Find(p.Titles[0])
	}
	p.Selected = book.Title
	p.Form = formFromBook(book)
	shell.render(c, http.StatusOK, p)
}

func (shell *Shell) SubmitEdit(c *gin.Context) {
	p := shell.newPage(ActionEdit)
	p.Titles = shell.library.Titles()
	if len(p.Titles) == 0 {
		p.flash(FLASH_INFO, "No books to edit.")
		shell.render(c, http.StatusOK, p)
		return
	}

	original := c.PostForm("original")
	p.Selected = original

	var form bookForm
	if err := c.ShouldBind(&form); err != nil {
		p.Form = form
		p.flash(FLASH_ERROR, bindErrorMessage(err))
		shell.render(c, http.StatusBadRequest, p)
		return
	}
	p.Form = form
	if form.missingRequired() {
		p.flash(FLASH_ERROR, "Title and Author are required!")
		shell.render(c, http.StatusBadRequest, p)
		return
	}

	if err := shell.library.Edit(c.Request.Context(), original, form.book()); err != nil {
		shell.renderError(c, p, err)
		return
	}

	shell.recorder.Record(ActionEdit.Slug(), form.Title)
	p.Titles = shell.library.Titles()
	p.Selected = form.Title
	p.flash(FLASH_SUCCESS, fmt.Sprintf("Book '%s' updated successfully!", form.Title))
	shell.render(c, http.StatusOK, p)
}

func (shell *Shell) ShowStatistics(c *gin.Context) {
	p := shell.newPage(ActionStatistics)
	p.Stats = shell.library.Statistics()
	shell.render(c, http.StatusOK, p)
}

func (shell *Shell) ShowTransfer(c *gin.Context) {
	shell.render(c, http.StatusOK, shell.newPage(ActionTransfer))
}

// SubmitImport replaces the whole library with an uploaded document.
func (shell *Shell) SubmitImport(c *gin.Context) {
	p := shell.newPage(ActionTransfer)

	header, err := c.FormFile("file")
	if err != nil {
		p.flash(FLASH_ERROR, "Choose a JSON file to upload.")
		shell.render(c, http.StatusBadRequest, p)
		return
	}

	file, err := header.Open()
	if err != nil {
		shell.renderError(c, p, err)
		return
	}
	defer file.Close()

	if err := shell.library.Import(c.Request.Context(), file); err != nil {
		shell.renderError(c, p, err)
		return
	}

	shell.recorder.Record("import", header.Filename)
	p.flash(FLASH_SUCCESS, "Library imported successfully!")
	shell.render(c, http.StatusOK, p)
}

// Export offers the current library as a download.
func (shell *Shell) Export(c *gin.Context) {
	data, err := shell.library.Export()
	if err != nil {
		shell.renderError(c, shell.newPage(ActionTransfer), err)
		return
	}

	shell.recorder.Record("export", codec.FILE_NAME)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", codec.FILE_NAME))
	c.Data(http.StatusOK, codec.MIME_TYPE, data)
}

// ShowExit saves the library and says goodbye. The server keeps serving.
func (shell *Shell) ShowExit(c *gin.Context) {
	p := shell.newPage(ActionExit)
	if err := shell.library.Save(c.Request.Context()); err != nil {
		shell.renderError(c, p, err)
		return
	}

	shell.recorder.Record(ActionExit.Slug(), "")
	p.flash(FLASH_SUCCESS, "Library saved to file. Goodbye! 👋")
	shell.render(c, http.StatusOK, p)
}

// renderError maps store errors onto a banner and a status code.
func (shell *Shell) renderError(c *gin.Context, p page, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidBook):
		p.flash(FLASH_ERROR, err.Error())
		shell.render(c, http.StatusBadRequest, p)
	case errors.Is(err, models.ErrMalformedLibrary):
		p.flash(FLASH_ERROR, fmt.Sprintf("Could not import library: %v", err))
		shell.render(c, http.StatusBadRequest, p)
	case errors.Is(err, models.ErrBookNotFound):
		p.flash(FLASH_ERROR, fmt.Sprintf("Could not edit book: %v", err))
		shell.render(c, http.StatusNotFound, p)
	default:
		shell.logger.Error("shell action failed", "action", p.Current.Slug(), "error", err)
		p.flash(FLASH_ERROR, fmt.Sprintf("Something went wrong: %v", err))
		shell.render(c, http.StatusInternalServerError, p)
	}
}
