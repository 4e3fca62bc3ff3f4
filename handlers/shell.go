package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/cache"
	"bookshelf/models"
)

const APP_TITLE = "📚 Enhanced Personal Library Manager"

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded page templates, one per menu action.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

const (
	FLASH_SUCCESS = "success"
	FLASH_ERROR   = "error"
	FLASH_INFO    = "info"
	FLASH_WARNING = "warning"
)

type Flash struct {
	Kind    string
	Message string
}

// page is the data every template renders from.
type page struct {
	AppTitle string
	Menu     []Action
	Current  Action
	Flash    *Flash
	Activity []models.Activity

	Books    []models.Book
	Titles   []string
	Selected string
	Form     bookForm
	Statuses []models.ReadStatus
	MinYear  int
	MaxYear  int

	Query    string
	Searched bool

	Stats models.Statistics
}

// Shell serves the interactive menu. Each action gets a handler that renders
// its form and, where the action changes something, one that handles the
// submitted form.
type Shell struct {
	library  models.Library
	recorder *cache.Recorder
	logger   *slog.Logger
}

type actionHandlers struct {
	show   gin.HandlerFunc
	submit gin.HandlerFunc
}

func NewShell(library models.Library, recorder *cache.Recorder, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{library: library, recorder: recorder, logger: logger}
}

func (shell *Shell) handlers() map[Action]actionHandlers {
	return map[Action]actionHandlers{
		ActionAdd:        {show: shell.ShowAdd, submit: shell.SubmitAdd},
		ActionViewAll:    {show: shell.ShowBooks},
		ActionRemove:     {show: shell.ShowRemove, submit: shell.SubmitRemove},
		ActionSearch:     {show: shell.ShowSearch, submit: shell.SubmitSearch},
		ActionEdit:       {show: shell.ShowEdit, submit: shell.SubmitEdit},
		ActionStatistics: {show: shell.ShowStatistics},
		ActionTransfer:   {show: shell.ShowTransfer},
		ActionExit:       {show: shell.ShowExit},
	}
}

// Register mounts the menu routes on routes. The first menu entry is the
// landing page.
func (shell *Shell) Register(routes gin.IRoutes) {
	routes.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, Actions[0].Path())
	})

	table := shell.handlers()
	for _, action := range Actions {
		h := table[action]
		routes.GET(action.Path(), h.show)
		if h.submit != nil {
			routes.POST(action.Path(), h.submit)
		}
	}

	routes.POST(ActionTransfer.Path()+"/import", shell.SubmitImport)
	routes.GET(ActionTransfer.Path()+"/export", shell.Export)
}

func (shell *Shell) newPage(action Action) page {
	return page{
		AppTitle: APP_TITLE,
		Menu:     Actions,
		Current:  action,
		Statuses: models.ReadStatuses,
		MinYear:  models.MIN_YEAR,
		MaxYear:  models.MAX_YEAR,
		Form:     defaultBookForm(),
	}
}

func (shell *Shell) render(c *gin.Context, status int, p page) {
	p.Activity = shell.recorder.Recent()
	c.HTML(status, p.Current.Template(), p)
}

func (p *page) flash(kind, message string) {
	p.Flash = &Flash{Kind: kind, Message: message}
}
