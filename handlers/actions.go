package handlers

// Action is one entry of the sidebar menu.
type Action int

const (
	ActionAdd Action = iota
	ActionViewAll
	ActionRemove
	ActionSearch
	ActionEdit
	ActionStatistics
	ActionTransfer
	ActionExit
)

// Actions is the menu in display order.
var Actions = []Action{
	ActionAdd,
	ActionViewAll,
	ActionRemove,
	ActionSearch,
	ActionEdit,
	ActionStatistics,
	ActionTransfer,
	ActionExit,
}

var actionInfo = map[Action]struct {
	slug  string
	label string
}{
	ActionAdd:        {"add", "Add Book"},
	ActionViewAll:    {"books", "View All Books"},
	ActionRemove:     {"remove", "Remove Book"},
	ActionSearch:     {"search", "Search Books"},
	ActionEdit:       {"edit", "Edit Book"},
	ActionStatistics: {"stats", "Display Statistics"},
	ActionTransfer:   {"transfer", "Import/Export"},
	ActionExit:       {"exit", "Exit"},
}

func (a Action) Slug() string {
	return actionInfo[a].slug
}

func (a Action) Label() string {
	return actionInfo[a].label
}

func (a Action) Path() string {
	return "/" + a.Slug()
}

func (a Action) Template() string {
	return a.Slug() + ".html"
}

func (a Action) String() string {
	return a.Slug()
}

func ParseAction(slug string) (Action, bool) {
	for _, a := range Actions {
		if a.Slug() == slug {
			return a, true
		}
	}
	return 0, false
}
