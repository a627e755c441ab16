package controllers

import (
	"log/slog"
	"sync"

	"2witter/models"
	"2witter/store"
	"2witter/templates"
)

// Controller is the only way HTTP handlers reach the feed state. Every call
// into the App runs under mu, one at a time.
type Controller struct {
	mu  sync.Mutex
	app *store.App

	Hub *Hub
	log *slog.Logger
}

func New(app *store.App, hub *Hub, logger *slog.Logger) *Controller {
	return &Controller{
		app: app,
		Hub: hub,
		log: logger,
	}
}

func (ctl *Controller) CurrentAccount() (models.Account, bool) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return ctl.app.Session.Current()
}

// FeedData snapshots everything the feed page needs for mode.
func (ctl *Controller) FeedData(mode models.SortMode) templates.FeedData {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()

	account, _ := ctl.app.Session.Current()
	view := ctl.app.View(mode)
	posts := make([]templates.PostView, len(view))
	for i, post := range view {
		posts[i] = templates.PostView{
			Post:          post,
			AuthorPicture: ctl.app.Accounts.Picture(post.Author),
		}
	}
	return templates.FeedData{
		User:  account,
		Mode:  mode,
		Posts: posts,
	}
}

// SortMode reads the sort mode from a query or form value, falling back to
// newest.
func SortMode(value string) models.SortMode {
	mode, _ := models.ParseSortMode(value)
	return mode
}
