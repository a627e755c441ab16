package store

import (
	"fmt"

	"2witter/models"
)

// App bundles the account store, the session slot and the feed. Each App
// is independent; there is no shared package state.
type App struct {
	Accounts *AccountStore
	Session  *Session
	Feed     *FeedStore
}

func NewApp(defaultPicture string, opts ...FeedOption) *App {
	return &App{
		Accounts: NewAccountStore(defaultPicture),
		Session:  new(Session),
		Feed:     NewFeedStore(opts...),
	}
}

// Login authenticates and, on success, fills the session slot.
func (a *App) Login(username, password string) (models.Account, error) {
	account, err := a.Accounts.Authenticate(username, password)
	if err != nil {
		return models.Account{}, fmt.Errorf("login: %w", err)
	}
	a.Session.Login(account)
	return account, nil
}

func (a *App) Logout() {
	a.Session.Logout()
}

// Post creates a post authored by the logged-in account.
func (a *App) Post(text, image string) (models.Post, bool, error) {
	account, ok := a.Session.Current()
	if !ok {
		return models.Post{}, false, ErrNoSession
	}
	post, created := a.Feed.CreatePost(account.Username, text, image)
	return post, created, nil
}

// ReplyAs appends a reply by the logged-in account.
func (a *App) ReplyAs(postID, text string) error {
	account, ok := a.Session.Current()
	if !ok {
		return ErrNoSession
	}
	a.Feed.Reply(postID, account.Username, text)
	return nil
}

func (a *App) View(mode models.SortMode) []models.Post {
	return SortedView(a.Feed.Posts(), mode)
}
