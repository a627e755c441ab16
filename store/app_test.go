package store

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"2witter/models"
)

func TestAppSessionLifecycle(t *testing.T) {
	app := NewApp("")
	if _, ok := app.Session.Current(); ok {
		t.Fatal("fresh app has a session")
	}
	if _, err := app.Accounts.Register("alice", "pw", "bio", ""); err != nil {
		t.Fatal(err)
	}

	if _, err := app.Login("alice", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v", err)
	}
	if _, ok := app.Session.Current(); ok {
		t.Fatal("failed login set the session")
	}
	if _, err := app.Login("", "pw"); !errors.Is(err, ErrMissingField) {
		t.Fatalf("got %v", err)
	}

	account, err := app.Login("alice", "pw")
	if err != nil {
		t.Fatal(err)
	}
	current, ok := app.Session.Current()
	if !ok {
		t.Fatal("no session after login")
	}
	if diff := cmp.Diff(account, current); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	app.Logout()
	if _, ok := app.Session.Current(); ok {
		t.Fatal("session survived logout")
	}
	app.Logout()
}

func TestAppLoginReplacesSession(t *testing.T) {
	app := NewApp("")
	app.Accounts.Register("alice", "pw", "", "")
	app.Accounts.Register("bob", "pw", "", "")
	app.Login("alice", "pw")
	app.Login("bob", "pw")
	current, _ := app.Session.Current()
	if current.Username != "bob" {
		t.Fatalf("got %q", current.Username)
	}
}

func TestAppRequiresSession(t *testing.T) {
	app := NewApp("")
	if _, _, err := app.Post("hello", ""); !errors.Is(err, ErrNoSession) {
		t.Fatalf("got %v", err)
	}
	if err := app.ReplyAs("x", "hi"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("got %v", err)
	}
	if app.Feed.Len() != 0 {
		t.Fatalf("got %d posts", app.Feed.Len())
	}
}

func TestAppPostAndReplyAsSessionUser(t *testing.T) {
	app := NewApp("")
	app.Accounts.Register("alice", "pw", "", "")
	app.Accounts.Register("bob", "pw", "", "")

	app.Login("alice", "pw")
	post, created, err := app.Post("hello", "")
	if err != nil || !created {
		t.Fatalf("created=%v err=%v", created, err)
	}
	if _, created, _ := app.Post("  ", ""); created {
		t.Fatal("blank post created")
	}

	app.Logout()
	app.Login("bob", "pw")
	if err := app.ReplyAs(post.ID, "hi alice"); err != nil {
		t.Fatal(err)
	}
	app.Feed.Like(post.ID)

	view := app.View(models.SortPopular)
	if len(view) != 1 {
		t.Fatalf("got %d posts", len(view))
	}
	got := view[0]
	if got.Author != "alice" || got.LikeCount != 1 {
		t.Fatalf("got %+v", got)
	}
	want := []models.Reply{{Author: "bob", Text: "hi alice"}}
	if diff := cmp.Diff(want, got.Replies); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
