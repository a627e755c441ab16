package templates

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"2witter/models"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

func TestPostProcessor(t *testing.T) {
	for _, c := range []struct{ in, want string }{
		{"hello", "hello"},
		{"<script>", "&lt;script&gt;"},
		{"a\nb", "a<br>b"},
		{"see https://go.dev/doc now", `see <a href="https://go.dev/doc" rel="nofollow">https://go.dev/doc</a> now`},
		{"click javascript://%0Aalert%28document.cookie%29", "click javascript://%0Aalert%28document.cookie%29"},
		{"JavaScript://x and http://ok", `JavaScript://x and <a href="http://ok" rel="nofollow">http://ok</a>`},
	} {
		if got := PostProcessor(c.in); got != c.want {
			t.Fatalf("PostProcessor(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPostCard(t *testing.T) {
	post := PostView{
		Post: models.Post{
			ID:        "abc",
			Author:    "alice",
			Text:      "hi <there>",
			Image:     "javascript:alert(1)",
			CreatedAt: time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC),
			LikeCount: 4,
			Replies:   []models.Reply{{Author: "bob", Text: "yo"}},
		},
		AuthorPicture: "http://x/a.png",
	}
	got := render(t, PostCard(post, models.SortPopular))
	for _, want := range []string{
		`id="pabc"`,
		`@alice`,
		`Mar 5, 2024 2:07 PM`,
		`hi &lt;there&gt;`,
		`src="http://x/a.png"`,
		`&#10084;&#65039; 4`,
		`&#128172; 1`,
		`<strong>@bob</strong>: yo`,
		`name="sort" value="popular"`,
		`/posts/abc/like`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %s", want, got)
		}
	}
	if strings.Contains(got, "javascript:") {
		t.Fatalf("unsafe image URL rendered: %s", got)
	}
}

func TestFeedEmpty(t *testing.T) {
	got := render(t, Feed(FeedData{Mode: models.SortNewest}))
	if got != `<div id="feed" class="feed"><p class="empty">No posts yet.</p></div>` {
		t.Fatalf("got %s", got)
	}
}

func TestHome(t *testing.T) {
	got := render(t, Home(FeedData{
		User: models.Account{Username: "alice", Bio: "gopher & friends", Picture: "http://x/a.png"},
		Mode: models.SortPopular,
	}))
	for _, want := range []string{
		"<!doctype html>",
		"@alice",
		"gopher &amp; friends",
		`<a class="sort active" href="/feed?sort=popular">Most Liked</a>`,
		`<a class="sort ghost" href="/feed?sort=newest">Newest</a>`,
		`ws-connect="/ws"`,
		`id="sort-mode" name="sort" value="popular"`,
		"No posts yet.",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %s", want, got)
		}
	}
}

func TestGreeter(t *testing.T) {
	login := render(t, Greeter(GreeterData{Error: "invalid_credentials"}))
	if !strings.Contains(login, "Invalid username or password.") || strings.Contains(login, `name="bio"`) {
		t.Fatalf("got %s", login)
	}
	if !strings.Contains(login, `value="login"`) {
		t.Fatalf("got %s", login)
	}

	signup := render(t, Greeter(GreeterData{Signup: true, Error: "bogus"}))
	if !strings.Contains(signup, `value="signup"`) || strings.Contains(signup, "error-message") {
		t.Fatalf("got %s", signup)
	}

	notice := render(t, Greeter(GreeterData{Notice: "signup_ok"}))
	if !strings.Contains(notice, "Signup successful!") {
		t.Fatalf("got %s", notice)
	}
}
