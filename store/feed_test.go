package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"2witter/models"
)

// testFeed returns a feed whose clock advances one second per post and
// whose ids count up from p1.
func testFeed() *FeedStore {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var ticks, ids int
	return NewFeedStore(
		WithClock(func() time.Time {
			ticks++
			return base.Add(time.Duration(ticks) * time.Second)
		}),
		WithIDGenerator(func() string {
			ids++
			return fmt.Sprintf("p%d", ids)
		}),
	)
}

func texts(posts []models.Post) []string {
	var ret []string
	for _, p := range posts {
		ret = append(ret, p.Text)
	}
	return ret
}

func TestCreatePostBlankIsNoOp(t *testing.T) {
	s := testFeed()
	for _, c := range [][2]string{{"", ""}, {"   ", ""}, {"\n", " \t"}} {
		if _, ok := s.CreatePost("alice", c[0], c[1]); ok {
			t.Fatalf("created post for %q", c)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("got %d posts", s.Len())
	}
}

func TestCreatePost(t *testing.T) {
	s := testFeed()
	got, ok := s.CreatePost("alice", "  hello  ", "")
	if !ok {
		t.Fatal("not created")
	}
	want := models.Post{
		ID:        "p1",
		Author:    "alice",
		Text:      "hello",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestCreatePostImageOnly(t *testing.T) {
	s := testFeed()
	got, ok := s.CreatePost("alice", "", " http://x/cat.gif ")
	if !ok {
		t.Fatal("not created")
	}
	if got.Text != "" || got.Image != "http://x/cat.gif" {
		t.Fatalf("got %+v", got)
	}
}

func TestStorageNewestFirst(t *testing.T) {
	s := testFeed()
	s.CreatePost("alice", "hello", "")
	s.CreatePost("bob", "world", "")
	if diff := cmp.Diff([]string{"world", "hello"}, texts(s.Posts())); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestIDsUnique(t *testing.T) {
	s := NewFeedStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		post, _ := s.CreatePost("alice", "x", "")
		if seen[post.ID] {
			t.Fatalf("duplicate id %s", post.ID)
		}
		seen[post.ID] = true
	}
}

func TestLike(t *testing.T) {
	s := testFeed()
	post, _ := s.CreatePost("alice", "hello", "")
	other, _ := s.CreatePost("bob", "other", "")
	for i := 0; i < 3; i++ {
		s.Like(post.ID)
	}
	got, _ := s.Get(post.ID)
	if got.LikeCount != 3 {
		t.Fatalf("got %d likes", got.LikeCount)
	}
	got, _ = s.Get(other.ID)
	if got.LikeCount != 0 {
		t.Fatalf("other post got %d likes", got.LikeCount)
	}
}

func TestLikeUnknownID(t *testing.T) {
	s := testFeed()
	s.CreatePost("alice", "hello", "")
	before := s.Posts()
	s.Like("nope")
	s.Like("")
	if diff := cmp.Diff(before, s.Posts()); diff != "" {
		t.Fatalf("(-before +after):\n%s", diff)
	}
}

func TestReply(t *testing.T) {
	s := testFeed()
	post, _ := s.CreatePost("alice", "hello", "")
	s.Reply(post.ID, "bob", " first ")
	s.Reply(post.ID, "alice", "second")
	s.Reply(post.ID, "bob", "   ")
	s.Reply(post.ID, "bob", "")
	s.Reply("nope", "bob", "lost")

	got, _ := s.Get(post.ID)
	want := []models.Reply{
		{Author: "bob", Text: "first"},
		{Author: "alice", Text: "second"},
	}
	if diff := cmp.Diff(want, got.Replies); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestPostsAreCopies(t *testing.T) {
	s := testFeed()
	post, _ := s.CreatePost("alice", "hello", "")
	s.Reply(post.ID, "bob", "hi")

	posts := s.Posts()
	posts[0].LikeCount = 99
	posts[0].Replies[0].Text = "changed"

	got, _ := s.Get(post.ID)
	if got.LikeCount != 0 || got.Replies[0].Text != "hi" {
		t.Fatalf("store mutated through copy: %+v", got)
	}
}
