package store

import (
	"strings"
	"time"

	"2witter/helpers"
	"2witter/models"
)

// FeedStore keeps posts newest first.
type FeedStore struct {
	posts []*models.Post

	now   func() time.Time
	newID func() string
}

type FeedOption func(*FeedStore)

func WithClock(now func() time.Time) FeedOption {
	return func(s *FeedStore) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) FeedOption {
	return func(s *FeedStore) {
		s.newID = newID
	}
}

func NewFeedStore(opts ...FeedOption) *FeedStore {
	s := &FeedStore{
		now:   time.Now,
		newID: helpers.GenerateID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePost prepends a post by author. It reports false and leaves the
// store unchanged when both text and image are blank.
func (s *FeedStore) CreatePost(author, text, image string) (models.Post, bool) {
	text = strings.TrimSpace(text)
	image = strings.TrimSpace(image)
	if text == "" && image == "" {
		return models.Post{}, false
	}

	post := &models.Post{
		ID:        s.newID(),
		Author:    author,
		Text:      text,
		Image:     image,
		CreatedAt: s.now(),
	}
	s.posts = append([]*models.Post{post}, s.posts...)
	return post.Clone(), true
}

func (s *FeedStore) Like(postID string) {
	if post := s.find(postID); post != nil {
		post.LikeCount++
	}
}

func (s *FeedStore) Reply(postID, author, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if post := s.find(postID); post != nil {
		post.Replies = append(post.Replies, models.Reply{Author: author, Text: text})
	}
}

func (s *FeedStore) Get(postID string) (models.Post, bool) {
	post := s.find(postID)
	if post == nil {
		return models.Post{}, false
	}
	return post.Clone(), true
}

// Posts returns copies of all posts in storage order.
func (s *FeedStore) Posts() []models.Post {
	posts := make([]models.Post, len(s.posts))
	for i, post := range s.posts {
		posts[i] = post.Clone()
	}
	return posts
}

func (s *FeedStore) Len() int {
	return len(s.posts)
}

func (s *FeedStore) find(postID string) *models.Post {
	for _, post := range s.posts {
		if post.ID == postID {
			return post
		}
	}
	return nil
}
