package controllers

import (
	"errors"
	"net/http"
	"net/url"

	"2witter/store"
	"2witter/templates"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

func (ctl *Controller) CreatePost(c *gin.Context) {
	text := c.PostForm("text")
	image := c.PostForm("image")

	ctl.mu.Lock()
	post, created, err := ctl.app.Post(text, image)
	ctl.mu.Unlock()

	if err != nil {
		ctl.noSession(c, err)
		return
	}
	if created {
		ctl.log.Info("post created", "id", post.ID, "author", post.Author)
		ctl.Hub.Broadcast(templates.FeedChanged())
	} else {
		ctl.log.Debug("empty post ignored")
	}
	ctl.respond(c)
}

func (ctl *Controller) Like(c *gin.Context) {
	postID := c.Param("id")

	ctl.mu.Lock()
	_, found := ctl.app.Feed.Get(postID)
	ctl.app.Feed.Like(postID)
	ctl.mu.Unlock()

	if found {
		ctl.log.Info("post liked", "id", postID)
		ctl.Hub.Broadcast(templates.FeedChanged())
	} else {
		ctl.log.Debug("like for unknown post ignored", "id", postID)
	}
	ctl.respond(c)
}

func (ctl *Controller) Reply(c *gin.Context) {
	postID := c.Param("id")
	text := c.PostForm("text")

	ctl.mu.Lock()
	before, _ := ctl.app.Feed.Get(postID)
	err := ctl.app.ReplyAs(postID, text)
	after, _ := ctl.app.Feed.Get(postID)
	ctl.mu.Unlock()

	if err != nil {
		ctl.noSession(c, err)
		return
	}
	if len(after.Replies) > len(before.Replies) {
		ctl.log.Info("reply submitted", "id", postID)
		ctl.Hub.Broadcast(templates.FeedChanged())
	} else {
		ctl.log.Debug("reply ignored", "id", postID)
	}
	ctl.respond(c)
}

// respond re-renders the feed: a fragment for htmx requests, a redirect
// back to the feed page otherwise.
func (ctl *Controller) respond(c *gin.Context) {
	mode := SortMode(c.PostForm("sort"))
	if c.GetHeader("HX-Request") == "" {
		c.Redirect(http.StatusFound, "/feed?"+url.Values{"sort": {string(mode)}}.Encode())
		return
	}
	templ.Handler(templates.Feed(ctl.FeedData(mode))).ServeHTTP(c.Writer, c.Request)
}

func (ctl *Controller) noSession(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNoSession) {
		c.Redirect(http.StatusFound, "/?error=no_session")
		return
	}
	c.String(http.StatusInternalServerError, "Internal error")
}
