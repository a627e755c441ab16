package handlers

import (
	"2witter/controllers"
	"2witter/templates"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

func Home(ctl *controllers.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := ctl.FeedData(controllers.SortMode(c.Query("sort")))
		handler := templ.Handler(templates.Home(data))
		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// FeedList serves only the feed fragment, fetched by pages after a
// websocket refresh trigger.
func FeedList(ctl *controllers.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := ctl.FeedData(controllers.SortMode(c.Query("sort")))
		handler := templ.Handler(templates.Feed(data))
		handler.ServeHTTP(c.Writer, c.Request)
	}
}
