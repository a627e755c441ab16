package routes

import (
	"2witter/controllers"
	"2witter/handlers"
	"2witter/middleware"

	"github.com/gin-gonic/gin"
)

func FeedRouter(r *gin.Engine, ctl *controllers.Controller) {
	r.StaticFile("/feed.css", "./static/css/feed.css")

	auth := middleware.AuthMiddleware(ctl)

	r.GET("/", handlers.Greeter(ctl))
	r.POST("/auth", ctl.Auth)
	r.GET("/feed", auth, handlers.Home(ctl))
	r.GET("/feed/list", auth, handlers.FeedList(ctl))
	r.POST("/posts", auth, ctl.CreatePost)
	r.POST("/posts/:id/like", auth, ctl.Like)
	r.POST("/posts/:id/replies", auth, ctl.Reply)
	r.POST("/logout", auth, ctl.Logout)
	r.GET("/ws", auth, ctl.WebSocketHandler)
}
