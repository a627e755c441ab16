package handlers

import (
	"net/http"

	"2witter/controllers"
	"2witter/templates"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

func Greeter(ctl *controllers.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := ctl.CurrentAccount(); ok {
			c.Redirect(http.StatusFound, "/feed")
			return
		}
		component := templates.Greeter(templates.GreeterData{
			Signup: c.Query("mode") == "signup",
			Error:  c.Query("error"),
			Notice: c.Query("notice"),
		})
		handler := templ.Handler(component)
		handler.ServeHTTP(c.Writer, c.Request)
	}
}
