package middleware

import (
	"net/http"

	"2witter/controllers"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware lets a request through only while the session slot is
// filled. htmx requests get HX-Redirect instead of a 302, which htmx would
// follow and swap the login page into the feed.
func AuthMiddleware(ctl *controllers.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := ctl.CurrentAccount()
		if !ok {
			if c.GetHeader("HX-Request") != "" {
				c.Header("HX-Redirect", "/?error=no_session")
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.Redirect(http.StatusFound, "/?error=no_session")
			c.Abort()
			return
		}

		c.Set("account", account)
		c.Next()
	}
}
