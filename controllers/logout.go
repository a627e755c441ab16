package controllers

import (
	"net/http"

	"2witter/models"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) Logout(c *gin.Context) {
	account := c.MustGet("account").(models.Account)

	ctl.mu.Lock()
	ctl.app.Logout()
	ctl.mu.Unlock()

	// Open pages belong to the old session; they reconnect on next load.
	ctl.Hub.CloseAll()

	ctl.log.Info("logged out", "username", account.Username)
	c.Redirect(http.StatusFound, "/")
}
