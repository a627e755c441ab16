package controllers

import (
	"errors"
	"net/http"
	"net/url"

	"2witter/store"

	"github.com/gin-gonic/gin"
)

type authForm struct {
	Action   string `form:"action"`
	Username string `form:"username"`
	Password string `form:"password"`
	Bio      string `form:"bio"`
	Picture  string `form:"picture"`
}

func (ctl *Controller) Auth(c *gin.Context) {
	var form authForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Invalid form")
		return
	}

	if form.Action == "signup" {
		ctl.signup(c, form)
		return
	}
	ctl.login(c, form)
}

func (ctl *Controller) signup(c *gin.Context, form authForm) {
	ctl.mu.Lock()
	_, err := ctl.app.Accounts.Register(form.Username, form.Password, form.Bio, form.Picture)
	ctl.mu.Unlock()

	if err != nil {
		ctl.log.Debug("signup rejected", "username", form.Username, "error", err)
		c.Redirect(http.StatusFound, "/?"+url.Values{
			"mode":  {"signup"},
			"error": {ErrorCode(err)},
		}.Encode())
		return
	}

	ctl.log.Info("account registered", "username", form.Username)
	c.Redirect(http.StatusFound, "/?notice=signup_ok")
}

func (ctl *Controller) login(c *gin.Context, form authForm) {
	ctl.mu.Lock()
	_, err := ctl.app.Login(form.Username, form.Password)
	ctl.mu.Unlock()

	if err != nil {
		ctl.log.Debug("login rejected", "username", form.Username, "error", err)
		c.Redirect(http.StatusFound, "/?error="+ErrorCode(err))
		return
	}

	ctl.log.Info("logged in", "username", form.Username)
	c.Redirect(http.StatusFound, "/feed")
}

// ErrorCode maps a store error to the code carried in the ?error= query.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, store.ErrMissingField):
		return "missing_field"
	case errors.Is(err, store.ErrDuplicateUsername):
		return "duplicate_username"
	case errors.Is(err, store.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, store.ErrNoSession):
		return "no_session"
	}
	return "unknown"
}
