package templates

import "2witter/models"

type FeedData struct {
	User  models.Account
	Mode  models.SortMode
	Posts []PostView
}

type PostView struct {
	models.Post
	AuthorPicture string
}

type GreeterData struct {
	Signup bool
	Error  string
	Notice string
}

var errorMessages = map[string]string{
	"missing_field":       "Both username and password are required.",
	"duplicate_username":  "Username already exists. Choose another.",
	"invalid_credentials": "Invalid username or password.",
	"no_session":          "Please log in first.",
}

var noticeMessages = map[string]string{
	"signup_ok": "Signup successful!",
}

// ErrorMessage returns the text shown for an ?error= code. Unknown codes
// yield an empty string.
func ErrorMessage(code string) string {
	return errorMessages[code]
}

func NoticeMessage(code string) string {
	return noticeMessages[code]
}
