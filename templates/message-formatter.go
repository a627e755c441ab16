package templates

import (
	"html/template"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

var urlPattern = regexp.MustCompile(`((?:\w+://)[\w\.\/\%\-\:\/\=\#\?\&]+)`)

// PostProcessor escapes post text, links bare URLs and keeps line breaks.
func PostProcessor(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = linkURLs(template.HTMLEscapeString(line))
	}
	return strings.Join(lines, "<br>")
}

// linkURLs only links schemes templ.URL accepts. Anything else, such as
// javascript://, stays plain text.
func linkURLs(line string) string {
	return urlPattern.ReplaceAllStringFunc(line, func(match string) string {
		if templ.URL(match) == templ.FailedSanitizationURL {
			return match
		}
		return `<a href="` + match + `" rel="nofollow">` + match + `</a>`
	})
}
