package templates

// FeedChanged is pushed over the websocket after a mutation. Each page then
// fetches the feed in its own sort mode.
func FeedChanged() string {
	return `<div id="feed-refresh" hx-swap-oob="true" hx-get="/feed/list" hx-trigger="load" hx-include="#sort-mode" hx-target="#feed" hx-swap="outerHTML"></div>`
}
