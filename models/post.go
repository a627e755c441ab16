package models

import "time"

type Reply struct {
	Author string
	Text   string
}

type Post struct {
	ID        string
	Author    string
	Text      string
	Image     string
	CreatedAt time.Time
	LikeCount int
	Replies   []Reply
}

// Clone returns a copy of p that shares no reply storage with it.
func (p Post) Clone() Post {
	if p.Replies != nil {
		p.Replies = append([]Reply(nil), p.Replies...)
	}
	return p
}
