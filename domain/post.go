package domain

import "time"

// Post is a single tuit, either top-level or a reply.
type Post struct {
	ID        int64
	Message   string
	Author    string
	Avatar    string
	CreatedAt time.Time
	Likes     int
	Liked     bool  // Liked by the current user
	ParentID  int64 // 0 for top-level posts
	Replies   int   // Only meaningful on top-level posts
}

// IsReply reports whether the post answers another post.
func (p Post) IsReply() bool {
	return p.ParentID > 0
}

// PostGroup pairs a top-level post with its direct replies in arrival order.
type PostGroup struct {
	Post    Post
	Replies []Post
}

// Key identifies the group for stable list rendering.
func (g PostGroup) Key() int64 {
	return g.Post.ID
}

// Profile is the authenticated user's account as returned by the API.
type Profile struct {
	Name   string
	Email  string
	Avatar string
}

// ProfileUpdate carries editable profile fields. Password is optional.
type ProfileUpdate struct {
	Name     string
	Avatar   string
	Password string
}

// Credentials are used to register or log in.
type Credentials struct {
	Name     string
	Email    string
	Password string
}

// Favorite is a locally bookmarked author.
type Favorite struct {
	Author string
	Avatar string
}
