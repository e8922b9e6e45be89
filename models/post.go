package models

import "time"

// Post is a feed entry. Name and Avatar are copied from the author when the
// post is created and are not kept in sync afterwards.
type Post struct {
	ID       string    `json:"_id"`
	User     string    `json:"user"`
	Text     string    `json:"text"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	Likes    []Like    `json:"likes"`
	Comments []Comment `json:"comments"`
	Date     time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// LikedBy reports whether userID is among the post's likes.
func (p Post) LikedBy(userID string) bool {
	for _, like := range p.Likes {
		if like.User == userID {
			return true
		}
	}
	return false
}

// Like marks that a user liked a post. A user likes a post at most once.
type Like struct {
	User string `json:"user"`
}

// Comment is a reply attached to a post, with its own id and an author
// snapshot like the post itself.
type Comment struct {
	ID     string    `json:"_id"`
	User   string    `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}
