package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrAlreadyLiked = errors.New("post already liked")
var ErrNotLiked = errors.New("post has not been liked")
var ErrCommentNotFound = errors.New("comment does not exist")
var ErrForbidden = errors.New("user not authorized")

// Like is a single like entry embedded in a post. Newest entries come first;
// a user appears at most once per post.
type Like struct {
	User string `json:"user" bson:"user"`
}

// Comment is embedded in a post. Name and Avatar are snapshots of the
// commenting user taken at comment time.
type Comment struct {
	ID     string    `json:"id" bson:"id"`
	User   string    `json:"user" bson:"user"`
	Text   string    `json:"text" bson:"text"`
	Name   string    `json:"name" bson:"name"`
	Avatar string    `json:"avatar" bson:"avatar"`
	Date   time.Time `json:"date" bson:"date"`
}

// Post is the aggregate root for the feed. Name and Avatar snapshot the
// author at creation time and are not kept in sync afterwards.
type Post struct {
	ID       string    `json:"id" bson:"_id,omitempty"`
	User     string    `json:"user" bson:"user"`
	Text     string    `json:"text" bson:"text"`
	Name     string    `json:"name" bson:"name"`
	Avatar   string    `json:"avatar" bson:"avatar"`
	Likes    []Like    `json:"likes" bson:"likes"`
	Comments []Comment `json:"comments" bson:"comments"`
	Date     time.Time `json:"date" bson:"date"`
}

// LikedBy reports whether userID already appears in the likes list.
func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.User == userID {
			return true
		}
	}
	return false
}

// CommentByID returns the embedded comment with the given id, or nil.
func (p *Post) CommentByID(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}
