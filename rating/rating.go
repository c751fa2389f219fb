package rating

import (
	"time"

	"movieflow/errs"
)

var (
	ErrTitleRequired   = errs.Errorf(errs.EINVALID, "rating: a title is required")
	ErrInvalidKind     = errs.Errorf(errs.EINVALID, "rating: kind must be like or dislike")
	ErrEmptyComment    = errs.Errorf(errs.EINVALID, "rating: comment text is required")
	ErrRatingNotFound  = errs.Errorf(errs.ENOTFOUND, "rating not found")
	ErrCommentNotFound = errs.Errorf(errs.ENOTFOUND, "comment not found")
)

// Kind is the thumbs direction of a rating.
type Kind string

const (
	KindLike    Kind = "like"
	KindDislike Kind = "dislike"
)

func (k Kind) Valid() bool {
	return k == KindLike || k == KindDislike
}

// Rating is a user's single like/dislike for a title; at most one per
// (user, title), enforced by the storage layer.
type Rating struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is free text a user attached to a title. A user may leave any
// number of comments, independently of their rating.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
