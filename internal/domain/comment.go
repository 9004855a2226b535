package domain

import "time"

type CommentID string

type Comment struct {
	ID      CommentID `json:"id"`
	Content string    `json:"content"`
	User    User      `json:"user"`
	UserID  UserID    `json:"userId,omitempty"`
	PostID  PostID    `json:"postId,omitempty"`

	// Deleted comments are kept by the server with this flag set.
	DeleteStatus bool      `json:"deleteStatus,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

func (c Comment) RecordID() string { return string(c.ID) }

func (c Comment) OwnerID() UserID {
	if c.User.ID != "" {
		return c.User.ID
	}
	return c.UserID
}

type CommentPayload struct {
	UserID  UserID `json:"userId,omitempty"`
	PostID  PostID `json:"postId,omitempty"`
	Content string `json:"content"`
}
