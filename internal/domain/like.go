package domain

import "time"

type LikeID string

// Like is one user's like on a post. The server embeds the full user and
// post objects; older responses only carry their ids.
type Like struct {
	ID        LikeID    `json:"id"`
	User      User      `json:"user"`
	UserID    UserID    `json:"userId,omitempty"`
	Post      Post      `json:"post"`
	PostID    PostID    `json:"postId,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

func (l Like) RecordID() string { return string(l.ID) }

func (l Like) OwnerID() UserID {
	if l.User.ID != "" {
		return l.User.ID
	}
	return l.UserID
}

func (l Like) LikedPostID() PostID {
	if l.Post.ID != "" {
		return l.Post.ID
	}
	return l.PostID
}

type LikePayload struct {
	UserID UserID `json:"userId"`
	PostID PostID `json:"postId"`
}
