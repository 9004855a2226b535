package domain

import "time"

type PostID string

type Media struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

func (m Media) IsImage() bool {
	return m.Type == "image"
}

type Post struct {
	ID         PostID    `json:"id"`
	Caption    string    `json:"caption"`
	User       User      `json:"user"`
	UserID     UserID    `json:"userId,omitempty"`
	MediaTypes []Media   `json:"mediaTypes,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}

func (p Post) RecordID() string { return string(p.ID) }

func (p Post) OwnerID() UserID {
	if p.User.ID != "" {
		return p.User.ID
	}
	return p.UserID
}

type PostPayload struct {
	UserID     UserID  `json:"userId,omitempty"`
	Caption    string  `json:"caption"`
	MediaTypes []Media `json:"mediaTypes,omitempty"`
}
