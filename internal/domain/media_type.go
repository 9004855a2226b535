package domain

type MediaTypeID string

type MediaType struct {
	ID     MediaTypeID `json:"id"`
	PostID PostID      `json:"postId,omitempty"`
	Type   string      `json:"type"`
	URL    string      `json:"url"`
	UserID UserID      `json:"userId,omitempty"`
}

func (m MediaType) RecordID() string { return string(m.ID) }

func (m MediaType) OwnerID() UserID { return m.UserID }

type MediaTypePayload struct {
	PostID PostID `json:"postId"`
	Type   string `json:"type"`
	URL    string `json:"url"`
}
