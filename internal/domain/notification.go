package domain

import "time"

type NotificationID string

type Notification struct {
	ID        NotificationID `json:"id"`
	UserID    UserID         `json:"userId,omitempty"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	CreatedAt time.Time      `json:"createdAt,omitzero"`
}

func (n Notification) RecordID() string { return string(n.ID) }

func (n Notification) OwnerID() UserID { return n.UserID }

type NotificationPayload struct {
	UserID  UserID
	Title   string
	Message string
}
