package domain

import "time"

type ProgressUpdateID string

type ProgressUpdate struct {
	ID            ProgressUpdateID `json:"id"`
	UserID        UserID           `json:"userId"`
	TemplateType  string           `json:"templateType,omitempty"`
	Content       string           `json:"content"`
	Completion    float64          `json:"completedProgress"`
	EstimatedTime float64          `json:"estimatedTime"`
	Public        bool             `json:"public"`
	CreatedAt     time.Time        `json:"createdAt,omitzero"`
	UpdatedAt     time.Time        `json:"updatedAt,omitzero"`
}

func (p ProgressUpdate) RecordID() string { return string(p.ID) }

func (p ProgressUpdate) OwnerID() UserID { return p.UserID }

// VisibleTo reports whether viewer may see the update: it is public or
// viewer owns it.
func (p ProgressUpdate) VisibleTo(viewer UserID) bool {
	return p.Public || (viewer != "" && p.UserID == viewer)
}

type ProgressPayload struct {
	UserID        UserID  `json:"userId,omitempty"`
	TemplateType  string  `json:"templateType,omitempty"`
	Content       string  `json:"content"`
	Completion    float64 `json:"completedProgress"`
	EstimatedTime float64 `json:"estimatedTime"`
	Public        bool    `json:"public"`
}

func (p ProgressPayload) ClampedCompletion() float64 {
	switch {
	case p.Completion < 0:
		return 0
	case p.Completion > 1:
		return 1
	default:
		return p.Completion
	}
}
