package domain

import (
	"errors"
	"strings"
)

type UserID string

// Session is the authenticated actor as seen by this client.
type Session struct {
	UserID          UserID
	AuthToken       string
	CachedAvatarURL string
}

func (s Session) Active() bool {
	return s.UserID != ""
}

func (s Session) Validate() error {
	hasUser := strings.TrimSpace(string(s.UserID)) != ""
	hasToken := strings.TrimSpace(s.AuthToken) != ""
	if hasUser != hasToken {
		return errors.New("session user id and auth token must be set together")
	}
	if !hasUser && s.CachedAvatarURL != "" {
		return errors.New("session avatar requires a user id")
	}

	return nil
}

// Owns reports whether the session user may mutate a record owned by owner.
func (s Session) Owns(owner UserID) bool {
	return s.Active() && owner == s.UserID
}

type SessionKey string

const (
	SessionKeyUserID     SessionKey = "user_id"
	SessionKeyToken      SessionKey = "token"
	SessionKeyUserImage  SessionKey = "user_image"
	SessionKeyCoverImage SessionKey = "cover_image"
)

// SessionChange is published to subscribers when another context rewrote
// the shared session store.
type SessionChange struct {
	Key      SessionKey
	UserID   UserID
	OldValue string
	NewValue string
}

// DiffSessions lists the keys whose values differ between old and updated.
// Token values are never exposed; only presence is reported.
func DiffSessions(old, updated Session) []SessionChange {
	changes := make([]SessionChange, 0, 3)
	if old.UserID != updated.UserID {
		changes = append(changes, SessionChange{
			Key:      SessionKeyUserID,
			UserID:   updated.UserID,
			OldValue: string(old.UserID),
			NewValue: string(updated.UserID),
		})
	}
	if old.AuthToken != updated.AuthToken {
		changes = append(changes, SessionChange{
			Key:      SessionKeyToken,
			UserID:   updated.UserID,
			OldValue: presence(old.AuthToken),
			NewValue: presence(updated.AuthToken),
		})
	}
	if old.CachedAvatarURL != updated.CachedAvatarURL {
		changes = append(changes, SessionChange{
			Key:      SessionKeyUserImage,
			UserID:   updated.UserID,
			OldValue: old.CachedAvatarURL,
			NewValue: updated.CachedAvatarURL,
		})
	}

	return changes
}

func presence(v string) string {
	if v == "" {
		return ""
	}
	return "set"
}
